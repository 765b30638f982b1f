package mixfix

import (
	"fmt"
	"sort"

	"github.com/silt-lang/silt/internal/dag"
	"github.com/silt-lang/silt/internal/scope"
)

// PrecedenceDAG holds every notation visible in one checked module, bucketed
// by precedence level. The vertex/edge bookkeeping reuses internal/dag.Graph
// (grounded on its model-dependency adjacency maps), generalized here from a
// dependency order over model IDs to a tightness order over
// scope.PrecedenceLevel keys, each holding a list of notations rather than a
// single node.
type PrecedenceDAG struct {
	graph  *dag.Graph
	levels map[int][]*Notation
}

// NewPrecedenceDAG returns an empty DAG. bind.NewChecker builds one per
// Checker, shared by every notation that checker registers; Reparse
// builds a restricted local one on each call.
func NewPrecedenceDAG() *PrecedenceDAG {
	return &PrecedenceDAG{graph: dag.NewGraph(), levels: make(map[int][]*Notation)}
}

func levelKey(level int) string { return fmt.Sprintf("%d", level) }

// Insert adds n under its fixity's precedence level and relinks the
// ascending level chain in the underlying graph. Tighter and AtOrAbove
// read the sorted level keys directly rather than walking those edges.
func (p *PrecedenceDAG) Insert(n *Notation) {
	level := n.Fixity.Precedence.Level()
	key := levelKey(level)
	if _, ok := p.graph.GetNode(key); !ok {
		p.graph.AddNode(key, level)
	}
	p.levels[level] = append(p.levels[level], n)
	p.relink()
}

func (p *PrecedenceDAG) sortedLevels() []int {
	keys := make([]int, 0, len(p.levels))
	for l := range p.levels {
		keys = append(keys, l)
	}
	sort.Ints(keys)
	return keys
}

func (p *PrecedenceDAG) relink() {
	keys := p.sortedLevels()
	for i := 0; i+1 < len(keys); i++ {
		_ = p.graph.AddEdge(levelKey(keys[i]), levelKey(keys[i+1]))
	}
}

// Tighter returns every notation strictly above than, ascending by level.
func (p *PrecedenceDAG) Tighter(than scope.PrecedenceLevel) []*Notation {
	var out []*Notation
	for _, l := range p.sortedLevels() {
		if than.IsUnrelated() || l > than.Level() {
			out = append(out, p.levels[l]...)
		}
	}
	return out
}

// AtOrAbove returns every notation at than's level or above, ascending.
// Exterior holes recurse with this (rather than Tighter) so a left-assoc
// operator's leading hole can still admit another use of the same operator
// at the same level.
func (p *PrecedenceDAG) AtOrAbove(than scope.PrecedenceLevel) []*Notation {
	var out []*Notation
	for _, l := range p.sortedLevels() {
		if than.IsUnrelated() || l >= than.Level() {
			out = append(out, p.levels[l]...)
		}
	}
	return out
}

// ContainingAll restricts the DAG to notations every one of whose literal
// pieces occurs in texts.
func (p *PrecedenceDAG) ContainingAll(texts map[string]struct{}) []*Notation {
	var out []*Notation
	for _, l := range p.sortedLevels() {
		for _, n := range p.levels[l] {
			if n.piecesSubsetOf(texts) {
				out = append(out, n)
			}
		}
	}
	return out
}
