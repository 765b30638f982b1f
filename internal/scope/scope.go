package scope

// NameSpace is one module's own declarations: the names it introduces
// directly, keyed by their unqualified spelling. Fixities are not kept
// here; Scope records them separately (see DeclareFixity).
type NameSpace struct {
	decls map[Name][]NameInfo // more than one entry means an unresolved ambiguity
}

func newNameSpace() *NameSpace {
	return &NameSpace{decls: make(map[Name][]NameInfo)}
}

// Declare adds info under name, appending rather than overwriting so that
// a later ambiguity check can report every candidate: declaring two
// values with the same name in the same scope is an error, not a silent
// shadow.
func (ns *NameSpace) Declare(name Name, info NameInfo) {
	ns.decls[name] = append(ns.decls[name], info)
}

// Lookup returns every NameInfo declared under name in this namespace
// alone (not consulting any parent scope).
func (ns *NameSpace) Lookup(name Name) []NameInfo {
	return ns.decls[name]
}

// Scope is one lexical scope: a chain back to its parent (copy-on-create
// — entering a nested scope never mutates the enclosing one), the names
// declared directly in it, the modules it has opened unqualified, the
// modules it has imported (qualified-only unless also opened), and the
// fixities visible within it.
type Scope struct {
	parent          *Scope
	id              int
	counter         *int // shared by every scope in one compilation unit's tree; never touched across goroutines
	ns              *NameSpace
	openedModules   []QualifiedName
	importedModules map[string]QualifiedName // local alias -> real path
	fixities        map[Name]Fixity
}

// NewRoot creates the root scope of a compilation unit, with no parent. A
// new, private ID counter is allocated per root: scope IDs are unique
// within one file's scope tree, not globally, so that concurrently
// compiled files — one goroutine per file, no shared mutable state —
// never contend over a single counter.
func NewRoot() *Scope {
	counter := new(int)
	*counter++
	return &Scope{
		id:              *counter,
		counter:         counter,
		ns:              newNameSpace(),
		importedModules: make(map[string]QualifiedName),
		fixities:        make(map[Name]Fixity),
	}
}

// Child creates a new scope nested directly inside s. s itself is never
// mutated by operations on the child.
func (s *Scope) Child() *Scope {
	*s.counter++
	return &Scope{
		parent:          s,
		id:              *s.counter,
		counter:         s.counter,
		ns:              newNameSpace(),
		importedModules: make(map[string]QualifiedName),
		fixities:        make(map[Name]Fixity),
	}
}

// ID returns the scope's identity, assigned in creation order and unique
// within one root's scope tree.
func (s *Scope) ID() int { return s.id }

// Parent returns the enclosing scope, or nil at the root.
func (s *Scope) Parent() *Scope { return s.parent }

// Declare adds a new declaration to this scope's own namespace.
func (s *Scope) Declare(name Name, info NameInfo) {
	s.ns.Declare(name, info)
}

// Open records that module is opened unqualified in this scope: its
// declarations become visible under their bare names via Resolve, in
// addition to their qualified form.
func (s *Scope) Open(module QualifiedName) {
	s.openedModules = append(s.openedModules, module)
}

// Import records that module is importable as alias (by default alias ==
// module's own last component). Imported-but-not-opened modules are only
// reachable through their qualified name.
func (s *Scope) Import(alias string, module QualifiedName) {
	s.importedModules[alias] = module
}

// OpenedModules returns every module opened directly in this scope (not
// its ancestors).
func (s *Scope) OpenedModules() []QualifiedName {
	out := make([]QualifiedName, len(s.openedModules))
	copy(out, s.openedModules)
	return out
}

// DeclareFixity records an operator's fixity, visible from this scope
// downward (shadowable by a nested scope's own declaration of the same
// notation).
func (s *Scope) DeclareFixity(name Name, f Fixity) {
	s.fixities[name] = f
}

// LookupOwn returns every NameInfo declared directly in this scope (not
// consulting parents or opened modules) under name.
func (s *Scope) LookupOwn(name Name) []NameInfo {
	return s.ns.Lookup(name)
}

// Resolve looks up name by walking outward from s: this scope's own
// declarations first, then each ancestor's, in order
// (innermost-shadows-outermost). It does not search opened or imported
// modules.
func (s *Scope) Resolve(name Name) []NameInfo {
	for cur := s; cur != nil; cur = cur.parent {
		if infos := cur.ns.Lookup(name); len(infos) > 0 {
			return infos
		}
	}
	return nil
}

// ResolveFixity looks up name's fixity by walking outward from s,
// returning DefaultFixity() if no scope in the chain declares one.
func (s *Scope) ResolveFixity(name Name) Fixity {
	for cur := s; cur != nil; cur = cur.parent {
		if f, ok := cur.fixities[name]; ok {
			return f
		}
	}
	return DefaultFixity()
}

// ResolveImport looks up alias among this scope's (and its ancestors')
// imports, returning the real module path it denotes.
func (s *Scope) ResolveImport(alias string) (QualifiedName, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if m, ok := cur.importedModules[alias]; ok {
			return m, true
		}
	}
	return nil, false
}

// UnderScope runs fn with a fresh child of s, discarding the child when fn
// returns: stack discipline means nothing fn declares in the child leaks
// back into s.
func (s *Scope) UnderScope(fn func(child *Scope)) {
	child := s.Child()
	fn(child)
}
