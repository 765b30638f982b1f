package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silt-lang/silt/pkg/token"
)

func TestEmitNotifiesRegisteredConsumers(t *testing.T) {
	e := NewEngine()
	var seen []string
	e.Register(func(d Diagnostic) { seen = append(seen, d.Message) })

	e.Emit(Diagnostic{Severity: Error, Message: "first"})
	e.Emit(Diagnostic{Severity: Warning, Message: "second"})

	assert.Equal(t, []string{"first", "second"}, seen)
	assert.True(t, e.HasErrors())
}

func TestUnregisterStopsNotification(t *testing.T) {
	e := NewEngine()
	var seen []string
	tok := e.Register(func(d Diagnostic) { seen = append(seen, d.Message) })

	e.Emit(Diagnostic{Message: "a"})
	e.Unregister(tok)
	e.Emit(Diagnostic{Message: "b"})

	assert.Equal(t, []string{"a"}, seen)
	require.Len(t, e.All(), 2)
}

func TestUnregisterAllRemovesEveryConsumer(t *testing.T) {
	e := NewEngine()
	var a, b int
	e.Register(func(Diagnostic) { a++ })
	e.Register(func(Diagnostic) { b++ })

	e.Emit(Diagnostic{Message: "x"})
	e.UnregisterAll()
	e.Emit(Diagnostic{Message: "y"})

	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}

func TestRegistrationOrderIsNotificationOrder(t *testing.T) {
	e := NewEngine()
	var order []string
	e.Register(func(Diagnostic) { order = append(order, "first") })
	e.Register(func(Diagnostic) { order = append(order, "second") })

	e.Emit(Diagnostic{Message: "x"})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestDistinctConsumersGetDistinctTokens(t *testing.T) {
	e := NewEngine()
	t1 := e.Register(func(Diagnostic) {})
	t2 := e.Register(func(Diagnostic) {})
	assert.NotEqual(t, t1, t2)
}

func TestTransactDiscardHidesDiagnostics(t *testing.T) {
	e := NewEngine()
	var seen []string
	e.Register(func(d Diagnostic) { seen = append(seen, d.Message) })

	e.Transact(func() bool {
		e.Emit(Diagnostic{Message: "speculative"})
		return false // discard
	})

	assert.Empty(t, seen)
	assert.Empty(t, e.All())
}

func TestTransactCommitAppliesInOrder(t *testing.T) {
	e := NewEngine()
	var seen []string
	e.Register(func(d Diagnostic) { seen = append(seen, d.Message) })

	e.Emit(Diagnostic{Message: "before"})
	e.Transact(func() bool {
		e.Emit(Diagnostic{Message: "inside-1"})
		e.Emit(Diagnostic{Message: "inside-2"})
		return true // commit
	})
	e.Emit(Diagnostic{Message: "after"})

	assert.Equal(t, []string{"before", "inside-1", "inside-2", "after"}, seen)
}

func TestNestedTransactDiscardInnerKeepsOuter(t *testing.T) {
	e := NewEngine()
	var seen []string
	e.Register(func(d Diagnostic) { seen = append(seen, d.Message) })

	e.Transact(func() bool {
		e.Emit(Diagnostic{Message: "outer"})
		e.Transact(func() bool {
			e.Emit(Diagnostic{Message: "inner"})
			return false
		})
		return true
	})

	assert.Equal(t, []string{"outer"}, seen)
}

func TestNestedTransactCommitBothPropagatesToRoot(t *testing.T) {
	e := NewEngine()
	var seen []string
	e.Register(func(d Diagnostic) { seen = append(seen, d.Message) })

	e.Transact(func() bool {
		e.Emit(Diagnostic{Message: "outer"})
		e.Transact(func() bool {
			e.Emit(Diagnostic{Message: "inner"})
			return true
		})
		return true
	})

	assert.Equal(t, []string{"outer", "inner"}, seen)
}

func TestHasErrorsFalseWithOnlyWarnings(t *testing.T) {
	e := NewEngine()
	e.Emit(Diagnostic{Severity: Warning, Message: "w"})
	assert.False(t, e.HasErrors())
}

func TestWithHighlightAndNoteAreImmutable(t *testing.T) {
	base := Diagnostic{Message: "base"}
	withHighlight := base.WithHighlight(token.Span{}, "secondary")
	withNote := base.WithNote("a note")

	assert.Empty(t, base.Highlights)
	assert.Empty(t, base.Notes)
	require.Len(t, withHighlight.Highlights, 1)
	require.Len(t, withNote.Notes, 1)
}
