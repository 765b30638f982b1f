// Package diagnostic implements Silt's diagnostic engine: an ordered,
// transactional buffer of compiler messages with pluggable consumers.
// Every diagnostic is also logged through log/slog, severity-mapped, via a
// *slog.Logger threaded in through context.Context (see ContextWithLogger)
// so a host embedding the front end gets greppable operational logs
// alongside the structured Diagnostic stream consumers see.
package diagnostic

import (
	"context"

	"github.com/google/uuid"

	"github.com/silt-lang/silt/pkg/token"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	Note Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Note:
		return "note"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Highlight annotates a secondary span within a Diagnostic, e.g. pointing
// at a conflicting prior declaration.
type Highlight struct {
	Span    token.Span
	Message string
}

// Diagnostic is a single compiler message: severity, primary location,
// human-readable text, zero or more secondary highlights, and zero or more
// trailing notes.
type Diagnostic struct {
	Severity   Severity
	Message    string
	Location   token.Span
	Highlights []Highlight
	Notes      []string
}

// WithHighlight returns a copy of d with an additional highlight appended.
func (d Diagnostic) WithHighlight(span token.Span, message string) Diagnostic {
	d.Highlights = append(append([]Highlight{}, d.Highlights...), Highlight{Span: span, Message: message})
	return d
}

// WithNote returns a copy of d with an additional trailing note appended.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Notes = append(append([]string{}, d.Notes...), note)
	return d
}

// Consumer receives diagnostics as they are emitted. Consumers are invoked
// synchronously, in registration order, for every Emit call that is not
// inside a transaction (or whose transaction is committed).
type Consumer func(Diagnostic)

// ConsumerToken is an opaque handle returned by Register, used to later
// Unregister that specific consumer; unregistering requires that exact
// token.
type ConsumerToken string

// Engine is the diagnostic buffer for one compilation. It is not safe for
// concurrent use by multiple goroutines without external synchronization;
// each file's compiler front-end instance (including its Engine) is
// private to one goroutine.
type Engine struct {
	all       []Diagnostic
	consumers map[ConsumerToken]Consumer
	order     []ConsumerToken

	// txStack holds the side buffers of nested open transactions. Emit
	// during an open transaction appends only to the innermost buffer;
	// commit merges it into the next buffer out (or into all, at depth 0)
	// and fires consumers; discard drops it silently.
	txStack [][]Diagnostic

	// ctx is the context Emit logs against when a caller has no context of
	// its own to pass to EmitContext, e.g. a Checker or Reparse call that
	// only ever sees an Engine, never a context.Context. Set at
	// construction via NewEngineContext or later via SetContext; defaults
	// to context.Background().
	ctx context.Context
}

// NewEngine creates an empty diagnostic engine that logs Emit calls
// against context.Background() (the safe, silent fallback logger). Use
// NewEngineContext to attach a real logger from construction onward.
func NewEngine() *Engine {
	return NewEngineContext(context.Background())
}

// NewEngineContext creates an empty diagnostic engine whose Emit calls log
// against ctx — in particular, against whatever *slog.Logger ctx carries
// via ContextWithLogger. This is how a CLI command threads its logger down
// through a Checker or Reparse call that only ever holds an *Engine.
func NewEngineContext(ctx context.Context) *Engine {
	return &Engine{consumers: make(map[ConsumerToken]Consumer), ctx: ctx}
}

// SetContext replaces the context Emit logs against. Reparse and Checker
// hold a long-lived *Engine reference rather than a context.Context, so a
// caller that only learns its context after constructing the engine
// updates it here instead of threading ctx through every call.
func (e *Engine) SetContext(ctx context.Context) {
	e.ctx = ctx
}

// Register adds a consumer and returns a token that can later unregister
// it. Registration order determines notification order.
func (e *Engine) Register(c Consumer) ConsumerToken {
	tok := ConsumerToken(uuid.New().String())
	e.consumers[tok] = c
	e.order = append(e.order, tok)
	return tok
}

// Unregister removes exactly the consumer identified by tok, if still
// registered.
func (e *Engine) Unregister(tok ConsumerToken) {
	if _, ok := e.consumers[tok]; !ok {
		return
	}
	delete(e.consumers, tok)
	for i, t := range e.order {
		if t == tok {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// UnregisterAll removes every currently registered consumer.
func (e *Engine) UnregisterAll() {
	e.consumers = make(map[ConsumerToken]Consumer)
	e.order = nil
}

// Emit records d, logging it against the Engine's own context (see
// NewEngineContext/SetContext; context.Background() if neither was ever
// called). Prefer EmitContext when the caller holds a more specific
// context than the Engine's.
func (e *Engine) Emit(d Diagnostic) {
	ctx := e.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	e.EmitContext(ctx, d)
}

// EmitContext records d exactly as Emit does, and additionally logs it
// through the *slog.Logger attached to ctx (see ContextWithLogger),
// severity-mapped via slogLevel. Logging happens unconditionally, even for
// a diagnostic buffered inside an open Transact and later discarded — the
// log line is an operational record of "this was considered", independent
// of whether the diagnostic survives into the committed set a consumer
// sees.
func (e *Engine) EmitContext(ctx context.Context, d Diagnostic) {
	logger := LoggerFromContext(ctx)
	logger.Log(ctx, slogLevel(d.Severity), d.Message,
		"severity", d.Severity.String(),
		"offset", d.Location.Start,
	)

	if n := len(e.txStack); n > 0 {
		e.txStack[n-1] = append(e.txStack[n-1], d)
		return
	}
	e.commitOne(d)
}

// commitOne appends d to the permanent record, in insertion order, and
// notifies every registered consumer in registration order.
func (e *Engine) commitOne(d Diagnostic) {
	e.all = append(e.all, d)
	for _, tok := range e.order {
		if c, ok := e.consumers[tok]; ok {
			c(d)
		}
	}
}

// All returns every committed diagnostic, in the order it was emitted.
func (e *Engine) All() []Diagnostic {
	out := make([]Diagnostic, len(e.all))
	copy(out, e.all)
	return out
}

// HasErrors reports whether any committed diagnostic has Severity Error.
func (e *Engine) HasErrors() bool {
	for _, d := range e.all {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Transact runs fn against a fresh side buffer. If fn returns true (commit)
// the buffered diagnostics are appended to the engine (or to the enclosing
// transaction's buffer, if nested) in the order they were emitted, and
// consumers are notified only once the outermost enclosing transaction
// commits. If fn returns false (discard) the buffered diagnostics vanish
// as if they had never been emitted — this is the mechanism backtracking
// parsers use to try an interpretation speculatively.
func (e *Engine) Transact(fn func() bool) {
	e.txStack = append(e.txStack, nil)
	commit := fn()
	n := len(e.txStack)
	buf := e.txStack[n-1]
	e.txStack = e.txStack[:n-1]

	if !commit {
		return
	}
	if len(e.txStack) > 0 {
		outer := len(e.txStack) - 1
		e.txStack[outer] = append(e.txStack[outer], buf...)
		return
	}
	for _, d := range buf {
		e.commitOne(d)
	}
}
