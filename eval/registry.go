package eval

import (
	"github.com/bmatsuo/subscheme/environ"
	"github.com/bmatsuo/subscheme/lisp"
	"github.com/bmatsuo/subscheme/symbol"
)

// Handler evaluates one special form.  The handler receives the whole form,
// including its leading tag symbol, and the environment of the evaluation.
type Handler func(ev *Evaluator, form lisp.LVal, env *environ.Environ) (lisp.LVal, error)

// Registry maps form tags to handlers.  A registry is populated during
// startup and treated as read-only once evaluation begins, so handler lookup
// on the hot path takes no locks.
type Registry struct {
	handlers map[symbol.ID]Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[symbol.ID]Handler)}
}

// Register binds tag to h, replacing any previous handler for tag.
func (r *Registry) Register(tag symbol.ID, h Handler) {
	r.handlers[tag] = h
}

// Handler returns the handler bound to tag.
func (r *Registry) Handler(tag symbol.ID) (Handler, bool) {
	h, ok := r.handlers[tag]
	return h, ok
}

// RegisterDefaults installs the standard special forms.
func (r *Registry) RegisterDefaults() {
	r.Register(symQuote, formQuote)
	r.Register(symSet, formSet)
	r.Register(symDefine, formDefine)
	r.Register(symIf, formIf)
	r.Register(symLambda, formLambda)
	r.Register(symBegin, formBegin)
}
