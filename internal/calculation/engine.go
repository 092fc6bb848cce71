package calculation

// Engine runs stochastic wealth-path simulations and deterministic
// cash-flow projections over a shared set of household inputs. It holds no
// mutable state between calls; every invocation is independent and
// re-entrant, so a single Engine may serve concurrent callers.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger replaces the engine's logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}
