package advice

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/maumlab/maumlog/internal/journal"
)

// Engine generates coaching advice by matching the loaded dataset
// against a journal summary. Generate never returns an error: every
// failure mode resolves to one of the fixed fallback messages.
type Engine struct {
	loader *Loader
	log    *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand overrides the random source used for record selection.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// NewEngine creates an advice engine over the given dataset loader.
func NewEngine(loader *Loader, log *zap.Logger, opts ...Option) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		loader: loader,
		log:    log,
		rng:    rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// pickIndex returns a uniform random index below n.
func (e *Engine) pickIndex(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.IntN(n)
}

// Generate composes the advice message for the summary and period
// label. It ensures the dataset is loaded (sharing one in-flight fetch
// among concurrent callers) and always returns a displayable string.
func (e *Engine) Generate(ctx context.Context, sum *journal.Summary, periodLabel string) (text string) {
	records, err := e.loader.Records(ctx)
	if err != nil {
		e.log.Warn("advice dataset unavailable", zap.Error(err))
		return MsgDataUnavailable
	}
	if len(records) == 0 || sum == nil {
		return MsgDataUnavailable
	}
	if sum.Total() == 0 {
		return MsgNoActivity
	}

	defer func() {
		if r := recover(); r != nil {
			e.log.Error("advice composition failed", zap.Any("panic", r))
			text = MsgGenerationFailed
		}
	}()

	c := &composition{engine: e, records: records, sum: sum, label: periodLabel}
	return c.build()
}
