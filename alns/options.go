package alns

import "github.com/walnuthoram2/ALNS/alnscore"

// engineConfig accumulates the options NewEngine applies in order before
// the first Iterate call.
type engineConfig struct {
	seed         int64
	strict       bool
	collectStats bool
	logger       alnscore.Logger
}

func newEngineConfig() engineConfig {
	return engineConfig{
		collectStats: true,
		logger:       alnscore.NopLogger{},
	}
}

// EngineOption customizes an Engine by mutating its engineConfig before
// construction completes.
type EngineOption func(*engineConfig)

// WithSeed fixes the engine's base RNG seed for reproducible runs. seed==0
// selects alnscore's stable default seed.
func WithSeed(seed int64) EngineOption {
	return func(c *engineConfig) {
		c.seed = seed
	}
}

// WithStrictMode makes a non-finite candidate objective propagate out of
// Iterate as an *alnscore.InvalidObjectiveError instead of being recovered
// locally (the candidate rejected, the iteration continuing).
func WithStrictMode(strict bool) EngineOption {
	return func(c *engineConfig) {
		c.strict = strict
	}
}

// WithCollectStatistics toggles per-iteration Statistics recording.
// Collection is enabled by default; disabling it trades observability for
// the allocation cost of a long run's history.
func WithCollectStatistics(collect bool) EngineOption {
	return func(c *engineConfig) {
		c.collectStats = collect
	}
}

// WithLogger attaches a Logger the engine forwards its own diagnostics to,
// and wires into any selection.Scheme or acceptance.Criterion implementing
// alnscore.LoggerAware. Passing a nil logger panics: a caller opting into
// WithLogger is explicitly asking for a non-default logger, so a nil value
// is a programmer error rather than a silent no-op.
func WithLogger(logger alnscore.Logger) EngineOption {
	if logger == nil {
		panic("alns: WithLogger(nil)")
	}
	return func(c *engineConfig) {
		c.logger = logger
	}
}
