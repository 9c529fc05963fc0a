package alns

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/walnuthoram2/ALNS/acceptance"
	"github.com/walnuthoram2/ALNS/alnscore"
	"github.com/walnuthoram2/ALNS/selection"
	"github.com/walnuthoram2/ALNS/stopping"
)

// OnBestCallback is invoked synchronously whenever an iteration produces a
// new global best. It may return a replacement state: if ok is true and
// the replacement strictly improves on the objective just recorded as
// best, it takes over as both best and current. Called at most once per
// callback per iteration.
type OnBestCallback func(best alnscore.SolutionState, rng alnscore.RandomSource) (replacement alnscore.SolutionState, ok bool)

// contextSetter is implemented by selection schemes (selection.MABSelector)
// that need a context vector fetched and handed to them immediately before
// Choose. Not exported: only the engine is positioned to fetch a state's
// context and preserve the fixed RNG/context consumption order.
type contextSetter interface {
	SetContext(context []float64)
}

// Engine orchestrates the destroy/repair/selection/acceptance/stopping
// loop over a caller-supplied SolutionState. The zero value is not usable;
// construct with NewEngine.
type Engine struct {
	cfg engineConfig

	destroyOps []alnscore.Operator
	repairOps  []alnscore.Operator
	destroyIdx map[string]int
	repairIdx  map[string]int

	onBest []OnBestCallback
}

// NewEngine constructs an Engine, applying opts in order.
func NewEngine(opts ...EngineOption) *Engine {
	cfg := newEngineConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{
		cfg:        cfg,
		destroyIdx: make(map[string]int),
		repairIdx:  make(map[string]int),
	}
}

// AddDestroyOperator registers a destroy operator under name. Names must be
// unique within their kind; a duplicate destroy name is a ConfigurationError.
func (e *Engine) AddDestroyOperator(name string, fn alnscore.OperatorFunc) error {
	if fn == nil {
		return alnscore.NewConfigurationError("destroy operator %q has a nil function", name)
	}
	if _, exists := e.destroyIdx[name]; exists {
		return alnscore.NewConfigurationError("destroy operator name %q already registered", name)
	}
	e.destroyIdx[name] = len(e.destroyOps)
	e.destroyOps = append(e.destroyOps, alnscore.Operator{Name: name, Kind: alnscore.Destroy, Func: fn})
	return nil
}

// AddRepairOperator registers a repair operator under name. Names must be
// unique within their kind; a duplicate repair name is a ConfigurationError.
func (e *Engine) AddRepairOperator(name string, fn alnscore.OperatorFunc) error {
	if fn == nil {
		return alnscore.NewConfigurationError("repair operator %q has a nil function", name)
	}
	if _, exists := e.repairIdx[name]; exists {
		return alnscore.NewConfigurationError("repair operator name %q already registered", name)
	}
	e.repairIdx[name] = len(e.repairOps)
	e.repairOps = append(e.repairOps, alnscore.Operator{Name: name, Kind: alnscore.Repair, Func: fn})
	return nil
}

// OnBest registers a callback fired whenever an iteration finds a new
// global best.
func (e *Engine) OnBest(cb OnBestCallback) {
	if cb == nil {
		panic("alns: OnBest(nil)")
	}
	e.onBest = append(e.onBest, cb)
}

// Iterate runs the search loop described by the engine design this module
// implements: choose an operator pair, destroy, repair, classify the
// candidate, accept or reject, feed the outcome back to the selection
// scheme, tick the acceptance criterion's schedule if it has one, record
// statistics, and check the stopping criterion, in that strict order,
// until it reports true.
func (e *Engine) Iterate(
	initial alnscore.SolutionState,
	scheme selection.Scheme,
	accept acceptance.Criterion,
	stop stopping.Criterion,
	params alnscore.Params,
) (*Result, error) {
	if len(e.destroyOps) == 0 {
		return nil, alnscore.NewConfigurationError("no destroy operators registered")
	}
	if len(e.repairOps) == 0 {
		return nil, alnscore.NewConfigurationError("no repair operators registered")
	}
	if scheme.NumDestroy() != len(e.destroyOps) {
		return nil, alnscore.NewConfigurationError("selection scheme expects %d destroy operators, %d registered", scheme.NumDestroy(), len(e.destroyOps))
	}
	if scheme.NumRepair() != len(e.repairOps) {
		return nil, alnscore.NewConfigurationError("selection scheme expects %d repair operators, %d registered", scheme.NumRepair(), len(e.repairOps))
	}

	requiresContext := false
	if rc, ok := scheme.(selection.RequiresContext); ok {
		requiresContext = rc.RequiresContext()
	}
	if requiresContext {
		if _, ok := initial.(alnscore.ContextualState); !ok {
			return nil, alnscore.NewConfigurationError("selection scheme requires a ContextualState initial solution")
		}
	}

	if la, ok := scheme.(alnscore.LoggerAware); ok {
		la.SetLogger(e.cfg.logger)
	}
	if la, ok := accept.(alnscore.LoggerAware); ok {
		la.SetLogger(e.cfg.logger)
	}

	rng := alnscore.NewRandomSource(e.cfg.seed)
	runID := uuid.New()

	current := initial
	best := initial.Clone()
	stats := newStatistics(e.destroyOps, e.repairOps)

	iteration := 0
	for !stop.Stop(rng, best.Objective(), current.Objective()) {
		start := time.Now()

		if requiresContext {
			if setter, ok := scheme.(contextSetter); ok {
				ctx := current.(alnscore.ContextualState).Context()
				setter.SetContext(ctx)
			}
		}

		dIdx, rIdx, err := scheme.Choose(rng, best, current)
		if err != nil {
			return nil, err
		}

		destroyOp := e.destroyOps[dIdx]
		destroyed, err := destroyOp.Func(current, rng, params)
		if err != nil {
			return nil, &alnscore.UserOperatorError{Iteration: iteration, OperatorName: destroyOp.Name, Kind: alnscore.Destroy, Err: err}
		}

		repairOp := e.repairOps[rIdx]
		candidate, err := repairOp.Func(destroyed, rng, params)
		if err != nil {
			return nil, &alnscore.UserOperatorError{Iteration: iteration, OperatorName: repairOp.Name, Kind: alnscore.Repair, Err: err}
		}

		candidateObjective := candidate.Objective()
		currentObjective := current.Objective()

		var outcome alnscore.OutcomeCategory
		if math.IsNaN(candidateObjective) || math.IsInf(candidateObjective, 0) {
			e.cfg.logger.Warn("non-finite candidate objective, rejecting", map[string]any{
				"iteration": iteration,
				"objective": candidateObjective,
				"run_id":    runID.String(),
			})
			if e.cfg.strict {
				return nil, &alnscore.InvalidObjectiveError{Iteration: iteration, Objective: candidateObjective}
			}
			outcome = alnscore.Reject
		} else if cat, decided := alnscore.ClassifyImprovement(candidateObjective, currentObjective, best.Objective()); decided {
			outcome = cat
			switch cat {
			case alnscore.Best:
				best = candidate
				current = candidate
				for _, cb := range e.onBest {
					if replacement, ok := cb(best, rng); ok && replacement.Objective() < best.Objective() {
						best = replacement
						current = replacement
					}
				}
			case alnscore.Better:
				current = candidate
			}
		} else if accept.Accept(rng, best.Objective(), currentObjective, candidateObjective) {
			outcome = alnscore.Accept
			current = candidate
		} else {
			outcome = alnscore.Reject
		}

		scheme.Update(candidate, dIdx, rIdx, outcome)

		if ticker, ok := accept.(acceptance.Ticker); ok {
			ticker.Tick(outcome != alnscore.Reject)
		}

		if e.cfg.collectStats {
			stats.record(IterationRecord{
				BestObjective:      best.Objective(),
				CurrentObjective:   current.Objective(),
				CandidateObjective: candidateObjective,
				Runtime:            time.Since(start),
			}, dIdx, rIdx, outcome)
		}

		iteration++
	}

	return &Result{
		RunID:         runID,
		Best:          best,
		BestObjective: best.Objective(),
		Statistics:    stats,
	}, nil
}
