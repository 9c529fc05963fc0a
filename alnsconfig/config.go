package alnsconfig

// RunConfig is the declarative description of one Iterate call: engine
// options plus the selection/acceptance/stopping instances to build.
type RunConfig struct {
	Seed              int64 `yaml:"seed" mapstructure:"seed"`
	StrictMode        bool  `yaml:"strict_mode" mapstructure:"strict_mode"`
	CollectStatistics bool  `yaml:"collect_statistics" mapstructure:"collect_statistics"`

	Selection  SelectionConfig  `yaml:"selection" mapstructure:"selection"`
	Acceptance AcceptanceConfig `yaml:"acceptance" mapstructure:"acceptance"`
	Stopping   StoppingConfig   `yaml:"stopping" mapstructure:"stopping"`
}

// SelectionConfig describes one OperatorSelectionScheme. Scheme selects
// which constructor Build uses; the remaining fields are interpreted
// according to it, and fields irrelevant to the chosen scheme are ignored.
type SelectionConfig struct {
	// Scheme is one of "roulette_wheel", "segmented_roulette_wheel",
	// "alpha_ucb".
	Scheme string `yaml:"scheme" mapstructure:"scheme"`

	NumDestroy int `yaml:"num_destroy" mapstructure:"num_destroy"`
	NumRepair  int `yaml:"num_repair" mapstructure:"num_repair"`

	// Scores is the ScoreVector, in [BEST, BETTER, ACCEPT, REJECT] order.
	// Used by roulette_wheel, segmented_roulette_wheel, alpha_ucb.
	Scores [4]float64 `yaml:"scores" mapstructure:"scores"`

	// Decay is RouletteWheel/SegmentedRouletteWheel's weight-update decay.
	Decay float64 `yaml:"decay" mapstructure:"decay"`
	// SegmentLength is segmented_roulette_wheel's fold interval.
	SegmentLength int `yaml:"segment_length" mapstructure:"segment_length"`
	// Alpha is alpha_ucb's exploration weight, in (0,1].
	Alpha float64 `yaml:"alpha" mapstructure:"alpha"`
}

// AcceptanceConfig describes one AcceptanceCriterion.
type AcceptanceConfig struct {
	// Criterion is one of "always", "hill_climbing", "late_acceptance",
	// "record_to_record_travel", "simulated_annealing",
	// "threshold_accepting", "great_deluge", "non_linear_great_deluge".
	Criterion string `yaml:"criterion" mapstructure:"criterion"`

	// Start, End, Step, Method parameterize the threshold-style criteria
	// (record_to_record_travel, simulated_annealing, threshold_accepting,
	// great_deluge, non_linear_great_deluge). Method is "linear" or
	// "exponential".
	Start  float64 `yaml:"start" mapstructure:"start"`
	End    float64 `yaml:"end" mapstructure:"end"`
	Step   float64 `yaml:"step" mapstructure:"step"`
	Method string  `yaml:"method" mapstructure:"method"`

	// Autofit, when true, derives Start/End/Step from
	// InitialObjective/Worse/AcceptProbability/NumIters instead of using
	// the explicit Start/End/Step above. Only valid for
	// simulated_annealing and record_to_record_travel.
	Autofit           bool    `yaml:"autofit" mapstructure:"autofit"`
	InitialObjective  float64 `yaml:"initial_objective" mapstructure:"initial_objective"`
	Worse             float64 `yaml:"worse" mapstructure:"worse"`
	AcceptProbability float64 `yaml:"accept_probability" mapstructure:"accept_probability"`
	NumIters          int     `yaml:"num_iters" mapstructure:"num_iters"`

	// Length, Greedy, BetterHistory parameterize late_acceptance.
	Length        int  `yaml:"length" mapstructure:"length"`
	Greedy        bool `yaml:"greedy" mapstructure:"greedy"`
	BetterHistory bool `yaml:"better_history" mapstructure:"better_history"`
}

// StoppingConfig describes one StoppingCriterion.
type StoppingConfig struct {
	// Criterion is one of "max_iterations", "max_runtime", "no_improvement".
	Criterion string `yaml:"criterion" mapstructure:"criterion"`

	MaxIterations         int     `yaml:"max_iterations" mapstructure:"max_iterations"`
	MaxRuntimeSeconds     float64 `yaml:"max_runtime_seconds" mapstructure:"max_runtime_seconds"`
	NoImprovementMaxIters int     `yaml:"no_improvement_max_iters" mapstructure:"no_improvement_max_iters"`
}
