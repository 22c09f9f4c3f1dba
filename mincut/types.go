package mincut

import (
	"errors"
	"time"

	"github.com/rossjdharrison/harmony-design-sub007/core"
)

// Sentinel errors returned by the partitioning entry points.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("mincut: graph is nil")

	// ErrTooFewPartitions indicates PartitionMultiWay was called with k < 2.
	ErrTooFewPartitions = errors.New("mincut: k must be at least 2")

	// ErrBadIterations indicates a non-positive Karger iteration count.
	ErrBadIterations = errors.New("mincut: karger iterations must be positive")

	// ErrBadTolerance indicates a balance tolerance outside [0, 1].
	ErrBadTolerance = errors.New("mincut: balance tolerance must be in [0,1]")

	// ErrBadTimeBudget indicates a negative time budget.
	ErrBadTimeBudget = errors.New("mincut: time budget must be non-negative")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("mincut: workers must be positive")

	// ErrBadThreshold indicates a non-positive auto-selection threshold.
	ErrBadThreshold = errors.New("mincut: auto threshold must be positive")

	// ErrNegativeWeight indicates that the EdgeWeight override produced a
	// negative weight for some edge.
	ErrNegativeWeight = errors.New("mincut: edge weight function returned a negative weight")

	// ErrUnknownAlgorithm indicates an Algorithm value out of range.
	ErrUnknownAlgorithm = errors.New("mincut: unknown algorithm")
)

// Algorithm selects the 2-way min-cut solver.
type Algorithm int

const (
	// Auto picks Stoer–Wagner for graphs below the auto threshold
	// (default 100 nodes) and Karger otherwise.
	Auto Algorithm = iota

	// StoerWagner forces the exact deterministic solver.
	StoerWagner

	// Karger forces the randomized contraction solver.
	Karger
)

// String returns the algorithm tag used in Result.Algorithm.
func (a Algorithm) String() string {
	switch a {
	case Auto:
		return "auto"
	case StoerWagner:
		return "stoer-wagner"
	case Karger:
		return "karger"
	default:
		return "unknown"
	}
}

// Default option values.
const (
	// DefaultKargerIterations is the number of independent contraction
	// trials when not overridden.
	DefaultKargerIterations = 100

	// DefaultBalanceTolerance caps |size1−size2|/total after rebalancing.
	DefaultBalanceTolerance = 0.2

	// DefaultTimeBudget is the per-call soft deadline.
	DefaultTimeBudget = 15 * time.Millisecond

	// DefaultAutoThreshold is the node count at which Auto switches from
	// Stoer–Wagner to Karger.
	DefaultAutoThreshold = 100
)

// Options configures Partition and PartitionMultiWay.
//
// Construct with DefaultOptions and override via the functional Option
// helpers; invalid values surface as sentinel errors at call time.
type Options struct {
	// Algorithm selects the 2-way solver (default Auto).
	Algorithm Algorithm

	// KargerIterations is the number of independent trials (default 100).
	KargerIterations int

	// BalanceConstraint enables the greedy size-balance post-pass.
	BalanceConstraint bool

	// BalanceTolerance is the maximum |size1−size2|/total after the
	// balance pass (default 0.2).
	BalanceTolerance float64

	// TimeBudget is the cooperative soft deadline for the whole call
	// (default 15ms). Zero means "already expired": solvers return a
	// valid trivial result with bounded overhead.
	TimeBudget time.Duration

	// Seed drives Karger's RNG. Seed 0 maps to a fixed default seed so
	// results stay reproducible by default.
	Seed int64

	// Workers is the Karger trial parallelism (default 1). Trials are
	// independent; the winning trial does not depend on worker count.
	Workers int

	// AutoThreshold is the node count at which Auto switches solvers
	// (default 100).
	AutoThreshold int

	// EdgeWeight optionally remaps each edge's weight before solving.
	// Nil uses the weight stored in the graph.
	EdgeWeight func(core.Edge) float64

	// Logger receives Debug progress and Warn degraded-path events.
	// Nil disables logging.
	Logger Logger
}

// Option is a functional option for configuring the partitioner.
type Option func(*Options)

// WithAlgorithm forces a specific 2-way solver.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algorithm = a }
}

// WithKargerIterations sets the number of independent Karger trials.
func WithKargerIterations(n int) Option {
	return func(o *Options) { o.KargerIterations = n }
}

// WithBalanceConstraint enables the greedy size-balance post-pass.
func WithBalanceConstraint() Option {
	return func(o *Options) { o.BalanceConstraint = true }
}

// WithBalanceTolerance sets the allowed size imbalance ratio in [0,1].
func WithBalanceTolerance(tol float64) Option {
	return func(o *Options) { o.BalanceTolerance = tol }
}

// WithTimeBudget sets the per-call cooperative deadline.
func WithTimeBudget(d time.Duration) Option {
	return func(o *Options) { o.TimeBudget = d }
}

// WithSeed fixes the Karger RNG seed (0 maps to the default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers sets the Karger trial worker-pool size.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithAutoThreshold sets the node count at which Auto switches from
// Stoer–Wagner to Karger.
func WithAutoThreshold(n int) Option {
	return func(o *Options) { o.AutoThreshold = n }
}

// WithEdgeWeight remaps edge weights before solving. The function must
// return non-negative values; negative results fail the call with
// ErrNegativeWeight.
func WithEdgeWeight(fn func(core.Edge) float64) Option {
	return func(o *Options) { o.EdgeWeight = fn }
}

// WithLogger attaches a structured logger for progress and warnings.
func WithLogger(l Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns production-safe defaults: Auto algorithm, 100
// Karger trials, no balance constraint, tolerance 0.2, 15ms budget,
// default seed, one worker.
func DefaultOptions() Options {
	return Options{
		Algorithm:        Auto,
		KargerIterations: DefaultKargerIterations,
		BalanceTolerance: DefaultBalanceTolerance,
		TimeBudget:       DefaultTimeBudget,
		Workers:          1,
		AutoThreshold:    DefaultAutoThreshold,
	}
}

// validate checks option values, returning the first sentinel violation.
func (o *Options) validate() error {
	if o.Algorithm < Auto || o.Algorithm > Karger {
		return ErrUnknownAlgorithm
	}
	if o.KargerIterations <= 0 {
		return ErrBadIterations
	}
	if o.BalanceTolerance < 0 || o.BalanceTolerance > 1 {
		return ErrBadTolerance
	}
	if o.TimeBudget < 0 {
		return ErrBadTimeBudget
	}
	if o.Workers <= 0 {
		return ErrBadWorkers
	}
	if o.AutoThreshold <= 0 {
		return ErrBadThreshold
	}

	return nil
}

// CutEdge is one crossing edge of a reported cut, endpoints canonicalized
// so that From < To lexicographically.
type CutEdge struct {
	From   string
	To     string
	Weight float64
}

// Result is the outcome of a 2-way partition call. It is immutable once
// returned; all bookkeeping used to produce it is discarded.
type Result struct {
	// Partition1 and Partition2 are disjoint sorted node-ID sets whose
	// union is the full node set of the input graph.
	Partition1 []string
	Partition2 []string

	// CutWeight is the total weight of edges crossing the partition,
	// computed against the original adjacency.
	CutWeight float64

	// CutEdges lists every crossing edge, sorted by (From, To).
	CutEdges []CutEdge

	// Algorithm records which solver produced the cut.
	Algorithm Algorithm

	// Duration is the wall-clock time spent in the call.
	Duration time.Duration
}
