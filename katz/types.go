// Package katz defines configuration options, the β bias variant, and
// sentinel errors for Katz centrality computation on weighted graphs.
//
// Katz centrality scores every vertex by its direct neighbors plus an
// attenuated contribution from longer-range connections:
//
//	x_n = α · Σ_m A[n][m] · x_m + β_n
//
// with attenuation factor α (conventionally 0 < α < 1/λ_max, where λ_max is
// the largest eigenvalue of the adjacency matrix) and an additive per-vertex
// bias β. Two solvers share this contract:
//
//   - Centrality      — power iteration over a sparse adjacency snapshot.
//   - CentralityDense — one dense linear-system solve of (I − αA)x = β.
//
// Options:
//
//	– Alpha:     attenuation factor (default 0.1). NOT validated against the
//	             spectral radius; convergence is the caller's responsibility.
//	– Beta:      scalar, positional sequence, or per-vertex map (default 1.0).
//	– MaxIter:   iteration budget for Centrality (default 1000).
//	– Tol:       convergence tolerance for Centrality (default 1e-6).
//	– Init:      optional starting vector for Centrality (default all zeros).
//	– Normalize: scale the result by its (signed) Euclidean norm (default true).
//
// Errors (sentinel):
//
//	– ErrNilGraph             if the provided graph pointer is nil.
//	– ErrMultigraphUnsupported if the graph permits parallel edges.
//	– ErrNotConverged         if MaxIter passes without meeting Tol.
//	– ErrSingularSystem       if (I − αA) is singular or numerically degenerate.
//	– ErrMissingBeta          if β does not cover every vertex.
//	– ErrMissingInitial       if Init does not cover every vertex.
//	– ErrBadTolerance         if Tol <= 0 (panic in the option constructor).
//	– ErrBadMaxIter           if MaxIter < 1 (panic in the option constructor).
package katz

import "errors"

// Sentinel errors returned by the Katz solvers.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to a solver.
	ErrNilGraph = errors.New("katz: graph is nil")

	// ErrMultigraphUnsupported indicates the graph permits parallel edges;
	// Katz centrality is defined on simple graphs only. The capability flag
	// is rejected before any node data is read.
	ErrMultigraphUnsupported = errors.New("katz: multigraphs are not supported")

	// ErrNotConverged indicates the power iteration exhausted its iteration
	// budget without the L1 difference between passes dropping below
	// VertexCount·Tol. No partial result is returned.
	ErrNotConverged = errors.New("katz: power iteration failed to converge")

	// ErrSingularSystem indicates the dense solve of (I − αA)x = β failed
	// because the system is singular or numerically degenerate, typically
	// when α is at or beyond 1/λ_max.
	ErrSingularSystem = errors.New("katz: linear system is singular or ill-conditioned")

	// ErrMissingBeta indicates the supplied β mapping or sequence does not
	// provide a value for every vertex of the graph.
	ErrMissingBeta = errors.New("katz: beta does not cover every vertex")

	// ErrMissingInitial indicates the supplied starting vector does not
	// provide a value for every vertex of the graph.
	ErrMissingInitial = errors.New("katz: initial vector does not cover every vertex")

	// ErrBadTolerance indicates Tol was set to zero or a negative value.
	ErrBadTolerance = errors.New("katz: Tol must be positive")

	// ErrBadMaxIter indicates MaxIter was set below 1.
	ErrBadMaxIter = errors.New("katz: MaxIter must be at least 1")
)

// Default parameter values shared by both solvers.
const (
	// DefaultAlpha is the conventional attenuation factor.
	DefaultAlpha = 0.1

	// DefaultBetaValue is the uniform bias broadcast to every vertex.
	DefaultBetaValue = 1.0

	// DefaultTol is the convergence tolerance of the power iteration.
	DefaultTol = 1e-6

	// DefaultMaxIter is the iteration budget of the power iteration.
	DefaultMaxIter = 1000
)

// betaKind tags the three accepted β shapes.
type betaKind int

const (
	betaScalar   betaKind = iota // one value broadcast to every vertex
	betaSequence                 // positional, aligned with the sorted vertex order
	betaByID                     // explicit per-vertex mapping
)

// Beta is the additive bias term resolved once at the API boundary into a
// per-vertex column before any numeric work begins. Construct it with
// BetaScalar, BetaSequence, or BetaByID; the zero value broadcasts 0.
type Beta struct {
	kind   betaKind
	scalar float64
	seq    []float64
	byID   map[string]float64
}

// BetaScalar broadcasts the single value v to every vertex.
func BetaScalar(v float64) Beta {
	return Beta{kind: betaScalar, scalar: v}
}

// BetaSequence aligns vals positionally with the graph's sorted vertex
// order. The length must equal the vertex count at resolve time, otherwise
// the solver fails with ErrMissingBeta.
func BetaSequence(vals []float64) Beta {
	return Beta{kind: betaSequence, seq: vals}
}

// BetaByID supplies an explicit per-vertex bias. Every vertex of the graph
// must be present at resolve time, otherwise the solver fails with
// ErrMissingBeta.
func BetaByID(m map[string]float64) Beta {
	return Beta{kind: betaByID, byID: m}
}

// Options configures both Katz solvers. CentralityDense ignores MaxIter,
// Tol and Init (the dense path has no iteration).
type Options struct {
	Alpha     float64            // attenuation factor; admissible range is the caller's responsibility
	Beta      Beta               // additive bias term
	MaxIter   int                // power-iteration budget (Centrality only)
	Tol       float64            // convergence tolerance (Centrality only)
	Init      map[string]float64 // optional starting vector (Centrality only)
	Normalize bool               // scale the result by its (signed) L2 norm
}

// Option represents a functional option for configuring a solver call.
type Option func(*Options)

// WithAlpha sets the attenuation factor. No admissible-range validation is
// performed: callers choosing α ≥ 1/λ_max own the consequences (divergence
// for Centrality, a singular system for CentralityDense).
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithBeta sets the additive bias term.
func WithBeta(b Beta) Option {
	return func(o *Options) { o.Beta = b }
}

// WithMaxIter sets the power-iteration budget.
// Must be at least 1; smaller values cause ErrBadMaxIter.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic(ErrBadMaxIter.Error())
	}

	return func(o *Options) { o.MaxIter = n }
}

// WithTol sets the convergence tolerance of the power iteration.
// Must be positive; zero or negative values cause ErrBadTolerance.
func WithTol(tol float64) Option {
	if tol <= 0 {
		panic(ErrBadTolerance.Error())
	}

	return func(o *Options) { o.Tol = tol }
}

// WithInit sets the starting vector of the power iteration. The map must
// contain a value for every vertex; missing entries cause ErrMissingInitial
// at solve time. The map is read, never mutated.
func WithInit(init map[string]float64) Option {
	return func(o *Options) { o.Init = init }
}

// WithNormalize toggles scaling of the result by its Euclidean norm
// (signed norm for the dense solver).
func WithNormalize(on bool) Option {
	return func(o *Options) { o.Normalize = on }
}

// DefaultOptions returns an Options struct with the conventional defaults:
// Alpha 0.1, Beta scalar 1.0, MaxIter 1000, Tol 1e-6, no Init, Normalize on.
func DefaultOptions() Options {
	return Options{
		Alpha:     DefaultAlpha,
		Beta:      BetaScalar(DefaultBetaValue),
		MaxIter:   DefaultMaxIter,
		Tol:       DefaultTol,
		Init:      nil,
		Normalize: true,
	}
}

// resolve flattens the tagged β variant into a column aligned with order,
// one entry per vertex. It is the single place β shape rules are enforced.
func (b Beta) resolve(order []string) ([]float64, error) {
	col := make([]float64, len(order))

	switch b.kind {
	case betaScalar:
		for i := range col {
			col[i] = b.scalar
		}
	case betaSequence:
		if len(b.seq) != len(order) {
			return nil, errLengthMismatch(len(b.seq), len(order))
		}
		copy(col, b.seq)
	case betaByID:
		for i, id := range order {
			v, ok := b.byID[id]
			if !ok {
				return nil, errMissingVertex(ErrMissingBeta, id)
			}
			col[i] = v
		}
	}

	return col, nil
}
