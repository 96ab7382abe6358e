package voronoi1d

import (
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/voronoi1d/internal/quantile"
)

// InitMethod selects how seed positions are initialized.
type InitMethod int

const (
	// InitRandom draws seeds uniformly from [min(values), max(values)].
	// When all values are identical, every seed is pinned to that value.
	InitRandom InitMethod = iota

	// InitQuantile places seeds at evenly spaced interior quantiles of the
	// sorted input. Deterministic.
	InitQuantile
)

func (m InitMethod) String() string {
	switch m {
	case InitRandom:
		return "random"
	case InitQuantile:
		return "quantile"
	default:
		return "random" // unknown methods behave as InitRandom, see Partition
	}
}

// ParseInitMethod converts an init method name to its InitMethod value.
// Unlike Partition, which tolerates unknown InitMethod values, it rejects
// unknown names so user-facing surfaces fail loudly.
func ParseInitMethod(s string) (InitMethod, error) {
	switch s {
	case "random":
		return InitRandom, nil
	case "quantile":
		return InitQuantile, nil
	default:
		return 0, &ErrUnknownInitMethod{Name: s}
	}
}

// Result holds the outcome of a single Partition call. All fields are owned
// by the caller; the algorithm keeps no reference after returning.
type Result struct {
	// Clusters has one entry per seed index. Each cluster lists the input
	// values nearest to its seed, preserving their original input order.
	// Clusters may be empty but are never nil.
	Clusters [][]float64

	// Seeds are the final seed positions, indexed by cluster. Empty when the
	// input was empty.
	Seeds []float64

	// Iterations is the number of Lloyd passes actually run, including the
	// pass that detected convergence.
	Iterations int

	// Converged reports whether relaxation reached a fixed point (a pass in
	// which no seed moved) before the iteration budget ran out.
	Converged bool
}

// Partition splits values into seeds clusters by nearest-seed assignment
// under absolute distance, optionally refined by Lloyd relaxation
// (WithLloydIterations). Ties on exact distance go to the lowest seed index.
//
// seeds must be positive; *ErrInvalidSeedCount is returned otherwise. Empty
// input succeeds trivially with seeds empty clusters and no seed positions.
// An InitMethod value other than InitQuantile behaves as InitRandom.
func Partition(values []float64, seeds int, optFns ...Option) (*Result, error) {
	if seeds <= 0 {
		return nil, &ErrInvalidSeedCount{Count: seeds}
	}

	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	if len(values) == 0 {
		clusters := make([][]float64, seeds)
		for i := range clusters {
			clusters[i] = []float64{}
		}

		return &Result{Clusters: clusters, Seeds: []float64{}}, nil
	}

	var sites []float64
	if o.initMethod == InitQuantile {
		sites = quantileSeeds(values, seeds)
	} else {
		sites = randomSeeds(values, seeds, o.rng)
	}

	iterations := 0
	converged := false

	for i := 0; i < o.lloydIterations; i++ {
		next := relax(values, sites)
		iterations++

		if floats.Equal(next, sites) {
			converged = true

			break
		}

		sites = next
	}

	clusters := make([][]float64, seeds)
	for i := range clusters {
		clusters[i] = []float64{}
	}

	// Final assignment walks the original sequence so clusters keep input
	// order and carry the original values unmodified.
	for _, v := range values {
		s := nearestSite(v, sites)
		clusters[s] = append(clusters[s], v)
	}

	res := &Result{
		Clusters:   clusters,
		Seeds:      sites,
		Iterations: iterations,
		Converged:  converged,
	}

	o.logger.LogPartition(len(values), seeds, o.initMethod, res)

	return res, nil
}

// quantileSeeds places n seeds at the interior quantiles (i+1)/(n+1) of the
// sorted values, i = 0..n-1.
func quantileSeeds(values []float64, n int) []float64 {
	sorted := slices.Clone(values)
	sort.Float64s(sorted)

	sites := make([]float64, n)
	for i := range sites {
		p := float64(i+1) / float64(n+1)
		sites[i] = quantile.Linear(sorted, p)
	}

	return sites
}

// randomSeeds draws n seeds uniformly from the closed data range. A
// degenerate range (all values identical) pins every seed to that value.
func randomSeeds(values []float64, n int, rng RNG) []float64 {
	lo := floats.Min(values)
	hi := floats.Max(values)

	sites := make([]float64, n)
	if lo == hi {
		for i := range sites {
			sites[i] = lo
		}

		return sites
	}

	for i := range sites {
		sites[i] = lo + rng.Float64()*(hi-lo)
	}

	return sites
}

// relax runs one Lloyd pass: assign every value to its nearest site, then
// move each site with at least one member to the mean of its members. The
// input slice is not modified; the pass returns a fresh snapshot.
func relax(values, sites []float64) []float64 {
	sums := make([]float64, len(sites))
	counts := make([]int, len(sites))

	for _, v := range values {
		s := nearestSite(v, sites)
		sums[s] += v
		counts[s]++
	}

	next := slices.Clone(sites)
	for i := range next {
		if counts[i] > 0 {
			next[i] = sums[i] / float64(counts[i])
		}
	}

	return next
}

// nearestSite returns the index of the site minimizing |v - site|. The strict
// comparison keeps the lowest index on exact-distance ties.
func nearestSite(v float64, sites []float64) int {
	best := 0
	minDist := math.Inf(1)

	for i, s := range sites {
		if d := math.Abs(v - s); d < minDist {
			minDist = d
			best = i
		}
	}

	return best
}
