// Package voronoi1d partitions a list of real numbers into a fixed number of
// groups using one-dimensional Voronoi partitioning, optionally refined by
// Lloyd relaxation (the 1D analogue of k-means).
//
// # Quick Start
//
//	res, err := voronoi1d.Partition([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 3,
//	    voronoi1d.WithInitMethod(voronoi1d.InitQuantile),
//	    voronoi1d.WithLloydIterations(10),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Seeds)    // final seed positions
//	fmt.Println(res.Clusters) // one value slice per seed, input order preserved
//
// # Model
//
// Each seed is a real-number position standing for one cluster's center. A
// value belongs to the seed minimizing |value - seed|; exact-distance ties go
// to the lowest seed index. A Lloyd iteration reassigns every value and moves
// each non-empty seed to the mean of its members; relaxation stops early once
// a pass moves no seed.
//
// Seeds are initialized either from evenly spaced interior quantiles of the
// sorted input (deterministic, data-adaptive) or from uniform random draws
// over the data range. Random initialization accepts an injected *rand.Rand
// via WithRNG so results can be made reproducible.
//
// The subpackages parse and export cover the boundary concerns around the
// core: turning user-typed number lists into []float64, and rendering results
// as text or CSV.
package voronoi1d
