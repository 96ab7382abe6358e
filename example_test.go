package voronoi1d_test

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/hupe1980/voronoi1d"
)

// ExamplePartition demonstrates deterministic quantile seeding with Lloyd
// relaxation.
func ExamplePartition() {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	res, err := voronoi1d.Partition(values, 3,
		voronoi1d.WithInitMethod(voronoi1d.InitQuantile),
		voronoi1d.WithLloydIterations(10),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Seeds)
	for i, cluster := range res.Clusters {
		fmt.Println(i, cluster)
	}
	// Output:
	// [1.5 5 8]
	// 0 [0 1 2 3]
	// 1 [4 5 6]
	// 2 [7 8 9]
}

// ExamplePartition_withRNG demonstrates reproducible random initialization
// via an injected generator.
func ExamplePartition_withRNG() {
	values := []float64{1, 2, 3, 10, 11, 12}

	first, err := voronoi1d.Partition(values, 2,
		voronoi1d.WithRNG(rand.New(rand.NewSource(42))),
		voronoi1d.WithLloydIterations(10),
	)
	if err != nil {
		log.Fatal(err)
	}

	second, err := voronoi1d.Partition(values, 2,
		voronoi1d.WithRNG(rand.New(rand.NewSource(42))),
		voronoi1d.WithLloydIterations(10),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(first.Seeds) == len(second.Seeds))
	fmt.Println(first.Seeds[0] == second.Seeds[0])
	// Output:
	// true
	// true
}
