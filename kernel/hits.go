package kernel

import (
	"context"
	"fmt"
	"math"

	"pagedb/pagedb"
)

// HITS is a reference power-iteration HITS kernel producing hub and
// authority vectors. Like PageRank, it streams the link relation once per
// half-iteration rather than materialising the adjacency in memory.
type HITS struct {
	Iterations int
}

// NewHITS returns a HITS kernel with 20 iterations.
func NewHITS() *HITS {
	return &HITS{Iterations: 20}
}

// Run implements Kernel.
func (k *HITS) Run(ctx context.Context, stream pagedb.LinkStream, nPages uint64) (Result, error) {
	if nPages == 0 {
		return Result{Hubs: []float32{}, Authorities: []float32{}}, nil
	}

	iterations := k.Iterations
	if iterations <= 0 {
		iterations = 20
	}

	hubs := make([]float32, nPages)
	auth := make([]float32, nPages)
	for i := range hubs {
		hubs[i] = 1
		auth[i] = 1
	}

	nextHubs := make([]float32, nPages)
	nextAuth := make([]float32, nPages)
	var e pagedb.Edge

	for iter := 0; iter < iterations; iter++ {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("hits: %w", err)
		}

		for i := range nextAuth {
			nextAuth[i] = 0
		}
		if st := stream.Reset(); st == pagedb.StateError {
			return Result{}, fmt.Errorf("hits: reset stream: %w", streamErr(stream))
		}
		for {
			st := stream.Next(&e)
			if st == pagedb.StateEnd {
				break
			}
			if st == pagedb.StateError {
				return Result{}, fmt.Errorf("hits: read edge: %w", streamErr(stream))
			}
			if e.From >= nPages || e.To >= nPages {
				continue
			}
			nextAuth[e.To] += hubs[e.From]
		}
		normalize(nextAuth)

		for i := range nextHubs {
			nextHubs[i] = 0
		}
		if st := stream.Reset(); st == pagedb.StateError {
			return Result{}, fmt.Errorf("hits: reset stream: %w", streamErr(stream))
		}
		for {
			st := stream.Next(&e)
			if st == pagedb.StateEnd {
				break
			}
			if st == pagedb.StateError {
				return Result{}, fmt.Errorf("hits: read edge: %w", streamErr(stream))
			}
			if e.From >= nPages || e.To >= nPages {
				continue
			}
			nextHubs[e.From] += nextAuth[e.To]
		}
		normalize(nextHubs)

		auth, nextAuth = nextAuth, auth
		hubs, nextHubs = nextHubs, hubs
	}

	return Result{Hubs: hubs, Authorities: auth}, nil
}

// normalize scales v to unit L2 norm in place, leaving it untouched if it
// is all zero.
func normalize(v []float32) {
	var sumSq float64
	for _, x := range v {
		sumSq += float64(x) * float64(x)
	}
	if sumSq == 0 {
		return
	}
	norm := float32(math.Sqrt(sumSq))
	for i := range v {
		v[i] /= norm
	}
}
