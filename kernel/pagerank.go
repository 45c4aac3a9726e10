package kernel

import (
	"context"
	"fmt"

	"pagedb/pagedb"
)

// PageRank is a reference power-iteration PageRank kernel: two full
// passes of the link stream per iteration (one to accumulate out-degree,
// implicitly known from the adjacency already built during the first
// pass over each iteration; see Run), for Iterations rounds, with
// Damping as the teleport-complement factor.
type PageRank struct {
	Damping    float32
	Iterations int
}

// NewPageRank returns a PageRank kernel with the conventional damping
// factor of 0.85 and 20 iterations.
func NewPageRank() *PageRank {
	return &PageRank{Damping: 0.85, Iterations: 20}
}

// Run implements Kernel. It makes one streaming pass per iteration over
// the link stream (rewound via Reset), which keeps memory proportional to
// nPages rather than to the edge count.
func (k *PageRank) Run(ctx context.Context, stream pagedb.LinkStream, nPages uint64) (Result, error) {
	if nPages == 0 {
		return Result{Scores: []float32{}}, nil
	}

	outDegree := make([]uint64, nPages)
	if st := stream.Reset(); st == pagedb.StateError {
		return Result{}, fmt.Errorf("pagerank: reset stream: %w", streamErr(stream))
	}
	var e pagedb.Edge
	for {
		st := stream.Next(&e)
		if st == pagedb.StateEnd {
			break
		}
		if st == pagedb.StateError {
			return Result{}, fmt.Errorf("pagerank: read edge: %w", streamErr(stream))
		}
		if e.From < nPages {
			outDegree[e.From]++
		}
	}

	damping := k.Damping
	if damping <= 0 {
		damping = 0.85
	}
	iterations := k.Iterations
	if iterations <= 0 {
		iterations = 20
	}

	base := (1 - damping) / float32(nPages)
	scores := make([]float32, nPages)
	for i := range scores {
		scores[i] = 1 / float32(nPages)
	}

	next := make([]float32, nPages)
	for iter := 0; iter < iterations; iter++ {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("pagerank: %w", err)
		}

		for i := range next {
			next[i] = base
		}

		if st := stream.Reset(); st == pagedb.StateError {
			return Result{}, fmt.Errorf("pagerank: reset stream: %w", streamErr(stream))
		}
		for {
			st := stream.Next(&e)
			if st == pagedb.StateEnd {
				break
			}
			if st == pagedb.StateError {
				return Result{}, fmt.Errorf("pagerank: read edge: %w", streamErr(stream))
			}
			if e.From >= nPages || e.To >= nPages || outDegree[e.From] == 0 {
				continue
			}
			next[e.To] += damping * scores[e.From] / float32(outDegree[e.From])
		}

		scores, next = next, scores
	}

	return Result{Scores: scores}, nil
}

// streamErr recovers the underlying error from a LinkStream left in
// StateError, when the concrete type exposes one; otherwise it returns a
// generic error.
func streamErr(stream pagedb.LinkStream) error {
	type errorer interface{ Err() error }
	if e, ok := stream.(errorer); ok {
		if err := e.Err(); err != nil {
			return err
		}
	}
	return fmt.Errorf("link stream entered error state")
}
