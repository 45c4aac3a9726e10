// Package kernel provides graph-kernel driver glue: given a
// pagedb.LinkStream and the number of pages, a Kernel produces one or two
// float32 vectors indexed by page index, and a Driver persists the
// result through a ScoreSink.
//
// The PageRank and HITS implementations in this package are reference
// power-iteration kernels supplied so the driver path is exercised
// end-to-end; a production deployment can swap in a tuned kernel without
// touching Driver, since Kernel is the only seam it depends on.
package kernel

import (
	"context"
	"fmt"
	"log/slog"

	"pagedb/pagedb"
)

// Result holds the score vector(s) a Kernel produces. PageRank populates
// only Scores; HITS populates both Hubs and Authorities.
type Result struct {
	Scores      []float32
	Hubs        []float32
	Authorities []float32
}

// Kernel consumes a link stream and the current page count and produces a
// score Result. Implementations must call stream.Reset() themselves if
// they need more than one pass.
type Kernel interface {
	Run(ctx context.Context, stream pagedb.LinkStream, nPages uint64) (Result, error)
}

// ScoreSink persists a score vector indexed by dense page index.
// DenseFileScoreSink is the canonical implementation: a flat binary file
// readable by mmap without any framing.
type ScoreSink interface {
	WriteVector(name string, v []float32) error
}

// Driver opens fresh link streams against db and runs kernels over them,
// persisting results through sink.
type Driver struct {
	DB     *pagedb.PageDB
	Sink   ScoreSink
	Logger *slog.Logger
}

// NewDriver constructs a Driver with a nil-safe default logger.
func NewDriver(db *pagedb.PageDB, sink ScoreSink, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{DB: db, Sink: sink, Logger: logger}
}

// UpdatePageRank opens a fresh link stream, runs k, and persists the
// resulting score vector to the "pagerank" slot of the driver's sink.
func (d *Driver) UpdatePageRank(ctx context.Context, k Kernel) error {
	return d.run(ctx, k, func(r Result) error {
		return d.Sink.WriteVector("pagerank", r.Scores)
	})
}

// UpdateHITS opens a fresh link stream, runs k, and persists the
// resulting hub and authority vectors to the "hits_hub"/"hits_authority"
// slots of the driver's sink.
func (d *Driver) UpdateHITS(ctx context.Context, k Kernel) error {
	return d.run(ctx, k, func(r Result) error {
		if err := d.Sink.WriteVector("hits_hub", r.Hubs); err != nil {
			return err
		}
		return d.Sink.WriteVector("hits_authority", r.Authorities)
	})
}

func (d *Driver) run(ctx context.Context, k Kernel, persist func(Result) error) error {
	nPages, err := d.DB.NPages()
	if err != nil {
		return fmt.Errorf("kernel driver: read page count: %w", err)
	}

	stream, err := d.DB.OpenLinkStream()
	if err != nil {
		return fmt.Errorf("kernel driver: open link stream: %w", err)
	}
	defer func() {
		if err := stream.Close(); err != nil {
			d.Logger.Warn("kernel driver: error closing link stream", "err", err)
		}
	}()

	d.Logger.Info("kernel driver: starting run", "n_pages", nPages)
	result, err := k.Run(ctx, stream, nPages)
	if err != nil {
		return fmt.Errorf("kernel driver: run kernel: %w", err)
	}

	if err := persist(result); err != nil {
		return fmt.Errorf("kernel driver: persist scores: %w", err)
	}
	d.Logger.Info("kernel driver: run complete", "n_pages", nPages)
	return nil
}
