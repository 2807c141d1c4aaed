package centrality

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/txgraph/core"
	"github.com/katalvlaran/txgraph/dijkstra"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Compute returns the betweenness centrality of every vertex of g, keyed by
// address. Every address is present; vertices on no shortest path score 0.
//
// With Workers <= 1 the sources are processed in iteration order on a
// private State; g's own State is not touched.
//
// With Workers = n > 1, n deep copies of g are made and worker i processes
// the sources at iteration positions i, i+n, i+2n, ... of its copy. Each
// worker returns a partial score vector which is summed into the result.
// The first worker error (or recovered panic, as ErrWorkerPanic) stops the
// remaining workers at their next source and is returned alone.
//
// Complexity: O(V·(V+E)·log V) time, O(n·(V+E)) memory.
func Compute(g *core.Graph, opts ...Option) (Scores, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	n := cfg.Workers
	if n < 1 {
		n = 1
	}
	if order := g.Order(); n > order && order > 0 {
		n = order
	}
	if cfg.Metrics != nil {
		cfg.Metrics.Workers.Set(float64(n))
	}

	start := time.Now()
	var (
		totals []float64
		err    error
	)
	if n == 1 {
		totals, err = sequential(g, cfg)
	} else {
		totals, err = parallel(g, n, cfg)
	}
	if err != nil {
		return nil, err
	}
	if cfg.Metrics != nil {
		cfg.Metrics.RunDuration.Observe(time.Since(start).Seconds())
	}

	scores := make(Scores, len(totals))
	for i, addr := range g.Addresses() {
		scores[addr] = totals[i]
	}

	return scores, nil
}

// sequential runs every source on one private State.
func sequential(g *core.Graph, cfg Options) ([]float64, error) {
	w := &worker{id: 0, graph: g, state: g.NewState(), stride: 1, cfg: cfg}

	return w.run(context.Background())
}

// parallel fans sources out to n workers, each on its own Clone.
func parallel(g *core.Graph, n int, cfg Options) ([]float64, error) {
	clones := make([]*core.Graph, n)
	for i := range clones {
		clones[i] = g.Clone()
	}

	partials := make([][]float64, n)
	eg, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < n; i++ {
		i := i
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: worker %d: %v", ErrWorkerPanic, i, r)
				}
			}()
			w := &worker{id: i, graph: clones[i], stride: n, cfg: cfg}
			w.state = w.graph.State()
			partial, err := w.run(ctx)
			// The copy is no longer needed once the partial is handed back.
			clones[i] = nil
			if err != nil {
				return err
			}
			partials[i] = partial

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	totals := make([]float64, g.Order())
	for _, p := range partials {
		for v, s := range p {
			totals[v] += s
		}
	}

	return totals, nil
}

// worker processes the sources id, id+stride, ... of its graph.
type worker struct {
	id     int
	graph  *core.Graph
	state  *core.State
	stride int
	cfg    Options
}

func (w *worker) run(ctx context.Context) ([]float64, error) {
	order := w.graph.Order()
	scores := make([]float64, order)
	total := (order - w.id + w.stride - 1) / w.stride
	log := w.cfg.Logger.WithFields(logrus.Fields{"worker": w.id, "total": total})

	processed := 0
	for s := w.id; s < order; s += w.stride {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		src := core.VertexID(s)
		if w.cfg.OnSource != nil {
			if err := w.cfg.OnSource(w.id, src); err != nil {
				return nil, fmt.Errorf("centrality: source %q: %w", w.graph.Address(src), err)
			}
		}
		if err := dijkstra.Run(w.graph, w.state, src); err != nil {
			return nil, fmt.Errorf("centrality: source %q: %w", w.graph.Address(src), err)
		}
		Accumulate(w.state, src, scores)

		processed++
		if w.cfg.Metrics != nil {
			w.cfg.Metrics.SourcesProcessed.Inc()
		}
		if w.cfg.Verbose && processed%w.cfg.ProgressEvery == 0 {
			log.WithField("processed", processed).Info("betweenness progress")
		}
	}
	if w.cfg.Verbose {
		log.WithField("processed", processed).Debug("worker done")
	}

	return scores, nil
}
