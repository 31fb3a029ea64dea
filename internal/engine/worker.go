package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hitchmap/internal/config"
	"hitchmap/internal/domain/entities"
	"hitchmap/internal/observability"
	"hitchmap/pkg/geoutil"
)

// ErrClosed is returned by Dispatch after the worker has been shut down.
var ErrClosed = errors.New("engine: worker closed")

// job pairs one request with the channel its response goes back on.
type job struct {
	req entities.Request
	out chan entities.Response
}

// Worker is the isolated computation unit that executes query operations.
// It mirrors the worker-thread model of the host application: one dedicated
// goroutine, a bounded request queue, strict FIFO processing, and no shared
// mutable state with callers — requests and responses cross the boundary by
// value over channels.
//
// The worker holds nothing between requests; every operation is pure given
// its envelope. There is no cancellation once an operation starts: it runs
// to completion, bounded only by the input batch size. Callers wanting
// bounded latency bound their batches.
//
// Go Learning Note — Buffered vs Unbuffered Channels:
// The request channel is buffered (capacity from config), so a burst of
// requests queues instead of blocking each sender immediately. Each job's
// response channel has capacity 1, so the worker goroutine can deliver a
// response and move on even if the caller has not yet started receiving.
type Worker struct {
	cfg     config.EngineConfig
	metrics *observability.EngineCollector

	requests chan job
	quit     chan struct{}
	done     chan struct{}
}

// NewWorker creates a worker and starts its processing goroutine.
// metrics may be nil.
func NewWorker(cfg *config.Config, metrics *observability.EngineCollector) *Worker {
	w := &Worker{
		cfg:      cfg.Engine,
		metrics:  metrics,
		requests: make(chan job, cfg.Engine.QueueCapacity),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	go w.run()

	return w
}

// run is the worker's single processing loop. Because one goroutine drains
// one channel, requests execute strictly one at a time in arrival order, and
// responses leave in that same order — no locking is needed anywhere in the
// engine.
func (w *Worker) run() {
	defer close(w.done)
	for {
		select {
		case j := <-w.requests:
			j.out <- w.Execute(j.req)
		case <-w.quit:
			return
		}
	}
}

// Dispatch submits one request and blocks until its response is ready. The
// context bounds time spent waiting to enqueue and waiting for the result;
// it does not interrupt an operation already executing.
func (w *Worker) Dispatch(ctx context.Context, req entities.Request) (entities.Response, error) {
	// A closed worker's request channel still buffers sends, so check quit
	// before enqueueing rather than racing the select below.
	select {
	case <-w.quit:
		return entities.Response{}, ErrClosed
	default:
	}

	j := job{req: req, out: make(chan entities.Response, 1)}

	select {
	case w.requests <- j:
	case <-w.quit:
		return entities.Response{}, ErrClosed
	case <-ctx.Done():
		return entities.Response{}, ctx.Err()
	}

	select {
	case resp := <-j.out:
		return resp, nil
	case <-w.quit:
		// The worker may have answered just before stopping; prefer the
		// response when it is already there.
		select {
		case resp := <-j.out:
			return resp, nil
		default:
			return entities.Response{}, ErrClosed
		}
	case <-ctx.Done():
		return entities.Response{}, ctx.Err()
	}
}

// Close stops the worker. Requests already executing finish; Dispatch calls
// after Close return ErrClosed.
func (w *Worker) Close() {
	close(w.quit)
	<-w.done
}

// Execute runs one operation synchronously and builds its response
// envelope. Exported so in-process hosts (and tests) can bypass the
// goroutine when they do not need the queueing semantics — the result is
// identical either way, since operations are pure.
func (w *Worker) Execute(req entities.Request) entities.Response {
	start := time.Now()
	results, count := w.route(req)
	elapsed := time.Since(start)

	w.metrics.Observe(string(req.Type), elapsed)

	return entities.Response{
		ID:       req.ID,
		Type:     req.Type,
		Results:  results,
		Count:    count,
		Duration: geoutil.Round2(float64(elapsed.Microseconds()) / 1000),
	}
}

// route invokes exactly one engine operation. Malformed requests — unknown
// type, missing required payload — degrade to an ErrorResult value; the
// worker never panics and stays available for the next request.
func (w *Worker) route(req entities.Request) (results any, count *int) {
	switch req.Type {
	case entities.OpFilter:
		out := Filter(req.Spots, req.Filters)
		return out, intPtr(len(out))

	case entities.OpSort:
		out := Sort(req.Spots, entities.ParseSortKey(req.SortBy), req.UserLocation)
		return out, intPtr(len(out))

	case entities.OpFilterAndSort:
		out := Sort(Filter(req.Spots, req.Filters), entities.ParseSortKey(req.SortBy), req.UserLocation)
		return out, intPtr(len(out))

	case entities.OpDistances:
		if req.UserLocation == nil {
			return entities.ErrorResult{Error: "distances requires userLocation"}, nil
		}
		out := Distances(req.Spots, *req.UserLocation)
		return out, intPtr(len(out))

	case entities.OpRoute:
		if req.From == nil || req.To == nil {
			return entities.ErrorResult{Error: "route requires from and to"}, nil
		}
		width := req.CorridorWidth
		if width <= 0 {
			width = w.cfg.DefaultCorridorWidthKm
		}
		out := Corridor(req.Spots, *req.From, *req.To, width)
		return out, intPtr(len(out))

	case entities.OpCluster:
		out := Cluster(req.Spots, req.Zoom, w.cfg.ClusterSampleSize)
		return out, intPtr(len(out))

	case entities.OpHaversine:
		if req.From == nil || req.To == nil {
			return entities.ErrorResult{Error: "haversine requires from and to"}, nil
		}
		d := geoutil.HaversineDistance(req.From.Lat, req.From.Lng, req.To.Lat, req.To.Lng)
		return geoutil.Round2(d), nil

	default:
		return entities.ErrorResult{Error: fmt.Sprintf("Unknown operation: %s", req.Type)}, nil
	}
}

func intPtr(n int) *int {
	return &n
}
