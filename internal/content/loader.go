// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/JuanCarriles/travel-agency/internal/model"
)

var (
	// ErrTransport marks a network or filesystem failure while fetching
	// the content document.
	ErrTransport = errors.New("content: transport failure")
	// ErrInvalidShape marks a document that was fetched but failed
	// structural validation. The whole collection is rejected.
	ErrInvalidShape = errors.New("content: invalid shape")
)

// State is the tri-state status of a load cycle.
type State int

const (
	StatePending State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "pending"
	}
}

// LoadResult is a snapshot of the loader. Collection is non-nil only in
// StateReady, Err only in StateFailed.
type LoadResult struct {
	State      State
	Collection *Collection
	Err        error
}

// document is the wire shape of the content store.
type document struct {
	Modules []*model.Module `json:"modules"`
}

// NewLoader returns a loader over the given fetcher. The loader starts in
// StatePending with no collection.
func NewLoader(fetcher Fetcher) *Loader {
	return &Loader{
		fetcher: fetcher,
		logger:  slog.Default().WithGroup("content"),
		result:  LoadResult{State: StatePending},
	}
}

// Loader runs load cycles against the content store and publishes their
// outcome. Each cycle re-enters StatePending immediately and terminates in
// exactly one of StateReady or StateFailed. Concurrent cycles follow
// last-attempt-wins: a superseded attempt never overwrites a newer result.
type Loader struct {
	fetcher Fetcher
	logger  *slog.Logger

	mu         sync.RWMutex
	generation uint64
	result     LoadResult
}

// Snapshot returns the current load result.
func (l *Loader) Snapshot() LoadResult {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.result
}

// Load runs one load cycle and returns its result. The transition to
// StatePending is synchronous; fetch and validation happen on the calling
// goroutine.
func (l *Loader) Load(ctx context.Context) LoadResult {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Loader.Load")
	defer span.End()

	l.mu.Lock()
	l.generation++
	attempt := l.generation
	l.result = LoadResult{State: StatePending}
	l.mu.Unlock()

	span.SetAttributes(attribute.Int64("attempt", int64(attempt)))

	result := l.run(ctx)
	if result.State == StateFailed {
		span.RecordError(result.Err)
		span.SetStatus(codes.Error, result.Err.Error())
		l.logger.ErrorContext(ctx, "content load failed", "attempt", attempt, "error", result.Err)
	} else {
		span.SetAttributes(attribute.Int("modules", result.Collection.Len()))
		l.logger.InfoContext(ctx, "content loaded", "attempt", attempt, "modules", result.Collection.Len())
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if attempt != l.generation {
		// a newer attempt superseded this one; discard
		span.AddEvent("superseded")
		return result
	}
	l.result = result
	return result
}

func (l *Loader) run(ctx context.Context) LoadResult {
	raw, err := l.fetcher.Fetch(ctx)
	if err != nil {
		if !errors.Is(err, ErrTransport) {
			err = fmt.Errorf("%w: %v", ErrTransport, err)
		}
		return LoadResult{State: StateFailed, Err: err}
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return LoadResult{State: StateFailed, Err: fmt.Errorf("%w: %v", ErrInvalidShape, err)}
	}
	if doc.Modules == nil {
		return LoadResult{State: StateFailed, Err: fmt.Errorf("%w: missing modules field", ErrInvalidShape)}
	}
	if err := model.ValidateModules(doc.Modules); err != nil {
		return LoadResult{State: StateFailed, Err: fmt.Errorf("%w: %v", ErrInvalidShape, err)}
	}

	return LoadResult{State: StateReady, Collection: NewCollection(doc.Modules)}
}
