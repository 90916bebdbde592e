package refcache

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/labelproof/backend/internal/metrics"
	"go.uber.org/zap"
)

// Default TTL classes. Determination tables change on regulatory timescales;
// the active document set turns over faster.
const (
	ReferenceTTL = 24 * time.Hour
	DocumentTTL  = time.Hour

	DefaultPageSize = 1000
)

// PageFunc reads one page of rows from the upstream store.
type PageFunc[T any] func(ctx context.Context, offset, limit int) ([]T, error)

// Stats describes the operational state of one cached table.
type Stats struct {
	Table     string        `json:"table"`
	Rows      int           `json:"rows"`
	Age       time.Duration `json:"-"`
	AgeText   string        `json:"age"`
	Valid     bool          `json:"valid"`
	FetchedAt time.Time     `json:"fetchedAt"`
}

// snapshot is one immutable cache generation. Replaced wholesale on refresh,
// never mutated in place.
type snapshot[T any] struct {
	data      []T
	fetchedAt time.Time
}

// Loader is a TTL-bounded in-memory mirror of one paginated upstream table.
//
// Refreshes are not mutex-guarded: the snapshot pointer is swapped
// atomically and the stored slice is treated as immutable, so a redundant
// concurrent refetch wastes work but cannot corrupt state.
type Loader[T any] struct {
	table    string
	ttl      time.Duration
	pageSize int
	fetch    PageFunc[T]
	now      func() time.Time
	logger   *zap.Logger
	metrics  *metrics.Metrics

	current atomic.Pointer[snapshot[T]]
}

// Option configures a Loader.
type Option[T any] func(*Loader[T])

// WithClock injects the time source, letting tests simulate expiry without
// sleeping.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(l *Loader[T]) { l.now = now }
}

// WithPageSize overrides the upstream page size.
func WithPageSize[T any](size int) Option[T] {
	return func(l *Loader[T]) { l.pageSize = size }
}

// WithMetrics wires refresh and degradation counters.
func WithMetrics[T any](m *metrics.Metrics) Option[T] {
	return func(l *Loader[T]) { l.metrics = m }
}

// NewLoader creates a loader for one table. The first Get triggers the
// initial fetch.
func NewLoader[T any](table string, ttl time.Duration, fetch PageFunc[T], logger *zap.Logger, opts ...Option[T]) *Loader[T] {
	if logger == nil {
		logger = zap.NewNop()
	}

	l := &Loader[T]{
		table:    table,
		ttl:      ttl,
		pageSize: DefaultPageSize,
		fetch:    fetch,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Get returns the cached rows, refreshing first when the snapshot is stale
// or absent. On upstream failure it returns the previous (stale) data if
// any, otherwise an empty slice. It never returns an error to the caller.
func (l *Loader[T]) Get(ctx context.Context) []T {
	if snap := l.current.Load(); snap != nil && l.now().Sub(snap.fetchedAt) < l.ttl {
		return snap.data
	}

	data, err := l.fetchAll(ctx)
	if err != nil {
		if l.metrics != nil {
			l.metrics.ObserveCacheDegradation(l.table)
		}

		if snap := l.current.Load(); snap != nil {
			l.logger.Warn("reference refresh failed, serving stale data",
				zap.String("table", l.table),
				zap.Duration("age", l.now().Sub(snap.fetchedAt)),
				zap.Error(err))
			return snap.data
		}

		l.logger.Warn("reference refresh failed with no cached data",
			zap.String("table", l.table),
			zap.Error(err))
		return []T{}
	}

	l.current.Store(&snapshot[T]{data: data, fetchedAt: l.now()})

	if l.metrics != nil {
		l.metrics.ObserveCacheRefresh(l.table)
	}
	l.logger.Info("reference table refreshed",
		zap.String("table", l.table),
		zap.Int("rows", len(data)))

	return data
}

// fetchAll accumulates pages until a short or empty page.
func (l *Loader[T]) fetchAll(ctx context.Context) ([]T, error) {
	var all []T
	for offset := 0; ; offset += l.pageSize {
		page, err := l.fetch(ctx, offset, l.pageSize)
		if err != nil {
			return nil, err
		}

		all = append(all, page...)
		if len(page) < l.pageSize {
			return all, nil
		}
	}
}

// Invalidate forces the next Get to refetch.
func (l *Loader[T]) Invalidate() {
	l.current.Store(nil)
}

// Stats reports the age, validity and row count of the current snapshot.
func (l *Loader[T]) Stats() Stats {
	snap := l.current.Load()
	if snap == nil {
		return Stats{Table: l.table, AgeText: "n/a"}
	}

	age := l.now().Sub(snap.fetchedAt)
	return Stats{
		Table:     l.table,
		Rows:      len(snap.data),
		Age:       age,
		AgeText:   age.Round(time.Second).String(),
		Valid:     age < l.ttl,
		FetchedAt: snap.fetchedAt,
	}
}
