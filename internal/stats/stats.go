// Package stats loads the statistics dashboard: six range-scoped queries
// fanned out together, gathered into one snapshot, and guarded against
// out-of-order completion the same way the list controllers are.
package stats

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/example/frontdesk/internal/dates"
	"github.com/example/frontdesk/internal/models"
)

// Source is the slice of the gateway the loader needs.
type Source interface {
	Overview(ctx context.Context, r dates.Range) (models.Overview, error)
	OccupancySeries(ctx context.Context, r dates.Range) ([]models.OccupancyPoint, error)
	ReservationSeries(ctx context.Context, r dates.Range) ([]models.ReservationPoint, error)
	CategorySlices(ctx context.Context, r dates.Range) ([]models.CategorySlice, error)
	PaymentSlices(ctx context.Context, r dates.Range) ([]models.PaymentSlice, error)
	TopCompanies(ctx context.Context, r dates.Range, limit int) ([]models.CompanyTop, error)
}

// Snapshot is one fully loaded dashboard.
type Snapshot struct {
	Range             dates.Range
	Overview          models.Overview
	OccupancySeries   []models.OccupancyPoint
	ReservationSeries []models.ReservationPoint
	Categories        []models.CategorySlice
	Payments          []models.PaymentSlice
	TopCompanies      []models.CompanyTop
}

// Loader runs the dashboard fan-out. Like the list controllers it is meant
// for a single event loop; a new Begin cancels the batch before it.
type Loader struct {
	source  Source
	limit   int
	gen     uint64
	cancel  context.CancelFunc
	loading bool
	lastErr error
	current *Snapshot
}

// NewLoader creates a loader that ranks the given number of top companies.
func NewLoader(source Source, topCompaniesLimit int) *Loader {
	if topCompaniesLimit <= 0 {
		topCompaniesLimit = 1
	}
	return &Loader{source: source, limit: topCompaniesLimit}
}

// Begin opens a load attempt for a date range, cancelling any batch still in
// flight. The caller passes the generation back to Apply.
func (l *Loader) Begin(parent context.Context, r dates.Range) (uint64, func() (Snapshot, error)) {
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	l.loading = true

	ctx, cancel := context.WithCancel(parent)
	l.cancel = cancel
	return l.gen, func() (Snapshot, error) {
		defer cancel()
		return l.fetch(ctx, r)
	}
}

// fetch runs all six queries concurrently; the first failure cancels the
// rest of the batch.
func (l *Loader) fetch(ctx context.Context, r dates.Range) (Snapshot, error) {
	snap := Snapshot{Range: r}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snap.Overview, err = l.source.Overview(ctx, r)
		return err
	})
	g.Go(func() (err error) {
		snap.OccupancySeries, err = l.source.OccupancySeries(ctx, r)
		return err
	})
	g.Go(func() (err error) {
		snap.ReservationSeries, err = l.source.ReservationSeries(ctx, r)
		return err
	})
	g.Go(func() (err error) {
		snap.Categories, err = l.source.CategorySlices(ctx, r)
		return err
	})
	g.Go(func() (err error) {
		snap.Payments, err = l.source.PaymentSlices(ctx, r)
		return err
	})
	g.Go(func() (err error) {
		snap.TopCompanies, err = l.source.TopCompanies(ctx, r, l.limit)
		return err
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Apply commits a finished batch. Stale generations are dropped without any
// state change; errors keep the previous snapshot visible.
func (l *Loader) Apply(gen uint64, snap Snapshot, err error) bool {
	if gen != l.gen {
		return false
	}
	l.loading = false
	if l.cancel != nil {
		// The batch is settled; cancel whatever is still blocked in it.
		l.cancel()
		l.cancel = nil
	}
	if err != nil {
		l.lastErr = err
		return true
	}
	l.lastErr = nil
	l.current = &snap
	return true
}

// Current returns the last committed snapshot, nil before the first success.
func (l *Loader) Current() *Snapshot { return l.current }

// Loading reports whether a batch is outstanding.
func (l *Loader) Loading() bool { return l.loading }

// Err returns the error of the last completed batch, nil after a success.
func (l *Loader) Err() error { return l.lastErr }
