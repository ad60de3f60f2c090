package stats_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/frontdesk/internal/dates"
	"github.com/example/frontdesk/internal/models"
	"github.com/example/frontdesk/internal/stats"
)

// fakeSource answers every query from canned values and records how far a
// batch got before cancellation.
type fakeSource struct {
	mu        sync.Mutex
	calls     int
	overview  models.Overview
	failSlice bool
	block     chan struct{}
}

func (f *fakeSource) note(ctx context.Context) error {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
		}
	}
	return ctx.Err()
}

func (f *fakeSource) Overview(ctx context.Context, r dates.Range) (models.Overview, error) {
	if err := f.note(ctx); err != nil {
		return models.Overview{}, err
	}
	return f.overview, nil
}

func (f *fakeSource) OccupancySeries(ctx context.Context, r dates.Range) ([]models.OccupancyPoint, error) {
	if err := f.note(ctx); err != nil {
		return nil, err
	}
	return []models.OccupancyPoint{{Date: r.Start.String()}}, nil
}

func (f *fakeSource) ReservationSeries(ctx context.Context, r dates.Range) ([]models.ReservationPoint, error) {
	if err := f.note(ctx); err != nil {
		return nil, err
	}
	return []models.ReservationPoint{{Date: r.Start.String(), Reservations: 1}}, nil
}

func (f *fakeSource) CategorySlices(ctx context.Context, r dates.Range) ([]models.CategorySlice, error) {
	if err := f.note(ctx); err != nil {
		return nil, err
	}
	if f.failSlice {
		return nil, errors.New("slice query failed")
	}
	return []models.CategorySlice{{Category: "VILLA_VIP", RoomNights: 3}}, nil
}

func (f *fakeSource) PaymentSlices(ctx context.Context, r dates.Range) ([]models.PaymentSlice, error) {
	if err := f.note(ctx); err != nil {
		return nil, err
	}
	return []models.PaymentSlice{{PaymentStatus: "FULLY_PAID", Count: 2}}, nil
}

func (f *fakeSource) TopCompanies(ctx context.Context, r dates.Range, limit int) ([]models.CompanyTop, error) {
	if err := f.note(ctx); err != nil {
		return nil, err
	}
	return []models.CompanyTop{{CompanyName: "Acme", Reservations: limit}}, nil
}

func august() dates.Range { return dates.MonthRange(2024, 8) }

func TestLoadGathersAllQueries(t *testing.T) {
	src := &fakeSource{overview: models.Overview{TotalReservations: 42}}
	l := stats.NewLoader(src, 5)

	gen, run := l.Begin(context.Background(), august())
	snap, err := run()
	require.NoError(t, err)
	require.True(t, l.Apply(gen, snap, err))

	cur := l.Current()
	require.NotNil(t, cur)
	assert.Equal(t, 42, cur.Overview.TotalReservations)
	assert.Len(t, cur.OccupancySeries, 1)
	assert.Len(t, cur.ReservationSeries, 1)
	assert.Len(t, cur.Categories, 1)
	assert.Len(t, cur.Payments, 1)
	assert.Equal(t, 5, cur.TopCompanies[0].Reservations)
	assert.Equal(t, 6, src.calls)
	assert.False(t, l.Loading())
}

func TestOneFailureFailsTheBatch(t *testing.T) {
	src := &fakeSource{failSlice: true}
	l := stats.NewLoader(src, 5)

	gen, run := l.Begin(context.Background(), august())
	snap, err := run()
	require.Error(t, err)
	require.True(t, l.Apply(gen, snap, err))
	assert.Error(t, l.Err())
	assert.Nil(t, l.Current())
}

func TestStaleBatchDiscarded(t *testing.T) {
	src := &fakeSource{overview: models.Overview{TotalReservations: 1}}
	l := stats.NewLoader(src, 5)

	oldGen, oldRun := l.Begin(context.Background(), august())
	oldSnap, oldErr := oldRun()

	src.overview.TotalReservations = 2
	newGen, newRun := l.Begin(context.Background(), dates.MonthRange(2024, 9))
	newSnap, newErr := newRun()

	require.True(t, l.Apply(newGen, newSnap, newErr))
	assert.False(t, l.Apply(oldGen, oldSnap, oldErr))
	assert.Equal(t, 2, l.Current().Overview.TotalReservations)
	assert.Equal(t, "2024-09-01", l.Current().Range.Start.String())
}

func TestApplyReleasesBatchContext(t *testing.T) {
	src := &fakeSource{block: make(chan struct{})}
	l := stats.NewLoader(src, 5)

	gen, run := l.Begin(context.Background(), august())
	done := make(chan error, 1)
	go func() {
		_, err := run()
		done <- err
	}()

	// Committing a timeout for the current batch cancels its context, so the
	// still-blocked queries unwind instead of hanging forever.
	require.True(t, l.Apply(gen, stats.Snapshot{}, context.DeadlineExceeded))
	require.Error(t, <-done)
	assert.Error(t, l.Err())
}

func TestBeginCancelsPreviousBatch(t *testing.T) {
	src := &fakeSource{block: make(chan struct{})}
	l := stats.NewLoader(src, 5)

	oldGen, oldRun := l.Begin(context.Background(), august())
	done := make(chan error, 1)
	go func() {
		_, err := oldRun()
		done <- err
	}()

	// Superseding the batch cancels the old context and fails its queries.
	newGen, newRun := l.Begin(context.Background(), august())
	close(src.block)
	newSnap, newErr := newRun()
	require.NoError(t, newErr)
	require.True(t, l.Apply(newGen, newSnap, newErr))

	oldErr := <-done
	require.Error(t, oldErr)
	assert.False(t, l.Apply(oldGen, stats.Snapshot{}, oldErr))
	assert.False(t, l.Loading())
}
