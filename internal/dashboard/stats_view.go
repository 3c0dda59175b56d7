package dashboard

import (
	"context"
	"sync"

	"go-hospital-admin/internal/delivery/dto"
)

// StatsView holds the landing page counters.
type StatsView struct {
	api  StatsAPI
	opts Options

	mu    sync.RWMutex
	stats dto.DashboardStatsResponse
}

func NewStatsView(api StatsAPI, opts Options) *StatsView {
	return &StatsView{api: api, opts: opts.normalize()}
}

// Mount loads the counters. A failure is logged and the previous values stay.
func (v *StatsView) Mount(ctx context.Context) error {
	stats, err := v.api.Get(ctx)
	if err != nil {
		v.opts.Log.WithError(err).Warn("Error fetching stats")
		return err
	}
	v.mu.Lock()
	v.stats = stats
	v.mu.Unlock()
	return nil
}

func (v *StatsView) Stats() dto.DashboardStatsResponse {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.stats
}
