package services

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"gateway-portal/app/apperrors"
	"gateway-portal/app/batch"
	"gateway-portal/app/dto"
	"gateway-portal/app/models"
	"gateway-portal/app/repo"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	activeWindow   = 15 * time.Minute
	errorWindow    = 24 * time.Hour
	recentExports  = 5
	topBatchLimit  = 5
	statsCacheKey  = "dashboard:stats"
)

// DashboardService computes the fleet KPIs. Strictly read-only; it accepts
// snapshot consistency, the numbers are point-in-time estimates. An
// optional redis client caches the stats blob for a short TTL.
type DashboardService struct {
	db       *gorm.DB
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewDashboardService(db *gorm.DB, cache *redis.Client, cacheTTL time.Duration) *DashboardService {
	return &DashboardService{db: db, cache: cache, cacheTTL: cacheTTL}
}

func (s *DashboardService) Stats(ctx context.Context, now time.Time) (*dto.DashboardStats, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, statsCacheKey).Bytes(); err == nil {
			var cached dto.DashboardStats
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	gateways := repo.NewGatewayRepository(s.db)
	channels := repo.NewChannelRepository(s.db)
	logEvents := repo.NewLogEventRepository(s.db)
	exports := repo.NewExportRepository(s.db)
	importErrs := repo.NewImportErrorRepository(s.db)

	var (
		stats dto.DashboardStats
		err   error
	)
	if stats.KPI.ActiveGateways, err = gateways.CountActiveSince(now.Add(-activeWindow)); err != nil {
		return nil, apperrors.Storage("active gateway count", err)
	}
	if stats.KPI.TotalGateways, err = gateways.CountTotal(); err != nil {
		return nil, apperrors.Storage("gateway count", err)
	}
	if stats.KPI.ChannelsToUpdate, err = channels.CountToUpdate(); err != nil {
		return nil, apperrors.Storage("channels to update", err)
	}
	if stats.KPI.ChannelsToDelete, err = channels.CountToDelete(); err != nil {
		return nil, apperrors.Storage("channels to delete", err)
	}
	if stats.KPI.ErrorsLast24h, err = logEvents.CountSince(now.Add(-errorWindow), []string{"ERROR", "WARNING"}); err != nil {
		return nil, apperrors.Storage("error count", err)
	}
	if stats.KPI.ImportErrorsCount, err = importErrs.Count(); err != nil {
		return nil, apperrors.Storage("import error count", err)
	}
	if stats.RecentExports, err = exports.Recent(recentExports); err != nil {
		return nil, apperrors.Storage("recent exports", err)
	}

	descriptions, err := logEvents.ErrorDescriptionsSince(now.Add(-errorWindow))
	if err != nil {
		return nil, apperrors.Storage("error descriptions", err)
	}
	stats.TopBatchErrors = TopErrorBatches(descriptions, topBatchLimit)

	if s.cache != nil {
		if raw, err := json.Marshal(&stats); err == nil {
			s.cache.Set(ctx, statsCacheKey, raw, s.cacheTTL)
		}
	}
	return &stats, nil
}

// TopErrorBatches groups descriptions by extracted batch name and returns
// the n largest groups, descending by count. Descriptions without a batch
// are excluded. Ties keep first-encountered order, so the caller's input
// order decides.
func TopErrorBatches(descriptions []string, n int) []dto.BatchErrorCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, desc := range descriptions {
		name, ok := batch.Extract(desc)
		if !ok {
			continue
		}
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	ranked := make([]dto.BatchErrorCount, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, dto.BatchErrorCount{BatchName: name, Count: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// ChannelHistory returns the throughput series of one gateway channel over
// a trailing window of 24h or 7d; anything unrecognized falls back to 24h.
func (s *DashboardService) ChannelHistory(gatewayUID, channelName, rng string, now time.Time) ([]models.MirthMetric, error) {
	var since time.Time
	if rng == "7d" {
		since = now.Add(-7 * 24 * time.Hour)
	} else {
		since = now.Add(-24 * time.Hour)
	}
	rows, err := repo.NewMetricsRepository(s.db).ChannelHistory(gatewayUID, channelName, since)
	if err != nil {
		return nil, apperrors.Storage("channel history", err)
	}
	return rows, nil
}
