package services

import (
	"errors"
	"sort"
	"time"

	"gateway-portal/app/apperrors"
	"gateway-portal/app/dto"
	"gateway-portal/app/models"
	"gateway-portal/app/repo"

	"gorm.io/gorm"
)

// IngestionService handles the heartbeat exchange: telemetry in, pending
// actions out, one transaction. It is the only writer of
// gateways.last_date_call and the only drainer of the action queue;
// a gateway gets its orders exactly when it phones in.
type IngestionService struct{ db *gorm.DB }

func NewIngestionService(db *gorm.DB) *IngestionService { return &IngestionService{db: db} }

// Ingest runs one heartbeat exchange. Everything inside the transaction
// either persists together or not at all; a failed call leaves no partial
// telemetry, no last-seen update and no delivered action behind.
func (s *IngestionService) Ingest(req *dto.IngestRequest, remoteIP string) (*dto.IngestResponse, error) {
	if req.GtwUID == "" {
		return nil, &apperrors.MalformedPayload{Field: "gtw_uid"}
	}
	if req.Timestamp == nil {
		return nil, &apperrors.MalformedPayload{Field: "timestamp"}
	}

	var resp dto.IngestResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		gateways := repo.NewGatewayRepository(tx)
		metrics := repo.NewMetricsRepository(tx)
		actions := repo.NewActionRepository(tx)

		gw, err := gateways.FindByUID(req.GtwUID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUnknownGateway
			}
			return apperrors.Storage("gateway lookup", err)
		}

		mirthRows := buildMirthRows(gw.GtwUID, *req.Timestamp, req.Mirth)
		if err := metrics.BulkCreateMirth(mirthRows); err != nil {
			return apperrors.Storage("mirth metrics insert", err)
		}

		checkRows := buildCheckRows(gw.GtwUID, *req.Timestamp, req.CheckStatus)
		if err := metrics.BulkCreateChecks(checkRows); err != nil {
			return apperrors.Storage("check status insert", err)
		}

		if err := gateways.TouchLastSeen(gw.GtwUID, time.Now(), remoteIP); err != nil {
			return apperrors.Storage("last seen update", err)
		}

		delivered, err := actions.DrainPending(gw.GtwUID)
		if err != nil {
			return apperrors.Storage("action drain", err)
		}

		resp = dto.IngestResponse{
			Status:         "success",
			MirthRecords:   len(mirthRows),
			CheckRecords:   len(checkRows),
			PendingActions: delivered,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// The payload maps carry arbitrary channel/check names as keys; rows are
// built in sorted key order so insert order is deterministic.
func buildMirthRows(gatewayUID string, ts time.Time, channels map[string]dto.ChannelMetrics) []models.MirthMetric {
	names := make([]string, 0, len(channels))
	for name := range channels {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]models.MirthMetric, 0, len(names))
	for _, name := range names {
		ch := channels[name]
		rows = append(rows, models.MirthMetric{
			GatewayUID:       gatewayUID,
			GatewayTimestamp: ts,
			ChannelName:      name,
			ChannelID:        ch.ChannelID,
			Received:         ch.Metrics.Received,
			Sent:             ch.Metrics.Sent,
			Error:            ch.Metrics.Error,
			Filtered:         ch.Metrics.Filtered,
			Queued:           ch.Metrics.Queued,
		})
	}
	return rows
}

func buildCheckRows(gatewayUID string, ts time.Time, checks map[string]dto.CheckStatus) []models.CheckStatusMetric {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]models.CheckStatusMetric, 0, len(names))
	for _, name := range names {
		c := checks[name]
		rows = append(rows, models.CheckStatusMetric{
			GatewayUID:       gatewayUID,
			GatewayTimestamp: ts,
			CheckName:        name,
			Level:            c.Level,
			Description:      c.Description,
			ActualValue:      c.ActualValue,
			LimitValue:       c.LimitValue,
			Operator:         c.Operator,
			QueryTimeSec:     c.QueryTimeSec,
		})
	}
	return rows
}
