package services

import (
	"gateway-portal/app/apperrors"
	"gateway-portal/app/batch"
	"gateway-portal/app/dto"
	"gateway-portal/app/repo"
)

type LogEventService struct{ events *repo.LogEventRepository }

func NewLogEventService(events *repo.LogEventRepository) *LogEventService {
	return &LogEventService{events: events}
}

// List returns log events newest first, each with the derived batch_name
// view field (nil when the description carries no batch).
func (s *LogEventService) List(level, search string, limit int) ([]dto.LogEventView, error) {
	events, err := s.events.List(level, search, limit)
	if err != nil {
		return nil, apperrors.Storage("log event list", err)
	}
	views := make([]dto.LogEventView, 0, len(events))
	for _, e := range events {
		v := dto.LogEventView{LogEvent: e}
		if name, ok := batch.Extract(e.Description); ok {
			v.BatchName = &name
		}
		views = append(views, v)
	}
	return views, nil
}
