package providers

import (
	"context"

	"matchday-graphics/internal/domain"
)

// ScheduleProvider defines how a league's slate of games is fetched and
// normalized. The date parameter is a YYYYMMDD string; providers interpret
// an empty date as "today".
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, league domain.League, date string) ([]domain.Game, error)
}
