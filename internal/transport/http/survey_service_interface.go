package http

import (
	"context"

	"nascli/internal/services"
	"nascli/pkg/contracts/domain"
)

// SurveyServiceInterface defines the interface for survey dataset operations
type SurveyServiceInterface interface {
	Overview(ctx context.Context) (*services.Overview, error)
	StateSummaries(ctx context.Context, year, class int) ([]domain.GroupSummary, error)
	DistrictSummaries(ctx context.Context, state string, year, class int) ([]domain.GroupSummary, error)
	RegionSummaries(ctx context.Context, year, class int) ([]domain.GroupSummary, error)
	Rankings(ctx context.Context, req services.RankingsRequest) (*services.Rankings, error)
	Outcomes(ctx context.Context, presentOnly bool) ([]domain.LearningOutcome, error)
	Reload(ctx context.Context) error
}
