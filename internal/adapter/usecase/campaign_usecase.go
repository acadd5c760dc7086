package usecase

import (
	"context"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// CampaignUseCase serves the campaign read side.
type CampaignUseCase struct {
	repo port.CampaignRepository
}

// NewCampaignUseCase creates the read-side usecase.
func NewCampaignUseCase(repo port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo}
}

// List returns campaigns matching the filter, newest first.
func (u *CampaignUseCase) List(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	return u.repo.List(ctx, f)
}

// Get returns a campaign by id, or nil when not found.
func (u *CampaignUseCase) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	return u.repo.GetByID(ctx, id)
}
