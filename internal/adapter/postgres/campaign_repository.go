package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

const defaultListLimit = 100

const campaignColumns = `id, campaign_name, platform, region, date,
impressions, clicks, conversions, spend, ctr, cpc, cpa, created_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.CampaignName,
		&c.Platform,
		&c.Region,
		&c.Date,
		&c.Impressions,
		&c.Clicks,
		&c.Conversions,
		&c.Spend,
		&c.CTR,
		&c.CPC,
		&c.CPA,
		&c.CreatedAt,
	)
	return c, err
}

// MaxDate returns the most recent campaign date, or nil on an empty table.
func (r *CampaignRepository) MaxDate(ctx context.Context) (*time.Time, error) {
	var d *time.Time
	if err := r.pool.QueryRow(ctx, `SELECT max(date) FROM campaigns`).Scan(&d); err != nil {
		return nil, err
	}
	return d, nil
}

// ListBetween returns rows in the inclusive date range, sorted by
// (campaign_name, platform, region, date) as the grouping step requires.
func (r *CampaignRepository) ListBetween(ctx context.Context, start, end time.Time) ([]domain.Campaign, error) {
	query := fmt.Sprintf(`SELECT %s FROM campaigns
WHERE date BETWEEN $1 AND $2
ORDER BY campaign_name, platform, region, date`, campaignColumns)
	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// List returns campaigns matching the filter, newest first.
func (r *CampaignRepository) List(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	var (
		conds []string
		args  []interface{}
	)
	add := func(cond string, val interface{}) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.CampaignName != "" {
		add("campaign_name = $%d", f.CampaignName)
	}
	if f.Platform != "" {
		add("platform = $%d", f.Platform)
	}
	if f.Region != "" {
		add("region = $%d", f.Region)
	}
	if f.StartDate != nil {
		add("date >= $%d", *f.StartDate)
	}
	if f.EndDate != nil {
		add("date <= $%d", *f.EndDate)
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}
	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	args = append(args, limit, f.Skip)
	query := fmt.Sprintf(`SELECT %s FROM campaigns %s
ORDER BY date DESC, id DESC LIMIT $%d OFFSET $%d`,
		campaignColumns, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// GetByID returns a campaign by id, or nil when not found.
func (r *CampaignRepository) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	query := fmt.Sprintf(`SELECT %s FROM campaigns WHERE id = $1`, campaignColumns)
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
