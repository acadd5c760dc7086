package db

import (
	"context"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts two weeks of demo campaign performance data so a first
// analysis run has baselines to work with. A handful of days get injected
// metric spikes that the detector should flag. Re-running is harmless: the
// unique (name, platform, region, date) constraint skips existing rows.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(42))

	names := []string{"Summer Sale", "Brand Awareness", "Retargeting Push"}
	platforms := []string{"google", "meta"}
	regions := []string{"us", "eu"}

	end := time.Now().UTC().Truncate(24 * time.Hour)
	const days = 14

	for _, name := range names {
		for _, platform := range platforms {
			for _, region := range regions {
				for d := 0; d < days; d++ {
					date := end.AddDate(0, 0, -(days - 1 - d))

					impressions := int64(40000 + r.Intn(5000))
					clicks := int64(900 + r.Intn(150))
					conversions := int64(35 + r.Intn(12))
					spend := 450.0 + r.Float64()*60

					// spike the last day of one series per platform
					if d == days-1 && name == "Summer Sale" {
						clicks *= 3
						spend *= 2.5
					}

					ctr := float64(clicks) / float64(impressions)
					cpc := spend / float64(clicks)
					cpa := spend / float64(conversions)

					_, err := pool.Exec(ctx, `INSERT INTO campaigns
(campaign_name, platform, region, date, impressions, clicks, conversions, spend, ctr, cpc, cpa)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
ON CONFLICT (campaign_name, platform, region, date) DO NOTHING`,
						name, platform, region, date,
						impressions, clicks, conversions, spend, ctr, cpc, cpa)
					if err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
