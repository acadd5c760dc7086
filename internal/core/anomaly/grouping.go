package anomaly

import (
	"cmp"
	"slices"

	"adpulse/internal/core/domain"
)

// GroupKey identifies one campaign time series.
type GroupKey struct {
	Name     string
	Platform string
	Region   string
}

// Group is the date-ordered series of rows sharing one key within the
// analysis window. Built fresh every run, never persisted.
type Group struct {
	Key     GroupKey
	Records []domain.Campaign
}

// GroupCampaigns partitions rows into contiguous per-key groups ordered by
// date. The repository returns rows already sorted by (name, platform,
// region, date), but grouping depends on that ordering for correctness, so
// it is enforced here rather than assumed. Empty input yields no groups.
func GroupCampaigns(rows []domain.Campaign) []Group {
	if len(rows) == 0 {
		return nil
	}

	sorted := slices.Clone(rows)
	slices.SortFunc(sorted, func(a, b domain.Campaign) int {
		if c := cmp.Compare(a.CampaignName, b.CampaignName); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Platform, b.Platform); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Region, b.Region); c != 0 {
			return c
		}
		return a.Date.Compare(b.Date)
	})

	var groups []Group
	for _, row := range sorted {
		key := GroupKey{Name: row.CampaignName, Platform: row.Platform, Region: row.Region}
		if len(groups) == 0 || groups[len(groups)-1].Key != key {
			groups = append(groups, Group{Key: key})
		}
		last := &groups[len(groups)-1]
		last.Records = append(last.Records, row)
	}
	return groups
}
