package anomaly

import (
	"testing"
	"time"

	"adpulse/internal/core/domain"
)

func rec(name, platform, region string, d int) domain.Campaign {
	return domain.Campaign{
		CampaignName: name,
		Platform:     platform,
		Region:       region,
		Date:         time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC),
	}
}

func TestGroupCampaignsEmpty(t *testing.T) {
	if got := GroupCampaigns(nil); got != nil {
		t.Fatalf("expected no groups for empty input, got %d", len(got))
	}
}

func TestGroupCampaignsSortsAndPartitions(t *testing.T) {
	// Deliberately shuffled: grouping must not depend on input order.
	rows := []domain.Campaign{
		rec("B", "meta", "eu", 2),
		rec("A", "google", "us", 3),
		rec("A", "google", "us", 1),
		rec("B", "meta", "eu", 1),
		rec("A", "google", "eu", 1),
		rec("A", "google", "us", 2),
	}

	groups := GroupCampaigns(rows)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	wantKeys := []GroupKey{
		{Name: "A", Platform: "google", Region: "eu"},
		{Name: "A", Platform: "google", Region: "us"},
		{Name: "B", Platform: "meta", Region: "eu"},
	}
	for i, want := range wantKeys {
		if groups[i].Key != want {
			t.Fatalf("group %d: expected key %+v, got %+v", i, want, groups[i].Key)
		}
	}

	us := groups[1]
	if len(us.Records) != 3 {
		t.Fatalf("expected 3 records in the us group, got %d", len(us.Records))
	}
	for i := 1; i < len(us.Records); i++ {
		if us.Records[i].Date.Before(us.Records[i-1].Date) {
			t.Fatalf("records not date-ordered within group: %v before %v",
				us.Records[i].Date, us.Records[i-1].Date)
		}
	}
}

func TestGroupCampaignsDoesNotMutateInput(t *testing.T) {
	rows := []domain.Campaign{
		rec("B", "meta", "eu", 1),
		rec("A", "google", "us", 1),
	}
	GroupCampaigns(rows)
	if rows[0].CampaignName != "B" {
		t.Fatal("input slice was reordered")
	}
}
