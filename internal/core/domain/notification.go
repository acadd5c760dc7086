package domain

import "time"

// Notification is an append-only log row recording one successful email
// send for an analysis. Dedup of sends is guarded by Analysis.Notified,
// not by this table.
type Notification struct {
	ID         int64
	AnalysisID int64
	Recipient  string
	Subject    string
	Content    string
	SentAt     time.Time
}
