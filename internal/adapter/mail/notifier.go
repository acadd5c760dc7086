// Package mail sends anomaly notification emails over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"

	"adpulse/internal/config/configs"
	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// Notifier implements port.Notifier over plain SMTP. Sends are best-effort
// and at-least-once: the notified flag on the analysis is the dedup guard,
// checked before sending and set after the first success.
type Notifier struct {
	cfg      configs.SMTP
	analyses port.AnalysisRepository
	logger   *slog.Logger
}

// NewNotifier creates an SMTP notifier.
func NewNotifier(cfg configs.SMTP, analyses port.AnalysisRepository, logger *slog.Logger) *Notifier {
	return &Notifier{cfg: cfg, analyses: analyses, logger: logger}
}

// Send emails an alert for the analysis, marks it notified and appends a
// notification log row. Already-notified analyses are a silent no-op.
func (n *Notifier) Send(ctx context.Context, analysis domain.Analysis) error {
	if analysis.Notified {
		n.logger.Info("notification already sent", slog.Int64("analysis_id", analysis.ID))
		return nil
	}

	recs, err := n.analyses.ListRecommendations(ctx, port.RecommendationFilter{AnalysisID: &analysis.ID})
	if err != nil {
		return fmt.Errorf("load recommendations: %w", err)
	}

	subject := fmt.Sprintf("Marketing Alert: %s %s in %s",
		strings.ToUpper(analysis.Severity), analysis.Type, analysis.Metric)
	content := renderBody(analysis, recs)

	if err = n.sendMail(subject, content); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	if err = n.analyses.MarkNotified(ctx, analysis.ID); err != nil {
		return fmt.Errorf("mark notified: %w", err)
	}
	if err = n.analyses.InsertNotification(ctx, domain.Notification{
		AnalysisID: analysis.ID,
		Recipient:  n.cfg.To,
		Subject:    subject,
		Content:    content,
	}); err != nil {
		return fmt.Errorf("log notification: %w", err)
	}

	n.logger.Info("notification sent", slog.Int64("analysis_id", analysis.ID))
	return nil
}

func (n *Notifier) sendMail(subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)

	var auth smtp.Auth
	if n.cfg.User != "" && n.cfg.Password != "" {
		auth = smtp.PlainAuth("", n.cfg.User, n.cfg.Password, n.cfg.Host)
	}

	msg := strings.Join([]string{
		"From: " + n.cfg.From,
		"To: " + n.cfg.To,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		htmlBody,
	}, "\r\n")

	return smtp.SendMail(addr, auth, n.cfg.From, []string{n.cfg.To}, []byte(msg))
}

func renderBody(analysis domain.Analysis, recs []domain.Recommendation) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<html><body style="font-family: Arial, sans-serif; color: #333;">
<h2>Marketing Campaign Alert</h2>
<p>We've detected a <strong>%s</strong> %s that requires your attention.</p>
<h3>Analysis Details</h3>
<p><strong>Description:</strong> %s</p>
<p><strong>Metric:</strong> %s</p>
<p><strong>Current Value:</strong> %.4f</p>
<p><strong>Expected Value:</strong> %.4f</p>
<p><strong>Date Range:</strong> %s to %s</p>
<h3>Recommendations</h3>
`,
		analysis.Severity, analysis.Type,
		analysis.Description, analysis.Metric,
		analysis.Value, analysis.ExpectedValue,
		analysis.DateRangeStart.Format(time.DateOnly),
		analysis.DateRangeEnd.Format(time.DateOnly),
	)

	if len(recs) == 0 {
		b.WriteString("<p>Recommendations are being generated and will be available on the dashboard.</p>\n")
	}
	for _, rec := range recs {
		fmt.Fprintf(&b, "<div style=\"border-left: 4px solid #007bff; padding: 10px; margin-bottom: 15px;\"><p>%s</p></div>\n", rec.Content)
	}

	b.WriteString("</body></html>")
	return b.String()
}
