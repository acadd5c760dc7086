package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

const analysisColumns = `id, type, metric, description, severity, value,
expected_value, date_range_start, date_range_end, created_at, notified`

// AnalysisRepository implements port.AnalysisRepository using pgxpool. It
// owns the analyses table and its dependent recommendation and notification
// tables.
type AnalysisRepository struct {
	pool *pgxpool.Pool
}

// NewAnalysisRepository returns a new repository instance.
func NewAnalysisRepository(pool *pgxpool.Pool) *AnalysisRepository {
	return &AnalysisRepository{pool: pool}
}

func scanAnalysis(row pgx.CollectableRow) (domain.Analysis, error) {
	var a domain.Analysis
	err := row.Scan(
		&a.ID,
		&a.Type,
		&a.Metric,
		&a.Description,
		&a.Severity,
		&a.Value,
		&a.ExpectedValue,
		&a.DateRangeStart,
		&a.DateRangeEnd,
		&a.CreatedAt,
		&a.Notified,
	)
	return a, err
}

// FindByKeys returns stored analyses matching any of the natural keys in a
// single tuple-IN query. Query count stays constant per run regardless of
// how many candidates a detection pass produced.
func (r *AnalysisRepository) FindByKeys(ctx context.Context, keys []domain.AnalysisKey) ([]domain.Analysis, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	tuples := make([]string, len(keys))
	args := make([]interface{}, 0, len(keys)*4)
	for i, k := range keys {
		n := i * 4
		tuples[i] = fmt.Sprintf("($%d, $%d, $%d::date, $%d::date)", n+1, n+2, n+3, n+4)
		args = append(args, k.Type, k.Metric, k.Start, k.End)
	}
	query := fmt.Sprintf(`SELECT %s FROM analyses
WHERE (type, metric, date_range_start, date_range_end) IN (%s)`,
		analysisColumns, strings.Join(tuples, ", "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanAnalysis)
}

// InsertBatch stores all analyses in one transaction, returning them with
// generated ids and timestamps in input order.
func (r *AnalysisRepository) InsertBatch(ctx context.Context, analyses []domain.Analysis) ([]domain.Analysis, error) {
	if len(analyses) == 0 {
		return nil, nil
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	out := make([]domain.Analysis, len(analyses))
	for i, a := range analyses {
		err = tx.QueryRow(ctx, `INSERT INTO analyses
(type, metric, description, severity, value, expected_value, date_range_start, date_range_end)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
RETURNING id, created_at, notified`,
			a.Type, a.Metric, a.Description, a.Severity, a.Value, a.ExpectedValue,
			a.DateRangeStart, a.DateRangeEnd,
		).Scan(&a.ID, &a.CreatedAt, &a.Notified)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

// List returns analyses matching the filter, newest first.
func (r *AnalysisRepository) List(ctx context.Context, f port.AnalysisFilter) ([]domain.Analysis, error) {
	var (
		conds []string
		args  []interface{}
	)
	add := func(cond string, val interface{}) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.Type != "" {
		add("type = $%d", f.Type)
	}
	if f.Metric != "" {
		add("metric = $%d", f.Metric)
	}
	if f.Severity != "" {
		add("severity = $%d", f.Severity)
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
	query := fmt.Sprintf(`SELECT %s FROM analyses %s
ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		analysisColumns, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanAnalysis)
}

// GetByID returns an analysis by id, or nil when not found.
func (r *AnalysisRepository) GetByID(ctx context.Context, id int64) (*domain.Analysis, error) {
	query := fmt.Sprintf(`SELECT %s FROM analyses WHERE id = $1`, analysisColumns)
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	a, err := pgx.CollectOneRow(rows, scanAnalysis)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// MarkNotified sets the notified flag. The flag never transitions back.
func (r *AnalysisRepository) MarkNotified(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE analyses SET notified = true WHERE id = $1`, id)
	return err
}

// InsertRecommendation stores one recommendation row.
func (r *AnalysisRepository) InsertRecommendation(ctx context.Context, rec domain.Recommendation) (*domain.Recommendation, error) {
	err := r.pool.QueryRow(ctx, `INSERT INTO recommendations (analysis_id, content)
VALUES ($1, $2) RETURNING id, created_at`,
		rec.AnalysisID, rec.Content,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListRecommendations returns recommendations matching the filter, newest
// first.
func (r *AnalysisRepository) ListRecommendations(ctx context.Context, f port.RecommendationFilter) ([]domain.Recommendation, error) {
	var (
		where string
		args  []interface{}
	)
	if f.AnalysisID != nil {
		args = append(args, *f.AnalysisID)
		where = "WHERE analysis_id = $1"
	}
	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	args = append(args, limit, f.Skip)
	query := fmt.Sprintf(`SELECT id, analysis_id, content, created_at FROM recommendations %s
ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Recommendation, error) {
		var rec domain.Recommendation
		err := row.Scan(&rec.ID, &rec.AnalysisID, &rec.Content, &rec.CreatedAt)
		return rec, err
	})
}

// GetRecommendation returns a recommendation by id, or nil when not found.
func (r *AnalysisRepository) GetRecommendation(ctx context.Context, id int64) (*domain.Recommendation, error) {
	var rec domain.Recommendation
	err := r.pool.QueryRow(ctx, `SELECT id, analysis_id, content, created_at
FROM recommendations WHERE id = $1`, id).
		Scan(&rec.ID, &rec.AnalysisID, &rec.Content, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// InsertNotification appends one row to the notification log.
func (r *AnalysisRepository) InsertNotification(ctx context.Context, n domain.Notification) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO notifications (analysis_id, recipient, subject, content)
VALUES ($1, $2, $3, $4)`, n.AnalysisID, n.Recipient, n.Subject, n.Content)
	return err
}
