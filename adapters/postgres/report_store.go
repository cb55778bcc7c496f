package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"

	"dataprof/domain/core"
	"dataprof/domain/profile"
	"dataprof/internal/errors"
	"dataprof/ports"
)

// reportStore implements ports.ReportStore on Postgres, persisting the
// report body as JSONB.
type reportStore struct {
	db *sqlx.DB
}

// NewReportStore creates a report store.
func NewReportStore(db *sqlx.DB) ports.ReportStore {
	return &reportStore{db: db}
}

// EnsureSchema creates the backing table when missing.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	const schema = `CREATE TABLE IF NOT EXISTS profile_reports (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		row_count INTEGER NOT NULL,
		column_count INTEGER NOT NULL,
		fingerprint TEXT NOT NULL,
		report JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errors.StoreError("failed to ensure report schema", err)
	}
	return nil
}

func (s *reportStore) Save(ctx context.Context, rec *ports.StoredReport) error {
	reportJSON, err := json.Marshal(rec.Report)
	if err != nil {
		return errors.StoreError("failed to marshal report", err)
	}

	query := `INSERT INTO profile_reports (
		id, name, row_count, column_count, fingerprint, report, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = s.db.ExecContext(ctx, query,
		rec.ID.String(), rec.Name, rec.Report.RowCount, rec.Report.ColumnCount,
		rec.Report.Fingerprint.String(), reportJSON, rec.CreatedAt.Time(),
	)
	if err != nil {
		return errors.StoreError("failed to save report", err)
	}
	return nil
}

func (s *reportStore) Get(ctx context.Context, id core.ReportID) (*ports.StoredReport, error) {
	query := `SELECT id, name, report, created_at FROM profile_reports WHERE id = $1`

	var (
		rowID      string
		name       string
		reportJSON []byte
		createdAt  time.Time
	)
	err := s.db.QueryRowContext(ctx, query, id.String()).Scan(&rowID, &name, &reportJSON, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound("report " + id.String())
		}
		return nil, errors.StoreError("failed to get report", err)
	}

	var report profile.Report
	if err := json.Unmarshal(reportJSON, &report); err != nil {
		return nil, errors.StoreError("failed to unmarshal report", err)
	}

	return &ports.StoredReport{
		ID:        core.ReportID(rowID),
		Name:      name,
		CreatedAt: core.NewTimestamp(createdAt),
		Report:    &report,
	}, nil
}

func (s *reportStore) List(ctx context.Context, limit int) ([]ports.ReportMeta, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, name, row_count, column_count, fingerprint, created_at
		FROM profile_reports ORDER BY created_at DESC LIMIT $1`

	rows, err := s.db.QueryxContext(ctx, query, limit)
	if err != nil {
		return nil, errors.StoreError("failed to list reports", err)
	}
	defer rows.Close()

	metas := make([]ports.ReportMeta, 0, limit)
	for rows.Next() {
		var (
			id          string
			name        string
			rowCount    int
			columnCount int
			fingerprint string
			createdAt   time.Time
		)
		if err := rows.Scan(&id, &name, &rowCount, &columnCount, &fingerprint, &createdAt); err != nil {
			return nil, errors.StoreError("failed to scan report row", err)
		}
		metas = append(metas, ports.ReportMeta{
			ID:          core.ReportID(id),
			Name:        name,
			RowCount:    rowCount,
			ColumnCount: columnCount,
			Fingerprint: core.Fingerprint(fingerprint),
			CreatedAt:   core.NewTimestamp(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.StoreError("failed to list reports", err)
	}
	return metas, nil
}
