package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fisc-tools/doc-audit/pkg/models/domain"
	"github.com/fisc-tools/doc-audit/pkg/models/store"
	"github.com/fisc-tools/doc-audit/pkg/store/sqlite"
)

// ErrNotFound is returned when no report exists for the requested session.
var ErrNotFound = errors.New("audit report not found")

// Store persists finished audit reports. Findings and summary are kept as
// JSON documents; the engine never reads them back, only the API does.
type Store interface {
	Add(ctx context.Context, report domain.AuditReport) error
	Get(ctx context.Context, sessionID string) (*domain.AuditReport, error)
	List(ctx context.Context, limit int) ([]domain.AuditReport, error)
}

type reportStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &reportStore{db: db}, nil
}

func (s *reportStore) Add(ctx context.Context, report domain.AuditReport) error {
	summary, err := json.Marshal(report.Summary)
	if err != nil {
		return fmt.Errorf("failed to encode report summary: %w", err)
	}
	findings, err := json.Marshal(report.Findings)
	if err != nil {
		return fmt.Errorf("failed to encode report findings: %w", err)
	}

	query := `
		INSERT INTO audit_reports (id, generated_at, summary, findings)
		VALUES (?, ?, ?, ?)`

	if tx := sqlite.GetTransaction(ctx); tx != nil {
		_, err = tx.ExecContext(ctx, query, report.SessionID, report.GeneratedAt, summary, findings)
	} else {
		_, err = s.db.ExecContext(ctx, query, report.SessionID, report.GeneratedAt, summary, findings)
	}
	if err != nil {
		return fmt.Errorf("failed to insert audit report: %w", err)
	}
	return nil
}

func (s *reportStore) Get(ctx context.Context, sessionID string) (*domain.AuditReport, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, generated_at, summary, findings
		FROM audit_reports
		WHERE id = ?`, sessionID)

	report, err := scanReport(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read audit report: %w", err)
	}
	return report, nil
}

func (s *reportStore) List(ctx context.Context, limit int) ([]domain.AuditReport, error) {
	logger := zerolog.Ctx(ctx)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, generated_at, summary, findings
		FROM audit_reports
		ORDER BY generated_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit reports: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close report rows")
		}
	}(rows)

	var reports []domain.AuditReport
	for rows.Next() {
		report, err := scanReport(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to read audit report: %w", err)
		}
		reports = append(reports, *report)
	}
	return reports, rows.Err()
}

func scanReport(scan func(dest ...any) error) (*domain.AuditReport, error) {
	var record store.ReportRecord
	if err := scan(&record.ID, &record.GeneratedAt, &record.Summary, &record.Findings); err != nil {
		return nil, err
	}

	report := domain.AuditReport{
		SessionID:   record.ID,
		GeneratedAt: record.GeneratedAt,
	}
	if err := json.Unmarshal(record.Summary, &report.Summary); err != nil {
		return nil, fmt.Errorf("corrupt summary document: %w", err)
	}
	if err := json.Unmarshal(record.Findings, &report.Findings); err != nil {
		return nil, fmt.Errorf("corrupt findings document: %w", err)
	}
	return &report, nil
}
