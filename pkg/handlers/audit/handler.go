package audit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/fisc-tools/doc-audit/pkg/adapters"
	"github.com/fisc-tools/doc-audit/pkg/models/api"
	"github.com/fisc-tools/doc-audit/pkg/models/domain"
	auditsvc "github.com/fisc-tools/doc-audit/pkg/services/audit"
	"github.com/fisc-tools/doc-audit/pkg/store/sqlite/report"
)

const defaultListLimit = 20

// Auditor is the audit service consumed by the handler.
type Auditor interface {
	Audit(ctx context.Context, bundle domain.DocumentBundle) domain.AuditReport
}

type Handler struct {
	auditor Auditor
	reports report.Store
}

func NewHandler(auditor Auditor, reports report.Store) *Handler {
	return &Handler{
		auditor: auditor,
		reports: reports,
	}
}

var _ Auditor = (*auditsvc.Auditor)(nil)

// RunAudit evaluates a posted document bundle and persists the report.
func (h *Handler) RunAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var bundle api.DocumentBundle
	if err := json.NewDecoder(r.Body).Decode(&bundle); err != nil {
		logger.Warn().Err(err).Msg("invalid bundle payload")
		http.Error(w, "invalid bundle payload", http.StatusBadRequest)
		return
	}

	result := h.auditor.Audit(ctx, adapters.MapDocumentBundleApiToDomain(bundle))

	if err := h.reports.Add(ctx, result); err != nil {
		logger.Error().Err(err).Msg("failed to persist audit report")
		http.Error(w, "failed to persist audit report", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, adapters.MapAuditReportDomainToApi(result))
}

// GetReport returns one stored report by session id.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	sessionID := chi.URLParam(r, "session")

	stored, err := h.reports.Get(ctx, sessionID)
	if errors.Is(err, report.ErrNotFound) {
		http.Error(w, "audit report not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("session", sessionID).Msg("failed to load audit report")
		http.Error(w, "failed to load audit report", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, adapters.MapAuditReportDomainToApi(*stored))
}

// ListReports returns the most recent stored reports.
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	stored, err := h.reports.List(ctx, limit)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list audit reports")
		http.Error(w, "failed to list audit reports", http.StatusInternalServerError)
		return
	}

	response := make([]api.AuditReport, 0, len(stored))
	for _, rep := range stored {
		response = append(response, adapters.MapAuditReportDomainToApi(rep))
	}
	writeJSON(w, logger, response)
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
