package adapters

import (
	"github.com/fisc-tools/doc-audit/pkg/models/api"
	"github.com/fisc-tools/doc-audit/pkg/models/domain"
)

func MapStatusDomainToApi(s domain.Status) api.Status {
	switch s {
	case domain.StatusPass:
		return api.StatusPass
	case domain.StatusWarning:
		return api.StatusWarning
	case domain.StatusFail:
		return api.StatusFail
	default:
		return api.StatusPending
	}
}

func MapSubFindingDomainToApi(s domain.SubFinding) api.SubFinding {
	return api.SubFinding{
		Label:   s.Label,
		Status:  MapStatusDomainToApi(s.Status),
		Details: s.Details,
	}
}

func MapFindingDomainToApi(f domain.Finding) api.Finding {
	res := api.Finding{
		Id:             f.ID,
		Title:          f.Title,
		Description:    f.Description,
		Status:         MapStatusDomainToApi(f.Status),
		Details:        f.Details,
		Recommendation: f.Recommendation,
	}
	for _, s := range f.SubFindings {
		res.SubFindings = append(res.SubFindings, MapSubFindingDomainToApi(s))
	}
	return res
}

func MapAuditReportDomainToApi(r domain.AuditReport) api.AuditReport {
	res := api.AuditReport{
		SessionId:   r.SessionID,
		GeneratedAt: r.GeneratedAt,
		Summary:     map[string]any{},
		Findings:    make([]api.Finding, 0, len(r.Findings)),
	}
	for k, v := range r.Summary {
		res.Summary[k] = v
	}
	for _, f := range r.Findings {
		res.Findings = append(res.Findings, MapFindingDomainToApi(f))
	}
	return res
}
