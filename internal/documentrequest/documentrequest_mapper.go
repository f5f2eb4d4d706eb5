package documentrequest

import (
	"math"
	"time"

	"barangay-portal/internal/user"
)

// CentavosToPesos renders a stored amount for JSON.
func CentavosToPesos(v int64) float64 {
	return float64(v) / 100
}

func pesosToCentavos(v float64) int64 {
	return int64(math.Round(v * 100))
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}

func mapToResponse(d DocumentRequest) DocumentRequestResponse {
	resp := DocumentRequestResponse{
		ID:            d.ID.String(),
		UserID:        d.UserID.String(),
		Type:          d.Type,
		TypeLabel:     Label(d.Type),
		Category:      Category(d.Type),
		Notes:         d.Notes,
		Status:        d.Status,
		Urgency:       d.Urgency,
		IsPaid:        d.IsPaid,
		Amount:        CentavosToPesos(d.Amount),
		ProcessedAt:   formatTime(d.ProcessedAt),
		ExpiresAt:     formatTime(d.ExpiresAt),
		DownloadCount: d.DownloadCount,
		MaxDownloads:  d.MaxDownloads,
		CreatedAt:     d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     d.UpdatedAt.Format(time.RFC3339),
		Owner:         user.MapToSummary(d.User),
		Assignee:      user.MapToSummary(d.Assignee),
	}
	if d.AssignedTo != nil {
		v := d.AssignedTo.String()
		resp.AssignedTo = &v
	}
	return resp
}

func mapToListResponse(items []DocumentRequest) []DocumentRequestResponse {
	out := make([]DocumentRequestResponse, len(items))
	for i, d := range items {
		out[i] = mapToResponse(d)
	}
	return out
}

func catalogResponse() []DocumentTypeResponse {
	out := make([]DocumentTypeResponse, len(Catalog))
	for i, t := range Catalog {
		out[i] = DocumentTypeResponse{Key: t.Key, Label: t.Label, Fee: CentavosToPesos(t.Fee)}
	}
	return out
}
