package documentrequest

import "barangay-portal/internal/user"

type CreateDocumentRequestRequest struct {
	Type    string  `json:"type" binding:"required,max=191"`
	Notes   *string `json:"notes"`
	Urgency *string `json:"urgency" binding:"omitempty,oneof=low normal high urgent"`
}

// UpdateDocumentRequestRequest applies only the fields present. An empty assigned_to unassigns.
type UpdateDocumentRequestRequest struct {
	Status     *string  `json:"status" binding:"omitempty,oneof=pending approved rejected"`
	AssignedTo *string  `json:"assigned_to" binding:"omitempty,uuid"`
	Notes      *string  `json:"notes"`
	Urgency    *string  `json:"urgency" binding:"omitempty,oneof=low normal high urgent"`
	IsPaid     *bool    `json:"is_paid"`
	Amount     *float64 `json:"amount" binding:"omitempty,gte=0"`
}

type ListFilter struct {
	Status string
}

type DocumentRequestResponse struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	Type          string        `json:"type"`
	TypeLabel     string        `json:"type_label"`
	Category      string        `json:"category"`
	Notes         *string       `json:"notes"`
	Status        string        `json:"status"`
	Urgency       string        `json:"urgency"`
	IsPaid        bool          `json:"is_paid"`
	Amount        float64       `json:"amount"`
	AssignedTo    *string       `json:"assigned_to"`
	ProcessedAt   *string       `json:"processed_at"`
	ExpiresAt     *string       `json:"expires_at"`
	DownloadCount int           `json:"download_count"`
	MaxDownloads  *int          `json:"max_downloads"`
	CreatedAt     string        `json:"created_at"`
	UpdatedAt     string        `json:"updated_at"`
	Owner         *user.Summary `json:"user,omitempty"`
	Assignee      *user.Summary `json:"assignee,omitempty"`
}

type DocumentTypeResponse struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Fee   float64 `json:"fee"`
}
