package company

type UpsertHrCompanyRequest struct {
	Name         string  `json:"name" binding:"required,max=150"`
	Industry     *string `json:"industry" binding:"omitempty,max=100"`
	Address      *string `json:"address"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone *string `json:"contact_phone" binding:"omitempty,max=30"`
	Description  *string `json:"description"`
}

type HrCompanyResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Name         string  `json:"name"`
	Industry     *string `json:"industry"`
	Address      *string `json:"address"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
	Description  *string `json:"description"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}
