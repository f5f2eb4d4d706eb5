package user

type ProvisionUserRequest struct {
	Name      string  `json:"name" binding:"required,max=191"`
	Email     string  `json:"email" binding:"required,email,max=191"`
	Password  string  `json:"password" binding:"required,min=8"`
	Role      string  `json:"role" binding:"required"`
	Barangay  *string `json:"barangay" binding:"omitempty,max=100"`
	Sitio     *string `json:"sitio" binding:"omitempty,max=100"`
	Phone     string  `json:"phone" binding:"omitempty,max=30"`
	Address   string  `json:"address"`
	Birthdate *string `json:"birthdate"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	Barangay  *string `json:"barangay"`
	Sitio     *string `json:"sitio"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	Birthdate *string `json:"birthdate"`
	CreatedAt string  `json:"created_at"`
}

// Summary is the compact form embedded in other resources (owner, assignee, applicant).
type Summary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Barangay *string `json:"barangay,omitempty"`
}
