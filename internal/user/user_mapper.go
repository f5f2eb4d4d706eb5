package user

import "time"

const dateLayout = "2006-01-02"

func MapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Barangay:  u.Barangay,
		Sitio:     u.Sitio,
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.Birthdate != nil {
		v := u.Birthdate.Format(dateLayout)
		resp.Birthdate = &v
	}
	return resp
}

// MapToSummary returns nil for a relation that was not loaded.
func MapToSummary(u *User) *Summary {
	if u == nil {
		return nil
	}
	return &Summary{
		ID:       u.ID.String(),
		Name:     u.Name,
		Email:    u.Email,
		Barangay: u.Barangay,
	}
}

// ParseBirthdate accepts an optional YYYY-MM-DD value.
func ParseBirthdate(v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
