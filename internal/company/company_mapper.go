package company

import "time"

func mapToResponse(c *HrCompany) HrCompanyResponse {
	return HrCompanyResponse{
		ID:           c.ID.String(),
		UserID:       c.UserID.String(),
		Name:         c.Name,
		Industry:     c.Industry,
		Address:      c.Address,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
		Description:  c.Description,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    c.UpdatedAt.Format(time.RFC3339),
	}
}

func applyRequest(c *HrCompany, req UpsertHrCompanyRequest) {
	c.Name = req.Name
	c.Industry = req.Industry
	c.Address = req.Address
	c.ContactEmail = req.ContactEmail
	c.ContactPhone = req.ContactPhone
	c.Description = req.Description
}
