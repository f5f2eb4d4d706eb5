package resident

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

func mapSkill(s Skill) SkillResponse {
	return SkillResponse{
		ID:              s.ID.String(),
		Name:            s.Name,
		Level:           s.Level,
		YearsExperience: s.YearsExperience,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
	}
}

func mapSkills(items []Skill) []SkillResponse {
	out := make([]SkillResponse, len(items))
	for i, s := range items {
		out[i] = mapSkill(s)
	}
	return out
}

func mapEmploymentRecord(r EmploymentRecord) EmploymentRecordResponse {
	resp := EmploymentRecordResponse{
		ID:             r.ID.String(),
		EmployerName:   r.EmployerName,
		Position:       r.Position,
		EmploymentType: r.EmploymentType,
		StartDate:      r.StartDate.Format(dateLayout),
		IsCurrent:      r.IsCurrent,
	}
	if r.EndDate != nil {
		v := r.EndDate.Format(dateLayout)
		resp.EndDate = &v
	}
	if r.MonthlyIncome != nil {
		v := float64(*r.MonthlyIncome) / 100
		resp.MonthlyIncome = &v
	}
	return resp
}

func mapEmploymentRecords(items []EmploymentRecord) []EmploymentRecordResponse {
	out := make([]EmploymentRecordResponse, len(items))
	for i, r := range items {
		out[i] = mapEmploymentRecord(r)
	}
	return out
}

func toCentavos(pesos float64) int64 {
	return int64(math.Round(pesos * 100))
}
