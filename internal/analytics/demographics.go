package analytics

import (
	"math"
	"time"
)

// No gender or employment column exists. These shares produce labelled estimates only.
const (
	estimatedMaleShare         = 0.52
	estimatedEmployedShare     = 0.60
	estimatedSelfEmployedShare = 0.15

	genderBasis     = "52% of residents assumed male; no gender is recorded"
	employmentBasis = "60% employed and 15% self-employed assumed among residents aged 25-59; no employment status is recorded"
)

const (
	AgeChild  = "child"
	AgeYouth  = "youth"
	AgeAdult  = "adult"
	AgeSenior = "senior"
)

var ageGroups = []Category{
	{Key: AgeChild, Label: "Children (0-12)"},
	{Key: AgeYouth, Label: "Youth (13-24)"},
	{Key: AgeAdult, Label: "Adults (25-59)"},
	{Key: AgeSenior, Label: "Seniors (60+)"},
}

// AgeAt returns completed years between birth and now.
func AgeAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

func AgeGroup(birth, now time.Time) string {
	switch age := AgeAt(birth, now); {
	case age < 13:
		return AgeChild
	case age < 25:
		return AgeYouth
	case age < 60:
		return AgeAdult
	default:
		return AgeSenior
	}
}

func buildDemographics(total int64, birthdates []time.Time, now time.Time) Demographics {
	rows := make([]GroupedValue, 0, len(birthdates))
	for _, b := range birthdates {
		rows = append(rows, GroupedValue{Key: AgeGroup(b, now), Value: 1})
	}

	male := int64(math.Round(float64(total) * estimatedMaleShare))
	return Demographics{
		TotalResidents: total,
		WithBirthdate:  int64(len(birthdates)),
		AgeGroups:      Rollup(ageGroups, rows),
		Gender: GenderEstimate{
			Male:      male,
			Female:    total - male,
			Estimated: true,
			Basis:     genderBasis,
		},
	}
}

func estimateEmployment(adults int64) EmploymentEstimate {
	employed := int64(math.Round(float64(adults) * estimatedEmployedShare))
	self := int64(math.Round(float64(adults) * estimatedSelfEmployedShare))
	unemployed := adults - employed - self
	if unemployed < 0 {
		unemployed = 0
	}
	return EmploymentEstimate{
		Employed:     employed,
		SelfEmployed: self,
		Unemployed:   unemployed,
		Estimated:    true,
		Basis:        employmentBasis,
	}
}
