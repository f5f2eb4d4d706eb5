package analytics

import (
	"barangay-portal/internal/documentrequest"
)

var (
	requestStatuses = []Category{
		{Key: documentrequest.StatusPending, Label: "Pending"},
		{Key: documentrequest.StatusApproved, Label: "Approved"},
		{Key: documentrequest.StatusRejected, Label: "Rejected"},
	}

	requestUrgencies = []Category{
		{Key: documentrequest.UrgencyLow, Label: "Low"},
		{Key: documentrequest.UrgencyNormal, Label: "Normal"},
		{Key: documentrequest.UrgencyHigh, Label: "High"},
		{Key: documentrequest.UrgencyUrgent, Label: "Urgent"},
	}

	listingStatuses = []Category{
		{Key: "open", Label: "Open"},
		{Key: "filled", Label: "Filled"},
	}

	applicationStatuses = []Category{
		{Key: "pending", Label: "Pending"},
		{Key: "accepted", Label: "Accepted"},
		{Key: "rejected", Label: "Rejected"},
	}
)

// documentTypes is the request catalog as rollup categories.
func documentTypes() []Category {
	out := make([]Category, len(documentrequest.Catalog))
	for i, t := range documentrequest.Catalog {
		out[i] = Category{Key: t.Key, Label: t.Label}
	}
	return out
}

// foldTypes maps raw stored types onto catalog keys so free-form types land in "other".
func foldTypes(rows []GroupedValue) []GroupedValue {
	out := make([]GroupedValue, len(rows))
	for i, r := range rows {
		out[i] = GroupedValue{Key: documentrequest.Category(r.Key), Value: r.Value}
	}
	return out
}

func overviewOf(byStatus []CategoryTotal) RequestOverview {
	o := RequestOverview{
		Pending:  valueOf(byStatus, documentrequest.StatusPending),
		Approved: valueOf(byStatus, documentrequest.StatusApproved),
		Rejected: valueOf(byStatus, documentrequest.StatusRejected),
	}
	o.Total = o.Pending + o.Approved + o.Rejected
	return o
}

func applicationOverviewOf(byStatus []CategoryTotal) ApplicationOverview {
	o := ApplicationOverview{
		Pending:  valueOf(byStatus, "pending"),
		Accepted: valueOf(byStatus, "accepted"),
		Rejected: valueOf(byStatus, "rejected"),
	}
	o.Total = o.Pending + o.Accepted + o.Rejected
	return o
}
