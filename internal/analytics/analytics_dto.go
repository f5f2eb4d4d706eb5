package analytics

import (
	"time"

	"barangay-portal/internal/user"
)

// GroupedValue is one row of a GROUP BY aggregate.
type GroupedValue struct {
	Key   string  `gorm:"column:bucket"`
	Value float64 `gorm:"column:total"`
}

// DailyValue is one row of a per-day aggregate.
type DailyValue struct {
	Day   time.Time `gorm:"column:day"`
	Value float64   `gorm:"column:total"`
}

type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type Category struct {
	Key   string
	Label string
}

type CategoryTotal struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type RevenueTotals struct {
	PaidCount    int64 `gorm:"column:paid_count"`
	PaidAmount   int64 `gorm:"column:paid_amount"`
	UnpaidCount  int64 `gorm:"column:unpaid_count"`
	UnpaidAmount int64 `gorm:"column:unpaid_amount"`
}

type Requester struct {
	UserID string `gorm:"column:user_id" json:"user_id"`
	Name   string `gorm:"column:name" json:"name"`
	Total  int64  `gorm:"column:total" json:"total"`
}

// RequestOverview counts document requests per status.
type RequestOverview struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type GenderEstimate struct {
	Male      int64  `json:"male"`
	Female    int64  `json:"female"`
	Estimated bool   `json:"estimated"`
	Basis     string `json:"basis"`
}

type Demographics struct {
	TotalResidents int64           `json:"total_residents"`
	WithBirthdate  int64           `json:"with_birthdate"`
	AgeGroups      []CategoryTotal `json:"age_groups"`
	Gender         GenderEstimate  `json:"gender"`
}

type EmploymentEstimate struct {
	Employed     int64  `json:"employed"`
	SelfEmployed int64  `json:"self_employed"`
	Unemployed   int64  `json:"unemployed"`
	Estimated    bool   `json:"estimated"`
	Basis        string `json:"basis"`
}

type DocumentRequestStats struct {
	ByType      []CategoryTotal `json:"by_type"`
	ByUrgency   []CategoryTotal `json:"by_urgency"`
	RecentTrend []TrendPoint    `json:"recent_trend"`
}

type JobListingStats struct {
	Listings     []CategoryTotal `json:"listings"`
	Applications []CategoryTotal `json:"applications"`
}

type SitioCount struct {
	Sitio string `json:"sitio"`
	Count int64  `json:"count"`
}

// Snapshot is the admin dashboard, system wide or narrowed to one barangay.
type Snapshot struct {
	Barangay          string               `json:"barangay,omitempty"`
	Overview          RequestOverview      `json:"overview"`
	Demographics      Demographics         `json:"demographics"`
	Employment        EmploymentEstimate   `json:"employment"`
	DocumentRequests  DocumentRequestStats `json:"document_requests"`
	JobListings       JobListingStats      `json:"job_listings"`
	SitioDistribution []SitioCount         `json:"sitio_distribution"`
	GeneratedAt       string               `json:"generated_at"`
}

type ApplicationOverview struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Accepted int64 `json:"accepted"`
	Rejected int64 `json:"rejected"`
}

type CommunityStats struct {
	TotalResidents        int64 `json:"total_residents"`
	TotalDocumentRequests int64 `json:"total_document_requests"`
	OpenJobListings       int64 `json:"open_job_listings"`
}

type ResidentSnapshot struct {
	MyRequests     RequestOverview     `json:"my_requests"`
	MyApplications ApplicationOverview `json:"my_applications"`
	CommunityStats CommunityStats      `json:"community_stats"`
	RequestsByType []CategoryTotal     `json:"requests_by_type"`
	RecentTrend    []TrendPoint        `json:"recent_trend"`
	GeneratedAt    string              `json:"generated_at"`
}

type SalesStats struct {
	TotalRevenue      float64         `json:"total_revenue"`
	PaidCount         int64           `json:"paid_count"`
	UnpaidCount       int64           `json:"unpaid_count"`
	OutstandingAmount float64         `json:"outstanding_amount"`
	RevenueByType     []CategoryTotal `json:"revenue_by_type"`
}

type SecretaryTrends struct {
	Requests []TrendPoint `json:"requests"`
	Revenue  []TrendPoint `json:"revenue"`
}

type Breakdown struct {
	ByType    []CategoryTotal `json:"by_type"`
	ByUrgency []CategoryTotal `json:"by_urgency"`
	ByStatus  []CategoryTotal `json:"by_status"`
}

type PaidRequest struct {
	ID        string        `json:"id"`
	Type      string        `json:"type"`
	TypeLabel string        `json:"type_label"`
	Amount    float64       `json:"amount"`
	PaidAt    *string       `json:"paid_at"`
	User      *user.Summary `json:"user,omitempty"`
}

type SecretarySnapshot struct {
	Overview           RequestOverview `json:"overview"`
	Sales              SalesStats      `json:"sales"`
	Trends             SecretaryTrends `json:"trends"`
	Breakdown          Breakdown       `json:"breakdown"`
	TopRequesters      []Requester     `json:"top_requesters"`
	RecentPaidRequests []PaidRequest   `json:"recent_paid_requests"`
	GeneratedAt        string          `json:"generated_at"`
}
