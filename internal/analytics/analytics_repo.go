package analytics

import (
	"context"
	"time"

	"barangay-portal/internal/documentrequest"
	"barangay-portal/internal/domain"
	"barangay-portal/internal/scope"
	"barangay-portal/internal/user"

	"gorm.io/gorm"
)

// Scope narrows an aggregate. Document request queries take request scopes,
// resident queries take user scopes.
type Scope = func(db *gorm.DB) *gorm.DB

//go:generate mockgen -source=analytics_repo.go -destination=mock/analytics_repo_mock.go -package=mock
type Repository interface {
	RequestStatusCounts(ctx context.Context, scopes ...Scope) ([]GroupedValue, error)
	RequestTypeCounts(ctx context.Context, scopes ...Scope) ([]GroupedValue, error)
	RequestUrgencyCounts(ctx context.Context, scopes ...Scope) ([]GroupedValue, error)
	DailyRequestCounts(ctx context.Context, since time.Time, scopes ...Scope) ([]DailyValue, error)
	DailyRevenue(ctx context.Context, since time.Time, scopes ...Scope) ([]DailyValue, error)
	RevenueTotals(ctx context.Context, scopes ...Scope) (RevenueTotals, error)
	RevenueByType(ctx context.Context, scopes ...Scope) ([]GroupedValue, error)
	TopRequesters(ctx context.Context, limit int) ([]Requester, error)
	RecentPaid(ctx context.Context, limit int) ([]documentrequest.DocumentRequest, error)

	CountResidents(ctx context.Context, scopes ...Scope) (int64, error)
	ResidentBirthdates(ctx context.Context, scopes ...Scope) ([]time.Time, error)
	SitioCounts(ctx context.Context, scopes ...Scope) ([]GroupedValue, error)

	ListingStatusCounts(ctx context.Context) ([]GroupedValue, error)
	ApplicationStatusCounts(ctx context.Context, scopes ...Scope) ([]GroupedValue, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) requests(ctx context.Context, scopes []Scope) *gorm.DB {
	return r.db.WithContext(ctx).Model(&documentrequest.DocumentRequest{}).Scopes(scopes...)
}

func (r *repository) residents(ctx context.Context, scopes []Scope) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&user.User{}).
		Where("role = ?", domain.RoleResident).
		Scopes(scopes...)
}

func groupCount(q *gorm.DB, column string) ([]GroupedValue, error) {
	var rows []GroupedValue
	err := q.Select(column + " AS bucket, COUNT(*) AS total").
		Group(column).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) RequestStatusCounts(ctx context.Context, scopes ...Scope) ([]GroupedValue, error) {
	return groupCount(r.requests(ctx, scopes), "status")
}

func (r *repository) RequestTypeCounts(ctx context.Context, scopes ...Scope) ([]GroupedValue, error) {
	return groupCount(r.requests(ctx, scopes), "type")
}

func (r *repository) RequestUrgencyCounts(ctx context.Context, scopes ...Scope) ([]GroupedValue, error) {
	return groupCount(r.requests(ctx, scopes), "urgency")
}

func (r *repository) DailyRequestCounts(ctx context.Context, since time.Time, scopes ...Scope) ([]DailyValue, error) {
	var rows []DailyValue
	err := r.requests(ctx, scopes).
		Scopes(scope.Since("created_at", since)).
		Select("DATE(created_at) AS day, COUNT(*) AS total").
		Group("DATE(created_at)").
		Scan(&rows).Error
	return rows, err
}

// DailyRevenue sums amounts in centavos per payment day. Callers pass scope.Paid().
func (r *repository) DailyRevenue(ctx context.Context, since time.Time, scopes ...Scope) ([]DailyValue, error) {
	var rows []DailyValue
	err := r.requests(ctx, scopes).
		Scopes(scope.Since("paid_at", since)).
		Select("DATE(paid_at) AS day, COALESCE(SUM(amount), 0) AS total").
		Group("DATE(paid_at)").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) RevenueTotals(ctx context.Context, scopes ...Scope) (RevenueTotals, error) {
	var totals RevenueTotals
	err := r.requests(ctx, scopes).
		Select(`COUNT(*) FILTER (WHERE is_paid) AS paid_count,
			COALESCE(SUM(amount) FILTER (WHERE is_paid), 0) AS paid_amount,
			COUNT(*) FILTER (WHERE NOT is_paid) AS unpaid_count,
			COALESCE(SUM(amount) FILTER (WHERE NOT is_paid), 0) AS unpaid_amount`).
		Scan(&totals).Error
	return totals, err
}

func (r *repository) RevenueByType(ctx context.Context, scopes ...Scope) ([]GroupedValue, error) {
	var rows []GroupedValue
	err := r.requests(ctx, scopes).
		Select("type AS bucket, COALESCE(SUM(amount), 0) AS total").
		Group("type").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) TopRequesters(ctx context.Context, limit int) ([]Requester, error) {
	var rows []Requester
	err := r.db.WithContext(ctx).
		Table("document_requests AS dr").
		Select("dr.user_id AS user_id, u.name AS name, COUNT(*) AS total").
		Joins("JOIN users u ON u.id = dr.user_id AND u.deleted_at IS NULL").
		Group("dr.user_id, u.name").
		Order("total DESC, u.name ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) RecentPaid(ctx context.Context, limit int) ([]documentrequest.DocumentRequest, error) {
	var rows []documentrequest.DocumentRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("is_paid = ?", true).
		Order("paid_at DESC NULLS LAST").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) CountResidents(ctx context.Context, scopes ...Scope) (int64, error) {
	var n int64
	err := r.residents(ctx, scopes).Count(&n).Error
	return n, err
}

func (r *repository) ResidentBirthdates(ctx context.Context, scopes ...Scope) ([]time.Time, error) {
	var dates []time.Time
	err := r.residents(ctx, scopes).
		Where("birthdate IS NOT NULL").
		Pluck("birthdate", &dates).Error
	return dates, err
}

// SitioCounts groups residents by sitio; residents without one share the empty key.
func (r *repository) SitioCounts(ctx context.Context, scopes ...Scope) ([]GroupedValue, error) {
	var rows []GroupedValue
	err := r.residents(ctx, scopes).
		Select("COALESCE(sitio, '') AS bucket, COUNT(*) AS total").
		Group("COALESCE(sitio, '')").
		Order("bucket ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ListingStatusCounts(ctx context.Context) ([]GroupedValue, error) {
	return groupCount(r.db.WithContext(ctx).Table("job_listings"), "status")
}

func (r *repository) ApplicationStatusCounts(ctx context.Context, scopes ...Scope) ([]GroupedValue, error) {
	return groupCount(r.db.WithContext(ctx).Table("job_applications").Scopes(scopes...), "status")
}
