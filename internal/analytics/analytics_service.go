package analytics

import (
	"context"
	"time"

	analyticserrors "barangay-portal/internal/analytics/errors"
	"barangay-portal/internal/documentrequest"
	"barangay-portal/internal/domain"
	"barangay-portal/internal/scope"
	"barangay-portal/internal/shared/contextutil"
	"barangay-portal/internal/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	topRequesterLimit = 5
	recentPaidLimit   = 10
	unassignedSitio   = "Unassigned"
)

//go:generate mockgen -source=analytics_service.go -destination=mock/analytics_service_mock.go -package=mock
type Service interface {
	SystemWideSnapshot(ctx context.Context) (Snapshot, error)
	BarangayScopedSnapshot(ctx context.Context, caller domain.Caller) (Snapshot, error)
	ResidentScopedSnapshot(ctx context.Context, caller domain.Caller) (ResidentSnapshot, error)
	SecretarySnapshot(ctx context.Context) (SecretarySnapshot, error)
}

type service struct {
	repo   Repository
	cache  *Cache
	now    func() time.Time
	loc    *time.Location
	logger *zap.Logger
}

// NewService buckets trends by calendar day in loc, which must match the database
// session zone DATE() runs in. A nil loc falls back to the process zone.
func NewService(repo Repository, cache *Cache, loc *time.Location, logger ...*zap.Logger) Service {
	l := zap.L().Named("analytics.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.service")
	}
	if loc == nil {
		loc = time.Local
	}
	return &service{repo: repo, cache: cache, now: time.Now, loc: loc, logger: l}
}

// NewServiceWithClock fixes "today" for trends and ages.
func NewServiceWithClock(repo Repository, cache *Cache, loc *time.Location, now func() time.Time, logger ...*zap.Logger) Service {
	s := NewService(repo, cache, loc, logger...).(*service)
	s.now = now
	return s
}

func (s *service) today() time.Time {
	return s.now().In(s.loc)
}

// fail logs an aggregation error and wraps it with its raw message.
func (s *service) fail(ctx context.Context, snapshot string, err error) error {
	s.logger.Error("analytics aggregation failed",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("snapshot", snapshot),
		zap.Error(err),
	)
	return analyticserrors.AggregationFailed(err)
}

func (s *service) SystemWideSnapshot(ctx context.Context) (Snapshot, error) {
	snap, err := cached(ctx, s.cache, "admin", func(ctx context.Context) (Snapshot, error) {
		return s.buildSnapshot(ctx, nil, nil)
	})
	if err != nil {
		return Snapshot{}, s.fail(ctx, "admin", err)
	}
	return snap, nil
}

func (s *service) BarangayScopedSnapshot(ctx context.Context, caller domain.Caller) (Snapshot, error) {
	if !caller.HasBarangay() {
		s.logger.Warn("barangay snapshot without barangay",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("caller_id", caller.ID.String()),
		)
		return Snapshot{}, analyticserrors.ErrScopeRequired
	}
	barangay := caller.BarangayName()

	snap, err := cached(ctx, s.cache, "barangay:"+barangay, func(ctx context.Context) (Snapshot, error) {
		snap, err := s.buildSnapshot(ctx,
			[]Scope{scope.InBarangay("user_id", barangay)},
			[]Scope{inBarangayUsers(barangay)},
		)
		snap.Barangay = barangay
		return snap, err
	})
	if err != nil {
		return Snapshot{}, s.fail(ctx, "barangay", err)
	}
	return snap, nil
}

func inBarangayUsers(barangay string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("barangay = ?", barangay)
	}
}

// buildSnapshot computes the admin dashboard. requestScopes narrow document requests
// and job applications, userScopes narrow residents.
func (s *service) buildSnapshot(ctx context.Context, requestScopes, userScopes []Scope) (Snapshot, error) {
	now := s.today()

	byStatus, err := s.repo.RequestStatusCounts(ctx, requestScopes...)
	if err != nil {
		return Snapshot{}, err
	}
	byType, err := s.repo.RequestTypeCounts(ctx, requestScopes...)
	if err != nil {
		return Snapshot{}, err
	}
	byUrgency, err := s.repo.RequestUrgencyCounts(ctx, requestScopes...)
	if err != nil {
		return Snapshot{}, err
	}
	daily, err := s.repo.DailyRequestCounts(ctx, TrendStart(TrendWindow, now), requestScopes...)
	if err != nil {
		return Snapshot{}, err
	}

	residents, err := s.repo.CountResidents(ctx, userScopes...)
	if err != nil {
		return Snapshot{}, err
	}
	birthdates, err := s.repo.ResidentBirthdates(ctx, userScopes...)
	if err != nil {
		return Snapshot{}, err
	}
	sitios, err := s.repo.SitioCounts(ctx, userScopes...)
	if err != nil {
		return Snapshot{}, err
	}

	listings, err := s.repo.ListingStatusCounts(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	applications, err := s.repo.ApplicationStatusCounts(ctx, requestScopes...)
	if err != nil {
		return Snapshot{}, err
	}

	demographics := buildDemographics(residents, birthdates, now)
	return Snapshot{
		Overview:     overviewOf(Rollup(requestStatuses, byStatus)),
		Demographics: demographics,
		Employment:   estimateEmployment(valueOf(demographics.AgeGroups, AgeAdult)),
		DocumentRequests: DocumentRequestStats{
			ByType:      Rollup(documentTypes(), foldTypes(byType)),
			ByUrgency:   Rollup(requestUrgencies, byUrgency),
			RecentTrend: BuildTrend(TrendWindow, now, daily),
		},
		JobListings: JobListingStats{
			Listings:     Rollup(listingStatuses, listings),
			Applications: Rollup(applicationStatuses, applications),
		},
		SitioDistribution: sitioDistribution(sitios),
		GeneratedAt:       now.Format(time.RFC3339),
	}, nil
}

func sitioDistribution(rows []GroupedValue) []SitioCount {
	out := make([]SitioCount, len(rows))
	for i, r := range rows {
		name := r.Key
		if name == "" {
			name = unassignedSitio
		}
		out[i] = SitioCount{Sitio: name, Count: int64(r.Value)}
	}
	return out
}

func (s *service) ResidentScopedSnapshot(ctx context.Context, caller domain.Caller) (ResidentSnapshot, error) {
	key := "resident:" + caller.ID.String()
	snap, err := cached(ctx, s.cache, key, func(ctx context.Context) (ResidentSnapshot, error) {
		return s.buildResidentSnapshot(ctx, caller)
	})
	if err != nil {
		return ResidentSnapshot{}, s.fail(ctx, "resident", err)
	}
	return snap, nil
}

func (s *service) buildResidentSnapshot(ctx context.Context, caller domain.Caller) (ResidentSnapshot, error) {
	now := s.today()
	own := scope.OwnedBy("user_id", caller.ID)

	byStatus, err := s.repo.RequestStatusCounts(ctx, own)
	if err != nil {
		return ResidentSnapshot{}, err
	}
	byType, err := s.repo.RequestTypeCounts(ctx, own)
	if err != nil {
		return ResidentSnapshot{}, err
	}
	daily, err := s.repo.DailyRequestCounts(ctx, TrendStart(TrendWindow, now), own)
	if err != nil {
		return ResidentSnapshot{}, err
	}
	applications, err := s.repo.ApplicationStatusCounts(ctx, own)
	if err != nil {
		return ResidentSnapshot{}, err
	}

	residents, err := s.repo.CountResidents(ctx)
	if err != nil {
		return ResidentSnapshot{}, err
	}
	allStatuses, err := s.repo.RequestStatusCounts(ctx)
	if err != nil {
		return ResidentSnapshot{}, err
	}
	listings, err := s.repo.ListingStatusCounts(ctx)
	if err != nil {
		return ResidentSnapshot{}, err
	}

	return ResidentSnapshot{
		MyRequests:     overviewOf(Rollup(requestStatuses, byStatus)),
		MyApplications: applicationOverviewOf(Rollup(applicationStatuses, applications)),
		CommunityStats: CommunityStats{
			TotalResidents:        residents,
			TotalDocumentRequests: overviewOf(Rollup(requestStatuses, allStatuses)).Total,
			OpenJobListings:       valueOf(Rollup(listingStatuses, listings), "open"),
		},
		RequestsByType: Rollup(documentTypes(), foldTypes(byType)),
		RecentTrend:    BuildTrend(TrendWindow, now, daily),
		GeneratedAt:    now.Format(time.RFC3339),
	}, nil
}

func (s *service) SecretarySnapshot(ctx context.Context) (SecretarySnapshot, error) {
	snap, err := cached(ctx, s.cache, "secretary", s.buildSecretarySnapshot)
	if err != nil {
		return SecretarySnapshot{}, s.fail(ctx, "secretary", err)
	}
	return snap, nil
}

func (s *service) buildSecretarySnapshot(ctx context.Context) (SecretarySnapshot, error) {
	now := s.today()
	since := TrendStart(TrendWindow, now)

	byStatus, err := s.repo.RequestStatusCounts(ctx)
	if err != nil {
		return SecretarySnapshot{}, err
	}
	byType, err := s.repo.RequestTypeCounts(ctx)
	if err != nil {
		return SecretarySnapshot{}, err
	}
	byUrgency, err := s.repo.RequestUrgencyCounts(ctx)
	if err != nil {
		return SecretarySnapshot{}, err
	}
	totals, err := s.repo.RevenueTotals(ctx)
	if err != nil {
		return SecretarySnapshot{}, err
	}
	revenueByType, err := s.repo.RevenueByType(ctx, scope.Paid())
	if err != nil {
		return SecretarySnapshot{}, err
	}
	dailyRequests, err := s.repo.DailyRequestCounts(ctx, since)
	if err != nil {
		return SecretarySnapshot{}, err
	}
	dailyRevenue, err := s.repo.DailyRevenue(ctx, since, scope.Paid())
	if err != nil {
		return SecretarySnapshot{}, err
	}
	top, err := s.repo.TopRequesters(ctx, topRequesterLimit)
	if err != nil {
		return SecretarySnapshot{}, err
	}
	recent, err := s.repo.RecentPaid(ctx, recentPaidLimit)
	if err != nil {
		return SecretarySnapshot{}, err
	}

	statusTotals := Rollup(requestStatuses, byStatus)
	if top == nil {
		top = []Requester{}
	}
	return SecretarySnapshot{
		Overview: overviewOf(statusTotals),
		Sales: SalesStats{
			TotalRevenue:      documentrequest.CentavosToPesos(totals.PaidAmount),
			PaidCount:         totals.PaidCount,
			UnpaidCount:       totals.UnpaidCount,
			OutstandingAmount: documentrequest.CentavosToPesos(totals.UnpaidAmount),
			RevenueByType:     toPesos(Rollup(documentTypes(), foldTypes(revenueByType))),
		},
		Trends: SecretaryTrends{
			Requests: BuildTrend(TrendWindow, now, dailyRequests),
			Revenue:  trendToPesos(BuildTrend(TrendWindow, now, dailyRevenue)),
		},
		Breakdown: Breakdown{
			ByType:    Rollup(documentTypes(), foldTypes(byType)),
			ByUrgency: Rollup(requestUrgencies, byUrgency),
			ByStatus:  statusTotals,
		},
		TopRequesters:      top,
		RecentPaidRequests: mapPaidRequests(recent),
		GeneratedAt:        now.Format(time.RFC3339),
	}, nil
}

func toPesos(totals []CategoryTotal) []CategoryTotal {
	for i := range totals {
		totals[i].Value = documentrequest.CentavosToPesos(int64(totals[i].Value))
	}
	return totals
}

func trendToPesos(points []TrendPoint) []TrendPoint {
	for i := range points {
		points[i].Value = documentrequest.CentavosToPesos(int64(points[i].Value))
	}
	return points
}

func mapPaidRequests(rows []documentrequest.DocumentRequest) []PaidRequest {
	out := make([]PaidRequest, len(rows))
	for i, d := range rows {
		var paidAt *string
		if d.PaidAt != nil {
			v := d.PaidAt.Format(time.RFC3339)
			paidAt = &v
		}
		out[i] = PaidRequest{
			ID:        d.ID.String(),
			Type:      d.Type,
			TypeLabel: documentrequest.Label(d.Type),
			Amount:    documentrequest.CentavosToPesos(d.Amount),
			PaidAt:    paidAt,
			User:      user.MapToSummary(d.User),
		}
	}
	return out
}
