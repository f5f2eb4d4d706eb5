package job

import (
	"context"
	"database/sql"

	"barangay-portal/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=job_repo.go -destination=mock/job_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateListing(ctx context.Context, l *JobListing) error
	ListListings(ctx context.Context, filter ListingFilter, page, pageSize int) ([]JobListing, int64, error)
	FindListing(ctx context.Context, id uuid.UUID) (*JobListing, error)
	FindListingForUpdate(ctx context.Context, id uuid.UUID) (*JobListing, error)
	UpdateListingStatus(ctx context.Context, id uuid.UUID, status string) error

	CreateApplication(ctx context.Context, a *JobApplication) error
	ApplicationExists(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
	FindApplication(ctx context.Context, id uuid.UUID) (*JobApplication, error)
	FindApplicationForUpdate(ctx context.Context, id uuid.UUID) (*JobApplication, error)
	UpdateApplication(ctx context.Context, a *JobApplication) error
	CountAccepted(ctx context.Context, listingID uuid.UUID) (int64, error)
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]JobApplication, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]JobApplication, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.BindTx(r.db, r.tx).WithContext(ctx)
}

func (r *repository) CreateListing(ctx context.Context, l *JobListing) error {
	return r.conn(ctx).Create(l).Error
}

func (r *repository) ListListings(ctx context.Context, filter ListingFilter, page, pageSize int) ([]JobListing, int64, error) {
	var (
		items []JobListing
		total int64
	)

	q := r.conn(ctx).Model(&JobListing{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	q = q.Session(&gorm.Session{})

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("urgent DESC").
		Order("posted_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	return items, total, err
}

func (r *repository) FindListing(ctx context.Context, id uuid.UUID) (*JobListing, error) {
	var l JobListing
	err := r.conn(ctx).First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindListingForUpdate(ctx context.Context, id uuid.UUID) (*JobListing, error) {
	var l JobListing
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) UpdateListingStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.conn(ctx).
		Model(&JobListing{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) CreateApplication(ctx context.Context, a *JobApplication) error {
	return r.conn(ctx).Omit(clause.Associations).Create(a).Error
}

func (r *repository) ApplicationExists(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&JobApplication{}).
		Where("user_id = ? AND job_listing_id = ?", userID, listingID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindApplication(ctx context.Context, id uuid.UUID) (*JobApplication, error) {
	var a JobApplication
	err := r.conn(ctx).
		Preload("User").
		Preload("JobListing").
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindApplicationForUpdate(ctx context.Context, id uuid.UUID) (*JobApplication, error) {
	var a JobApplication
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) UpdateApplication(ctx context.Context, a *JobApplication) error {
	return r.conn(ctx).Omit(clause.Associations).Save(a).Error
}

func (r *repository) CountAccepted(ctx context.Context, listingID uuid.UUID) (int64, error) {
	var count int64
	err := r.conn(ctx).
		Model(&JobApplication{}).
		Where("job_listing_id = ? AND status = ?", listingID, ApplicationAccepted).
		Count(&count).Error
	return count, err
}

func (r *repository) ListByListing(ctx context.Context, listingID uuid.UUID) ([]JobApplication, error) {
	var items []JobApplication
	err := r.conn(ctx).
		Preload("User").
		Where("job_listing_id = ?", listingID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]JobApplication, error) {
	var items []JobApplication
	err := r.conn(ctx).
		Preload("JobListing").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}
