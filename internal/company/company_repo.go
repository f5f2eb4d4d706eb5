package company

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, c *HrCompany) error
	FindByID(ctx context.Context, id uuid.UUID) (*HrCompany, error)
	FindByUser(ctx context.Context, userID uuid.UUID) (*HrCompany, error)
	Update(ctx context.Context, c *HrCompany) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *HrCompany) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*HrCompany, error) {
	var c HrCompany
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) FindByUser(ctx context.Context, userID uuid.UUID) (*HrCompany, error) {
	var c HrCompany
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&c).Error
	return &c, err
}

func (r *repository) Update(ctx context.Context, c *HrCompany) error {
	return r.db.WithContext(ctx).Save(c).Error
}
