package resident

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=resident_repo.go -destination=mock/resident_repo_mock.go -package=mock
type Repository interface {
	CreateSkill(ctx context.Context, s *Skill) error
	ListSkills(ctx context.Context, userID uuid.UUID) ([]Skill, error)
	DeleteSkill(ctx context.Context, userID, id uuid.UUID) (int64, error)
	CreateEmploymentRecord(ctx context.Context, r *EmploymentRecord) error
	ListEmploymentRecords(ctx context.Context, userID uuid.UUID) ([]EmploymentRecord, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateSkill(ctx context.Context, s *Skill) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) ListSkills(ctx context.Context, userID uuid.UUID) ([]Skill, error) {
	var items []Skill
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

// DeleteSkill removes the skill only when userID owns it and reports rows affected.
func (r *repository) DeleteSkill(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Skill{})
	return res.RowsAffected, res.Error
}

func (r *repository) CreateEmploymentRecord(ctx context.Context, rec *EmploymentRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) ListEmploymentRecords(ctx context.Context, userID uuid.UUID) ([]EmploymentRecord, error) {
	var items []EmploymentRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_current DESC").
		Order("start_date DESC").
		Find(&items).Error
	return items, err
}
