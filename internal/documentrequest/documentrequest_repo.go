package documentrequest

import (
	"context"
	"database/sql"

	"barangay-portal/internal/shared/connection"
	"barangay-portal/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope is a caller-derived predicate, see internal/scope.
type Scope = func(db *gorm.DB) *gorm.DB

//go:generate mockgen -source=documentrequest_repo.go -destination=mock/documentrequest_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, d *DocumentRequest) error
	List(ctx context.Context, scopes []Scope, page, pageSize int) ([]DocumentRequest, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*DocumentRequest, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*DocumentRequest, error)
	Update(ctx context.Context, d *DocumentRequest) error
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
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

func (r *repository) Create(ctx context.Context, d *DocumentRequest) error {
	return r.conn(ctx).Omit(clause.Associations).Create(d).Error
}

func (r *repository) List(ctx context.Context, scopes []Scope, page, pageSize int) ([]DocumentRequest, int64, error) {
	var (
		items []DocumentRequest
		total int64
	)

	q := r.conn(ctx).Model(&DocumentRequest{}).Scopes(scopes...).Session(&gorm.Session{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("User").
		Preload("Assignee").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	return items, total, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*DocumentRequest, error) {
	var d DocumentRequest
	err := r.conn(ctx).
		Preload("User").
		Preload("Assignee").
		First(&d, "id = ?", id).Error
	return &d, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*DocumentRequest, error) {
	var d DocumentRequest
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&d, "id = ?", id).Error
	return &d, err
}

func (r *repository) Update(ctx context.Context, d *DocumentRequest) error {
	return r.conn(ctx).Omit(clause.Associations).Save(d).Error
}

func (r *repository) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&user.User{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
