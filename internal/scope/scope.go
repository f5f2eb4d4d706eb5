// Package scope holds the gorm scopes that express caller-derived predicates.
// Repositories compose them instead of branching per role.
package scope

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy limits rows to those whose column equals the given user.
func OwnedBy(column string, userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", userID)
	}
}

// InBarangay limits rows to those owned (through userColumn) by a user of the barangay.
func InBarangay(userColumn, barangay string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(userColumn+" IN (SELECT id FROM users WHERE barangay = ? AND deleted_at IS NULL)", barangay)
	}
}

// Since limits rows to those whose timestamp column is at or after from.
func Since(column string, from time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" >= ?", from)
	}
}

// Paid limits document requests to paid ones.
func Paid() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_paid = ?", true)
	}
}

// None is the identity scope used when a caller sees everything.
func None() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db
	}
}

// NullOrEqual matches rows whose column is unset or equals value. An empty value matches unset rows only.
func NullOrEqual(column, value string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db.Where(column + " IS NULL")
		}
		return db.Where("("+column+" IS NULL OR "+column+" = ?)", value)
	}
}
