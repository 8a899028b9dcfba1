// Package relational stores academy records in a SQL database through gorm.
// PostgreSQL is the production dialect; SQLite serves local runs and tests.
package relational

import (
	"context"

	"github.com/juju/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
)

// Store implements storage.EntityStore on a gorm connection.
type Store struct {
	db *gorm.DB
	// lockRows enables SELECT ... FOR UPDATE inside read-modify-write
	// transactions. SQLite serializes writers and rejects the clause.
	lockRows bool
}

var _ storage.EntityStore = (*Store)(nil)

func New(db *gorm.DB) *Store {
	return &Store{db: db, lockRows: db.Dialector.Name() == "postgres"}
}

// Migrate creates or updates the schema for every record type.
func (s *Store) Migrate(ctx context.Context) error {
	const op = "relational.Migrate"
	err := s.db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Batch{},
		&models.Student{},
		&models.SkillAssessment{},
		&models.Session{},
		&models.Attendance{},
		&models.TrainingPlan{},
		&models.ProgressSummary{},
		&models.DrillRecommendation{},
	)
	return errors.Annotate(err, op)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) locked(tx *gorm.DB) *gorm.DB {
	if s.lockRows {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// first loads one record matching conds, or nil when there is none.
func first[T any](q *gorm.DB, conds ...interface{}) (*T, error) {
	var v T
	err := q.First(&v, conds...).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// list loads every record matching q in id order.
func list[T any](q *gorm.DB) ([]T, error) {
	out := make([]T, 0)
	if err := q.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// newest loads records matching q newest first, higher id winning ties.
func newest[T any](q *gorm.DB, limit int) ([]T, error) {
	out := make([]T, 0)
	q = q.Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func insert[T any](ctx context.Context, db *gorm.DB, v *T) error {
	err := db.WithContext(ctx).Create(v).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.NewAlreadyExists(err, "duplicate record")
	}
	return err
}

// modify runs the read-modify-write of one record in a transaction.
func modify[T any](ctx context.Context, s *Store, id uint, fn func(*T) error) (*T, error) {
	var out *T
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		v, err := first[T](s.locked(tx), id)
		if err != nil || v == nil {
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
		if err := tx.Save(v).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errors.NewAlreadyExists(err, "duplicate record")
			}
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func remove[T any](ctx context.Context, db *gorm.DB, id uint) (bool, error) {
	res := db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
