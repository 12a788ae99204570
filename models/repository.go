package models

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("record not found")

// Repository is the persistence contract every managed entity goes through
type Repository[T any] interface {
	List(order string) ([]T, error)
	GetByID(id uint64) (*T, error)
	Create(item *T) error
	Update(item *T) error
	Delete(id uint64) error
}

type gormRepository[T any] struct {
	db      *gorm.DB
	preload []string
}

// NewRepository returns a gorm backed Repository. The preload relations are
// loaded on List and GetByID only, writes never touch associations.
func NewRepository[T any](db *gorm.DB, preload ...string) Repository[T] {
	return &gormRepository[T]{db: db, preload: preload}
}

func (r *gormRepository[T]) query() *gorm.DB {
	tx := r.db
	for _, p := range r.preload {
		tx = tx.Preload(p)
	}
	return tx
}

func (r *gormRepository[T]) List(order string) (items []T, err error) {
	tx := r.query()
	if order != "" {
		tx = tx.Order(order)
	}
	err = tx.Find(&items).Error
	return
}

func (r *gormRepository[T]) GetByID(id uint64) (*T, error) {
	var item T
	err := r.query().First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *gormRepository[T]) Create(item *T) error {
	return r.db.Omit(clause.Associations).Create(item).Error
}

func (r *gormRepository[T]) Update(item *T) error {
	return r.db.Omit(clause.Associations).Save(item).Error
}

func (r *gormRepository[T]) Delete(id uint64) error {
	result := r.db.Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
