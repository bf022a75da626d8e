package database

import (
	"context"

	"gorm.io/gorm/schema"
)

// Repository reads and appends rows of one cache table.
// Rows are never updated or deleted.
type Repository[T schema.Tabler] struct {
	db     *DB
	writer *Writer
	order  string
}

func NewRepository[T schema.Tabler](db *DB, writer *Writer) *Repository[T] {
	return &Repository[T]{db: db, writer: writer}
}

// OrderBy returns a copy of the repository whose reads sort by column.
func (r *Repository[T]) OrderBy(column string) *Repository[T] {
	clone := *r
	clone.order = column
	return &clone
}

// Table returns the backing table name
func (r *Repository[T]) Table() string {
	var zero T
	return zero.TableName()
}

// FindBy returns every row whose column equals value, sorted by the
// OrderBy column when one is set.
func (r *Repository[T]) FindBy(ctx context.Context, column string, value any) ([]T, error) {
	var rows []T
	tx := r.db.WithContext(ctx).Where(column+" = ?", value)
	if r.order != "" {
		tx = tx.Order(r.order)
	}
	err := tx.Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Insert writes a single record and fills store-generated columns (RETURNING).
func (r *Repository[T]) Insert(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// InsertAll writes records in one statement.
func (r *Repository[T]) InsertAll(ctx context.Context, records []T) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&records).Error
}

// InsertAllAsync hands the insert to the writer; the caller does not wait.
func (r *Repository[T]) InsertAllAsync(records []T) {
	if len(records) == 0 {
		return
	}
	r.writer.Go(r.Table(), func(ctx context.Context) error {
		return r.InsertAll(ctx, records)
	})
}
