package store

import (
	"errors"

	"gorm.io/gorm"

	"ecobin_backend/internal/models"
)

// ErrNotFound is returned when no record exists for the requested id.
var ErrNotFound = errors.New("record not found")

// Store is a gorm-backed repository for one entity kind. It performs no
// validation; callers own field-level checks.
type Store[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

// Create persists the record and fills in its assigned id.
func (s *Store[T]) Create(record *T) error {
	return s.db.Create(record).Error
}

// List returns every record, unfiltered.
func (s *Store[T]) List() ([]T, error) {
	var records []T
	if err := s.db.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetByID fetches a single record or ErrNotFound.
func (s *Store[T]) GetByID(id uint) (*T, error) {
	var record T
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Save writes back all fields of an already-loaded record. Concurrent
// saves of the same id are last-writer-wins.
func (s *Store[T]) Save(record *T) error {
	return s.db.Save(record).Error
}

// Delete removes the record with the given id, or returns ErrNotFound
// if it never existed. Nothing is created or modified on the miss path.
func (s *Store[T]) Delete(id uint) error {
	var record T
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Delete(&record, id).Error
}

// UserStore adds the email lookup the auth flows need on top of the
// generic operations.
type UserStore struct {
	*Store[models.User]
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{Store: New[models.User](db)}
}

// FindByEmail fetches the user registered under email, or ErrNotFound.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
