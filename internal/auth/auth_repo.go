package auth

import (
	"errors"

	"github.com/sportconnect-sg/backend/internal/user"

	"gorm.io/gorm"
)

// AuthRepository defines the user lookups the auth flows need.
type AuthRepository interface {
	FindUserByEmail(email string) (*user.User, error)
	FindUserByID(id uint) (*user.User, error)
	CreateUser(u *user.User) error
	UpdateUser(u *user.User) error
}

// GormAuthRepository implements AuthRepository using GORM
type GormAuthRepository struct {
	db *gorm.DB
}

// NewGormAuthRepository creates a new GormAuthRepository
func NewGormAuthRepository(db *gorm.DB) *GormAuthRepository {
	return &GormAuthRepository{db: db}
}

// FindUserByEmail returns nil, nil when no account exists for the email.
func (r *GormAuthRepository) FindUserByEmail(email string) (*user.User, error) {
	var u user.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *GormAuthRepository) FindUserByID(id uint) (*user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *GormAuthRepository) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *GormAuthRepository) UpdateUser(u *user.User) error {
	return r.db.Save(u).Error
}
