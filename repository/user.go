package repository

import (
	"gorm.io/gorm"

	"unireg/models"
)

// UserRepository is the data-access layer for identity records.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListByRole returns users holding a role, ordered by display name.
func (r *UserRepository) ListByRole(role string) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ?", role).Order("name asc").Find(&users).Error
	return users, err
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) UpdatePassword(id uint, hashed string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Update("password", hashed).Error
}
