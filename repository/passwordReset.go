package repository

import (
	"time"

	"gorm.io/gorm"

	"unireg/models"
)

// PasswordResetRepository stores single-use reset tokens.
type PasswordResetRepository struct {
	db *gorm.DB
}

func NewPasswordResetRepository(db *gorm.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

func (r *PasswordResetRepository) Create(reset *models.PasswordReset) error {
	return r.db.Create(reset).Error
}

func (r *PasswordResetRepository) GetByToken(token string) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	if err := r.db.Where("token = ?", token).First(&reset).Error; err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *PasswordResetRepository) MarkUsed(id uint) error {
	now := time.Now()
	return r.db.Model(&models.PasswordReset{}).Where("id = ?", id).
		Update("used_at", &now).Error
}
