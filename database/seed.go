package database

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"unireg/config"
	"unireg/models"
)

// SeedAdmin makes sure the administrator account exists. Credentials come
// from configuration so deployments can rotate them without a code change.
func SeedAdmin(db *gorm.DB) error {
	cfg := config.AppConfig

	var existing models.User
	err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		log.Printf("Admin account %s already exists.", cfg.AdminEmail)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), cfg.SaltRound)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Admin account %s created.", cfg.AdminEmail)
	return nil
}
