package db

import (
	"github.com/terraincognita07/aura/internal/models"
	"gorm.io/gorm"
)

type AttackRepository struct {
	database *gorm.DB
}

func NewAttackRepository(database *gorm.DB) *AttackRepository {
	return &AttackRepository{database: database}
}

// ListByUser returns every recorded episode for the user, newest first.
func (repo *AttackRepository) ListByUser(userID uint) ([]models.Attack, error) {
	attacks := make([]models.Attack, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&attacks).Error; err != nil {
		return nil, err
	}
	return attacks, nil
}

func (repo *AttackRepository) Create(attack *models.Attack) error {
	return repo.database.Create(attack).Error
}

func (repo *AttackRepository) DeleteByIDForUser(userID uint, attackID uint) error {
	return repo.database.
		Where("id = ? AND user_id = ?", attackID, userID).
		Delete(&models.Attack{}).Error
}
