package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/aura/internal/models"
)

var (
	ErrSaveAttackFailed   = errors.New("save attack failed")
	ErrDeleteAttackFailed = errors.New("delete attack failed")
)

// AttackRepository is the persistence boundary of the episode log. The store
// owns the record list; everything above it works on immutable snapshots.
type AttackRepository interface {
	ListByUser(userID uint) ([]models.Attack, error)
	Create(attack *models.Attack) error
	DeleteByIDForUser(userID uint, attackID uint) error
}

type AttackService struct {
	attacks AttackRepository
}

func NewAttackService(attacks AttackRepository) *AttackService {
	return &AttackService{attacks: attacks}
}

// Snapshot loads the full episode list, newest first. Every derived view
// (calendar index, charts, reports) is recomputed from such a snapshot.
func (service *AttackService) Snapshot(userID uint) ([]models.Attack, error) {
	return service.attacks.ListByUser(userID)
}

// RecordAttack validates the payload and persists a new episode. Validation
// errors pass through unchanged so handlers can surface them verbatim.
func (service *AttackService) RecordAttack(userID uint, input AttackInput) (models.Attack, error) {
	attack, err := NormalizeAttackInput(input)
	if err != nil {
		return models.Attack{}, err
	}

	attack.UserID = userID
	if err := service.attacks.Create(&attack); err != nil {
		return models.Attack{}, fmt.Errorf("%w: %v", ErrSaveAttackFailed, err)
	}
	return attack, nil
}

// DeleteAttack removes one episode by id. Deleting an id that does not exist
// is a no-op, not an error.
func (service *AttackService) DeleteAttack(userID uint, attackID uint) error {
	if err := service.attacks.DeleteByIDForUser(userID, attackID); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteAttackFailed, err)
	}
	return nil
}
