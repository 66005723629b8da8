package db

import "gorm.io/gorm"

type Repositories struct {
	Users   *UserRepository
	Attacks *AttackRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:   NewUserRepository(database),
		Attacks: NewAttackRepository(database),
	}
}
