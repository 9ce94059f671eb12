package repository

import (
	"futsalbook/internal/database"
)

type Repositories struct {
	Users        *UserRepository
	Transactions *TransactionRepository
}

func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(db),
		Transactions: NewTransactionRepository(db),
	}
}
