package service

import (
	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/repository"
)

// TransactionService exposes the read side of the append-only trade log.
// Entries are written by the asset lifecycle and the auto-trader, never
// directly through the API.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo *repository.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

// GetTransactions returns a user's transactions, most recent first.
func (s *TransactionService) GetTransactions(userID string) ([]model.Transaction, error) {
	return s.transactionRepo.GetTransactions(userID)
}
