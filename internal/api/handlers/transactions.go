package handlers

import (
	"net/http"

	"github.com/ljacquet/patrimoine-backend/internal/service"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// Transactions returns the acting user's trade log, most recent first.
func (h *TransactionHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.transactionService.GetTransactions(requestUserID(r))
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve transactions")
		return
	}
	respondJSON(w, http.StatusOK, transactions)
}
