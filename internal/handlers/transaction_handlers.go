package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/metatx/transactions-api/internal/helpers"
	"github.com/metatx/transactions-api/internal/interfaces"
	"github.com/metatx/transactions-api/internal/txerrors"
	"github.com/metatx/transactions-api/internal/types/api"
)

// TransactionHandler serves the relay and history endpoints.
type TransactionHandler struct {
	service interfaces.TransactionService
}

func NewTransactionHandler(service interfaces.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// SendTransaction checks and relays the transaction in the request body and returns
// its hash.
func (h *TransactionHandler) SendTransaction(c *gin.Context) {
	var req api.SendTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, txerrors.NewInvalidSchemaError("request body must be JSON: "+err.Error()))
		return
	}
	if req.TransactionData == nil {
		sendError(c, txerrors.NewInvalidSchemaError("Missing transaction data. Please add it to the body of the request as `transactionData`"))
		return
	}

	txHash, err := h.service.SendMetaTransaction(c.Request.Context(), helpers.ToIntent(req.TransactionData))
	if err != nil {
		sendError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, api.SendTransactionResponse{TxHash: txHash})
}

// GetTransactions lists the transactions relayed for :user_address.
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	userAddress := c.Param("user_address")
	if !helpers.IsAddressValid(userAddress) {
		sendError(c, txerrors.NewInvalidSchemaError("invalid user address "+userAddress))
		return
	}

	records, err := h.service.GetByUserAddress(c.Request.Context(), userAddress)
	if err != nil {
		sendError(c, err)
		return
	}

	response := make([]api.TransactionResponse, 0, len(records))
	for _, record := range records {
		response = append(response, helpers.ToTransactionResponse(record))
	}
	sendSuccess(c, http.StatusOK, response)
}
