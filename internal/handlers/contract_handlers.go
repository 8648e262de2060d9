package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/metatx/transactions-api/internal/helpers"
	"github.com/metatx/transactions-api/internal/interfaces"
	"github.com/metatx/transactions-api/internal/txerrors"
	"github.com/metatx/transactions-api/internal/types/api"
)

type ContractHandler struct {
	oracle interfaces.AddressOracle
}

func NewContractHandler(oracle interfaces.AddressOracle) *ContractHandler {
	return &ContractHandler{oracle: oracle}
}

// GetContract reports whether :address is whitelisted or a known collection.
func (h *ContractHandler) GetContract(c *gin.Context) {
	address := c.Param("address")
	if !helpers.IsAddressValid(address) {
		sendError(c, txerrors.NewInvalidSchemaError("invalid contract address "+address))
		return
	}

	valid, err := h.oracle.IsValidContractAddress(c.Request.Context(), address)
	if err != nil {
		sendError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, api.ContractAddressResponse{
		Address: helpers.NormalizeAddress(address),
		Valid:   valid,
	})
}
