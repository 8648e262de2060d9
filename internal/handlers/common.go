package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/metatx/transactions-api/internal/middleware"
	"github.com/metatx/transactions-api/internal/txerrors"
	"github.com/metatx/transactions-api/internal/types/api"
	"go.uber.org/zap"
)

// statusByCode maps error codes to HTTP statuses. Codes not listed are 500.
var statusByCode = map[txerrors.ErrorCode]int{
	txerrors.CodeInvalidSchema:          http.StatusBadRequest,
	txerrors.CodeSalePriceTooLow:        http.StatusBadRequest,
	txerrors.CodeInvalidContractAddress: http.StatusBadRequest,
	txerrors.CodeQuotaReached:           http.StatusTooManyRequests,
	txerrors.CodeHighCongestion:         http.StatusServiceUnavailable,
	txerrors.CodeInvalidTransaction:     http.StatusConflict,
	txerrors.CodeDappLimitReached:       http.StatusConflict,
	txerrors.CodeUserLimitReached:       http.StatusConflict,
	txerrors.CodeAPILimitReached:        http.StatusConflict,
	txerrors.CodeGasLimitReached:        http.StatusConflict,
	txerrors.CodeExpectationFailed:      http.StatusExpectationFailed,
	txerrors.CodeRelayerError:           http.StatusBadGateway,
	txerrors.CodeRelayerTimeout:         http.StatusGatewayTimeout,
}

// StatusForError returns the HTTP status and code an error is reported with.
func StatusForError(err error) (int, txerrors.ErrorCode) {
	code := txerrors.CodeOf(err)
	if status, ok := statusByCode[code]; ok {
		return status, code
	}
	return http.StatusInternalServerError, txerrors.CodeUnknown
}

// sendError logs err and writes the error body. Internal errors are not echoed back.
func sendError(c *gin.Context, err error) {
	status, code := StatusForError(err)
	message := err.Error()

	log := middleware.LogWithCorrelationID(c.Request.Context()).With(
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("code", string(code)),
		zap.Error(err),
	)
	if status >= http.StatusInternalServerError && code == txerrors.CodeUnknown {
		log.Error("request failed")
		message = "Internal server error"
	} else {
		log.Info("request rejected")
	}

	_ = c.Error(err)
	c.JSON(status, api.ErrorResponse{OK: false, Message: message, Code: string(code)})
}

func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
