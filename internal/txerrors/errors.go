// Package txerrors holds the closed set of failures a relay request can end with.
// Every error exposes a machine readable ErrorCode that the HTTP layer maps to a status.
package txerrors

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrorCode is the machine readable code returned to API clients.
type ErrorCode string

const (
	CodeInvalidSchema          ErrorCode = "invalid_schema"
	CodeSalePriceTooLow        ErrorCode = "sale_price_too_low"
	CodeInvalidContractAddress ErrorCode = "invalid_contract_address"
	CodeQuotaReached           ErrorCode = "quota_reached"
	CodeHighCongestion         ErrorCode = "high_congestion"
	CodeInvalidTransaction     ErrorCode = "invalid_transaction"
	CodeExpectationFailed      ErrorCode = "expectation_failed"
	CodeDappLimitReached       ErrorCode = "dapp_limit_reached"
	CodeUserLimitReached       ErrorCode = "user_limit_reached"
	CodeAPILimitReached        ErrorCode = "api_limit_reached"
	CodeGasLimitReached        ErrorCode = "gas_limit_reached"
	CodeRelayerError           ErrorCode = "relayer_error"
	CodeRelayerTimeout         ErrorCode = "relayer_timeout"
	CodeUnknown                ErrorCode = "unknown"
)

// Coder is implemented by every error in this package.
type Coder interface {
	error
	Code() ErrorCode
}

// CodeOf returns the code of the first Coder in err's chain, or CodeUnknown.
func CodeOf(err error) ErrorCode {
	var coder Coder
	if errors.As(err, &coder) {
		return coder.Code()
	}
	return CodeUnknown
}

// InvalidSchemaError is returned when the intent does not have the expected shape.
type InvalidSchemaError struct {
	Errors []string
}

func NewInvalidSchemaError(errs ...string) *InvalidSchemaError {
	return &InvalidSchemaError{Errors: errs}
}

func (e *InvalidSchemaError) Error() string {
	return "Invalid transaction data: " + strings.Join(e.Errors, "; ")
}

func (e *InvalidSchemaError) Code() ErrorCode { return CodeInvalidSchema }

// InvalidSalePriceError is returned when a sale is at or below the configured floor.
type InvalidSalePriceError struct {
	MinPrice  string
	SalePrice string
}

func NewInvalidSalePriceError(minPrice, salePrice *big.Int) *InvalidSalePriceError {
	return &InvalidSalePriceError{MinPrice: minPrice.String(), SalePrice: salePrice.String()}
}

func (e *InvalidSalePriceError) Error() string {
	return fmt.Sprintf("The transaction data has a sale price of %s wei which is lower or equal than the minimum of %s wei", e.SalePrice, e.MinPrice)
}

func (e *InvalidSalePriceError) Code() ErrorCode { return CodeSalePriceTooLow }

// InvalidContractAddressError is returned when the target is neither whitelisted nor a collection.
type InvalidContractAddressError struct {
	Address string
}

func (e *InvalidContractAddressError) Error() string {
	return fmt.Sprintf("Invalid contract address %s", e.Address)
}

func (e *InvalidContractAddressError) Code() ErrorCode { return CodeInvalidContractAddress }

// QuotaReachedError is returned when an address has used its daily allowance.
type QuotaReachedError struct {
	Address      string
	CurrentQuota int64
}

func (e *QuotaReachedError) Error() string {
	return fmt.Sprintf("Max amount of transactions reached for address %s (%d today)", e.Address, e.CurrentQuota)
}

func (e *QuotaReachedError) Code() ErrorCode { return CodeQuotaReached }

// HighCongestionError is returned when the network gas price is above the allowed maximum.
type HighCongestionError struct {
	CurrentGasPrice string
	MaxGasPrice     string
}

func NewHighCongestionError(current, max *big.Int) *HighCongestionError {
	return &HighCongestionError{CurrentGasPrice: current.String(), MaxGasPrice: max.String()}
}

func (e *HighCongestionError) Error() string {
	return fmt.Sprintf("The network is congested. Current gas price %s is higher than the max allowed %s", e.CurrentGasPrice, e.MaxGasPrice)
}

func (e *HighCongestionError) Code() ErrorCode { return CodeHighCongestion }

// InvalidTransactionError is a relay rejection. ErrCode defaults to invalid_transaction.
type InvalidTransactionError struct {
	Message string
	ErrCode ErrorCode
}

func NewInvalidTransactionError(message string, code ErrorCode) *InvalidTransactionError {
	if code == "" {
		code = CodeInvalidTransaction
	}
	return &InvalidTransactionError{Message: message, ErrCode: code}
}

func (e *InvalidTransactionError) Error() string { return e.Message }

func (e *InvalidTransactionError) Code() ErrorCode { return e.ErrCode }

// RelayerError is an unexpected HTTP status from a relayer endpoint.
type RelayerError struct {
	StatusCode int
	Message    string
}

func (e *RelayerError) Error() string {
	return fmt.Sprintf("Relayer responded with status %d: %s", e.StatusCode, e.Message)
}

func (e *RelayerError) Code() ErrorCode { return CodeRelayerError }

// RelayerTimeout is returned when status polling ran out of attempts.
type RelayerTimeout struct {
	Message string
}

func (e *RelayerTimeout) Error() string { return e.Message }

func (e *RelayerTimeout) Code() ErrorCode { return CodeRelayerTimeout }

// ErrMaxGasPriceUndefined is returned when the congestion check is on but has no limit configured.
var ErrMaxGasPriceUndefined = errors.New("Max gas price allowed is not defined")
