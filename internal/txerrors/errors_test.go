package txerrors

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "schema", err: NewInvalidSchemaError("from is required"), want: CodeInvalidSchema},
		{name: "sale price", err: NewInvalidSalePriceError(big.NewInt(10), big.NewInt(5)), want: CodeSalePriceTooLow},
		{name: "contract", err: &InvalidContractAddressError{Address: "0x1"}, want: CodeInvalidContractAddress},
		{name: "quota", err: &QuotaReachedError{Address: "0x1", CurrentQuota: 2}, want: CodeQuotaReached},
		{name: "congestion", err: NewHighCongestionError(big.NewInt(3), big.NewInt(2)), want: CodeHighCongestion},
		{name: "transaction default code", err: NewInvalidTransactionError("boom", ""), want: CodeInvalidTransaction},
		{name: "transaction explicit code", err: NewInvalidTransactionError("boom", CodeDappLimitReached), want: CodeDappLimitReached},
		{name: "relayer", err: &RelayerError{StatusCode: 500, Message: "Unknown error"}, want: CodeRelayerError},
		{name: "timeout", err: &RelayerTimeout{Message: "limit"}, want: CodeRelayerTimeout},
		{name: "wrapped", err: fmt.Errorf("checkData: %w", &QuotaReachedError{}), want: CodeQuotaReached},
		{name: "plain", err: errors.New("db down"), want: CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestInvalidSalePriceError_KeepsDecimalStrings(t *testing.T) {
	err := NewInvalidSalePriceError(big.NewInt(10), big.NewInt(5))
	assert.Equal(t, "10", err.MinPrice)
	assert.Equal(t, "5", err.SalePrice)
}
