package business

import (
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// TransactionIntent is a user signed meta transaction waiting to be relayed.
// Params holds the target contract address and the hex encoded forwarded call data.
type TransactionIntent struct {
	From   string   `json:"from" validate:"required"`
	Params []string `json:"params" validate:"required,len=2,dive,required"`
}

// Target returns the contract the forwarded call is sent to, or "" when missing.
func (t TransactionIntent) Target() string {
	if len(t.Params) < 1 {
		return ""
	}
	return t.Params[0]
}

// CallData decodes the forwarded call data. Malformed hex yields an error.
func (t TransactionIntent) CallData() ([]byte, error) {
	if len(t.Params) < 2 {
		return nil, hexutil.ErrEmptyString
	}
	return hexutil.Decode(t.Params[1])
}

// TransactionRecord is a relayed transaction stored in the ledger.
type TransactionRecord struct {
	ID          int32     `json:"id"`
	TxHash      string    `json:"txHash"`
	UserAddress string    `json:"userAddress"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FeatureVariant is the active variant of a feature flag.
type FeatureVariant struct {
	Name    string                 `json:"name"`
	Enabled bool                   `json:"enabled"`
	Payload *FeatureVariantPayload `json:"payload,omitempty"`
}

type FeatureVariantPayload struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
