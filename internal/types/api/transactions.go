package api

import "time"

// SendTransactionRequest is the body of POST /transactions.
type SendTransactionRequest struct {
	TransactionData *TransactionData `json:"transactionData"`
}

type TransactionData struct {
	From   string   `json:"from"`
	Params []string `json:"params"`
}

// SendTransactionResponse is returned once the transaction has been relayed.
type SendTransactionResponse struct {
	TxHash string `json:"txHash"`
}

// TransactionResponse is one entry of a user's transaction history.
type TransactionResponse struct {
	TxHash      string    `json:"txHash"`
	UserAddress string    `json:"userAddress"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ErrorResponse is the body sent for any failed request.
type ErrorResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database,omitempty"`
}

// ContractAddressResponse reports whether an address may receive relayed calls.
type ContractAddressResponse struct {
	Address string `json:"address"`
	Valid   bool   `json:"valid"`
}
