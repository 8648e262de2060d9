package helpers

import (
	"github.com/metatx/transactions-api/internal/db"
	"github.com/metatx/transactions-api/internal/types/api"
	"github.com/metatx/transactions-api/internal/types/business"
)

// ToTransactionRecord converts a ledger row to its business representation.
func ToTransactionRecord(row db.Transaction) business.TransactionRecord {
	return business.TransactionRecord{
		ID:          row.ID,
		TxHash:      row.TxHash,
		UserAddress: row.UserAddress,
		CreatedAt:   TimestamptzToTime(row.CreatedAt),
	}
}

// ToTransactionResponse converts a record to the API representation.
func ToTransactionResponse(record business.TransactionRecord) api.TransactionResponse {
	return api.TransactionResponse{
		TxHash:      record.TxHash,
		UserAddress: record.UserAddress,
		CreatedAt:   record.CreatedAt,
	}
}

// ToIntent converts the request payload to a transaction intent. A missing payload
// yields an empty intent, which fails the schema check.
func ToIntent(data *api.TransactionData) business.TransactionIntent {
	if data == nil {
		return business.TransactionIntent{}
	}
	return business.TransactionIntent{From: data.From, Params: data.Params}
}
