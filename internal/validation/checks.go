package validation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/metatx/transactions-api/internal/db"
	"github.com/metatx/transactions-api/internal/helpers"
	"github.com/metatx/transactions-api/internal/txerrors"
	"github.com/metatx/transactions-api/internal/types/business"
)

// CheckSchema requires a sender and exactly two non-empty params.
func (p *Pipeline) CheckSchema(_ context.Context, intent business.TransactionIntent) error {
	err := p.validate.Struct(intent)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return txerrors.NewInvalidSchemaError(err.Error())
	}
	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		if fe.Param() != "" {
			messages = append(messages, fmt.Sprintf("%s must satisfy %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		messages = append(messages, fmt.Sprintf("%s must satisfy %s", fe.Namespace(), fe.Tag()))
	}
	return txerrors.NewInvalidSchemaError(messages...)
}

// CheckContractAddress requires the target to be whitelisted or a known collection.
func (p *Pipeline) CheckContractAddress(ctx context.Context, intent business.TransactionIntent) error {
	target := intent.Target()
	valid, err := p.oracle.IsValidContractAddress(ctx, target)
	if err != nil {
		return fmt.Errorf("failed to validate contract address %s: %w", target, err)
	}
	if !valid {
		return &txerrors.InvalidContractAddressError{Address: target}
	}
	return nil
}

// CheckQuota rejects senders that already relayed the daily maximum since midnight UTC.
// Concurrent requests from the same sender may both pass.
func (p *Pipeline) CheckQuota(ctx context.Context, intent business.TransactionIntent) error {
	count, err := p.ledger.CountTransactionsSince(ctx, db.CountTransactionsSinceParams{
		UserAddress: helpers.NormalizeAddress(intent.From),
		CreatedAt:   helpers.TimeToTimestamptz(StartOfDay(p.now())),
	})
	if err != nil {
		return fmt.Errorf("failed to count transactions for %s: %w", intent.From, err)
	}
	if count >= p.cfg.MaxTransactionsPerDay {
		return &txerrors.QuotaReachedError{Address: intent.From, CurrentQuota: count}
	}
	return nil
}

// CheckEstimatedGas asks the node to estimate the call so transactions that would revert
// never reach a relayer.
func (p *Pipeline) CheckEstimatedGas(ctx context.Context, intent business.TransactionIntent) error {
	if p.chain == nil {
		return errors.New("gas estimation is enabled but no RPC client is configured")
	}
	data, err := intent.CallData()
	if err != nil {
		return txerrors.NewInvalidTransactionError(fmt.Sprintf("Invalid call data: %v", err), txerrors.CodeExpectationFailed)
	}
	if _, err := p.chain.EstimateGas(ctx, intent.From, intent.Target(), data); err != nil {
		return txerrors.NewInvalidTransactionError(fmt.Sprintf("The transaction cannot be executed: %v", err), txerrors.CodeExpectationFailed)
	}
	return nil
}

// StartOfDay returns midnight UTC of t's day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
