package services

import (
	"context"
	"fmt"
	"time"

	"github.com/metatx/transactions-api/internal/client/aws"
	"github.com/metatx/transactions-api/internal/db"
	"github.com/metatx/transactions-api/internal/helpers"
	"github.com/metatx/transactions-api/internal/interfaces"
	"github.com/metatx/transactions-api/internal/logger"
	"github.com/metatx/transactions-api/internal/types/business"
	"go.uber.org/zap"
)

// TransactionService validates, relays and records meta transactions.
type TransactionService struct {
	pipeline  interfaces.PolicyPipeline
	relay     interfaces.RelayDispatcher
	queries   db.Querier
	publisher interfaces.EventPublisher
	chainID   uint64
	logger    *zap.Logger
	now       func() time.Time
}

var _ interfaces.TransactionService = (*TransactionService)(nil)

// NewTransactionService creates the service. publisher may be nil, in which case no
// relay events are sent.
func NewTransactionService(
	pipeline interfaces.PolicyPipeline,
	relay interfaces.RelayDispatcher,
	queries db.Querier,
	publisher interfaces.EventPublisher,
	chainID uint64,
) *TransactionService {
	return &TransactionService{
		pipeline:  pipeline,
		relay:     relay,
		queries:   queries,
		publisher: publisher,
		chainID:   chainID,
		logger:    logger.OrGlobal(nil),
		now:       time.Now,
	}
}

// CheckData runs every policy check against intent.
func (s *TransactionService) CheckData(ctx context.Context, intent business.TransactionIntent) error {
	return s.pipeline.Run(ctx, intent)
}

// SendMetaTransaction checks intent, relays it and records the resulting hash. Relaying
// and recording run detached from ctx cancellation so a client disconnect never leaves
// a relayed transaction unrecorded.
func (s *TransactionService) SendMetaTransaction(ctx context.Context, intent business.TransactionIntent) (string, error) {
	if err := s.CheckData(ctx, intent); err != nil {
		return "", err
	}

	detached := context.WithoutCancel(ctx)

	txHash, err := s.relay.SendMetaTransaction(detached, intent)
	if err != nil {
		s.logger.Error("failed to relay meta transaction",
			zap.String("from", intent.From),
			zap.String("contract", intent.Target()),
			zap.Error(err))
		return "", err
	}

	userAddress := helpers.NormalizeAddress(intent.From)
	if err := s.queries.InsertTransaction(detached, db.InsertTransactionParams{
		TxHash:      txHash,
		UserAddress: userAddress,
	}); err != nil {
		s.logger.Error("relayed transaction could not be recorded",
			zap.String("tx_hash", txHash),
			zap.String("from", userAddress),
			zap.Error(err))
		return "", fmt.Errorf("failed to record transaction %s: %w", txHash, err)
	}

	s.logger.Info("meta transaction relayed",
		zap.String("tx_hash", txHash),
		zap.String("from", userAddress),
		zap.String("contract", intent.Target()))

	s.publishRelayed(detached, txHash, userAddress, intent.Target())
	return txHash, nil
}

func (s *TransactionService) publishRelayed(ctx context.Context, txHash, userAddress, contract string) {
	if s.publisher == nil {
		return
	}
	event := aws.RelayEvent{
		TxHash:          txHash,
		UserAddress:     userAddress,
		ContractAddress: helpers.NormalizeAddress(contract),
		Provider:        s.relay.ActiveProvider(ctx).Name(),
		ChainID:         s.chainID,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.publisher.PublishRelayEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish relay event", zap.String("tx_hash", txHash), zap.Error(err))
	}
}

// GetByUserAddress returns the transactions relayed for userAddress, newest first.
func (s *TransactionService) GetByUserAddress(ctx context.Context, userAddress string) ([]business.TransactionRecord, error) {
	rows, err := s.queries.ListTransactionsByUserAddress(ctx, helpers.NormalizeAddress(userAddress))
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for %s: %w", userAddress, err)
	}

	records := make([]business.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, helpers.ToTransactionRecord(row))
	}
	return records, nil
}
