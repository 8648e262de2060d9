package services_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/metatx/transactions-api/internal/client/aws"
	"github.com/metatx/transactions-api/internal/constants"
	"github.com/metatx/transactions-api/internal/db"
	"github.com/metatx/transactions-api/internal/interfaces"
	"github.com/metatx/transactions-api/internal/logger"
	"github.com/metatx/transactions-api/internal/mocks"
	"github.com/metatx/transactions-api/internal/services"
	"github.com/metatx/transactions-api/internal/testutil"
	"github.com/metatx/transactions-api/internal/txerrors"
	"github.com/metatx/transactions-api/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
}

const mixedCaseUser = "0x00000000000000000000000000000000000000AA"

func intent() business.TransactionIntent {
	i := testutil.Intent(testutil.StoreAddress, testutil.BuyCall(testutil.CollectionAddress, big.NewInt(100)))
	i.From = mixedCaseUser
	return i
}

func TestTransactionService_SendMetaTransaction(t *testing.T) {
	tests := []struct {
		name         string
		withEvents   bool
		setupMocks   func(*mocks.MockPolicyPipeline, *mocks.MockRelayDispatcher, *mocks.MockQuerier, *mocks.MockEventPublisher, *mocks.MockRelayProvider)
		wantHash     string
		wantErrCheck func(*testing.T, error)
	}{
		{
			name: "relays and records lower-cased sender",
			setupMocks: func(p *mocks.MockPolicyPipeline, r *mocks.MockRelayDispatcher, q *mocks.MockQuerier, _ *mocks.MockEventPublisher, _ *mocks.MockRelayProvider) {
				gomock.InOrder(
					p.EXPECT().Run(gomock.Any(), intent()).Return(nil),
					r.EXPECT().SendMetaTransaction(gomock.Any(), intent()).Return("0xhash", nil),
					q.EXPECT().InsertTransaction(gomock.Any(), db.InsertTransactionParams{TxHash: "0xhash", UserAddress: testutil.UserAddress}).Return(nil),
				)
			},
			wantHash: "0xhash",
		},
		{
			name: "policy failure stops before relaying",
			setupMocks: func(p *mocks.MockPolicyPipeline, _ *mocks.MockRelayDispatcher, _ *mocks.MockQuerier, _ *mocks.MockEventPublisher, _ *mocks.MockRelayProvider) {
				p.EXPECT().Run(gomock.Any(), gomock.Any()).Return(&txerrors.QuotaReachedError{Address: mixedCaseUser, CurrentQuota: 2})
			},
			wantErrCheck: func(t *testing.T, err error) {
				var quotaErr *txerrors.QuotaReachedError
				assert.ErrorAs(t, err, &quotaErr)
			},
		},
		{
			name: "relay failure records nothing",
			setupMocks: func(p *mocks.MockPolicyPipeline, r *mocks.MockRelayDispatcher, _ *mocks.MockQuerier, _ *mocks.MockEventPublisher, _ *mocks.MockRelayProvider) {
				p.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil)
				r.EXPECT().SendMetaTransaction(gomock.Any(), gomock.Any()).Return("", &txerrors.RelayerTimeout{Message: "timed out"})
			},
			wantErrCheck: func(t *testing.T, err error) {
				assert.Equal(t, txerrors.CodeRelayerTimeout, txerrors.CodeOf(err))
			},
		},
		{
			name: "ledger failure is returned",
			setupMocks: func(p *mocks.MockPolicyPipeline, r *mocks.MockRelayDispatcher, q *mocks.MockQuerier, _ *mocks.MockEventPublisher, _ *mocks.MockRelayProvider) {
				p.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil)
				r.EXPECT().SendMetaTransaction(gomock.Any(), gomock.Any()).Return("0xhash", nil)
				q.EXPECT().InsertTransaction(gomock.Any(), gomock.Any()).Return(errors.New("duplicate key"))
			},
			wantErrCheck: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "0xhash")
			},
		},
		{
			name:       "publishes a relay event",
			withEvents: true,
			setupMocks: func(p *mocks.MockPolicyPipeline, r *mocks.MockRelayDispatcher, q *mocks.MockQuerier, e *mocks.MockEventPublisher, provider *mocks.MockRelayProvider) {
				provider.EXPECT().Name().Return(constants.GelatoProvider)

				p.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil)
				r.EXPECT().SendMetaTransaction(gomock.Any(), gomock.Any()).Return("0xhash", nil)
				q.EXPECT().InsertTransaction(gomock.Any(), gomock.Any()).Return(nil)
				r.EXPECT().ActiveProvider(gomock.Any()).Return(provider)
				e.EXPECT().PublishRelayEvent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, event aws.RelayEvent) error {
					assert.Equal(t, "0xhash", event.TxHash)
					assert.Equal(t, testutil.UserAddress, event.UserAddress)
					assert.Equal(t, "0x214ffc0f0103735728dc66b61a22e4f163e275ae", event.ContractAddress)
					assert.Equal(t, constants.GelatoProvider, event.Provider)
					assert.Equal(t, uint64(137), event.ChainID)
					return nil
				})
			},
			wantHash: "0xhash",
		},
		{
			name:       "publish failure does not fail the request",
			withEvents: true,
			setupMocks: func(p *mocks.MockPolicyPipeline, r *mocks.MockRelayDispatcher, q *mocks.MockQuerier, e *mocks.MockEventPublisher, provider *mocks.MockRelayProvider) {
				provider.EXPECT().Name().Return(constants.BiconomyProvider)

				p.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil)
				r.EXPECT().SendMetaTransaction(gomock.Any(), gomock.Any()).Return("0xhash", nil)
				q.EXPECT().InsertTransaction(gomock.Any(), gomock.Any()).Return(nil)
				r.EXPECT().ActiveProvider(gomock.Any()).Return(provider)
				e.EXPECT().PublishRelayEvent(gomock.Any(), gomock.Any()).Return(errors.New("throttled"))
			},
			wantHash: "0xhash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline := mocks.NewMockPolicyPipelineForTest(t)
			dispatcher := mocks.NewMockRelayDispatcherForTest(t)
			querier := mocks.NewMockQuerierForTest(t)
			publisher := mocks.NewMockEventPublisherForTest(t)
			provider := mocks.NewMockRelayProviderForTest(t)
			tt.setupMocks(pipeline, dispatcher, querier, publisher, provider)

			var events interfaces.EventPublisher
			if tt.withEvents {
				events = publisher
			}
			svc := services.NewTransactionService(pipeline, dispatcher, querier, events, 137)

			hash, err := svc.SendMetaTransaction(context.Background(), intent())
			if tt.wantErrCheck != nil {
				tt.wantErrCheck(t, err)
				assert.Empty(t, hash)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHash, hash)
		})
	}
}

func TestTransactionService_SendMetaTransaction_IgnoresClientCancellation(t *testing.T) {
	pipeline := mocks.NewMockPolicyPipelineForTest(t)
	dispatcher := mocks.NewMockRelayDispatcherForTest(t)
	querier := mocks.NewMockQuerierForTest(t)
	svc := services.NewTransactionService(pipeline, dispatcher, querier, nil, 137)

	ctx, cancel := context.WithCancel(context.Background())

	pipeline.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil)
	dispatcher.EXPECT().SendMetaTransaction(gomock.Any(), gomock.Any()).DoAndReturn(func(relayCtx context.Context, _ business.TransactionIntent) (string, error) {
		cancel()
		assert.NoError(t, relayCtx.Err())
		return "0xhash", nil
	})
	querier.EXPECT().InsertTransaction(gomock.Any(), gomock.Any()).DoAndReturn(func(insertCtx context.Context, _ db.InsertTransactionParams) error {
		assert.NoError(t, insertCtx.Err())
		return nil
	})

	hash, err := svc.SendMetaTransaction(ctx, intent())
	require.NoError(t, err)
	assert.Equal(t, "0xhash", hash)
}

func TestTransactionService_CheckData(t *testing.T) {
	pipeline := mocks.NewMockPolicyPipelineForTest(t)
	svc := services.NewTransactionService(pipeline, nil, nil, nil, 137)

	pipeline.EXPECT().Run(gomock.Any(), intent()).Return(&txerrors.InvalidContractAddressError{Address: testutil.StoreAddress})

	var addrErr *txerrors.InvalidContractAddressError
	assert.ErrorAs(t, svc.CheckData(context.Background(), intent()), &addrErr)
}

func TestTransactionService_GetByUserAddress(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("lists by lower-cased address", func(t *testing.T) {
		querier := mocks.NewMockQuerierForTest(t)
		svc := services.NewTransactionService(nil, nil, querier, nil, 137)

		querier.EXPECT().ListTransactionsByUserAddress(ctx, testutil.UserAddress).Return([]db.Transaction{
			{ID: 2, TxHash: "0xb", UserAddress: testutil.UserAddress, CreatedAt: pgtype.Timestamptz{Time: createdAt, Valid: true}},
			{ID: 1, TxHash: "0xa", UserAddress: testutil.UserAddress, CreatedAt: pgtype.Timestamptz{Time: createdAt.Add(-time.Hour), Valid: true}},
		}, nil)

		records, err := svc.GetByUserAddress(ctx, mixedCaseUser)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "0xb", records[0].TxHash)
		assert.Equal(t, createdAt, records[0].CreatedAt)
	})

	t.Run("no transactions", func(t *testing.T) {
		querier := mocks.NewMockQuerierForTest(t)
		svc := services.NewTransactionService(nil, nil, querier, nil, 137)

		querier.EXPECT().ListTransactionsByUserAddress(ctx, testutil.UserAddress).Return([]db.Transaction{}, nil)

		records, err := svc.GetByUserAddress(ctx, testutil.UserAddress)
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("ledger failure", func(t *testing.T) {
		querier := mocks.NewMockQuerierForTest(t)
		svc := services.NewTransactionService(nil, nil, querier, nil, 137)

		querier.EXPECT().ListTransactionsByUserAddress(ctx, gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := svc.GetByUserAddress(ctx, testutil.UserAddress)
		assert.Error(t, err)
	})
}
