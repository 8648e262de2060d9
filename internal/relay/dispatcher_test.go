package relay_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/metatx/transactions-api/internal/constants"
	"github.com/metatx/transactions-api/internal/interfaces"
	"github.com/metatx/transactions-api/internal/mocks"
	"github.com/metatx/transactions-api/internal/relay"
	"github.com/metatx/transactions-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewDispatcher_RequiresAProvider(t *testing.T) {
	_, err := relay.NewDispatcher(137, nil, nil, mocks.NewMockFeatureFlagsForTest(t), nil)
	assert.ErrorIs(t, err, relay.ErrNoProvider)
}

func TestDispatcher_ActiveProvider(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		gelatoFlag  bool
		hasBiconomy bool
		hasGelato   bool
		want        string
	}{
		{name: "flag off uses biconomy", hasBiconomy: true, hasGelato: true, want: constants.BiconomyProvider},
		{name: "flag on uses gelato", gelatoFlag: true, hasBiconomy: true, hasGelato: true, want: constants.GelatoProvider},
		{name: "flag on without gelato", gelatoFlag: true, hasBiconomy: true, want: constants.BiconomyProvider},
		{name: "flag off without biconomy", hasGelato: true, want: constants.GelatoProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features := mocks.NewMockFeatureFlagsForTest(t)
			features.EXPECT().IsEnabled(gomock.Any(), constants.DappsApplication, constants.GelatoRelayerFeature).Return(tt.gelatoFlag)

			var biconomy, gelato interfaces.RelayProvider
			if tt.hasBiconomy {
				m := mocks.NewMockRelayProviderForTest(t)
				m.EXPECT().Name().Return(constants.BiconomyProvider).AnyTimes()
				biconomy = m
			}
			if tt.hasGelato {
				m := mocks.NewMockRelayProviderForTest(t)
				m.EXPECT().Name().Return(constants.GelatoProvider).AnyTimes()
				gelato = m
			}

			d, err := relay.NewDispatcher(137, biconomy, gelato, features, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.ActiveProvider(ctx).Name())
		})
	}
}

func TestDispatcher_SendMetaTransaction(t *testing.T) {
	ctx := context.Background()
	intent := testutil.Intent(testutil.StoreAddress, testutil.BuyCall(testutil.CollectionAddress, big.NewInt(1)))

	features := mocks.NewMockFeatureFlagsForTest(t)
	biconomy := mocks.NewMockRelayProviderForTest(t)
	gelato := mocks.NewMockRelayProviderForTest(t)
	gelato.EXPECT().Name().Return(constants.GelatoProvider).AnyTimes()
	biconomy.EXPECT().Name().Return(constants.BiconomyProvider).AnyTimes()

	d, err := relay.NewDispatcher(137, biconomy, gelato, features, nil)
	require.NoError(t, err)

	features.EXPECT().IsEnabled(gomock.Any(), constants.DappsApplication, constants.GelatoRelayerFeature).Return(true)
	gelato.EXPECT().SendMetaTransaction(gomock.Any(), intent).Return("0xgelato", nil)

	hash, err := d.SendMetaTransaction(ctx, intent)
	require.NoError(t, err)
	assert.Equal(t, "0xgelato", hash)

	features.EXPECT().IsEnabled(gomock.Any(), constants.DappsApplication, constants.GelatoRelayerFeature).Return(false)
	biconomy.EXPECT().SendMetaTransaction(gomock.Any(), intent).Return("0xbiconomy", nil)

	hash, err = d.SendMetaTransaction(ctx, intent)
	require.NoError(t, err)
	assert.Equal(t, "0xbiconomy", hash)
}

func TestDispatcher_GetNetworkGasPrice(t *testing.T) {
	features := mocks.NewMockFeatureFlagsForTest(t)
	biconomy := mocks.NewMockRelayProviderForTest(t)

	d, err := relay.NewDispatcher(80002, biconomy, nil, features, nil)
	require.NoError(t, err)

	features.EXPECT().IsEnabled(gomock.Any(), constants.DappsApplication, constants.GelatoRelayerFeature).Return(false)
	biconomy.EXPECT().GetNetworkGasPrice(gomock.Any(), uint64(80002)).Return(big.NewInt(30_000_000_000), nil)

	price, err := d.GetNetworkGasPrice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "30000000000", price.String())
}
