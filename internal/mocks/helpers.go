package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockFeatureFlagsForTest creates a new mock FeatureFlags for testing
func NewMockFeatureFlagsForTest(t *testing.T) *MockFeatureFlags {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockFeatureFlags(ctrl)
}

// NewMockWhitelistSourceForTest creates a new mock WhitelistSource for testing
func NewMockWhitelistSourceForTest(t *testing.T) *MockWhitelistSource {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockWhitelistSource(ctrl)
}

// NewMockCollectionSourceForTest creates a new mock CollectionSource for testing
func NewMockCollectionSourceForTest(t *testing.T) *MockCollectionSource {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockCollectionSource(ctrl)
}

// NewMockChainClientForTest creates a new mock ChainClient for testing
func NewMockChainClientForTest(t *testing.T) *MockChainClient {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockChainClient(ctrl)
}

// NewMockRelayProviderForTest creates a new mock RelayProvider for testing
func NewMockRelayProviderForTest(t *testing.T) *MockRelayProvider {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockRelayProvider(ctrl)
}

// NewMockEventPublisherForTest creates a new mock EventPublisher for testing
func NewMockEventPublisherForTest(t *testing.T) *MockEventPublisher {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockEventPublisher(ctrl)
}

// NewMockAddressOracleForTest creates a new mock AddressOracle for testing
func NewMockAddressOracleForTest(t *testing.T) *MockAddressOracle {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockAddressOracle(ctrl)
}

// NewMockRelayDispatcherForTest creates a new mock RelayDispatcher for testing
func NewMockRelayDispatcherForTest(t *testing.T) *MockRelayDispatcher {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockRelayDispatcher(ctrl)
}

// NewMockPolicyPipelineForTest creates a new mock PolicyPipeline for testing
func NewMockPolicyPipelineForTest(t *testing.T) *MockPolicyPipeline {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockPolicyPipeline(ctrl)
}

// NewMockTransactionServiceForTest creates a new mock TransactionService for testing
func NewMockTransactionServiceForTest(t *testing.T) *MockTransactionService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockTransactionService(ctrl)
}

// NewMockQuerierForTest creates a new mock db.Querier for testing
func NewMockQuerierForTest(t *testing.T) *MockQuerier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuerier(ctrl)
}
