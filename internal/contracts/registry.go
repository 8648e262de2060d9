package contracts

import (
	"fmt"
	"os"

	"github.com/metatx/transactions-api/internal/helpers"
)

// Name identifies a contract the policies need to know about.
type Name string

const (
	MANAToken           Name = "MANAToken"
	CollectionStore     Name = "CollectionStore"
	Marketplace         Name = "MarketplaceV2"
	Bid                 Name = "BidV2"
	CollectionManager   Name = "CollectionManager"
	CollectionFactoryV3 Name = "CollectionFactoryV3"
	MetaTxForwarder     Name = "MetaTxForwarder"
)

const (
	PolygonChainID uint64 = 137
	AmoyChainID    uint64 = 80002
)

var envKeys = map[Name]string{
	MANAToken:           "CONTRACT_ADDRESS_MANA_TOKEN",
	CollectionStore:     "CONTRACT_ADDRESS_COLLECTION_STORE",
	Marketplace:         "CONTRACT_ADDRESS_MARKETPLACE_V2",
	Bid:                 "CONTRACT_ADDRESS_BID_V2",
	CollectionManager:   "CONTRACT_ADDRESS_COLLECTION_MANAGER",
	CollectionFactoryV3: "CONTRACT_ADDRESS_COLLECTION_FACTORY_V3",
	MetaTxForwarder:     "CONTRACT_ADDRESS_META_TX_FORWARDER",
}

var defaultAddresses = map[uint64]map[Name]string{
	PolygonChainID: {
		MANAToken:           "0xA1c57f48F0Deb89f569dFbE6E2B7f46D33606fD4",
		CollectionStore:     "0x214ffC0f0103735728dc66b61A22e4F163e275ae",
		Marketplace:         "0x480a0f4e360E8964e68858Dd231c2922f1df45eF",
		Bid:                 "0xb96697FA4A3361Ba35B774a42C58DACcAaD1b8E1",
		CollectionManager:   "0x9D32AaC179153A991e832550d9F96441Ea27763A",
		CollectionFactoryV3: "0x3195e88aE10704b359764CB38e429D24f1c2f781",
		MetaTxForwarder:     "0x0baBda04f62C549A09EF3313Fe187f29c099FF3C",
	},
	AmoyChainID: {
		MetaTxForwarder: "0x3dd1fef020741386bf9c8d905b7e2b02a668ccda",
	},
}

var chainNames = map[uint64]string{
	1:              "mainnet",
	11155111:       "sepolia",
	PolygonChainID: "matic",
	AmoyChainID:    "amoy",
}

// ChainName returns the key the contract whitelist document uses for a chain.
func ChainName(chainID uint64) (string, error) {
	name, ok := chainNames[chainID]
	if !ok {
		return "", fmt.Errorf("unsupported chain id %d", chainID)
	}
	return name, nil
}

// Registry resolves contract addresses for one chain. Addresses are stored lower-cased.
type Registry struct {
	chainID   uint64
	addresses map[Name]string
}

// NewRegistry builds the registry for chainID from the built-in defaults, letting
// CONTRACT_ADDRESS_<NAME> variables override them. Every contract must resolve.
func NewRegistry(chainID uint64) (*Registry, error) {
	addresses := make(map[Name]string, len(envKeys))
	for name, addr := range defaultAddresses[chainID] {
		addresses[name] = addr
	}
	for name, key := range envKeys {
		if v := os.Getenv(key); v != "" {
			addresses[name] = v
		}
	}

	for name, key := range envKeys {
		addr, ok := addresses[name]
		if !ok {
			return nil, fmt.Errorf("missing address for %s on chain %d, set %s", name, chainID, key)
		}
		if !helpers.IsAddressValid(addr) {
			return nil, fmt.Errorf("invalid address %q for %s", addr, name)
		}
	}

	return NewRegistryWithAddresses(chainID, addresses), nil
}

// NewRegistryWithAddresses builds a registry without validating the addresses.
func NewRegistryWithAddresses(chainID uint64, addresses map[Name]string) *Registry {
	normalized := make(map[Name]string, len(addresses))
	for name, addr := range addresses {
		normalized[name] = helpers.NormalizeAddress(addr)
	}
	return &Registry{chainID: chainID, addresses: normalized}
}

func (r *Registry) ChainID() uint64 {
	return r.chainID
}

// Address returns the lower-cased address of name, or "" when unknown.
func (r *Registry) Address(name Name) string {
	return r.addresses[name]
}

// Is reports whether address is the contract registered as name.
func (r *Registry) Is(name Name, address string) bool {
	known, ok := r.addresses[name]
	return ok && known == helpers.NormalizeAddress(address)
}
