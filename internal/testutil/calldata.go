// Package testutil builds call data and fixtures shared by package tests.
package testutil

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/metatx/transactions-api/internal/contracts"
	"github.com/metatx/transactions-api/internal/types/business"
)

// Addresses used across tests. The registry lower-cases them.
const (
	UserAddress              = "0x00000000000000000000000000000000000000aa"
	StoreAddress             = "0x214ffC0f0103735728dc66b61A22e4F163e275ae"
	MarketplaceAddress       = "0x480a0f4e360E8964e68858Dd231c2922f1df45eF"
	BidAddress               = "0xb96697FA4A3361Ba35B774a42C58DACcAaD1b8E1"
	ManaAddress              = "0xA1c57f48F0Deb89f569dFbE6E2B7f46D33606fD4"
	CollectionManagerAddress = "0x9D32AaC179153A991e832550d9F96441Ea27763A"
	FactoryV3Address         = "0x3195e88aE10704b359764CB38e429D24f1c2f781"
	ForwarderAddress         = "0x0baBda04f62C549A09EF3313Fe187f29c099FF3C"
	CollectionAddress        = "0x00000000000000000000000000000000000000c0"
)

// Registry returns the Polygon registry used in tests.
func Registry() *contracts.Registry {
	return contracts.NewRegistryWithAddresses(contracts.PolygonChainID, map[contracts.Name]string{
		contracts.MANAToken:           ManaAddress,
		contracts.CollectionStore:     StoreAddress,
		contracts.Marketplace:         MarketplaceAddress,
		contracts.Bid:                 BidAddress,
		contracts.CollectionManager:   CollectionManagerAddress,
		contracts.CollectionFactoryV3: FactoryV3Address,
		contracts.MetaTxForwarder:     ForwarderAddress,
	})
}

func mustPack(data []byte, err error) []byte {
	if err != nil {
		panic(err)
	}
	return data
}

// MetaTransaction wraps inner in an executeMetaTransaction call with an empty signature.
func MetaTransaction(user string, inner []byte) []byte {
	return mustPack(contracts.MetaTransactionABI.Pack(contracts.MethodExecuteMetaTransaction,
		common.HexToAddress(user), inner, [32]byte{}, [32]byte{}, uint8(27)))
}

// Forwarded returns the hex call data of inner wrapped for user.
func Forwarded(user string, inner []byte) string {
	return hexutil.Encode(MetaTransaction(user, inner))
}

// Intent builds a transaction intent towards target carrying inner.
func Intent(target string, inner []byte) business.TransactionIntent {
	return business.TransactionIntent{
		From:   UserAddress,
		Params: []string{target, Forwarded(UserAddress, inner)},
	}
}

func BuyCall(collection string, price *big.Int) []byte {
	items := []struct {
		Collection    common.Address
		Ids           []*big.Int
		Prices        []*big.Int
		Beneficiaries []common.Address
	}{{
		Collection:    common.HexToAddress(collection),
		Ids:           []*big.Int{big.NewInt(1)},
		Prices:        []*big.Int{price},
		Beneficiaries: []common.Address{common.HexToAddress(UserAddress)},
	}}
	return mustPack(contracts.CollectionStoreABI.Pack(contracts.MethodBuy, items))
}

func ExecuteOrderCall(nft string, assetID, price *big.Int) []byte {
	return mustPack(contracts.MarketplaceABI.Pack(contracts.MethodExecuteOrder, common.HexToAddress(nft), assetID, price))
}

func PlaceBidCall(token string, tokenID, price *big.Int) []byte {
	return mustPack(contracts.BidABI.Pack("placeBid", common.HexToAddress(token), tokenID, price, big.NewInt(86400)))
}

func PlaceBidWithFingerprintCall(token string, tokenID, price *big.Int) []byte {
	return mustPack(contracts.BidABI.Pack("placeBid0", common.HexToAddress(token), tokenID, price, big.NewInt(86400), []byte{0x01}))
}

func CreateCollectionCall(factory string) []byte {
	items := []struct {
		Rarity      string
		Price       *big.Int
		Beneficiary common.Address
		Metadata    string
	}{{Rarity: "common", Price: big.NewInt(0), Beneficiary: common.HexToAddress(UserAddress), Metadata: "1:w:hat"}}

	return mustPack(contracts.CollectionManagerABI.Pack(contracts.MethodCreateCollection,
		common.HexToAddress(ForwarderAddress), common.HexToAddress(factory), [32]byte{1},
		"Hats", "HAT", "https://peer.local/", common.HexToAddress(UserAddress), items))
}

func ApproveCall(spender string, amount *big.Int) []byte {
	return mustPack(contracts.ERC20ABI.Pack(contracts.MethodApprove, common.HexToAddress(spender), amount))
}

func SetMintersCall(minters ...string) []byte {
	addresses := make([]common.Address, len(minters))
	values := make([]bool, len(minters))
	for i, m := range minters {
		addresses[i] = common.HexToAddress(m)
		values[i] = true
	}
	return mustPack(contracts.CollectionABI.Pack(contracts.MethodSetMinters, addresses, values))
}
