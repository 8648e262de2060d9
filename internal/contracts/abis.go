package contracts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Only the fragments the policies decode or encode are kept here.
const (
	metaTransactionJSON = `[{"type":"function","name":"executeMetaTransaction","stateMutability":"payable","outputs":[{"name":"","type":"bytes"}],"inputs":[
		{"name":"userAddress","type":"address"},
		{"name":"functionSignature","type":"bytes"},
		{"name":"sigR","type":"bytes32"},
		{"name":"sigS","type":"bytes32"},
		{"name":"sigV","type":"uint8"}]}]`

	collectionStoreJSON = `[{"type":"function","name":"buy","stateMutability":"nonpayable","outputs":[],"inputs":[
		{"name":"_itemsToBuy","type":"tuple[]","components":[
			{"name":"collection","type":"address"},
			{"name":"ids","type":"uint256[]"},
			{"name":"prices","type":"uint256[]"},
			{"name":"beneficiaries","type":"address[]"}]}]}]`

	marketplaceJSON = `[{"type":"function","name":"executeOrder","stateMutability":"nonpayable","outputs":[],"inputs":[
		{"name":"nftAddress","type":"address"},
		{"name":"assetId","type":"uint256"},
		{"name":"price","type":"uint256"}]}]`

	bidJSON = `[
		{"type":"function","name":"placeBid","stateMutability":"nonpayable","outputs":[],"inputs":[
			{"name":"_tokenAddress","type":"address"},
			{"name":"_tokenId","type":"uint256"},
			{"name":"_price","type":"uint256"},
			{"name":"_duration","type":"uint256"}]},
		{"type":"function","name":"placeBid","stateMutability":"nonpayable","outputs":[],"inputs":[
			{"name":"_tokenAddress","type":"address"},
			{"name":"_tokenId","type":"uint256"},
			{"name":"_price","type":"uint256"},
			{"name":"_duration","type":"uint256"},
			{"name":"_fingerprint","type":"bytes"}]}]`

	collectionManagerJSON = `[{"type":"function","name":"createCollection","stateMutability":"nonpayable","outputs":[],"inputs":[
		{"name":"_forwarder","type":"address"},
		{"name":"_factory","type":"address"},
		{"name":"_salt","type":"bytes32"},
		{"name":"_name","type":"string"},
		{"name":"_symbol","type":"string"},
		{"name":"_baseURI","type":"string"},
		{"name":"_creator","type":"address"},
		{"name":"_items","type":"tuple[]","components":[
			{"name":"rarity","type":"string"},
			{"name":"price","type":"uint256"},
			{"name":"beneficiary","type":"address"},
			{"name":"metadata","type":"string"}]}]}]`

	erc20JSON = `[{"type":"function","name":"approve","stateMutability":"nonpayable","outputs":[{"name":"","type":"bool"}],"inputs":[
		{"name":"spender","type":"address"},
		{"name":"amount","type":"uint256"}]}]`

	collectionJSON = `[{"type":"function","name":"setMinters","stateMutability":"nonpayable","outputs":[],"inputs":[
		{"name":"_minters","type":"address[]"},
		{"name":"_values","type":"bool[]"}]}]`

	forwarderJSON = `[{"type":"function","name":"forwardMetaTx","stateMutability":"nonpayable","outputs":[{"name":"","type":"bytes"}],"inputs":[
		{"name":"_target","type":"address"},
		{"name":"_data","type":"bytes"}]}]`
)

// Method names and signatures used with the ABIs below.
const (
	MethodExecuteMetaTransaction  = "executeMetaTransaction"
	MethodBuy                     = "buy"
	MethodExecuteOrder            = "executeOrder"
	MethodPlaceBid                = "placeBid(address,uint256,uint256,uint256)"
	MethodPlaceBidWithFingerprint = "placeBid(address,uint256,uint256,uint256,bytes)"
	MethodCreateCollection        = "createCollection"
	MethodApprove                 = "approve"
	MethodSetMinters              = "setMinters"
	MethodForwardMetaTx           = "forwardMetaTx"
)

var (
	MetaTransactionABI   = mustParseABI(metaTransactionJSON)
	CollectionStoreABI   = mustParseABI(collectionStoreJSON)
	MarketplaceABI       = mustParseABI(marketplaceJSON)
	BidABI               = mustParseABI(bidJSON)
	CollectionManagerABI = mustParseABI(collectionManagerJSON)
	ERC20ABI             = mustParseABI(erc20JSON)
	CollectionABI        = mustParseABI(collectionJSON)
	ForwarderABI         = mustParseABI(forwarderJSON)
)

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic("invalid contract ABI: " + err.Error())
	}
	return parsed
}
