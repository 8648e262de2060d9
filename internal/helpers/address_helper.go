package helpers

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// NormalizeAddress lower-cases and trims an address so it can be compared and stored
// consistently. It does not validate the address.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// SameAddress reports whether two addresses are equal ignoring case.
func SameAddress(a, b string) bool {
	return NormalizeAddress(a) == NormalizeAddress(b)
}

// IsAddressValid checks that the string is a 0x-prefixed 20 byte hex address.
func IsAddressValid(address string) bool {
	return common.IsHexAddress(address) && strings.HasPrefix(address, "0x")
}
