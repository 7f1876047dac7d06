package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// NormalizeAddress returns the registry key for a contract address.
// Valid hex addresses are rendered in EIP-55 checksum form so that lower-case and
// checksummed spellings of the same contract compare equal; anything else is trimmed
// and lower-cased.
func NormalizeAddress(address string) string {
	address = strings.TrimSpace(address)
	if common.IsHexAddress(address) {
		return common.HexToAddress(address).Hex()
	}
	return strings.ToLower(address)
}
