package investment

import (
	"github.com/mtlprog/lendstat/internal/domain"
)

// Registry resolves contract addresses to tokens of a registry snapshot.
type Registry struct {
	byAddress map[string]domain.Token
}

// Resolve builds a Registry keyed by normalized contract address.
// When two tokens share an address the first one wins. Tokens without an address are
// not resolvable.
func Resolve(tokens []domain.Token) Registry {
	byAddress := make(map[string]domain.Token, len(tokens))
	for _, t := range tokens {
		key := domain.NormalizeAddress(t.Address)
		if key == "" {
			continue
		}
		if _, ok := byAddress[key]; ok {
			continue
		}
		byAddress[key] = t
	}
	return Registry{byAddress: byAddress}
}

// Lookup returns the registry token for a contract address, carrying its symbol and
// decimal precision.
func (r Registry) Lookup(address string) (domain.Token, bool) {
	key := domain.NormalizeAddress(address)
	if key == "" {
		return domain.Token{}, false
	}
	t, ok := r.byAddress[key]
	return t, ok
}

// Symbol returns the trading symbol for a contract address.
func (r Registry) Symbol(address string) (string, bool) {
	t, ok := r.Lookup(address)
	return t.Symbol, ok
}
