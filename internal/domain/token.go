package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Token is a registry entry for a token the user holds.
type Token struct {
	Address          string          `json:"address"`
	Symbol           string          `json:"symbol"`
	TradingPermitted bool            `json:"tradingPermitted"`
	Balance          decimal.Decimal `json:"balance"`
	NumDecimals      int32           `json:"numDecimals"`
}

// UnmarshalJSON accepts both "symbol" and the older "tokenSymbol" key.
func (t *Token) UnmarshalJSON(data []byte) error {
	type plain Token
	var aux struct {
		plain
		TokenSymbol string `json:"tokenSymbol"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*t = Token(aux.plain)
	if t.Symbol == "" {
		t.Symbol = aux.TokenSymbol
	}
	return nil
}
