package domain

import (
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// Investment is a funded loan position.
// JSON holds the serialized debt order (principal token, amounts, parties, signatures).
// Only the principal token address and principal amount are read from it.
type Investment struct {
	JSON                 string          `json:"json"`
	PrincipalTokenSymbol string          `json:"principalTokenSymbol"`
	EarnedAmount         decimal.Decimal `json:"earnedAmount"`
	Description          string          `json:"description,omitempty"`
	IssuanceHash         string          `json:"issuanceHash,omitempty"`
	FillLoanShortURL     string          `json:"fillLoanShortUrl,omitempty"`
	TermLength           decimal.Decimal `json:"termLength"`
	InterestRate         decimal.Decimal `json:"interestRate"`
	AmortizationUnit     string          `json:"amortizationUnit,omitempty"`
	Status               string          `json:"status,omitempty"`
}

// PrincipalToken returns the contract address of the lent token, or "" if the debt order lacks one.
func (i Investment) PrincipalToken() string {
	return gjson.Get(i.JSON, "principalToken").String()
}

// PrincipalAmount returns the lent amount. Missing or malformed values read as zero.
// Numeric amounts are parsed from their raw JSON text so no float64 rounding applies.
func (i Investment) PrincipalAmount() decimal.Decimal {
	r := gjson.Get(i.JSON, "principalAmount")
	if r.Type == gjson.Number {
		return SafeParse(r.Raw)
	}
	return SafeParse(r.Str)
}
