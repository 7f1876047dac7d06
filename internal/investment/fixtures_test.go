package investment

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mtlprog/lendstat/internal/domain"
)

const (
	addrMKR = "0x07e93e27ac8a1c114f1931f65e3c8b5186b9b77e"
	addrZRX = "0xc3017eb5cd063bf6745723895edead65257a5f6e"
	addrREP = "0x9b62bd396837417ce319e2e5c8845a5a960010ea"
	addrSNT = "0x744d70fdbe2ba4cf95131626614a1763df805b9e"
	addrOMG = "0xd26114cd6EE289AccF82350c8d8487fedB8A0C07"
)

func debtOrder(principalToken, principalAmount string) string {
	return fmt.Sprintf(`{"principalToken":%q,"principalAmount":%q,`+
		`"termsContract":"0x1c907384489d939400fa5c6571d8aad778213d74",`+
		`"debtor":"0x431194c3e0f35bc7f1266ec6bb85e0c5ec554935","debtorFee":"0",`+
		`"creditor":"0x431194c3e0f35bc7f1266ec6bb85e0c5ec554935","creditorFee":"0",`+
		`"expirationTimestampInSec":"1524613355","salt":"0",`+
		`"debtorSignature":{"v":27,"r":"0xc5c0aaf7","s":"0x2fbbe9f0"},`+
		`"underwriterSignature":{"r":"","s":"","v":0}}`, principalToken, principalAmount)
}

func investment(symbol, principalToken, principalAmount string, earned int64) domain.Investment {
	return domain.Investment{
		JSON:                 debtOrder(principalToken, principalAmount),
		PrincipalTokenSymbol: symbol,
		EarnedAmount:         decimal.NewFromInt(earned),
		Description:          fmt.Sprintf("Hello, Can I borrow some %s please?", symbol),
		Status:               "active",
	}
}

func token(symbol, address string) domain.Token {
	return domain.Token{
		Address:          address,
		Symbol:           symbol,
		TradingPermitted: true,
		Balance:          decimal.NewFromInt(10000),
		NumDecimals:      18,
	}
}

func fiveTokens() ([]domain.Investment, []domain.Token) {
	investments := []domain.Investment{
		investment("MKR", addrMKR, "345", 10),
		investment("REP", addrREP, "345", 10),
		investment("ZRX", addrZRX, "345", 10),
		investment("SNT", addrSNT, "345", 10),
		investment("OMG", addrOMG, "345", 10),
	}
	tokens := []domain.Token{
		token("MKR", addrMKR),
		token("ZRX", addrZRX),
		token("REP", addrREP),
		token("SNT", addrSNT),
		token("OMG", addrOMG),
	}
	return investments, tokens
}

func rows(entries []domain.DisplayEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.String()
	}
	return out
}
