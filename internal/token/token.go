package token

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Info describes a known SPL token.
type Info struct {
	Symbol   string
	Mint     string
	Decimals int32
}

// Well-known mint addresses
const (
	MintSOL  = "So11111111111111111111111111111111111111112"
	MintUSDC = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	MintUSDT = "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB"
	MintJUP  = "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN"
	MintBONK = "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"
)

var registry = map[string]Info{
	"SOL":  {Symbol: "SOL", Mint: MintSOL, Decimals: 9},
	"USDC": {Symbol: "USDC", Mint: MintUSDC, Decimals: 6},
	"USDT": {Symbol: "USDT", Mint: MintUSDT, Decimals: 6},
	"JUP":  {Symbol: "JUP", Mint: MintJUP, Decimals: 6},
	"BONK": {Symbol: "BONK", Mint: MintBONK, Decimals: 5},
}

// Lookup resolves a token by symbol (case-insensitive) or by mint address.
func Lookup(symbolOrMint string) (Info, error) {
	s := strings.TrimSpace(symbolOrMint)
	if info, ok := registry[strings.ToUpper(s)]; ok {
		return info, nil
	}
	for _, info := range registry {
		if info.Mint == s {
			return info, nil
		}
	}
	return Info{}, fmt.Errorf("unknown token %q (known: SOL, USDC, USDT, JUP, BONK)", symbolOrMint)
}

// ToAtomic converts a human-readable amount ("0.05") into the token's
// smallest unit. Fails on negative amounts and on fractional dust that
// does not fit the token's decimals.
func ToAtomic(info Info, human string) (uint64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(human))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", human, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("amount must be positive, got %s", human)
	}
	atomic := d.Shift(info.Decimals)
	if !atomic.Equal(atomic.Truncate(0)) {
		return 0, fmt.Errorf("amount %s has more than %d decimal places for %s", human, info.Decimals, info.Symbol)
	}
	if atomic.GreaterThan(decimal.NewFromUint64(^uint64(0))) {
		return 0, fmt.Errorf("amount %s out of range for %s", human, info.Symbol)
	}
	return atomic.BigInt().Uint64(), nil
}

// FromAtomic renders an atomic amount in human units.
func FromAtomic(info Info, atomic uint64) string {
	return decimal.NewFromUint64(atomic).Shift(-info.Decimals).String()
}
