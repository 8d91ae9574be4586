package entities

import "github.com/shopspring/decimal"

// Money is a monetary amount in roubles with exact decimal arithmetic.
type Money = decimal.Decimal

// MoneyScale is the number of minor-unit digits kept after rounding.
const MoneyScale = 2

// RoundMoney rounds half away from zero to whole kopecks.
func RoundMoney(m Money) Money {
	return m.Round(MoneyScale)
}

func ZeroMoney() Money {
	return decimal.Zero
}
