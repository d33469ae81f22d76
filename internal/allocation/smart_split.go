package allocation

import "github.com/shopspring/decimal"

// PercentScale is the number of decimal places percentages are rounded to.
const PercentScale = 8

// firstRatio is the part of the total the first allocation gets when there
// are three or more.
var firstRatio = decimal.RequireFromString("0.4")

// SmartSplit returns the default percentages for n allocations.
//
// One allocation gets 100%, two get 50% each. For three or more, the first one
// gets 40% and the remaining 60% are divided equally among the others.
// The shares always sum up to exactly 100.
func SmartSplit(n int) []decimal.Decimal {
	return splitShares(hundred, n)
}

// splitShares divides total into n smart split shares.
func splitShares(total decimal.Decimal, n int) []decimal.Decimal {
	switch {
	case n <= 0:
		return []decimal.Decimal{}
	case n <= 2:
		return equalShares(total, n)
	}

	first := total.Mul(firstRatio).Round(PercentScale)
	return append([]decimal.Decimal{first}, equalShares(total.Sub(first), n-1)...)
}

// equalShares divides total into n equal shares rounded to PercentScale. The
// last share absorbs the rounding residual so that the shares sum up to
// exactly total.
func equalShares(total decimal.Decimal, n int) []decimal.Decimal {
	if n <= 0 {
		return []decimal.Decimal{}
	}

	share := total.DivRound(decimal.NewFromInt(int64(n)), PercentScale)
	shares := make([]decimal.Decimal, n)
	for i := 0; i < n-1; i++ {
		shares[i] = share
	}
	shares[n-1] = total.Sub(share.Mul(decimal.NewFromInt(int64(n - 1))))

	return shares
}
