package commission

import (
	"github.com/samber/lo"

	"github.com/prateek041/typedpipes/internal/errkind"
)

// Tier pays Rate on sales up to and including Limit.
type Tier struct {
	Limit float64
	Rate  float64
}

// TierTable is an ordered list of tiers. The first tier whose limit covers
// the sales figure wins; sales above every limit get the last tier's rate.
type TierTable []Tier

// NewTierTable validates tiers: at least one, ascending limits, no
// negative rate.
func NewTierTable(tiers ...Tier) (TierTable, error) {
	if len(tiers) == 0 {
		return nil, errkind.InvalidArgument("commission.NewTierTable", "at least one tier is required")
	}
	if lo.SomeBy(tiers, func(t Tier) bool { return t.Rate < 0 }) {
		return nil, errkind.InvalidArgument("commission.NewTierTable", "tier rates cannot be negative")
	}
	if !lo.IsSortedByKey(tiers, func(t Tier) float64 { return t.Limit }) {
		return nil, errkind.InvalidArgument("commission.NewTierTable", "tier limits must be ascending")
	}
	return TierTable(tiers), nil
}

// Rate returns the commission rate for sales.
func (t TierTable) Rate(sales float64) (float64, error) {
	if sales < 0 {
		return 0, errkind.InvalidArgument("commission.TierTable", "sales amount cannot be negative: %v", sales)
	}
	if len(t) == 0 {
		return 0, errkind.InvalidArgument("commission.TierTable", "tier table is empty")
	}
	for _, tier := range t {
		if sales <= tier.Limit {
			return tier.Rate, nil
		}
	}
	return t[len(t)-1].Rate, nil
}

// VolumeTiers pays 8% above 20000, 6% above 10000 and 4% otherwise.
type VolumeTiers struct{}

func (VolumeTiers) Rate(sales float64) (float64, error) {
	switch {
	case sales > 20000:
		return 0.08, nil
	case sales > 10000:
		return 0.06, nil
	default:
		return 0.04, nil
	}
}

// TenureBonus pays SeniorRate from SeniorYears of tenure, MidRate from
// MidYears, and nothing below that.
type TenureBonus struct {
	SeniorYears int
	SeniorRate  float64
	MidYears    int
	MidRate     float64
}

// DefaultTenureBonus pays 5% from ten years and 2% from five.
func DefaultTenureBonus() TenureBonus {
	return TenureBonus{SeniorYears: 10, SeniorRate: 0.05, MidYears: 5, MidRate: 0.02}
}

func (b TenureBonus) Percentage(tenureYears int) (float64, error) {
	if tenureYears < 0 {
		return 0, errkind.InvalidArgument("commission.TenureBonus", "tenure years cannot be negative: %d", tenureYears)
	}
	switch {
	case tenureYears >= b.SeniorYears:
		return b.SeniorRate, nil
	case tenureYears >= b.MidYears:
		return b.MidRate, nil
	default:
		return 0, nil
	}
}
