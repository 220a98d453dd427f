// Package commission computes sales commissions from three pluggable
// parts: a base commission function, a tiered rate table and a tenure
// bonus policy.
package commission

import (
	"math"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"github.com/prateek041/typedpipes/internal/config"
	"github.com/prateek041/typedpipes/internal/errkind"
)

// ErrInvalidArgument matches negative sales, negative tenure and malformed
// tier tables.
var ErrInvalidArgument = errkind.ErrInvalidArgument

// DefaultTenureYears is the tenure assumed when Compute gets no WithTenure.
const DefaultTenureYears = 7

// Number is any arithmetic sales figure.
type Number interface {
	constraints.Integer | constraints.Float
}

// BaseFunc turns a sales figure into the base commission.
type BaseFunc func(sales float64) float64

// FlatRate returns a BaseFunc paying rate of every sale.
func FlatRate(rate float64) BaseFunc {
	return func(sales float64) float64 { return sales * rate }
}

// Tiers looks up the commission rate for a sales figure.
type Tiers interface {
	Rate(sales float64) (float64, error)
}

// BonusPolicy looks up the bonus percentage for a tenure in years.
type BonusPolicy interface {
	Percentage(tenureYears int) (float64, error)
}

// TiersFunc adapts a plain function to Tiers.
type TiersFunc func(sales float64) float64

func (f TiersFunc) Rate(sales float64) (float64, error) { return f(sales), nil }

// BonusFunc adapts a plain function to BonusPolicy.
type BonusFunc func(tenureYears int) float64

func (f BonusFunc) Percentage(tenureYears int) (float64, error) { return f(tenureYears), nil }

type options struct {
	tenureYears int
}

// Option adjusts a Compute call.
type Option func(*options)

// WithTenure sets the employee tenure used for the bonus lookup.
func WithTenure(years int) Option {
	return func(o *options) { o.tenureYears = years }
}

// Compute returns base(sales) * tiers.Rate(sales) * (1 + bonus(tenure)).
// Negative sales or a negative tenure fail with ErrInvalidArgument.
func Compute[S Number](sales S, base BaseFunc, tiers Tiers, bonus BonusPolicy, opts ...Option) (float64, error) {
	o := options{tenureYears: DefaultTenureYears}
	for _, opt := range opts {
		opt(&o)
	}

	amount := float64(sales)
	if amount < 0 || math.IsNaN(amount) {
		return 0, errkind.InvalidArgument("commission.Compute", "sales amount cannot be negative: %v", amount)
	}
	if o.tenureYears < 0 {
		return 0, errkind.InvalidArgument("commission.Compute", "tenure years cannot be negative: %d", o.tenureYears)
	}
	if base == nil || tiers == nil || bonus == nil {
		return 0, errkind.InvalidArgument("commission.Compute", "base, tiers and bonus policy are required")
	}

	rate, err := tiers.Rate(amount)
	if err != nil {
		return 0, err
	}
	pct, err := bonus.Percentage(o.tenureYears)
	if err != nil {
		return 0, err
	}

	beforeBonus := base(amount) * rate
	return beforeBonus * (1.0 + pct), nil
}

// Calculator bundles the three parts of a commission calculation with a
// default tenure.
type Calculator struct {
	Base        BaseFunc
	Tiers       Tiers
	Bonus       BonusPolicy
	TenureYears int
}

// FromConfig builds a Calculator from the commission section of the
// configuration file.
func FromConfig(cfg config.CommissionConfig) (*Calculator, error) {
	tiers, err := NewTierTable(lo.Map(cfg.Tiers, func(t config.Tier, _ int) Tier {
		return Tier{Limit: t.Limit, Rate: t.Rate}
	})...)
	if err != nil {
		return nil, err
	}
	return &Calculator{
		Base:  FlatRate(cfg.BaseRate),
		Tiers: tiers,
		Bonus: TenureBonus{
			SeniorYears: cfg.Bonus.SeniorYears,
			SeniorRate:  cfg.Bonus.SeniorRate,
			MidYears:    cfg.Bonus.MidYears,
			MidRate:     cfg.Bonus.MidRate,
		},
		TenureYears: cfg.TenureYears,
	}, nil
}

// Compute runs Compute with the calculator's parts. Options given here
// override the calculator's tenure.
func (c *Calculator) Compute(sales float64, opts ...Option) (float64, error) {
	return Compute(sales, c.Base, c.Tiers, c.Bonus, append([]Option{WithTenure(c.TenureYears)}, opts...)...)
}
