// Package cumulative folds a list of orders into a running figure such as
// total quantity or revenue.
package cumulative

import "golang.org/x/exp/constraints"

// Number is a figure an Accumulator can build up.
type Number interface {
	constraints.Integer | constraints.Float
}

// Accumulator adds one order to the running result.
type Accumulator[R Number, O any] func(current R, order O) R

// Sum folds orders left to right, starting from zero. No orders yields
// zero.
func Sum[R Number, O any](acc Accumulator[R, O], orders ...O) R {
	var result R
	for _, order := range orders {
		result = acc(result, order)
	}
	return result
}

// ProductOrder is one line of a purchase.
type ProductOrder struct {
	PricePerUnit float64
	Quantity     int
}

// QuantityAdder adds the order's quantity.
func QuantityAdder(current int, order ProductOrder) int {
	return current + order.Quantity
}

// RevenueAdder adds the order's price times quantity.
func RevenueAdder(current float64, order ProductOrder) float64 {
	return current + order.PricePerUnit*float64(order.Quantity)
}
