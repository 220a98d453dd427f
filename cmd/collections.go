package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prateek041/typedpipes/cumulative"
	"github.com/prateek041/typedpipes/tuple"
)

var tupleCmd = &cobra.Command{
	Use:   "tuple",
	Short: "Show heterogeneous tuples and inventory items",
	Args:  cobra.NoArgs,
	RunE:  runTuple,
}

var cumulativeCmd = &cobra.Command{
	Use:   "cumulative",
	Short: "Fold product orders into running totals",
	Args:  cobra.NoArgs,
	RunE:  runCumulative,
}

func runTuple(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "--- Tuples ---")

	t := tuple.New(42, 3.14, 'A')
	fmt.Fprintf(out, "Tuple %v has size %d\n", t, t.Size())
	for i := 0; i < t.Size(); i++ {
		v, err := t.At(i)
		if err != nil {
			return err
		}
		typ, err := t.TypeAt(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  element %d: %v (%s)\n", i, v, typ)
	}

	triple := tuple.NewTriple(42, 3.14, 'A')
	fmt.Fprintf(out, "Triple: %d, %g, %c\n", triple.First(), triple.Second(), triple.Third())

	for _, item := range []fmt.Stringer{
		tuple.NewItem("Widget", 19.99),
		tuple.NewItem("Gadget", 29.99, 100),
		tuple.NewItem("Tool", 9.99, 50, "Hardware"),
	} {
		fmt.Fprintf(out, "Item: %s\n", item)
	}
	return nil
}

func runCumulative(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "--- Cumulative orders ---")

	orders := []cumulative.ProductOrder{
		{PricePerUnit: 10.0, Quantity: 5},
		{PricePerUnit: 5.0, Quantity: 3},
		{PricePerUnit: 2.0, Quantity: 7},
		{PricePerUnit: 8.0, Quantity: 2},
	}
	for n := 1; n <= len(orders); n++ {
		fmt.Fprintf(out, "First %d orders: quantity %d, revenue %.2f\n", n,
			cumulative.Sum(cumulative.QuantityAdder, orders[:n]...),
			cumulative.Sum(cumulative.RevenueAdder, orders[:n]...),
		)
	}
	return nil
}
