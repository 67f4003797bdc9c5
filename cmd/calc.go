package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"finsage/finance"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run a single calculation",
}

func init() {
	calcCmd.AddCommand(
		newSavingsCmd(),
		newDTICmd(),
		newNetWorthCmd(),
		newFormatCmd(),
		newFutureValueCmd(),
		newEMICmd(),
		newSection80CCmd(),
		newTaxCmd(),
	)
	rootCmd.AddCommand(calcCmd)
}

func newSavingsCmd() *cobra.Command {
	var income, expenses float64
	cmd := &cobra.Command{
		Use:   "savings",
		Short: "Monthly income minus expenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printAmount(cmd, finance.MonthlySavings(income, expenses))
		},
	}
	cmd.Flags().Float64Var(&income, "income", 0, "monthly income")
	cmd.Flags().Float64Var(&expenses, "expenses", 0, "monthly expenses")
	return cmd
}

func newDTICmd() *cobra.Command {
	var debt, income float64
	cmd := &cobra.Command{
		Use:   "dti",
		Short: "Debt payments as a percentage of income",
		RunE: func(cmd *cobra.Command, args []string) error {
			ratio := finance.DebtToIncomeRatio(debt, income)
			if !finance.IsFinite(ratio) {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "N/A")
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%.2f%%\n", ratio)
			return err
		},
	}
	cmd.Flags().Float64Var(&debt, "debt", 0, "monthly debt payments")
	cmd.Flags().Float64Var(&income, "income", 0, "monthly income")
	return cmd
}

func newNetWorthCmd() *cobra.Command {
	var rawAssets, rawLiabilities map[string]string
	cmd := &cobra.Command{
		Use:   "networth",
		Short: "Assets minus liabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			assets, err := parseBreakdown(rawAssets)
			if err != nil {
				return err
			}
			liabilities, err := parseBreakdown(rawLiabilities)
			if err != nil {
				return err
			}
			return printAmount(cmd, finance.NetWorth(assets, liabilities))
		},
	}
	cmd.Flags().StringToStringVar(&rawAssets, "asset", nil, "asset as name=amount (repeatable)")
	cmd.Flags().StringToStringVar(&rawLiabilities, "liability", nil, "liability as name=amount (repeatable)")
	return cmd
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <amount>",
		Short: "Format an amount as Indian rupees",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			return printAmount(cmd, amount)
		},
	}
}

func newFutureValueCmd() *cobra.Command {
	var principal, contribution, rate float64
	var years int
	cmd := &cobra.Command{
		Use:   "fv",
		Short: "Future value with monthly contributions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printAmount(cmd, finance.FutureValue(principal, contribution, rate, years))
		},
	}
	cmd.Flags().Float64Var(&principal, "principal", 0, "starting balance")
	cmd.Flags().Float64Var(&contribution, "contribution", 0, "monthly contribution")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual return in percent")
	cmd.Flags().IntVar(&years, "years", 0, "years to project")
	return cmd
}

func newEMICmd() *cobra.Command {
	var principal, rate float64
	var months int
	cmd := &cobra.Command{
		Use:   "emi",
		Short: "Equated monthly installment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printAmount(cmd, finance.EMI(principal, rate, months))
		},
	}
	cmd.Flags().Float64Var(&principal, "principal", 0, "loan amount")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual interest in percent")
	cmd.Flags().IntVar(&months, "months", 0, "tenure in months")
	return cmd
}

func newSection80CCmd() *cobra.Command {
	var raw map[string]string
	var slab string
	cmd := &cobra.Command{
		Use:   "80c",
		Short: "Annual tax saved by Section 80C investments",
		RunE: func(cmd *cobra.Command, args []string) error {
			investments, err := parseBreakdown(raw)
			if err != nil {
				return err
			}
			return printAmount(cmd, finance.Section80CBenefit(investments, slab))
		},
	}
	cmd.Flags().StringToStringVar(&raw, "invest", nil, "investment as key=amount, e.g. ppf=50000")
	cmd.Flags().StringVar(&slab, "slab", "", "tax slab label, e.g. 7.5-10L")
	return cmd
}

func newTaxCmd() *cobra.Command {
	var annual float64
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Monthly income tax on an annual salary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printAmount(cmd, finance.MonthlyIncomeTax(annual, finance.DefaultTaxBrackets))
		},
	}
	cmd.Flags().Float64Var(&annual, "annual", 0, "annual salary")
	return cmd
}

func printAmount(cmd *cobra.Command, v float64) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), finance.FormatCurrency(v))
	return err
}

func parseBreakdown(raw map[string]string) (finance.Breakdown, error) {
	b := make(finance.Breakdown, len(raw))
	for k, v := range raw {
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amount for %s: %w", k, err)
		}
		b[k] = amount
	}
	return b, nil
}
