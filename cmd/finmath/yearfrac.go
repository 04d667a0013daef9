package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meenmo/finmath/calendar"
	"github.com/meenmo/finmath/config"
)

var yearfracCmd = &cobra.Command{
	Use:   "yearfrac <start> <end>",
	Short: "Compute the year fraction between two dates.",
	Long: `Compute the accrual year fraction between two dates under a day count
convention.

Examples:
  finmath yearfrac 2024-01-01 2024-07-01
  finmath yearfrac 2024-01-01 2024-07-01 --convention ACT/360`,
	Args: cobra.ExactArgs(2),
	RunE: runYearfrac,
}

func runYearfrac(_ *cobra.Command, args []string) error {
	start, err := config.ParseDate(args[0])
	if err != nil {
		return fmt.Errorf("yearfrac: %w", err)
	}
	end, err := config.ParseDate(args[1])
	if err != nil {
		return fmt.Errorf("yearfrac: %w", err)
	}
	conv, err := calendar.ParseConvention(viper.GetString("convention"))
	if err != nil {
		return err
	}
	frac, err := calendar.YearFraction(start, end, conv)
	if err != nil {
		return err
	}
	fmt.Printf("%.10f\n", frac)
	return nil
}
