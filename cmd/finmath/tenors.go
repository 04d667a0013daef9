package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meenmo/finmath/calendar"
)

var tenorsCmd = &cobra.Command{
	Use:   "tenors",
	Short: "List the supported tenors under a day count convention.",
	RunE:  runTenors,
}

func runTenors(_ *cobra.Command, _ []string) error {
	conv, err := calendar.ParseConvention(viper.GetString("convention"))
	if err != nil {
		return err
	}
	convName, err := conv.Name()
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Tenor", "Days (" + convName + ")", "Year Fraction"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, t := range calendar.Tenors {
		name, err := t.Name()
		if err != nil {
			return err
		}
		days, err := t.Days(conv)
		if err != nil {
			return err
		}
		frac, err := calendar.TenorYearFraction(t, conv)
		if err != nil {
			return err
		}
		data = append(data, []string{
			name,
			strconv.Itoa(days),
			fmt.Sprintf("%.6f", frac),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
