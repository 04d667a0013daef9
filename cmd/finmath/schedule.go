package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meenmo/finmath/calendar"
	"github.com/meenmo/finmath/config"
	"github.com/meenmo/finmath/temporal"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Generate a date sequence between two dates.",
	Long: `Generate the ordered sequence of dates obtained by stepping a tenor
from a start date until an end date, under a day count convention.

Examples:
  finmath schedule --start 2024-01-01 --end 2024-04-01 --frequency 1M
  finmath schedule --start 2024-01-01 --end 2025-01-01 --frequency 3M --convention ACT/360`,
	RunE: runSchedule,
}

func init() {
	scheduleCmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	scheduleCmd.Flags().String("end", "", "End date (YYYY-MM-DD)")
	scheduleCmd.Flags().String("frequency", "3M", "Step tenor, e.g. 1W, 1M, 3M")
	scheduleCmd.Flags().Bool("skip-start", false, "Exclude the start date from the sequence")
	scheduleCmd.Flags().Bool("skip-end", false, "Exclude the end date from the sequence")
	if err := viper.BindPFlags(scheduleCmd.Flags()); err != nil {
		log.Fatal().Err(err).Msg("cannot bind schedule flags")
	}
}

func runSchedule(_ *cobra.Command, _ []string) error {
	start, err := config.ParseDate(viper.GetString("start"))
	if err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	end, err := config.ParseDate(viper.GetString("end"))
	if err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	freq, err := calendar.ParseTenor(viper.GetString("frequency"))
	if err != nil {
		return err
	}
	conv, err := calendar.ParseConvention(viper.GetString("convention"))
	if err != nil {
		return err
	}

	seq, err := calendar.GenerateSequence(start, freq, conv,
		!viper.GetBool("skip-start"), !viper.GetBool("skip-end"), end)
	if err != nil {
		return err
	}
	return printSchedule(seq)
}

func printSchedule(seq []temporal.Timestamp) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"#", "Date", "Weekday"})

	var data [][]string
	for i, ts := range seq {
		d := ts.Civil()
		data = append(data, []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day),
			d.Weekday.String(),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
