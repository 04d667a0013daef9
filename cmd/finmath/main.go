// Command finmath evaluates schedules, year fractions, tenors and curves
// from the command line.
package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var rootCmd = &cobra.Command{
	Use:           "finmath",
	Short:         "Financial date arithmetic and curve interpolation.",
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(yearfracCmd)
	rootCmd.AddCommand(tenorsCmd)
	rootCmd.AddCommand(curveCmd)

	rootCmd.PersistentFlags().String("convention", "ACT/365", "Day count convention: ACT/360, ACT/365 or ACT/364")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		log.Fatal().Err(err).Msg("cannot bind root flags")
	}

	viper.SetEnvPrefix("FINMATH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func setupLogging(*cobra.Command, []string) error {
	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

func main() {
	rootCmd.PersistentPreRunE = setupLogging
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("finmath failed")
	}
}
