package main

import (
	"log/slog"
	"os"

	"github.com/cottand/tyra/cmd"
	"github.com/cottand/tyra/internal/log"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "tyra [subcommand]",
	Short:        "tyra\n assignability and generic argument resolution for reflected types",
	SilenceUsage: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		log.SetLevel(slog.Level(*logLevel))
		if len(*logSections) > 0 {
			log.EnableSections(*logSections...)
		}
	},
}

var (
	logLevel    *int
	logSections *[]string
)

func init() {
	logLevel = rootCmd.PersistentFlags().IntP("log-level", "l", int(slog.LevelWarn), "log level")
	logSections = rootCmd.PersistentFlags().StringSlice("log-sections", nil, "sections whose records below warning level are shown")

	rootCmd.AddCommand(cmd.AssignableCmd)
	rootCmd.AddCommand(cmd.ResolveCmd)
	rootCmd.AddCommand(cmd.ParseCmd)
	rootCmd.AddCommand(cmd.CheckCmd)
	rootCmd.AddCommand(cmd.ReplCmd)
	rootCmd.AddCommand(cmd.PackagesCmd)
}
