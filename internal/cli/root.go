package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "daybook",
	Short: "Personal life-logging core",
	Long: `daybook is a personal life-logging application core.

Track time entries, aggregate them by category over calendar periods,
record cycle history with predictions, and review weekly health summaries.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
