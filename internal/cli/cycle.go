package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/daybook/internal/adapters/turso"
	"github.com/emiliopalmerini/daybook/internal/domain"
	"github.com/emiliopalmerini/daybook/internal/util"
)

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Show the cycle prediction and history",
	Long: `Show the predicted next cycle window and the recorded history.

Examples:
  daybook cycle --user me
  daybook cycle --user me --today 2024-03-01`,
	RunE: runCycle,
}

var (
	cycleUser  string
	cycleToday string
)

func init() {
	rootCmd.AddCommand(cycleCmd)
	cycleCmd.Flags().StringVarP(&cycleUser, "user", "u", "", "User identifier")
	cycleCmd.Flags().StringVar(&cycleToday, "today", "", "Reference date (YYYY-MM-DD, defaults to today)")
	_ = cycleCmd.MarkFlagRequired("user")
}

func runCycle(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	today, err := resolveDate(cycleToday)
	if err != nil {
		return fmt.Errorf("invalid --today: %w", err)
	}

	db, _, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	repos := turso.NewRepositories(db)

	override, err := repos.Predictions.Get(ctx, cycleUser)
	if err != nil {
		return fmt.Errorf("failed to load prediction override: %w", err)
	}
	history, err := repos.Cycles.ListByUser(ctx, cycleUser)
	if err != nil {
		return fmt.Errorf("failed to load cycle history: %w", err)
	}

	outcome := domain.PredictCycle(history, override, today)

	fmt.Println()
	fmt.Printf("  Cycle\n")
	fmt.Printf("  =====\n")
	fmt.Println()

	if outcome.Prediction == nil {
		fmt.Printf("  %s\n", outcome.Message)
	} else {
		p := outcome.Prediction
		fmt.Printf("  Predicted start:   %s\n", util.FormatDateHuman(p.Start))
		fmt.Printf("  Predicted end:     %s\n", util.FormatDateHuman(p.End))
		switch {
		case p.DDay > 0:
			fmt.Printf("  D-day:             in %d days\n", p.DDay)
		case p.DDay == 0:
			fmt.Printf("  D-day:             today\n")
		default:
			fmt.Printf("  D-day:             %d days ago\n", -p.DDay)
		}
		if override != nil {
			fmt.Printf("  Source:            saved override\n")
		} else {
			fmt.Printf("  Source:            derived from %d records\n", len(history))
		}
	}
	fmt.Println()

	if len(history) > 0 {
		fmt.Printf("  History (most recent first)\n")
		fmt.Printf("  ---------------------------\n")
		for _, rec := range history {
			days := domain.DaysBetween(rec.Start, rec.End) + 1
			fmt.Printf("  %s .. %s  (%d days)\n", rec.Start, rec.End, days)
		}
		fmt.Println()
	}

	return nil
}
