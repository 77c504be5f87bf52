package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/daybook/internal/adapters/turso"
	"github.com/emiliopalmerini/daybook/internal/domain"
	"github.com/emiliopalmerini/daybook/internal/util"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the 7-day health summary",
	Long: `Show the weekly health summary: steps, burned calories and consumed
calories for the last 7 days.

Examples:
  daybook summary --user me
  daybook summary --user me --end 2024-03-10`,
	RunE: runSummary,
}

var (
	summaryUser string
	summaryEnd  string
)

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringVarP(&summaryUser, "user", "u", "", "User identifier")
	summaryCmd.Flags().StringVar(&summaryEnd, "end", "", "Last day of the window (YYYY-MM-DD, defaults to today)")
	_ = summaryCmd.MarkFlagRequired("user")
}

func runSummary(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	end, err := resolveDate(summaryEnd)
	if err != nil {
		return fmt.Errorf("invalid --end: %w", err)
	}
	from := end.AddDays(-(domain.WeeklySummaryDays - 1))

	db, _, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	repos := turso.NewRepositories(db)

	steps, err := repos.Health.ListDailySteps(ctx, summaryUser, from, end)
	if err != nil {
		return fmt.Errorf("failed to load steps: %w", err)
	}
	meals, err := repos.Health.ListMeals(ctx, summaryUser, from, end)
	if err != nil {
		return fmt.Errorf("failed to load meals: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Weekly Summary (%s .. %s)\n", from, end)
	fmt.Printf("  =========================================\n")
	fmt.Println()
	fmt.Printf("  %-12s %8s %8s %10s\n", "Date", "Steps", "Burned", "Consumed")

	for _, day := range domain.BuildWeeklySummary(end, steps, meals) {
		fmt.Printf("  %-12s %8s %8s %10s\n",
			day.Date,
			util.FormatNumber(day.Steps),
			util.FormatNumber(day.CaloriesBurned),
			util.FormatCalories(day.ConsumedCalories))
	}
	fmt.Println()

	return nil
}
