package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/daybook/internal/adapters/turso"
	"github.com/emiliopalmerini/daybook/internal/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show time totals by category",
	Long: `Show time spent per category over a calendar period.

Examples:
  daybook stats --user me                  # This day's totals
  daybook stats --user me --period week    # This week's totals
  daybook stats --user me --period month --today 2024-03-01`,
	RunE: runStats,
}

var (
	statsUser   string
	statsPeriod string
	statsToday  string
)

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVarP(&statsUser, "user", "u", "", "User identifier")
	statsCmd.Flags().StringVarP(&statsPeriod, "period", "p", "day", "Time period: day, week, month, year")
	statsCmd.Flags().StringVar(&statsToday, "today", "", "Reference date (YYYY-MM-DD, defaults to today)")
	_ = statsCmd.MarkFlagRequired("user")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	period, err := domain.ParsePeriod(statsPeriod)
	if err != nil {
		return fmt.Errorf("invalid --period: %w", err)
	}
	today, err := resolveDate(statsToday)
	if err != nil {
		return fmt.Errorf("invalid --today: %w", err)
	}

	db, _, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	repos := turso.NewRepositories(db)

	byDate, err := repos.Entries.MapByDate(ctx, statsUser)
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}

	logger := domain.StdLogger{}
	filtered, err := domain.FilterByPeriod(byDate, period, today.Time(), logger)
	if err != nil {
		return err
	}
	totals := domain.AggregateByCategory(filtered, logger)
	rendered := domain.RenderTotals(totals)

	categories := make([]string, 0, len(totals))
	for name := range totals {
		categories = append(categories, name)
	}
	sort.Slice(categories, func(i, j int) bool {
		return totals[categories[i]] > totals[categories[j]]
	})

	fmt.Println()
	fmt.Printf("  Totals (%s of %s)\n", statsPeriod, today)
	fmt.Printf("  ------------------------\n")
	if len(categories) == 0 {
		fmt.Println("  No entries in this period")
	}
	for _, name := range categories {
		fmt.Printf("  %-18s %s\n", name, rendered[name])
	}
	fmt.Println()

	return nil
}
