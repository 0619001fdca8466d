package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/lexio/internal/achievements"
	"github.com/abhisek/lexio/internal/progress"
	"github.com/abhisek/lexio/internal/stats"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return fmt.Errorf("load word catalog: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := progress.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open progress store: %w", err)
		}
		defer st.Close()

		mastered, err := st.MasteredIDs()
		if err != nil {
			return err
		}
		favorite, err := st.FavoriteIDs()
		if err != nil {
			return err
		}
		todayLearned, err := st.TodayLearnedCount()
		if err != nil {
			return err
		}
		history, err := st.History()
		if err != nil {
			return err
		}
		days, err := st.VisitDays()
		if err != nil {
			return err
		}

		o := stats.BuildOverview(cat, mastered, favorite, todayLearned)
		streak := achievements.ConsecutiveDays(days, time.Now())

		fmt.Printf("Words:      %d mastered of %d (%d%%)\n", o.Mastered, o.TotalWords, o.MasteredPercent)
		fmt.Printf("Favorites:  %d\n", o.Favorites)
		fmt.Printf("Today:      %d learned\n", o.TodayLearned)
		fmt.Printf("Streak:     %d day(s)\n", streak)
		fmt.Printf("Quizzes:    %d taken\n", len(history))

		fmt.Println("\nUnits:")
		for _, u := range stats.UnitProgress(cat, mastered) {
			fmt.Printf("  %-10s %d/%d (%.0f%%)\n", u.Unit.Label(), u.Mastered, u.Total, u.Percent)
		}

		if scores := stats.RecentScores(history, 10); len(scores) > 0 {
			fmt.Print("\nRecent scores: ")
			for i, s := range scores {
				if i > 0 {
					fmt.Print(", ")
				}
				fmt.Printf("%d%%", s)
			}
			fmt.Println()
		}
		return nil
	},
}
