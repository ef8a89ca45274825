package cmd

import (
	"context"
	"fmt"

	"github.com/lingobee/lingobee/internal/ledger"
	"github.com/lingobee/lingobee/internal/store"
	"github.com/spf13/cobra"
)

const recentSessionLimit = 10

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progression and recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		userID := resolveUser(cmd)
		repo := st.ProgressRepo()

		l, err := repo.Ledger(ctx, userID)
		if err != nil {
			return fmt.Errorf("load ledger: %w", err)
		}
		stats, err := repo.Stats(ctx, userID)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		fmt.Printf("User: %s\n\n", userID)
		fmt.Printf("Level:         %d\n", l.Level)
		fmt.Printf("XP:            %d/%d\n", l.XP, ledger.LevelThreshold)
		fmt.Printf("Streak:        %d day(s)\n", l.StreakDays)
		fmt.Printf("Nodes done:    %d\n", stats.TotalNodesCompleted)
		fmt.Printf("Lifetime XP:   %d\n", stats.TotalXPEarned)
		if stats.LastPracticeDate != "" {
			fmt.Printf("Last practice: %s\n", stats.LastPracticeDate)
		}

		sessions, err := st.EventRepo().RecentSessions(ctx, userID, recentSessionLimit)
		if err != nil {
			return fmt.Errorf("load sessions: %w", err)
		}
		if len(sessions) > 0 {
			fmt.Println("\nRecent sessions:")
			for _, s := range sessions {
				fmt.Printf("  %s  %-20s %d/%d correct  %s\n",
					s.Timestamp.Format("2006-01-02 15:04"),
					s.NodeID,
					s.CorrectAnswers, s.QuestionsServed,
					s.Action)
			}
		}
		return nil
	},
}
