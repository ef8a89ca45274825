package cmd

import (
	"context"
	"fmt"

	"github.com/lingobee/lingobee/internal/curriculum"
	"github.com/lingobee/lingobee/internal/store"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Print the curriculum with each node's lock state",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := resolveCurriculum(cmd)
		if err != nil {
			return fmt.Errorf("load curriculum: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		userID := resolveUser(cmd)
		completed, err := st.ProgressRepo().CompletedNodeIDs(context.Background(), userID)
		if err != nil {
			return fmt.Errorf("load completions: %w", err)
		}
		statuses := curriculum.ResolveAccess(c, completed)

		done := 0
		for _, u := range c.Units() {
			fmt.Printf("Unit %d — %s\n", u.Number, u.Title)
			for _, sec := range u.Sections {
				fmt.Printf("  %s\n", sec.Title)
				for _, n := range sec.Nodes {
					status := statuses[n.ID]
					if status == curriculum.StatusCompleted {
						done++
					}
					fmt.Printf("    %s %-30s +%d xp  %s\n",
						status.Icon(), n.Title, n.XPReward, status.Label())
				}
			}
			fmt.Println()
		}
		fmt.Printf("%d/%d nodes completed\n", done, c.NodeCount())
		return nil
	},
}
