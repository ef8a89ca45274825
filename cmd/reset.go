package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/lingobee/lingobee/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a user's progress, ledger, and session history",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := resolveUser(cmd)

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Printf("This deletes all progress for %q. Continue? [y/N] ", userID)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
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

		if err := st.ResetUser(cmd.Context(), userID); err != nil {
			return fmt.Errorf("reset user: %w", err)
		}
		fmt.Printf("Progress for %q deleted.\n", userID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
