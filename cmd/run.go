package cmd

import (
	"fmt"

	"github.com/lingobee/lingobee/internal/app"
	"github.com/lingobee/lingobee/internal/progress"
	"github.com/lingobee/lingobee/internal/quiz"
	"github.com/lingobee/lingobee/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	repo := st.ProgressRepo()
	return app.Run(app.Options{
		Curriculum: c,
		Repo:       repo,
		Events:     st.EventRepo(),
		Recorder:   progress.NewRecorder(repo),
		UserID:     resolveUser(cmd),
		Shuffler:   quiz.NewShuffler(),
	})
}
