package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/lexio/internal/app"
	"github.com/abhisek/lexio/internal/progress"
	"github.com/abhisek/lexio/internal/tts"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	// Opening the app counts as today's visit for streak purposes.
	if err := st.RecordVisit(); err != nil {
		return fmt.Errorf("record visit: %w", err)
	}

	opts := app.Options{
		Catalog: cat,
		Store:   st,
		Version: version,
	}

	// Pronunciation needs an external player; the app works without it.
	speaker, err := newSpeaker()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Pronunciation unavailable:", err)
		opts.Speaker = tts.Noop{}
	} else {
		opts.Speaker = speaker
	}

	return app.Run(opts)
}

func newSpeaker() (tts.Speaker, error) {
	cacheDir, err := tts.DefaultCacheDir()
	if err != nil {
		return nil, err
	}
	return tts.New(cacheDir)
}
