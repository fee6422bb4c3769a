package cmd

import (
	"fmt"

	"github.com/abhisek/browserquiz/internal/app"
	"github.com/abhisek/browserquiz/internal/quiz"
)

// runApp loads the answer key and launches the TUI.
func runApp() error {
	def, err := quiz.Default()
	if err != nil {
		return fmt.Errorf("load quiz: %w", err)
	}
	return app.Run(app.Options{Definition: def, Logger: log})
}
