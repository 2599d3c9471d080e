package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/automoto/nightfall/session"
	"github.com/automoto/nightfall/term"
)

var flagTermLog string

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play the level cycle in the terminal.

Controls:
  Left/Right, a/d  - Run
  Up, w, Space     - Jump
  Down, s          - Slide
  Enter            - Continue after winning or losing
  q, Esc, Ctrl-C   - Quit

Logs would garble the screen, so they are dropped unless --log-file is set.`,
	Args: cobra.NoArgs,
	RunE: runTerm,
}

func init() {
	termCmd.Flags().StringVar(&flagTermLog, "log-file", "", "Write logs to this file while playing")
}

func runTerm(cmd *cobra.Command, args []string) error {
	var out io.Writer = io.Discard
	if flagTermLog != "" {
		f, err := os.OpenFile(flagTermLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger.SetOutput(out)

	opts := []session.Option{session.WithLogger(logger)}
	if store := openHistory(); store != nil {
		defer store.Close()
		opts = append(opts, session.WithRecorder(store))
	}

	s := session.New(levelSource(), opts...)
	if err := s.Start(); err != nil {
		return err
	}
	defer s.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer func() {
		screen.Fini()
		fmt.Printf("Levels completed: %d  Total score: %d\n", s.LevelsCompleted(), s.TotalScore())
	}()

	return term.New(screen, s, logger).Run(cmd.Context())
}
