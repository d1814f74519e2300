package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/rechati/decomment/engine"
)

const debounceInterval = 300 * time.Millisecond

var watchOutputFlag string

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-strip a file every time it is saved",
	Long: `Watch monitors a file and re-runs comment stripping on every save,
writing the result to --output or stdout. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchAndStrip(ctx, args[0], watchOutputFlag)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchOutputFlag, "output", "o", "", "Path to write the cleaned text on each change")
}

// watchAndStrip watches the directory containing input (editors typically
// replace files on save, which a file-level watch would lose) and re-strips
// the file after a short debounce.
func watchAndStrip(ctx context.Context, input, output string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(input)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	if err := stripOnce(input, output); err != nil {
		fmt.Fprintf(os.Stderr, "strip error: %v\n", err)
	}

	var debounceTimer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceInterval, func() {
				if err := stripOnce(input, output); err != nil {
					fmt.Fprintf(os.Stderr, "strip error: %v\n", err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

func stripOnce(input, output string) error {
	raw, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	name, desc := resolveDialect(input, "")
	cleaned := engine.Strip(string(raw), name, desc)

	if output != "" {
		if err := os.WriteFile(output, []byte(cleaned), 0644); err != nil {
			return err
		}
		fmt.Printf("%s: wrote %s\n", time.Now().Format("15:04:05"), output)
		return nil
	}
	fmt.Println(strings.TrimSpace(cleaned))
	return nil
}
