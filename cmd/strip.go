package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rechati/decomment/dialect"
	"github.com/rechati/decomment/engine"
)

// outputFlag is the optional path for the cleaned text.
// inPlaceFlag rewrites the input file itself, keeping a backup.
// typeFlag forces a dialect name instead of auto-detection.
var (
	outputFlag  string
	inPlaceFlag bool
	typeFlag    string
	verboseFlag bool
	copyFlag    bool
)

var warnColor = color.New(color.FgYellow)

var stripCmd = &cobra.Command{
	Use:   "strip <file>",
	Short: "Remove comments from a source file",
	Long: `Strip reads a file, removes its comments according to the detected
(or forced) dialect, and writes the cleaned text to stdout, to --output,
or back to the file with --in-place.

Usage example:
decomment strip main.js -o main.clean.js
decomment strip config.yaml -i
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if inPlaceFlag && outputFlag != "" {
			return errors.New("cannot use --in-place (-i) and --output (-o) together")
		}

		input := args[0]
		raw, err := os.ReadFile(input)
		if err != nil {
			return fmt.Errorf("reading %s: %w", input, err)
		}

		name, desc := resolveDialect(input, typeFlag)
		if verboseFlag {
			printDetection(name, desc)
		}

		cleaned := engine.Strip(string(raw), name, desc)

		if copyFlag {
			if err := clipboard.WriteAll(cleaned); err != nil {
				warnColor.Fprintf(os.Stderr, "warning: clipboard copy failed: %v\n", err)
			} else {
				fmt.Fprintln(os.Stderr, "[copied output to clipboard]")
			}
		}

		switch {
		case inPlaceFlag:
			if err := writeInPlace(input, cleaned); err != nil {
				return err
			}
			fmt.Printf("Comments processed in-place: %s\n", input)
		case outputFlag != "":
			if err := os.WriteFile(outputFlag, []byte(cleaned), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", outputFlag, err)
			}
			fmt.Printf("Processed file written to: %s\n", outputFlag)
		default:
			fmt.Printf("\n--- Processed %s file ---\n", strings.ToUpper(name))
			fmt.Println(strings.TrimSpace(cleaned))
			fmt.Print("----------------------\n\n")
		}
		return nil
	},
}

// init registers stripCmd and its flags on the root command.
func init() {
	rootCmd.AddCommand(stripCmd)

	stripCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Path to the output file (defaults to stdout)")
	stripCmd.Flags().BoolVarP(&inPlaceFlag, "in-place", "i", false, "Modify the input file directly (a backup is kept)")
	stripCmd.Flags().StringVarP(&typeFlag, "type", "t", "", "Force a dialect (e.g. python, c_style, sql)")
	stripCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Print dialect detection details")
	stripCmd.Flags().BoolVar(&copyFlag, "copy", false, "Copy the cleaned output to the clipboard")
}

// resolveDialect picks the dialect for input. Order: a forced name if it is
// known (an unknown name warns and falls through), then the user's config
// mappings, then built-in extension/content-type resolution with its
// c_style fallback.
func resolveDialect(input, forced string) (string, dialect.Descriptor) {
	if forced != "" {
		if d, ok := dialect.Lookup(forced); ok {
			if verboseFlag {
				fmt.Printf("Using forced dialect: %s\n", forced)
			}
			return forced, d
		}
		warnColor.Fprintf(os.Stderr, "warning: forced dialect %q not recognized, auto-detecting instead\n", forced)
	}

	cfg := loadConfig()
	ext := strings.ToLower(filepath.Ext(input))
	if name, ok := cfg.Dialects[ext]; ok {
		if d, found := dialect.Lookup(name); found {
			return name, d
		}
		warnColor.Fprintf(os.Stderr, "warning: config maps %s to unknown dialect %q, ignoring\n", ext, name)
	}

	return dialect.Resolve(input)
}

func printDetection(name string, d dialect.Descriptor) {
	fmt.Printf("Detected dialect: %s\n", color.CyanString(name))
	fmt.Printf("Single-line comment: %s\n", orNone(d.Single))
	if d.Multi != nil {
		fmt.Printf("Multi-line comment: %s ... %s\n", d.Multi.Open, d.Multi.Close)
	} else {
		fmt.Printf("Multi-line comment: None\n")
	}
}

// writeInPlace replaces path with content, first renaming the original to a
// timestamped backup. If the write fails the backup is renamed back.
func writeInPlace(path, content string) error {
	backup := backupPath(path, time.Now())

	if err := os.Rename(path, backup); err != nil {
		return fmt.Errorf("backing up %s: %w", path, err)
	}
	fmt.Printf("Original file backed up to: %s\n", backup)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		if restoreErr := os.Rename(backup, path); restoreErr == nil {
			fmt.Fprintln(os.Stderr, "Original file restored from backup.")
		}
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// backupPath builds "<base>.<unix>.bak" next to path, or "<path>.bak" if a
// file with the timestamped name already exists.
func backupPath(path string, now time.Time) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	candidate := fmt.Sprintf("%s.%d.bak", base, now.Unix())
	if _, err := os.Stat(candidate); err == nil {
		return path + ".bak"
	}
	return candidate
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
