package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rechati/decomment/dialect"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all supported dialects",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Supported dialects:")
		for _, n := range dialect.All() {
			d := n.Descriptor
			multi := "None"
			if d.Multi != nil {
				multi = d.Multi.Open + " ... " + d.Multi.Close
			}
			fmt.Printf("  %s:\n", color.CyanString(n.Name))
			fmt.Printf("    Extensions: %s\n", strings.Join(d.Extensions, ", "))
			fmt.Printf("    Single-line comment: %s\n", orNone(d.Single))
			fmt.Printf("    Multi-line comment: %s\n", multi)
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
