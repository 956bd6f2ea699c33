package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/showdiff/internal/revrange"
)

var flagAppend string

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Print a show-diff block covering yesterday to today",
	RunE: func(cmd *cobra.Command, args []string) error {
		block, err := revrange.DailyBlock(revrange.SystemClock)
		if err != nil {
			fail(err)
			return nil
		}
		if flagAppend == "" {
			fmt.Fprintln(cmd.OutOrStdout(), block)
			return nil
		}
		if err := appendBlock(flagAppend, block); err != nil {
			fail(err)
			return nil
		}
		fmt.Fprintf(os.Stderr, "Appended daily block to %s\n", flagAppend)
		return nil
	},
}

// appendBlock adds block to the end of the note, creating it if needed.
func appendBlock(path, block string) error {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading note: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening note: %w", err)
	}
	defer f.Close()

	prefix := ""
	switch {
	case len(existing) == 0:
	case existing[len(existing)-1] != '\n':
		prefix = "\n\n"
	default:
		prefix = "\n"
	}
	if _, err := f.WriteString(prefix + block + "\n"); err != nil {
		return fmt.Errorf("writing note: %w", err)
	}
	return nil
}

func init() {
	dailyCmd.Flags().StringVar(&flagAppend, "append", "", "Append the block to this note instead of printing it")
}
