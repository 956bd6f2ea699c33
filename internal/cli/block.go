package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/showdiff/internal/output"
	"github.com/dshills/showdiff/internal/revrange"
)

var blockCmd = &cobra.Command{
	Use:   "block",
	Short: "Render one show-diff block",
	Long: "Render the body of a single show-diff block read from --file or stdin. " +
		"A complete fenced block is accepted as well as a bare body.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadSettings()
		if err != nil {
			fail(err)
			return nil
		}
		source, err := readSource(flagFile)
		if err != nil {
			fail(err)
			return nil
		}
		cwd, err := os.Getwd()
		if err != nil {
			fail(err)
			return nil
		}
		proc, err := buildProcessor(cfg, vaultRoot(cmd.Context(), cfg, cwd, log), log)
		if err != nil {
			fail(err)
			return nil
		}

		result, err := proc.Process(cmd.Context(), source)
		if err != nil {
			fail(err)
			return nil
		}
		if result.Truncated {
			log.Info("diff truncated", "maxDiffBytes", cfg.MaxDiffBytes)
		}

		opts := output.Options{Version: version, Style: cfg.Style}
		if err := output.WriteResult(result, cfg.Format, flagOut, opts); err != nil {
			fail(err)
		}
		return nil
	},
}

var argsCmd = &cobra.Command{
	Use:   "args",
	Short: "Print the revision range and exclusions a block compiles to",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadSettings()
		if err != nil {
			fail(err)
			return nil
		}
		source, err := readSource(flagFile)
		if err != nil {
			fail(err)
			return nil
		}
		block, err := revrange.Parse(source)
		if err != nil {
			fail(err)
			return nil
		}
		compiler := revrange.Compiler{DefaultExclude: cfg.DefaultExclude}
		revRange, err := compiler.RevisionRange(block)
		if err != nil {
			fail(err)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), revRange)
		fmt.Fprintln(cmd.OutOrStdout(), compiler.ExcludedPaths(block))
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{blockCmd, argsCmd} {
		c.Flags().StringVarP(&flagFile, "file", "f", "", "Read the block from a file (default: stdin)")
	}
	blockCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (html, page, json, text, markdown)")
	blockCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	addRenderFlags(blockCmd)
}
