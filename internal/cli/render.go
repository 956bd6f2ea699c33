package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dshills/showdiff/internal/config"
	"github.com/dshills/showdiff/internal/logging"
	"github.com/dshills/showdiff/internal/note"
	"github.com/dshills/showdiff/internal/output"
)

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagContextLines, "context-lines", 0, "Number of context lines in diff")
	cmd.Flags().IntVar(&flagMaxDiffBytes, "max-diff-bytes", 0, "Maximum diff size in bytes")
	cmd.Flags().BoolVar(&flagFileList, "file-list", false, "Draw the changed-files list above each diff")
	cmd.Flags().BoolVar(&flagNoHighlight, "no-highlight", false, "Disable syntax highlighting")
	cmd.Flags().StringVar(&flagStyle, "style", "", "Chroma style for the page stylesheet")
	cmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
}

// noteRenderer builds a note renderer whose blocks diff the repository
// holding notePath.
func noteRenderer(ctx context.Context, cfg config.Config, notePath string, log logging.Logger) (*note.Renderer, error) {
	abs, err := filepath.Abs(notePath)
	if err != nil {
		return nil, err
	}
	root := vaultRoot(ctx, cfg, filepath.Dir(abs), log)
	proc, err := buildProcessor(cfg, root, log)
	if err != nil {
		return nil, err
	}
	return note.New(proc, cfg.Style), nil
}

var renderCmd = &cobra.Command{
	Use:   "render <note.md>",
	Short: "Render a note with its show-diff blocks as HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadSettings()
		if err != nil {
			fail(err)
			return nil
		}
		r, err := noteRenderer(cmd.Context(), cfg, args[0], log)
		if err != nil {
			fail(err)
			return nil
		}
		data, err := r.RenderFile(cmd.Context(), args[0], flagFragment)
		if err != nil {
			fail(err)
			return nil
		}
		if err := output.WriteFile(flagOut, data); err != nil {
			fail(err)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	renderCmd.Flags().BoolVar(&flagFragment, "fragment", false, "Emit the note body without the page wrapper")
	addRenderFlags(renderCmd)
}
