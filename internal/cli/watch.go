package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dshills/showdiff/internal/gitctx"
	"github.com/dshills/showdiff/internal/output"
	"github.com/dshills/showdiff/internal/watch"
)

var flagAlso string

var watchCmd = &cobra.Command{
	Use:   "watch <note.md>",
	Short: "Re-render a note whenever it or its repository changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagOut == "" {
			fail(&usageError{fmt.Errorf("watch requires --out")})
			return nil
		}
		ctx := cmd.Context()
		cfg, log, err := loadSettings()
		if err != nil {
			fail(err)
			return nil
		}
		notePath := args[0]
		r, err := noteRenderer(ctx, cfg, notePath, log)
		if err != nil {
			fail(err)
			return nil
		}

		renderOnce := func(ctx context.Context) error {
			data, err := r.RenderFile(ctx, notePath, flagFragment)
			if err != nil {
				return err
			}
			if err := output.WriteFile(flagOut, data); err != nil {
				return err
			}
			log.Info("rendered", "note", notePath, "out", flagOut)
			return nil
		}
		if err := renderOnce(ctx); err != nil {
			fail(err)
			return nil
		}

		paths := append([]string{notePath}, splitComma(flagAlso)...)
		abs, _ := filepath.Abs(notePath)
		root := vaultRoot(ctx, cfg, filepath.Dir(abs), log)
		if gitDir, err := gitctx.NewRepo(root, cfg.GitTimeout()).GitDir(ctx); err == nil {
			paths = append(paths, filepath.Join(gitDir, "logs"), filepath.Join(gitDir, "HEAD"))
		} else {
			log.Debug("not watching repository", "root", root)
		}

		w, err := watch.New(paths, watch.DefaultDebounce, log.WithName("watch"))
		if err != nil {
			fail(err)
			return nil
		}
		defer w.Close()

		fmt.Fprintf(os.Stderr, "Watching %s (Ctrl-C to stop)\n", notePath)
		if err := w.Run(ctx, renderOnce); err != nil {
			fail(err)
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (required)")
	watchCmd.Flags().BoolVar(&flagFragment, "fragment", false, "Emit the note body without the page wrapper")
	watchCmd.Flags().StringVar(&flagAlso, "also", "", "Extra files or directories to watch (comma-separated)")
	addRenderFlags(watchCmd)
}
