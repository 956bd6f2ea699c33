package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/showdiff/internal/diffblock"
)

// Writer writes a block result in a specific format.
type Writer interface {
	Write(w io.Writer, result *diffblock.Result) error
}

// Options carries settings some writers need.
type Options struct {
	Version string
	Style   string
	Title   string
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string, opts Options) (Writer, error) {
	switch format {
	case "html", "":
		return &HTMLWriter{}, nil
	case "page":
		return &PageWriter{Style: opts.Style, Title: opts.Title}, nil
	case "json":
		return &JSONWriter{Version: opts.Version}, nil
	case "text":
		return &TextWriter{}, nil
	case "markdown":
		return &MarkdownWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteResult writes the result to the specified output (file path or stdout).
func WriteResult(result *diffblock.Result, format, outPath string, opts Options) error {
	writer, err := GetWriter(format, opts)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, result)
}

// WriteFile writes data to outPath, or stdout when outPath is empty.
func WriteFile(outPath string, data []byte) error {
	if outPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
