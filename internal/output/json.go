package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/showdiff/internal/diffblock"
)

// Report is the JSON document for a processed block.
type Report struct {
	Tool    string `json:"tool"`
	Version string `json:"version,omitempty"`
	diffblock.Result
}

// JSONWriter outputs the result as JSON.
type JSONWriter struct {
	Version string
}

func (j *JSONWriter) Write(w io.Writer, result *diffblock.Result) error {
	report := Report{Tool: "showdiff", Version: j.Version, Result: *result}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
