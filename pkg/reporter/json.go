package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// jsonVersion is the schema version of JSONOutput.
const jsonVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string      `json:"version"`
	Path    string      `json:"path,omitempty"`
	Tokens  []JSONToken `json:"tokens"`
	State   JSONState   `json:"state"`
	Summary JSONSummary `json:"summary"`
}

// JSONToken represents a single token. Value is not byte-exact when the
// token holds invalid UTF-8; Raw then carries the original bytes.
type JSONToken struct {
	Category string `json:"category"`
	Kind     string `json:"kind"`
	Value    string `json:"value"`
	Raw      []byte `json:"raw,omitempty"`
	Offset   int    `json:"offset"`
}

// Text returns the exact token text.
func (t JSONToken) Text() string {
	if t.Raw != nil {
		return string(t.Raw)
	}
	return t.Value
}

// JSONState is the scanner state after the last token.
type JSONState struct {
	Offset  int      `json:"offset"`
	InFence bool     `json:"inFence"`
	Marks   []string `json:"marks"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	Tokens int            `json:"tokens"`
	Bytes  int            `json:"bytes"`
	ByKind map[string]int `json:"byKind"`
}

// JSONReporter formats scans as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, scan *Scan) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := buildOutput(scan)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.Tokens, nil
}

func buildOutput(scan *Scan) *JSONOutput {
	output := &JSONOutput{
		Version: jsonVersion,
		Tokens:  make([]JSONToken, 0),
		State:   JSONState{Marks: make([]string, 0)},
		Summary: JSONSummary{ByKind: make(map[string]int)},
	}

	if scan == nil {
		return output
	}

	output.Path = scan.Path
	if len(scan.Tokens) > 0 {
		output.Tokens = make([]JSONToken, 0, len(scan.Tokens))
	}

	offset := 0
	for _, tok := range scan.Tokens {
		jsonTok := JSONToken{
			Category: tok.Category.String(),
			Kind:     tok.Kind.String(),
			Value:    tok.Value,
			Offset:   offset,
		}
		if !utf8.ValidString(tok.Value) {
			jsonTok.Raw = []byte(tok.Value)
		}
		output.Tokens = append(output.Tokens, jsonTok)
		offset += len(tok.Value)
		output.Summary.Tokens++
		output.Summary.Bytes += len(tok.Value)
		output.Summary.ByKind[tok.Kind.String()]++
	}

	output.State.Offset = scan.State.Offset
	output.State.InFence = scan.State.InFence
	for _, mark := range scan.State.Marks {
		output.State.Marks = append(output.State.Marks, mark.String())
	}

	return output
}
