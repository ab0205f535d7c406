package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdtype/internal/cli"
	"github.com/yaklabco/mdtype/pkg/reporter"
)

const testDocument = "# Hi *x*\n\n```go\nfmt.Println(\"**\")\n```\n- <em>item</em>\n"

// runCLI executes the root command with a private config file and returns
// stdout and the command error.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), ".mdtype.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("color: never\n"), 0o644))

	cmd := cli.NewRootCommand(testInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", cfgFile}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIntegration_ScanText(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "", "scan", "--no-summary", writeDocument(t, "# Hi *x*"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)

	want := []struct {
		offset int
		kind   string
		value  string
	}{
		{0, "line", "# "},
		{2, "default", "H"},
		{3, "default", "i"},
		{4, "whitespace", " "},
		{5, "open", "*"},
		{6, "default", "x"},
		{7, "close", "*"},
	}
	for i, w := range want {
		fields := strings.SplitN(strings.TrimLeft(lines[i], " "), "  ", 2)
		require.Len(t, fields, 2, lines[i])
		assert.Equal(t, strconv.Itoa(w.offset), fields[0])

		rest := strings.TrimLeft(fields[1], " ")
		kind, value, ok := strings.Cut(rest, " ")
		require.True(t, ok, lines[i])
		assert.Equal(t, w.kind, kind)
		assert.Equal(t, strconv.Quote(w.value), strings.TrimLeft(value, " "))
	}
}

func TestIntegration_ScanStdinJSON(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, testDocument, "scan", "--format", "json", "-")
	require.NoError(t, err)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &output))

	assert.Equal(t, "<stdin>", output.Path)
	assert.False(t, output.State.InFence)
	assert.Empty(t, output.State.Marks)

	var joined strings.Builder
	kinds := map[string]bool{}
	for _, tok := range output.Tokens {
		joined.WriteString(tok.Text())
		kinds[tok.Kind+":"+tok.Value] = true
	}
	assert.Equal(t, testDocument, joined.String(), "tokens concatenate to the input")
	assert.True(t, kinds["line:```go\n"], "fence line is one token")
	assert.True(t, kinds["line:- "])
	assert.True(t, kinds["open:<em>"])
	assert.True(t, kinds["close:</em>"])
	assert.False(t, kinds["open:**"], "marks inside a fence are display text")
}

func TestIntegration_ScanCodeUnits(t *testing.T) {
	t.Parallel()

	doc := "e\u0301\n"

	graphemes, err := runCLI(t, doc, "scan", "--format", "json")
	require.NoError(t, err)
	codeUnits, err := runCLI(t, doc, "scan", "--format", "json", "--codeunits")
	require.NoError(t, err)

	var g, c reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(graphemes), &g))
	require.NoError(t, json.Unmarshal([]byte(codeUnits), &c))

	assert.Len(t, g.Tokens, 2)
	assert.Len(t, c.Tokens, 3)
}

func TestIntegration_ScanTrimLineSpace(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "## T", "scan", "--format", "json", "--trim-line-space")
	require.NoError(t, err)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &output))
	require.GreaterOrEqual(t, len(output.Tokens), 2)
	assert.Equal(t, "##", output.Tokens[0].Value)
	assert.Equal(t, " ", output.Tokens[1].Value)
	assert.Equal(t, "whitespace", output.Tokens[1].Kind)
}

func TestIntegration_ScanStrict(t *testing.T) {
	t.Parallel()

	_, err := runCLI(t, "```\nnever closed\n", "scan", "--strict", "--format", "summary")
	require.ErrorIs(t, err, cli.ErrUnterminated)
	assert.Equal(t, cli.ExitUnterminated, cli.ExitCodeFromError(err))

	_, err = runCLI(t, "*open", "scan", "--format", "summary")
	assert.NoError(t, err, "open markup is only an error with --strict")
}

func TestIntegration_ScanSummary(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "**bold", "scan", "--format", "summary")
	require.NoError(t, err)

	assert.Contains(t, out, "Open marks:")
	assert.Contains(t, out, "Scan ended with open markup")
}

func TestIntegration_ScanTable(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "a <b>", "scan", "--format", "table")
	require.NoError(t, err)

	assert.Contains(t, out, "OFFSET")
	assert.Contains(t, out, `"<b>"`)
	assert.Contains(t, out, "tokens")
}

func TestIntegration_ScanMissingFile(t *testing.T) {
	t.Parallel()

	_, err := runCLI(t, "", "scan", filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeFromError(err))
}

func TestIntegration_InvalidFormat(t *testing.T) {
	t.Parallel()

	_, err := runCLI(t, "x", "scan", "--format", "sarif")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCodeFromError(err))
}

func TestIntegration_PlayWritesDocument(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, testDocument, "play", "--delay", "0")
	require.NoError(t, err)
	assert.Equal(t, testDocument, out)
}

func TestIntegration_PlayHideSyntax(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "# Hi *x* <em>y</em>", "play", "--delay", "0", "--hide-syntax")
	require.NoError(t, err)
	assert.Equal(t, "Hi x y", out)
}

func TestIntegration_CloseTag(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "", "close-tag", `<div class="x">`, "<br/>", "</em>")
	require.NoError(t, err)
	assert.Equal(t, "</div>\n\n</em>\n", out)

	out, err = runCLI(t, "", "close-tag", "-q", "<br/>", "<p>")
	require.NoError(t, err)
	assert.Equal(t, "</p>\n", out)
}

func TestIntegration_InitThenScan(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "generated.yml")

	_, err := runCLI(t, "", "init", "--full", "--output", cfgPath)
	require.NoError(t, err)
	require.FileExists(t, cfgPath)

	_, err = runCLI(t, "", "init", "--output", cfgPath)
	require.Error(t, err, "init refuses to overwrite without --force")

	_, err = runCLI(t, "", "init", "--force", "--output", cfgPath)
	require.NoError(t, err)

	cmd := cli.NewRootCommand(testInfo())
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("*x*"))
	cmd.SetArgs([]string{"--config", cfgPath, "--color", "never", "scan", "--format", "json"})
	require.NoError(t, cmd.Execute())

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &output))
	assert.Len(t, output.Tokens, 3)
}
