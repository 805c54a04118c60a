package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command against a config path in a fresh temp dir
// unless the caller passes --config.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	if !containsFlag(args, "--config") {
		args = append([]string{"--config", filepath.Join(t.TempDir(), "tally.toml")}, args...)
	}

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func containsFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag || strings.HasPrefix(a, flag+"=") {
			return true
		}
	}
	return false
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCount(t *testing.T) {
	out, err := execute(t, "count", "add", "ADD", "subtract")
	require.NoError(t, err)
	assert.Equal(t, "Current count: 1\nCurrent count: 2\nCurrent count: 1\n", out)
}

func TestCount_NoActions(t *testing.T) {
	out, err := execute(t, "count")
	require.NoError(t, err)
	assert.Equal(t, "Current count: 0\n", out)
}

func TestCount_UnknownActionDispatchesNothing(t *testing.T) {
	out, err := execute(t, "count", "add", "multiply")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiply")
	assert.Empty(t, out)
}

func TestScenarios_Builtin(t *testing.T) {
	out, err := execute(t, "scenarios")
	require.NoError(t, err)
	assert.Contains(t, out, "PASS  Increment the counter twice")
	assert.Contains(t, out, "5 passed, 0 failed")
}

func TestScenarios_FilesAndDir(t *testing.T) {
	dir := t.TempDir()
	scenDir := filepath.Join(dir, "scenarios")
	require.NoError(t, os.Mkdir(scenDir, 0o755))
	writeFile(t, scenDir, "extra.yaml", `
name: Subtract below zero
when: [SUBTRACT]
then: {count: -1}
`)
	cfgPath := writeFile(t, dir, "tally.toml", "[scenarios]\ndir = \"scenarios\"\n")
	failing := writeFile(t, dir, "failing.yaml", `
- name: Wrong expectation
  when: [ADD]
  then: {count: 5}
`)

	out, err := execute(t, "--config", cfgPath, "scenarios", failing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 scenario(s) failed")
	assert.Contains(t, out, "PASS  Subtract below zero")
	assert.Contains(t, out, "FAIL  Wrong expectation")
	assert.Contains(t, out, "6 passed, 1 failed")
}

func TestScenarios_BrokenFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.yaml", "name: No expectation\nwhen: [ADD]\n")
	_, err := execute(t, "scenarios", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "then is required")
}

func TestDivide(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"floored quotient", []string{"9", "2"}, "4\n"},
		{"missing", []string{"", "2"}, "Division not performed. Both values are required in inputs. Try again\n"},
		{"negative", []string{"--", "-6", "2"}, "Division not performed. Invalid number provided. Try again\n"},
		{"zero divider", []string{"6", "0"}, "Division not performed. Divider cannot be zero. Try again\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"divide"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestDivide_Critical(t *testing.T) {
	out, err := execute(t, "divide", "YOLO", "2")
	require.Error(t, err)
	assert.Equal(t, "Something critical went wrong. Please reload the page.", err.Error())
	assert.Empty(t, out)
}

func TestBooks_SearchAndPage(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "tally.toml", "[catalog]\nper_page = 2\n")

	out, err := execute(t, "--config", cfgPath, "books", "--genre", "scifi")
	require.NoError(t, err)
	assert.Contains(t, out, "Frankenstein")
	assert.Contains(t, out, "Mary Shelley (1818)")
	assert.NotContains(t, out, "The Time Machine")
	assert.Contains(t, out, "Show more (3)")

	out, err = execute(t, "--config", cfgPath, "books", "--genre", "scifi", "--pages", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "The War of the Worlds")
	assert.NotContains(t, out, "Show more")
}

func TestBooks_Preview(t *testing.T) {
	out, err := execute(t, "books", "--title", "FRANK", "--preview", "frankenstein")
	require.NoError(t, err)
	assert.Contains(t, out, "A scientist builds a creature and abandons it.")

	_, err = execute(t, "books", "--preview", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `book "missing" not found`)
}

func TestBooks_NoResults(t *testing.T) {
	out, err := execute(t, "books", "--title", "zzz")
	require.NoError(t, err)
	assert.Equal(t, MessageNoResults+"\n", out)
}

func TestBooks_InvalidFilters(t *testing.T) {
	_, err := execute(t, "books", "--author", "tolkien")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown author "tolkien"`)

	_, err = execute(t, "books", "--pages", "0")
	require.Error(t, err)
}

func TestBooks_List(t *testing.T) {
	out, err := execute(t, "books", "--list")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 2)
	assert.Equal(t, "Authors:", lines[0])
	assert.Contains(t, lines[1], "All Authors")
	assert.Contains(t, out, "Genres:")
}

func TestBooks_DataFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "books.yaml", `
authors: {me: Me}
genres: {misc: Misc}
books:
  - {id: only, title: Only Book, author: me, genres: [misc], published: 2020-05-01}
`)
	out, err := execute(t, "books", "--data", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Only Book")
	assert.Contains(t, out, "Me (2020)")
}

func TestExport_Reducer(t *testing.T) {
	out, err := execute(t, "export", "reducer")
	require.NoError(t, err)

	var doc struct {
		ID      string   `json:"id"`
		Actions []string `json:"actions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "counter", doc.ID)
	assert.Equal(t, []string{"ADD", "SUBTRACT", "RESET"}, doc.Actions)
}

func TestExport_TraceToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.json")
	out, err := execute(t, "export", "trace", "--actions", "add,add,reset", "--pretty", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Store       string `json:"store"`
		Transitions []struct {
			Seq    int            `json:"seq"`
			Action string         `json:"action"`
			Next   map[string]int `json:"next"`
		} `json:"transitions"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "counter", doc.Store)
	require.Len(t, doc.Transitions, 3)
	assert.Equal(t, "RESET", doc.Transitions[2].Action)
	assert.Equal(t, 2, doc.Transitions[1].Next["count"])
	assert.Equal(t, 0, doc.Transitions[2].Next["count"])
}

func TestExport_All(t *testing.T) {
	out, err := execute(t, "export")
	require.NoError(t, err)

	var docs map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	assert.Contains(t, docs, "reducer")
	assert.Contains(t, docs, "trace")
}

func TestExport_InvalidName(t *testing.T) {
	_, err := execute(t, "export", "machine")
	assert.Error(t, err)
}

func TestConfig_Invalid(t *testing.T) {
	cfgPath := writeFile(t, t.TempDir(), "tally.toml", "[log]\nlevel = \"loud\"\n")
	_, err := execute(t, "--config", cfgPath, "count")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestVerboseLogsToErrorStream(t *testing.T) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "tally.toml"), "--verbose", "count", "add"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Current count: 1\n", out.String())
	assert.Contains(t, errOut.String(), "dispatch")
}
