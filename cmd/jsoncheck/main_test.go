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

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func runCLI(t *testing.T, vars map[string]string, stdin string, args ...string) (string, string, int) {
	t.Helper()
	stdout := bytes.Buffer{}
	stderr := bytes.Buffer{}
	code := run(args, strings.NewReader(stdin), &stdout, &stderr, env(vars))
	return stdout.String(), stderr.String(), code
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func request(t *testing.T, files ...string) string {
	t.Helper()
	payload, err := json.Marshal(map[string]any{"command": "check", "files": files})
	require.NoError(t, err)
	return string(payload)
}

func TestPluginValidFile(t *testing.T) {
	dir := t.TempDir()
	ok := writeFile(t, dir, "ok.json", "{\n  \"a\": 1\n}\n")
	readme := writeFile(t, dir, "README.md", "# not json")

	out, _, code := runCLI(t, nil, request(t, ok, readme))
	assert.Equal(t, 0, code)
	assert.Equal(t, `{"success":true,"output":"All 1 JSON file(s) are valid and properly formatted"}`+"\n", out)
}

func TestPluginSyntaxError(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.json", "{a:1}")

	out, _, code := runCLI(t, nil, request(t, bad))
	assert.Equal(t, 1, code)

	resp := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["error"], bad+": Invalid JSON at line 1, column 2")
	assert.Equal(t, "Fix JSON syntax errors in the listed files", resp["suggestion"])
}

func TestPluginFormattingWithSortKeys(t *testing.T) {
	dir := t.TempDir()
	unsorted := writeFile(t, dir, "a.json", "{\n    \"b\": 1,\n    \"a\": 2\n}")

	out, _, code := runCLI(t, map[string]string{"INDENT_SIZE": "4", "SORT_KEYS": "TRUE"}, request(t, unsorted))
	assert.Equal(t, 1, code)

	resp := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "1 file(s) need formatting", resp["error"])
	assert.Equal(t, "Run formatter with indent=4 and sort_keys=True", resp["suggestion"])
	assert.Equal(t, []any{unsorted}, resp["modified"])
	assert.Equal(t, unsorted+": Needs formatting (indent=4, sort_keys=True)", resp["output"])
}

func TestPluginInvalidIndentSize(t *testing.T) {
	out, _, code := runCLI(t, map[string]string{"INDENT_SIZE": "zero"}, request(t, "a.json"))
	assert.Equal(t, 1, code)
	assert.Equal(t, `{"success":false,"error":"Invalid INDENT_SIZE: zero","suggestion":"INDENT_SIZE must be a positive integer"}`+"\n", out)
}

func TestPluginInvalidInput(t *testing.T) {
	want := `{"success":false,"error":"Invalid input JSON","suggestion":"Plugin expects valid JSON input via stdin"}` + "\n"
	out, _, code := runCLI(t, nil, "{")
	assert.Equal(t, 1, code)
	assert.Equal(t, want, out)

	out, _, code = runCLI(t, map[string]string{"INDENT_SIZE": "zero"}, "not json")
	assert.Equal(t, 1, code)
	assert.Equal(t, want, out, "a malformed request is reported before the environment")
}

func TestPluginCRLFFileIsValid(t *testing.T) {
	dir := t.TempDir()
	crlf := writeFile(t, dir, "win.json", "{\r\n  \"a\": [\r\n    1.5\r\n  ]\r\n}\r\n")

	out, _, code := runCLI(t, nil, request(t, crlf))
	assert.Equal(t, 0, code, out)
	assert.Equal(t, `{"success":true,"output":"All 1 JSON file(s) are valid and properly formatted"}`+"\n", out)
}

func TestLintReport(t *testing.T) {
	dir := t.TempDir()
	compact := writeFile(t, dir, "compact.json", `{"a":[1,2]}`)

	out, _, code := runCLI(t, nil, "", "lint", "--print", compact)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, compact)
	assert.Contains(t, out, "1 file(s) need formatting")
	assert.Contains(t, out, "\"a\": [")

	_, _, code = runCLI(t, nil, "", "lint")
	assert.Equal(t, 1, code, "lint without paths is a usage error")
}

func TestManifestCommands(t *testing.T) {
	out, _, code := runCLI(t, map[string]string{"INDENT_SIZE": "3"}, "", "manifest", "--format", "json")
	require.Equal(t, 0, code)
	manifest := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(out), &manifest))
	assert.Equal(t, "json-validator", manifest["name"])
	assert.Equal(t, map[string]any{"INDENT_SIZE": "3", "SORT_KEYS": "false"}, manifest["environment"])

	out, _, code = runCLI(t, nil, "", "manifest")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "name: json-validator")

	dir := t.TempDir()
	writeFile(t, dir, "plugin.yaml", out)
	out, _, code = runCLI(t, nil, "", "manifest", "validate", dir)
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "ok "), out)

	broken := t.TempDir()
	writeFile(t, broken, "plugin.json", `{"name":"x","version":"1","timeout":"soon"}`)
	out, _, code = runCLI(t, nil, "", "manifest", "validate", broken)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "plugin executable is required")
	assert.Contains(t, out, "invalid timeout format")
}

func TestVersion(t *testing.T) {
	out, _, code := runCLI(t, nil, "", "version")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "jsoncheck "), out)
}
