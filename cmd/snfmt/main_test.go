package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bjaus/snfmt"
	"github.com/bjaus/snfmt/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRender(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args []string
		want string
	}{
		"padded fields":   {args: []string{"%-5s|%05d", "ab", "42"}, want: "ab   |00042\n"},
		"char word":       {args: []string{"[%c]", "A"}, want: "[A]\n"},
		"char code":       {args: []string{"[%c]", "66"}, want: "[B]\n"},
		"hex input":       {args: []string{"%x", "0xff"}, want: "ff\n"},
		"long long":       {args: []string{"--", "%lld", "-1"}, want: "-1\n"},
		"32-bit long":     {args: []string{"--long-bits", "32", "%ld", "4294967295"}, want: "-1\n"},
		"64-bit long":     {args: []string{"%ld", "4294967295"}, want: "4294967295\n"},
		"pointer":         {args: []string{"%p", "0x1f"}, want: "1F\n"},
		"float":           {args: []string{"%.2f", "3.14159"}, want: "3.14\n"},
		"ebcdic float":    {args: []string{"--codepage", "ibm1047", "%.2f|%s", "2.5", "x"}, want: "2.50|x\n"},
		"star width":      {args: []string{"[%*d]", "4", "7"}, want: "[   7]\n"},
		"truncated":       {args: []string{"--size", "5", "%s", "hello"}, want: "hell\n"},
		"zero size":       {args: []string{"--size", "0", "%s", "hello"}, want: "\n"},
		"literal percent": {args: []string{"100%%"}, want: "100%\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out, _, err := execute(t, "", append([]string{"render"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args    []string
		wantErr error
	}{
		"missing operand": {args: []string{"%d"}, wantErr: snfmt.ErrMissingArgument},
		"bad integer":     {args: []string{"%d", "abc"}, wantErr: snfmt.ErrArgumentType},
		"bad float":       {args: []string{"%f", "pi"}, wantErr: snfmt.ErrArgumentType},
		"unknown verb":    {args: []string{"%q"}, wantErr: snfmt.ErrUnknownVerb},
		"unterminated":    {args: []string{"abc%"}, wantErr: snfmt.ErrUnterminated},
		"unknown page":    {args: []string{"--codepage", "klingon", "%d", "1"}, wantErr: snfmt.ErrTranscode},
		"bad format":      {args: []string{"-o", "xml", "%d", "1"}, wantErr: report.ErrUnsupportedFormat},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out, _, err := execute(t, "", append([]string{"render"}, tt.args...)...)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, out)
		})
	}
}

func TestRenderRejectsBadFlags(t *testing.T) {
	t.Parallel()
	_, _, err := execute(t, "", "render", "--long-bits", "16", "%ld", "1")
	require.ErrorContains(t, err, "long bits")

	_, _, err = execute(t, "", "render", "--size", "-1", "%d", "1")
	require.ErrorContains(t, err, "size")
}

func TestRenderLogging(t *testing.T) {
	t.Parallel()
	_, stderr, err := execute(t, "", "render", "--size", "3", "%s", "hello")
	require.NoError(t, err)
	assert.Contains(t, stderr, "output truncated")
	assert.NotContains(t, stderr, "DEBUG")

	_, stderr, err = execute(t, "", "render", "-v", "%d", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG msg=render")
	assert.Contains(t, stderr, "extra arguments ignored")
}

func TestRenderReport(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, "", "render", "-o", "json", "--size", "4", "%s", "hello")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "%s", got["template"])
	assert.Equal(t, "hel", got["output"])
	assert.EqualValues(t, 5, got["length"])
	assert.EqualValues(t, 4, got["size"])
	assert.Equal(t, true, got["truncated"])
	assert.NotContains(t, got, "error")
}

func TestOperands(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, "", "operands", "%*d %s %lld %p %.3e %%")
	require.NoError(t, err)
	assert.Equal(t, "star\nint\nstring\nint64\npointer\nfloat\n", out)

	out, _, err = execute(t, "", "operands", "-o", "csv", "%c")
	require.NoError(t, err)
	assert.Equal(t, "#,Kind\n1,char\n", out)

	_, _, err = execute(t, "", "operands", "%")
	require.ErrorIs(t, err, snfmt.ErrUnterminated)
}

const batchYAML = `
- name: padded
  template: "%-6s|%3d"
  args: [ab, 7]
  size: 16
- name: truncated
  template: "%s"
  args: [overflowing]
  size: 5
- name: null
  size: 8
- name: nil string
  template: "%s"
  args: [null]
- name: ebcdic
  template: "%.1f"
  args: [0.25]
  codepage: ibm037
- name: word width
  template: "%ld"
  args: ["0xffffffff"]
  long_bits: 32
`

func decodeResults(t *testing.T, out string) []map[string]any {
	t.Helper()
	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	return got
}

func TestBatch(t *testing.T) {
	t.Parallel()
	out, stderr, err := execute(t, batchYAML, "batch", "-", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, "case failed")

	got := decodeResults(t, out)
	require.Len(t, got, 6)

	assert.Equal(t, "padded", got[0]["name"])
	assert.Equal(t, "ab    |  7", got[0]["output"])
	assert.Equal(t, false, got[0]["truncated"])

	assert.Equal(t, "over", got[1]["output"])
	assert.EqualValues(t, 11, got[1]["length"])
	assert.Equal(t, true, got[1]["truncated"])

	assert.Equal(t, snfmt.NullTemplate, got[2]["output"])

	assert.EqualValues(t, -1, got[3]["length"])
	assert.Contains(t, got[3]["error"], "nil string")

	assert.Equal(t, "0.2", got[4]["output"])
	assert.Equal(t, "-1", got[5]["output"])
}

func TestBatchFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- template: \"%05.1f\"\n  args: [2.25]\n"), 0o600))

	out, _, err := execute(t, "", "batch", path, "-o", "tsv")
	require.NoError(t, err)
	assert.Equal(t, "Name\tTemplate\tOutput\tLength\tSize\tTruncated\tError\n\t%05.1f\t002.2\t5\t256\tfalse\t\n", out)
}

func TestBatchTable(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, "- name: one\n  template: hi\n", "batch", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "│ one  │ hi       │ hi     │")
}

func TestBatchErrors(t *testing.T) {
	t.Parallel()
	_, _, err := execute(t, "- name: x\n  template: \"%d\"\n", "batch", "-", "--strict")
	require.ErrorContains(t, err, "1 of 1 cases failed")

	_, _, err = execute(t, "- nmae: typo\n", "batch", "-")
	require.ErrorContains(t, err, "nmae")

	_, _, err = execute(t, "", "batch", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	out, _, err := execute(t, "", "batch", "-", "-o", "csv")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCoerce(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		op   snfmt.Operand
		in   string
		want any
	}{
		"string":      {op: snfmt.OperandString, in: "42", want: "42"},
		"int":         {op: snfmt.OperandInt, in: "-42", want: int64(-42)},
		"octal":       {op: snfmt.OperandInt, in: "0o17", want: int64(15)},
		"large":       {op: snfmt.OperandInt64, in: "18446744073709551615", want: uint64(18446744073709551615)},
		"star":        {op: snfmt.OperandStar, in: "3", want: int64(3)},
		"char byte":   {op: snfmt.OperandChar, in: "z", want: byte('z')},
		"char number": {op: snfmt.OperandChar, in: "7", want: int64(7)},
		"float":       {op: snfmt.OperandFloat, in: "1e3", want: 1000.0},
		"pointer":     {op: snfmt.OperandPointer, in: "0x10", want: uintptr(16)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := coerce(tt.op, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
