package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its standard output
// and error streams.
func execute(t *testing.T, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	t.Helper()

	stdout = &bytes.Buffer{}
	stderr = &bytes.Buffer{}

	cmd := NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	return stdout, stderr, cmd.Execute()
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

const layoutsFile = `
layouts:
  - name: fp6-e3m2
    exponent: 3
    mantissa: 2
  - name: u8
    sign: 0
    exponent: 4
    mantissa: 4
`

func writeLayouts(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "layouts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestGolden(t *testing.T) {
	layouts := writeLayouts(t, layoutsFile)

	type TC struct {
		name string
		args []string
	}

	tcs := []TC{
		{"encode_text", []string{"encode", "3.14", "1", "--", "-2.5"}},
		{"encode_hex", []string{"encode", "--hex", "-l", "double", "0.1"}},
		{"encode_json", []string{"encode", "--format", "json", "-l", "e4m3", "0.1", "240"}},
		{"decode_text", []string{"decode", "-p", "4", "01000000010010001111010111000011", "11111111100000000000000000000000"}},
		{"inspect_text", []string{"inspect", "-p", "4", "01000000010010001111010111000011"}},
		{"inspect_json", []string{"inspect", "--format", "json", "--hex", "-l", "half", "0001"}},
		{"landmark_table", []string{"landmark", "-l", "fp8-e5m2"}},
		{"layouts_text", []string{"layouts"}},
		{"layouts_custom", []string{"layouts", "--layouts-file", layouts}},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			stdout, _, err := execute(t, tc.args...)
			require.NoError(t, err)

			newGoldie(t).Assert(t, tc.name, stdout.Bytes())
		})
	}
}

func TestDecodeDefaultPrecision(t *testing.T) {
	stdout, _, err := execute(t, "decode", "01000000010010001111010111000011")
	require.NoError(t, err)
	assert.Equal(t, "3.140000104904175\n", stdout.String())
}

func TestEncodeDecodeCustomLayout(t *testing.T) {
	layouts := writeLayouts(t, layoutsFile)

	stdout, _, err := execute(t, "encode", "--layouts-file", layouts, "-l", "fp6_e3m2", "1.5", "inf")
	require.NoError(t, err)
	assert.Equal(t, "001110\n011100\n", stdout.String())

	stdout, _, err = execute(t, "decode", "--layouts-file", layouts, "-l", "u8", "01111000")
	require.NoError(t, err)
	assert.Equal(t, "1.5\n", stdout.String())
}

func TestLandmark(t *testing.T) {
	type TC struct {
		args  []string
		bits  string
		value string
	}

	tcs := []TC{
		{[]string{"landmark", "one"}, "00111111100000000000000000000000", "1"},
		{[]string{"landmark", "--negative", "zero"}, "10000000000000000000000000000000", "-0.0"},
		{[]string{"landmark", "-l", "half", "--negative", "Infinity"}, "1111110000000000", "-Infinity"},
		{[]string{"landmark", "--signaling", "--payload", "101", "nan"}, "01111111100000000000000000001011", "NaN"},
		{[]string{"landmark", "-l", "e4m3", "largest_normal"}, "01110111", "240"},
		{[]string{"landmark", "-l", "bf16", "-p", "4", "smallest above one"}, "0011111110000001", "1.0078"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v", i, tc.args), func(t *testing.T) {
			stdout, _, err := execute(t, append(tc.args, "--format", "json")...)
			require.NoError(t, err)

			var resp struct {
				Status string
				Data   struct {
					Bits  string
					Value string
				}
			}
			require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
			assert.Equal(t, "ok", resp.Status)
			assert.Equal(t, tc.bits, resp.Data.Bits)
			assert.Equal(t, tc.value, resp.Data.Value)
		})
	}
}

func TestErrors(t *testing.T) {
	type TC struct {
		name string
		args []string
		code string
		exit int
	}

	tcs := []TC{
		{"unknown layout", []string{"encode", "-l", "float7", "1"}, ErrCodeUnknownLayout, ExitCommandError},
		{"malformed numeral", []string{"encode", "1.2.3"}, ErrCodeMalformed, ExitFailure},
		{"malformed bits", []string{"decode", "0101"}, ErrCodeMalformed, ExitFailure},
		{"malformed hex", []string{"decode", "--hex", "xyz"}, ErrCodeMalformed, ExitFailure},
		{"malformed payload", []string{"landmark", "--payload", "12", "nan"}, ErrCodeMalformed, ExitFailure},
		{"out of range", []string{"decode", "-l", "f256", "0" + repeat("1", 18) + "0" + repeat("1", 236)}, ErrCodeRange, ExitFailure},
		{"unknown kind", []string{"landmark", "tiny"}, ErrCodeKind, ExitCommandError},
		{"missing layouts file", []string{"layouts", "--layouts-file", "/nonexistent/layouts.yaml"}, ErrCodeLayouts, ExitCommandError},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			stdout, stderr, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Equal(t, tc.exit, GetExitCode(err))
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), "Error ["+tc.code+"]")

			stdout, _, err = execute(t, append(tc.args, "--format", "json")...)
			require.Error(t, err)

			var resp CLIResponse
			require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
			assert.Equal(t, "error", resp.Status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.code, resp.Error.Code)
		})
	}
}

func TestInvalidLayoutsFile(t *testing.T) {
	layouts := writeLayouts(t, "layouts:\n  - name: bad\n    exponent: 1\n    mantissa: 2\n")

	_, stderr, err := execute(t, "layouts", "--layouts-file", layouts)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stderr.String(), "Error ["+ErrCodeLayouts+"]")
	assert.Contains(t, stderr.String(), "exponent width 1")
}

func TestErrorMessages(t *testing.T) {
	type TC struct {
		args    []string
		message string
	}

	tcs := []TC{
		{[]string{"encode", "-l", "float7", "1"}, `Error [E002]: binfloat: unknown layout: "float7"`},
		{[]string{"decode", "0101"}, "Error [E003]: binfloat: codec: malformed input: 4 bits for 32 bit layout s1e8m23/127"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v", i, tc.args), func(t *testing.T) {
			_, stderr, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Equal(t, tc.message+"\n", stderr.String())
		})
	}

	// Each error class appears once however deep the wrapping goes.
	_, stderr, err := execute(t, "encode", "1.2.3")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(stderr.String(), "Error [E003]: binfloat: codec: malformed input: decimal: invalid decimal numeral"), stderr.String())
	for _, class := range []string{"binfloat", "codec", "decimal"} {
		assert.Equal(t, 1, strings.Count(stderr.String(), class+":"), stderr.String())
	}
}

func TestExecute(t *testing.T) {
	type TC struct {
		args   []string
		exit   int
		stderr string
	}

	tcs := []TC{
		{[]string{"encode", "1"}, ExitSuccess, ""},
		{[]string{"decode", "0101"}, ExitFailure, "Error [E003]"},
		{[]string{"encode", "-l", "float7", "1"}, ExitCommandError, "Error [E002]"},
		{[]string{"frobnicate"}, ExitCommandError, "Error: unknown command"},
		{[]string{"landmark", "one", "two"}, ExitCommandError, "Error: accepts at most 1 arg"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v", i, tc.args), func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			cmd := NewRootCommand()
			cmd.SetOut(stdout)
			cmd.SetErr(stderr)
			cmd.SetArgs(tc.args)

			require.Equal(t, tc.exit, Execute(cmd))
			if tc.stderr == "" {
				assert.Empty(t, stderr.String())
			} else {
				assert.Contains(t, stderr.String(), tc.stderr)
			}
		})
	}
}

func TestInvalidFormat(t *testing.T) {
	stdout, stderr, err := execute(t, "layouts", "--format", "yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), `invalid format "yaml"`)
}

func TestVerbose(t *testing.T) {
	_, stderr, err := execute(t, "encode", "-v", "3.14")
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "level=DEBUG")
	assert.Contains(t, stderr.String(), "bits=01000000010010001111010111000011")

	_, stderr, err = execute(t, "encode", "3.14")
	require.NoError(t, err)
	assert.Empty(t, stderr.String())
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(fmt.Errorf("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(fmt.Errorf("wrapped: %w", WrapExitError(ExitCommandError, "E002", nil))))
}

func repeat(s string, n int) string {
	return string(bytes.Repeat([]byte(s), n))
}
