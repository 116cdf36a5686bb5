package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// runCLI clears the demo environment and runs the CLI with a temp scratch dir.
func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	t.Setenv("CREATIONAL_LOG_LEVEL", "")
	t.Setenv("CREATIONAL_SCRATCH_DIR", "")

	var out, errb bytes.Buffer
	full := append([]string{"--scratch-dir", t.TempDir()}, args...)
	code = run(full, &out, &errb)
	return code, out.String(), errb.String()
}

//
// -----------------------------------------------------------------------------
// Demos
// -----------------------------------------------------------------------------

func TestRun_EachDemo(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"abstract-factory"}, "running windows\nopen excel\n---------------\nrunning linux\nopen word\n"},
		{[]string{"builder"}, "Phone{size=5.8, fps=120, focal=3, battery=3200}\nPhone{size=6.7, fps=120, focal=5, battery=4500}\n"},
		{[]string{"factory-method"}, "create a circle\ncreate a rectangle\n"},
		{[]string{"prototype"}, "lazySheep\nduoLi\nfalse\n"},
		{[]string{"prototype-deep"}, "ZhangSan\nLiSi\n"},
		{[]string{"prototype-file"}, "ZhangSan\nLiSi\n"},
	}

	for _, tc := range cases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tc.args...)
			require.Equal(t, 0, code, "stderr: %s", stderr)
			assert.Equal(t, tc.want, stdout)
		})
	}
}

func TestRun_NoArgsRunsAll(t *testing.T) {
	code, stdout, stderr := runCLI(t)
	require.Equal(t, 0, code, "stderr: %s", stderr)

	assert.True(t, strings.HasPrefix(stdout, "running windows\n"))
	assert.True(t, strings.HasSuffix(stdout, "ZhangSan\nLiSi\nZhangSan\nLiSi\n"))
	assert.Equal(t, 16, strings.Count(stdout, "\n"))
}

// TestRun_PrototypeFile_ScratchDir verifies the scratch file lands in --scratch-dir and is removed.
func TestRun_PrototypeFile_ScratchDir(t *testing.T) {
	t.Setenv("CREATIONAL_LOG_LEVEL", "")
	dir := t.TempDir()

	var out, errb bytes.Buffer
	code := run([]string{"prototype-file", "--scratch-dir", dir}, &out, &errb)
	require.Equal(t, 0, code, "stderr: %s", errb.String())

	_, err := os.Stat(filepath.Join(dir, "a.txt"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestRun_PrototypeFile_BadScratchDir(t *testing.T) {
	t.Setenv("CREATIONAL_LOG_LEVEL", "")

	var out, errb bytes.Buffer
	code := run([]string{"prototype-file", "--scratch-dir", filepath.Join(t.TempDir(), "missing")}, &out, &errb)

	assert.Equal(t, 1, code)
	assert.Empty(t, out.String())
	assert.Contains(t, errb.String(), "prototype: clone create")
}

//
// -----------------------------------------------------------------------------
// Configuration
// -----------------------------------------------------------------------------

func TestRun_InvalidLogLevelFlag(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--log-level", "loud", "builder")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `config: invalid log level "loud"`)
}

func TestRun_InvalidLogLevelEnv(t *testing.T) {
	t.Setenv("CREATIONAL_LOG_LEVEL", "loud")

	var out, errb bytes.Buffer
	code := run([]string{"builder"}, &out, &errb)
	assert.Equal(t, 1, code)
	assert.Contains(t, errb.String(), "invalid log level")
}

// TestRun_FlagOverridesEnv verifies --log-level wins over a broken environment.
func TestRun_FlagOverridesEnv(t *testing.T) {
	t.Setenv("CREATIONAL_LOG_LEVEL", "loud")

	var out, errb bytes.Buffer
	code := run([]string{"--log-level", "error", "factory-method"}, &out, &errb)
	require.Equal(t, 0, code, "stderr: %s", errb.String())
	assert.Equal(t, "create a circle\ncreate a rectangle\n", out.String())
}

// TestRun_DebugLogsGoToStderr verifies logs never reach stdout.
func TestRun_DebugLogsGoToStderr(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--log-level", "debug", "prototype")
	require.Equal(t, 0, code)

	assert.Equal(t, "lazySheep\nduoLi\nfalse\n", stdout)
	assert.Contains(t, stderr, "demo.start")
	assert.Contains(t, stderr, "demo.done")
}

//
// -----------------------------------------------------------------------------
// list / version / errors
// -----------------------------------------------------------------------------

func TestRun_List(t *testing.T) {
	code, stdout, _ := runCLI(t, "list")
	require.Equal(t, 0, code)
	assert.Equal(t,
		"abstract-factory\nbuilder\nfactory-method\nprototype\nprototype-deep\nprototype-file\n",
		stdout,
	)
}

func TestRun_ListIgnoresBrokenEnv(t *testing.T) {
	t.Setenv("CREATIONAL_LOG_LEVEL", "loud")

	var out, errb bytes.Buffer
	assert.Equal(t, 0, run([]string{"list"}, &out, &errb))
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCLI(t, "version")
	require.Equal(t, 0, code)
	assert.Equal(t, "creational dev\n", stdout)
}

func TestRun_UnknownCommand(t *testing.T) {
	code, stdout, stderr := runCLI(t, "singleton")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `unknown command "singleton"`)
}

func TestRun_ExtraArgs(t *testing.T) {
	code, _, _ := runCLI(t, "builder", "extra")
	assert.Equal(t, 1, code)
}
