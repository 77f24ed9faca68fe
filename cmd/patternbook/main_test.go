package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is t.Chdir for Go versions before 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func runCapture(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	// Run from an empty directory so no local .patternbook.yaml leaks in.
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out, errBuf bytes.Buffer
	code = run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestRun_AllDemosPlain(t *testing.T) {
	code, stdout, _ := runCapture(t, "-format", "plain")
	require.Equal(t, 0, code)

	assert.Contains(t, stdout, "adapter pattern")
	assert.Contains(t, stdout, "template method pattern")
	assert.Contains(t, stdout, "factory method pattern")
	assert.Contains(t, stdout, "PHP!!!for!!!Cats by Larry!!!Truett")
	assert.Contains(t, stdout, "Programming PHP by Rasmus Lerdorf and Kevin Tatroe")
}

func TestRun_SingleDemo(t *testing.T) {
	code, stdout, _ := runCapture(t, "-demo", "adapter", "-format", "plain")
	require.Equal(t, 0, code)

	assert.Contains(t, stdout, "AuthorAndTitle(): PHP for Cats by Larry Truett")
	assert.NotContains(t, stdout, "factory method pattern")
}

func TestRun_UnknownDemo(t *testing.T) {
	code, _, stderr := runCapture(t, "-demo", "observer")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown demo")
}

func TestRun_UnknownFormat(t *testing.T) {
	code, _, stderr := runCapture(t, "-format", "xml")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown format")
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCapture(t, "-version")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout, "patternbook "))
}

func TestRun_TerminalFormatOnBuffer(t *testing.T) {
	// Forcing terminal mode on a non-file writer still renders; width
	// falls back to the default.
	code, stdout, _ := runCapture(t, "-format", "terminal", "-theme", "mono")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Adapter Pattern")
}

func TestRun_BadFlag(t *testing.T) {
	code, _, _ := runCapture(t, "-nope")
	assert.Equal(t, 2, code)
}
