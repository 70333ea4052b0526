// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixedpoint"
	"github.com/katalvlaran/fixedpoint/conformance"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { fixedpoint.SetLogger(nil) })

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestParse(t *testing.T) {
	out, err := execute(t, "parse", "q8.8", "1.5")
	require.NoError(t, err)
	assert.Contains(t, out, "value  1.5\n")
	assert.Contains(t, out, "raw    0x0180\n")
	assert.Contains(t, out, "bytes  80 01\n")
	assert.Contains(t, out, `json   "384"`)

	out, err = execute(t, "parse", "int8", "200")
	require.NoError(t, err)
	assert.Contains(t, out, "value  -56\n", "integers wrap")

	_, err = execute(t, "parse", "q8.8", "abc")
	require.ErrorIs(t, err, fixedpoint.ErrFormat)

	_, err = execute(t, "parse", "q99.1", "1")
	require.Error(t, err)
}

func TestEval(t *testing.T) {
	out, err := execute(t, "eval", "sin", "q8.8", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "value  0.83984375\n")

	out, err = execute(t, "eval", "atan2", "q8.8", "1", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "raw    0x00c9\n")

	out, err = execute(t, "eval", "sqrt", "uint16", "144")
	require.NoError(t, err)
	assert.Contains(t, out, "value  12\n")

	_, err = execute(t, "eval", "atan2", "q8.8", "1")
	require.ErrorIs(t, err, fixedpoint.ErrFormat)

	_, err = execute(t, "eval", "sin", "int8", "1", "2", "3")
	require.Error(t, err)

	_, err = execute(t, "eval", "cosh", "q8.8", "1")
	require.Error(t, err)
}

func TestDigest(t *testing.T) {
	args := []string{"digest", "--widths", "8,16", "--samples", "16", "--functions", "sin,sqrt"}

	out, err := execute(t, append(args, "--json")...)
	require.NoError(t, err)
	var rep conformance.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, []uint{8, 16}, rep.Widths)
	require.Len(t, rep.Functions, 2)
	assert.Equal(t, "sin", rep.Functions[0].Name)

	text, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, text, "digest "+rep.Digest+"\n")

	_, err = execute(t, "digest", "--widths", "40")
	require.Error(t, err)

	_, err = execute(t, "digest", "--samples", "0")
	require.Error(t, err)
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "4,096 entries")
	assert.Contains(t, out, "683,565,276")
	assert.Contains(t, out, "tables    ok")
}

func TestLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "info")
	require.Error(t, err)
}
