// SPDX-License-Identifier: MIT

package conformance_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/fixedpoint/conformance"
)

// small keeps sweeps fast while still crossing the retro/interpolated
// boundaries of the engine.
func small(extra ...conformance.Option) []conformance.Option {
	return append([]conformance.Option{
		conformance.WithWidths(2, 8, 14, 15, 16, 31),
		conformance.WithSamples(64),
	}, extra...)
}

type SweepSuite struct {
	suite.Suite
	base conformance.Report
}

func (s *SweepSuite) SetupSuite() {
	rep, err := conformance.Run(context.Background(), small()...)
	s.Require().NoError(err)
	s.base = rep
}

func (s *SweepSuite) TestShape() {
	s.Equal(conformance.Functions(), names(s.base))
	s.Equal([]uint{2, 8, 14, 15, 16, 31}, s.base.Widths)
	s.Equal(int64(conformance.DefaultSeed), s.base.Seed)
	s.Len(s.base.Digest, 64)
	for _, fd := range s.base.Functions {
		s.Len(fd.Sum, 64, fd.Name)
		s.Greater(fd.Evaluations, 6*3*64, fd.Name)
	}
	s.Equal(sumEvaluations(s.base), s.base.Evaluations())
}

func (s *SweepSuite) TestDeterministic() {
	again, err := conformance.Run(context.Background(), small()...)
	s.Require().NoError(err)
	s.Equal(s.base, again)
}

func (s *SweepSuite) TestSeedSensitivity() {
	other, err := conformance.Run(context.Background(), small(conformance.WithSeed(2))...)
	s.Require().NoError(err)
	s.NotEqual(s.base.Digest, other.Digest)

	zero, err := conformance.Run(context.Background(), small(conformance.WithSeed(0))...)
	s.Require().NoError(err)
	s.Equal(s.base.Digest, zero.Digest, "seed 0 selects the default seed")
}

func (s *SweepSuite) TestSamplesChangeDigest() {
	more, err := conformance.Run(context.Background(), small(conformance.WithSamples(65))...)
	s.Require().NoError(err)
	s.NotEqual(s.base.Digest, more.Digest)
}

// Restricting the function list keeps each function's own stream, so the
// per-function sums match the full sweep.
func (s *SweepSuite) TestFunctionsAreIndependent() {
	sub, err := conformance.Run(context.Background(), small(conformance.WithFunctions("atan2", "sin"))...)
	s.Require().NoError(err)
	s.Require().Len(sub.Functions, 2)
	s.Equal("atan2", sub.Functions[0].Name)
	s.Equal(find(s.base, "atan2"), sub.Functions[0])
	s.Equal(find(s.base, "sin"), sub.Functions[1])
	s.NotEqual(s.base.Digest, sub.Digest)
}

func (s *SweepSuite) TestReportJSON() {
	data, err := json.Marshal(s.base)
	s.Require().NoError(err)

	var back conformance.Report
	s.Require().NoError(json.Unmarshal(data, &back))
	s.Equal(s.base, back)
	s.Contains(string(data), `"sha256":"`+s.base.Digest+`"`)
}

func TestSweepSuite(t *testing.T) {
	suite.Run(t, new(SweepSuite))
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := conformance.Run(ctx, small()...)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_LogsSummary(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	rep, err := conformance.Run(context.Background(), small(conformance.WithFunctions("sqrt"), conformance.WithLogger(l))...)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "conformance sweep")
	assert.Contains(t, buf.String(), "sha256="+rep.Digest)
	assert.Contains(t, buf.String(), "function=sqrt")
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { conformance.WithWidths() })
	assert.Panics(t, func() { conformance.WithWidths(1) })
	assert.Panics(t, func() { conformance.WithWidths(8, 32) })
	assert.Panics(t, func() { conformance.WithFunctions() })
	assert.Panics(t, func() { conformance.WithFunctions("cosh") })
	assert.Panics(t, func() { conformance.WithFunctions("sin", "sin") })
	assert.Panics(t, func() { conformance.WithSamples(0) })
	assert.NotPanics(t, func() { conformance.WithWidths(31, 2, 2) })
}

func TestWidths_SortedAndDeduplicated(t *testing.T) {
	rep, err := conformance.Run(context.Background(),
		conformance.WithWidths(16, 8, 16),
		conformance.WithFunctions("cos"),
		conformance.WithSamples(1),
	)
	require.NoError(t, err)
	assert.Equal(t, []uint{8, 16}, rep.Widths)
}

func TestDefaultWidths(t *testing.T) {
	ws := conformance.DefaultWidths()
	require.Len(t, ws, 30)
	assert.Equal(t, uint(2), ws[0])
	assert.Equal(t, uint(31), ws[len(ws)-1])
}

func names(r conformance.Report) []string {
	out := make([]string, len(r.Functions))
	for i, fd := range r.Functions {
		out[i] = fd.Name
	}

	return out
}

func find(r conformance.Report, name string) conformance.FunctionDigest {
	for _, fd := range r.Functions {
		if fd.Name == name {
			return fd
		}
	}

	return conformance.FunctionDigest{}
}

func sumEvaluations(r conformance.Report) int {
	total := 0
	for _, fd := range r.Functions {
		total += fd.Evaluations
	}

	return total
}
