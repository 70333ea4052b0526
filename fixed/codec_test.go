// SPDX-License-Identifier: MIT

package fixed_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixedpoint"
	"github.com/katalvlaran/fixedpoint/fixed"
	"github.com/katalvlaran/fixedpoint/width"
)

func TestFixed_Bytes(t *testing.T) {
	x := q88(1.5)
	assert.Equal(t, 2, x.ByteCount())
	assert.Equal(t, []byte{0x80, 0x01}, x.ToBytes())

	q := fixed.FromFloat64[width.W4, width.W8](-1)
	assert.Equal(t, []byte{0x00, 0x0F}, q.ToBytes())
	back, err := fixed.FromBytes[width.W4, width.W8](q.ToBytes())
	require.NoError(t, err)
	assert.Equal(t, q, back)

	_, err = fixed.FromBytes[width.W4, width.W8]([]byte{0x00})
	require.ErrorIs(t, err, fixedpoint.ErrFormat)
	_, err = fixed.FromBytes[width.W4, width.W8]([]byte{0x00, 0x0F, 0x00})
	require.ErrorIs(t, err, fixedpoint.ErrFormat, "Fixed wants the exact length")

	b, err := q.GetByte(1)
	require.NoError(t, err)
	assert.Equal(t, byte(0x0F), b)
	_, err = q.GetByte(2)
	require.ErrorIs(t, err, fixedpoint.ErrRange)

	y, err := x.SetByte(1, 0xFF)
	require.NoError(t, err)
	assert.Equal(t, -0.5, y.Float64())

	y, old, err := x.ReplaceByte(0, 0x00)
	require.NoError(t, err)
	assert.Equal(t, byte(0x80), old)
	assert.Equal(t, q88(1), y)

	_, _, err = x.ReplaceByte(-1, 0)
	require.ErrorIs(t, err, fixedpoint.ErrRange)
}

func TestUFixed_Bytes(t *testing.T) {
	x := uq88(255.5)
	assert.Equal(t, []byte{0x80, 0xFF}, x.ToBytes())
	back, err := fixed.UFromBytes[width.W8, width.W8](x.ToBytes())
	require.NoError(t, err)
	assert.Equal(t, x, back)

	_, err = fixed.UFromBytes[width.W8, width.W8](nil)
	require.ErrorIs(t, err, fixedpoint.ErrFormat)

	y, old, err := x.ReplaceByte(1, 0x01)
	require.NoError(t, err)
	assert.Equal(t, byte(0xFF), old)
	assert.Equal(t, 1.5, y.Float64())
}

func TestFixed_Text(t *testing.T) {
	assert.Equal(t, "1.5", q88(1.5).String())
	assert.Equal(t, "-0.25", q88(-0.25).String())
	assert.Equal(t, "0.00390625", raw88(1).String())
	assert.Equal(t, "-128", fixed.MinValue[width.W8, width.W8]().String())
	assert.Equal(t, "0x0180", q88(1.5).Hex())
	assert.Equal(t, "0xff00", q88(-1).Hex())
	assert.Equal(t, "255.99609375", fixed.UMaxValue[width.W8, width.W8]().String())

	for _, tc := range []struct {
		in   string
		want int32
	}{
		{"1.5", 384},
		{"-0.25", -64},
		{"+3", 768},
		{"0x180", 384},
		{"0b1", 1},
		{"-0x100", -256},
		{"0.001953125", 1},
	} {
		x, err := fixed.Parse[width.W8, width.W8](tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, x.Raw(), tc.in)
	}

	for _, bad := range []string{"", " 1.5", "1.5 ", "abc", "Inf", "NaN", "0x", "0xZZ", "1e400"} {
		_, err := fixed.Parse[width.W8, width.W8](bad)
		require.ErrorIs(t, err, fixedpoint.ErrFormat, "%q", bad)
		_, ok := fixed.TryParse[width.W8, width.W8](bad)
		assert.False(t, ok, "%q", bad)
	}

	u, err := fixed.UParse[width.W8, width.W8]("0xFFFF")
	require.NoError(t, err)
	assert.Equal(t, fixed.UMaxValue[width.W8, width.W8](), u)
	u, ok := fixed.UTryParse[width.W8, width.W8]("2.75")
	require.True(t, ok)
	assert.Equal(t, uq88(2.75), u)
}

func TestFixed_TextRoundTrip(t *testing.T) {
	for raw := int32(-32768); raw < 32768; raw += 97 {
		x := raw88(raw)
		y, err := fixed.Parse[width.W8, width.W8](x.String())
		require.NoError(t, err)
		require.Equal(t, x, y, x.String())
	}
}

func TestFixed_CompactJSON(t *testing.T) {
	data, err := q88(1.5).ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `"384"`, string(data))

	data, err = json.Marshal(struct {
		Gain q8_8 `json:"gain"`
	}{q88(-1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"gain":"-256"}`, string(data))

	for _, in := range []string{`"384"`, `"0x180"`, `384`} {
		x, err := fixed.FromJSON[width.W8, width.W8]([]byte(in))
		require.NoError(t, err, in)
		assert.Equal(t, q88(1.5), x, in)
	}

	for _, bad := range []string{`true`, `"zz"`, `1.5`, `{`, `null`} {
		_, err := fixed.FromJSON[width.W8, width.W8]([]byte(bad))
		require.ErrorIs(t, err, fixedpoint.ErrFormat, bad)
	}

	data, err = uq88(255).ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `"65280"`, string(data))
	u, err := fixed.UFromJSON[width.W8, width.W8](data)
	require.NoError(t, err)
	assert.Equal(t, uq88(255), u)
}

func TestFixed_MetaJSON(t *testing.T) {
	data, err := q88(1.5).ToJSONWithMeta()
	require.NoError(t, err)
	assert.Equal(t, `{"intBits":8,"fracBits":8,"raw":384}`, string(data))

	x, err := fixed.FromJSONWithMeta[width.W8, width.W8](data)
	require.NoError(t, err)
	assert.Equal(t, q88(1.5), x)

	data, err = uq88(1.5).ToJSONWithMeta()
	require.NoError(t, err)
	assert.Equal(t, `{"uintBits":8,"fracBits":8,"raw":384}`, string(data))

	u, err := fixed.UFromJSONWithMeta[width.W8, width.W8](data)
	require.NoError(t, err)
	assert.Equal(t, uq88(1.5), u)

	for name, doc := range map[string]string{
		"wrong signedness": `{"uintBits":8,"fracBits":8,"raw":384}`,
		"missing intBits":  `{"fracBits":8,"raw":384}`,
		"missing fracBits": `{"intBits":8,"raw":384}`,
		"int mismatch":     `{"intBits":7,"fracBits":8,"raw":384}`,
		"frac mismatch":    `{"intBits":8,"fracBits":9,"raw":384}`,
		"raw fraction":     `{"intBits":8,"fracBits":8,"raw":1.5}`,
		"raw too large":    `{"intBits":8,"fracBits":8,"raw":32768}`,
		"raw too small":    `{"intBits":8,"fracBits":8,"raw":-32769}`,
		"not an object":    `[1,2]`,
	} {
		_, err := fixed.FromJSONWithMeta[width.W8, width.W8]([]byte(doc))
		require.ErrorIs(t, err, fixedpoint.ErrFormat, name)
	}

	_, err = fixed.UFromJSONWithMeta[width.W8, width.W8]([]byte(`{"uintBits":8,"fracBits":8,"raw":-1}`))
	require.ErrorIs(t, err, fixedpoint.ErrFormat)
}

func TestFixed_MetaJSONLogsMismatch(t *testing.T) {
	var buf bytes.Buffer
	fixedpoint.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { fixedpoint.SetLogger(nil) })

	_, err := fixed.FromJSONWithMeta[width.W16, width.W16]([]byte(`{"intBits":8,"fracBits":8,"raw":384}`))
	require.ErrorIs(t, err, fixedpoint.ErrFormat)
	assert.Contains(t, buf.String(), "json meta width mismatch")
	assert.Contains(t, buf.String(), "want_int=16")
}
