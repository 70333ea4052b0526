// SPDX-License-Identifier: MIT

// Package lutgen builds the engine's lookup tables with float64 math and
// renders them as the Go source committed in package lut.
//
// Generation runs offline (go generate in package lut); the engine itself
// never touches floating point. Every entry is math.Round(2^16 · f(x)), i.e.
// rounded half away from zero, and the evaluation order of each x is part
// of the output: changing it can move an entry by one LSB.
package lutgen

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/katalvlaran/fixedpoint/lut"
)

// perRow is the number of entries per source line.
const perRow = 12

// Tables holds freshly computed table data.
type Tables struct {
	Sin      []int32
	Tan      []int32
	Atan     []int32
	Asin     []int32
	AsinTail []int32 // TailSize real samples plus one padding sample per side
}

func q16(v float64) int32 { return int32(math.Round(v * lut.One)) }

// TailStart returns round(2^16 · sin 75°), the first |x| served by the
// asin tail table.
func TailStart() int32 { return q16(math.Sin(75 * math.Pi / 180)) }

// tailX returns the j-th tail abscissa; j = -1 is the leading padding point.
func tailX(start int32, j int) float64 {
	return (float64(start) + float64(j*(lut.One-int(start)))/(lut.TailSize-1)) / lut.One
}

// Build computes every table.
func Build() Tables {
	const last = lut.Size - 1
	t := Tables{
		Sin:      make([]int32, lut.Size),
		Tan:      make([]int32, lut.Size),
		Atan:     make([]int32, lut.Size),
		Asin:     make([]int32, lut.Size),
		AsinTail: make([]int32, lut.TailSize+2),
	}
	for i := 0; i < lut.Size; i++ {
		x := float64(i)
		t.Sin[i] = q16(math.Sin(x / last * math.Pi / 2))
		t.Tan[i] = q16(math.Tan(x / lut.Size * math.Pi / 2))
		t.Atan[i] = q16(math.Atan(x / last))
		t.Asin[i] = q16(math.Asin(math.Max(-1, math.Min(1, -1+2*x/last))))
	}

	start := TailStart()
	for j := 0; j < lut.TailSize; j++ {
		t.AsinTail[j+1] = q16(math.Asin(math.Min(1, tailX(start, j))))
	}
	// The leading pad is a real sample below TailStart; asin has no
	// samples past 1, so the trailing pad continues the last segment.
	t.AsinTail[0] = q16(math.Asin(tailX(start, -1)))
	t.AsinTail[lut.TailSize+1] = 2*t.AsinTail[lut.TailSize] - t.AsinTail[lut.TailSize-1]

	return t
}

// ---------- rendering ----------

type block struct {
	Doc  string
	Name string
	Size string
	Rows []string
}

const fileTemplate = `// Code generated by lutgen. DO NOT EDIT.

package lut
{{range .}}
{{.Doc}}
var {{.Name}} = [{{.Size}}]int32{
{{range .Rows}}	{{.}},
{{end}}}
{{end}}`

var tmpl = template.Must(template.New("tables").Parse(fileTemplate))

func rows(data []int32) []string {
	out := make([]string, 0, (len(data)+perRow-1)/perRow)
	for i := 0; i < len(data); i += perRow {
		end := min(i+perRow, len(data))
		cells := make([]string, 0, perRow)
		for _, v := range data[i:end] {
			cells = append(cells, strconv.FormatInt(int64(v), 10))
		}
		out = append(out, strings.Join(cells, ", "))
	}

	return out
}

// Render returns the gofmt-formatted Go source of package lut's data file.
func Render(t Tables) ([]byte, error) {
	blocks := []block{
		{"// sinData[i] = round(2^16 · sin(i/4095 · π/2))", "sinData", "Size", rows(t.Sin)},
		{"// tanData[i] = round(2^16 · tan(i/4096 · π/2))", "tanData", "Size", rows(t.Tan)},
		{"// atanData[i] = round(2^16 · atan(i/4095))", "atanData", "Size", rows(t.Atan)},
		{"// asinData[i] = round(2^16 · asin(-1 + 2i/4095))", "asinData", "Size", rows(t.Asin)},
		{"// asinTailData[j+1] = round(2^16 · asin(x_j)), x_j = (TailStart + j·(2^16-TailStart)/2047) / 2^16;\n" +
			"// entries 0 and TailSize+1 are the padding samples.", "asinTailData", "TailSize + 2", rows(t.AsinTail)},
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, blocks); err != nil {
		return nil, fmt.Errorf("lutgen: render: %w", err)
	}
	src, err := imports.Process("tables_gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("lutgen: format: %w", err)
	}

	return src, nil
}
