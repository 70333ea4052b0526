// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/fixedpoint"
	"github.com/katalvlaran/fixedpoint/fixed"
	"github.com/katalvlaran/fixedpoint/intn"
	"github.com/katalvlaran/fixedpoint/width"
)

// numeric is the method set shared by Int, Uint, Fixed and UFixed.
type numeric[T any] interface {
	String() string
	Hex() string
	ToBytes() []byte
	ToJSON() ([]byte, error)

	Sin() (T, error)
	Cos() (T, error)
	Tan() (T, error)
	Asin() (T, error)
	Acos() (T, error)
	Atan() (T, error)
	Atan2(T) (T, error)
	Sqrt() T
	Exp2() T
	Exp() T
	Log2() T
	Log() T
}

// number erases the concrete instantiation so the CLI can pick a type at
// run time.
type number interface {
	String() string
	Hex() string
	ToBytes() []byte
	ToJSON() ([]byte, error)
	apply(fn string, x number) (number, error)
}

type num[T numeric[T]] struct{ v T }

func (n num[T]) String() string          { return n.v.String() }
func (n num[T]) Hex() string             { return n.v.Hex() }
func (n num[T]) ToBytes() []byte         { return n.v.ToBytes() }
func (n num[T]) ToJSON() ([]byte, error) { return n.v.ToJSON() }

// apply evaluates fn on n; x is the second operand of atan2 (n is y).
func (n num[T]) apply(fn string, x number) (number, error) {
	var (
		r   T
		err error
	)
	switch fn {
	case "sin":
		r, err = n.v.Sin()
	case "cos":
		r, err = n.v.Cos()
	case "tan":
		r, err = n.v.Tan()
	case "asin":
		r, err = n.v.Asin()
	case "acos":
		r, err = n.v.Acos()
	case "atan":
		r, err = n.v.Atan()
	case "atan2":
		other, ok := x.(num[T])
		if !ok {
			return nil, fmt.Errorf("atan2 needs a second operand of the same type: %w", fixedpoint.ErrFormat)
		}
		r, err = n.v.Atan2(other.v)
	case "sqrt":
		r = n.v.Sqrt()
	case "exp2":
		r = n.v.Exp2()
	case "exp":
		r = n.v.Exp()
	case "log2":
		r = n.v.Log2()
	case "log":
		r = n.v.Log()
	default:
		return nil, fmt.Errorf("unknown function %q", fn)
	}
	if err != nil {
		return nil, err
	}

	return num[T]{r}, nil
}

type parseFn func(string) (number, error)

func parser[T numeric[T]](p func(string) (T, error)) parseFn {
	return func(s string) (number, error) {
		v, err := p(s)
		if err != nil {
			return nil, err
		}

		return num[T]{v}, nil
	}
}

// types maps a CLI type name to its parser. Integer types read integer
// literals; Q types read decimals or 0x/0b raw patterns.
var types = map[string]parseFn{
	"int8":    parser(intn.Parse[width.W8]),
	"int10":   parser(intn.Parse[width.W10]),
	"int12":   parser(intn.Parse[width.W12]),
	"int16":   parser(intn.Parse[width.W16]),
	"int24":   parser(intn.Parse[width.W24]),
	"int31":   parser(intn.Parse[width.W31]),
	"uint8":   parser(intn.ParseUint[width.W8]),
	"uint12":  parser(intn.ParseUint[width.W12]),
	"uint16":  parser(intn.ParseUint[width.W16]),
	"uint24":  parser(intn.ParseUint[width.W24]),
	"uint31":  parser(intn.ParseUint[width.W31]),
	"q1.15":   parser(fixed.Parse[width.W1, width.W15]),
	"q4.12":   parser(fixed.Parse[width.W4, width.W12]),
	"q8.8":    parser(fixed.Parse[width.W8, width.W8]),
	"q16.16":  parser(fixed.Parse[width.W16, width.W16]),
	"q4.28":   parser(fixed.Parse[width.W4, width.W28]),
	"uq0.16":  parser(fixed.UParse[width.W0, width.W16]),
	"uq8.8":   parser(fixed.UParse[width.W8, width.W8]),
	"uq16.16": parser(fixed.UParse[width.W16, width.W16]),
	"uq0.32":  parser(fixed.UParse[width.W0, width.W32]),
}

func typeNames() []string {
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func parseAs(typ, s string) (number, error) {
	p, ok := types[typ]
	if !ok {
		return nil, fmt.Errorf("unknown type %q (want one of %v)", typ, typeNames())
	}

	return p(s)
}
