// SPDX-License-Identifier: MIT

package width

// Bits is the constraint satisfied by the width markers W0 … W32.
// The unexported method seals the set: no other package can add a width,
// so every generic instantiation is bounded to 0..32 bits at compile time.
type Bits interface {
	// Bits reports the width the marker stands for.
	Bits() uint
	marker()
}

// Of returns the width denoted by the marker type W.
// The marker is a zero-size value, so the call never allocates.
func Of[W Bits]() uint {
	var w W
	return w.Bits()
}

// Width markers. Each is a zero-size type standing for a bit width.
type (
	W0 struct{}
	W1 struct{}
	W2 struct{}
	W3 struct{}
	W4 struct{}
	W5 struct{}
	W6 struct{}
	W7 struct{}
	W8 struct{}
	W9 struct{}
	W10 struct{}
	W11 struct{}
	W12 struct{}
	W13 struct{}
	W14 struct{}
	W15 struct{}
	W16 struct{}
	W17 struct{}
	W18 struct{}
	W19 struct{}
	W20 struct{}
	W21 struct{}
	W22 struct{}
	W23 struct{}
	W24 struct{}
	W25 struct{}
	W26 struct{}
	W27 struct{}
	W28 struct{}
	W29 struct{}
	W30 struct{}
	W31 struct{}
	W32 struct{}
)

func (W0) Bits() uint { return 0 }
func (W1) Bits() uint { return 1 }
func (W2) Bits() uint { return 2 }
func (W3) Bits() uint { return 3 }
func (W4) Bits() uint { return 4 }
func (W5) Bits() uint { return 5 }
func (W6) Bits() uint { return 6 }
func (W7) Bits() uint { return 7 }
func (W8) Bits() uint { return 8 }
func (W9) Bits() uint { return 9 }
func (W10) Bits() uint { return 10 }
func (W11) Bits() uint { return 11 }
func (W12) Bits() uint { return 12 }
func (W13) Bits() uint { return 13 }
func (W14) Bits() uint { return 14 }
func (W15) Bits() uint { return 15 }
func (W16) Bits() uint { return 16 }
func (W17) Bits() uint { return 17 }
func (W18) Bits() uint { return 18 }
func (W19) Bits() uint { return 19 }
func (W20) Bits() uint { return 20 }
func (W21) Bits() uint { return 21 }
func (W22) Bits() uint { return 22 }
func (W23) Bits() uint { return 23 }
func (W24) Bits() uint { return 24 }
func (W25) Bits() uint { return 25 }
func (W26) Bits() uint { return 26 }
func (W27) Bits() uint { return 27 }
func (W28) Bits() uint { return 28 }
func (W29) Bits() uint { return 29 }
func (W30) Bits() uint { return 30 }
func (W31) Bits() uint { return 31 }
func (W32) Bits() uint { return 32 }

func (W0) marker() {}
func (W1) marker() {}
func (W2) marker() {}
func (W3) marker() {}
func (W4) marker() {}
func (W5) marker() {}
func (W6) marker() {}
func (W7) marker() {}
func (W8) marker() {}
func (W9) marker() {}
func (W10) marker() {}
func (W11) marker() {}
func (W12) marker() {}
func (W13) marker() {}
func (W14) marker() {}
func (W15) marker() {}
func (W16) marker() {}
func (W17) marker() {}
func (W18) marker() {}
func (W19) marker() {}
func (W20) marker() {}
func (W21) marker() {}
func (W22) marker() {}
func (W23) marker() {}
func (W24) marker() {}
func (W25) marker() {}
func (W26) marker() {}
func (W27) marker() {}
func (W28) marker() {}
func (W29) marker() {}
func (W30) marker() {}
func (W31) marker() {}
func (W32) marker() {}
