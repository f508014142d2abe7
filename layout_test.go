package headervec

import (
	"reflect"
	"testing"
	"unsafe"
)

// checkOffset verifies the offset invariant for one H/T pair: the
// element run starts at the smallest multiple of sizeof(T) that covers
// the header record.
func checkOffset[H, T any](t *testing.T, name string) {
	t.Helper()
	off := elemOffset[H, T]()
	size := elemSize[T]()
	if off*size < headerSize[H]() {
		t.Errorf("%s: offset %d does not cover header of %d bytes", name, off, headerSize[H]())
	}
	if (off-1)*size >= headerSize[H]() {
		t.Errorf("%s: offset %d is not minimal for header of %d bytes", name, off, headerSize[H]())
	}
}

func TestElemOffset(t *testing.T) {
	type threeWord struct {
		a uint32
		b uint
		c uint
	}

	checkOffset[struct{}, uint64](t, "empty header, uint64")
	checkOffset[struct{}, byte](t, "empty header, byte")
	checkOffset[uint64, byte](t, "uint64 header, byte")
	checkOffset[uint64, uint64](t, "uint64 header, uint64")
	checkOffset[threeWord, rune](t, "three-word header, rune")
	checkOffset[[5]byte, [3]byte](t, "odd sizes")
	checkOffset[byte, [16]byte](t, "large element")
}

func TestElemOffsetEmptyHeader(t *testing.T) {
	// With a zero-sized head the record is just cap and len.
	want := (2*unsafe.Sizeof(uintptr(0)) + 7) / 8
	if got := elemOffset[struct{}, uint64](); got != want {
		t.Errorf("elemOffset[struct{}, uint64]() = %d, want %d", got, want)
	}
}

func TestCapacityToBytes(t *testing.T) {
	for _, capacity := range []uintptr{1, 2, 10, 1000} {
		want := (elemOffset[uint64, uint32]() + capacity) * 4
		if got := capacityToBytes[uint64, uint32](capacity); got != want {
			t.Errorf("capacityToBytes(%d) = %d, want %d", capacity, got, want)
		}
	}
}

func TestValidateLayoutPanics(t *testing.T) {
	tests := []struct {
		name      string
		construct func()
	}{
		{"zero-sized element", func() { WithCapacity[struct{}, struct{}](1, struct{}{}) }},
		{"zero-sized element array", func() { WithCapacity[uint64, [0]uint64](1, 0) }},
		{"pointer element", func() { WithCapacity[struct{}, *int](1, struct{}{}) }},
		{"string header", func() { WithCapacity[string, int](1, "x") }},
		{"slice inside header", func() { WithCapacity[struct{ s []int }, int](1, struct{ s []int }{}) }},
		{"map element", func() { WithCapacity[int, map[int]int](1, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("expected panic for %s", tt.name)
				}
			}()
			tt.construct()
		})
	}
}

func TestContainsPointers(t *testing.T) {
	type flat struct {
		a uint32
		b [4]float64
	}
	type nested struct {
		f flat
		s string
	}

	tests := []struct {
		typ  reflect.Type
		want bool
	}{
		{reflect.TypeOf((*int)(nil)).Elem(), false},
		{reflect.TypeOf((*[8]byte)(nil)).Elem(), false},
		{reflect.TypeOf((*flat)(nil)).Elem(), false},
		{reflect.TypeOf((*complex128)(nil)).Elem(), false},
		{reflect.TypeOf((**int)(nil)).Elem(), true},
		{reflect.TypeOf((*string)(nil)).Elem(), true},
		{reflect.TypeOf((*[]byte)(nil)).Elem(), true},
		{reflect.TypeOf((*nested)(nil)).Elem(), true},
		{reflect.TypeOf((*[2]*int)(nil)).Elem(), true},
		{reflect.TypeOf((*unsafe.Pointer)(nil)).Elem(), true},
	}

	for _, tt := range tests {
		if got := containsPointers(tt.typ); got != tt.want {
			t.Errorf("containsPointers(%v) = %v, want %v", tt.typ, got, tt.want)
		}
	}
}
