package pointrep

import (
	"fmt"
	"reflect"
	"unsafe"
)

const floatSize = unsafe.Sizeof(float32(0))

// checkFloatSlots verifies that slots [0, n) of t's memory image are
// contiguous float32 values, flattening nested structs and arrays. This
// is the one-time precondition that makes the per-call unsafe.Slice read
// in the raw strategies safe.
func checkFloatSlots(t reflect.Type, n int) error {
	slots := make(map[uintptr]struct{})
	collectFloatOffsets(t, 0, slots)
	for i := range n {
		if _, ok := slots[uintptr(i)*floatSize]; !ok {
			return fmt.Errorf("slot %d is not a float32", i)
		}
	}
	return nil
}

func collectFloatOffsets(t reflect.Type, base uintptr, slots map[uintptr]struct{}) {
	switch t.Kind() {
	case reflect.Float32:
		slots[base] = struct{}{}
	case reflect.Array:
		elem := t.Elem()
		for i := range t.Len() {
			collectFloatOffsets(elem, base+uintptr(i)*elem.Size(), slots)
		}
	case reflect.Struct:
		for i := range t.NumField() {
			f := t.Field(i)
			collectFloatOffsets(f.Type, base+f.Offset, slots)
		}
	}
}
