package batch

import (
	"fmt"
	"reflect"

	"probcalc/internal/errors"
)

// visit identifies a pointer, slice or map already walked. Slices sharing a
// backing array but differing in length are distinct visits.
type visit struct {
	ptr uintptr
	typ reflect.Type
	len int
}

// checkTransferable rejects values that would hand a worker a live runtime
// handle instead of plain data: functions, channels and unsafe pointers,
// at any depth. Self-referencing pointers, slices and maps are walked once.
func checkTransferable(v any) error {
	if v == nil {
		return nil
	}
	return walkTransferable(reflect.ValueOf(v), reflect.TypeOf(v).String(), map[visit]bool{})
}

// markVisited records v and reports whether it had been walked before
func markVisited(v reflect.Value, seen map[visit]bool) bool {
	length := 0
	if v.Kind() == reflect.Slice {
		length = v.Len()
	}
	key := visit{ptr: v.Pointer(), typ: v.Type(), len: length}
	if seen[key] {
		return true
	}
	seen[key] = true
	return false
}

func walkTransferable(v reflect.Value, path string, seen map[visit]bool) error {
	if !v.IsValid() {
		return nil
	}

	switch v.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if v.IsNil() {
			return nil
		}
		return errors.SerializationError(fmt.Sprintf("%s holds a %s, which cannot be handed to a worker", path, v.Kind()))

	case reflect.Ptr:
		if v.IsNil() || markVisited(v, seen) {
			return nil
		}
		return walkTransferable(v.Elem(), path, seen)

	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return walkTransferable(v.Elem(), path, seen)

	case reflect.Slice, reflect.Array:
		if !containsHandles(v.Type().Elem()) {
			return nil
		}
		if v.Kind() == reflect.Slice && (v.IsNil() || markVisited(v, seen)) {
			return nil
		}
		for i := 0; i < v.Len(); i++ {
			if err := walkTransferable(v.Index(i), path+"[]", seen); err != nil {
				return err
			}
		}

	case reflect.Map:
		if !containsHandles(v.Type().Key()) && !containsHandles(v.Type().Elem()) {
			return nil
		}
		if v.IsNil() || markVisited(v, seen) {
			return nil
		}
		iter := v.MapRange()
		for iter.Next() {
			if err := walkTransferable(iter.Key(), path+"{key}", seen); err != nil {
				return err
			}
			if err := walkTransferable(iter.Value(), path+"{}", seen); err != nil {
				return err
			}
		}

	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if err := walkTransferable(v.Field(i), path+"."+v.Type().Field(i).Name, seen); err != nil {
				return err
			}
		}
	}

	return nil
}

// containsHandles reports whether values of t may hold a function, channel
// or unsafe pointer. Scalar element types let slices skip the per-element walk.
func containsHandles(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array, reflect.Slice:
		return containsHandles(t.Elem())
	default:
		return true
	}
}
