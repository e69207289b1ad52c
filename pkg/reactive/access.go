package reactive

import (
	"reflect"

	"github.com/vango-dev/reflow/internal/errors"
)

// LengthKey reads the length of a slice, array or string, and of maps
// whose key type is not a string.
const LengthKey = "length"

// getKey reads key from container. Slices, arrays and strings take int
// keys, maps take keys of their key type and structs take exported field
// names. Missing map keys and out-of-range indexes read as nil.
func getKey(container, key any) any {
	if container == nil {
		return nil
	}
	rv := reflect.ValueOf(container)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.String:
		if key == LengthKey {
			return rv.Len()
		}
		i, ok := intKey(key)
		if !ok {
			panic(unsupported(container, key))
		}
		if i < 0 || i >= rv.Len() {
			return nil
		}
		if rv.Kind() == reflect.String {
			return string(rv.String()[i])
		}
		return rv.Index(i).Interface()

	case reflect.Map:
		mk, ok := convert(key, rv.Type().Key())
		if !ok {
			if key == LengthKey {
				return rv.Len()
			}
			panic(unsupported(container, key))
		}
		v := rv.MapIndex(mk)
		if !v.IsValid() {
			return nil
		}
		return v.Interface()

	case reflect.Struct:
		f := field(rv, key)
		if !f.IsValid() {
			panic(unsupported(container, key))
		}
		return f.Interface()
	}
	panic(unsupported(container, key))
}

// setKey stores child at key in container and returns the container.
// Maps, slices and pointed-to values are written in place; arrays and
// structs held by value are copied.
func setKey(container, key, child any) any {
	if container == nil {
		panic(unsupported(container, key))
	}
	rv := reflect.ValueOf(container)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			panic(unsupported(container, key))
		}
		setIn(rv.Elem(), container, key, child)
		return container
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			rv = reflect.MakeMap(rv.Type())
		}
		setIn(rv, container, key, child)
		return rv.Interface()
	case reflect.Slice:
		setIn(rv, container, key, child)
		return container
	case reflect.Array, reflect.Struct:
		cp := reflect.New(rv.Type()).Elem()
		cp.Set(rv)
		setIn(cp, container, key, child)
		return cp.Interface()
	}
	panic(unsupported(container, key))
}

// setIn writes child into the addressable or map value rv.
func setIn(rv reflect.Value, container, key, child any) {
	switch rv.Kind() {
	case reflect.Map:
		mk, ok := convert(key, rv.Type().Key())
		if !ok {
			panic(unsupported(container, key))
		}
		if rv.IsNil() {
			rv.Set(reflect.MakeMap(rv.Type()))
		}
		rv.SetMapIndex(mk, mustConvert(child, rv.Type().Elem(), container, key))

	case reflect.Slice, reflect.Array:
		i, ok := intKey(key)
		if !ok || i < 0 || i >= rv.Len() {
			panic(unsupported(container, key).WithField("length", rv.Len()))
		}
		rv.Index(i).Set(mustConvert(child, rv.Type().Elem(), container, key))

	case reflect.Struct:
		f := field(rv, key)
		if !f.IsValid() || !f.CanSet() {
			panic(unsupported(container, key))
		}
		f.Set(mustConvert(child, f.Type(), container, key))

	default:
		panic(unsupported(container, key))
	}
}

func field(rv reflect.Value, key any) reflect.Value {
	name, ok := key.(string)
	if !ok {
		return reflect.Value{}
	}
	sf, ok := rv.Type().FieldByName(name)
	if !ok || !sf.IsExported() {
		return reflect.Value{}
	}
	return rv.FieldByIndex(sf.Index)
}

func intKey(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case int64:
		return int(k), true
	case int32:
		return int(k), true
	case uint:
		return int(k), true
	}
	return 0, false
}

// convert returns v as a value of type t. Only assignment and
// conversions within the same kind are allowed, so 1 never becomes "1".
func convert(v any, t reflect.Type) (reflect.Value, bool) {
	if v == nil {
		return reflect.Zero(t), true
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, true
	}
	if rv.Kind() == t.Kind() && rv.Type().ConvertibleTo(t) {
		return rv.Convert(t), true
	}
	return reflect.Value{}, false
}

func mustConvert(v any, t reflect.Type, container, key any) reflect.Value {
	out, ok := convert(v, t)
	if !ok {
		panic(unsupported(container, key).WithField("type", t.String()))
	}
	return out
}

func unsupported(container, key any) *errors.Error {
	return errors.New("R010").
		WithField("container", reflect.TypeOf(container)).
		WithField("key", key)
}
