package listdiff

import "reflect"

// KeyField returns a key function that reads the struct field or map
// entry called name. Items without the field, and nil field values, are
// keyed by the item itself.
func KeyField[T any](name string) func(T) any {
	return func(item T) any {
		rv := reflect.ValueOf(any(item))
		for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
			if rv.IsNil() {
				return nil
			}
			rv = rv.Elem()
		}
		var v reflect.Value
		switch rv.Kind() {
		case reflect.Struct:
			sf, ok := rv.Type().FieldByName(name)
			if !ok || !sf.IsExported() {
				return nil
			}
			v = rv.FieldByIndex(sf.Index)
		case reflect.Map:
			if rv.Type().Key().Kind() != reflect.String {
				return nil
			}
			v = rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		default:
			return nil
		}
		if !v.IsValid() {
			return nil
		}
		switch v.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if v.IsNil() {
				return nil
			}
		}
		return v.Interface()
	}
}
