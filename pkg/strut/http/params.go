package http

import (
	"fmt"
	"reflect"
)

// AddParameters merges every field of source into the unified parameter map.
// source must be iterable: a map with string keys, a struct, or a pointer to
// either. Scalars are rejected with ErrorInvalidSource.
func (r *Request) AddParameters(source any, overwrite bool) error {
	value := reflect.ValueOf(source)

	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ErrorInvalidSource{Kind: "nil"}
		}

		value = value.Elem()
	}

	switch value.Kind() {
	case reflect.Map:
		return r.addMapParameters(value, overwrite)
	case reflect.Struct:
		return r.addStructParameters(value, overwrite)
	default:
		return ErrorInvalidSource{Kind: value.Kind().String()}
	}
}

func (r *Request) addMapParameters(value reflect.Value, overwrite bool) error {
	for _, key := range value.MapKeys() {
		if key.Kind() != reflect.String {
			return ErrorInvalidParam{Params: []string{fmt.Sprint(key.Interface())}}
		}

		if _, err := r.AddParameter(key.String(), value.MapIndex(key).Interface(), overwrite); err != nil {
			return err
		}
	}

	return nil
}

func (r *Request) addStructParameters(value reflect.Value, overwrite bool) error {
	t := value.Type()

	for i := 0; i < value.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		if _, err := r.AddParameter(field.Name, value.Field(i).Interface(), overwrite); err != nil {
			return err
		}
	}

	return nil
}

// AddParameter records a single parameter. With overwrite disabled an existing key
// is left untouched and the call reports false.
func (r *Request) AddParameter(name string, value any, overwrite bool) (bool, error) {
	if name == "" {
		return false, ErrorInvalidParam{Params: []string{name}}
	}

	if !overwrite {
		if _, exists := r.params[name]; exists {
			return false, nil
		}
	}

	r.params[name] = value

	return true, nil
}
