// FILE: lixenwraith/settings/register.go
package settings

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// ApplyDefaults seeds the persistent document from a struct of defaults.
// Every exported leaf field is stored with SetIfEmpty under its dotted path,
// built from the prefix and the `toml` tags (or field names) of the enclosing
// structs. Existing keys are never overwritten. It returns the keys it set.
func (s *Store) ApplyDefaults(prefix string, defaults any) ([]string, error) {
	v := reflect.ValueOf(defaults)

	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, fmt.Errorf("%w: ApplyDefaults requires a non-nil struct pointer or value", ErrInvalidTarget)
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: ApplyDefaults requires a struct or struct pointer, got %T", ErrInvalidTarget, defaults)
	}

	var (
		set    []string
		errors []string
	)
	s.applyFields(v, prefix, &set, &errors)

	if len(errors) > 0 {
		return set, fmt.Errorf("failed to apply %d default(s): %s", len(errors), strings.Join(errors, "; "))
	}
	return set, nil
}

func (s *Store) applyFields(v reflect.Value, pathPrefix string, set, errors *[]string) {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("toml")
		if tag == "-" {
			continue
		}

		key := field.Name
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			key = name
		}
		currentPath := joinPath(pathPrefix, key)

		// Nested structs contribute dotted keys; time.Time and Value are leaves.
		nested := fieldValue
		if nested.Kind() == reflect.Ptr && nested.Type().Elem().Kind() == reflect.Struct {
			if nested.IsNil() {
				continue
			}
			nested = nested.Elem()
		}
		if nested.Kind() == reflect.Struct && !isLeafStruct(nested.Type()) {
			s.applyFields(nested, currentPath, set, errors)
			continue
		}

		value, err := ValueOf(fieldValue.Interface())
		if err != nil {
			*errors = append(*errors, fmt.Sprintf("field %s (path %s): %v", field.Name, currentPath, err))
			continue
		}
		if SetIfEmpty(s, currentPath, value) {
			*set = append(*set, currentPath)
		}
	}
}

func isLeafStruct(t reflect.Type) bool {
	return t == reflect.TypeOf(time.Time{}) || t == reflect.TypeOf(Value{})
}
