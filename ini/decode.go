// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Decode stores the section's properties into the value pointed to by v,
// which is usually a pointer to a struct. Struct fields are matched to keys
// by their "ini" tag or, without a tag, by a case-insensitive match of the
// field name. Values are converted from strings as by the typed accessors.
func (s *Section) Decode(v interface{}) error {
	data := make(map[string]interface{}, s.Len())
	for k, val := range s.All() {
		data[k] = val
	}
	if err := decode(data, v); err != nil {
		return fmt.Errorf("decode ini section %q: %w", s.Name(), err)
	}
	return nil
}

// Decode stores the document into the value pointed to by v, which is
// usually a pointer to a struct with a field per section. Struct fields are
// matched to sections by their "ini" tag or, without a tag, by a
// case-insensitive match of the field name.
func (d *Document) Decode(v interface{}) error {
	data := make(map[string]interface{}, d.Len())
	for name, s := range d.All() {
		props := make(map[string]interface{}, s.Len())
		for k, val := range s.All() {
			props[k] = val
		}
		data[name] = props
	}
	if err := decode(data, v); err != nil {
		return fmt.Errorf("decode ini: %w", err)
	}
	return nil
}

func decode(data map[string]interface{}, v interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncType(decodeBool),
		WeaklyTypedInput: true,
		TagName:          "ini",
		Result:           v,
	})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}

// decodeBool converts strings to booleans using the same rules as GetBool.
func decodeBool(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
		return data, nil
	}
	str := reflect.ValueOf(data).String()
	b, ok := parseBool(str)
	if !ok {
		return nil, fmt.Errorf("invalid boolean %q", str)
	}
	return b, nil
}
