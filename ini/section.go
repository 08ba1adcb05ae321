// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"
	"unicode/utf16"
)

// A Section is a named group of properties in a Document. Keys are unique
// within a section. The zero value is an empty, unnamed section. Read methods
// on a nil *Section behave as if the section were empty.
type Section struct {
	name string
	data map[string]string
}

// Name returns the section's name.
func (s *Section) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Len returns the number of properties in the section.
func (s *Section) Len() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

// Keys returns the section's keys in sorted order.
func (s *Section) Keys() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.data))
}

// All returns an iterator over the section's properties in no particular
// order. The iterator may be used more than once.
func (s *Section) All() iter.Seq2[string, string] {
	return func(yield func(key, value string) bool) {
		if s == nil {
			return
		}
		for k, v := range s.data {
			if !yield(k, v) {
				return
			}
		}
	}
}

func (s *Section) lookup(key string) (_ string, ok bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.data[key]
	return v, ok
}

// HasKey reports whether the section has a property with the given key,
// even if its value is empty.
func (s *Section) HasKey(key string) bool {
	_, ok := s.lookup(key)
	return ok
}

// HasKeyNonEmpty reports whether the section has a property with the given
// key and a non-empty value.
func (s *Section) HasKeyNonEmpty(key string) bool {
	v, _ := s.lookup(key)
	return v != ""
}

// Get returns the value of the property with the given key or def if the
// section does not have one.
func (s *Section) Get(key, def string) string {
	v, ok := s.lookup(key)
	if !ok {
		return def
	}
	return v
}

// GetUTF16 returns the value of the property as UTF-16 code units, the
// representation used by wide-character APIs. It returns def if the
// property is missing.
func (s *Section) GetUTF16(key string, def []uint16) []uint16 {
	v, ok := s.lookup(key)
	if !ok {
		return def
	}
	return utf16.Encode([]rune(v))
}

// GetBool returns the value of the property as a boolean. See the package
// documentation for the accepted values. If the property is missing or not
// a boolean, GetBool returns def.
func (s *Section) GetBool(key string, def bool) bool {
	v, ok := s.lookup(key)
	if !ok {
		return def
	}
	b, ok := parseBool(v)
	if !ok {
		return def
	}
	return b
}

// GetIntRadix returns the value of the property as an integer written in the
// given radix. A radix of 0 infers the radix from the value's prefix, as in
// Go integer literals. If the property is missing, the radix is invalid, or
// the value does not parse, GetIntRadix returns def.
func (s *Section) GetIntRadix(key string, radix, def int) int {
	v, ok := s.lookup(key)
	if !ok {
		return def
	}
	n, ok := parseInt(v, radix)
	if !ok {
		return def
	}
	return n
}

// GetInt returns the value of the property as a decimal integer or def if
// the property is missing or malformed.
func (s *Section) GetInt(key string, def int) int {
	return s.GetIntRadix(key, 10, def)
}

// GetFloat returns the value of the property as a floating-point number or
// def if the property is missing or malformed.
func (s *Section) GetFloat(key string, def float64) float64 {
	v, ok := s.lookup(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}

// Set sets the property to the given value, replacing any existing value.
func (s *Section) Set(key, value string) {
	if s.data == nil {
		s.data = make(map[string]string)
	}
	s.data[key] = value
}

// SetUTF16 sets the property to the given UTF-16 text. Unpaired surrogates
// are stored as U+FFFD.
func (s *Section) SetUTF16(key string, value []uint16) {
	s.Set(key, string(utf16.Decode(value)))
}

// SetBool sets the property to "true" or "false".
func (s *Section) SetBool(key string, value bool) {
	s.Set(key, strconv.FormatBool(value))
}

// SetIntRadix sets the property to value written in the given radix using
// lowercase letters for digits above 9. SetIntRadix panics if radix is not
// between 2 and 36.
func (s *Section) SetIntRadix(key string, radix, value int) {
	s.Set(key, strconv.FormatInt(int64(value), radix))
}

// SetInt sets the property to value written in decimal.
func (s *Section) SetInt(key string, value int) {
	s.SetIntRadix(key, 10, value)
}

// SetFloat sets the property to the shortest decimal representation that
// parses back to value.
func (s *Section) SetFloat(key string, value float64) {
	s.Set(key, strconv.FormatFloat(value, 'g', -1, 64))
}

// Delete removes the property with the given key. It reports whether the
// property existed.
func (s *Section) Delete(key string) bool {
	if !s.HasKey(key) {
		return false
	}
	delete(s.data, key)
	return true
}

func parseBool(v string) (b, ok bool) {
	v = strings.TrimSpace(v)
	switch {
	case v == "1" || strings.EqualFold(v, "true"):
		return true, true
	case v == "0" || strings.EqualFold(v, "false"):
		return false, true
	default:
		return false, false
	}
}

func parseInt(v string, radix int) (int, bool) {
	if radix != 0 && (radix < 2 || radix > 36) {
		return 0, false
	}
	v = strings.TrimSpace(v)
	neg := false
	if v != "" && (v[0] == '+' || v[0] == '-') {
		neg = v[0] == '-'
		v = v[1:]
	}
	if v == "" || v[0] == '+' || v[0] == '-' {
		return 0, false
	}
	if radix == 16 && len(v) > 2 && v[0] == '0' && (v[1] == 'x' || v[1] == 'X') {
		v = v[2:]
	}
	if neg {
		v = "-" + v
	}
	n, err := strconv.ParseInt(v, radix, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
