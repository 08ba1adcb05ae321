// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNilSection(t *testing.T) {
	s := (*Section)(nil)
	if s.HasKey("foo") {
		t.Error("HasKey(...) = true; want false")
	}
	if got := s.Get("foo", "def"); got != "def" {
		t.Errorf("Get(...) = %q; want %q", got, "def")
	}
	if got := s.GetInt("foo", 42); got != 42 {
		t.Errorf("GetInt(...) = %d; want 42", got)
	}
	if got := s.Len(); got != 0 {
		t.Errorf("Len() = %d; want 0", got)
	}
	if got := s.Keys(); len(got) > 0 {
		t.Errorf("Keys() = %q; want empty", got)
	}
	if s.Delete("foo") {
		t.Error("Delete(...) = true; want false")
	}
}

func TestHasKey(t *testing.T) {
	s := new(Section)
	s.Set("empty", "")
	s.Set("full", "x")
	tests := []struct {
		key            string
		hasKey         bool
		hasKeyNonEmpty bool
	}{
		{key: "empty", hasKey: true, hasKeyNonEmpty: false},
		{key: "full", hasKey: true, hasKeyNonEmpty: true},
		{key: "missing", hasKey: false, hasKeyNonEmpty: false},
	}
	for _, test := range tests {
		if got := s.HasKey(test.key); got != test.hasKey {
			t.Errorf("HasKey(%q) = %t; want %t", test.key, got, test.hasKey)
		}
		if got := s.HasKeyNonEmpty(test.key); got != test.hasKeyNonEmpty {
			t.Errorf("HasKeyNonEmpty(%q) = %t; want %t", test.key, got, test.hasKeyNonEmpty)
		}
	}
}

func TestGetBool(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{value: "true", def: false, want: true},
		{value: "TRUE", def: false, want: true},
		{value: "True", def: false, want: true},
		{value: "1", def: false, want: true},
		{value: " true ", def: false, want: true},
		{value: "false", def: true, want: false},
		{value: "False", def: true, want: false},
		{value: "0", def: true, want: false},
		{value: "", def: true, want: true},
		{value: "", def: false, want: false},
		{value: "yes", def: true, want: true},
		{value: "yes", def: false, want: false},
		{value: "2", def: true, want: true},
	}
	for _, test := range tests {
		s := new(Section)
		s.Set("k", test.value)
		if got := s.GetBool("k", test.def); got != test.want {
			t.Errorf("GetBool with %q, default %t = %t; want %t", test.value, test.def, got, test.want)
		}
	}
	if got := new(Section).GetBool("missing", true); !got {
		t.Error("GetBool(\"missing\", true) = false; want true")
	}
}

func TestGetIntRadix(t *testing.T) {
	tests := []struct {
		value string
		radix int
		want  int
	}{
		{value: "42", radix: 10, want: 42},
		{value: "-42", radix: 10, want: -42},
		{value: "+42", radix: 10, want: 42},
		{value: " 7 ", radix: 10, want: 7},
		{value: "ff", radix: 16, want: 255},
		{value: "FF", radix: 16, want: 255},
		{value: "0xff", radix: 16, want: 255},
		{value: "-0XFF", radix: 16, want: -255},
		{value: "101", radix: 2, want: 5},
		{value: "zz", radix: 36, want: 1295},
		{value: "0x10", radix: 0, want: 16},
		{value: "010", radix: 0, want: 8},
		{value: "10", radix: 0, want: 10},
		{value: "", radix: 10, want: -1},
		{value: "-", radix: 10, want: -1},
		{value: "--1", radix: 10, want: -1},
		{value: "+-1", radix: 10, want: -1},
		{value: "12abc", radix: 10, want: -1},
		{value: "0x10", radix: 10, want: -1},
		{value: "2", radix: 2, want: -1},
		{value: "10", radix: 1, want: -1},
		{value: "10", radix: 37, want: -1},
		{value: "99999999999999999999999", radix: 10, want: -1},
	}
	for _, test := range tests {
		s := new(Section)
		s.Set("k", test.value)
		if got := s.GetIntRadix("k", test.radix, -1); got != test.want {
			t.Errorf("GetIntRadix with %q, radix %d = %d; want %d", test.value, test.radix, got, test.want)
		}
	}
	if got := new(Section).GetInt("missing", 7); got != 7 {
		t.Errorf("GetInt(\"missing\", 7) = %d; want 7", got)
	}
}

func TestGetFloat(t *testing.T) {
	tests := []struct {
		value string
		want  float64
	}{
		{value: "1.5", want: 1.5},
		{value: "-0.25", want: -0.25},
		{value: "3", want: 3},
		{value: "1e3", want: 1000},
		{value: " 2.5 ", want: 2.5},
		{value: "", want: -1},
		{value: "1.5.2", want: -1},
		{value: "abc", want: -1},
	}
	for _, test := range tests {
		s := new(Section)
		s.Set("k", test.value)
		if got := s.GetFloat("k", -1); got != test.want {
			t.Errorf("GetFloat with %q = %g; want %g", test.value, got, test.want)
		}
	}
}

func TestTypedRoundTrip(t *testing.T) {
	s := new(Section)
	for _, b := range []bool{true, false} {
		s.SetBool("bool", b)
		if got := s.GetBool("bool", !b); got != b {
			t.Errorf("GetBool after SetBool(%t) = %t", b, got)
		}
	}
	for _, radix := range []int{2, 8, 10, 16, 36} {
		for _, n := range []int{0, 1, -1, 255, -4096, math.MaxInt32, math.MinInt32} {
			s.SetIntRadix("int", radix, n)
			if got := s.GetIntRadix("int", radix, n+1); got != n {
				t.Errorf("GetIntRadix after SetIntRadix(%d, %d) = %d (stored %q)", radix, n, got, s.Get("int", ""))
			}
		}
	}
	for _, f := range []float64{0, 0.1, -2.5, 1e21, 1.0 / 3, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		s.SetFloat("float", f)
		if got := s.GetFloat("float", f+1); got != f {
			t.Errorf("GetFloat after SetFloat(%g) = %g (stored %q)", f, got, s.Get("float", ""))
		}
	}
}

func TestSetIntRadixFormat(t *testing.T) {
	s := new(Section)
	s.SetIntRadix("k", 16, -255)
	if got, want := s.Get("k", ""), "-ff"; got != want {
		t.Errorf("SetIntRadix(\"k\", 16, -255) stored %q; want %q", got, want)
	}
	s.SetInt("k", 7)
	if got, want := s.Get("k", ""), "7"; got != want {
		t.Errorf("SetInt(\"k\", 7) stored %q; want %q", got, want)
	}
}

func TestUTF16(t *testing.T) {
	s := new(Section)
	s.Set("k", "aé😀")
	want := []uint16{'a', 0xe9, 0xd83d, 0xde00}
	if diff := cmp.Diff(want, s.GetUTF16("k", nil)); diff != "" {
		t.Errorf("GetUTF16 (-want +got):\n%s", diff)
	}
	def := []uint16{'d'}
	if diff := cmp.Diff(def, s.GetUTF16("missing", def)); diff != "" {
		t.Errorf("GetUTF16 on missing key (-want +got):\n%s", diff)
	}

	s.SetUTF16("w", want)
	if got := s.Get("w", ""); got != "aé😀" {
		t.Errorf("Get after SetUTF16 = %q; want %q", got, "aé😀")
	}
	s.SetUTF16("lone", []uint16{'x', 0xd800})
	if got := s.Get("lone", ""); got != "x�" {
		t.Errorf("Get after SetUTF16 with lone surrogate = %q; want %q", got, "x�")
	}
}

func TestSectionAll(t *testing.T) {
	s := new(Section)
	s.Set("b", "2")
	s.Set("a", "1")
	s.Set("a", "one")
	got := make(map[string]string)
	for k, v := range s.All() {
		got[k] = v
	}
	want := map[string]string{"a": "one", "b": "2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("All() (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, s.Keys(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Keys() (-want +got):\n%s", diff)
	}
	if !s.Delete("a") {
		t.Error("Delete(\"a\") = false; want true")
	}
	if s.Delete("a") {
		t.Error("second Delete(\"a\") = true; want false")
	}
	if got := s.Len(); got != 1 {
		t.Errorf("Len() = %d; want 1", got)
	}
}
