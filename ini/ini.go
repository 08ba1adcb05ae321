// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"maps"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"zombiezen.com/go/log"
)

// A Document is a collection of named sections. The zero value is an empty
// document. Read methods on a nil *Document behave as if the document were
// empty.
//
// Documents can be read by multiple concurrent goroutines, but modifications
// must be synchronized by the caller.
type Document struct {
	sections map[string]*Section
}

// ParseOptions holds optional parameters for Parse.
type ParseOptions struct {
	// NormalizeSection is called on each section name to apply text transformations.
	// This can be used to make section names case-insensitive, for instance.
	// If nil, no transformations are made.
	NormalizeSection func(name string) string

	// NormalizeKey is called on each key to apply text transformations.
	// This can be used to make keys case-insensitive, for instance.
	// If nil, no transformations are made.
	NormalizeKey func(section, key string) string
}

// Parse parses an INI document. Nil options are treated identically as
// passing the zero value.
//
// Malformed lines never cause an error: see the Syntax section in the package
// documentation for how they are interpreted. Parse only returns an error if
// reading from r fails, in which case the returned document holds what was
// parsed up to that point.
func Parse(ctx context.Context, r io.Reader, opts *ParseOptions) (*Document, error) {
	d := new(Document)
	if r == nil {
		return d, errors.New("parse ini: nil reader")
	}
	br := bufio.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	var curr *Section
	for lineno := 1; ; lineno++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return d, fmt.Errorf("parse ini: line %d: %w", lineno, err)
		}
		if line != "" {
			curr = d.parseLine(ctx, curr, lineno, line, opts)
		}
		if err == io.EOF {
			return d, nil
		}
	}
}

// parseLine applies a single line to d and returns the section that
// subsequent properties belong to.
func (d *Document) parseLine(ctx context.Context, curr *Section, lineno int, line string, opts *ParseOptions) *Section {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	line = trimUnescaped(line)
	if line == "" {
		return curr
	}
	switch line[0] {
	case ';', '#':
		return curr
	case '[':
		name := line[1:]
		if i := indexUnescaped(name, ']'); i != -1 {
			name = name[:i]
		} else {
			log.Debugf(ctx, "ini: line %d: missing section closing bracket", lineno)
		}
		name = unescape(trimUnescaped(name))
		if opts != nil && opts.NormalizeSection != nil {
			name = opts.NormalizeSection(name)
		}
		return d.CreateSection(name)
	}
	if curr == nil {
		log.Debugf(ctx, "ini: line %d: ignoring property outside of a section", lineno)
		return nil
	}
	key, value := line, ""
	if i := indexUnescaped(line, '='); i != -1 {
		key, value = line[:i], line[i+1:]
	}
	key = unescape(trimUnescaped(key))
	if opts != nil && opts.NormalizeKey != nil {
		key = opts.NormalizeKey(curr.name, key)
	}
	curr.Set(key, unescape(trimUnescaped(value)))
	return curr
}

// ParseFile parses the INI file at the given path. A missing file is
// treated as an empty document. Nil options are treated identically as
// passing the zero value.
func ParseFile(ctx context.Context, path string, opts *ParseOptions) (*Document, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf(ctx, "ini: %s does not exist; using empty document", path)
		return new(Document), nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse ini file: %w", err)
	}
	d, err := Parse(ctx, f, opts)
	f.Close() // Close errors irrelevant.
	if err != nil {
		return d, fmt.Errorf("parse ini file: %s: %w", path, err)
	}
	return d, nil
}

// Len returns the number of sections in the document.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.sections)
}

// SectionNames returns the names of the document's sections in sorted order.
func (d *Document) SectionNames() []string {
	if d == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(d.sections))
}

// All returns an iterator over the document's sections in no particular
// order. The iterator may be used more than once.
func (d *Document) All() iter.Seq2[string, *Section] {
	return func(yield func(name string, s *Section) bool) {
		if d == nil {
			return
		}
		for name, s := range d.sections {
			if !yield(name, s) {
				return
			}
		}
	}
}

// Section returns the named section or nil if the document does not have one.
// The returned section is owned by d: modifying it modifies the document.
func (d *Document) Section(name string) *Section {
	if d == nil {
		return nil
	}
	return d.sections[name]
}

// HasSection reports whether the document has a section with the given name.
func (d *Document) HasSection(name string) bool {
	return d.Section(name) != nil
}

// CreateSection returns the named section, adding an empty one to the document
// if it does not exist.
func (d *Document) CreateSection(name string) *Section {
	if s := d.sections[name]; s != nil {
		return s
	}
	if d.sections == nil {
		d.sections = make(map[string]*Section)
	}
	s := &Section{name: name}
	d.sections[name] = s
	return s
}

// DeleteSection removes the named section and all of its properties. It
// reports whether the section existed.
func (d *Document) DeleteSection(name string) bool {
	if !d.HasSection(name) {
		return false
	}
	delete(d.sections, name)
	return true
}

// HasKey reports whether the named section has a property with the given key.
func (d *Document) HasKey(section, key string) bool {
	return d.Section(section).HasKey(key)
}

// HasKeyNonEmpty reports whether the named section has a property with the
// given key and a non-empty value.
func (d *Document) HasKeyNonEmpty(section, key string) bool {
	return d.Section(section).HasKeyNonEmpty(key)
}

// Get returns the value of the property in the named section or def if
// either the section or the property does not exist.
func (d *Document) Get(section, key, def string) string {
	return d.Section(section).Get(key, def)
}

// GetUTF16 is like Get but returns the value as UTF-16 code units.
func (d *Document) GetUTF16(section, key string, def []uint16) []uint16 {
	return d.Section(section).GetUTF16(key, def)
}

// GetBool calls GetBool on the named section, returning def if the section
// does not exist.
func (d *Document) GetBool(section, key string, def bool) bool {
	return d.Section(section).GetBool(key, def)
}

// GetIntRadix calls GetIntRadix on the named section, returning def if the
// section does not exist.
func (d *Document) GetIntRadix(section, key string, radix, def int) int {
	return d.Section(section).GetIntRadix(key, radix, def)
}

// GetInt calls GetInt on the named section, returning def if the section does
// not exist.
func (d *Document) GetInt(section, key string, def int) int {
	return d.Section(section).GetInt(key, def)
}

// GetFloat calls GetFloat on the named section, returning def if the section
// does not exist.
func (d *Document) GetFloat(section, key string, def float64) float64 {
	return d.Section(section).GetFloat(key, def)
}

// Set sets the property in the named section, creating the section if needed.
func (d *Document) Set(section, key, value string) {
	d.CreateSection(section).Set(key, value)
}

// SetUTF16 sets the property in the named section to the given UTF-16 text,
// creating the section if needed.
func (d *Document) SetUTF16(section, key string, value []uint16) {
	d.CreateSection(section).SetUTF16(key, value)
}

// SetBool sets the property in the named section to a boolean, creating the
// section if needed.
func (d *Document) SetBool(section, key string, value bool) {
	d.CreateSection(section).SetBool(key, value)
}

// SetIntRadix sets the property in the named section to an integer in the
// given radix, creating the section if needed. It panics if radix is not
// between 2 and 36.
func (d *Document) SetIntRadix(section, key string, radix, value int) {
	d.CreateSection(section).SetIntRadix(key, radix, value)
}

// SetInt sets the property in the named section to a decimal integer,
// creating the section if needed.
func (d *Document) SetInt(section, key string, value int) {
	d.CreateSection(section).SetInt(key, value)
}

// SetFloat sets the property in the named section to a floating-point number,
// creating the section if needed.
func (d *Document) SetFloat(section, key string, value float64) {
	d.CreateSection(section).SetFloat(key, value)
}

// Delete removes the property from the named section. It reports whether
// the property existed. Sections are kept even if they become empty.
func (d *Document) Delete(section, key string) bool {
	return d.Section(section).Delete(key)
}

// MarshalText serializes the document in INI format. Sections and keys are
// written in sorted order.
func (d *Document) MarshalText() ([]byte, error) {
	if d == nil {
		return nil, nil
	}
	var buf []byte
	for i, name := range d.SectionNames() {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, '[')
		buf = appendEscaped(buf, name)
		buf = append(buf, "]\n"...)
		s := d.sections[name]
		for _, key := range s.Keys() {
			buf = appendEscaped(buf, key)
			buf = append(buf, '=')
			buf = appendEscaped(buf, s.data[key])
			buf = append(buf, '\n')
		}
	}
	return buf, nil
}

// UnmarshalText parses the INI data with default options, replacing any
// sections in d.
func (d *Document) UnmarshalText(data []byte) error {
	parsed, err := Parse(context.Background(), bytes.NewReader(data), nil)
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}

// WriteTo writes the document to w in INI format.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	text, err := d.MarshalText()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(text)
	return int64(n), err
}

// WriteFile writes the document to the file at the given path, replacing its
// entire contents. The file is created if it does not exist.
func (d *Document) WriteFile(ctx context.Context, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write ini file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("write ini file: %w", closeErr)
		}
	}()
	if _, err := d.WriteTo(f); err != nil {
		return fmt.Errorf("write ini file: %w", err)
	}
	log.Debugf(ctx, "ini: wrote %d section(s) to %s", d.Len(), path)
	return nil
}
