// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini provides a reader and writer for INI configuration documents.
See https://en.wikipedia.org/wiki/INI_file.

A Document is a set of named sections. Each Section maps unique keys to string
values. Typed accessors (booleans, integers in any radix, floats and UTF-16
text) convert to and from the stored strings; there is no separate typed
storage. Writing to a section that does not exist creates it.

This package does not preserve comments or ordering. Documents are written
with sections and keys in sorted order.

Syntax

An INI document is Unicode text encoded in UTF-8. A leading byte order mark is
honored: a UTF-8 mark is skipped and a UTF-16 mark switches decoding to UTF-16.

A section is started by writing its name in square brackets ('[' and ']') on
its own line and ends at the next section name or the end of the document:

	[section]
	key1=value1
	key2=value2

Properties are a key and value on a single line, separated by the first
unescaped equals sign ('='). A line without an equals sign sets the key to the
empty string. Properties encountered before the first section name are
ignored: there is no global section.

Whitespace at the beginning or end of lines, around section names, around
keys and around values is ignored unless it is escaped. If the first
non-whitespace character in a line is a semicolon (';') or a hash ('#'), the
line is a comment. Inline comments are not supported.

Escapes

Section names, keys and values may use backslash escape sequences:

	\n    U+000A line feed or newline
	\r    U+000D carriage return
	\t    U+0009 horizontal tab
	\\    U+005C backslash
	\[    U+005B left square bracket
	\]    U+005D right square bracket
	\=    U+003D equals sign
	\;    U+003B semicolon
	\#    U+0023 hash
	\     U+0020 space (a backslash followed by a space)
	\xFF  hex escape

Any other backslash sequence is kept as written, backslash included.
When writing, every character from the list above is escaped, spaces only
at the start or end of a name, key or value. Other control characters are
written as hex escapes.

Repeated names

If a key appears more than once in a section, the last value wins. Multiple
sections with the same name are treated as if their properties were presented
contiguously in the same section.

Typed values

Booleans are read case-insensitively: "true" and "1" are true, "false" and "0"
are false, and anything else falls back to the caller's default. They are
written as "true" or "false". Integers and floats that fail to parse also fall
back to the default, so a malformed value is indistinguishable from a missing
one.
*/
package ini
