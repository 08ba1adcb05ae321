// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import "strings"

// blanks is the set of whitespace trimmed from lines, names, keys and values.
const blanks = " \t\n\v\f\r"

const del = '\x7f'

// appendEscaped appends s to dst, escaping every character that would
// otherwise be interpreted as syntax.
func appendEscaped(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\':
			dst = append(dst, '\\', '\\')
		case c == '\n':
			dst = append(dst, '\\', 'n')
		case c == '\r':
			dst = append(dst, '\\', 'r')
		case c == '\t':
			dst = append(dst, '\\', 't')
		case c == '[' || c == ']' || c == '=' || c == ';' || c == '#':
			dst = append(dst, '\\', c)
		case c == ' ' && (i == 0 || i == len(s)-1):
			dst = append(dst, '\\', ' ')
		case c < ' ' || c == del:
			const hexDigits = "0123456789abcdef"
			dst = append(dst, '\\', 'x', hexDigits[c>>4], hexDigits[c&0xf])
		default:
			dst = append(dst, c)
		}
	}
	return dst
}

// escape returns s in its written form.
func escape(s string) string {
	return string(appendEscaped(make([]byte, 0, len(s)), s))
}

// unescape reverses appendEscaped. Unknown escape sequences are copied
// through unchanged.
func unescape(s string) string {
	if strings.IndexByte(s, '\\') == -1 {
		return s
	}
	sb := new(strings.Builder)
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			sb.WriteByte(c)
			continue
		}
		switch next := s[i+1]; next {
		case 'n':
			sb.WriteByte('\n')
			i++
		case 'r':
			sb.WriteByte('\r')
			i++
		case 't':
			sb.WriteByte('\t')
			i++
		case '\\', '[', ']', '=', ';', '#', ' ':
			sb.WriteByte(next)
			i++
		case 'x':
			if i+3 < len(s) && isHexDigit(s[i+2]) && isHexDigit(s[i+3]) {
				sb.WriteByte(fromHex(s[i+2])<<4 | fromHex(s[i+3]))
				i += 3
			} else {
				sb.WriteByte(c)
			}
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// indexUnescaped returns the index of the first instance of c in s that is
// not preceded by a backslash escape, or -1 if there is none.
func indexUnescaped(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case c:
			return i
		}
	}
	return -1
}

// trimUnescaped removes leading and trailing whitespace from s, stopping at
// whitespace protected by a backslash.
func trimUnescaped(s string) string {
	s = strings.TrimLeft(s, blanks)
	for len(s) > 0 && strings.IndexByte(blanks, s[len(s)-1]) != -1 {
		backslashes := 0
		for j := len(s) - 2; j >= 0 && s[j] == '\\'; j-- {
			backslashes++
		}
		if backslashes%2 == 1 {
			break
		}
		s = s[:len(s)-1]
	}
	return s
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' ||
		'a' <= c && c <= 'f' ||
		'A' <= c && c <= 'F'
}

func fromHex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 0xa
	case 'A' <= c && c <= 'F':
		return c - 'A' + 0xa
	default:
		panic("invalid hex digit")
	}
}
