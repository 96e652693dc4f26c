package util

import "strings"

// Whitespace is the set of characters stripped by Vector.Trim and
// considered blank by Vector.FilterEmpty: space, horizontal tab, vertical
// tab, carriage return and newline.
const Whitespace = " \t\v\r\n"

// IsBlank reports whether s is empty or consists solely of whitespace.
func IsBlank(s string) bool {
	return strings.Trim(s, Whitespace) == ""
}

// TrimWhitespace strips leading and trailing whitespace from s.
func TrimWhitespace(s string) string {
	return strings.Trim(s, Whitespace)
}
