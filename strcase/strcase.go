package strcase

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// lowerThenUpper matches an upper-case letter directly after a lower-case letter or digit.
	lowerThenUpper = regexp.MustCompile(`([a-z\d])([A-Z])`)

	// acronymBoundary matches the start of a capitalised word following any non-underscore
	// character, which splits acronym runs such as "HTTPServer".
	acronymBoundary = regexp.MustCompile(`([^_])([A-Z][a-z])`)

	upper = cases.Upper(language.Und)
)

// StartsWith reports whether the first utf8.RuneCountInString(needle) code points
// of haystack equal needle.
func StartsWith(haystack, needle string) bool {
	n := utf8.RuneCountInString(needle)
	runes := []rune(haystack)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes) == needle
}

// StringAfter returns the part of subject after the first occurrence of separator.
// If separator does not occur, subject is returned unchanged.
func StringAfter(subject, separator string) string {
	parts := strings.SplitN(subject, separator, 2)
	return parts[len(parts)-1]
}

// ToUpper upper-cases s using full Unicode case mapping.
func ToUpper(s string) string {
	return upper.String(s)
}

// ToConstantsCase converts a camel or Pascal case name to CONSTANT_CASE.
//
//	ToConstantsCase("AaAa")       // "AA_AA"
//	ToConstantsCase("HTTPServer") // "HTTP_SERVER"
//	ToConstantsCase("DARK_BLUE")  // "DARK_BLUE"
func ToConstantsCase(s string) string {
	s = lowerThenUpper.ReplaceAllString(s, "${1}_${2}")
	s = acronymBoundary.ReplaceAllString(s, "${1}_${2}")
	return ToUpper(s)
}

// ToPascalCase converts a CONSTANT_CASE key to PascalCase ("DARK_BLUE" becomes
// "DarkBlue"). The result is not guaranteed to map back onto key through
// ToConstantsCase; see RoundTrips.
func ToPascalCase(key string) string {
	var b strings.Builder
	for _, word := range strings.Split(key, "_") {
		if word == "" {
			continue
		}
		runes := []rune(strings.ToLower(word))
		b.WriteString(ToUpper(string(runes[0])))
		b.WriteString(string(runes[1:]))
	}
	return b.String()
}

// RoundTrips reports whether the PascalCase form of key derives key again. Keys
// such as "LEVEL_2" do not: "Level2" derives "LEVEL2".
func RoundTrips(key string) bool {
	pascal := ToPascalCase(key)
	return pascal != "" && ToConstantsCase(pascal) == key
}
