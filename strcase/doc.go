// Package strcase provides the string transforms used to turn method-style
// names into enumeration keys.
//
// Keys are the upper-case, underscore-separated names under which constants
// are declared (PURPLE, DARK_BLUE, HTTP_SERVER). Accessor names such as
// "isDarkBlue" or "makeHttpServer" are mapped back onto keys by stripping the
// verb prefix and applying ToConstantsCase:
//
//	key := strcase.ToConstantsCase(strcase.StringAfter("isDarkBlue", "is"))
//	// key == "DARK_BLUE"
//
// All upper-casing uses full Unicode case mapping, so "straße" folds to
// "STRASSE" rather than leaving the sharp s in place.
//
// # Caching
//
// ToConstantsCase runs two regular expression rewrites. Cache memoizes the
// result per input string and is safe for concurrent use.
package strcase
