package validation

import "regexp"

// CallbackPattern defines the valid JSONP callback format: a JavaScript
// member expression built from word characters, dots, brackets and
// quotes. Anything else is rejected so unvalidated input is never
// reflected into a script response.
var CallbackPattern = regexp.MustCompile(`^[a-zA-Z0-9_.\[\]'"]+$`)

// ValidateCallback checks if a callback identifier matches the allowed
// pattern.
func ValidateCallback(callback string) bool {
	if callback == "" {
		return false
	}
	return CallbackPattern.MatchString(callback)
}
