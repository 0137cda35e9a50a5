package validation

import "testing"

func TestValidateCallback(t *testing.T) {
	tests := []struct {
		name     string
		callback string
		expected bool
	}{
		{name: "plain identifier", callback: "myFn", expected: true},
		{name: "dotted member", callback: "jQuery.cb", expected: true},
		{name: "bracket member", callback: `callbacks["x"]`, expected: true},
		{name: "single quotes", callback: "cb['x']", expected: true},
		{name: "underscore and digits", callback: "_cb_42", expected: true},
		{name: "empty", callback: "", expected: false},
		{name: "parentheses", callback: "alert(1)", expected: false},
		{name: "space", callback: "my fn", expected: false},
		{name: "semicolon", callback: "a;b", expected: false},
		{name: "angle brackets", callback: "<script>", expected: false},
		{name: "unicode letter", callback: "fné", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateCallback(tt.callback); got != tt.expected {
				t.Errorf("ValidateCallback(%q) = %v, want %v", tt.callback, got, tt.expected)
			}
		})
	}
}
