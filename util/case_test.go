package util

import (
	"testing"
)

func TestToTitleCase(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"myflaskapp", "Myflaskapp"},
		{"demo", "Demo"},
		{"my_flask_app", "My_Flask_App"},
		{"my-app", "My-App"},
		{"ALLCAPS", "Allcaps"},
		{"", ""},
		{"_leading", "_Leading"},
		{"trailing_", "Trailing_"},
		{"flask2app", "Flask2App"},
		{"app2", "App2"},
		{"2app", "2App"},
	}

	for _, c := range cases {
		got := ToTitleCase(c.input)
		if got != c.expected {
			t.Errorf("ToTitleCase(%q) = %q, expected %q", c.input, got, c.expected)
		}
	}
}
