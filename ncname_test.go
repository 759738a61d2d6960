package rdfxml

import "testing"

func TestIsNCName(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"foo", true},
		{"_foo", true},
		{"foo-bar.baz", true},
		{"foo123", true},
		{"", false},
		{"1foo", false},
		{"foo:bar", false},
		{"foo bar", false},
	}
	for _, c := range cases {
		if got := isNCName(c.in); got != c.want {
			t.Errorf("isNCName(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
