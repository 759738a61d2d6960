package rdfxml

import "testing"

func TestResolveIRI(t *testing.T) {
	cases := []struct {
		base, ref, want string
	}{
		{"http://example.org/a/b", "http://other.org/c", "http://other.org/c"},
		{"http://example.org/a/b", "#frag", "http://example.org/a/b#frag"},
		{"http://example.org/a/b", "/c", "http://example.org/c"},
		{"http://example.org/a/b", "//other.org/c", "http://other.org/c"},
		{"http://example.org/", "a", "http://example.org/a"},
		{"http://example.org/a/b", "c", "http://example.org/a/c"},
		{"http://example.org/a/b/", "../c", "http://example.org/a/c"},
		{"", "a", "a"},
		{"http://example.org/a#frag", "", "http://example.org/a"},
	}
	for _, c := range cases {
		if got := resolveIRI(c.base, c.ref); got != c.want {
			t.Errorf("resolveIRI(%q, %q) = %q, want %q", c.base, c.ref, got, c.want)
		}
	}
}

func TestHasScheme(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"http://example.org/a", true},
		{"urn:isbn:0451450523", false},
		{"/a/b", false},
		{"a/b", false},
		{"#frag", false},
	}
	for _, c := range cases {
		if got := hasScheme(c.in); got != c.want {
			t.Errorf("hasScheme(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
