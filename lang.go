package rdfxml

import "golang.org/x/text/language"

// validateLangTag checks an xml:lang value against BCP 47 using
// golang.org/x/text/language. Only called when the decoder is built
// with Strict(true); the lenient default (matching the teacher's own
// treatment of xml:lang as an opaque string copied verbatim into the
// emitted literal) accepts any non-empty string uncritically.
func validateLangTag(tag string) error {
	if tag == "" {
		return nil
	}
	_, err := language.Parse(tag)
	return err
}
