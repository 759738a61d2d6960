package rdfxml

import (
	"io"
	"strings"
	"testing"
)

// decodeAllStrings runs input through a fresh Decoder and renders every
// emitted quad with Quad.String, joined by newlines, the same
// render-and-compare shape as the teacher's own rdfxml_test.go table
// tests (which serialize to N-Triples and string-compare).
func decodeAllStrings(t *testing.T, input string, opts ...Option) (string, error) {
	t.Helper()
	dec := NewDecoder(strings.NewReader(input), opts...)
	quads, err := dec.DecodeAll()
	if err != nil {
		return "", err
	}
	lines := make([]string, len(quads))
	for i, q := range quads {
		lines[i] = q.String()
	}
	return strings.Join(lines, "\n"), nil
}

var rdfxmlExamples = []struct {
	name   string
	rdfxml string
	want   string
}{
	{
		name: "plain literal property",
		rdfxml: `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:dc="http://purl.org/dc/elements/1.1/">
  <rdf:Description rdf:about="http://example.org/book">
    <dc:title>Sample Book</dc:title>
  </rdf:Description>
</rdf:RDF>`,
		want: `<http://example.org/book> <http://purl.org/dc/elements/1.1/title> "Sample Book" .`,
	},
	{
		name: "typed node via tag name",
		rdfxml: `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:foaf="http://xmlns.com/foaf/0.1/">
  <foaf:Person rdf:about="http://example.org/alice">
    <foaf:name>Alice</foaf:name>
  </foaf:Person>
</rdf:RDF>`,
		want: `<http://example.org/alice> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://xmlns.com/foaf/0.1/Person> .
<http://example.org/alice> <http://xmlns.com/foaf/0.1/name> "Alice" .`,
	},
	{
		name: "rdf:resource property",
		rdfxml: `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:dc="http://purl.org/dc/elements/1.1/">
  <rdf:Description rdf:about="http://example.org/a">
    <dc:creator rdf:resource="http://example.org/b"/>
  </rdf:Description>
</rdf:RDF>`,
		want: `<http://example.org/a> <http://purl.org/dc/elements/1.1/creator> <http://example.org/b> .`,
	},
	{
		name: "datatype literal",
		rdfxml: `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:ex="http://example.org/ns#">
  <rdf:Description rdf:about="http://example.org/a">
    <ex:age rdf:datatype="http://www.w3.org/2001/XMLSchema#integer">42</ex:age>
  </rdf:Description>
</rdf:RDF>`,
		want: `<http://example.org/a> <http://example.org/ns#age> "42"^^<http://www.w3.org/2001/XMLSchema#integer> .`,
	},
	{
		name: "xml:lang property",
		rdfxml: `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:dc="http://purl.org/dc/elements/1.1/">
  <rdf:Description rdf:about="http://example.org/a">
    <dc:title xml:lang="en">Hello</dc:title>
  </rdf:Description>
</rdf:RDF>`,
		want: `<http://example.org/a> <http://purl.org/dc/elements/1.1/title> "Hello"@en .`,
	},
	{
		name: "nested resource property produces blank node",
		rdfxml: `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:ex="http://example.org/ns#">
  <rdf:Description rdf:about="http://example.org/a">
    <ex:knows>
      <rdf:Description>
        <ex:name>Bob</ex:name>
      </rdf:Description>
    </ex:knows>
  </rdf:Description>
</rdf:RDF>`,
		want: `<http://example.org/a> <http://example.org/ns#knows> _:b0 .
_:b0 <http://example.org/ns#name> "Bob" .`,
	},
	{
		name: "rdf:li rewrites to rdf:_n",
		rdfxml: `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
  <rdf:Bag rdf:about="http://example.org/bag">
    <rdf:li>one</rdf:li>
    <rdf:li>two</rdf:li>
  </rdf:Bag>
</rdf:RDF>`,
		want: `<http://example.org/bag> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/1999/02/22-rdf-syntax-ns#Bag> .
<http://example.org/bag> <http://www.w3.org/1999/02/22-rdf-syntax-ns#_1> "one" .
<http://example.org/bag> <http://www.w3.org/1999/02/22-rdf-syntax-ns#_2> "two" .`,
	},
	{
		name: "parseType=Collection",
		rdfxml: `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:ex="http://example.org/ns#">
  <rdf:Description rdf:about="http://example.org/a">
    <ex:items rdf:parseType="Collection">
      <rdf:Description rdf:about="http://example.org/x"/>
      <rdf:Description rdf:about="http://example.org/y"/>
    </ex:items>
  </rdf:Description>
</rdf:RDF>`,
		want: `<http://example.org/a> <http://example.org/ns#items> _:b0 .
_:b0 <http://www.w3.org/1999/02/22-rdf-syntax-ns#first> <http://example.org/x> .
_:b0 <http://www.w3.org/1999/02/22-rdf-syntax-ns#rest> _:b1 .
_:b1 <http://www.w3.org/1999/02/22-rdf-syntax-ns#first> <http://example.org/y> .
_:b1 <http://www.w3.org/1999/02/22-rdf-syntax-ns#rest> <http://www.w3.org/1999/02/22-rdf-syntax-ns#nil> .`,
	},
	{
		name: "parseType=Resource",
		rdfxml: `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:ex="http://example.org/ns#">
  <rdf:Description rdf:about="http://example.org/a">
    <ex:address rdf:parseType="Resource">
      <ex:city>Springfield</ex:city>
    </ex:address>
  </rdf:Description>
</rdf:RDF>`,
		want: `<http://example.org/a> <http://example.org/ns#address> _:b0 .
_:b0 <http://example.org/ns#city> "Springfield" .`,
	},
	{
		name: "reification via rdf:ID on property element",
		rdfxml: `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:dc="http://purl.org/dc/elements/1.1/">
  <rdf:Description rdf:about="http://example.org/a">
    <dc:title rdf:ID="stmt1">A Title</dc:title>
  </rdf:Description>
</rdf:RDF>`,
		want: `<http://example.org/a> <http://purl.org/dc/elements/1.1/title> "A Title" .
<http://www.w3.org/2013/RDFXMLTests/reify#stmt1> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/1999/02/22-rdf-syntax-ns#Statement> .
<http://www.w3.org/2013/RDFXMLTests/reify#stmt1> <http://www.w3.org/1999/02/22-rdf-syntax-ns#subject> <http://example.org/a> .
<http://www.w3.org/2013/RDFXMLTests/reify#stmt1> <http://www.w3.org/1999/02/22-rdf-syntax-ns#predicate> <http://purl.org/dc/elements/1.1/title> .
<http://www.w3.org/2013/RDFXMLTests/reify#stmt1> <http://www.w3.org/1999/02/22-rdf-syntax-ns#object> "A Title" .`,
	},
	{
		name: "property-attribute shorthand on node element",
		rdfxml: `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:dc="http://purl.org/dc/elements/1.1/">
  <rdf:Description rdf:about="http://example.org/a" dc:title="Quick Title"/>
</rdf:RDF>`,
		want: `<http://example.org/a> <http://purl.org/dc/elements/1.1/title> "Quick Title" .`,
	},
	{
		name: "rdf:nodeID on property element materializes a blank object",
		rdfxml: `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:ex="http://example.org/ns#">
  <rdf:Description rdf:about="http://example.org/a">
    <ex:knows rdf:nodeID="bob"/>
  </rdf:Description>
</rdf:RDF>`,
		want: `<http://example.org/a> <http://example.org/ns#knows> _:bob .`,
	},
	{
		name: "xml:lang is lowercased",
		rdfxml: `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:dc="http://purl.org/dc/elements/1.1/">
  <rdf:Description rdf:about="http://example.org/a">
    <dc:title xml:lang="EN-US">Hello</dc:title>
  </rdf:Description>
</rdf:RDF>`,
		want: `<http://example.org/a> <http://purl.org/dc/elements/1.1/title> "Hello"@en-us .`,
	},
	{
		name: "text split across a CDATA boundary concatenates",
		rdfxml: `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:dc="http://purl.org/dc/elements/1.1/">
  <rdf:Description rdf:about="http://example.org/a">
    <dc:title>Hello <![CDATA[World]]></dc:title>
  </rdf:Description>
</rdf:RDF>`,
		want: `<http://example.org/a> <http://purl.org/dc/elements/1.1/title> "Hello World" .`,
	},
	{
		name: "xml:base resolves relative rdf:about",
		rdfxml: `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xml:base="http://example.org/"
         xmlns:dc="http://purl.org/dc/elements/1.1/">
  <rdf:Description rdf:about="a">
    <dc:title>Relative</dc:title>
  </rdf:Description>
</rdf:RDF>`,
		want: `<http://example.org/a> <http://purl.org/dc/elements/1.1/title> "Relative" .`,
	},
}

func TestRDFXMLExamples(t *testing.T) {
	for i, test := range rdfxmlExamples {
		t.Run(test.name, func(t *testing.T) {
			got, err := decodeAllStrings(t, test.rdfxml, WithBaseIRI("http://www.w3.org/2013/RDFXMLTests/reify"))
			if err != nil {
				t.Fatalf("[%d] decode(%s) => %v, want %q", i, test.name, err, test.want)
			}
			if got != test.want {
				t.Fatalf("[%d] decode(%s) =>\n%s\nwant\n%s", i, test.name, got, test.want)
			}
		})
	}
}

func TestDuplicateRdfIDRejected(t *testing.T) {
	input := `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:dc="http://purl.org/dc/elements/1.1/">
  <rdf:Description rdf:ID="x"><dc:title>one</dc:title></rdf:Description>
  <rdf:Description rdf:ID="x"><dc:title>two</dc:title></rdf:Description>
</rdf:RDF>`
	_, err := decodeAllStrings(t, input)
	if err == nil {
		t.Fatal("expected duplicate rdf:ID error, got none")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != KindDuplicateID {
		t.Fatalf("expected KindDuplicateID, got %v", err)
	}
}

func TestAllowDuplicateRdfIDs(t *testing.T) {
	input := `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:dc="http://purl.org/dc/elements/1.1/">
  <rdf:Description rdf:ID="x"><dc:title>one</dc:title></rdf:Description>
  <rdf:Description rdf:ID="x"><dc:title>two</dc:title></rdf:Description>
</rdf:RDF>`
	_, err := decodeAllStrings(t, input, AllowDuplicateRdfIDs(true))
	if err != nil {
		t.Fatalf("unexpected error with AllowDuplicateRdfIDs: %v", err)
	}
}

func TestConflictingSubjectAttributes(t *testing.T) {
	input := `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
  <rdf:Description rdf:about="http://example.org/a" rdf:nodeID="b"/>
</rdf:RDF>`
	_, err := decodeAllStrings(t, input)
	if err == nil {
		t.Fatal("expected conflicting-attributes error, got none")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != KindConflictingAttributes {
		t.Fatalf("expected KindConflictingAttributes, got %v", err)
	}
}

func TestForbiddenNodeElement(t *testing.T) {
	input := `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
  <rdf:li rdf:about="http://example.org/a"/>
</rdf:RDF>`
	_, err := decodeAllStrings(t, input)
	if err == nil {
		t.Fatal("expected forbidden-name error, got none")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != KindForbiddenName {
		t.Fatalf("expected KindForbiddenName, got %v", err)
	}
}

func TestInvalidIRICharRejected(t *testing.T) {
	input := `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
  <rdf:Description rdf:about="http://example.org/a b"/>
</rdf:RDF>`
	_, err := decodeAllStrings(t, input)
	if err == nil {
		t.Fatal("expected invalid-IRI error, got none")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != KindInvalidIRI {
		t.Fatalf("expected KindInvalidIRI, got %v", err)
	}
}

// TestStreamingInvariance checks that decoding the same document via one
// big read and via many small reads (forcing the tokenizer to refill its
// buffer mid-token) produces an identical quad sequence, the chunk-
// boundary independence property of spec.md §8.
func TestStreamingInvariance(t *testing.T) {
	input := rdfxmlExamples[0].rdfxml
	full, err := decodeAllStrings(t, input)
	if err != nil {
		t.Fatalf("full decode: %v", err)
	}

	dec := NewDecoder(&chunkedReader{data: []byte(input), size: 7})
	quads, err := dec.DecodeAll()
	if err != nil {
		t.Fatalf("chunked decode: %v", err)
	}
	lines := make([]string, len(quads))
	for i, q := range quads {
		lines[i] = q.String()
	}
	got := strings.Join(lines, "\n")
	if got != full {
		t.Fatalf("chunked decode diverged from full decode:\n%s\nwant\n%s", got, full)
	}
}

// chunkedReader returns data in fixed-size pieces so callers can verify
// decoder behavior is independent of how the underlying reader chunks
// bytes.
type chunkedReader struct {
	data []byte
	size int
}

func (r *chunkedReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := r.size
	if n > len(p) {
		n = len(p)
	}
	if n > len(r.data) {
		n = len(r.data)
	}
	copy(p, r.data[:n])
	r.data = r.data[n:]
	return n, nil
}
