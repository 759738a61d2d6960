// Package rdfxml decodes RDF/XML documents into a stream of RDF quads,
// conforming to the W3C RDF/XML Syntax Specification
// (http://www.w3.org/TR/rdf-syntax-grammar/).
//
// The decoder is pull-driven: each Decode call consumes XML tokenizer
// events (open-tag, text, close-tag, doctype) one at a time until a quad
// is available, and quads are emitted as soon as they are determined. It never materializes the document as a tree, so it is
// suitable for streaming large documents.
//
// Deviations from the RDF/XML specification, matching the reference
// decoder this package is modeled on:
//   - A valid RDF/XML document cannot declare the same rdf:ID twice, but
//     this decoder emits valid quads as soon as they are available and
//     leaves it to AllowDuplicateRdfIDs / the caller to decide how to
//     treat duplicates.
//   - rdf:bagID, rdf:aboutEach and rdf:aboutEachPrefix are rejected; they
//     were removed from the RDF/XML spec before it reached Recommendation
//     status.
package rdfxml
