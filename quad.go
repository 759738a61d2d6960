package rdfxml

import (
	"fmt"

	"github.com/google/uuid"
)

// Quad is a subject-predicate-object-graph tuple. Graph is always the
// configured default graph for this decoder (spec.md §3) — RDF/XML has
// no syntax for naming a graph.
type Quad struct {
	Subject   Subject
	Predicate IRI
	Object    Term
	Graph     Term
}

// String renders the quad in N-Quads form, omitting the graph term when
// it is the DefaultGraph sentinel (or nil).
func (q Quad) String() string {
	graph := ""
	if g, ok := q.Graph.(interface{ isDefaultGraph() bool }); !ok || !g.isDefaultGraph() {
		if q.Graph != nil {
			graph = " " + q.Graph.String()
		}
	}
	return fmt.Sprintf("%s %s %s%s .", q.Subject.String(), q.Predicate.String(), q.Object.String(), graph)
}

// defaultGraphTerm is the sentinel Term used for Options.DefaultGraph
// when the caller supplies none: the RDF/JS-style "default graph" that
// renders as nothing in N-Quads.
type defaultGraphTerm struct{}

func (defaultGraphTerm) String() string       { return "" }
func (defaultGraphTerm) Eq(other Term) bool   { _, ok := other.(defaultGraphTerm); return ok }
func (defaultGraphTerm) Kind() TermKind       { return KindIRI }
func (defaultGraphTerm) isDefaultGraph() bool { return true }

// DefaultGraph is the sentinel graph term meaning "the default graph".
var DefaultGraph Term = defaultGraphTerm{}

// DataFactory constructs the RDF terms and quads the decoder emits. It is
// the dataFactory option of spec.md §6: pluggable so callers can swap in
// their own term representations (e.g. interned IRIs backed by a
// triple-store's dictionary).
type DataFactory interface {
	NewIRI(value string) IRI
	NewBlankNode(id string) Blank
	NewBlankNodeAuto() Blank
	NewLiteral(lexical string, langOrDatatype interface{}) Literal
	NewQuad(s Subject, p IRI, o Term, g Term) Quad
	DefaultGraph() Term
}

// counterFactory is the default DataFactory. It mints blank nodes as
// sequential _:bN labels, matching the teacher's own bnodeN counter byte
// for byte (the teacher's embedded W3C fixtures assert on exactly this
// labeling scheme, e.g. "_:b0", "_:b1").
type counterFactory struct {
	n int
}

// NewCounterFactory returns a DataFactory that mints blank nodes as
// sequential _:bN labels, one counter per factory instance.
func NewCounterFactory() DataFactory { return &counterFactory{} }

func (f *counterFactory) NewIRI(value string) IRI { return IRI{Value: value} }

func (f *counterFactory) NewBlankNode(id string) Blank { return Blank{ID: id} }

func (f *counterFactory) NewBlankNodeAuto() Blank {
	b := Blank{ID: fmt.Sprintf("b%d", f.n)}
	f.n++
	return b
}

func (f *counterFactory) NewLiteral(lexical string, langOrDatatype interface{}) Literal {
	return newLiteralFrom(lexical, langOrDatatype)
}

func (f *counterFactory) NewQuad(s Subject, p IRI, o Term, g Term) Quad {
	return Quad{Subject: s, Predicate: p, Object: o, Graph: g}
}

func (f *counterFactory) DefaultGraph() Term { return DefaultGraph }

// uuidFactory mints collision-proof blank node labels using
// github.com/google/uuid, for callers merging quads from many
// independently-constructed decoders into one store where the default
// counter-based labels would collide.
type uuidFactory struct{}

// NewUUIDFactory returns a DataFactory that mints blank nodes with
// random UUID labels instead of per-decoder sequential counters.
func NewUUIDFactory() DataFactory { return uuidFactory{} }

func (uuidFactory) NewIRI(value string) IRI { return IRI{Value: value} }

func (uuidFactory) NewBlankNode(id string) Blank { return Blank{ID: id} }

func (uuidFactory) NewBlankNodeAuto() Blank {
	return Blank{ID: uuid.NewString()}
}

func (uuidFactory) NewLiteral(lexical string, langOrDatatype interface{}) Literal {
	return newLiteralFrom(lexical, langOrDatatype)
}

func (uuidFactory) NewQuad(s Subject, p IRI, o Term, g Term) Quad {
	return Quad{Subject: s, Predicate: p, Object: o, Graph: g}
}

func (uuidFactory) DefaultGraph() Term { return DefaultGraph }

// newLiteralFrom builds a Literal from a lexical form and either a
// language tag (string) or a datatype (IRI); nil means xsd:string.
func newLiteralFrom(lexical string, langOrDatatype interface{}) Literal {
	switch v := langOrDatatype.(type) {
	case nil:
		return NewLiteral(lexical)
	case string:
		if v == "" {
			return NewLiteral(lexical)
		}
		return NewLangLiteral(lexical, v)
	case IRI:
		return NewTypedLiteral(lexical, v)
	default:
		return NewLiteral(lexical)
	}
}
