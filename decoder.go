package rdfxml

import (
	"io"

	"github.com/pkg/errors"

	"github.com/go-rdf/rdfxml/internal/xmltoken"
)

// Decoder reads an RDF/XML document and produces a stream of Quads. It
// owns the active-tag stack and node-ID registry; neither is exposed
// (spec.md §5). A Decoder processes exactly one document and is not
// safe for concurrent use, the same single-pass contract the teacher's
// rdfXMLDecoder documents for itself.
type Decoder struct {
	tok   xmltoken.Tokenizer
	opts  *Options
	ids   *idRegistry
	stack []*activeTag

	buf []Quad
	err error
	eof bool
}

// NewDecoder returns a Decoder reading RDF/XML from r, configured by
// opts.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	d := &Decoder{
		tok:  xmltoken.New(r, o.strict),
		opts: o,
		ids:  newIDRegistry(),
	}
	root := newRootTag(o.baseIRI)
	d.stack = append(d.stack, root)
	return d
}

// Decode returns the next quad, or io.EOF once the document is
// exhausted. On a malformed document it returns the error, and every
// further call returns the same error again.
func (d *Decoder) Decode() (Quad, error) {
	for len(d.buf) == 0 {
		if d.err != nil {
			return Quad{}, d.err
		}
		if d.eof {
			return Quad{}, io.EOF
		}
		d.step()
	}
	q := d.buf[0]
	d.buf = d.buf[1:]
	return q, nil
}

// DecodeAll drains the entire document into a slice.
func (d *Decoder) DecodeAll() ([]Quad, error) {
	var out []Quad
	for {
		q, err := d.Decode()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, q)
	}
}

// step pulls and dispatches exactly one tokenizer event, buffering any
// quads the handler emits and converting a recovered parsePanic into
// d.err. This recover boundary mirrors the teacher's own
// rdfXMLDecoder.recover, generalized from a single bare error to the
// typed ParseError this package returns.
func (d *Decoder) step() {
	defer func() {
		if r := recover(); r != nil {
			pp, ok := r.(parsePanic)
			if !ok {
				panic(r)
			}
			d.err = pp.err
			d.eof = true
		}
	}()

	ev, err := d.tok.Next()
	if err != nil {
		line, col := d.pos()
		d.err = newParseError(KindSyntaxError, line, col, err, "xml: %s", err.Error())
		d.eof = true
		return
	}

	switch ev.Kind {
	case xmltoken.KindEOF:
		d.eof = true
	case xmltoken.KindOpenTag:
		d.openTag(ev)
	case xmltoken.KindText:
		d.text(ev)
	case xmltoken.KindCloseTag:
		d.closeTag(ev)
	case xmltoken.KindDoctype:
		d.doctype(ev)
	}
}

func (d *Decoder) pos() (int, int) {
	if !d.opts.trackPosition {
		return 0, 0
	}
	return d.tok.Pos()
}

func (d *Decoder) top() *activeTag { return d.stack[len(d.stack)-1] }

func (d *Decoder) push(t *activeTag) { d.stack = append(d.stack, t) }

func (d *Decoder) pop() *activeTag {
	t := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	return t
}

// emit appends a quad to the output buffer and, when reify is non-nil,
// additionally emits the four reification quads of spec.md §4.8 against
// the same subject/predicate/object.
func (d *Decoder) emit(s Subject, p IRI, o Term, reify *IRI) {
	g := d.opts.defaultGraph
	d.buf = append(d.buf, d.opts.factory.NewQuad(s, p, o, g))
	if reify == nil {
		return
	}
	r := *reify
	d.buf = append(d.buf, d.opts.factory.NewQuad(r, RDFType, RDFStatement, g))
	d.buf = append(d.buf, d.opts.factory.NewQuad(r, RDFSubject, s, g))
	d.buf = append(d.buf, d.opts.factory.NewQuad(r, RDFPredicate, p, g))
	d.buf = append(d.buf, d.opts.factory.NewQuad(r, RDFObject, o, g))
}

// mintBlank returns a fresh blank node from the configured factory.
func (d *Decoder) mintBlank() Blank { return d.opts.factory.NewBlankNodeAuto() }

// resolve resolves ref (an IRI reference as found in rdf:about,
// rdf:resource, xml:base, etc.) against the given base, rejecting ref
// up front if it contains a character the generic URI/IRI grammar
// forbids (spec.md §1/§7, KindInvalidIRI).
func (d *Decoder) resolve(base, ref string) string {
	if err := checkIRIChars(ref); err != nil {
		line, col := d.pos()
		failWrap(KindInvalidIRI, line, col, err, "invalid IRI reference %q", ref)
	}
	return resolveIRI(base, ref)
}

// reifyPtr returns a pointer to t's reifiedStatementID, or nil if the
// frame has none, for passing to emit's reify parameter.
func reifyPtr(t *activeTag) *IRI {
	if !t.hasReifiedStatementID {
		return nil
	}
	id := t.reifiedStatementID
	return &id
}

// wrapCause lets handlers surface a non-parsePanic error (e.g. an
// xml:lang validation failure) as a ParseError of the given kind without
// losing the original cause.
func wrapCause(kind Kind, line, col int, err error) {
	panic(parsePanic{err: newParseError(kind, line, col, errors.WithStack(err), "%s", err.Error())})
}
