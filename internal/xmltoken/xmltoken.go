// Package xmltoken adapts encoding/xml into the four-event tokenizer
// contract the rdfxml decoder drives: open-tag, text, close-tag and
// doctype. It is the one concrete implementation of that contract this
// module ships; the decoder itself only depends on the Tokenizer
// interface.
//
// Namespace resolution is left to encoding/xml itself, the same way the
// teacher's rdfxml.go drives it: xml.Name.Space already carries the
// resolved namespace IRI (or, for a prefix with no in-scope xmlns
// binding, the literal prefix text), so Event.Space/Local are passed
// through unchanged rather than re-resolved by a second namespace stack.
package xmltoken

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Kind identifies which of the four events an Event carries.
type Kind int

// The four event kinds a Tokenizer emits, plus EOF.
const (
	KindOpenTag Kind = iota
	KindText
	KindCloseTag
	KindDoctype
	KindEOF
)

// Attr is one attribute of an open-tag event. Space is the resolved
// namespace IRI (empty for an unprefixed attribute, per XML Namespaces
// §6.2), Raw is the attribute's local name as returned by rawName (the
// source prefix is not recoverable once encoding/xml has resolved it).
type Attr struct {
	Space string
	Local string
	Raw   string
	Value string
}

// Event is the tagged union passed from Tokenizer.Next to the decoder.
type Event struct {
	Kind    Kind
	Space   string
	Local   string
	Raw     string
	Attrs   []Attr
	Text    string
	Doctype string
}

// Tokenizer is the pull interface the decoder drives one event at a
// time.
type Tokenizer interface {
	Next() (Event, error)
	RegisterEntity(name, value string)
	Pos() (line, col int)
}

type decoder struct {
	xd       *xml.Decoder
	entities map[string]string
}

// New builds a Tokenizer reading from r. When strict is false, the
// underlying xml.Decoder tolerates unbalanced entity references and
// non-well-formed constructs some real-world RDF/XML documents contain,
// matching the teacher's own lenient default.
func New(r io.Reader, strict bool) Tokenizer {
	d := &decoder{entities: make(map[string]string)}
	xd := xml.NewDecoder(r)
	xd.Strict = strict
	xd.CharsetReader = charset.NewReaderLabel
	xd.Entity = d.entities
	d.xd = xd
	return d
}

func (d *decoder) RegisterEntity(name, value string) {
	d.entities[name] = value
}

func (d *decoder) Pos() (line, col int) {
	return d.xd.InputPos()
}

func (d *decoder) Next() (Event, error) {
	for {
		tok, err := d.xd.Token()
		if err != nil {
			if err == io.EOF {
				return Event{Kind: KindEOF}, nil
			}
			return Event{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			attrs := make([]Attr, 0, len(t.Attr))
			for _, a := range t.Attr {
				attrs = append(attrs, Attr{Space: a.Name.Space, Local: a.Name.Local, Raw: rawName(a.Name), Value: a.Value})
			}
			return Event{Kind: KindOpenTag, Space: t.Name.Space, Local: t.Name.Local, Raw: rawName(t.Name), Attrs: attrs}, nil
		case xml.EndElement:
			return Event{Kind: KindCloseTag, Space: t.Name.Space, Local: t.Name.Local, Raw: rawName(t.Name)}, nil
		case xml.CharData:
			s := string(t)
			if strings.TrimSpace(s) == "" {
				continue
			}
			return Event{Kind: KindText, Text: s}, nil
		case xml.Directive:
			if bytes.HasPrefix(bytes.TrimSpace(t), []byte("DOCTYPE")) {
				return Event{Kind: KindDoctype, Doctype: string(t)}, nil
			}
			continue
		default:
			continue
		}
	}
}

// rawName reconstructs the element/attribute's original textual form.
// Once encoding/xml resolves a prefix to a namespace IRI, the literal
// prefix is lost; this only recovers a usable approximation ("local"
// with no prefix) since the resolved Space is what the rest of the
// decoder acts on anyway, so the result is always the bare local name.
func rawName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Local
}
