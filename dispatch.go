package rdfxml

import (
	"fmt"
	"strings"

	"github.com/go-rdf/rdfxml/internal/xmltoken"
)

// openTag dispatches an open-tag event to the resource-mode handler,
// the property-mode handler, or (when the top frame is capturing an
// rdf:parseType="Literal" subtree) the XMLLiteral child handler,
// spec.md §4.5.
func (d *Decoder) openTag(ev xmltoken.Event) {
	if d.opts.maxNestingDepth > 0 && len(d.stack) > d.opts.maxNestingDepth {
		line, col := d.pos()
		fail(KindSyntaxError, line, col, "maximum nesting depth %d exceeded", d.opts.maxNestingDepth)
	}
	top := d.top()
	if top.childrenStringTags != nil {
		d.openLiteralChild(ev)
		return
	}
	switch top.childrenParseType {
	case modeResource:
		d.openResource(ev)
	case modeProperty:
		d.openProperty(ev)
	}
}

// text implements spec.md §4.4.
func (d *Decoder) text(ev xmltoken.Event) {
	top := d.top()
	if top.childrenStringTags != nil {
		*top.childrenStringTags = append(*top.childrenStringTags, escapeXMLText(ev.Text))
		return
	}
	if top.hasPredicate {
		top.text += ev.Text
		top.hasText = true
	}
}

// closeTag implements spec.md §4.6.
func (d *Decoder) closeTag(ev xmltoken.Event) {
	f := d.pop()

	if f.nsPushed {
		f.namespaces.pop()
	}

	if f.childrenStringEmitClosingTag != "" {
		*f.childrenStringTags = append(*f.childrenStringTags, f.childrenStringEmitClosingTag)
		return
	}

	if f.childrenStringTags != nil {
		f.datatype = RDFXMLLiteral
		f.hasDatatype = true
		f.text = strings.Join(*f.childrenStringTags, "")
		f.hasText = true
		f.hadChildren = false
	}

	if f.hasCollectionSubject {
		d.emit(f.childrenCollectionSubject, f.childrenCollectionPredicate, RDFNil, reifyPtr(f))
		return
	}

	if !f.hasPredicate {
		return
	}

	if !f.hadChildren {
		var lit Literal
		switch {
		case f.hasDatatype:
			lit = d.opts.factory.NewLiteral(f.text, f.datatype)
		case f.language != "":
			lit = d.opts.factory.NewLiteral(f.text, f.language)
		default:
			lit = d.opts.factory.NewLiteral(f.text, nil)
		}
		d.emit(f.subject, f.predicate, lit, reifyPtr(f))
		return
	}

	if !f.predicateEmitted {
		b := d.mintBlank()
		d.emit(f.subject, f.predicate, b, reifyPtr(f))
		for _, dp := range f.deferred {
			d.emit(b, dp.predicate, dp.object, nil)
		}
	}
}

// openLiteralChild implements spec.md §4.5: a child of an
// rdf:parseType="Literal" property is not parsed as RDF at all, it is
// serialized back out into the shared text buffer verbatim.
func (d *Decoder) openLiteralChild(ev xmltoken.Event) {
	top := d.top()

	written := top.childrenStringNSWritten
	if written == nil {
		m := make(map[string]bool)
		written = &m
	}

	var b strings.Builder
	b.WriteByte('<')
	name, nsAttr := d.qualify(top.namespaces, ev.Space, ev.Local, *written)
	b.WriteString(name)
	if nsAttr != "" {
		b.WriteString(nsAttr)
		(*written)[ev.Space] = true
	}
	for _, a := range ev.Attrs {
		if a.Local == "xmlns" && a.Space == "" {
			continue
		}
		if a.Space == "xmlns" {
			continue
		}
		aname, ansAttr := d.qualify(top.namespaces, a.Space, a.Local, *written)
		b.WriteByte(' ')
		b.WriteString(aname)
		if ansAttr != "" {
			b.WriteString(ansAttr)
			(*written)[a.Space] = true
		}
		fmt.Fprintf(&b, `="%s"`, escapeXMLAttr(a.Value))
	}
	b.WriteByte('>')

	*top.childrenStringTags = append(*top.childrenStringTags, b.String())

	placeholder := &activeTag{
		namespaces:                   top.namespaces,
		childrenStringTags:           top.childrenStringTags,
		childrenStringNSWritten:      written,
		childrenStringEmitClosingTag: "</" + name + ">",
	}
	d.push(placeholder)
}

// qualify renders an element/attribute name for XMLLiteral
// serialization as "prefix:local", minting and declaring a synthetic
// prefix the first time a namespace URI is seen in the captured buffer.
// Returns the name and, the first time this URI is written, an
// ` xmlns:prefix="uri"` fragment to append after it.
func (d *Decoder) qualify(ns *namespaceStack, uri, local string, written map[string]bool) (name string, nsAttr string) {
	if uri == "" {
		return local, ""
	}
	prefix := ns.prefixFor(uri)
	if prefix == "" {
		prefix = fmt.Sprintf("ns%d", len(written))
	}
	name = prefix + ":" + local
	if written[uri] {
		return name, ""
	}
	return name, fmt.Sprintf(` xmlns:%s="%s"`, prefix, escapeXMLAttr(uri))
}

func escapeXMLText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

func escapeXMLAttr(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", `"`, "&quot;")
	return r.Replace(s)
}
