package rdfxml

import (
	"strings"

	"github.com/go-rdf/rdfxml/internal/xmltoken"
)

// shorthandProp is a property-shorthand attribute recorded during the
// node-element attribute walk (spec.md §4.2 step 3), buffered until the
// subject is finalized.
type shorthandProp struct {
	predicate  IRI
	value      string
	lang       string
	isTypeAttr bool
}

// openResource implements the resource-mode (node element) handler,
// spec.md §4.2.
func (d *Decoder) openResource(ev xmltoken.Event) {
	parent := d.top()
	isRoot := len(d.stack) == 1
	line, col := d.pos()

	frame := parent.child()
	frame.childrenParseType = modeProperty

	isRDFNS := ev.Space == RDFNamespace

	if isRDFNS && rdfLocalForbiddenAsNodeElement[ev.Local] && !(ev.Local == "RDF" && isRoot) {
		if rdfUnsupportedAttributes[ev.Local] {
			fail(KindUnsupportedFeature, line, col, "rdf:%s is not part of RDF/XML", ev.Local)
		}
		fail(KindForbiddenName, line, col, "rdf:%s cannot be used as a node element", ev.Local)
	}

	typed := true
	isWrapper := isRDFNS && ev.Local == "RDF"
	var tagType IRI
	switch {
	case isWrapper:
		frame.childrenParseType = modeResource
		typed = false
	case isRDFNS && ev.Local == RDFDescription:
		typed = false
	default:
		tagType = d.opts.factory.NewIRI(ev.Space + ev.Local)
	}

	// First pass: namespace declarations, xml:base, xml:lang — these
	// scope the whole element regardless of attribute order.
	var nsDecls map[string]string
	for _, a := range ev.Attrs {
		switch {
		case a.Local == "xmlns" && a.Space == "":
			if nsDecls == nil {
				nsDecls = make(map[string]string)
			}
			nsDecls[""] = a.Value
		case a.Space == "xmlns":
			if nsDecls == nil {
				nsDecls = make(map[string]string)
			}
			nsDecls[a.Local] = a.Value
		case a.Space == XMLNamespace && a.Local == "base":
			frame.baseIRI = d.resolve(frame.baseIRI, a.Value)
		case a.Space == XMLNamespace && a.Local == "lang":
			if d.opts.validateLang {
				if err := validateLangTag(a.Value); err != nil {
					wrapCause(KindSyntaxError, line, col, err)
				}
			}
			frame.language = strings.ToLower(a.Value)
		}
	}
	if nsDecls != nil {
		parent.namespaces.push(nsDecls)
		frame.nsPushed = true
	}

	// Second pass: subject identity, rdf:type, property shorthands.
	var subjectSet bool
	var shorthands []shorthandProp
	for _, a := range ev.Attrs {
		switch {
		case a.Local == "xmlns" && a.Space == "", a.Space == "xmlns":
			continue
		case a.Space == XMLNamespace:
			continue
		case a.Space == RDFNamespace && a.Local == "about":
			if subjectSet {
				fail(KindConflictingAttributes, line, col, "element has more than one of rdf:about, rdf:ID, rdf:nodeID")
			}
			frame.subject = d.opts.factory.NewIRI(d.resolve(frame.baseIRI, a.Value))
			subjectSet = true
		case a.Space == RDFNamespace && a.Local == "ID":
			if subjectSet {
				fail(KindConflictingAttributes, line, col, "element has more than one of rdf:about, rdf:ID, rdf:nodeID")
			}
			if !isNCName(a.Value) {
				fail(KindInvalidNCName, line, col, "rdf:ID value %q is not a legal NCName", a.Value)
			}
			if !d.ids.claim(frame.baseIRI, a.Value) && !d.opts.allowDuplicateIDs {
				fail(KindDuplicateID, line, col, "duplicate rdf:ID %q", a.Value)
			}
			frame.subject = d.opts.factory.NewIRI(frame.baseIRI + "#" + a.Value)
			subjectSet = true
		case a.Space == RDFNamespace && a.Local == "nodeID":
			if subjectSet {
				fail(KindConflictingAttributes, line, col, "element has more than one of rdf:about, rdf:ID, rdf:nodeID")
			}
			if !isNCName(a.Value) {
				fail(KindInvalidNCName, line, col, "rdf:nodeID value %q is not a legal NCName", a.Value)
			}
			frame.subject = d.opts.factory.NewBlankNode(a.Value)
			subjectSet = true
		case a.Space == RDFNamespace && rdfUnsupportedAttributes[a.Local]:
			fail(KindUnsupportedFeature, line, col, "rdf:%s is not part of RDF/XML", a.Local)
		case a.Space == RDFNamespace && a.Local == "li":
			fail(KindForbiddenName, line, col, "rdf:li cannot be used as an attribute")
		case a.Space == RDFNamespace && a.Local == "type":
			// Deferred: emitted after subject resolution, step 8.
			shorthands = append(shorthands, shorthandProp{predicate: RDFType, value: a.Value, isTypeAttr: true})
		case a.Space != "":
			shorthands = append(shorthands, shorthandProp{predicate: d.opts.factory.NewIRI(a.Space + a.Local), value: a.Value, lang: frame.language})
		}
	}

	if !subjectSet && !isWrapper {
		frame.subject = d.mintBlank()
	}

	if typed {
		d.emit(frame.subject, RDFType, tagType, reifyPtr(parent))
	}

	if parent.hasPredicate {
		parent.hadChildren = true
		if parent.hasCollectionSubject {
			cell := d.mintBlank()
			d.emit(parent.childrenCollectionSubject, parent.childrenCollectionPredicate, cell, reifyPtr(parent))
			d.emit(cell, RDFFirst, frame.subject, nil)
			parent.childrenCollectionSubject = cell
			parent.childrenCollectionPredicate = RDFRest
		} else {
			d.emit(parent.subject, parent.predicate, frame.subject, reifyPtr(parent))
			for _, dp := range parent.deferred {
				d.emit(frame.subject, dp.predicate, dp.object, nil)
			}
			parent.deferred = nil
			parent.predicateEmitted = true
		}
	}

	for _, sh := range shorthands {
		if sh.isTypeAttr {
			d.emit(frame.subject, RDFType, d.opts.factory.NewIRI(d.resolve(frame.baseIRI, sh.value)), nil)
			continue
		}
		d.emit(frame.subject, sh.predicate, d.opts.factory.NewLiteral(sh.value, sh.lang), nil)
	}

	d.push(frame)
}
