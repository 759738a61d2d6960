package rdfxml

import (
	"strings"

	"github.com/go-rdf/rdfxml/internal/xmltoken"
)

// openProperty implements the property-mode (property element) handler,
// spec.md §4.3.
func (d *Decoder) openProperty(ev xmltoken.Event) {
	parent := d.top()
	line, col := d.pos()

	frame := parent.child()
	frame.childrenParseType = modeResource
	frame.subject = parent.subject

	isRDFNS := ev.Space == RDFNamespace

	var predicate IRI
	if isRDFNS && ev.Local == "li" {
		parent.listItemCounter++
		predicate = d.opts.factory.NewIRI(RDFNamespace + listItemLocal(parent.listItemCounter))
	} else {
		if isRDFNS && rdfLocalForbiddenAsPropertyElement[ev.Local] {
			if rdfUnsupportedAttributes[ev.Local] {
				fail(KindUnsupportedFeature, line, col, "rdf:%s is not part of RDF/XML", ev.Local)
			}
			fail(KindForbiddenName, line, col, "rdf:%s cannot be used as a property element", ev.Local)
		}
		predicate = d.opts.factory.NewIRI(ev.Space + ev.Local)
	}
	frame.predicate = predicate
	frame.hasPredicate = true

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

	var (
		activeSubSubjectValue string
		hasSubSubjectValue    bool
		subSubjectValueBlank  = true
		parseTypeSet          bool
		attributedProperty    bool
	)

	for _, a := range ev.Attrs {
		switch {
		case a.Local == "xmlns" && a.Space == "", a.Space == "xmlns":
			continue
		case a.Space == XMLNamespace:
			continue
		case a.Space == RDFNamespace && a.Local == "resource":
			if hasSubSubjectValue || parseTypeSet {
				fail(KindConflictingAttributes, line, col, "rdf:resource conflicts with rdf:nodeID or rdf:parseType")
			}
			activeSubSubjectValue = d.resolve(frame.baseIRI, a.Value)
			subSubjectValueBlank = false
			hasSubSubjectValue = true
			frame.hadChildren = true
		case a.Space == RDFNamespace && a.Local == "nodeID":
			if hasSubSubjectValue || parseTypeSet || attributedProperty || frame.hadChildren {
				fail(KindConflictingAttributes, line, col, "rdf:nodeID conflicts with rdf:resource, rdf:parseType or a property attribute")
			}
			if !isNCName(a.Value) {
				fail(KindInvalidNCName, line, col, "rdf:nodeID value %q is not a legal NCName", a.Value)
			}
			activeSubSubjectValue = a.Value
			subSubjectValueBlank = true
			hasSubSubjectValue = true
			frame.hadChildren = true
		case a.Space == RDFNamespace && a.Local == "datatype":
			if parseTypeSet || attributedProperty {
				fail(KindConflictingAttributes, line, col, "rdf:datatype conflicts with rdf:parseType or a property attribute")
			}
			frame.datatype = d.opts.factory.NewIRI(d.resolve(frame.baseIRI, a.Value))
			frame.hasDatatype = true
		case a.Space == RDFNamespace && a.Local == "parseType":
			if frame.hasDatatype || hasSubSubjectValue || attributedProperty {
				fail(KindConflictingAttributes, line, col, "rdf:parseType conflicts with rdf:datatype, a sub-subject attribute or a property attribute")
			}
			parseTypeSet = true
			switch a.Value {
			case "Resource":
				frame.childrenParseType = modeProperty
				b := d.mintBlank()
				d.emit(frame.subject, frame.predicate, b, reifyPtr(frame))
				frame.subject = b
				frame.predicate = IRI{}
				frame.hasPredicate = false
			case "Collection":
				frame.childrenCollectionSubject = frame.subject
				frame.hasCollectionSubject = true
				frame.childrenCollectionPredicate = frame.predicate
				frame.hadChildren = true
			case "Literal":
				tags := make([]string, 0, 4)
				frame.childrenStringTags = &tags
			}
		case a.Space == RDFNamespace && a.Local == "ID":
			if !isNCName(a.Value) {
				fail(KindInvalidNCName, line, col, "rdf:ID value %q is not a legal NCName", a.Value)
			}
			if !d.ids.claim(frame.baseIRI, a.Value) && !d.opts.allowDuplicateIDs {
				fail(KindDuplicateID, line, col, "duplicate rdf:ID %q", a.Value)
			}
			frame.reifiedStatementID = d.opts.factory.NewIRI(frame.baseIRI + "#" + a.Value)
			frame.hasReifiedStatementID = true
		case a.Space == RDFNamespace && rdfUnsupportedAttributes[a.Local]:
			fail(KindUnsupportedFeature, line, col, "rdf:%s is not part of RDF/XML", a.Local)
		case a.Space != "":
			if parseTypeSet || frame.hasDatatype {
				fail(KindConflictingAttributes, line, col, "property attribute %s conflicts with rdf:parseType or rdf:datatype", a.Local)
			}
			attributedProperty = true
			frame.hadChildren = true
			lit := d.opts.factory.NewLiteral(a.Value, frame.language)
			frame.deferred = append(frame.deferred, deferredProp{predicate: d.opts.factory.NewIRI(a.Space + a.Local), object: lit})
		}
	}

	if hasSubSubjectValue {
		var resolved Subject
		if subSubjectValueBlank {
			resolved = d.opts.factory.NewBlankNode(activeSubSubjectValue)
		} else {
			resolved = d.opts.factory.NewIRI(activeSubSubjectValue)
		}
		d.emit(frame.subject, frame.predicate, resolved, reifyPtr(frame))
		for _, dp := range frame.deferred {
			d.emit(resolved, dp.predicate, dp.object, nil)
		}
		frame.deferred = nil
		frame.subject = resolved
		frame.predicateEmitted = true
	}

	d.push(frame)
}

// listItemLocal returns the rdf:_n local name for container item index n.
func listItemLocal(n int) string {
	digits := make([]byte, 0, 4)
	digits = appendInt(digits, n)
	return "_" + string(digits)
}

func appendInt(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	start := len(b)
	for n > 0 {
		b = append(b, byte('0'+n%10))
		n /= 10
	}
	// reverse the appended digits
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
