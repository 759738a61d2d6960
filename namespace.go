package rdfxml

// namespaceStack tracks the prefix-to-IRI bindings in scope at each
// point in the document (spec.md §3, §4.1). The decoder itself resolves
// element and attribute names through the tokenizer's already-resolved
// Space field (see internal/xmltoken), the same way the teacher's
// rdfxml.go drives encoding/xml directly; this stack exists alongside
// that for the one thing automatic resolution can't give back: mapping
// a namespace IRI back to a short prefix when serializing a captured
// rdf:parseType="Literal" subtree (spec.md §4.5), where the output must
// carry its own xmlns declarations.
type namespaceStack struct {
	frames []map[string]string
}

func newNamespaceStack() *namespaceStack {
	ns := &namespaceStack{}
	ns.push(map[string]string{
		"xml": XMLNamespace,
		"rdf": RDFNamespace,
	})
	return ns
}

// push adds a new innermost frame. binds may be nil when the element
// declares no new prefixes.
func (ns *namespaceStack) push(binds map[string]string) {
	ns.frames = append(ns.frames, binds)
}

// pop removes the innermost frame, called when leaving an element.
func (ns *namespaceStack) pop() {
	if len(ns.frames) > 0 {
		ns.frames = ns.frames[:len(ns.frames)-1]
	}
}

// prefixFor returns a prefix currently bound to uri, searching from the
// innermost frame outward, or "" if none is bound. Used only to
// reconstruct xmlns declarations inside a captured XMLLiteral.
func (ns *namespaceStack) prefixFor(uri string) string {
	for i := len(ns.frames) - 1; i >= 0; i-- {
		for p, v := range ns.frames[i] {
			if v == uri {
				return p
			}
		}
	}
	return ""
}
