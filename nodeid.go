package rdfxml

// idRegistry tracks rdf:ID values seen per in-scope base IRI, so the
// decoder can reject (or, with AllowDuplicateRdfIDs, ignore) a repeated
// rdf:ID that would otherwise silently produce two distinct resources
// both claiming the same identity. Deliberately no mutex: spec.md §5
// fixes decoding as strictly single-threaded, unlike the goroutine-based
// tree loader this package's domain sibling in the pack uses.
type idRegistry struct {
	seen map[string]map[string]bool
}

func newIDRegistry() *idRegistry {
	return &idRegistry{seen: make(map[string]map[string]bool)}
}

// claim records id against baseIRI, reporting false if it was already
// claimed under that same base.
func (r *idRegistry) claim(baseIRI, id string) bool {
	m, ok := r.seen[baseIRI]
	if !ok {
		m = make(map[string]bool)
		r.seen[baseIRI] = m
	}
	if m[id] {
		return false
	}
	m[id] = true
	return true
}
