package rdfxml

// parseMode is the mode a frame's children will be parsed in: as node
// elements (RESOURCE) or as property elements (PROPERTY).
type parseMode int

const (
	modeResource parseMode = iota
	modeProperty
)

// deferredProp is one (predicate, object) pair recorded on a property
// element frame before its resource-producing sub-subject is known, to
// be replayed once the subject is decided (spec.md §4.3 step 5, §4.6
// step 4).
type deferredProp struct {
	predicate IRI
	object    Term
}

// activeTag is one frame of the active-tag stack, spec.md §3. Every
// field is described there; this mirrors it field for field rather than
// splitting into separate resource/property frame types, matching the
// single-struct state shape the teacher's rdfxml.go itself uses for its
// decoding context (elementCtx/Decoder.ctx).
type activeTag struct {
	namespaces *namespaceStack
	nsPushed   bool
	baseIRI    string
	language   string

	subject   Subject
	predicate IRI
	hasPredicate bool

	childrenParseType parseMode

	hadChildren bool

	text     string
	hasText  bool
	datatype IRI
	hasDatatype bool

	predicateEmitted bool
	deferred         []deferredProp

	listItemCounter int

	reifiedStatementID    IRI
	hasReifiedStatementID bool

	// XMLLiteral accumulation (spec.md §4.5).
	childrenStringTags           *[]string
	childrenStringNSWritten      *map[string]bool
	childrenStringEmitClosingTag string

	// rdf:parseType="Collection" tail pointer (spec.md §4.2 step 6,
	// §4.3 step 4).
	childrenCollectionSubject   Subject
	hasCollectionSubject        bool
	childrenCollectionPredicate IRI
}

// newRootTag builds the synthetic frame representing the document
// itself, before any element has opened: RESOURCE mode, no subject, the
// configured base IRI and no language.
func newRootTag(baseIRI string) *activeTag {
	return &activeTag{
		namespaces:        newNamespaceStack(),
		baseIRI:           baseIRI,
		childrenParseType: modeResource,
	}
}

// child creates the next stack frame, inheriting namespaces, baseIRI and
// language from the parent unless overridden by the caller afterward.
func (t *activeTag) child() *activeTag {
	return &activeTag{
		namespaces: t.namespaces,
		baseIRI:    t.baseIRI,
		language:   t.language,
	}
}
