package rdfxml

// Options holds the configuration a Decoder is built with. Callers never
// construct it directly; they pass Option values to NewDecoder, the
// functional-options generalization of the teacher's single SetOption
// method (rdfxml.go's Decoder.SetOption switches on a closed set of
// named options — this package needs several independently toggleable
// ones, so options.go promotes that to the standard Go pattern).
type Options struct {
	baseIRI           string
	strict            bool
	trackPosition     bool
	allowDuplicateIDs bool
	factory           DataFactory
	defaultGraph      Term
	validateLang      bool
	maxNestingDepth   int
}

// Option configures a Decoder.
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		factory:         NewCounterFactory(),
		defaultGraph:    DefaultGraph,
		trackPosition:   true,
		maxNestingDepth: 0,
	}
}

// TrackPosition controls whether ParseError.Line/Col are populated.
// Enabled by default; disabling it skips a position lookup per token,
// relevant only for documents large enough that the lookup cost matters.
func TrackPosition(track bool) Option {
	return func(o *Options) { o.trackPosition = track }
}

// WithBaseIRI sets the initial in-scope base IRI, used when the document
// itself carries no xml:base on its root element. Typically the
// document's retrieval URL.
func WithBaseIRI(iri string) Option {
	return func(o *Options) { o.baseIRI = iri }
}

// Strict makes the decoder reject constructs the lenient default
// tolerates: the underlying XML tokenizer runs in strict mode, and
// invalid xml:lang tags are rejected outright instead of being accepted
// as opaque strings. It does not affect duplicate rdf:ID handling,
// which AllowDuplicateRdfIDs alone controls.
func Strict(strict bool) Option {
	return func(o *Options) {
		o.strict = strict
		o.validateLang = strict
	}
}

// AllowDuplicateRdfIDs controls whether a repeated rdf:ID (for the same
// in-scope base IRI) is an error or silently accepted. RDF/XML forbids
// duplicates, but many real documents violate this, and the teacher's
// own doc.go comment on this decoder records the same leniency
// trade-off; default false.
func AllowDuplicateRdfIDs(allow bool) Option {
	return func(o *Options) { o.allowDuplicateIDs = allow }
}

// WithDataFactory overrides the default sequential-counter blank node
// factory, e.g. with NewUUIDFactory() or a caller-supplied
// implementation.
func WithDataFactory(f DataFactory) Option {
	return func(o *Options) { o.factory = f }
}

// WithDefaultGraph sets the graph term attached to every emitted quad.
// Defaults to DefaultGraph, the sentinel meaning "no named graph".
func WithDefaultGraph(g Term) Option {
	return func(o *Options) { o.defaultGraph = g }
}

// MaxNestingDepth bounds how deeply property/resource elements may
// nest before decoding fails with KindSyntaxError, guarding against
// unbounded-memory pathological input. Zero (the default) means
// unbounded.
func MaxNestingDepth(depth int) Option {
	return func(o *Options) { o.maxNestingDepth = depth }
}
