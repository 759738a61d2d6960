package rdfxml

// Namespace prefixes fixed by the RDF/XML and XML Namespaces specs.
const (
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	XMLNamespace = "http://www.w3.org/XML/1998/namespace"
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

	// MIMEType is the IANA media type this decoder handles.
	MIMEType = "application/rdf+xml"
)

// RDF vocabulary terms used by the decoder itself (type, containers,
// collections, reification). Mirrors the constant var block at the top
// of the teacher's rdfxml.go, plus rdf:langString and rdf:XMLLiteral
// which RDF 1.1 added after that file was written.
var (
	RDFType      = IRI{Value: RDFNamespace + "type"}
	RDFFirst     = IRI{Value: RDFNamespace + "first"}
	RDFRest      = IRI{Value: RDFNamespace + "rest"}
	RDFNil       = IRI{Value: RDFNamespace + "nil"}
	RDFSubject   = IRI{Value: RDFNamespace + "subject"}
	RDFPredicate = IRI{Value: RDFNamespace + "predicate"}
	RDFObject    = IRI{Value: RDFNamespace + "object"}
	RDFStatement = IRI{Value: RDFNamespace + "Statement"}
	RDFXMLLiteral = IRI{Value: RDFNamespace + "XMLLiteral"}
	RDFLangString = IRI{Value: RDFNamespace + "langString"}
	RDFDescription = "Description"
	RDFBag         = "Bag"
	RDFSeq         = "Seq"
	RDFAlt         = "Alt"
	RDFList        = "List"
)

// XSD datatypes referenced by the decoder (literal construction falls
// back to xsd:string when no rdf:datatype is given).
var (
	XSDString = IRI{Value: XSDNamespace + "string"}
)

// rdfLocalForbiddenAsNodeElement is the forbidden node-element local-name
// set from spec.md §4.2 step 2 (rdf:RDF is allowed only at the document
// root, handled separately in openResource).
var rdfLocalForbiddenAsNodeElement = map[string]bool{
	"RDF": true, "ID": true, "about": true, "bagID": true,
	"parseType": true, "resource": true, "nodeID": true, "li": true,
	"aboutEach": true, "aboutEachPrefix": true,
}

// rdfLocalForbiddenAsPropertyElement is the forbidden property-element
// local-name set from spec.md §4.3 step 2.
var rdfLocalForbiddenAsPropertyElement = map[string]bool{
	"Description": true, "RDF": true, "ID": true, "about": true,
	"bagID": true, "parseType": true, "resource": true, "nodeID": true,
	"aboutEach": true, "aboutEachPrefix": true,
}

// rdfUnsupportedAttributes is the set of rdf: attributes that trigger an
// UnsupportedFeature error wherever they appear (spec.md §4.2, §4.3;
// these constructs were removed from RDF/XML before Recommendation).
var rdfUnsupportedAttributes = map[string]bool{
	"bagID": true, "aboutEach": true, "aboutEachPrefix": true,
}
