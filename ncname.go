package rdfxml

import "regexp"

// rgxpNCName matches a legal XML NCName (Namespaces in XML, §3), the
// grammar rdf:ID, rdf:nodeID and BNode identifiers must satisfy. Grounded
// directly on the teacher's own rgxpNCName in rdfxml.go.
var rgxpNCName = regexp.MustCompile(`^[\pL_][\d\pL\pM_.-]*$`)

// isNCName reports whether s is a legal XML NCName.
func isNCName(s string) bool {
	return s != "" && rgxpNCName.MatchString(s)
}
