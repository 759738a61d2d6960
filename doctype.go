package rdfxml

import (
	"regexp"

	"github.com/go-rdf/rdfxml/internal/xmltoken"
)

// rgxpEntity matches <!ENTITY name "value"> or <!ENTITY name 'value'>
// declarations inside a DOCTYPE internal subset, spec.md §4.7.
var rgxpEntity = regexp.MustCompile(`<!ENTITY\s+(\S+)\s+(?:"([^"]*)"|'([^']*)')\s*>`)

// doctype implements spec.md §4.7: scan the doctype string for entity
// declarations and register each with the tokenizer so later &name;
// references in the document body expand to value.
func (d *Decoder) doctype(ev xmltoken.Event) {
	for _, m := range rgxpEntity.FindAllStringSubmatch(ev.Doctype, -1) {
		name := m[1]
		value := m[2]
		if value == "" && m[3] != "" {
			value = m[3]
		}
		d.tok.RegisterEntity(name, value)
	}
}
