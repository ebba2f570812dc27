package schema

import "strings"

// Property is a single X- extension on a schema definition, for example
// X-ORIGIN 'RFC 4519'. The order of properties, and of the values within
// one property, is preserved from the definition they came from.
type Property struct {
	Name   string
	Values []string
}

// element holds the fields shared by every schema definition kind.
type element struct {
	description     string
	extraProperties []Property
}

// Description returns the DESC text, or the empty string if none was
// declared.
func (e *element) Description() string {
	return e.description
}

// ExtraProperties returns the X- extensions in declaration order.
func (e *element) ExtraProperties() []Property {
	props := make([]Property, len(e.extraProperties))
	copy(props, e.extraProperties)
	return props
}

// writeExtensions renders the X- extensions in declaration order.
func (e *element) writeExtensions(b *strings.Builder) {
	for _, p := range e.extraProperties {
		writeQuotedList(b, p.Name, p.Values)
	}
}

// writeQualifier appends " KEYWORD value".
func writeQualifier(b *strings.Builder, keyword, value string) {
	b.WriteString(" ")
	b.WriteString(keyword)
	b.WriteString(" ")
	b.WriteString(value)
}

// writeQuotedQualifier appends " KEYWORD 'value'".
func writeQuotedQualifier(b *strings.Builder, keyword, value string) {
	b.WriteString(" ")
	b.WriteString(keyword)
	b.WriteString(" '")
	b.WriteString(value)
	b.WriteString("'")
}

// writeQuotedList appends " KEYWORD 'v'" for one value and
// " KEYWORD ( 'v1' 'v2' )" for several. Nothing is written for an empty
// list.
func writeQuotedList(b *strings.Builder, keyword string, values []string) {
	if len(values) == 0 {
		return
	}
	if len(values) == 1 {
		writeQuotedQualifier(b, keyword, values[0])
		return
	}
	b.WriteString(" ")
	b.WriteString(keyword)
	b.WriteString(" (")
	for _, v := range values {
		b.WriteString(" '")
		b.WriteString(v)
		b.WriteString("'")
	}
	b.WriteString(" )")
}

// writeOIDList appends " KEYWORD oid" for one OID and
// " KEYWORD ( oid1 $ oid2 )" for several.
func writeOIDList(b *strings.Builder, keyword string, oids []string) {
	if len(oids) == 0 {
		return
	}
	b.WriteString(" ")
	b.WriteString(keyword)
	b.WriteString(" ")
	if len(oids) == 1 {
		b.WriteString(oids[0])
		return
	}
	b.WriteString("( ")
	for i, oid := range oids {
		if i > 0 {
			b.WriteString(" $ ")
		}
		b.WriteString(oid)
	}
	b.WriteString(" )")
}

// nameOrOID returns the first declared name, falling back to the OID when
// no names were declared.
func nameOrOID(names []string, oid string) string {
	if len(names) > 0 {
		return names[0]
	}
	return oid
}

// containsFold reports whether name matches any entry case-insensitively.
func containsFold(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

func copyStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func copyProperties(props []Property) []Property {
	if len(props) == 0 {
		return nil
	}
	out := make([]Property, len(props))
	for i, p := range props {
		out[i] = Property{Name: p.Name, Values: copyStrings(p.Values)}
	}
	return out
}
