package schema

import (
	"bytes"
	"strings"
)

// MatchingRuleKind identifies which comparison slot a matching rule
// serves on an attribute type.
type MatchingRuleKind int

const (
	// EqualityMatch rules decide whether two values are equal.
	EqualityMatch MatchingRuleKind = iota
	// OrderingMatch rules define a relative order between values.
	OrderingMatch
	// SubstringMatch rules evaluate substring assertions against values.
	SubstringMatch
	// ApproximateMatch rules decide whether two values are "close enough",
	// e.g. phonetically similar.
	ApproximateMatch
)

// String returns the slot name of the MatchingRuleKind.
func (k MatchingRuleKind) String() string {
	switch k {
	case EqualityMatch:
		return "equality"
	case OrderingMatch:
		return "ordering"
	case SubstringMatch:
		return "substring"
	case ApproximateMatch:
		return "approximate"
	default:
		return "unknown"
	}
}

// MatchingRuleDef carries the declared fields of a matching rule before
// it is added to a schema.
type MatchingRuleDef struct {
	OID             string
	Names           []string
	Description     string
	Obsolete        bool
	SyntaxOID       string
	Kind            MatchingRuleKind
	Normalizer      func([]byte) []byte
	ExtraProperties []Property
	RawDefinition   string
}

// MatchingRule defines how attribute values are compared for equality,
// ordering, substring, or approximate matching. Instances are immutable
// once their schema has been built.
type MatchingRule struct {
	element
	oid        string
	names      []string
	obsolete   bool
	syntaxOID  string
	kind       MatchingRuleKind
	normalizer func([]byte) []byte
	definition string

	// Populated by the schema build.
	syntax *Syntax
}

// NewMatchingRule builds a MatchingRule from its declared fields. The OID
// and syntax OID are required.
func NewMatchingRule(def MatchingRuleDef) (*MatchingRule, error) {
	name := nameOrOID(def.Names, def.OID)
	if def.OID == "" {
		return nil, newDefinitionError(KindMalformedDefinition, name, "matching rule has no OID")
	}
	if def.SyntaxOID == "" {
		return nil, newDefinitionError(KindMalformedDefinition, name, "matching rule has no SYNTAX")
	}
	mr := &MatchingRule{
		element: element{
			description:     def.Description,
			extraProperties: copyProperties(def.ExtraProperties),
		},
		oid:        def.OID,
		names:      copyStrings(def.Names),
		obsolete:   def.Obsolete,
		syntaxOID:  def.SyntaxOID,
		kind:       def.Kind,
		normalizer: def.Normalizer,
	}
	if def.RawDefinition != "" {
		mr.definition = strings.TrimSpace(def.RawDefinition)
	} else {
		mr.definition = mr.buildDefinition()
	}
	return mr, nil
}

// OID returns the OID of this matching rule.
func (mr *MatchingRule) OID() string {
	return mr.oid
}

// Names returns the declared names in declaration order.
func (mr *MatchingRule) Names() []string {
	return copyStrings(mr.names)
}

// NameOrOID returns the primary name, or the OID if no name was declared.
func (mr *MatchingRule) NameOrOID() string {
	return nameOrOID(mr.names, mr.oid)
}

// HasName reports whether name matches one of the declared names,
// case-insensitively.
func (mr *MatchingRule) HasName(name string) bool {
	return containsFold(mr.names, name)
}

// HasNameOrOID reports whether value matches a declared name or the exact
// OID.
func (mr *MatchingRule) HasNameOrOID(value string) bool {
	return mr.HasName(value) || mr.oid == value
}

// IsObsolete reports whether this matching rule is declared OBSOLETE.
func (mr *MatchingRule) IsObsolete() bool {
	return mr.obsolete
}

// Kind returns the comparison slot this rule serves.
func (mr *MatchingRule) Kind() MatchingRuleKind {
	return mr.kind
}

// SyntaxOID returns the OID of the assertion syntax this rule operates
// over.
func (mr *MatchingRule) SyntaxOID() string {
	return mr.syntaxOID
}

// Syntax returns the resolved assertion syntax. It is nil until the
// owning schema has been built.
func (mr *MatchingRule) Syntax() *Syntax {
	return mr.syntax
}

// Normalize returns the matching form of value. Rules without a
// normalizer return the value unchanged.
func (mr *MatchingRule) Normalize(value []byte) []byte {
	if mr.normalizer == nil {
		return value
	}
	return mr.normalizer(value)
}

// Match reports whether two values compare equal under this rule's
// normalization. It is meaningful for equality and approximate rules.
func (mr *MatchingRule) Match(a, b []byte) bool {
	return bytes.Equal(mr.Normalize(a), mr.Normalize(b))
}

// String returns the RFC 4512 definition of this matching rule. When the
// rule was parsed from a definition string, that string is returned
// verbatim.
func (mr *MatchingRule) String() string {
	return mr.definition
}

func (mr *MatchingRule) buildDefinition() string {
	var b strings.Builder
	b.WriteString("( ")
	b.WriteString(mr.oid)
	writeQuotedList(&b, "NAME", mr.names)
	if mr.description != "" {
		writeQuotedQualifier(&b, "DESC", mr.description)
	}
	if mr.obsolete {
		b.WriteString(" OBSOLETE")
	}
	writeQualifier(&b, "SYNTAX", mr.syntaxOID)
	mr.writeExtensions(&b)
	b.WriteString(" )")
	return b.String()
}

// validate resolves the assertion syntax reference against the schema
// being built.
func (mr *MatchingRule) validate(s *Schema) error {
	syn := s.GetSyntax(mr.syntaxOID)
	if syn == nil {
		return newDefinitionError(KindUnresolvedReference, mr.NameOrOID(), "unknown syntax %q", mr.syntaxOID)
	}
	mr.syntax = syn
	return nil
}
