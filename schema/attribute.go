package schema

import "strings"

// ObjectClassAttributeOID is the OID of the objectClass attribute type.
// It sorts before every other attribute type in canonical listings.
const ObjectClassAttributeOID = "2.5.4.0"

// schemaPropertyApproxRule is the extension keyword used to declare an
// approximate matching rule in a definition string.
const schemaPropertyApproxRule = "X-APPROX-MATCHING-RULE"

// AttributeTypeDef carries the declared fields of an attribute type
// before it is added to a schema. Cross-references are by OID or name;
// they are resolved to object references when the schema is built.
type AttributeTypeDef struct {
	OID                string
	Names              []string
	Description        string
	Obsolete           bool
	SuperiorOID        string
	EqualityRuleOID    string
	OrderingRuleOID    string
	SubstringRuleOID   string
	ApproximateRuleOID string
	SyntaxOID          string
	SingleValue        bool
	Collective         bool
	NoUserModification bool
	Usage              AttributeUsage
	ExtraProperties    []Property
	RawDefinition      string
}

// AttributeType describes one kind of attribute: its value format, the
// matching rules used to compare its values, and its constraints. Two
// AttributeTypes are the same definition exactly when their OIDs are
// equal; names and descriptions do not participate in identity.
//
// An AttributeType is created unresolved. The schema build resolves its
// superior type, syntax and matching rules; until then the resolved
// accessors return nil. After a successful build the value is immutable
// and safe for unsynchronized concurrent reads.
type AttributeType struct {
	element
	oid                string
	names              []string
	obsolete           bool
	superiorOID        string
	equalityRuleOID    string
	orderingRuleOID    string
	substringRuleOID   string
	approximateRuleOID string
	syntaxOID          string
	singleValue        bool
	collective         bool
	noUserModification bool
	usage              AttributeUsage
	definition         string
	isObjectClassType  bool
	normalizedName     string

	// Populated by the schema build.
	superior        *AttributeType
	syntax          *Syntax
	equalityRule    *MatchingRule
	orderingRule    *MatchingRule
	substringRule   *MatchingRule
	approximateRule *MatchingRule
}

// NewAttributeType builds an AttributeType from its declared fields. The
// OID is required, the usage must be one of the four defined usages, the
// declared names must be unique under case-insensitive comparison, and at
// least one of SuperiorOID and SyntaxOID must be set: a type with no
// syntax of its own has to inherit one.
func NewAttributeType(def AttributeTypeDef) (*AttributeType, error) {
	name := nameOrOID(def.Names, def.OID)
	if def.OID == "" {
		return nil, newDefinitionError(KindMalformedDefinition, name, "attribute type has no OID")
	}
	if def.Usage < UserApplications || def.Usage > DSAOperation {
		return nil, newDefinitionError(KindMalformedDefinition, name, "invalid usage value %d", int(def.Usage))
	}
	if def.SuperiorOID == "" && def.SyntaxOID == "" {
		return nil, newDefinitionError(KindMalformedDefinition, name, "attribute type declares neither SUP nor SYNTAX")
	}
	for i, n := range def.Names {
		for _, m := range def.Names[i+1:] {
			if strings.EqualFold(n, m) {
				return nil, newDefinitionError(KindMalformedDefinition, name, "duplicate name %q", m)
			}
		}
	}

	at := &AttributeType{
		element: element{
			description:     def.Description,
			extraProperties: copyProperties(def.ExtraProperties),
		},
		oid:                def.OID,
		names:              copyStrings(def.Names),
		obsolete:           def.Obsolete,
		superiorOID:        def.SuperiorOID,
		equalityRuleOID:    def.EqualityRuleOID,
		orderingRuleOID:    def.OrderingRuleOID,
		substringRuleOID:   def.SubstringRuleOID,
		approximateRuleOID: def.ApproximateRuleOID,
		syntaxOID:          def.SyntaxOID,
		singleValue:        def.SingleValue,
		collective:         def.Collective,
		noUserModification: def.NoUserModification,
		usage:              def.Usage,
		isObjectClassType:  def.OID == ObjectClassAttributeOID,
	}
	if def.RawDefinition != "" {
		at.definition = strings.TrimSpace(def.RawDefinition)
	} else {
		at.definition = at.buildDefinition()
	}
	at.normalizedName = strings.ToLower(at.NameOrOID())
	return at, nil
}

// OID returns the OID of this attribute type.
func (at *AttributeType) OID() string {
	return at.oid
}

// Names returns the declared names in declaration order.
func (at *AttributeType) Names() []string {
	return copyStrings(at.names)
}

// NameOrOID returns the primary name, or the OID if no name was
// declared. This is the display name used everywhere one is needed.
func (at *AttributeType) NameOrOID() string {
	return nameOrOID(at.names, at.oid)
}

// HasName reports whether name matches one of the declared names,
// case-insensitively.
func (at *AttributeType) HasName(name string) bool {
	return containsFold(at.names, name)
}

// HasNameOrOID reports whether value matches a declared name or the
// exact OID.
func (at *AttributeType) HasNameOrOID(value string) bool {
	return at.HasName(value) || at.oid == value
}

// Equal reports whether other denotes the same definition. Identity is
// the OID alone.
func (at *AttributeType) Equal(other *AttributeType) bool {
	return other != nil && at.oid == other.oid
}

// IsObsolete reports whether this attribute type is declared OBSOLETE.
func (at *AttributeType) IsObsolete() bool {
	return at.obsolete
}

// IsSingleValue reports whether values of this type are limited to one.
func (at *AttributeType) IsSingleValue() bool {
	return at.singleValue
}

// IsCollective reports whether this attribute type is declared
// COLLECTIVE.
func (at *AttributeType) IsCollective() bool {
	return at.collective
}

// IsNoUserModification reports whether this attribute type is declared
// NO-USER-MODIFICATION.
func (at *AttributeType) IsNoUserModification() bool {
	return at.noUserModification
}

// Usage returns the usage indicator for this attribute type.
func (at *AttributeType) Usage() AttributeUsage {
	return at.usage
}

// IsOperational reports whether this is an operational attribute, i.e.
// any usage other than userApplications.
func (at *AttributeType) IsOperational() bool {
	return at.usage.IsOperational()
}

// IsObjectClass reports whether this is the objectClass attribute type
// (OID 2.5.4.0). The special case exists for canonical ordering only.
func (at *AttributeType) IsObjectClass() bool {
	return at.isObjectClassType
}

// SuperiorType returns the resolved superior type, or nil if this type
// has none or the schema has not been built.
func (at *AttributeType) SuperiorType() *AttributeType {
	return at.superior
}

// Syntax returns the resolved syntax, explicit or inherited. It is nil
// until the owning schema has been built.
func (at *AttributeType) Syntax() *Syntax {
	return at.syntax
}

// EqualityMatchingRule returns the matching rule used for equality
// matching, or nil if none applies.
func (at *AttributeType) EqualityMatchingRule() *MatchingRule {
	return at.equalityRule
}

// OrderingMatchingRule returns the matching rule used for ordering, or
// nil if none applies.
func (at *AttributeType) OrderingMatchingRule() *MatchingRule {
	return at.orderingRule
}

// SubstringMatchingRule returns the matching rule used for substring
// matching, or nil if none applies.
func (at *AttributeType) SubstringMatchingRule() *MatchingRule {
	return at.substringRule
}

// ApproximateMatchingRule returns the matching rule used for approximate
// matching, or nil if none applies.
func (at *AttributeType) ApproximateMatchingRule() *MatchingRule {
	return at.approximateRule
}

// matchingRule returns the resolved rule for the given slot.
func (at *AttributeType) matchingRule(kind MatchingRuleKind) *MatchingRule {
	switch kind {
	case EqualityMatch:
		return at.equalityRule
	case OrderingMatch:
		return at.orderingRule
	case SubstringMatch:
		return at.substringRule
	case ApproximateMatch:
		return at.approximateRule
	}
	return nil
}

// Compare orders attribute types for stable schema listings: the
// objectClass attribute type sorts before everything else, user
// attributes sort before operational ones, and within a bucket order is
// lexicographic on the lower-cased name-or-OID. The result is negative,
// zero, or positive. This is a display order, not a subtype relation.
func (at *AttributeType) Compare(other *AttributeType) int {
	if at.isObjectClassType {
		if other.isObjectClassType {
			return 0
		}
		return -1
	}
	if other.isObjectClassType {
		return 1
	}

	isOperational := at.usage.IsOperational()
	otherIsOperational := other.usage.IsOperational()
	if isOperational != otherIsOperational {
		if isOperational {
			return 1
		}
		return -1
	}
	return strings.Compare(at.normalizedName, other.normalizedName)
}

// IsSubTypeOf reports whether this type is the given type or inherits
// from it through the resolved superior chain. The chain is assumed
// acyclic: the schema build rejects cycles before types are published.
func (at *AttributeType) IsSubTypeOf(other *AttributeType) bool {
	for tmp := at; tmp != nil; tmp = tmp.superior {
		if tmp.Equal(other) {
			return true
		}
	}
	return false
}

// String returns the RFC 4512 definition of this attribute type. When
// the type was parsed from a definition string, that string is returned
// verbatim; otherwise the definition is rendered from the declared
// fields.
func (at *AttributeType) String() string {
	return at.definition
}

func (at *AttributeType) buildDefinition() string {
	var b strings.Builder
	b.WriteString("( ")
	b.WriteString(at.oid)
	writeQuotedList(&b, "NAME", at.names)
	if at.description != "" {
		writeQuotedQualifier(&b, "DESC", at.description)
	}
	if at.obsolete {
		b.WriteString(" OBSOLETE")
	}
	if at.superiorOID != "" {
		writeQualifier(&b, "SUP", at.superiorOID)
	}
	if at.equalityRuleOID != "" {
		writeQualifier(&b, "EQUALITY", at.equalityRuleOID)
	}
	if at.orderingRuleOID != "" {
		writeQualifier(&b, "ORDERING", at.orderingRuleOID)
	}
	if at.substringRuleOID != "" {
		writeQualifier(&b, "SUBSTR", at.substringRuleOID)
	}
	if at.syntaxOID != "" {
		writeQualifier(&b, "SYNTAX", at.syntaxOID)
	}
	if at.singleValue {
		b.WriteString(" SINGLE-VALUE")
	}
	if at.collective {
		b.WriteString(" COLLECTIVE")
	}
	if at.noUserModification {
		b.WriteString(" NO-USER-MODIFICATION")
	}
	writeQualifier(&b, "USAGE", at.usage.String())
	if at.approximateRuleOID != "" {
		writeQuotedQualifier(&b, schemaPropertyApproxRule, at.approximateRuleOID)
	}
	at.writeExtensions(&b)
	b.WriteString(" )")
	return b.String()
}

// validate resolves this type's references against the schema being
// built and checks the superior and usage invariants. The superior, if
// any, must already be resolved; the builder guarantees that ordering.
// On failure no resolved reference is left behind.
func (at *AttributeType) validate(s *Schema) error {
	var (
		superior *AttributeType
		syntax   *Syntax
	)

	if at.superiorOID != "" {
		superior = s.GetAttributeType(at.superiorOID)
		if superior == nil {
			return newDefinitionError(KindUnresolvedReference, at.NameOrOID(),
				"unknown superior type %q", at.superiorOID)
		}
		if superior.usage != at.usage {
			return newDefinitionError(KindInvalidSuperiorRelationship, at.NameOrOID(),
				"usage %s does not match superior %q usage %s",
				at.usage, superior.NameOrOID(), superior.usage)
		}
		if superior.collective != at.collective {
			if at.collective {
				return newDefinitionError(KindInvalidSuperiorRelationship, at.NameOrOID(),
					"collective type inherits from non-collective superior %q", superior.NameOrOID())
			}
			return newDefinitionError(KindInvalidSuperiorRelationship, at.NameOrOID(),
				"non-collective type inherits from collective superior %q", superior.NameOrOID())
		}
	}

	if at.syntaxOID != "" {
		syntax = s.GetSyntax(at.syntaxOID)
		if syntax == nil {
			return newDefinitionError(KindUnresolvedReference, at.NameOrOID(),
				"unknown syntax %q", at.syntaxOID)
		}
	} else if superior != nil {
		syntax = superior.syntax
	}

	// Three-tier fallback, identical for all four slots: explicit rule,
	// else the superior's resolved rule, else the syntax default.
	resolveRule := func(explicit string, kind MatchingRuleKind) (*MatchingRule, error) {
		if explicit != "" {
			mr := s.GetMatchingRule(explicit)
			if mr == nil {
				return nil, newDefinitionError(KindUnresolvedReference, at.NameOrOID(),
					"unknown %s matching rule %q", kind, explicit)
			}
			return mr, nil
		}
		if superior != nil {
			if mr := superior.matchingRule(kind); mr != nil {
				return mr, nil
			}
		}
		return syntax.defaultRule(kind), nil
	}

	equality, err := resolveRule(at.equalityRuleOID, EqualityMatch)
	if err != nil {
		return err
	}
	ordering, err := resolveRule(at.orderingRuleOID, OrderingMatch)
	if err != nil {
		return err
	}
	substring, err := resolveRule(at.substringRuleOID, SubstringMatch)
	if err != nil {
		return err
	}
	approximate, err := resolveRule(at.approximateRuleOID, ApproximateMatch)
	if err != nil {
		return err
	}

	if at.collective && at.usage != UserApplications {
		return newDefinitionError(KindInvalidUsageCombination, at.NameOrOID(),
			"collective attribute must not be operational")
	}
	if at.noUserModification && at.usage == UserApplications {
		return newDefinitionError(KindInvalidUsageCombination, at.NameOrOID(),
			"no-user-modification attribute must be operational")
	}

	at.superior = superior
	at.syntax = syntax
	at.equalityRule = equality
	at.orderingRule = ordering
	at.substringRule = substring
	at.approximateRule = approximate
	return nil
}
