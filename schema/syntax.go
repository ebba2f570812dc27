package schema

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// SyntaxDef carries the declared fields of a syntax before it is added to
// a schema. The four rule OIDs name the matching rules an attribute type
// with this syntax falls back to when neither the type nor its superior
// declares one.
type SyntaxDef struct {
	OID                string
	Description        string
	Validator          func([]byte) bool
	EqualityRuleOID    string
	OrderingRuleOID    string
	SubstringRuleOID   string
	ApproximateRuleOID string
	ExtraProperties    []Property
	RawDefinition      string
}

// Syntax describes the wire format attribute values of a given attribute
// type must conform to, and optionally names default matching rules for
// that format. Instances are immutable once their schema has been built.
type Syntax struct {
	element
	oid                string
	validator          func([]byte) bool
	equalityRuleOID    string
	orderingRuleOID    string
	substringRuleOID   string
	approximateRuleOID string
	definition         string

	// Populated by the schema build.
	equalityRule    *MatchingRule
	orderingRule    *MatchingRule
	substringRule   *MatchingRule
	approximateRule *MatchingRule
}

// NewSyntax builds a Syntax from its declared fields. The OID is
// required.
func NewSyntax(def SyntaxDef) (*Syntax, error) {
	if def.OID == "" {
		return nil, newDefinitionError(KindMalformedDefinition, def.Description, "syntax has no OID")
	}
	s := &Syntax{
		element: element{
			description:     def.Description,
			extraProperties: copyProperties(def.ExtraProperties),
		},
		oid:                def.OID,
		validator:          def.Validator,
		equalityRuleOID:    def.EqualityRuleOID,
		orderingRuleOID:    def.OrderingRuleOID,
		substringRuleOID:   def.SubstringRuleOID,
		approximateRuleOID: def.ApproximateRuleOID,
	}
	if def.RawDefinition != "" {
		s.definition = strings.TrimSpace(def.RawDefinition)
	} else {
		s.definition = s.buildDefinition()
	}
	return s, nil
}

// OID returns the OID of this syntax.
func (s *Syntax) OID() string {
	return s.oid
}

// Validate checks whether value conforms to this syntax. Syntaxes without
// a validator accept every value.
func (s *Syntax) Validate(value []byte) bool {
	if s.validator == nil {
		return true
	}
	return s.validator(value)
}

// HasValidator reports whether this syntax can actually check values.
func (s *Syntax) HasValidator() bool {
	return s.validator != nil
}

// DefaultEqualityRule returns the default equality matching rule for this
// syntax, or nil. Resolved only after the owning schema has been built.
func (s *Syntax) DefaultEqualityRule() *MatchingRule {
	return s.equalityRule
}

// DefaultOrderingRule returns the default ordering matching rule for this
// syntax, or nil.
func (s *Syntax) DefaultOrderingRule() *MatchingRule {
	return s.orderingRule
}

// DefaultSubstringRule returns the default substring matching rule for
// this syntax, or nil.
func (s *Syntax) DefaultSubstringRule() *MatchingRule {
	return s.substringRule
}

// DefaultApproximateRule returns the default approximate matching rule
// for this syntax, or nil.
func (s *Syntax) DefaultApproximateRule() *MatchingRule {
	return s.approximateRule
}

// defaultRule is nil-receiver safe so the fallback tier of the matching
// rule cascade can be applied uniformly whether or not a syntax resolved.
func (s *Syntax) defaultRule(kind MatchingRuleKind) *MatchingRule {
	if s == nil {
		return nil
	}
	switch kind {
	case EqualityMatch:
		return s.equalityRule
	case OrderingMatch:
		return s.orderingRule
	case SubstringMatch:
		return s.substringRule
	case ApproximateMatch:
		return s.approximateRule
	}
	return nil
}

// String returns the RFC 4512 definition of this syntax. When the syntax
// was parsed from a definition string, that string is returned verbatim.
func (s *Syntax) String() string {
	return s.definition
}

func (s *Syntax) buildDefinition() string {
	var b strings.Builder
	b.WriteString("( ")
	b.WriteString(s.oid)
	if s.description != "" {
		writeQuotedQualifier(&b, "DESC", s.description)
	}
	s.writeExtensions(&b)
	b.WriteString(" )")
	return b.String()
}

// validate resolves the default matching rule references against the
// schema being built. On failure no resolved reference is left behind.
func (s *Syntax) validate(sc *Schema) error {
	resolve := func(ruleOID string, kind MatchingRuleKind) (*MatchingRule, error) {
		if ruleOID == "" {
			return nil, nil
		}
		mr := sc.GetMatchingRule(ruleOID)
		if mr == nil {
			return nil, newDefinitionError(KindUnresolvedReference, s.oid,
				"unknown default %s matching rule %q", kind, ruleOID)
		}
		return mr, nil
	}

	equality, err := resolve(s.equalityRuleOID, EqualityMatch)
	if err != nil {
		return err
	}
	ordering, err := resolve(s.orderingRuleOID, OrderingMatch)
	if err != nil {
		return err
	}
	substring, err := resolve(s.substringRuleOID, SubstringMatch)
	if err != nil {
		return err
	}
	approximate, err := resolve(s.approximateRuleOID, ApproximateMatch)
	if err != nil {
		return err
	}

	s.equalityRule = equality
	s.orderingRule = ordering
	s.substringRule = substring
	s.approximateRule = approximate
	return nil
}

// strandedRule returns the OID of a resolved default rule that is no
// longer present in the schema, or "" when every resolved slot still is.
func (s *Syntax) strandedRule(sc *Schema) string {
	for _, mr := range []*MatchingRule{s.equalityRule, s.orderingRule, s.substringRule, s.approximateRule} {
		if mr != nil && sc.GetMatchingRule(mr.oid) != mr {
			return mr.oid
		}
	}
	return ""
}

// Common LDAP syntax OIDs.
const (
	// SyntaxDirectoryString is the OID for Directory String syntax (UTF-8).
	SyntaxDirectoryString = "1.3.6.1.4.1.1466.115.121.1.15"

	// SyntaxDN is the OID for Distinguished Name syntax.
	SyntaxDN = "1.3.6.1.4.1.1466.115.121.1.12"

	// SyntaxInteger is the OID for INTEGER syntax.
	SyntaxInteger = "1.3.6.1.4.1.1466.115.121.1.27"

	// SyntaxBoolean is the OID for Boolean syntax.
	SyntaxBoolean = "1.3.6.1.4.1.1466.115.121.1.7"

	// SyntaxOctetString is the OID for Octet String syntax (binary data).
	SyntaxOctetString = "1.3.6.1.4.1.1466.115.121.1.40"

	// SyntaxGeneralizedTime is the OID for Generalized Time syntax.
	SyntaxGeneralizedTime = "1.3.6.1.4.1.1466.115.121.1.24"

	// SyntaxOID is the OID for OID syntax.
	SyntaxOID = "1.3.6.1.4.1.1466.115.121.1.38"

	// SyntaxTelephoneNumber is the OID for Telephone Number syntax.
	SyntaxTelephoneNumber = "1.3.6.1.4.1.1466.115.121.1.50"

	// SyntaxIA5String is the OID for IA5 String syntax (ASCII).
	SyntaxIA5String = "1.3.6.1.4.1.1466.115.121.1.26"

	// SyntaxPrintableString is the OID for Printable String syntax.
	SyntaxPrintableString = "1.3.6.1.4.1.1466.115.121.1.44"

	// SyntaxNumericString is the OID for Numeric String syntax.
	SyntaxNumericString = "1.3.6.1.4.1.1466.115.121.1.36"

	// SyntaxBitString is the OID for Bit String syntax.
	SyntaxBitString = "1.3.6.1.4.1.1466.115.121.1.6"

	// SyntaxSubstringAssertion is the OID for Substring Assertion syntax,
	// the assertion syntax of substring matching rules.
	SyntaxSubstringAssertion = "1.3.6.1.4.1.1466.115.121.1.58"

	// SyntaxUUID is the OID for UUID syntax.
	SyntaxUUID = "1.3.6.1.1.16.1"
)

// Validators for the common syntaxes. Any of these can be used as the
// Validator of a SyntaxDef.

// ValidateDirectoryString accepts non-empty valid UTF-8.
func ValidateDirectoryString(value []byte) bool {
	return len(value) > 0 && utf8.Valid(value)
}

// ValidateInteger accepts an optionally signed decimal integer.
func ValidateInteger(value []byte) bool {
	if len(value) == 0 {
		return false
	}
	start := 0
	if value[0] == '-' || value[0] == '+' {
		if len(value) == 1 {
			return false
		}
		start = 1
	}
	for i := start; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}

// ValidateBoolean accepts exactly "TRUE" or "FALSE".
func ValidateBoolean(value []byte) bool {
	s := string(value)
	return s == "TRUE" || s == "FALSE"
}

// ValidateOctetString accepts any byte sequence.
func ValidateOctetString(value []byte) bool {
	return true
}

// ValidateIA5String accepts values whose bytes are all in the ASCII
// range.
func ValidateIA5String(value []byte) bool {
	for _, b := range value {
		if b > 127 {
			return false
		}
	}
	return true
}

// ValidatePrintableString accepts values limited to the PrintableString
// character set.
func ValidatePrintableString(value []byte) bool {
	for _, b := range value {
		if !isPrintableChar(b) {
			return false
		}
	}
	return true
}

// isPrintableChar reports whether b is a valid printable string character:
// A-Z, a-z, 0-9, space, and '()+,-./:=?
func isPrintableChar(b byte) bool {
	if b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b >= '0' && b <= '9' {
		return true
	}
	switch b {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

// ValidateNumericString accepts digits and spaces.
func ValidateNumericString(value []byte) bool {
	for _, b := range value {
		if b != ' ' && (b < '0' || b > '9') {
			return false
		}
	}
	return true
}

// ValidateTelephoneNumber accepts digits and common telephone punctuation.
func ValidateTelephoneNumber(value []byte) bool {
	if len(value) == 0 {
		return false
	}
	for _, b := range value {
		if b >= '0' && b <= '9' {
			continue
		}
		switch b {
		case ' ', '-', '(', ')', '+', '.':
		default:
			return false
		}
	}
	return true
}

// ValidateUUID accepts RFC 4122 textual UUIDs.
func ValidateUUID(value []byte) bool {
	_, err := uuid.Parse(string(value))
	return err == nil
}

// generalizedTimeLayouts covers the GeneralizedTime forms the directory
// produces and accepts: with and without seconds, UTC or zoned.
var generalizedTimeLayouts = []string{
	"20060102150405Z",
	"20060102150405-0700",
	"200601021504Z",
	"200601021504-0700",
}

// ValidateGeneralizedTime accepts RFC 4517 GeneralizedTime values.
func ValidateGeneralizedTime(value []byte) bool {
	s := string(value)
	for _, layout := range generalizedTimeLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
