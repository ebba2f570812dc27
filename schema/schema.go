// Package schema models, resolves, validates and canonically renders the
// type catalog of a directory server: attribute types, object classes,
// matching rules and syntaxes as defined in RFC 4512.
package schema

import (
	"sort"
	"strings"
)

// Schema is the complete type catalog for a directory instance. It is
// produced by a Builder and is immutable afterwards: every definition it
// owns is fully resolved, and all lookups are safe for unsynchronized
// concurrent use from any number of goroutines.
//
// Lookups by OID or by any declared name (case-insensitive) return the
// same instance.
type Schema struct {
	syntaxes       map[string]*Syntax
	matchingRules  map[string]*MatchingRule
	attributeTypes map[string]*AttributeType
	objectClasses  map[string]*ObjectClass

	// Lower-cased name indexes. OIDs are matched exactly.
	matchingRuleNames  map[string]*MatchingRule
	attributeTypeNames map[string]*AttributeType
	objectClassNames   map[string]*ObjectClass

	warnings []error
}

func newSchema() *Schema {
	return &Schema{
		syntaxes:           make(map[string]*Syntax),
		matchingRules:      make(map[string]*MatchingRule),
		attributeTypes:     make(map[string]*AttributeType),
		objectClasses:      make(map[string]*ObjectClass),
		matchingRuleNames:  make(map[string]*MatchingRule),
		attributeTypeNames: make(map[string]*AttributeType),
		objectClassNames:   make(map[string]*ObjectClass),
	}
}

// GetSyntax retrieves a syntax by OID. Returns nil if not found.
func (s *Schema) GetSyntax(oid string) *Syntax {
	return s.syntaxes[oid]
}

// GetMatchingRule retrieves a matching rule by OID or by any of its names
// (case-insensitive). Returns nil if not found.
func (s *Schema) GetMatchingRule(nameOrOID string) *MatchingRule {
	if mr, ok := s.matchingRules[nameOrOID]; ok {
		return mr
	}
	return s.matchingRuleNames[strings.ToLower(nameOrOID)]
}

// GetAttributeType retrieves an attribute type by OID or by any of its
// names (case-insensitive). Returns nil if not found.
func (s *Schema) GetAttributeType(nameOrOID string) *AttributeType {
	if at, ok := s.attributeTypes[nameOrOID]; ok {
		return at
	}
	return s.attributeTypeNames[strings.ToLower(nameOrOID)]
}

// GetObjectClass retrieves an object class by OID or by any of its names
// (case-insensitive). Returns nil if not found.
func (s *Schema) GetObjectClass(nameOrOID string) *ObjectClass {
	if oc, ok := s.objectClasses[nameOrOID]; ok {
		return oc
	}
	return s.objectClassNames[strings.ToLower(nameOrOID)]
}

// Syntaxes returns every syntax, ordered by OID.
func (s *Schema) Syntaxes() []*Syntax {
	out := make([]*Syntax, 0, len(s.syntaxes))
	for _, syn := range s.syntaxes {
		out = append(out, syn)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OID() < out[j].OID() })
	return out
}

// MatchingRules returns every matching rule, ordered case-insensitively
// by name-or-OID.
func (s *Schema) MatchingRules() []*MatchingRule {
	out := make([]*MatchingRule, 0, len(s.matchingRules))
	for _, mr := range s.matchingRules {
		out = append(out, mr)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].NameOrOID()) < strings.ToLower(out[j].NameOrOID())
	})
	return out
}

// AttributeTypes returns every attribute type in canonical order: the
// objectClass attribute type first, user attributes before operational
// ones, each bucket ordered case-insensitively by name-or-OID.
func (s *Schema) AttributeTypes() []*AttributeType {
	out := make([]*AttributeType, 0, len(s.attributeTypes))
	for _, at := range s.attributeTypes {
		out = append(out, at)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}

// ObjectClasses returns every object class, ordered case-insensitively
// by name-or-OID.
func (s *Schema) ObjectClasses() []*ObjectClass {
	out := make([]*ObjectClass, 0, len(s.objectClasses))
	for _, oc := range s.objectClasses {
		out = append(out, oc)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].NameOrOID()) < strings.ToLower(out[j].NameOrOID())
	})
	return out
}

// Warnings returns the definition failures a lenient build set aside.
// Empty for a strict build.
func (s *Schema) Warnings() []error {
	out := make([]error, len(s.warnings))
	copy(out, s.warnings)
	return out
}

// Registration and removal below are used only by the Builder, before
// the schema is published.

func (s *Schema) addSyntax(syn *Syntax) error {
	if _, ok := s.syntaxes[syn.oid]; ok {
		return newDefinitionError(KindMalformedDefinition, syn.oid, "duplicate syntax OID %q", syn.oid)
	}
	s.syntaxes[syn.oid] = syn
	return nil
}

func (s *Schema) removeSyntax(syn *Syntax) {
	if s.syntaxes[syn.oid] == syn {
		delete(s.syntaxes, syn.oid)
	}
}

func (s *Schema) addMatchingRule(mr *MatchingRule) error {
	if _, ok := s.matchingRules[mr.oid]; ok {
		return newDefinitionError(KindMalformedDefinition, mr.NameOrOID(), "duplicate matching rule OID %q", mr.oid)
	}
	for _, n := range mr.names {
		if _, ok := s.matchingRuleNames[strings.ToLower(n)]; ok {
			return newDefinitionError(KindMalformedDefinition, mr.NameOrOID(), "matching rule name %q already registered", n)
		}
	}
	s.matchingRules[mr.oid] = mr
	for _, n := range mr.names {
		s.matchingRuleNames[strings.ToLower(n)] = mr
	}
	return nil
}

func (s *Schema) removeMatchingRule(mr *MatchingRule) {
	if s.matchingRules[mr.oid] == mr {
		delete(s.matchingRules, mr.oid)
	}
	for _, n := range mr.names {
		key := strings.ToLower(n)
		if s.matchingRuleNames[key] == mr {
			delete(s.matchingRuleNames, key)
		}
	}
}

func (s *Schema) addAttributeType(at *AttributeType) error {
	if _, ok := s.attributeTypes[at.oid]; ok {
		return newDefinitionError(KindMalformedDefinition, at.NameOrOID(), "duplicate attribute type OID %q", at.oid)
	}
	for _, n := range at.names {
		if _, ok := s.attributeTypeNames[strings.ToLower(n)]; ok {
			return newDefinitionError(KindMalformedDefinition, at.NameOrOID(), "attribute type name %q already registered", n)
		}
	}
	s.attributeTypes[at.oid] = at
	for _, n := range at.names {
		s.attributeTypeNames[strings.ToLower(n)] = at
	}
	return nil
}

func (s *Schema) removeAttributeType(at *AttributeType) {
	if s.attributeTypes[at.oid] == at {
		delete(s.attributeTypes, at.oid)
	}
	for _, n := range at.names {
		key := strings.ToLower(n)
		if s.attributeTypeNames[key] == at {
			delete(s.attributeTypeNames, key)
		}
	}
}

func (s *Schema) addObjectClass(oc *ObjectClass) error {
	if _, ok := s.objectClasses[oc.oid]; ok {
		return newDefinitionError(KindMalformedDefinition, oc.NameOrOID(), "duplicate object class OID %q", oc.oid)
	}
	for _, n := range oc.names {
		if _, ok := s.objectClassNames[strings.ToLower(n)]; ok {
			return newDefinitionError(KindMalformedDefinition, oc.NameOrOID(), "object class name %q already registered", n)
		}
	}
	s.objectClasses[oc.oid] = oc
	for _, n := range oc.names {
		s.objectClassNames[strings.ToLower(n)] = oc
	}
	return nil
}

func (s *Schema) removeObjectClass(oc *ObjectClass) {
	if s.objectClasses[oc.oid] == oc {
		delete(s.objectClasses, oc.oid)
	}
	for _, n := range oc.names {
		key := strings.ToLower(n)
		if s.objectClassNames[key] == oc {
			delete(s.objectClassNames, key)
		}
	}
}
