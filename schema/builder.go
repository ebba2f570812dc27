package schema

import (
	"errors"

	"github.com/hashicorp/go-multierror"
)

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// Lenient makes Build keep going when a definition fails: the offending
// definition is left out of the catalog and the failure is available from
// Schema.Warnings. The default is to fail the whole build.
func Lenient() BuilderOption {
	return func(b *Builder) { b.lenient = true }
}

// Builder collects schema definitions and produces a resolved Schema.
// Definitions may reference each other in any order, including forward
// references; every cross-reference is resolved during Build. A Builder
// is not safe for concurrent use; the Schema it produces is.
type Builder struct {
	lenient bool

	syntaxes       []SyntaxDef
	matchingRules  []MatchingRuleDef
	attributeTypes []AttributeTypeDef
	objectClasses  []ObjectClassDef

	// Definition strings that failed to parse, reported at Build.
	parseErrors []error
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddSyntax queues a syntax definition.
func (b *Builder) AddSyntax(def SyntaxDef) *Builder {
	b.syntaxes = append(b.syntaxes, def)
	return b
}

// AddMatchingRule queues a matching rule definition.
func (b *Builder) AddMatchingRule(def MatchingRuleDef) *Builder {
	b.matchingRules = append(b.matchingRules, def)
	return b
}

// AddAttributeType queues an attribute type definition.
func (b *Builder) AddAttributeType(def AttributeTypeDef) *Builder {
	b.attributeTypes = append(b.attributeTypes, def)
	return b
}

// AddObjectClass queues an object class definition.
func (b *Builder) AddObjectClass(def ObjectClassDef) *Builder {
	b.objectClasses = append(b.objectClasses, def)
	return b
}

// AddSyntaxDefinition queues a syntax given as an RFC 4512 definition
// string. Parse failures surface from Build.
func (b *Builder) AddSyntaxDefinition(raw string) *Builder {
	def, err := ParseSyntax(raw)
	if err != nil {
		b.parseErrors = append(b.parseErrors, err)
		return b
	}
	return b.AddSyntax(def)
}

// AddMatchingRuleDefinition queues a matching rule given as an RFC 4512
// definition string.
func (b *Builder) AddMatchingRuleDefinition(raw string) *Builder {
	def, err := ParseMatchingRule(raw)
	if err != nil {
		b.parseErrors = append(b.parseErrors, err)
		return b
	}
	return b.AddMatchingRule(def)
}

// AddAttributeTypeDefinition queues an attribute type given as an RFC
// 4512 definition string.
func (b *Builder) AddAttributeTypeDefinition(raw string) *Builder {
	def, err := ParseAttributeType(raw)
	if err != nil {
		b.parseErrors = append(b.parseErrors, err)
		return b
	}
	return b.AddAttributeType(def)
}

// AddObjectClassDefinition queues an object class given as an RFC 4512
// definition string.
func (b *Builder) AddObjectClassDefinition(raw string) *Builder {
	def, err := ParseObjectClass(raw)
	if err != nil {
		b.parseErrors = append(b.parseErrors, err)
		return b
	}
	return b.AddObjectClass(def)
}

type resolveState int

const (
	stateUnresolved resolveState = iota
	stateResolving
	stateResolved
	stateFailed
)

// errExcluded marks lookups of definitions that already failed; parents
// translate it into their own DefinitionError.
var errExcluded = errors.New("definition was excluded from the schema")

// Build constructs, cross-links and validates the complete catalog.
//
// Resolution happens in dependency order: matching rules are checked
// against syntaxes, syntax default rules against matching rules, then
// attribute types and object classes are resolved depth-first along their
// superior chains, memoized, with an in-progress marker that turns a
// cyclic superior chain into a CyclicReference error instead of runaway
// recursion.
//
// In the default strict mode any failure aborts the build and Build
// returns every collected failure. In lenient mode failing definitions
// are excluded from the catalog and reported via Schema.Warnings. The
// returned Schema is fully resolved and immutable; no caller can observe
// a partially-resolved definition.
func (b *Builder) Build() (*Schema, error) {
	var failures *multierror.Error
	record := func(err error) {
		failures = multierror.Append(failures, err)
	}
	for _, err := range b.parseErrors {
		record(err)
	}

	s := newSchema()

	var syntaxes []*Syntax
	for _, def := range b.syntaxes {
		syn, err := NewSyntax(def)
		if err != nil {
			record(err)
			continue
		}
		if err := s.addSyntax(syn); err != nil {
			record(err)
			continue
		}
		syntaxes = append(syntaxes, syn)
	}

	var rules []*MatchingRule
	for _, def := range b.matchingRules {
		mr, err := NewMatchingRule(def)
		if err != nil {
			record(err)
			continue
		}
		if err := s.addMatchingRule(mr); err != nil {
			record(err)
			continue
		}
		rules = append(rules, mr)
	}

	var types []*AttributeType
	for _, def := range b.attributeTypes {
		at, err := NewAttributeType(def)
		if err != nil {
			record(err)
			continue
		}
		if err := s.addAttributeType(at); err != nil {
			record(err)
			continue
		}
		types = append(types, at)
	}

	var classes []*ObjectClass
	for _, def := range b.objectClasses {
		oc, err := NewObjectClass(def)
		if err != nil {
			record(err)
			continue
		}
		if err := s.addObjectClass(oc); err != nil {
			record(err)
			continue
		}
		classes = append(classes, oc)
	}

	// Matching rules reference syntaxes and syntaxes reference matching
	// rules for their slot defaults; rules are checked first so syntax
	// defaults resolve against rules that are known to be usable.
	for _, mr := range rules {
		if err := mr.validate(s); err != nil {
			s.removeMatchingRule(mr)
			record(err)
		}
	}
	for _, syn := range syntaxes {
		if err := syn.validate(s); err != nil {
			s.removeSyntax(syn)
			record(err)
		}
	}
	// A rule validated before its syntax was removed still holds that
	// syntax, and a surviving syntax slot can hold a rule removed after
	// the slot resolved. Exclusions propagate until neither side changes,
	// so nothing in the catalog references an excluded definition.
	for changed := true; changed; {
		changed = false
		for _, mr := range rules {
			if s.GetMatchingRule(mr.oid) != mr || s.GetSyntax(mr.syntaxOID) != nil {
				continue
			}
			mr.syntax = nil
			s.removeMatchingRule(mr)
			record(newDefinitionError(KindUnresolvedReference, mr.NameOrOID(),
				"syntax %q was excluded from the schema", mr.syntaxOID))
			changed = true
		}
		for _, syn := range syntaxes {
			if s.GetSyntax(syn.oid) != syn {
				continue
			}
			if stranded := syn.strandedRule(s); stranded != "" {
				s.removeSyntax(syn)
				record(newDefinitionError(KindUnresolvedReference, syn.oid,
					"default matching rule %q was excluded from the schema", stranded))
				changed = true
			}
		}
	}

	typeStates := make(map[string]resolveState, len(types))
	var resolveType func(at *AttributeType) error
	resolveType = func(at *AttributeType) error {
		switch typeStates[at.oid] {
		case stateResolved:
			return nil
		case stateFailed:
			return errExcluded
		case stateResolving:
			return newDefinitionError(KindCyclicReference, at.NameOrOID(),
				"superior type chain loops back to %q", at.NameOrOID())
		}
		typeStates[at.oid] = stateResolving

		fail := func(err error) error {
			typeStates[at.oid] = stateFailed
			s.removeAttributeType(at)
			record(err)
			return err
		}

		if at.superiorOID != "" {
			if sup := s.GetAttributeType(at.superiorOID); sup != nil {
				if err := resolveType(sup); err != nil {
					var de *DefinitionError
					if errors.As(err, &de) && de.Kind == KindCyclicReference {
						return fail(newDefinitionError(KindCyclicReference, at.NameOrOID(),
							"superior type %q is part of a reference cycle", at.superiorOID))
					}
					return fail(newDefinitionError(KindUnresolvedReference, at.NameOrOID(),
						"superior type %q was excluded from the schema", at.superiorOID))
				}
			}
			// A missing superior is reported by validate below.
		}

		if err := at.validate(s); err != nil {
			return fail(err)
		}
		typeStates[at.oid] = stateResolved
		return nil
	}
	for _, at := range types {
		if typeStates[at.oid] == stateUnresolved {
			resolveType(at)
		}
	}

	classStates := make(map[string]resolveState, len(classes))
	var resolveClass func(oc *ObjectClass) error
	resolveClass = func(oc *ObjectClass) error {
		switch classStates[oc.oid] {
		case stateResolved:
			return nil
		case stateFailed:
			return errExcluded
		case stateResolving:
			return newDefinitionError(KindCyclicReference, oc.NameOrOID(),
				"superior class chain loops back to %q", oc.NameOrOID())
		}
		classStates[oc.oid] = stateResolving

		fail := func(err error) error {
			classStates[oc.oid] = stateFailed
			s.removeObjectClass(oc)
			record(err)
			return err
		}

		if oc.superiorOID != "" {
			if sup := s.GetObjectClass(oc.superiorOID); sup != nil {
				if err := resolveClass(sup); err != nil {
					var de *DefinitionError
					if errors.As(err, &de) && de.Kind == KindCyclicReference {
						return fail(newDefinitionError(KindCyclicReference, oc.NameOrOID(),
							"superior class %q is part of a reference cycle", oc.superiorOID))
					}
					return fail(newDefinitionError(KindUnresolvedReference, oc.NameOrOID(),
						"superior class %q was excluded from the schema", oc.superiorOID))
				}
			}
		}

		if err := oc.validate(s); err != nil {
			return fail(err)
		}
		classStates[oc.oid] = stateResolved
		return nil
	}
	for _, oc := range classes {
		if classStates[oc.oid] == stateUnresolved {
			resolveClass(oc)
		}
	}

	if err := failures.ErrorOrNil(); err != nil {
		if !b.lenient {
			return nil, err
		}
		s.warnings = failures.Errors
	}
	return s, nil
}
