package schema

import "strings"

// ObjectClassKind represents the kind of an LDAP object class.
type ObjectClassKind int

const (
	// ObjectClassAbstract classes cannot be instantiated directly and
	// serve as templates for other object classes.
	ObjectClassAbstract ObjectClassKind = iota

	// ObjectClassStructural classes define the core identity of an entry.
	// Every entry has exactly one structural class.
	ObjectClassStructural

	// ObjectClassAuxiliary classes provide additional attributes and can
	// be combined with structural classes.
	ObjectClassAuxiliary
)

// String returns the RFC 4512 keyword for the ObjectClassKind.
func (k ObjectClassKind) String() string {
	switch k {
	case ObjectClassAbstract:
		return "ABSTRACT"
	case ObjectClassStructural:
		return "STRUCTURAL"
	case ObjectClassAuxiliary:
		return "AUXILIARY"
	default:
		return "UNKNOWN"
	}
}

// ObjectClassDef carries the declared fields of an object class before it
// is added to a schema.
type ObjectClassDef struct {
	OID             string
	Names           []string
	Description     string
	Obsolete        bool
	SuperiorOID     string
	Kind            ObjectClassKind
	MustOIDs        []string
	MayOIDs         []string
	ExtraProperties []Property
	RawDefinition   string
}

// ObjectClass defines the set of attribute types entries of that class
// must and may carry. It follows the same two-phase lifecycle as
// AttributeType: declared references are resolved to object references
// when the schema is built, and the value is immutable afterwards.
// Identity is the OID alone.
type ObjectClass struct {
	element
	oid         string
	names       []string
	obsolete    bool
	superiorOID string
	kind        ObjectClassKind
	mustOIDs    []string
	mayOIDs     []string
	definition  string

	// Populated by the schema build.
	superior *ObjectClass
	must     []*AttributeType
	may      []*AttributeType
}

// NewObjectClass builds an ObjectClass from its declared fields. The OID
// is required and the declared names must be unique under
// case-insensitive comparison.
func NewObjectClass(def ObjectClassDef) (*ObjectClass, error) {
	name := nameOrOID(def.Names, def.OID)
	if def.OID == "" {
		return nil, newDefinitionError(KindMalformedDefinition, name, "object class has no OID")
	}
	if def.Kind < ObjectClassAbstract || def.Kind > ObjectClassAuxiliary {
		return nil, newDefinitionError(KindMalformedDefinition, name, "invalid kind value %d", int(def.Kind))
	}
	for i, n := range def.Names {
		for _, m := range def.Names[i+1:] {
			if strings.EqualFold(n, m) {
				return nil, newDefinitionError(KindMalformedDefinition, name, "duplicate name %q", m)
			}
		}
	}

	oc := &ObjectClass{
		element: element{
			description:     def.Description,
			extraProperties: copyProperties(def.ExtraProperties),
		},
		oid:         def.OID,
		names:       copyStrings(def.Names),
		obsolete:    def.Obsolete,
		superiorOID: def.SuperiorOID,
		kind:        def.Kind,
		mustOIDs:    copyStrings(def.MustOIDs),
		mayOIDs:     copyStrings(def.MayOIDs),
	}
	if def.RawDefinition != "" {
		oc.definition = strings.TrimSpace(def.RawDefinition)
	} else {
		oc.definition = oc.buildDefinition()
	}
	return oc, nil
}

// OID returns the OID of this object class.
func (oc *ObjectClass) OID() string {
	return oc.oid
}

// Names returns the declared names in declaration order.
func (oc *ObjectClass) Names() []string {
	return copyStrings(oc.names)
}

// NameOrOID returns the primary name, or the OID if no name was declared.
func (oc *ObjectClass) NameOrOID() string {
	return nameOrOID(oc.names, oc.oid)
}

// HasName reports whether name matches one of the declared names,
// case-insensitively.
func (oc *ObjectClass) HasName(name string) bool {
	return containsFold(oc.names, name)
}

// HasNameOrOID reports whether value matches a declared name or the
// exact OID.
func (oc *ObjectClass) HasNameOrOID(value string) bool {
	return oc.HasName(value) || oc.oid == value
}

// Equal reports whether other denotes the same definition. Identity is
// the OID alone.
func (oc *ObjectClass) Equal(other *ObjectClass) bool {
	return other != nil && oc.oid == other.oid
}

// IsObsolete reports whether this object class is declared OBSOLETE.
func (oc *ObjectClass) IsObsolete() bool {
	return oc.obsolete
}

// Kind returns the kind of this object class.
func (oc *ObjectClass) Kind() ObjectClassKind {
	return oc.kind
}

// IsAbstract reports whether this is an abstract object class.
func (oc *ObjectClass) IsAbstract() bool {
	return oc.kind == ObjectClassAbstract
}

// IsStructural reports whether this is a structural object class.
func (oc *ObjectClass) IsStructural() bool {
	return oc.kind == ObjectClassStructural
}

// IsAuxiliary reports whether this is an auxiliary object class.
func (oc *ObjectClass) IsAuxiliary() bool {
	return oc.kind == ObjectClassAuxiliary
}

// Superior returns the resolved superior class, or nil if this class has
// none or the schema has not been built.
func (oc *ObjectClass) Superior() *ObjectClass {
	return oc.superior
}

// RequiredAttributes returns the attribute types this class itself
// declares as MUST, in declaration order.
func (oc *ObjectClass) RequiredAttributes() []*AttributeType {
	out := make([]*AttributeType, len(oc.must))
	copy(out, oc.must)
	return out
}

// OptionalAttributes returns the attribute types this class itself
// declares as MAY, in declaration order.
func (oc *ObjectClass) OptionalAttributes() []*AttributeType {
	out := make([]*AttributeType, len(oc.may))
	copy(out, oc.may)
	return out
}

// AllRequiredAttributes returns the MUST attribute types of this class
// and every superior, superiors first, without duplicates.
func (oc *ObjectClass) AllRequiredAttributes() []*AttributeType {
	return oc.collectAttributes(func(c *ObjectClass) []*AttributeType { return c.must })
}

// AllOptionalAttributes returns the MAY attribute types of this class and
// every superior, superiors first, without duplicates.
func (oc *ObjectClass) AllOptionalAttributes() []*AttributeType {
	return oc.collectAttributes(func(c *ObjectClass) []*AttributeType { return c.may })
}

func (oc *ObjectClass) collectAttributes(pick func(*ObjectClass) []*AttributeType) []*AttributeType {
	var chain []*ObjectClass
	for c := oc; c != nil; c = c.superior {
		chain = append(chain, c)
	}

	seen := make(map[string]bool)
	var out []*AttributeType
	for i := len(chain) - 1; i >= 0; i-- {
		for _, at := range pick(chain[i]) {
			if !seen[at.OID()] {
				seen[at.OID()] = true
				out = append(out, at)
			}
		}
	}
	return out
}

// Allows reports whether the attribute type is permitted on entries of
// this class, either as MUST or MAY, including inherited declarations.
func (oc *ObjectClass) Allows(at *AttributeType) bool {
	for c := oc; c != nil; c = c.superior {
		for _, m := range c.must {
			if m.Equal(at) {
				return true
			}
		}
		for _, m := range c.may {
			if m.Equal(at) {
				return true
			}
		}
	}
	return false
}

// IsSubClassOf reports whether this class is the given class or inherits
// from it through the resolved superior chain.
func (oc *ObjectClass) IsSubClassOf(other *ObjectClass) bool {
	for c := oc; c != nil; c = c.superior {
		if c.Equal(other) {
			return true
		}
	}
	return false
}

// String returns the RFC 4512 definition of this object class. When the
// class was parsed from a definition string, that string is returned
// verbatim.
func (oc *ObjectClass) String() string {
	return oc.definition
}

func (oc *ObjectClass) buildDefinition() string {
	var b strings.Builder
	b.WriteString("( ")
	b.WriteString(oc.oid)
	writeQuotedList(&b, "NAME", oc.names)
	if oc.description != "" {
		writeQuotedQualifier(&b, "DESC", oc.description)
	}
	if oc.obsolete {
		b.WriteString(" OBSOLETE")
	}
	if oc.superiorOID != "" {
		writeQualifier(&b, "SUP", oc.superiorOID)
	}
	b.WriteString(" ")
	b.WriteString(oc.kind.String())
	writeOIDList(&b, "MUST", oc.mustOIDs)
	writeOIDList(&b, "MAY", oc.mayOIDs)
	oc.writeExtensions(&b)
	b.WriteString(" )")
	return b.String()
}

// validate resolves the superior and attribute references against the
// schema being built. The superior, if any, must already be resolved; the
// builder guarantees that ordering. On failure no resolved reference is
// left behind.
func (oc *ObjectClass) validate(s *Schema) error {
	var superior *ObjectClass
	if oc.superiorOID != "" {
		superior = s.GetObjectClass(oc.superiorOID)
		if superior == nil {
			return newDefinitionError(KindUnresolvedReference, oc.NameOrOID(),
				"unknown superior class %q", oc.superiorOID)
		}
	}

	resolveAttrs := func(refs []string, keyword string) ([]*AttributeType, error) {
		if len(refs) == 0 {
			return nil, nil
		}
		attrs := make([]*AttributeType, 0, len(refs))
		for _, ref := range refs {
			at := s.GetAttributeType(ref)
			if at == nil {
				return nil, newDefinitionError(KindUnresolvedReference, oc.NameOrOID(),
					"unknown %s attribute type %q", keyword, ref)
			}
			attrs = append(attrs, at)
		}
		return attrs, nil
	}

	must, err := resolveAttrs(oc.mustOIDs, "MUST")
	if err != nil {
		return err
	}
	may, err := resolveAttrs(oc.mayOIDs, "MAY")
	if err != nil {
		return err
	}

	oc.superior = superior
	oc.must = must
	oc.may = may
	return nil
}
