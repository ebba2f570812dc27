package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObjectClassErrors(t *testing.T) {
	tests := []struct {
		name string
		def  ObjectClassDef
	}{
		{"no OID", ObjectClassDef{Names: []string{"thing"}}},
		{"kind out of range", ObjectClassDef{OID: "1.2.3", Kind: ObjectClassKind(9)}},
		{"duplicate names", ObjectClassDef{OID: "1.2.3", Names: []string{"a", "A"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewObjectClass(tt.def)
			var de *DefinitionError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, KindMalformedDefinition, de.Kind)
		})
	}
}

func TestObjectClassKinds(t *testing.T) {
	s := DefaultSchema()
	assert.True(t, s.GetObjectClass("top").IsAbstract())
	assert.True(t, s.GetObjectClass("person").IsStructural())
	assert.True(t, s.GetObjectClass("posixAccount").IsAuxiliary())
}

func TestObjectClassInheritedAttributes(t *testing.T) {
	s := DefaultSchema()
	inetOrgPerson := s.GetObjectClass("inetOrgPerson")
	require.NotNil(t, inetOrgPerson)

	names := func(types []*AttributeType) map[string]bool {
		out := make(map[string]bool, len(types))
		for _, at := range types {
			out[at.NameOrOID()] = true
		}
		return out
	}

	must := names(inetOrgPerson.AllRequiredAttributes())
	// sn and cn come from person, objectClass from top.
	assert.True(t, must["sn"])
	assert.True(t, must["cn"])
	assert.True(t, must["objectClass"])

	may := names(inetOrgPerson.AllOptionalAttributes())
	// mail is declared locally, title inherited from organizationalPerson.
	assert.True(t, may["mail"])
	assert.True(t, may["title"])
	assert.False(t, may["sn"])
}

func TestObjectClassAllows(t *testing.T) {
	s := DefaultSchema()
	person := s.GetObjectClass("person")
	require.NotNil(t, person)

	assert.True(t, person.Allows(s.GetAttributeType("sn")))
	assert.True(t, person.Allows(s.GetAttributeType("userPassword")))
	assert.True(t, person.Allows(s.GetAttributeType("objectClass")))
	assert.False(t, person.Allows(s.GetAttributeType("mail")))
	assert.False(t, person.Allows(nil))
}

func TestObjectClassIsSubClassOf(t *testing.T) {
	s := DefaultSchema()
	inetOrgPerson := s.GetObjectClass("inetOrgPerson")
	person := s.GetObjectClass("person")
	top := s.GetObjectClass("top")
	domain := s.GetObjectClass("domain")

	assert.True(t, inetOrgPerson.IsSubClassOf(inetOrgPerson))
	assert.True(t, inetOrgPerson.IsSubClassOf(person))
	assert.True(t, inetOrgPerson.IsSubClassOf(top))
	assert.False(t, person.IsSubClassOf(inetOrgPerson))
	assert.False(t, inetOrgPerson.IsSubClassOf(domain))
}

func TestObjectClassString(t *testing.T) {
	oc, err := NewObjectClass(ObjectClassDef{
		OID:         "2.5.6.6",
		Names:       []string{"person"},
		Description: "Person",
		SuperiorOID: "top",
		Kind:        ObjectClassStructural,
		MustOIDs:    []string{"sn", "cn"},
		MayOIDs:     []string{"userPassword"},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"( 2.5.6.6 NAME 'person' DESC 'Person' SUP top STRUCTURAL MUST ( sn $ cn ) MAY userPassword )",
		oc.String())
}

func TestObjectClassRawDefinitionRoundTrip(t *testing.T) {
	raw := `( 2.5.6.6 NAME 'person' SUP top STRUCTURAL MUST ( sn $ cn ) )`
	def, err := ParseObjectClass(raw)
	require.NoError(t, err)
	oc, err := NewObjectClass(def)
	require.NoError(t, err)
	assert.Equal(t, raw, oc.String())
}
