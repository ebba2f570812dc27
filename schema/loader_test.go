package schema

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchemaLDIF = `dn: cn=schema
objectClass: top
objectClass: subschema
cn: schema
# custom company attributes
attributeTypes: ( 1.3.6.1.4.1.55555.1.1 NAME 'employeeBadge' DESC 'Badge num
 ber' EQUALITY caseIgnoreMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 SINGLE-VALUE )
attributeTypes: ( 1.3.6.1.4.1.55555.1.2 NAME 'deskLocation' SUP name )
objectClasses: ( 1.3.6.1.4.1.55555.2.1 NAME 'companyPerson' SUP inetOrgPerson
  STRUCTURAL MAY ( employeeBadge $ deskLocation ) )
`

func TestLoad(t *testing.T) {
	s, err := Load(strings.NewReader(testSchemaLDIF))
	require.NoError(t, err)

	badge := s.GetAttributeType("employeeBadge")
	require.NotNil(t, badge)
	assert.True(t, badge.IsSingleValue())
	// The continuation line folds back into one definition.
	assert.Equal(t, "Badge number", badge.Description())
	require.NotNil(t, badge.EqualityMatchingRule())
	assert.Equal(t, "caseIgnoreMatch", badge.EqualityMatchingRule().NameOrOID())

	// Loaded definitions resolve against the default catalog.
	desk := s.GetAttributeType("deskLocation")
	require.NotNil(t, desk)
	require.NotNil(t, desk.SuperiorType())
	assert.Equal(t, "name", desk.SuperiorType().NameOrOID())

	companyPerson := s.GetObjectClass("companyPerson")
	require.NotNil(t, companyPerson)
	assert.True(t, companyPerson.IsSubClassOf(s.GetObjectClass("person")))
	assert.True(t, companyPerson.Allows(badge))
}

func TestLoadBase64Value(t *testing.T) {
	def := `( 1.3.6.1.4.1.55555.1.3 NAME 'b64Attr' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`
	input := "attributeTypes:: " + base64.StdEncoding.EncodeToString([]byte(def)) + "\n"
	s, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.NotNil(t, s.GetAttributeType("b64Attr"))
}

func TestLoadStrictFailsOnBrokenDefinition(t *testing.T) {
	input := "attributeTypes: ( 1.3.6.1.4.1.55555.1.4 NAME 'broken' SUP noSuchType )\n"
	_, err := Load(strings.NewReader(input))
	var de *DefinitionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindUnresolvedReference, de.Kind)
}

func TestLoadLenientExcludesBrokenDefinition(t *testing.T) {
	input := "attributeTypes: ( 1.3.6.1.4.1.55555.1.4 NAME 'broken' SUP noSuchType )\n" +
		"attributeTypes: ( 1.3.6.1.4.1.55555.1.5 NAME 'fine' SUP name )\n"
	s, err := Load(strings.NewReader(input), Lenient())
	require.NoError(t, err)
	assert.Nil(t, s.GetAttributeType("broken"))
	assert.NotNil(t, s.GetAttributeType("fine"))
	assert.NotEmpty(t, s.Warnings())
}

func TestLoadDropsStrayContinuationLines(t *testing.T) {
	input := " attributeTypes: ( 1.3.6.1.4.1.55555.1.6 NAME 'stray' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )\n" +
		"# a folded comment, continued below\n" +
		" attributeTypes: still part of the comment\n" +
		"\n" +
		" attributeTypes: ( 1.3.6.1.4.1.55555.1.7 NAME 'alsoStray' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )\n" +
		"attributeTypes: ( 1.3.6.1.4.1.55555.1.8 NAME 'kept' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )\n"
	s, err := Load(strings.NewReader(input))
	require.NoError(t, err)

	// Indented lines at the start of the input or after a blank line have
	// nothing to continue and are ignored; a comment's continuation stays
	// inside the comment.
	assert.Nil(t, s.GetAttributeType("stray"))
	assert.Nil(t, s.GetAttributeType("alsoStray"))
	assert.NotNil(t, s.GetAttributeType("kept"))
}

func TestLoadIgnoresUnrelatedAttributes(t *testing.T) {
	input := "dn: cn=schema\ncn: schema\nmodifyTimestamp: 20260830120000Z\n"
	s, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	// Nothing beyond the defaults was added.
	assert.NotNil(t, s.GetAttributeType("cn"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "99-custom.ldif")
	require.NoError(t, os.WriteFile(path, []byte(testSchemaLDIF), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.NotNil(t, s.GetAttributeType("employeeBadge"))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.ldif"))
	require.Error(t, err)
}
