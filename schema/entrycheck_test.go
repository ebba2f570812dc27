package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func personEntry() *Entry {
	e := NewEntry("cn=Kerem Demir,ou=people,dc=example,dc=com")
	e.SetStringAttribute("objectClass", "top", "person")
	e.SetStringAttribute("cn", "Kerem Demir")
	e.SetStringAttribute("sn", "Demir")
	return e
}

func requireCode(t *testing.T, err error, code int) {
	t.Helper()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, code, ve.Code)
}

func TestValidateEntry(t *testing.T) {
	v := NewValidator(DefaultSchema())
	require.NoError(t, v.ValidateEntry(personEntry()))
}

func TestValidateEntryObjectClassRequired(t *testing.T) {
	v := NewValidator(DefaultSchema())

	e := NewEntry("cn=bare,dc=example,dc=com")
	e.SetStringAttribute("cn", "bare")
	requireCode(t, v.ValidateEntry(e), ErrObjectClassViolation)

	requireCode(t, v.ValidateEntry(nil), ErrObjectClassViolation)
}

func TestValidateEntryUnknownObjectClass(t *testing.T) {
	v := NewValidator(DefaultSchema())
	e := personEntry()
	e.SetStringAttribute("objectClass", "top", "person", "noSuchClass")
	requireCode(t, v.ValidateEntry(e), ErrObjectClassViolation)
}

func TestValidateEntryStructuralRequired(t *testing.T) {
	v := NewValidator(DefaultSchema())
	e := NewEntry("dc=example,dc=com")
	// dcObject is auxiliary; without a structural class the entry is
	// incomplete.
	e.SetStringAttribute("objectClass", "top", "dcObject")
	e.SetStringAttribute("dc", "example")
	requireCode(t, v.ValidateEntry(e), ErrObjectClassViolation)
}

func TestValidateEntryMissingRequired(t *testing.T) {
	v := NewValidator(DefaultSchema())
	e := personEntry()
	delete(e.Attributes, "sn")
	requireCode(t, v.ValidateEntry(e), ErrMissingRequiredAttribute)
}

func TestValidateEntryRequiredSatisfiedByAlias(t *testing.T) {
	v := NewValidator(DefaultSchema())
	e := personEntry()
	// commonName is another name for cn; the MUST is satisfied.
	delete(e.Attributes, "cn")
	e.SetStringAttribute("commonName", "Kerem Demir")
	require.NoError(t, v.ValidateEntry(e))
}

func TestValidateEntryAttributeNotAllowed(t *testing.T) {
	v := NewValidator(DefaultSchema())
	e := personEntry()
	// mail is not in person's MUST or MAY.
	e.SetStringAttribute("mail", "kerem@example.com")
	requireCode(t, v.ValidateEntry(e), ErrObjectClassViolation)
}

func TestValidateEntryUnknownAttribute(t *testing.T) {
	v := NewValidator(DefaultSchema())
	e := personEntry()
	e.SetStringAttribute("noSuchAttribute", "x")
	requireCode(t, v.ValidateEntry(e), ErrUndefinedAttributeType)
}

func TestValidateEntryOperationalAlwaysAllowed(t *testing.T) {
	v := NewValidator(DefaultSchema())
	e := personEntry()
	e.SetStringAttribute("createTimestamp", "20260830120000Z")
	require.NoError(t, v.ValidateEntry(e))
}

func TestValidateEntrySingleValue(t *testing.T) {
	v := NewValidator(DefaultSchema())
	e := NewEntry("dc=example,dc=com")
	e.SetStringAttribute("objectClass", "top", "domain")
	e.SetStringAttribute("dc", "example", "example2")
	requireCode(t, v.ValidateEntry(e), ErrSingleValueViolation)
}

func TestValidateEntrySyntax(t *testing.T) {
	v := NewValidator(DefaultSchema())

	e := personEntry()
	e.SetAttribute("cn", []byte{0xff, 0xfe})
	requireCode(t, v.ValidateEntry(e), ErrInvalidAttributeSyntax)

	e = personEntry()
	e.SetStringAttribute("telephoneNumber", "not a number")
	requireCode(t, v.ValidateEntry(e), ErrInvalidAttributeSyntax)
}

func TestValidateModification(t *testing.T) {
	v := NewValidator(DefaultSchema())
	e := personEntry()

	mods := []Modification{
		*NewStringModification(ModAdd, "description", "a test person"),
		*NewStringModification(ModReplace, "telephoneNumber", "+90 312 555 0100"),
	}
	require.NoError(t, v.ValidateModification(e, mods))

	// The source entry is untouched.
	assert.False(t, e.Has("description"))
}

func TestValidateModificationNoUserModification(t *testing.T) {
	v := NewValidator(DefaultSchema())
	mods := []Modification{
		*NewStringModification(ModReplace, "createTimestamp", "20260830120000Z"),
	}
	requireCode(t, v.ValidateModification(personEntry(), mods), ErrNoUserModification)
}

func TestValidateModificationSingleValue(t *testing.T) {
	v := NewValidator(DefaultSchema())
	e := NewEntry("dc=example,dc=com")
	e.SetStringAttribute("objectClass", "top", "domain")
	e.SetStringAttribute("dc", "example")

	mods := []Modification{*NewStringModification(ModAdd, "dc", "second")}
	requireCode(t, v.ValidateModification(e, mods), ErrSingleValueViolation)
}

func TestValidateModificationDelete(t *testing.T) {
	v := NewValidator(DefaultSchema())
	e := personEntry()
	e.SetStringAttribute("description", "first", "second")

	// Deleting one value keeps the rest.
	mods := []Modification{*NewStringModification(ModDelete, "description", "first")}
	require.NoError(t, v.ValidateModification(e, mods))

	// Deleting a MUST attribute outright fails the resulting entry.
	mods = []Modification{*NewStringModification(ModDelete, "sn")}
	requireCode(t, v.ValidateModification(e, mods), ErrMissingRequiredAttribute)
}

func TestValidateModificationSyntax(t *testing.T) {
	v := NewValidator(DefaultSchema())
	mods := []Modification{
		*NewStringModification(ModAdd, "telephoneNumber", "ring ring"),
	}
	requireCode(t, v.ValidateModification(personEntry(), mods), ErrInvalidAttributeSyntax)
}

func TestEntryClone(t *testing.T) {
	e := personEntry()
	clone := e.Clone()
	clone.SetStringAttribute("cn", "changed")
	clone.Attributes["sn"][0][0] = 'X'

	assert.Equal(t, []string{"Kerem Demir"}, e.GetAll("cn"))
	assert.Equal(t, []string{"Demir"}, e.GetAll("sn"))
}
