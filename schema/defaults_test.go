package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchemaBuilds(t *testing.T) {
	s := DefaultSchema()
	require.NotNil(t, s)
	assert.Empty(t, s.Warnings())

	// Built once, shared.
	assert.Same(t, s, DefaultSchema())
}

func TestDefaultSchemaCoreTypes(t *testing.T) {
	s := DefaultSchema()

	cn := s.GetAttributeType("cn")
	require.NotNil(t, cn)
	require.NotNil(t, cn.SuperiorType())
	assert.Equal(t, "name", cn.SuperiorType().NameOrOID())
	// cn declares no syntax or rules of its own; everything is inherited
	// through name, which declares caseIgnoreMatch and Directory String.
	require.NotNil(t, cn.Syntax())
	assert.Equal(t, SyntaxDirectoryString, cn.Syntax().OID())
	require.NotNil(t, cn.EqualityMatchingRule())
	assert.Equal(t, "caseIgnoreMatch", cn.EqualityMatchingRule().NameOrOID())
	assert.Equal(t, "caseIgnoreSubstringsMatch", cn.SubstringMatchingRule().NameOrOID())

	objectClass := s.GetAttributeType("objectClass")
	require.NotNil(t, objectClass)
	assert.True(t, objectClass.IsObjectClass())
	assert.Equal(t, "objectIdentifierMatch", objectClass.EqualityMatchingRule().NameOrOID())
}

func TestDefaultSchemaOperationalTypes(t *testing.T) {
	s := DefaultSchema()
	tests := []string{
		"createTimestamp", "modifyTimestamp", "creatorsName", "modifiersName",
		"subschemaSubentry", "structuralObjectClass", "entryDN", "entryUUID",
		"hasSubordinates", "numSubordinates",
	}
	for _, name := range tests {
		at := s.GetAttributeType(name)
		require.NotNil(t, at, name)
		assert.True(t, at.IsOperational(), name)
		assert.True(t, at.IsNoUserModification(), name)
	}

	entryUUID := s.GetAttributeType("entryUUID")
	require.NotNil(t, entryUUID.Syntax())
	assert.Equal(t, SyntaxUUID, entryUUID.Syntax().OID())
	assert.Equal(t, "UUIDMatch", entryUUID.EqualityMatchingRule().NameOrOID())
	assert.Equal(t, "UUIDOrderingMatch", entryUUID.OrderingMatchingRule().NameOrOID())
}

func TestDefaultSchemaObjectClassReferencesResolve(t *testing.T) {
	s := DefaultSchema()
	for _, oc := range s.ObjectClasses() {
		for _, at := range oc.AllRequiredAttributes() {
			assert.NotNil(t, at.Syntax(), "%s MUST %s", oc.NameOrOID(), at.NameOrOID())
		}
		for _, at := range oc.AllOptionalAttributes() {
			assert.NotNil(t, at.Syntax(), "%s MAY %s", oc.NameOrOID(), at.NameOrOID())
		}
	}
}

func TestDefaultSchemaEveryTypeResolved(t *testing.T) {
	s := DefaultSchema()
	for _, at := range s.AttributeTypes() {
		assert.NotNil(t, at.Syntax(), at.NameOrOID())
		if at.SuperiorType() != nil {
			assert.True(t, at.IsSubTypeOf(at.SuperiorType()), at.NameOrOID())
		}
	}
	for _, mr := range s.MatchingRules() {
		assert.NotNil(t, mr.Syntax(), mr.NameOrOID())
	}
}

func TestDefaultSchemaRawDefinitionsRoundTrip(t *testing.T) {
	s := DefaultSchema()
	for _, raw := range defaultAttributeTypes {
		def, err := ParseAttributeType(raw)
		require.NoError(t, err)
		at := s.GetAttributeType(def.OID)
		require.NotNil(t, at, def.OID)
		assert.Equal(t, raw, at.String())
	}
	for _, raw := range defaultObjectClasses {
		def, err := ParseObjectClass(raw)
		require.NoError(t, err)
		oc := s.GetObjectClass(def.OID)
		require.NotNil(t, oc, def.OID)
		assert.Equal(t, raw, oc.String())
	}
}
