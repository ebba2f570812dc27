package schema

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttributeType(t *testing.T) {
	at, err := NewAttributeType(AttributeTypeDef{
		OID:             "2.5.4.13",
		Names:           []string{"description"},
		Description:     "Description",
		EqualityRuleOID: "caseIgnoreMatch",
		SyntaxOID:       SyntaxDirectoryString,
	})
	require.NoError(t, err)
	assert.Equal(t, "2.5.4.13", at.OID())
	assert.Equal(t, "description", at.NameOrOID())
	assert.Equal(t, UserApplications, at.Usage())
	assert.False(t, at.IsOperational())
	assert.False(t, at.IsObjectClass())

	// Unresolved until the schema is built.
	assert.Nil(t, at.Syntax())
	assert.Nil(t, at.SuperiorType())
	assert.Nil(t, at.EqualityMatchingRule())
}

func TestNewAttributeTypeErrors(t *testing.T) {
	tests := []struct {
		name string
		def  AttributeTypeDef
	}{
		{"no OID", AttributeTypeDef{Names: []string{"cn"}, SyntaxOID: SyntaxDirectoryString}},
		{"neither SUP nor SYNTAX", AttributeTypeDef{OID: "1.2.3.4", Names: []string{"orphan"}}},
		{"usage out of range", AttributeTypeDef{OID: "1.2.3.4", SyntaxOID: SyntaxDirectoryString, Usage: AttributeUsage(7)}},
		{"duplicate names", AttributeTypeDef{OID: "1.2.3.4", Names: []string{"cn", "CN"}, SyntaxOID: SyntaxDirectoryString}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAttributeType(tt.def)
			var de *DefinitionError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, KindMalformedDefinition, de.Kind)
		})
	}
}

func TestAttributeTypeNames(t *testing.T) {
	at, err := NewAttributeType(AttributeTypeDef{
		OID:       "2.5.4.3",
		Names:     []string{"cn", "commonName"},
		SyntaxOID: SyntaxDirectoryString,
	})
	require.NoError(t, err)

	assert.Equal(t, "cn", at.NameOrOID())
	assert.True(t, at.HasName("CN"))
	assert.True(t, at.HasName("commonname"))
	assert.False(t, at.HasName("2.5.4.3"))
	assert.True(t, at.HasNameOrOID("2.5.4.3"))
	assert.False(t, at.HasNameOrOID("sn"))
}

func TestAttributeTypeEqual(t *testing.T) {
	a, err := NewAttributeType(AttributeTypeDef{OID: "2.5.4.3", Names: []string{"cn"}, SyntaxOID: SyntaxDirectoryString})
	require.NoError(t, err)
	b, err := NewAttributeType(AttributeTypeDef{OID: "2.5.4.3", Names: []string{"totallyDifferent"}, SyntaxOID: SyntaxInteger})
	require.NoError(t, err)
	c, err := NewAttributeType(AttributeTypeDef{OID: "2.5.4.4", Names: []string{"cn"}, SyntaxOID: SyntaxDirectoryString})
	require.NoError(t, err)

	// Identity is the OID alone.
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestAttributeTypeCompare(t *testing.T) {
	mk := func(oid, name string, usage AttributeUsage) *AttributeType {
		def := AttributeTypeDef{OID: oid, SyntaxOID: SyntaxDirectoryString, Usage: usage}
		if name != "" {
			def.Names = []string{name}
		}
		at, err := NewAttributeType(def)
		require.NoError(t, err)
		return at
	}

	objectClass := mk(ObjectClassAttributeOID, "objectClass", UserApplications)
	cn := mk("2.5.4.3", "cn", UserApplications)
	sn := mk("2.5.4.4", "sn", UserApplications)
	upperGiven := mk("2.5.4.42", "GivenName", UserApplications)
	createTimestamp := mk("2.5.18.1", "createTimestamp", DirectoryOperation)
	unnamed := mk("1.2.3.4", "", UserApplications)

	// objectClass sorts before everything.
	assert.Negative(t, objectClass.Compare(cn))
	assert.Negative(t, objectClass.Compare(createTimestamp))
	assert.Positive(t, cn.Compare(objectClass))
	assert.Zero(t, objectClass.Compare(objectClass))

	// User attributes sort before operational ones.
	assert.Negative(t, sn.Compare(createTimestamp))
	assert.Positive(t, createTimestamp.Compare(sn))

	// Within a bucket, order is case-insensitive on the display name.
	assert.Negative(t, cn.Compare(upperGiven))
	assert.Negative(t, upperGiven.Compare(sn))

	// Unnamed types order by OID.
	assert.Negative(t, unnamed.Compare(cn))

	all := []*AttributeType{createTimestamp, sn, cn, objectClass, upperGiven}
	sort.Slice(all, func(i, j int) bool { return all[i].Compare(all[j]) < 0 })
	var names []string
	for _, at := range all {
		names = append(names, at.NameOrOID())
	}
	assert.Equal(t, []string{"objectClass", "cn", "GivenName", "sn", "createTimestamp"}, names)
}

func TestAttributeTypeString(t *testing.T) {
	at, err := NewAttributeType(AttributeTypeDef{
		OID:                "2.5.18.1",
		Names:              []string{"createTimestamp"},
		Description:        "Creation timestamp",
		EqualityRuleOID:    "generalizedTimeMatch",
		OrderingRuleOID:    "generalizedTimeOrderingMatch",
		SyntaxOID:          SyntaxGeneralizedTime,
		SingleValue:        true,
		NoUserModification: true,
		Usage:              DirectoryOperation,
	})
	require.NoError(t, err)
	assert.Equal(t,
		"( 2.5.18.1 NAME 'createTimestamp' DESC 'Creation timestamp'"+
			" EQUALITY generalizedTimeMatch ORDERING generalizedTimeOrderingMatch"+
			" SYNTAX 1.3.6.1.4.1.1466.115.121.1.24 SINGLE-VALUE NO-USER-MODIFICATION"+
			" USAGE directoryOperation )",
		at.String())
}

func TestAttributeTypeStringMultipleNames(t *testing.T) {
	at, err := NewAttributeType(AttributeTypeDef{
		OID:         "2.5.4.3",
		Names:       []string{"cn", "commonName"},
		SuperiorOID: "name",
	})
	require.NoError(t, err)
	assert.Equal(t, "( 2.5.4.3 NAME ( 'cn' 'commonName' ) SUP name USAGE userApplications )", at.String())
}

func TestAttributeTypeStringApproximateExtension(t *testing.T) {
	at, err := NewAttributeType(AttributeTypeDef{
		OID:                "1.2.3.4",
		Names:              []string{"nickName"},
		SyntaxOID:          SyntaxDirectoryString,
		ApproximateRuleOID: "soundexMatch",
		ExtraProperties:    []Property{{Name: "X-ORIGIN", Values: []string{"local"}}},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"( 1.2.3.4 NAME 'nickName' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15"+
			" USAGE userApplications X-APPROX-MATCHING-RULE 'soundexMatch' X-ORIGIN 'local' )",
		at.String())
}
