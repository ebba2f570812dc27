package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDirectoryString(t *testing.T) {
	assert.True(t, ValidateDirectoryString([]byte("hello")))
	assert.True(t, ValidateDirectoryString([]byte("çağrı")))
	assert.False(t, ValidateDirectoryString(nil))
	assert.False(t, ValidateDirectoryString([]byte{0xff, 0xfe}))
}

func TestValidateInteger(t *testing.T) {
	valid := []string{"0", "42", "-7", "+13", "123456789012345678901234567890"}
	for _, v := range valid {
		assert.True(t, ValidateInteger([]byte(v)), v)
	}
	invalid := []string{"", "-", "+", "1.5", "12a", " 42"}
	for _, v := range invalid {
		assert.False(t, ValidateInteger([]byte(v)), v)
	}
}

func TestValidateBoolean(t *testing.T) {
	assert.True(t, ValidateBoolean([]byte("TRUE")))
	assert.True(t, ValidateBoolean([]byte("FALSE")))
	assert.False(t, ValidateBoolean([]byte("true")))
	assert.False(t, ValidateBoolean([]byte("yes")))
	assert.False(t, ValidateBoolean(nil))
}

func TestValidateIA5String(t *testing.T) {
	assert.True(t, ValidateIA5String([]byte("user@example.com")))
	assert.True(t, ValidateIA5String(nil))
	assert.False(t, ValidateIA5String([]byte("çağrı")))
}

func TestValidatePrintableString(t *testing.T) {
	assert.True(t, ValidatePrintableString([]byte("Ankara-06 (TR)")))
	assert.False(t, ValidatePrintableString([]byte("semi;colon")))
	assert.False(t, ValidatePrintableString([]byte("under_score")))
}

func TestValidateNumericString(t *testing.T) {
	assert.True(t, ValidateNumericString([]byte("123 456")))
	assert.False(t, ValidateNumericString([]byte("123-456")))
}

func TestValidateTelephoneNumber(t *testing.T) {
	assert.True(t, ValidateTelephoneNumber([]byte("+90 (312) 555-0100")))
	assert.False(t, ValidateTelephoneNumber([]byte("")))
	assert.False(t, ValidateTelephoneNumber([]byte("CALL ME")))
}

func TestValidateUUID(t *testing.T) {
	assert.True(t, ValidateUUID([]byte("6ba7b810-9dad-11d1-80b4-00c04fd430c8")))
	assert.False(t, ValidateUUID([]byte("not-a-uuid")))
	assert.False(t, ValidateUUID([]byte("")))
}

func TestValidateGeneralizedTime(t *testing.T) {
	valid := []string{
		"20260830120000Z",
		"202608301200Z",
		"20260830120000+0300",
	}
	for _, v := range valid {
		assert.True(t, ValidateGeneralizedTime([]byte(v)), v)
	}
	invalid := []string{"", "20260830", "2026-08-30T12:00:00Z", "20261340120000Z"}
	for _, v := range invalid {
		assert.False(t, ValidateGeneralizedTime([]byte(v)), v)
	}
}

func TestSyntaxValidateWithoutValidator(t *testing.T) {
	syn, err := NewSyntax(SyntaxDef{OID: "9.9.9", Description: "Opaque"})
	require.NoError(t, err)
	assert.False(t, syn.HasValidator())
	assert.True(t, syn.Validate([]byte{0x00, 0xff}))
}

func TestNewSyntaxRequiresOID(t *testing.T) {
	_, err := NewSyntax(SyntaxDef{Description: "nameless"})
	var de *DefinitionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindMalformedDefinition, de.Kind)
}

func TestSyntaxString(t *testing.T) {
	syn, err := NewSyntax(SyntaxDef{OID: SyntaxDirectoryString, Description: "Directory String"})
	require.NoError(t, err)
	assert.Equal(t, "( 1.3.6.1.4.1.1466.115.121.1.15 DESC 'Directory String' )", syn.String())
}

func TestSyntaxDefaultRulesResolved(t *testing.T) {
	s := DefaultSchema()
	syn := s.GetSyntax(SyntaxDirectoryString)
	require.NotNil(t, syn)
	require.NotNil(t, syn.DefaultEqualityRule())
	assert.Equal(t, "caseIgnoreMatch", syn.DefaultEqualityRule().NameOrOID())
	assert.Equal(t, "caseIgnoreOrderingMatch", syn.DefaultOrderingRule().NameOrOID())
	assert.Equal(t, "caseIgnoreSubstringsMatch", syn.DefaultSubstringRule().NameOrOID())
	assert.Nil(t, syn.DefaultApproximateRule())
}

func TestMatchingRuleMatch(t *testing.T) {
	s := DefaultSchema()
	ci := s.GetMatchingRule("caseIgnoreMatch")
	require.NotNil(t, ci)
	assert.True(t, ci.Match([]byte("Kerem  Demir"), []byte("kerem demir")))
	assert.False(t, ci.Match([]byte("kerem"), []byte("demir")))

	tel := s.GetMatchingRule("telephoneNumberMatch")
	require.NotNil(t, tel)
	assert.True(t, tel.Match([]byte("+90 312 555-0100"), []byte("+903125550100")))
}
