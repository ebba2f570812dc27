package schema

import (
	"bytes"
	"fmt"
	"sync"
)

// Default schema definitions covering RFC 4512, RFC 4517, RFC 4519 and
// the common extensions (RFC 2307, RFC 2798, RFC 4524) a directory is
// expected to ship with.

// defaultSyntaxes returns the standard LDAP syntax definitions with
// their validators and per-slot default matching rules.
func defaultSyntaxes() []SyntaxDef {
	return []SyntaxDef{
		{OID: "1.3.6.1.4.1.1466.115.121.1.3", Description: "Attribute Type Description"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.4", Description: "Audio"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.5", Description: "Binary", Validator: ValidateOctetString},
		{OID: SyntaxBitString, Description: "Bit String",
			EqualityRuleOID: "bitStringMatch"},
		{OID: SyntaxBoolean, Description: "Boolean", Validator: ValidateBoolean,
			EqualityRuleOID: "booleanMatch"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.8", Description: "Certificate",
			EqualityRuleOID: "octetStringMatch"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.11", Description: "Country String", Validator: ValidatePrintableString,
			EqualityRuleOID: "caseIgnoreMatch"},
		{OID: SyntaxDN, Description: "DN",
			EqualityRuleOID: "distinguishedNameMatch"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.14", Description: "Delivery Method"},
		{OID: SyntaxDirectoryString, Description: "Directory String", Validator: ValidateDirectoryString,
			EqualityRuleOID:  "caseIgnoreMatch",
			OrderingRuleOID:  "caseIgnoreOrderingMatch",
			SubstringRuleOID: "caseIgnoreSubstringsMatch"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.16", Description: "DIT Content Rule Description"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.17", Description: "DIT Structure Rule Description"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.22", Description: "Facsimile Telephone Number"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.23", Description: "Fax"},
		{OID: SyntaxGeneralizedTime, Description: "Generalized Time", Validator: ValidateGeneralizedTime,
			EqualityRuleOID: "generalizedTimeMatch",
			OrderingRuleOID: "generalizedTimeOrderingMatch"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.25", Description: "Guide"},
		{OID: SyntaxIA5String, Description: "IA5 String", Validator: ValidateIA5String,
			EqualityRuleOID:  "caseIgnoreIA5Match",
			SubstringRuleOID: "caseIgnoreIA5SubstringsMatch"},
		{OID: SyntaxInteger, Description: "INTEGER", Validator: ValidateInteger,
			EqualityRuleOID: "integerMatch",
			OrderingRuleOID: "integerOrderingMatch"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.28", Description: "JPEG"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.30", Description: "Matching Rule Description"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.31", Description: "Matching Rule Use Description"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.34", Description: "Name And Optional UID",
			EqualityRuleOID: "uniqueMemberMatch"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.35", Description: "Name Form Description"},
		{OID: SyntaxNumericString, Description: "Numeric String", Validator: ValidateNumericString,
			EqualityRuleOID:  "numericStringMatch",
			SubstringRuleOID: "numericStringSubstringsMatch"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.37", Description: "Object Class Description"},
		{OID: SyntaxOID, Description: "OID",
			EqualityRuleOID: "objectIdentifierMatch"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.39", Description: "Other Mailbox"},
		{OID: SyntaxOctetString, Description: "Octet String", Validator: ValidateOctetString,
			EqualityRuleOID: "octetStringMatch",
			OrderingRuleOID: "octetStringOrderingMatch"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.41", Description: "Postal Address",
			EqualityRuleOID:  "caseIgnoreListMatch",
			SubstringRuleOID: "caseIgnoreListSubstringsMatch"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.43", Description: "Presentation Address",
			EqualityRuleOID: "presentationAddressMatch"},
		{OID: SyntaxPrintableString, Description: "Printable String", Validator: ValidatePrintableString,
			EqualityRuleOID:  "caseIgnoreMatch",
			OrderingRuleOID:  "caseIgnoreOrderingMatch",
			SubstringRuleOID: "caseIgnoreSubstringsMatch"},
		{OID: SyntaxTelephoneNumber, Description: "Telephone Number", Validator: ValidateTelephoneNumber,
			EqualityRuleOID:  "telephoneNumberMatch",
			SubstringRuleOID: "telephoneNumberSubstringsMatch"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.51", Description: "Teletex Terminal Identifier"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.52", Description: "Telex Number"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.53", Description: "UTC Time"},
		{OID: "1.3.6.1.4.1.1466.115.121.1.54", Description: "LDAP Syntax Description"},
		{OID: SyntaxSubstringAssertion, Description: "Substring Assertion"},
		{OID: SyntaxUUID, Description: "UUID", Validator: ValidateUUID,
			EqualityRuleOID: "UUIDMatch",
			OrderingRuleOID: "UUIDOrderingMatch"},
	}
}

// defaultMatchingRules returns the standard LDAP matching rule
// definitions with their comparison slots and normalizers.
func defaultMatchingRules() []MatchingRuleDef {
	return []MatchingRuleDef{
		{OID: "2.5.13.0", Names: []string{"objectIdentifierMatch"}, SyntaxOID: SyntaxOID,
			Kind: EqualityMatch, Normalizer: normalizeCaseIgnore},
		{OID: "2.5.13.1", Names: []string{"distinguishedNameMatch"}, SyntaxOID: SyntaxDN,
			Kind: EqualityMatch, Normalizer: normalizeCaseIgnore},
		{OID: "2.5.13.2", Names: []string{"caseIgnoreMatch"}, SyntaxOID: SyntaxDirectoryString,
			Kind: EqualityMatch, Normalizer: normalizeCaseIgnore},
		{OID: "2.5.13.3", Names: []string{"caseIgnoreOrderingMatch"}, SyntaxOID: SyntaxDirectoryString,
			Kind: OrderingMatch, Normalizer: normalizeCaseIgnore},
		{OID: "2.5.13.4", Names: []string{"caseIgnoreSubstringsMatch"}, SyntaxOID: SyntaxSubstringAssertion,
			Kind: SubstringMatch, Normalizer: normalizeCaseIgnore},
		{OID: "2.5.13.5", Names: []string{"caseExactMatch"}, SyntaxOID: SyntaxDirectoryString,
			Kind: EqualityMatch, Normalizer: normalizeCaseExact},
		{OID: "2.5.13.6", Names: []string{"caseExactOrderingMatch"}, SyntaxOID: SyntaxDirectoryString,
			Kind: OrderingMatch, Normalizer: normalizeCaseExact},
		{OID: "2.5.13.7", Names: []string{"caseExactSubstringsMatch"}, SyntaxOID: SyntaxSubstringAssertion,
			Kind: SubstringMatch, Normalizer: normalizeCaseExact},
		{OID: "2.5.13.8", Names: []string{"numericStringMatch"}, SyntaxOID: SyntaxNumericString,
			Kind: EqualityMatch, Normalizer: normalizeNumericString},
		{OID: "2.5.13.10", Names: []string{"numericStringSubstringsMatch"}, SyntaxOID: SyntaxSubstringAssertion,
			Kind: SubstringMatch, Normalizer: normalizeNumericString},
		{OID: "2.5.13.11", Names: []string{"caseIgnoreListMatch"}, SyntaxOID: "1.3.6.1.4.1.1466.115.121.1.41",
			Kind: EqualityMatch, Normalizer: normalizeCaseIgnore},
		{OID: "2.5.13.12", Names: []string{"caseIgnoreListSubstringsMatch"}, SyntaxOID: SyntaxSubstringAssertion,
			Kind: SubstringMatch, Normalizer: normalizeCaseIgnore},
		{OID: "2.5.13.13", Names: []string{"booleanMatch"}, SyntaxOID: SyntaxBoolean,
			Kind: EqualityMatch, Normalizer: bytes.ToUpper},
		{OID: "2.5.13.14", Names: []string{"integerMatch"}, SyntaxOID: SyntaxInteger,
			Kind: EqualityMatch, Normalizer: bytes.TrimSpace},
		{OID: "2.5.13.15", Names: []string{"integerOrderingMatch"}, SyntaxOID: SyntaxInteger,
			Kind: OrderingMatch, Normalizer: bytes.TrimSpace},
		{OID: "2.5.13.16", Names: []string{"bitStringMatch"}, SyntaxOID: SyntaxBitString,
			Kind: EqualityMatch},
		{OID: "2.5.13.17", Names: []string{"octetStringMatch"}, SyntaxOID: SyntaxOctetString,
			Kind: EqualityMatch},
		{OID: "2.5.13.18", Names: []string{"octetStringOrderingMatch"}, SyntaxOID: SyntaxOctetString,
			Kind: OrderingMatch},
		{OID: "2.5.13.20", Names: []string{"telephoneNumberMatch"}, SyntaxOID: SyntaxTelephoneNumber,
			Kind: EqualityMatch, Normalizer: normalizeTelephoneNumber},
		{OID: "2.5.13.21", Names: []string{"telephoneNumberSubstringsMatch"}, SyntaxOID: SyntaxSubstringAssertion,
			Kind: SubstringMatch, Normalizer: normalizeTelephoneNumber},
		{OID: "2.5.13.22", Names: []string{"presentationAddressMatch"}, SyntaxOID: "1.3.6.1.4.1.1466.115.121.1.43",
			Kind: EqualityMatch},
		{OID: "2.5.13.23", Names: []string{"uniqueMemberMatch"}, SyntaxOID: "1.3.6.1.4.1.1466.115.121.1.34",
			Kind: EqualityMatch, Normalizer: normalizeCaseIgnore},
		{OID: "2.5.13.27", Names: []string{"generalizedTimeMatch"}, SyntaxOID: SyntaxGeneralizedTime,
			Kind: EqualityMatch},
		{OID: "2.5.13.28", Names: []string{"generalizedTimeOrderingMatch"}, SyntaxOID: SyntaxGeneralizedTime,
			Kind: OrderingMatch},
		{OID: "2.5.13.29", Names: []string{"integerFirstComponentMatch"}, SyntaxOID: SyntaxInteger,
			Kind: EqualityMatch},
		{OID: "2.5.13.30", Names: []string{"objectIdentifierFirstComponentMatch"}, SyntaxOID: SyntaxOID,
			Kind: EqualityMatch},
		{OID: "1.3.6.1.4.1.1466.109.114.1", Names: []string{"caseExactIA5Match"}, SyntaxOID: SyntaxIA5String,
			Kind: EqualityMatch, Normalizer: normalizeCaseExact},
		{OID: "1.3.6.1.4.1.1466.109.114.2", Names: []string{"caseIgnoreIA5Match"}, SyntaxOID: SyntaxIA5String,
			Kind: EqualityMatch, Normalizer: normalizeCaseIgnore},
		{OID: "1.3.6.1.4.1.1466.109.114.3", Names: []string{"caseIgnoreIA5SubstringsMatch"}, SyntaxOID: SyntaxSubstringAssertion,
			Kind: SubstringMatch, Normalizer: normalizeCaseIgnore},
		{OID: "1.3.6.1.1.16.2", Names: []string{"UUIDMatch"}, SyntaxOID: SyntaxUUID,
			Kind: EqualityMatch, Normalizer: normalizeCaseIgnore},
		{OID: "1.3.6.1.1.16.3", Names: []string{"UUIDOrderingMatch"}, SyntaxOID: SyntaxUUID,
			Kind: OrderingMatch, Normalizer: normalizeCaseIgnore},
	}
}

// normalizeCaseIgnore lowercases the value and collapses whitespace runs
// to a single space.
func normalizeCaseIgnore(value []byte) []byte {
	return bytes.ToLower(normalizeCaseExact(value))
}

// normalizeCaseExact collapses whitespace runs to a single space and
// trims leading and trailing spaces, keeping case.
func normalizeCaseExact(value []byte) []byte {
	return bytes.Join(bytes.Fields(value), []byte{' '})
}

// normalizeNumericString removes all spaces.
func normalizeNumericString(value []byte) []byte {
	return bytes.ReplaceAll(value, []byte{' '}, nil)
}

// normalizeTelephoneNumber removes spaces and hyphens.
func normalizeTelephoneNumber(value []byte) []byte {
	out := make([]byte, 0, len(value))
	for _, b := range value {
		if b == ' ' || b == '-' {
			continue
		}
		out = append(out, b)
	}
	return out
}

// defaultAttributeTypes contains the standard attribute type
// definitions.
var defaultAttributeTypes = []string{
	// Core attributes (RFC 4512)
	`( 2.5.4.0 NAME 'objectClass' DESC 'Object class membership' EQUALITY objectIdentifierMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.38 )`,
	`( 2.5.4.1 NAME ( 'aliasedObjectName' 'aliasedEntryName' ) DESC 'Aliased object name' EQUALITY distinguishedNameMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.12 SINGLE-VALUE )`,

	// Naming attributes (RFC 4519)
	`( 2.5.4.3 NAME ( 'cn' 'commonName' ) DESC 'Common name' SUP name )`,
	`( 2.5.4.4 NAME ( 'sn' 'surname' ) DESC 'Surname' SUP name )`,
	`( 2.5.4.5 NAME 'serialNumber' DESC 'Serial number' EQUALITY caseIgnoreMatch SUBSTR caseIgnoreSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.44 )`,
	`( 2.5.4.6 NAME ( 'c' 'countryName' ) DESC 'Country name' SUP name SINGLE-VALUE )`,
	`( 2.5.4.7 NAME ( 'l' 'localityName' ) DESC 'Locality name' SUP name )`,
	`( 2.5.4.8 NAME ( 'st' 'stateOrProvinceName' ) DESC 'State or province name' SUP name )`,
	`( 2.5.4.9 NAME ( 'street' 'streetAddress' ) DESC 'Street address' EQUALITY caseIgnoreMatch SUBSTR caseIgnoreSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,
	`( 2.5.4.10 NAME ( 'o' 'organizationName' ) DESC 'Organization name' SUP name )`,
	`( 2.5.4.11 NAME ( 'ou' 'organizationalUnitName' ) DESC 'Organizational unit name' SUP name )`,
	`( 2.5.4.12 NAME 'title' DESC 'Title' SUP name )`,
	`( 2.5.4.13 NAME 'description' DESC 'Description' EQUALITY caseIgnoreMatch SUBSTR caseIgnoreSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,
	`( 2.5.4.14 NAME 'searchGuide' DESC 'Search guide' SYNTAX 1.3.6.1.4.1.1466.115.121.1.25 )`,
	`( 2.5.4.15 NAME 'businessCategory' DESC 'Business category' EQUALITY caseIgnoreMatch SUBSTR caseIgnoreSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,
	`( 2.5.4.16 NAME 'postalAddress' DESC 'Postal address' EQUALITY caseIgnoreListMatch SUBSTR caseIgnoreListSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.41 )`,
	`( 2.5.4.17 NAME 'postalCode' DESC 'Postal code' EQUALITY caseIgnoreMatch SUBSTR caseIgnoreSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,
	`( 2.5.4.18 NAME 'postOfficeBox' DESC 'Post office box' EQUALITY caseIgnoreMatch SUBSTR caseIgnoreSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,
	`( 2.5.4.19 NAME 'physicalDeliveryOfficeName' DESC 'Physical delivery office name' EQUALITY caseIgnoreMatch SUBSTR caseIgnoreSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,

	// User attributes
	`( 2.5.4.20 NAME 'telephoneNumber' DESC 'Telephone number' EQUALITY telephoneNumberMatch SUBSTR telephoneNumberSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.50 )`,
	`( 2.5.4.21 NAME 'telexNumber' DESC 'Telex number' SYNTAX 1.3.6.1.4.1.1466.115.121.1.52 )`,
	`( 2.5.4.22 NAME 'teletexTerminalIdentifier' DESC 'Teletex terminal identifier' SYNTAX 1.3.6.1.4.1.1466.115.121.1.51 )`,
	`( 2.5.4.23 NAME ( 'facsimileTelephoneNumber' 'fax' ) DESC 'Facsimile telephone number' SYNTAX 1.3.6.1.4.1.1466.115.121.1.22 )`,
	`( 2.5.4.24 NAME 'x121Address' DESC 'X.121 address' EQUALITY numericStringMatch SUBSTR numericStringSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.36 )`,
	`( 2.5.4.25 NAME 'internationaliSDNNumber' DESC 'International ISDN number' EQUALITY numericStringMatch SUBSTR numericStringSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.36 )`,
	`( 2.5.4.26 NAME 'registeredAddress' DESC 'Registered address' SUP postalAddress SYNTAX 1.3.6.1.4.1.1466.115.121.1.41 )`,
	`( 2.5.4.27 NAME 'destinationIndicator' DESC 'Destination indicator' EQUALITY caseIgnoreMatch SUBSTR caseIgnoreSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.44 )`,
	`( 2.5.4.28 NAME 'preferredDeliveryMethod' DESC 'Preferred delivery method' SYNTAX 1.3.6.1.4.1.1466.115.121.1.14 SINGLE-VALUE )`,
	`( 2.5.4.32 NAME 'owner' DESC 'Owner' SUP distinguishedName )`,
	`( 2.5.4.33 NAME 'roleOccupant' DESC 'Role occupant' SUP distinguishedName )`,
	`( 2.5.4.35 NAME 'userPassword' DESC 'User password' EQUALITY octetStringMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.40 )`,
	`( 2.5.4.36 NAME 'userCertificate' DESC 'X.509 user certificate' SYNTAX 1.3.6.1.4.1.1466.115.121.1.8 )`,
	`( 2.5.4.41 NAME 'name' DESC 'Name' EQUALITY caseIgnoreMatch SUBSTR caseIgnoreSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,
	`( 2.5.4.42 NAME ( 'givenName' 'gn' ) DESC 'Given name' SUP name )`,
	`( 2.5.4.43 NAME 'initials' DESC 'Initials' SUP name )`,
	`( 2.5.4.44 NAME 'generationQualifier' DESC 'Generation qualifier' SUP name )`,
	`( 2.5.4.45 NAME 'x500UniqueIdentifier' DESC 'X.500 unique identifier' EQUALITY bitStringMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.6 )`,
	`( 2.5.4.46 NAME 'dnQualifier' DESC 'DN qualifier' EQUALITY caseIgnoreMatch ORDERING caseIgnoreOrderingMatch SUBSTR caseIgnoreSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.44 )`,
	`( 2.5.4.49 NAME 'distinguishedName' DESC 'Distinguished name' EQUALITY distinguishedNameMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.12 )`,

	// Domain component (RFC 4519)
	`( 0.9.2342.19200300.100.1.25 NAME ( 'dc' 'domainComponent' ) DESC 'Domain component' EQUALITY caseIgnoreIA5Match SUBSTR caseIgnoreIA5SubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.26 SINGLE-VALUE )`,

	// User ID (RFC 4519)
	`( 0.9.2342.19200300.100.1.1 NAME ( 'uid' 'userid' ) DESC 'User ID' EQUALITY caseIgnoreMatch SUBSTR caseIgnoreSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,

	// COSINE attributes (RFC 4524)
	`( 0.9.2342.19200300.100.1.3 NAME ( 'mail' 'rfc822Mailbox' ) DESC 'Email address' EQUALITY caseIgnoreIA5Match SUBSTR caseIgnoreIA5SubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.26 )`,
	`( 0.9.2342.19200300.100.1.6 NAME 'roomNumber' DESC 'Room number' EQUALITY caseIgnoreMatch SUBSTR caseIgnoreSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,
	`( 0.9.2342.19200300.100.1.7 NAME 'photo' DESC 'Photo' SYNTAX 1.3.6.1.4.1.1466.115.121.1.23 )`,
	`( 0.9.2342.19200300.100.1.9 NAME 'host' DESC 'Host computer' EQUALITY caseIgnoreIA5Match SUBSTR caseIgnoreIA5SubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.26 )`,
	`( 0.9.2342.19200300.100.1.10 NAME 'manager' DESC 'Manager' EQUALITY distinguishedNameMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.12 )`,
	`( 0.9.2342.19200300.100.1.20 NAME 'homePhone' DESC 'Home telephone number' EQUALITY telephoneNumberMatch SUBSTR telephoneNumberSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.50 )`,
	`( 0.9.2342.19200300.100.1.21 NAME 'secretary' DESC 'Secretary' EQUALITY distinguishedNameMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.12 )`,
	`( 0.9.2342.19200300.100.1.38 NAME 'associatedName' DESC 'Associated name' SUP distinguishedName )`,
	`( 0.9.2342.19200300.100.1.39 NAME 'homePostalAddress' DESC 'Home postal address' EQUALITY caseIgnoreListMatch SUBSTR caseIgnoreListSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.41 )`,
	`( 0.9.2342.19200300.100.1.41 NAME 'mobile' DESC 'Mobile telephone number' EQUALITY telephoneNumberMatch SUBSTR telephoneNumberSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.50 )`,
	`( 0.9.2342.19200300.100.1.42 NAME 'pager' DESC 'Pager telephone number' EQUALITY telephoneNumberMatch SUBSTR telephoneNumberSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.50 )`,
	`( 0.9.2342.19200300.100.1.55 NAME 'audio' DESC 'Audio' SYNTAX 1.3.6.1.4.1.1466.115.121.1.4 )`,
	`( 0.9.2342.19200300.100.1.60 NAME 'jpegPhoto' DESC 'JPEG photo' SYNTAX 1.3.6.1.4.1.1466.115.121.1.28 )`,
	`( 1.3.6.1.4.1.250.1.57 NAME 'labeledURI' DESC 'Labeled URI' EQUALITY caseExactMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,

	// inetOrgPerson attributes (RFC 2798)
	`( 2.16.840.1.113730.3.1.1 NAME 'carLicense' DESC 'Vehicle license plate' EQUALITY caseIgnoreMatch SUBSTR caseIgnoreSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,
	`( 2.16.840.1.113730.3.1.2 NAME 'departmentNumber' DESC 'Department number' EQUALITY caseIgnoreMatch SUBSTR caseIgnoreSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,
	`( 2.16.840.1.113730.3.1.3 NAME 'employeeNumber' DESC 'Employee number' EQUALITY caseIgnoreMatch SUBSTR caseIgnoreSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 SINGLE-VALUE )`,
	`( 2.16.840.1.113730.3.1.4 NAME 'employeeType' DESC 'Employee type' EQUALITY caseIgnoreMatch SUBSTR caseIgnoreSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,
	`( 2.16.840.1.113730.3.1.39 NAME 'preferredLanguage' DESC 'Preferred language' EQUALITY caseIgnoreMatch SUBSTR caseIgnoreSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 SINGLE-VALUE )`,
	`( 2.16.840.1.113730.3.1.40 NAME 'userSMIMECertificate' DESC 'S/MIME certificate' SYNTAX 1.3.6.1.4.1.1466.115.121.1.5 )`,
	`( 2.16.840.1.113730.3.1.216 NAME 'userPKCS12' DESC 'PKCS#12 personal information exchange' SYNTAX 1.3.6.1.4.1.1466.115.121.1.5 )`,
	`( 2.16.840.1.113730.3.1.241 NAME 'displayName' DESC 'Preferred display name' EQUALITY caseIgnoreMatch SUBSTR caseIgnoreSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 SINGLE-VALUE )`,

	// POSIX attributes (RFC 2307)
	`( 1.3.6.1.1.1.1.0 NAME 'uidNumber' DESC 'User ID number' EQUALITY integerMatch ORDERING integerOrderingMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.27 SINGLE-VALUE )`,
	`( 1.3.6.1.1.1.1.1 NAME 'gidNumber' DESC 'Group ID number' EQUALITY integerMatch ORDERING integerOrderingMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.27 SINGLE-VALUE )`,
	`( 1.3.6.1.1.1.1.2 NAME 'gecos' DESC 'GECOS field' EQUALITY caseIgnoreIA5Match SUBSTR caseIgnoreIA5SubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.26 SINGLE-VALUE )`,
	`( 1.3.6.1.1.1.1.3 NAME 'homeDirectory' DESC 'Home directory path' EQUALITY caseExactIA5Match SYNTAX 1.3.6.1.4.1.1466.115.121.1.26 SINGLE-VALUE )`,
	`( 1.3.6.1.1.1.1.4 NAME 'loginShell' DESC 'Login shell path' EQUALITY caseExactIA5Match SYNTAX 1.3.6.1.4.1.1466.115.121.1.26 SINGLE-VALUE )`,
	`( 1.3.6.1.1.1.1.12 NAME 'memberUid' DESC 'Group member login name' EQUALITY caseExactIA5Match SUBSTR caseExactSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.26 )`,

	// Membership attributes
	`( 2.5.4.31 NAME 'member' DESC 'Member' SUP distinguishedName )`,
	`( 2.5.4.50 NAME 'uniqueMember' DESC 'Unique member' EQUALITY uniqueMemberMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.34 )`,
	`( 2.5.4.34 NAME 'seeAlso' DESC 'See also' SUP distinguishedName )`,

	// Operational attributes (RFC 4512)
	`( 2.5.18.1 NAME 'createTimestamp' DESC 'Creation timestamp' EQUALITY generalizedTimeMatch ORDERING generalizedTimeOrderingMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.24 SINGLE-VALUE NO-USER-MODIFICATION USAGE directoryOperation )`,
	`( 2.5.18.2 NAME 'modifyTimestamp' DESC 'Modification timestamp' EQUALITY generalizedTimeMatch ORDERING generalizedTimeOrderingMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.24 SINGLE-VALUE NO-USER-MODIFICATION USAGE directoryOperation )`,
	`( 2.5.18.3 NAME 'creatorsName' DESC 'Creators name' EQUALITY distinguishedNameMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.12 SINGLE-VALUE NO-USER-MODIFICATION USAGE directoryOperation )`,
	`( 2.5.18.4 NAME 'modifiersName' DESC 'Modifiers name' EQUALITY distinguishedNameMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.12 SINGLE-VALUE NO-USER-MODIFICATION USAGE directoryOperation )`,
	`( 2.5.18.9 NAME 'hasSubordinates' DESC 'Has subordinates' EQUALITY booleanMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.7 SINGLE-VALUE NO-USER-MODIFICATION USAGE directoryOperation )`,
	`( 2.5.18.10 NAME 'subschemaSubentry' DESC 'Subschema subentry' EQUALITY distinguishedNameMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.12 SINGLE-VALUE NO-USER-MODIFICATION USAGE directoryOperation )`,
	`( 2.5.21.1 NAME 'dITStructureRules' DESC 'DIT structure rules' SYNTAX 1.3.6.1.4.1.1466.115.121.1.17 USAGE directoryOperation )`,
	`( 2.5.21.2 NAME 'dITContentRules' DESC 'DIT content rules' SYNTAX 1.3.6.1.4.1.1466.115.121.1.16 USAGE directoryOperation )`,
	`( 2.5.21.4 NAME 'matchingRules' DESC 'Matching rules' SYNTAX 1.3.6.1.4.1.1466.115.121.1.30 USAGE directoryOperation )`,
	`( 2.5.21.5 NAME 'attributeTypes' DESC 'Attribute types' SYNTAX 1.3.6.1.4.1.1466.115.121.1.3 USAGE directoryOperation )`,
	`( 2.5.21.6 NAME 'objectClasses' DESC 'Object classes' SYNTAX 1.3.6.1.4.1.1466.115.121.1.37 USAGE directoryOperation )`,
	`( 2.5.21.7 NAME 'nameForms' DESC 'Name forms' SYNTAX 1.3.6.1.4.1.1466.115.121.1.35 USAGE directoryOperation )`,
	`( 2.5.21.8 NAME 'matchingRuleUse' DESC 'Matching rule uses' SYNTAX 1.3.6.1.4.1.1466.115.121.1.31 USAGE directoryOperation )`,
	`( 2.5.21.9 NAME 'structuralObjectClass' DESC 'Structural object class' EQUALITY objectIdentifierMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.38 SINGLE-VALUE NO-USER-MODIFICATION USAGE directoryOperation )`,
	`( 1.3.6.1.4.1.1466.101.120.16 NAME 'ldapSyntaxes' DESC 'LDAP syntaxes' SYNTAX 1.3.6.1.4.1.1466.115.121.1.54 USAGE directoryOperation )`,
	`( 1.3.6.1.1.20 NAME 'entryDN' DESC 'Entry DN' EQUALITY distinguishedNameMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.12 SINGLE-VALUE NO-USER-MODIFICATION USAGE directoryOperation )`,
	`( 1.3.6.1.1.16.4 NAME 'entryUUID' DESC 'Entry UUID' EQUALITY UUIDMatch ORDERING UUIDOrderingMatch SYNTAX 1.3.6.1.1.16.1 SINGLE-VALUE NO-USER-MODIFICATION USAGE directoryOperation )`,
	`( 2.16.840.1.113730.3.1.69 NAME 'numSubordinates' DESC 'Number of subordinates' EQUALITY integerMatch ORDERING integerOrderingMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.27 SINGLE-VALUE NO-USER-MODIFICATION USAGE directoryOperation )`,
}

// defaultObjectClasses contains the standard object class definitions.
var defaultObjectClasses = []string{
	// Core object classes (RFC 4512)
	`( 2.5.6.0 NAME 'top' DESC 'Top of the object class hierarchy' ABSTRACT MUST objectClass )`,
	`( 2.5.6.1 NAME 'alias' DESC 'Alias object class' SUP top STRUCTURAL MUST aliasedObjectName )`,

	// RFC 4519 object classes
	`( 2.5.6.2 NAME 'country' DESC 'Country' SUP top STRUCTURAL MUST c MAY ( searchGuide $ description ) )`,
	`( 2.5.6.3 NAME 'locality' DESC 'Locality' SUP top STRUCTURAL MAY ( street $ seeAlso $ searchGuide $ st $ l $ description ) )`,
	`( 2.5.6.4 NAME 'organization' DESC 'Organization' SUP top STRUCTURAL MUST o MAY ( userPassword $ searchGuide $ seeAlso $ businessCategory $ x121Address $ registeredAddress $ destinationIndicator $ preferredDeliveryMethod $ telexNumber $ teletexTerminalIdentifier $ telephoneNumber $ internationaliSDNNumber $ facsimileTelephoneNumber $ street $ postOfficeBox $ postalCode $ postalAddress $ physicalDeliveryOfficeName $ st $ l $ description ) )`,
	`( 2.5.6.5 NAME 'organizationalUnit' DESC 'Organizational unit' SUP top STRUCTURAL MUST ou MAY ( userPassword $ searchGuide $ seeAlso $ businessCategory $ x121Address $ registeredAddress $ destinationIndicator $ preferredDeliveryMethod $ telexNumber $ teletexTerminalIdentifier $ telephoneNumber $ internationaliSDNNumber $ facsimileTelephoneNumber $ street $ postOfficeBox $ postalCode $ postalAddress $ physicalDeliveryOfficeName $ st $ l $ description ) )`,
	`( 2.5.6.6 NAME 'person' DESC 'Person' SUP top STRUCTURAL MUST ( sn $ cn ) MAY ( userPassword $ telephoneNumber $ seeAlso $ description ) )`,
	`( 2.5.6.7 NAME 'organizationalPerson' DESC 'Organizational person' SUP person STRUCTURAL MAY ( title $ x121Address $ registeredAddress $ destinationIndicator $ preferredDeliveryMethod $ telexNumber $ teletexTerminalIdentifier $ telephoneNumber $ internationaliSDNNumber $ facsimileTelephoneNumber $ street $ postOfficeBox $ postalCode $ postalAddress $ physicalDeliveryOfficeName $ ou $ st $ l ) )`,
	`( 2.5.6.8 NAME 'organizationalRole' DESC 'Organizational role' SUP top STRUCTURAL MUST cn MAY ( x121Address $ registeredAddress $ destinationIndicator $ preferredDeliveryMethod $ telexNumber $ teletexTerminalIdentifier $ telephoneNumber $ internationaliSDNNumber $ facsimileTelephoneNumber $ seeAlso $ roleOccupant $ street $ postOfficeBox $ postalCode $ postalAddress $ physicalDeliveryOfficeName $ ou $ st $ l $ description ) )`,
	`( 2.5.6.9 NAME 'groupOfNames' DESC 'Group of names' SUP top STRUCTURAL MUST ( member $ cn ) MAY ( businessCategory $ seeAlso $ owner $ ou $ o $ description ) )`,
	`( 2.5.6.17 NAME 'groupOfUniqueNames' DESC 'Group of unique names' SUP top STRUCTURAL MUST ( uniqueMember $ cn ) MAY ( businessCategory $ seeAlso $ owner $ ou $ o $ description ) )`,

	// inetOrgPerson (RFC 2798)
	`( 2.16.840.1.113730.3.2.2 NAME 'inetOrgPerson' DESC 'Internet organizational person' SUP organizationalPerson STRUCTURAL MAY ( audio $ businessCategory $ carLicense $ departmentNumber $ displayName $ employeeNumber $ employeeType $ givenName $ homePhone $ homePostalAddress $ initials $ jpegPhoto $ labeledURI $ mail $ manager $ mobile $ o $ pager $ photo $ roomNumber $ secretary $ uid $ userCertificate $ x500uniqueIdentifier $ preferredLanguage $ userSMIMECertificate $ userPKCS12 ) )`,

	// Domain component (RFC 4519)
	`( 0.9.2342.19200300.100.4.13 NAME 'domain' DESC 'Domain' SUP top STRUCTURAL MUST dc MAY ( userPassword $ searchGuide $ seeAlso $ businessCategory $ x121Address $ registeredAddress $ destinationIndicator $ preferredDeliveryMethod $ telexNumber $ teletexTerminalIdentifier $ telephoneNumber $ internationaliSDNNumber $ facsimileTelephoneNumber $ street $ postOfficeBox $ postalCode $ postalAddress $ physicalDeliveryOfficeName $ st $ l $ description $ o $ associatedName ) )`,
	`( 1.3.6.1.4.1.1466.344 NAME 'dcObject' DESC 'Domain component object' SUP top AUXILIARY MUST dc )`,

	// Subschema (RFC 4512)
	`( 2.5.20.1 NAME 'subschema' DESC 'Subschema' AUXILIARY MAY ( dITStructureRules $ nameForms $ ditContentRules $ objectClasses $ attributeTypes $ matchingRules $ matchingRuleUse ) )`,

	// LDAP subentry (RFC 3672)
	`( 2.16.840.1.113719.2.142.6.1.1 NAME 'ldapSubEntry' DESC 'LDAP subentry' SUP top STRUCTURAL MAY cn )`,

	// Simple security object
	`( 0.9.2342.19200300.100.4.19 NAME 'simpleSecurityObject' DESC 'Simple security object' SUP top AUXILIARY MUST userPassword )`,

	// Account (RFC 4524)
	`( 0.9.2342.19200300.100.4.5 NAME 'account' DESC 'Account' SUP top STRUCTURAL MUST uid MAY ( description $ seeAlso $ l $ o $ ou $ host ) )`,

	// POSIX account and group (RFC 2307)
	`( 1.3.6.1.1.1.2.0 NAME 'posixAccount' DESC 'POSIX account' SUP top AUXILIARY MUST ( cn $ uid $ uidNumber $ gidNumber $ homeDirectory ) MAY ( userPassword $ loginShell $ gecos $ description ) )`,
	`( 1.3.6.1.1.1.2.2 NAME 'posixGroup' DESC 'POSIX group' SUP top STRUCTURAL MUST ( cn $ gidNumber ) MAY ( userPassword $ memberUid $ description ) )`,
}

var (
	defaultSchemaOnce sync.Once
	defaultSchema     *Schema
)

// DefaultSchema returns the schema holding the standard definitions. The
// schema is built once and shared; it is immutable, so sharing is safe.
func DefaultSchema() *Schema {
	defaultSchemaOnce.Do(func() {
		s, err := buildDefaultSchema()
		if err != nil {
			panic(fmt.Sprintf("schema: default schema failed to build: %v", err))
		}
		defaultSchema = s
	})
	return defaultSchema
}

func buildDefaultSchema() (*Schema, error) {
	b := NewBuilder()
	for _, def := range defaultSyntaxes() {
		b.AddSyntax(def)
	}
	for _, def := range defaultMatchingRules() {
		b.AddMatchingRule(def)
	}
	for _, raw := range defaultAttributeTypes {
		b.AddAttributeTypeDefinition(raw)
	}
	for _, raw := range defaultObjectClasses {
		b.AddObjectClassDefinition(raw)
	}
	return b.Build()
}
