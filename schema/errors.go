package schema

import "fmt"

// ErrorKind classifies why a schema definition was rejected.
type ErrorKind int

const (
	// KindMalformedDefinition indicates a required field was missing or a
	// construction-time constraint was violated.
	KindMalformedDefinition ErrorKind = iota

	// KindUnresolvedReference indicates a referenced OID (superior type,
	// matching rule, syntax, object class) does not exist in the schema
	// being built.
	KindUnresolvedReference

	// KindInvalidSuperiorRelationship indicates a usage or collective-flag
	// mismatch between a type and its declared superior.
	KindInvalidSuperiorRelationship

	// KindInvalidUsageCombination indicates an illegal combination of the
	// COLLECTIVE or NO-USER-MODIFICATION flags with the declared usage.
	KindInvalidUsageCombination

	// KindCyclicReference indicates a superior chain that loops back onto
	// a definition already being resolved.
	KindCyclicReference
)

// String returns the string representation of the ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindMalformedDefinition:
		return "malformed definition"
	case KindUnresolvedReference:
		return "unresolved reference"
	case KindInvalidSuperiorRelationship:
		return "invalid superior relationship"
	case KindInvalidUsageCombination:
		return "invalid usage combination"
	case KindCyclicReference:
		return "cyclic reference"
	default:
		return "unknown"
	}
}

// DefinitionError reports a single schema definition that could not be
// used, carrying the name or OID of the offending definition so it can be
// surfaced to an administrator.
type DefinitionError struct {
	Kind      ErrorKind
	NameOrOID string
	Message   string
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.NameOrOID, e.Message)
}

func newDefinitionError(kind ErrorKind, nameOrOID, format string, args ...any) *DefinitionError {
	return &DefinitionError{
		Kind:      kind,
		NameOrOID: nameOrOID,
		Message:   fmt.Sprintf(format, args...),
	}
}
