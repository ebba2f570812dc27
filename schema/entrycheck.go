package schema

import (
	"bytes"
	"fmt"
	"strings"
)

// Entry check error codes.
const (
	// ErrObjectClassViolation indicates an object class constraint violation.
	ErrObjectClassViolation = iota
	// ErrUndefinedAttributeType indicates an attribute type is not defined in the schema.
	ErrUndefinedAttributeType
	// ErrInvalidAttributeSyntax indicates an attribute value does not match its syntax.
	ErrInvalidAttributeSyntax
	// ErrMissingRequiredAttribute indicates a required (MUST) attribute is missing.
	ErrMissingRequiredAttribute
	// ErrSingleValueViolation indicates a single-value attribute has multiple values.
	ErrSingleValueViolation
	// ErrNoUserModification indicates an attempt to modify a read-only attribute.
	ErrNoUserModification
)

// ValidationError reports why an entry or modification does not conform
// to the schema.
type ValidationError struct {
	Code    int
	Message string
	Attr    string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Attr != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Attr)
	}
	return e.Message
}

// NewValidationError creates a ValidationError with the given code and message.
func NewValidationError(code int, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// NewValidationErrorWithAttr creates a ValidationError naming the offending attribute.
func NewValidationErrorWithAttr(code int, message, attr string) *ValidationError {
	return &ValidationError{Code: code, Message: message, Attr: attr}
}

// Entry is a directory entry as seen by schema checking: a DN and its
// attribute values keyed by attribute description.
type Entry struct {
	DN         string
	Attributes map[string][][]byte
}

// NewEntry creates an empty Entry with the given DN.
func NewEntry(dn string) *Entry {
	return &Entry{
		DN:         dn,
		Attributes: make(map[string][][]byte),
	}
}

// SetAttribute sets an attribute's values on the entry.
func (e *Entry) SetAttribute(name string, values ...[]byte) {
	e.Attributes[name] = values
}

// SetStringAttribute sets an attribute's values from strings.
func (e *Entry) SetStringAttribute(name string, values ...string) {
	byteValues := make([][]byte, len(values))
	for i, v := range values {
		byteValues[i] = []byte(v)
	}
	e.Attributes[name] = byteValues
}

// GetAttribute returns the values for an attribute.
func (e *Entry) GetAttribute(name string) [][]byte {
	return e.Attributes[name]
}

// GetAll returns all values for an attribute as strings.
func (e *Entry) GetAll(name string) []string {
	values := e.Attributes[name]
	if values == nil {
		return nil
	}
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = string(v)
	}
	return result
}

// Has reports whether the entry has at least one value for the attribute.
func (e *Entry) Has(name string) bool {
	values, ok := e.Attributes[name]
	return ok && len(values) > 0
}

// Clone creates a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	clone := &Entry{
		DN:         e.DN,
		Attributes: make(map[string][][]byte, len(e.Attributes)),
	}
	for k, v := range e.Attributes {
		values := make([][]byte, len(v))
		for i, val := range v {
			values[i] = append([]byte(nil), val...)
		}
		clone.Attributes[k] = values
	}
	return clone
}

// ModificationType represents the type of modification operation.
type ModificationType int

const (
	// ModAdd adds values to an attribute.
	ModAdd ModificationType = iota
	// ModDelete removes values from an attribute.
	ModDelete
	// ModReplace replaces all values of an attribute.
	ModReplace
)

// Modification represents a single modification to an entry.
type Modification struct {
	Type   ModificationType
	Attr   string
	Values [][]byte
}

// NewModification creates a Modification.
func NewModification(modType ModificationType, attr string, values ...[]byte) *Modification {
	return &Modification{Type: modType, Attr: attr, Values: values}
}

// NewStringModification creates a Modification from string values.
func NewStringModification(modType ModificationType, attr string, values ...string) *Modification {
	byteValues := make([][]byte, len(values))
	for i, v := range values {
		byteValues[i] = []byte(v)
	}
	return &Modification{Type: modType, Attr: attr, Values: byteValues}
}

// Validator checks entries and modifications against a resolved schema.
type Validator struct {
	schema *Schema
}

// NewValidator creates a Validator backed by the given schema.
func NewValidator(schema *Schema) *Validator {
	return &Validator{schema: schema}
}

// Schema returns the validator's schema.
func (v *Validator) Schema() *Schema {
	return v.schema
}

// ValidateEntry checks an entry against the schema:
//
//  1. the entry carries an objectClass attribute,
//  2. at least one objectClass is structural,
//  3. every MUST attribute of every objectClass is present,
//  4. every attribute is allowed by MUST or MAY, or is operational,
//  5. single-value attributes carry at most one value,
//  6. values conform to their attribute's syntax.
func (v *Validator) ValidateEntry(entry *Entry) error {
	if entry == nil {
		return NewValidationError(ErrObjectClassViolation, "entry is nil")
	}

	classes := entry.GetAll("objectClass")
	if len(classes) == 0 {
		return NewValidationError(ErrObjectClassViolation, "objectClass required")
	}

	must := make(map[string]*AttributeType)
	may := make(map[string]*AttributeType)
	hasStructural := false
	for _, className := range classes {
		oc := v.schema.GetObjectClass(className)
		if oc == nil {
			return NewValidationErrorWithAttr(ErrObjectClassViolation, "unknown objectClass", className)
		}
		if oc.IsStructural() {
			hasStructural = true
		}
		for _, at := range oc.AllRequiredAttributes() {
			must[at.OID()] = at
		}
		for _, at := range oc.AllOptionalAttributes() {
			may[at.OID()] = at
		}
	}
	if !hasStructural {
		return NewValidationError(ErrObjectClassViolation, "at least one structural objectClass required")
	}

	for _, at := range must {
		if !v.entryHasType(entry, at) {
			return NewValidationErrorWithAttr(ErrMissingRequiredAttribute, "missing required attribute", at.NameOrOID())
		}
	}

	for attr := range entry.Attributes {
		at := v.schema.GetAttributeType(attr)
		if at == nil {
			return NewValidationErrorWithAttr(ErrUndefinedAttributeType, "unknown attribute type", attr)
		}
		if at.IsObjectClass() || at.IsOperational() {
			continue
		}
		if must[at.OID()] == nil && may[at.OID()] == nil {
			return NewValidationErrorWithAttr(ErrObjectClassViolation, "attribute not allowed by objectClass", attr)
		}
	}

	for attr, values := range entry.Attributes {
		at := v.schema.GetAttributeType(attr)
		if at != nil && at.IsSingleValue() && len(values) > 1 {
			return NewValidationErrorWithAttr(ErrSingleValueViolation, "single-value attribute has multiple values", attr)
		}
	}

	for attr, values := range entry.Attributes {
		if err := v.validateSyntax(attr, values); err != nil {
			return err
		}
	}
	return nil
}

// ValidateModification applies the modifications to a copy of the entry
// and checks the result, rejecting writes to NO-USER-MODIFICATION
// attributes up front.
func (v *Validator) ValidateModification(entry *Entry, mods []Modification) error {
	if entry == nil {
		return NewValidationError(ErrObjectClassViolation, "entry is nil")
	}

	modified := entry.Clone()
	for _, mod := range mods {
		at := v.schema.GetAttributeType(mod.Attr)
		if at != nil && at.IsNoUserModification() {
			return NewValidationErrorWithAttr(ErrNoUserModification, "attribute is read-only", mod.Attr)
		}

		switch mod.Type {
		case ModAdd:
			existing := modified.GetAttribute(mod.Attr)
			modified.SetAttribute(mod.Attr, append(existing, mod.Values...)...)

		case ModDelete:
			if len(mod.Values) == 0 {
				delete(modified.Attributes, mod.Attr)
				break
			}
			existing := modified.GetAttribute(mod.Attr)
			kept := make([][]byte, 0, len(existing))
			for _, ev := range existing {
				keep := true
				for _, dv := range mod.Values {
					if bytes.Equal(ev, dv) {
						keep = false
						break
					}
				}
				if keep {
					kept = append(kept, ev)
				}
			}
			if len(kept) == 0 {
				delete(modified.Attributes, mod.Attr)
			} else {
				modified.SetAttribute(mod.Attr, kept...)
			}

		case ModReplace:
			if len(mod.Values) == 0 {
				delete(modified.Attributes, mod.Attr)
			} else {
				modified.SetAttribute(mod.Attr, mod.Values...)
			}
		}

		if at != nil && at.IsSingleValue() {
			if len(modified.GetAttribute(mod.Attr)) > 1 {
				return NewValidationErrorWithAttr(ErrSingleValueViolation, "single-value attribute has multiple values", mod.Attr)
			}
		}
		if mod.Type == ModAdd || mod.Type == ModReplace {
			if err := v.validateSyntax(mod.Attr, mod.Values); err != nil {
				return err
			}
		}
	}
	return v.ValidateEntry(modified)
}

// entryHasType reports whether the entry has a non-empty attribute whose
// description names at, under any of its names or its OID.
func (v *Validator) entryHasType(entry *Entry, at *AttributeType) bool {
	for attr, values := range entry.Attributes {
		if len(values) == 0 {
			continue
		}
		if at.HasNameOrOID(strings.TrimSpace(attr)) {
			return true
		}
	}
	return false
}

// validateSyntax checks values against the attribute's effective syntax.
// The syntax is inherited from the superior chain during schema build, so
// the resolved type always carries one; unknown attributes are skipped
// here and rejected by the allowance check instead.
func (v *Validator) validateSyntax(attr string, values [][]byte) error {
	at := v.schema.GetAttributeType(attr)
	if at == nil {
		return nil
	}
	syntax := at.Syntax()
	if syntax == nil || !syntax.HasValidator() {
		return nil
	}
	for _, value := range values {
		if !syntax.Validate(value) {
			return NewValidationErrorWithAttr(ErrInvalidAttributeSyntax, "invalid attribute syntax", attr)
		}
	}
	return nil
}
