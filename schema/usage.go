package schema

import "strings"

// AttributeUsage classifies how an attribute is used in the directory.
// This determines whether the attribute carries user data or is managed by
// the server for its own purposes.
type AttributeUsage int

const (
	// UserApplications indicates a user attribute that applications can
	// read and write. This is the default usage for most attributes.
	UserApplications AttributeUsage = iota

	// DirectoryOperation indicates an operational attribute used by the
	// directory for its own purposes.
	DirectoryOperation

	// DistributedOperation indicates an operational attribute that is
	// shared across multiple directory servers.
	DistributedOperation

	// DSAOperation indicates an operational attribute specific to a
	// single Directory System Agent. These are local to each server.
	DSAOperation
)

// String returns the RFC 4512 keyword for the AttributeUsage.
func (u AttributeUsage) String() string {
	switch u {
	case UserApplications:
		return "userApplications"
	case DirectoryOperation:
		return "directoryOperation"
	case DistributedOperation:
		return "distributedOperation"
	case DSAOperation:
		return "dSAOperation"
	default:
		return "unknown"
	}
}

// IsOperational returns true if this usage indicates an operational
// attribute, i.e. anything other than userApplications.
func (u AttributeUsage) IsOperational() bool {
	return u != UserApplications
}

// ParseAttributeUsage maps an RFC 4512 usage keyword to its
// AttributeUsage. Matching is case-insensitive. The second return value
// is false if the keyword is not a known usage.
func ParseAttributeUsage(s string) (AttributeUsage, bool) {
	switch strings.ToLower(s) {
	case "userapplications":
		return UserApplications, true
	case "directoryoperation":
		return DirectoryOperation, true
	case "distributedoperation":
		return DistributedOperation, true
	case "dsaoperation":
		return DSAOperation, true
	default:
		return UserApplications, false
	}
}
