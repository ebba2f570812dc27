package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributeUsageString(t *testing.T) {
	assert.Equal(t, "userApplications", UserApplications.String())
	assert.Equal(t, "directoryOperation", DirectoryOperation.String())
	assert.Equal(t, "distributedOperation", DistributedOperation.String())
	assert.Equal(t, "dSAOperation", DSAOperation.String())
}

func TestAttributeUsageIsOperational(t *testing.T) {
	assert.False(t, UserApplications.IsOperational())
	assert.True(t, DirectoryOperation.IsOperational())
	assert.True(t, DistributedOperation.IsOperational())
	assert.True(t, DSAOperation.IsOperational())
}

func TestParseAttributeUsage(t *testing.T) {
	tests := []struct {
		input string
		want  AttributeUsage
		ok    bool
	}{
		{"userApplications", UserApplications, true},
		{"USERAPPLICATIONS", UserApplications, true},
		{"directoryOperation", DirectoryOperation, true},
		{"distributedOperation", DistributedOperation, true},
		{"dSAOperation", DSAOperation, true},
		{"dsaoperation", DSAOperation, true},
		{"bogus", UserApplications, false},
		{"", UserApplications, false},
	}
	for _, tt := range tests {
		got, ok := ParseAttributeUsage(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}
