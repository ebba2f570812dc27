package schema

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySwap(t *testing.T) {
	first := DefaultSchema()
	r := NewRegistry(first)
	assert.Same(t, first, r.Current())

	b := NewBuilder()
	b.AddSyntax(SyntaxDef{OID: SyntaxDirectoryString, Description: "Directory String"})
	second, err := b.Build()
	require.NoError(t, err)

	old := r.Swap(second)
	assert.Same(t, first, old)
	assert.Same(t, second, r.Current())
}

func TestRegistryConcurrentReads(t *testing.T) {
	r := NewRegistry(DefaultSchema())

	b := NewBuilder()
	b.AddSyntax(SyntaxDef{OID: SyntaxDirectoryString, Description: "Directory String"})
	replacement, err := b.Build()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				s := r.Current()
				require.NotNil(t, s)
				// Whichever schema a reader holds, it is internally
				// consistent for the duration of the read.
				if at := s.GetAttributeType("cn"); at != nil {
					require.NotNil(t, at.Syntax())
				}
			}
		}()
	}
	for i := 0; i < 100; i++ {
		r.Swap(replacement)
		r.Swap(DefaultSchema())
	}
	wg.Wait()
}
