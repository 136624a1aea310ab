package codegen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate_Format(t *testing.T) {
	gen := NewGenerator()
	for i := 0; i < 100; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.Len(t, code, codeLength)
		for _, c := range code {
			if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
				continue
			}
			t.Fatalf("code %q contains character outside A-Z0-9", code)
		}
	}
}

func TestGenerator_Generate_VariesAcrossCalls(t *testing.T) {
	gen := NewGenerator()
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		seen[code] = struct{}{}
	}
	// 50 identical draws from a 36^6 space would mean a broken source.
	require.Greater(t, len(seen), 1)
}
