package depgraph_test

import (
	"testing"

	"github.com/LegacyCodeHQ/depclosure/depgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeclaration_Valid(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		library  string
		expected []string
	}{
		{
			name:     "single dependency",
			line:     "X depends on Y",
			library:  "X",
			expected: []string{"Y"},
		},
		{
			name:     "several dependencies",
			line:     "A depends on Q R S",
			library:  "A",
			expected: []string{"Q", "R", "S"},
		},
		{
			name:     "duplicates collapse",
			line:     "A depends on B B C B",
			library:  "A",
			expected: []string{"B", "C"},
		},
		{
			name:     "no dependencies",
			line:     "C has no dependencies",
			library:  "C",
			expected: []string{},
		},
		{
			name:     "depends on with nothing after it",
			line:     "A depends on",
			library:  "A",
			expected: []string{},
		},
		{
			name:     "irregular whitespace",
			line:     "  A \t depends   on B\tC  ",
			library:  "A",
			expected: []string{"B", "C"},
		},
		{
			name:     "case sensitive tokens",
			line:     "lib depends on Lib LIB",
			library:  "lib",
			expected: []string{"Lib", "LIB"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			declaration, err := depgraph.ParseDeclaration(tc.line, 3)

			require.NoError(t, err)
			assert.Equal(t, tc.library, declaration.Library)
			assert.Equal(t, tc.expected, declaration.Dependencies)
			assert.Equal(t, tc.line, declaration.Line)
			assert.Equal(t, 3, declaration.Position)
		})
	}
}

func TestParseDeclaration_Malformed(t *testing.T) {
	lines := []string{
		"X invalid format",
		"X",
		"",
		"X depends",
		"X depends in Y",
		"X Depends on Y",
		"X has no deps",
		"X has no dependencies Y",
		"X has dependencies",
		"X on depends Y",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			_, err := depgraph.ParseDeclaration(line, 7)

			var formatErr *depgraph.FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, line, formatErr.Line)
			assert.Equal(t, 7, formatErr.Position)
			assert.Equal(t, "invalid dependency line format: "+line, err.Error())
		})
	}
}
