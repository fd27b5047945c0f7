package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripDeclaration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "const with semicolon", input: `const assistants = [{"Tool": "A"}];`, want: `[{"Tool": "A"}]`},
		{name: "no semicolon", input: "const assistants = [\n]\n", want: "[\n]"},
		{name: "let", input: `let cli_assistants=[];`, want: `[]`},
		{name: "var", input: `var x = [];`, want: `[]`},
		{name: "export const", input: `export const specialized_assistants = [];`, want: `[]`},
		{name: "surrounding whitespace", input: "\n\n  const a = [] ;  \n", want: `[]`},
		{name: "plain json", input: ` [{"Tool": "A"}] `, want: `[{"Tool": "A"}]`},
		{name: "only one semicolon removed", input: `const a = [];;`, want: `[];`},
		{name: "byte order mark", input: "\ufeffconst a = [];", want: `[]`},
		{name: "equals inside data untouched", input: `const a = [{"Tool": "x = y"}];`, want: `[{"Tool": "x = y"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StripDeclaration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripDeclarationEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "const a = ;", "const a ="} {
		_, err := StripDeclaration(input)
		assert.ErrorIs(t, err, ErrEmptyBody, "input %q", input)
	}
}
