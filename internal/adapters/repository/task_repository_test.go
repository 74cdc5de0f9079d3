package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePattern(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text untouched", input: "Buy milk", want: "Buy milk"},
		{name: "percent escaped", input: "50% discount", want: `50\% discount`},
		{name: "underscore escaped", input: "snake_case", want: `snake\_case`},
		{name: "backslash escaped", input: `C:\tasks`, want: `C:\\tasks`},
		{name: "all metacharacters", input: `\%_`, want: `\\\%\_`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLikePattern(tt.input))
		})
	}
}
