package input_test

import (
	"strings"
	"testing"

	"github.com/davidhbaek/bard/internal/input"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		Name     string
		Raw      string
		Expected string
		Err      error
	}{
		{Name: "plain sentence", Raw: "Hello, how are you today?", Expected: "Hello, how are you today?"},
		{Name: "surrounding whitespace trimmed", Raw: "  I am going to the store \n", Expected: "I am going to the store"},
		{Name: "internal whitespace preserved", Raw: " a  b\tc ", Expected: "a  b\tc"},
		{Name: "empty string", Raw: "", Err: input.ErrEmptyInput},
		{Name: "whitespace only", Raw: "   ", Err: input.ErrEmptyInput},
		{Name: "exactly at the limit", Raw: strings.Repeat("a", 1000), Expected: strings.Repeat("a", 1000)},
		{Name: "one over the limit", Raw: strings.Repeat("a", 1001), Err: input.ErrInputTooLong},
		{Name: "limit counts runes not bytes", Raw: strings.Repeat("é", 1000), Expected: strings.Repeat("é", 1000)},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got, err := input.Validate(test.Raw)
			if test.Err != nil {
				require.ErrorIs(t, err, test.Err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.Expected, got)
		})
	}
}
