package mvc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/mvc"
)

func TestPanicError(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		value      any
		wantMsg    string
		wantUnwrap bool
	}{
		"string value": {
			value:   "boom",
			wantMsg: "panic: boom",
		},
		"error value": {
			value:      mvc.ErrNotProvided,
			wantMsg:    "panic: no binding",
			wantUnwrap: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := fmt.Errorf("dispatch: %w", &mvc.PanicError{Value: tc.value})
			assert.EqualError(t, err, "dispatch: "+tc.wantMsg)

			var pe *mvc.PanicError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tc.value, pe.Value)
			assert.Equal(t, tc.wantUnwrap, errors.Is(err, mvc.ErrNotProvided))
		})
	}
}
