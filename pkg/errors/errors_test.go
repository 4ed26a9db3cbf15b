package errors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/lindenb1/impress/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "api error: status 502", apperrors.NewAPIError(502).Error())
	assert.Equal(t, "api error: status 400: a; b", apperrors.NewAPIError(400, "a", "b").Error())
}

func TestCauses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{name: "nil", err: nil, want: nil},
		{name: "plain", err: errors.New("timeout"), want: []string{"timeout"}},
		{name: "api error", err: apperrors.NewAPIError(404, "document not found"), want: []string{"document not found"}},
		{name: "wrapped api error", err: fmt.Errorf("fetch: %w", apperrors.NewAPIError(400, "x", "y")), want: []string{"x", "y"}},
		{name: "api error without causes", err: apperrors.NewAPIError(500), want: []string{"api error: status 500"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.Causes(tt.err))
		})
	}
}

func TestCauses_ReturnsCopy(t *testing.T) {
	err := apperrors.NewAPIError(400, "a")
	causes := apperrors.Causes(err)
	causes[0] = "changed"
	assert.Equal(t, []string{"a"}, err.Causes)
}
