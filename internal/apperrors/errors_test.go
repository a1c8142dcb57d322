package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/advisor_client_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperrors.Kind
	}{
		{"not found", apperrors.ErrNotFound, apperrors.KindNotFound},
		{"wrapped not found", fmt.Errorf("find user: %w", apperrors.ErrNotFound), apperrors.KindNotFound},
		{"duplicate email", apperrors.ErrDuplicateEmail, apperrors.KindDuplicateEmail},
		{"invalid credential", apperrors.ErrInvalidCredential, apperrors.KindInvalidCredential},
		{"expired", apperrors.ErrExpired, apperrors.KindExpired},
		{"unauthorized", apperrors.ErrUnauthorized, apperrors.KindUnauthorized},
		{"validation", apperrors.ErrValidation, apperrors.KindValidation},
		{"unknown", errors.New("boom"), apperrors.KindInternal},
		{"app error wrapping not found", apperrors.NewAppError(404, "lookup", apperrors.ErrNotFound), apperrors.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.KindOf(tt.err))
		})
	}
}

func TestAppError(t *testing.T) {
	inner := errors.New("connection refused")
	err := apperrors.NewAppError(500, "failed to begin transaction", inner)

	assert.Equal(t, "failed to begin transaction: connection refused", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "failed to begin transaction", apperrors.NewAppError(500, "failed to begin transaction", nil).Error())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "DuplicateEmail", apperrors.KindDuplicateEmail.String())
	assert.Equal(t, "Internal", apperrors.KindInternal.String())
}
