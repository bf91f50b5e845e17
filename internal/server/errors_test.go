package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/render"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "unknown template",
			err:  &render.UnknownTemplateError{TemplateID: "brutalist"},
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "wrapped unknown template",
			err:  fmt.Errorf("render: %w", &render.UnknownTemplateError{TemplateID: "brutalist"}),
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "db not found",
			err:  db.ErrNotFound,
			want: http.StatusNotFound,
		},
		{
			name: "resume not found",
			err:  &ErrResumeNotFound{ID: uuid.New()},
			want: http.StatusNotFound,
		},
		{
			name: "validation",
			err:  &ErrValidation{Message: "name is required"},
			want: http.StatusBadRequest,
		},
		{
			name: "service unavailable",
			err:  &ErrServiceUnavailable{Service: "enhancement"},
			want: http.StatusServiceUnavailable,
		},
		{
			name: "anything else",
			err:  errors.New("disk on fire"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	id := uuid.MustParse("7f9c3a10-1111-2222-3333-444455556666")

	assert.Equal(t, "resume not found: 7f9c3a10-1111-2222-3333-444455556666",
		(&ErrResumeNotFound{ID: id}).Error())
	assert.Equal(t, "validation error: name is required",
		(&ErrValidation{Message: "name is required"}).Error())
	assert.Equal(t, "service not configured: ats",
		(&ErrServiceUnavailable{Service: "ats"}).Error())
}
