package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorMessage(t *testing.T) {
	err := NewValidationError("title is required")
	assert.Equal(t, "VALIDATION: title is required", err.Error())

	cause := stderrors.New("connection refused")
	err = NewDatabaseError("save", cause)
	assert.Equal(t, "DATABASE: database operation 'save' failed (caused by: connection refused)", err.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := NewExternalError("annotator", cause)

	assert.ErrorIs(t, err, cause)
}

func TestConstructors_HTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError("x").HTTPStatus)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("session").HTTPStatus)
	assert.Equal(t, http.StatusConflict, NewConflictError("x").HTTPStatus)
	assert.Equal(t, http.StatusUnauthorized, NewUnauthorizedError("").HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, NewInternalError("x").HTTPStatus)
	assert.Equal(t, http.StatusServiceUnavailable, NewUnavailableError("nlp").HTTPStatus)
	assert.Equal(t, http.StatusBadGateway, NewExternalError("nlp", nil).HTTPStatus)
}

func TestNewNotFoundError_MessageIncludesResource(t *testing.T) {
	err := NewNotFoundError("game")
	assert.Equal(t, "game not found", err.Message)
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("paper")))
	assert.True(t, IsValidation(NewValidationError("bad input")))
	assert.True(t, IsConflict(NewConflictError("already exists")))

	assert.False(t, IsNotFound(NewValidationError("bad input")))
	assert.False(t, IsValidation(stderrors.New("plain")))
	assert.False(t, IsConflict(nil))
}

func TestTypePredicates_SeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", NewNotFoundError("session"))

	assert.True(t, IsNotFound(wrapped))
	require.NotNil(t, GetAppError(wrapped))
	assert.Equal(t, ErrorTypeNotFound, GetAppError(wrapped).Type)
}

func TestGetAppError_PlainError(t *testing.T) {
	assert.Nil(t, GetAppError(stderrors.New("plain")))
	assert.False(t, IsAppError(stderrors.New("plain")))
}

func TestWithDetailsAndCode(t *testing.T) {
	err := NewValidationError("bad payload").
		WithCode("INVALID_BODY").
		WithDetails(map[string]interface{}{"field": "title"})

	assert.Equal(t, "INVALID_BODY", err.Code)
	assert.Equal(t, "title", err.Details["field"])
}

func TestWrap(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "context"))
	})

	t.Run("app error keeps its type and gains context", func(t *testing.T) {
		err := Wrap(NewNotFoundError("game"), "loading session")

		require.True(t, IsNotFound(err))
		assert.Equal(t, "loading session: game not found", GetAppError(err).Message)
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		cause := stderrors.New("boom")
		err := Wrap(cause, "saving progress")

		appErr := GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, ErrorTypeInternal, appErr.Type)
		assert.ErrorIs(t, err, cause)
	})
}

func TestWrapf(t *testing.T) {
	err := Wrapf(NewValidationError("missing id"), "session %s", "abc")

	assert.Equal(t, "session abc: missing id", GetAppError(err).Message)
}
