package model

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	aasmodel "github.com/rwth-iat/basyx-go-framework/pkg/model"
)

func TestDefaultErrorHandlerParameterErrors(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	DefaultErrorHandler(rec, nil, &ParsingError{Param: "limit", Err: errors.New("not a number")}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	DefaultErrorHandler(rec, nil, &RequiredError{Field: "id"}, nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDefaultErrorHandlerBodyValidationErrors(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	DefaultErrorHandler(rec, nil, &aasmodel.RequiredError{Field: "id"}, nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "required field 'id'")

	rec = httptest.NewRecorder()
	DefaultErrorHandler(rec, nil, &aasmodel.ParsingError{Err: errors.New("unexpected end of JSON input")}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	DefaultErrorHandler(rec, nil, fmt.Errorf("decoding body: %w", &aasmodel.RequiredError{Field: "assetInformation"}), nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDefaultErrorHandlerWithoutResponse(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	DefaultErrorHandler(rec, nil, errors.New("backend unavailable"), nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	resp := Response(http.StatusConflict, nil)
	DefaultErrorHandler(rec, nil, errors.New("duplicate identifier"), &resp)
	require.Equal(t, http.StatusConflict, rec.Code)
}
