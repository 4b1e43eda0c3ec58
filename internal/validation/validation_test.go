package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Showmick119/researchify-backend/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

func (r *testRequest) Validate() error {
	return Struct(r)
}

func newContext(t *testing.T, body string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newContext(t, `{"email":"ada@example.edu","name":"Ada"}`)

	payload := &testRequest{}
	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, "ada@example.edu", payload.Email)
	assert.Equal(t, "Ada", payload.Name)
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	c := newContext(t, `{"email":"not-an-email"}`)

	err := BindAndValidate(c, &testRequest{})
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Len(t, httpErr.Errors, 2)

	byField := map[string]string{}
	for _, fe := range httpErr.Errors {
		byField[fe.Field] = fe.Error
	}
	assert.Equal(t, "must be a valid email address", byField["email"])
	assert.Equal(t, "is required", byField["name"])
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	c := newContext(t, `{"email": }`)

	err := BindAndValidate(c, &testRequest{})
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestCustomValidationErrors(t *testing.T) {
	errs := CustomValidationErrors{
		{Field: "tags", Message: "must not contain duplicates"},
	}
	assert.Equal(t, "Validation failed", errs.Error())
}
