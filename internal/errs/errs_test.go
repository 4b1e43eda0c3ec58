package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("Not Found"))
	assert.Equal(t, "OK", MakeUpperCaseWithUnderscores("OK"))
}

func TestConstructors(t *testing.T) {
	unauthorized := NewUnauthorizedError("User ID missing in request headers", true)
	assert.Equal(t, http.StatusUnauthorized, unauthorized.Status)
	assert.Equal(t, "UNAUTHORIZED", unauthorized.Code)
	assert.True(t, unauthorized.Override)

	forbidden := NewForbiddenError("Only professors can delete listings", true)
	assert.Equal(t, http.StatusForbidden, forbidden.Status)

	notFound := NewNotFoundError("Listing not found", true, nil)
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, "NOT_FOUND", notFound.Code)

	code := "LISTING_MISSING"
	custom := NewNotFoundError("Listing not found", true, &code)
	assert.Equal(t, "LISTING_MISSING", custom.Code)

	internal := NewInternalServerError()
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.False(t, internal.Override)
}

func TestHTTPErrorIsMatchesOnType(t *testing.T) {
	err := NewBadRequestError("nope", false, nil, nil, nil)

	var target *HTTPError
	assert.True(t, errors.As(error(err), &target))
	assert.True(t, errors.Is(err, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))
}

func TestWithMessage(t *testing.T) {
	base := NewBadRequestError("original", true, nil, nil, nil)
	copied := base.WithMessage("replaced")

	assert.Equal(t, "replaced", copied.Message)
	assert.Equal(t, "original", base.Message)
	assert.Equal(t, base.Code, copied.Code)
	assert.Equal(t, base.Status, copied.Status)
}
