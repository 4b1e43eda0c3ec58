package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Showmick119/researchify-backend/internal/config"
	"github.com/Showmick119/researchify-backend/internal/docstore"
	"github.com/Showmick119/researchify-backend/internal/handler"
	"github.com/Showmick119/researchify-backend/internal/middleware"
	"github.com/Showmick119/researchify-backend/internal/repository"
	"github.com/Showmick119/researchify-backend/internal/router"
	"github.com/Showmick119/researchify-backend/internal/server"
	"github.com/Showmick119/researchify-backend/internal/service"
	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes -----------------------------------------------------------------

type fakeIdentity struct {
	uid string
}

func (f *fakeIdentity) CreateAccount(ctx context.Context, email, password string) (string, error) {
	return f.uid, nil
}

type fakeUserStore struct {
	users map[string]repository.User
}

func (f *fakeUserStore) Create(ctx context.Context, id string, u repository.User) error {
	u.ID = id
	f.users[id] = u
	return nil
}

func (f *fakeUserStore) Get(ctx context.Context, id string) (repository.User, error) {
	u, ok := f.users[id]
	if !ok {
		return repository.User{}, docstore.ErrNotFound
	}
	return u, nil
}

type fakeListingStore struct {
	listings map[string]repository.Listing
	nextID   int
}

func (f *fakeListingStore) Create(ctx context.Context, l repository.Listing) (string, error) {
	f.nextID++
	id := string(rune('a' + f.nextID - 1))
	l.ID = id
	f.listings[id] = l
	return id, nil
}

func (f *fakeListingStore) GetAll(ctx context.Context) ([]repository.Listing, error) {
	out := make([]repository.Listing, 0, len(f.listings))
	for _, l := range f.listings {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeListingStore) Get(ctx context.Context, id string) (repository.Listing, error) {
	l, ok := f.listings[id]
	if !ok {
		return repository.Listing{}, docstore.ErrNotFound
	}
	return l, nil
}

func (f *fakeListingStore) Update(ctx context.Context, id string, fields map[string]any) error {
	if _, ok := f.listings[id]; !ok {
		return docstore.ErrNotFound
	}
	l := f.listings[id]
	if title, ok := fields["title"].(string); ok {
		l.Title = title
	}
	if description, ok := fields["description"].(string); ok {
		l.Description = description
	}
	f.listings[id] = l
	return nil
}

func (f *fakeListingStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.listings[id]; !ok {
		return docstore.ErrNotFound
	}
	delete(f.listings, id)
	return nil
}

type fakeApplicationStore struct {
	applications map[string]repository.Application
	nextID       int
}

func (f *fakeApplicationStore) Create(ctx context.Context, a repository.Application) (string, error) {
	f.nextID++
	id := string(rune('a' + f.nextID - 1))
	a.ID = id
	f.applications[id] = a
	return id, nil
}

func (f *fakeApplicationStore) ListByListing(ctx context.Context, listingID string) ([]repository.Application, error) {
	out := make([]repository.Application, 0)
	for _, a := range f.applications {
		if a.ListingID == listingID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApplicationStore) ListByStudent(ctx context.Context, studentID string) ([]repository.Application, error) {
	out := make([]repository.Application, 0)
	for _, a := range f.applications {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApplicationStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.applications[id]; !ok {
		return docstore.ErrNotFound
	}
	delete(f.applications, id)
	return nil
}

// --- test server -------------------------------------------------------------

type testEnv struct {
	echo         *echo.Echo
	users        *fakeUserStore
	listings     *fakeListingStore
	applications *fakeApplicationStore
}

// newTestEnv wires the real router, middleware chain, and handler
// pipeline over fake stores and a fake identity provider.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := zerolog.Nop()
	srv := &server.Server{
		Config: &config.Config{},
		Logger: &logger,
	}

	users := &fakeUserStore{users: make(map[string]repository.User)}
	listings := &fakeListingStore{listings: make(map[string]repository.Listing)}
	applications := &fakeApplicationStore{applications: make(map[string]repository.Application)}

	services := &service.Services{
		Auth:         service.NewAuthService(&logger, &fakeIdentity{uid: "user_test1"}, users, nil),
		Listings:     service.NewListingService(&logger, listings, users),
		Applications: service.NewApplicationService(&logger, applications, nil),
	}

	handlers := &handler.Handlers{
		Auth:         handler.NewAuthHandler(srv, services.Auth),
		Listings:     handler.NewListingHandler(srv, services.Listings),
		Applications: handler.NewApplicationHandler(srv, services.Applications),
		Health:       handler.NewHealthHandler(srv),
		OpenAPI:      handler.NewOpenAPIHandler(srv),
	}

	e := echo.New()
	router.RegisterRoutes(e, handlers, middleware.NewMiddlewares(srv))

	return &testEnv{echo: e, users: users, listings: listings, applications: applications}
}

func (env *testEnv) request(t *testing.T, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// --- tests -------------------------------------------------------------------

func TestSignupEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/signup",
		`{"email":"ada@example.edu","password":"pw123456","name":"Ada","role":"student","research_interests":["ml"]}`, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "User registered successfully", body["message"])
	assert.Equal(t, "user_test1", body["uid"])

	// The profile is stored under the identity provider's id.
	_, ok := env.users.users["user_test1"]
	assert.True(t, ok)
}

func TestSignupMissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/signup", `{"email":"ada@example.edu"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestListingLifecycle(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/listings",
		`{"title":"AI Research","description":"desc","professor_id":"p1","eligibility":["senior"],"tags":["ml"]}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "Research listing created", body["message"])
	listingID, ok := body["listing_id"].(string)
	require.True(t, ok)

	rec = env.request(t, http.MethodGet, "/listings/"+listingID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, listingID, body["id"])
	assert.Equal(t, "AI Research", body["title"])

	rec = env.request(t, http.MethodPatch, "/listings/"+listingID, `{"title":"ML Research"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Listing updated successfully", decodeBody(t, rec)["message"])
	assert.Equal(t, "ML Research", env.listings.listings[listingID].Title)

	rec = env.request(t, http.MethodGet, "/listings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetListingNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/listings/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Listing not found", decodeBody(t, rec)["message"])
}

func TestUpdateListingNullFieldsRejected(t *testing.T) {
	env := newTestEnv(t)

	id, err := env.listings.Create(context.Background(), repository.Listing{Title: "t", Description: "d", ProfessorID: "p1"})
	require.NoError(t, err)

	// Null values count as "not provided".
	rec := env.request(t, http.MethodPatch, "/listings/"+id, `{"title":null,"description":null}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No valid fields provided for update", decodeBody(t, rec)["message"])
}

func TestUpdateListingEmptyBodyAfterPriorUpdate(t *testing.T) {
	env := newTestEnv(t)

	first, err := env.listings.Create(context.Background(), repository.Listing{Title: "t1", Description: "d1", ProfessorID: "p1"})
	require.NoError(t, err)
	second, err := env.listings.Create(context.Background(), repository.Listing{Title: "t2", Description: "d2", ProfessorID: "p1"})
	require.NoError(t, err)

	rec := env.request(t, http.MethodPatch, "/listings/"+first, `{"title":"changed"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// A later empty update must not see fields bound by the earlier
	// request on the same route.
	rec = env.request(t, http.MethodPatch, "/listings/"+second, `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, "No valid fields provided for update", decodeBody(t, rec)["message"])
	assert.Equal(t, "t2", env.listings.listings[second].Title)
}

func TestDeleteListingAuthorization(t *testing.T) {
	env := newTestEnv(t)

	id, err := env.listings.Create(context.Background(), repository.Listing{Title: "t", Description: "d", ProfessorID: "p1"})
	require.NoError(t, err)

	require.NoError(t, env.users.Create(context.Background(), "p1", repository.User{Name: "Prof", Role: "professor"}))
	require.NoError(t, env.users.Create(context.Background(), "s1", repository.User{Name: "Student", Role: "student"}))

	// Missing header.
	rec := env.request(t, http.MethodDelete, "/listings/"+id, "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "User ID missing in request headers", decodeBody(t, rec)["message"])

	// Unknown caller.
	rec = env.request(t, http.MethodDelete, "/listings/"+id, "", map[string]string{"user_id": "ghost"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeBody(t, rec)["message"])

	// Wrong role.
	rec = env.request(t, http.MethodDelete, "/listings/"+id, "", map[string]string{"user_id": "s1"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Only professors can delete listings", decodeBody(t, rec)["message"])

	// Missing listing.
	rec = env.request(t, http.MethodDelete, "/listings/missing", "", map[string]string{"user_id": "p1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Listing not found", decodeBody(t, rec)["message"])

	// Professor deletes.
	rec = env.request(t, http.MethodDelete, "/listings/"+id, "", map[string]string{"user_id": "p1"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Listing deleted successfully", decodeBody(t, rec)["message"])
	assert.Empty(t, env.listings.listings)
}

func TestApplicationEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/applications",
		`{"student_id":"s1","listing_id":"l1","student_name":"Ada","student_email":"ada@example.edu","statement_of_purpose":"sop"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "Application submitted successfully", body["message"])
	applicationID, ok := body["application_id"].(string)
	require.True(t, ok)

	rec = env.request(t, http.MethodPost, "/applications",
		`{"student_id":"s2","listing_id":"l2","student_name":"Bob","student_email":"bob@example.edu","statement_of_purpose":"sop"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodGet, "/applications/l1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var forListing []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &forListing))
	require.Len(t, forListing, 1)
	assert.Equal(t, "s1", forListing[0]["student_id"])

	rec = env.request(t, http.MethodGet, "/applications/student/s2", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var forStudent []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &forStudent))
	require.Len(t, forStudent, 1)
	assert.Equal(t, "l2", forStudent[0]["listing_id"])

	rec = env.request(t, http.MethodDelete, "/applications/"+applicationID, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Application deleted successfully", decodeBody(t, rec)["message"])

	rec = env.request(t, http.MethodDelete, "/applications/"+applicationID, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Application not found", decodeBody(t, rec)["message"])
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeBody(t, rec)["message"])
}
