package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Showmick119/researchify-backend/internal/docstore"
	"github.com/Showmick119/researchify-backend/internal/errs"
	"github.com/Showmick119/researchify-backend/internal/lib/utils"
	"github.com/Showmick119/researchify-backend/internal/repository"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes -----------------------------------------------------------------

type fakeIdentity struct {
	uid string
	err error

	gotEmail    string
	gotPassword string
}

func (f *fakeIdentity) CreateAccount(ctx context.Context, email, password string) (string, error) {
	f.gotEmail = email
	f.gotPassword = password
	if f.err != nil {
		return "", f.err
	}
	return f.uid, nil
}

type fakeUserStore struct {
	users     map[string]repository.User
	createErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]repository.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, id string, u repository.User) error {
	if f.createErr != nil {
		return f.createErr
	}
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

	createErr error
	getErr    error
	updateErr error
	deleteErr error

	lastUpdateFields map[string]any
}

func newFakeListingStore() *fakeListingStore {
	return &fakeListingStore{listings: make(map[string]repository.Listing)}
}

func (f *fakeListingStore) Create(ctx context.Context, l repository.Listing) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	id := string(rune('a' + f.nextID - 1))
	l.ID = id
	f.listings[id] = l
	return id, nil
}

func (f *fakeListingStore) GetAll(ctx context.Context) ([]repository.Listing, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	out := make([]repository.Listing, 0, len(f.listings))
	for _, l := range f.listings {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeListingStore) Get(ctx context.Context, id string) (repository.Listing, error) {
	if f.getErr != nil {
		return repository.Listing{}, f.getErr
	}
	l, ok := f.listings[id]
	if !ok {
		return repository.Listing{}, docstore.ErrNotFound
	}
	return l, nil
}

func (f *fakeListingStore) Update(ctx context.Context, id string, fields map[string]any) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.listings[id]; !ok {
		return docstore.ErrNotFound
	}
	f.lastUpdateFields = fields
	return nil
}

func (f *fakeListingStore) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.listings[id]; !ok {
		return docstore.ErrNotFound
	}
	delete(f.listings, id)
	return nil
}

type fakeApplicationStore struct {
	applications map[string]repository.Application
	nextID       int

	createErr error
	listErr   error
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{applications: make(map[string]repository.Application)}
}

func (f *fakeApplicationStore) Create(ctx context.Context, a repository.Application) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	id := string(rune('a' + f.nextID - 1))
	a.ID = id
	f.applications[id] = a
	return id, nil
}

func (f *fakeApplicationStore) ListByListing(ctx context.Context, listingID string) ([]repository.Application, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]repository.Application, 0)
	for _, a := range f.applications {
		if a.ListingID == listingID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApplicationStore) ListByStudent(ctx context.Context, studentID string) ([]repository.Application, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
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

func testLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func requireHTTPStatus(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, status, httpErr.Status)
	return httpErr
}

// --- auth ------------------------------------------------------------------

func TestSignupReturnsProviderID(t *testing.T) {
	provider := &fakeIdentity{uid: "user_abc123"}
	users := newFakeUserStore()
	svc := NewAuthService(testLogger(), provider, users, nil)

	uid, err := svc.Signup(context.Background(), SignupParams{
		Email:    "ada@example.edu",
		Password: "correct-horse",
		Name:     "Ada",
		Role:     "student",
	})
	require.NoError(t, err)
	assert.Equal(t, "user_abc123", uid)

	// The profile document is stored under the provider's id.
	stored, err := users.Get(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, "Ada", stored.Name)
	assert.Equal(t, "student", stored.Role)

	// Credentials went to the provider, not the store.
	assert.Equal(t, "ada@example.edu", provider.gotEmail)
	assert.Equal(t, "correct-horse", provider.gotPassword)
}

func TestSignupProviderFailure(t *testing.T) {
	provider := &fakeIdentity{err: errors.New("email address is taken")}
	svc := NewAuthService(testLogger(), provider, newFakeUserStore(), nil)

	_, err := svc.Signup(context.Background(), SignupParams{Email: "dup@example.edu", Password: "pw", Name: "Dup", Role: "student"})
	requireHTTPStatus(t, err, http.StatusBadRequest)
}

func TestSignupProfileWriteFailure(t *testing.T) {
	provider := &fakeIdentity{uid: "user_orphan"}
	users := newFakeUserStore()
	users.createErr = errors.New("store unavailable")
	svc := NewAuthService(testLogger(), provider, users, nil)

	_, err := svc.Signup(context.Background(), SignupParams{Email: "x@example.edu", Password: "pw", Name: "X", Role: "student"})
	requireHTTPStatus(t, err, http.StatusBadRequest)
}

// --- listings ----------------------------------------------------------------

func TestGetListingNotFound(t *testing.T) {
	svc := NewListingService(testLogger(), newFakeListingStore(), newFakeUserStore())

	_, err := svc.Get(context.Background(), "missing")
	httpErr := requireHTTPStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "Listing not found", httpErr.Message)
}

func TestUpdateListingFiltersNilFields(t *testing.T) {
	listings := newFakeListingStore()
	id, err := listings.Create(context.Background(), repository.Listing{
		Title:       "AI Research",
		Description: "old",
		ProfessorID: "p1",
	})
	require.NoError(t, err)

	svc := NewListingService(testLogger(), listings, newFakeUserStore())

	err = svc.Update(context.Background(), id, ListingUpdate{Title: utils.Ptr("ML Research")})
	require.NoError(t, err)

	// Only the provided field reaches the store.
	assert.Equal(t, map[string]any{"title": "ML Research"}, listings.lastUpdateFields)
}

func TestUpdateListingNoValidFields(t *testing.T) {
	listings := newFakeListingStore()
	id, err := listings.Create(context.Background(), repository.Listing{Title: "t", Description: "d", ProfessorID: "p1"})
	require.NoError(t, err)

	svc := NewListingService(testLogger(), listings, newFakeUserStore())

	err = svc.Update(context.Background(), id, ListingUpdate{})
	httpErr := requireHTTPStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, "No valid fields provided for update", httpErr.Message)
}

func TestUpdateListingNotFound(t *testing.T) {
	svc := NewListingService(testLogger(), newFakeListingStore(), newFakeUserStore())

	err := svc.Update(context.Background(), "missing", ListingUpdate{Title: utils.Ptr("new")})
	requireHTTPStatus(t, err, http.StatusNotFound)
}

func TestUpdateListingEmptySliceIsAField(t *testing.T) {
	listings := newFakeListingStore()
	id, err := listings.Create(context.Background(), repository.Listing{Title: "t", Description: "d", ProfessorID: "p1", Tags: []string{"ml"}})
	require.NoError(t, err)

	svc := NewListingService(testLogger(), listings, newFakeUserStore())

	// An explicitly provided empty list clears the field; it is not
	// treated as "omitted".
	err = svc.Update(context.Background(), id, ListingUpdate{Tags: utils.Ptr([]string{})})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"tags": []string{}}, listings.lastUpdateFields)
}

func TestDeleteListing(t *testing.T) {
	setup := func(t *testing.T) (*ListingService, *fakeListingStore, string) {
		t.Helper()

		listings := newFakeListingStore()
		id, err := listings.Create(context.Background(), repository.Listing{Title: "t", Description: "d", ProfessorID: "p1"})
		require.NoError(t, err)

		users := newFakeUserStore()
		require.NoError(t, users.Create(context.Background(), "p1", repository.User{Name: "Prof", Role: "professor"}))
		require.NoError(t, users.Create(context.Background(), "s1", repository.User{Name: "Student", Role: "student"}))

		return NewListingService(testLogger(), listings, users), listings, id
	}

	t.Run("missing caller id", func(t *testing.T) {
		svc, _, id := setup(t)

		err := svc.Delete(context.Background(), id, "")
		httpErr := requireHTTPStatus(t, err, http.StatusUnauthorized)
		assert.Equal(t, "User ID missing in request headers", httpErr.Message)
	})

	t.Run("unknown caller", func(t *testing.T) {
		svc, _, id := setup(t)

		err := svc.Delete(context.Background(), id, "ghost")
		httpErr := requireHTTPStatus(t, err, http.StatusNotFound)
		assert.Equal(t, "User not found", httpErr.Message)
	})

	t.Run("caller is not a professor", func(t *testing.T) {
		svc, _, id := setup(t)

		err := svc.Delete(context.Background(), id, "s1")
		httpErr := requireHTTPStatus(t, err, http.StatusForbidden)
		assert.Equal(t, "Only professors can delete listings", httpErr.Message)
	})

	t.Run("listing does not exist", func(t *testing.T) {
		svc, _, _ := setup(t)

		err := svc.Delete(context.Background(), "missing", "p1")
		httpErr := requireHTTPStatus(t, err, http.StatusNotFound)
		assert.Equal(t, "Listing not found", httpErr.Message)
	})

	t.Run("professor deletes listing", func(t *testing.T) {
		svc, listings, id := setup(t)

		require.NoError(t, svc.Delete(context.Background(), id, "p1"))
		assert.Empty(t, listings.listings)
	})
}

// --- applications ------------------------------------------------------------

func TestListApplicationsFiltersByListing(t *testing.T) {
	applications := newFakeApplicationStore()
	svc := NewApplicationService(testLogger(), applications, nil)

	for _, a := range []repository.Application{
		{StudentID: "s1", ListingID: "l1", StudentName: "A", StudentEmail: "a@example.edu", StatementOfPurpose: "x"},
		{StudentID: "s2", ListingID: "l2", StudentName: "B", StudentEmail: "b@example.edu", StatementOfPurpose: "y"},
		{StudentID: "s3", ListingID: "l1", StudentName: "C", StudentEmail: "c@example.edu", StatementOfPurpose: "z"},
	} {
		_, err := svc.Submit(context.Background(), a)
		require.NoError(t, err)
	}

	got, err := svc.ListForListing(context.Background(), "l1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, a := range got {
		assert.Equal(t, "l1", a.ListingID)
	}

	got, err = svc.ListForListing(context.Background(), "l3")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListApplicationsForStudent(t *testing.T) {
	applications := newFakeApplicationStore()
	svc := NewApplicationService(testLogger(), applications, nil)

	// Duplicate applications from the same student are allowed.
	for i := 0; i < 2; i++ {
		_, err := svc.Submit(context.Background(), repository.Application{
			StudentID: "s1", ListingID: "l1", StudentName: "A", StudentEmail: "a@example.edu", StatementOfPurpose: "x",
		})
		require.NoError(t, err)
	}

	got, err := svc.ListForStudent(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDeleteApplication(t *testing.T) {
	applications := newFakeApplicationStore()
	svc := NewApplicationService(testLogger(), applications, nil)

	id, err := svc.Submit(context.Background(), repository.Application{
		StudentID: "s1", ListingID: "l1", StudentName: "A", StudentEmail: "a@example.edu", StatementOfPurpose: "x",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), id))

	err = svc.Delete(context.Background(), id)
	httpErr := requireHTTPStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "Application not found", httpErr.Message)
}

func TestSubmitApplicationStoreFailure(t *testing.T) {
	applications := newFakeApplicationStore()
	applications.createErr = errors.New("store unavailable")
	svc := NewApplicationService(testLogger(), applications, nil)

	_, err := svc.Submit(context.Background(), repository.Application{StudentID: "s1", ListingID: "l1"})
	requireHTTPStatus(t, err, http.StatusBadRequest)
}
