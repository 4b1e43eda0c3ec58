// Package docstore provides the document-store layer over PostgreSQL.
//
// Each collection is a table of (id, document) rows where document is
// a schema-less JSONB field map. The store offers the operations the
// API layer needs and nothing more: create (with generated or
// caller-supplied id), point read, full listing, equality-filtered
// query, merge-update, and delete. There is no referential integrity
// between collections.
package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/Showmick119/researchify-backend/internal/database"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Collection names. The set is closed; queries interpolate the table
// name, so anything outside this list is rejected.
const (
	CollectionUsers        = "users"
	CollectionListings     = "research_listings"
	CollectionApplications = "applications"
)

var collections = map[string]bool{
	CollectionUsers:        true,
	CollectionListings:     true,
	CollectionApplications: true,
}

// ErrNotFound is returned when a document id does not exist in the
// collection.
var ErrNotFound = errors.New("docstore: document not found")

// Document is a stored document annotated with its identifier.
type Document struct {
	ID     string
	Fields map[string]any
}

// Store executes document operations against the database pool.
type Store struct {
	db  *database.Database
	log *zerolog.Logger
}

// New creates a Store over the given database.
func New(db *database.Database, logger *zerolog.Logger) *Store {
	return &Store{db: db, log: logger}
}

func checkCollection(collection string) error {
	if !collections[collection] {
		return fmt.Errorf("docstore: unknown collection %q", collection)
	}
	return nil
}

// Add inserts a new document with a generated identifier and returns
// that identifier.
func (s *Store) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	id := uuid.New().String()
	if err := s.Set(ctx, collection, id, fields); err != nil {
		return "", err
	}
	return id, nil
}

// Set writes a document under a caller-supplied identifier, replacing
// any existing document with that id.
func (s *Store) Set(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := checkCollection(collection); err != nil {
		return err
	}

	doc, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("docstore: encoding document: %w", err)
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (id, document) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document`,
		collection,
	)

	if _, err := s.db.Pool.Exec(ctx, query, id, doc); err != nil {
		return err
	}

	s.log.Debug().Str("collection", collection).Str("id", id).Msg("document written")

	return nil
}

// Get returns the document with the given identifier, or ErrNotFound.
func (s *Store) Get(ctx context.Context, collection, id string) (Document, error) {
	if err := checkCollection(collection); err != nil {
		return Document{}, err
	}

	query := fmt.Sprintf(`SELECT document FROM %s WHERE id = $1`, collection)

	var raw []byte
	if err := s.db.Pool.QueryRow(ctx, query, id).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}

	return decodeDocument(id, raw)
}

// List returns every document in the collection, in store order.
func (s *Store) List(ctx context.Context, collection string) ([]Document, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT id, document FROM %s`, collection)

	return s.queryDocuments(ctx, query)
}

// Query returns every document whose field equals value (text
// comparison on the top-level field, exact match only).
func (s *Store) Query(ctx context.Context, collection, field, value string) ([]Document, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT id, document FROM %s WHERE document->>$1 = $2`, collection)

	return s.queryDocuments(ctx, query, field, value)
}

// Update merge-updates the document: supplied fields overwrite their
// previous values, all other fields are untouched. Returns ErrNotFound
// when the id does not exist.
func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := checkCollection(collection); err != nil {
		return err
	}

	doc, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("docstore: encoding update: %w", err)
	}

	query := fmt.Sprintf(`UPDATE %s SET document = document || $2::jsonb WHERE id = $1`, collection)

	tag, err := s.db.Pool.Exec(ctx, query, id, doc)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	s.log.Debug().Str("collection", collection).Str("id", id).Msg("document updated")

	return nil
}

// Delete removes the document, or returns ErrNotFound when absent.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	if err := checkCollection(collection); err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, collection)

	tag, err := s.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	s.log.Debug().Str("collection", collection).Str("id", id).Msg("document deleted")

	return nil
}

func (s *Store) queryDocuments(ctx context.Context, query string, args ...any) ([]Document, error) {
	rows, err := s.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}

		doc, err := decodeDocument(id, raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

func decodeDocument(id string, raw []byte) (Document, error) {
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Document{}, fmt.Errorf("docstore: decoding document %s: %w", id, err)
	}
	return Document{ID: id, Fields: fields}, nil
}

// Decode converts a document's untyped field map into a typed record.
// This is the single point where schema-less store data meets the
// application's types.
func Decode(fields map[string]any, dst any) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
