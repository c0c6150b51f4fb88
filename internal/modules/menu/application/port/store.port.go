package port

import (
	"context"
	"errors"
)

// ErrNotFound is returned by DocumentStore.Load when the key has never been saved.
var ErrNotFound = errors.New("document not found")

// Logical document keys. Each holds one whole collection serialised as JSON.
const (
	KeyLanguage    = "language"
	KeyCategories  = "categories"
	KeyProducts    = "products"
	KeyConfig      = "config"
	KeyUsers       = "users"
	KeyCurrentUser = "current-user"
)

// DocumentStore persists whole-document blobs by key. Last write wins.
type DocumentStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	// Remove deletes the key; removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
