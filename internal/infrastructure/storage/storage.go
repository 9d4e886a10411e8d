// Package storage abstracts the object store that keeps uploaded files
// (profile photos, payment proofs). The production deployment points this
// at a CDN-backed provider; the bundled implementation writes to local disk
// and serves through the static file route.
package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Uploader stores and removes uploaded objects.
// Store returns the public URL of the stored object. Delete is best-effort:
// callers clear their local reference even when the remote delete fails.
type Uploader interface {
	Store(folder, name string, data []byte) (string, error)
	Delete(url string) error
}

// LocalStore keeps objects under a root directory and serves them under a
// URL prefix mapped by the HTTP server.
type LocalStore struct {
	root    string // filesystem directory objects live in
	baseURL string // public prefix, e.g. "/static/uploads"
}

// NewLocalStore creates a disk-backed Uploader.
func NewLocalStore(root, baseURL string) *LocalStore {
	return &LocalStore{
		root:    root,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Store writes the object under root/folder/name and returns its URL.
func (s *LocalStore) Store(folder, name string, data []byte) (string, error) {
	dir := filepath.Join(s.root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("writing upload: %w", err)
	}
	return s.baseURL + "/" + path.Join(folder, name), nil
}

// Delete removes the object behind a URL previously returned by Store.
// URLs outside this store's prefix are ignored.
func (s *LocalStore) Delete(url string) error {
	rel, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok {
		return nil
	}
	if err := os.Remove(filepath.Join(s.root, filepath.FromSlash(rel))); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing upload: %w", err)
	}
	return nil
}
