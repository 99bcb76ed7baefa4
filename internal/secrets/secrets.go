// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets reads credentials kept out of the config file. Each file in
// the secrets directory holds one value: the filename is the key and the
// trimmed contents are the value.
//
// Recognized keys: contact-email.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// KeyContactEmail names the file holding the address sent to NCBI as the
// email parameter when no contact is configured.
const KeyContactEmail = "contact-email"

// DefaultDir is the secrets directory relative to the working directory.
const DefaultDir = ".secrets"

// Store is a read-only set of secrets.
type Store map[string]string

// Get returns the value for key, or "" when it is not set.
func (s Store) Get(key string) string {
	return s[key]
}

// ContactEmail returns the contact-email secret.
func (s Store) ContactEmail() string {
	return s.Get(KeyContactEmail)
}

// Load reads all files in dir. A missing directory is not an error and
// yields an empty Store. Unreadable files are logged and skipped.
func Load(dir string, log *zap.Logger) (Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Store{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	store := make(Store)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn("could not read secret", zap.String("key", name), zap.Error(err))
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			store[name] = value
		}
	}

	return store, nil
}
