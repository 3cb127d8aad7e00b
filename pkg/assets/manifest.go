// Package assets resolves fingerprinted asset paths at render time.
//
// The build step writes a manifest.json mapping source names to their
// content-hashed outputs:
//
//	{
//	  "app.css": "app.3f8a91c2.css",
//	  "components/counter.js": "components/counter.b04d11ee.js"
//	}
//
// Components never hardcode hashed names; they resolve through a
// Resolver so cache-busting stays a build concern.
package assets

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Manifest maps source asset names to fingerprinted output names.
// Safe for concurrent use.
type Manifest struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{entries: map[string]string{}}
}

// Load reads a manifest.json written by the build step.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read manifest: %w", err)
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("assets: parse manifest %s: %w", path, err)
	}
	if entries == nil {
		entries = map[string]string{}
	}
	return &Manifest{entries: entries}, nil
}

// Save writes the manifest as JSON. Keys serialize sorted, so repeated
// builds with identical inputs produce identical bytes.
func (m *Manifest) Save(path string) error {
	m.mu.RLock()
	data, err := json.MarshalIndent(m.entries, "", "  ")
	m.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("assets: encode manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("assets: write manifest: %w", err)
	}
	return nil
}

// Resolve returns the fingerprinted name for a source asset, or the
// source itself when it was never fingerprinted.
func (m *Manifest) Resolve(source string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if resolved, ok := m.entries[source]; ok {
		return resolved
	}
	return source
}

// Has reports whether the manifest fingerprinted this source.
func (m *Manifest) Has(source string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[source]
	return ok
}

// Set records a source to output mapping. The builder calls this as it
// hashes each asset.
func (m *Manifest) Set(source, resolved string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[source] = resolved
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// All returns a copy of the entries.
func (m *Manifest) All() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}
