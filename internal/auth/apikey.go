// internal/auth/apikey.go
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"crewboard/internal/config"
	"crewboard/internal/models"
)

type keyEntry struct {
	orgID uuid.UUID
	phc   string
}

// Keyring verifies bearer API keys against configured argon2id hashes.
// Keys that verified once are remembered by digest so argon2 runs once per key.
type Keyring struct {
	entries []keyEntry

	mu       sync.RWMutex
	verified map[string]uuid.UUID
}

func NewKeyring(keys []config.APIKey) (*Keyring, error) {
	kr := &Keyring{verified: make(map[string]uuid.UUID)}
	for i, k := range keys {
		org, err := uuid.Parse(k.OrgID)
		if err != nil {
			return nil, fmt.Errorf("api key %d: bad org_id: %w", i, err)
		}
		if _, _, _, _, _, ok := phcParse(k.Hash); !ok {
			return nil, fmt.Errorf("api key %d: hash is not an argon2id PHC string", i)
		}
		kr.entries = append(kr.entries, keyEntry{orgID: org, phc: k.Hash})
	}
	return kr, nil
}

func digest(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// Lookup returns the org a key belongs to.
func (k *Keyring) Lookup(key string) (uuid.UUID, error) {
	if key == "" {
		return uuid.Nil, models.ErrInvalidAPIKey
	}
	d := digest(key)
	k.mu.RLock()
	org, ok := k.verified[d]
	k.mu.RUnlock()
	if ok {
		return org, nil
	}
	for _, e := range k.entries {
		if VerifyKey(key, e.phc) {
			k.mu.Lock()
			k.verified[d] = e.orgID
			k.mu.Unlock()
			return e.orgID, nil
		}
	}
	return uuid.Nil, models.ErrInvalidAPIKey
}

// Known reports the org of a key that already passed Lookup. It never runs
// argon2, so it is safe to call before the caller is authenticated.
func (k *Keyring) Known(key string) (uuid.UUID, bool) {
	if k == nil || key == "" {
		return uuid.Nil, false
	}
	k.mu.RLock()
	org, ok := k.verified[digest(key)]
	k.mu.RUnlock()
	return org, ok
}

// BearerToken extracts the token from an "Authorization: Bearer ..." header.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}
