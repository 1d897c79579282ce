package security

import (
	"sync"

	"github.com/google/uuid"
)

// Denylist holds suspended orgs. Org routes for a denied org answer 403 even
// with a valid API key. The zero value is empty and ready to use.
type Denylist struct {
	mu   sync.RWMutex
	orgs map[uuid.UUID]struct{}
}

// NewDenylist parses org ids from config.
func NewDenylist(orgIDs []string) (*Denylist, error) {
	d := &Denylist{}
	for _, s := range orgIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		d.DenyOrg(id)
	}
	return d, nil
}

func (d *Denylist) DenyOrg(id uuid.UUID) {
	d.mu.Lock()
	if d.orgs == nil {
		d.orgs = make(map[uuid.UUID]struct{})
	}
	d.orgs[id] = struct{}{}
	d.mu.Unlock()
}

func (d *Denylist) allowOrg(id uuid.UUID) { d.mu.Lock(); delete(d.orgs, id); d.mu.Unlock() }

// IsOrgDenied is safe on a nil Denylist.
func (d *Denylist) IsOrgDenied(id uuid.UUID) bool {
	if d == nil {
		return false
	}
	d.mu.RLock()
	_, ok := d.orgs[id]
	d.mu.RUnlock()
	return ok
}
