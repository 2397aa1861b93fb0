package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/models"
)

// ─────────────────────────────────────────────
// In-memory circle repository
// ─────────────────────────────────────────────

// memCircleRepo keeps circles in memory and enforces the same invariants as
// the Postgres schema: one default circle per owner and set membership.
type memCircleRepo struct {
	mu      sync.Mutex
	seq     int
	circles map[string]models.Circle

	addCalls    int
	removeCalls int

	// addContactErr, when set, is returned by AddContact for the given
	// circle id.
	addContactErr map[string]error
}

func newMemCircleRepo() *memCircleRepo {
	return &memCircleRepo{
		circles:       make(map[string]models.Circle),
		addContactErr: make(map[string]error),
	}
}

func (r *memCircleRepo) CreateCircle(_ context.Context, circle models.Circle) (models.Circle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if circle.IsDefault() {
		for _, c := range r.circles {
			if c.OwnerID == circle.OwnerID && c.IsDefault() {
				return models.Circle{}, store.ErrDefaultCircleExists
			}
		}
	}

	r.seq++
	circle.ID = fmt.Sprintf("circle-%d", r.seq)
	circle.Contacts = append([]string{}, circle.Contacts...)
	circle.AllowedInfo = models.AllowedInfo{}.Merge(circle.AllowedInfo)
	r.circles[circle.ID] = circle
	return r.copyOf(circle), nil
}

func (r *memCircleRepo) FindCircleByID(_ context.Context, circleID string) (models.Circle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.circles[circleID]
	if !ok {
		return models.Circle{}, store.ErrCircleNotFound
	}
	return r.copyOf(c), nil
}

func (r *memCircleRepo) FindDefaultCircle(_ context.Context, ownerID string) (models.Circle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.circles {
		if c.OwnerID == ownerID && c.IsDefault() {
			return r.copyOf(c), nil
		}
	}
	return models.Circle{}, store.ErrDefaultCircleNotFound
}

func (r *memCircleRepo) FindCirclesWithContact(_ context.Context, ownerID, contactID string) ([]models.Circle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var found []models.Circle
	for _, c := range r.circles {
		if c.OwnerID == ownerID && c.HasContact(contactID) {
			found = append(found, r.copyOf(c))
		}
	}
	return found, nil
}

func (r *memCircleRepo) AddContact(_ context.Context, circleID, contactID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.addCalls++
	if err := r.addContactErr[circleID]; err != nil {
		return err
	}

	c, ok := r.circles[circleID]
	if !ok {
		return store.ErrCircleNotFound
	}
	if !c.HasContact(contactID) {
		c.Contacts = append(c.Contacts, contactID)
		r.circles[circleID] = c
	}
	return nil
}

func (r *memCircleRepo) RemoveContact(_ context.Context, circleID, contactID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.removeCalls++
	c, ok := r.circles[circleID]
	if !ok {
		return store.ErrCircleNotFound
	}
	kept := c.Contacts[:0:0]
	for _, id := range c.Contacts {
		if id != contactID {
			kept = append(kept, id)
		}
	}
	c.Contacts = kept
	r.circles[circleID] = c
	return nil
}

func (r *memCircleRepo) MergeAllowedInfo(_ context.Context, circleID string, partial models.AllowedInfo) (models.AllowedInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.circles[circleID]
	if !ok {
		return nil, store.ErrCircleNotFound
	}
	c.AllowedInfo = c.AllowedInfo.Merge(partial)
	r.circles[circleID] = c
	return c.AllowedInfo.Merge(nil), nil
}

func (r *memCircleRepo) UpdateCircleName(_ context.Context, circleID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.circles[circleID]
	if !ok {
		return store.ErrCircleNotFound
	}
	c.Name = name
	r.circles[circleID] = c
	return nil
}

func (r *memCircleRepo) DeleteCircle(_ context.Context, circleID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.circles[circleID]; !ok {
		return store.ErrCircleNotFound
	}
	delete(r.circles, circleID)
	return nil
}

// stored returns the persisted state of a circle, bypassing the service.
func (r *memCircleRepo) stored(circleID string) models.Circle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.copyOf(r.circles[circleID])
}

func (r *memCircleRepo) defaultsOf(ownerID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, c := range r.circles {
		if c.OwnerID == ownerID && c.IsDefault() {
			n++
		}
	}
	return n
}

func (r *memCircleRepo) copyOf(c models.Circle) models.Circle {
	c.Contacts = append([]string{}, c.Contacts...)
	c.AllowedInfo = c.AllowedInfo.Merge(nil)
	return c
}

// ─────────────────────────────────────────────
// In-memory handshake repository
// ─────────────────────────────────────────────

// memHandshakeRepo hides handshakes past their expiry, the way both real
// stores do.
type memHandshakeRepo struct {
	mu         sync.Mutex
	seq        int
	handshakes map[string]models.Handshake
	now        func() time.Time
}

func newMemHandshakeRepo(now func() time.Time) *memHandshakeRepo {
	return &memHandshakeRepo{
		handshakes: make(map[string]models.Handshake),
		now:        now,
	}
}

func (r *memHandshakeRepo) CreateHandshake(_ context.Context, h models.Handshake) (models.Handshake, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	h.ID = fmt.Sprintf("handshake-%d", r.seq)
	r.handshakes[h.ID] = h
	return h, nil
}

func (r *memHandshakeRepo) FindHandshakeByID(_ context.Context, id string) (models.Handshake, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.handshakes[id]
	if !ok || !h.ExpiresAt.After(r.now()) {
		return models.Handshake{}, store.ErrHandshakeNotFound
	}
	return h, nil
}

func (r *memHandshakeRepo) DeleteHandshake(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.handshakes, id)
	return nil
}

func (r *memHandshakeRepo) DeleteExpiredHandshakes(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, h := range r.handshakes {
		if !h.ExpiresAt.After(r.now()) {
			delete(r.handshakes, id)
			n++
		}
	}
	return n, nil
}

func (r *memHandshakeRepo) exists(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.handshakes[id]
	return ok
}

// ─────────────────────────────────────────────
// Validator
// ─────────────────────────────────────────────

type mockValidator struct {
	validateFn func(ctx context.Context, i any, fields ...string) error
}

func (m *mockValidator) Validate(ctx context.Context, i any, fields ...string) error {
	if m.validateFn != nil {
		return m.validateFn(ctx, i, fields...)
	}
	return nil
}
