package companionsdk

import (
	"context"
	"sync"
	"time"
)

// ──────────────────────────────────────────────
// Relationship Store — role and metadata lookup contract
// ──────────────────────────────────────────────

// UserPreferences carries the user-side signals the pipeline adapts to.
type UserPreferences struct {
	Locale    string   `json:"locale,omitempty"`
	Nickname  string   `json:"nickname,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

// Relationship is the metadata the pipeline needs about one user↔companion
// pairing. The surrounding CRUD service owns the full record.
type Relationship struct {
	ID                string          `json:"id"`
	Archetype         RoleArchetype   `json:"archetype"`
	CreatedAt         time.Time       `json:"created_at"`
	LastInteractionAt time.Time       `json:"last_interaction_at,omitempty"`
	Preferences       UserPreferences `json:"preferences"`
}

// RelationshipStore resolves relationship IDs. A missing relationship is a
// fatal lookup failure for the request.
type RelationshipStore interface {
	GetRelationship(ctx context.Context, id string) (*Relationship, error)
}

// StaticRelationshipStore is a fixed in-memory RelationshipStore for
// development and tests.
type StaticRelationshipStore struct {
	mu   sync.RWMutex
	rels map[string]*Relationship
}

// NewStaticRelationshipStore creates a store seeded with the given relationships.
func NewStaticRelationshipStore(rels ...*Relationship) *StaticRelationshipStore {
	s := &StaticRelationshipStore{rels: make(map[string]*Relationship, len(rels))}
	for _, r := range rels {
		s.rels[r.ID] = r
	}
	return s
}

// Put adds or replaces a relationship.
func (s *StaticRelationshipStore) Put(r *Relationship) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rels[r.ID] = r
}

func (s *StaticRelationshipStore) GetRelationship(_ context.Context, id string) (*Relationship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rels[id]
	if !ok {
		return nil, ErrRelationshipNotFound
	}
	copied := *r
	return &copied, nil
}
