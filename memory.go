package companionsdk

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ──────────────────────────────────────────────
// Conversation Memory — pluggable message history backend
// ──────────────────────────────────────────────

// StoredMessage is one persisted conversation message.
type StoredMessage struct {
	ID             string                 `json:"id"`
	RelationshipID string                 `json:"relationship_id"`
	SenderID       string                 `json:"sender_id"`
	Content        string                 `json:"content"`
	Tone           EmotionalTone          `json:"tone"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
	Important      bool                   `json:"important,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

// MemoryContext is the read snapshot the pipeline consumes: the recent
// message window, oldest first, plus the last interaction timestamp.
type MemoryContext struct {
	RecentMessages  []StoredMessage `json:"recent_messages"`
	LastInteraction time.Time       `json:"last_interaction"`
}

// RecentTones extracts the ordered emotion labels from the window, skipping
// messages with no tone. This feeds the mood model's history input.
func (m *MemoryContext) RecentTones() []EmotionalTone {
	var tones []EmotionalTone
	for _, msg := range m.RecentMessages {
		if msg.Tone != "" {
			tones = append(tones, msg.Tone)
		}
	}
	return tones
}

// ConversationMemory is the storage contract the pipeline depends on.
// Implementations must be safe for concurrent use.
type ConversationMemory interface {
	// GetContext returns the recent message window for a relationship.
	// An unknown relationship returns an empty context, not an error.
	GetContext(ctx context.Context, relationshipID string) (*MemoryContext, error)

	// StoreMessage appends a message and returns its assigned ID.
	StoreMessage(ctx context.Context, msg StoredMessage) (string, error)

	// Search returns up to limit messages matching the query, best first.
	Search(ctx context.Context, relationshipID, query string, limit int) ([]StoredMessage, error)

	// MarkImportant flags a message so retention policies keep it.
	MarkImportant(ctx context.Context, messageID string) error
}

// InMemoryConversationMemory is a thread-safe in-memory backend for
// development and tests. Data is lost on restart; use store.RedisMemory in
// production.
type InMemoryConversationMemory struct {
	mu     sync.RWMutex
	byRel  map[string][]*StoredMessage
	byID   map[string]*StoredMessage
	window int
}

// NewInMemoryConversationMemory creates an in-memory backend keeping up to
// window messages per relationship (0 means the default of 50).
func NewInMemoryConversationMemory(window int) *InMemoryConversationMemory {
	if window <= 0 {
		window = 50
	}
	return &InMemoryConversationMemory{
		byRel:  make(map[string][]*StoredMessage),
		byID:   make(map[string]*StoredMessage),
		window: window,
	}
}

func (m *InMemoryConversationMemory) GetContext(_ context.Context, relationshipID string) (*MemoryContext, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	msgs := m.byRel[relationshipID]
	out := &MemoryContext{RecentMessages: make([]StoredMessage, 0, len(msgs))}
	for _, msg := range msgs {
		out.RecentMessages = append(out.RecentMessages, *msg)
		if msg.CreatedAt.After(out.LastInteraction) {
			out.LastInteraction = msg.CreatedAt
		}
	}
	return out, nil
}

func (m *InMemoryConversationMemory) StoreMessage(_ context.Context, msg StoredMessage) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	stored := msg
	m.byRel[msg.RelationshipID] = append(m.byRel[msg.RelationshipID], &stored)
	m.byID[msg.ID] = &stored

	// Trim the window, preserving messages marked important.
	msgs := m.byRel[msg.RelationshipID]
	if len(msgs) > m.window {
		keep := make([]*StoredMessage, 0, m.window)
		over := len(msgs) - m.window
		for i, s := range msgs {
			if i < over && !s.Important {
				delete(m.byID, s.ID)
				continue
			}
			keep = append(keep, s)
		}
		m.byRel[msg.RelationshipID] = keep
	}
	return msg.ID, nil
}

func (m *InMemoryConversationMemory) Search(_ context.Context, relationshipID, query string, limit int) ([]StoredMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if limit <= 0 {
		limit = 10
	}
	terms := strings.Fields(strings.ToLower(query))

	type scored struct {
		msg   *StoredMessage
		score int
	}
	var matches []scored
	for _, msg := range m.byRel[relationshipID] {
		s := searchScore(msg.Content, terms)
		if s > 0 {
			matches = append(matches, scored{msg, s})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]StoredMessage, 0, len(matches))
	for _, sc := range matches {
		out = append(out, *sc.msg)
	}
	return out, nil
}

func (m *InMemoryConversationMemory) MarkImportant(_ context.Context, messageID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg, ok := m.byID[messageID]
	if !ok {
		return ErrMessageNotFound
	}
	msg.Important = true
	return nil
}

// searchScore counts query-term hits in content.
func searchScore(content string, terms []string) int {
	lower := strings.ToLower(content)
	score := 0
	for _, t := range terms {
		score += strings.Count(lower, t)
	}
	return score
}
