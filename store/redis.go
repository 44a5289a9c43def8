// Package store provides production conversation-memory backends.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	companionsdk "github.com/lumora-ai/companion-sdk-go"
)

// ──────────────────────────────────────────────
// RedisMemory — Redis-backed ConversationMemory
// ──────────────────────────────────────────────

// RedisMemory implements companionsdk.ConversationMemory on Redis. Per
// relationship it keeps an ID list as the recent window plus one JSON record
// per message:
//
//	{prefix}:rel:{relationship}:messages  — list of message IDs, oldest first
//	{prefix}:rel:{relationship}:last      — last interaction, RFC3339Nano
//	{prefix}:msg:{id}                     — message record, JSON
type RedisMemory struct {
	client redis.UniversalClient
	prefix string
	window int
}

// RedisConfig configures the Redis backend.
type RedisConfig struct {
	Prefix string // key prefix, default "companion"
	Window int    // recent-window size per relationship, default 50
}

// NewRedisMemory creates a Redis-backed memory. Works with a Client,
// ClusterClient, or Ring.
func NewRedisMemory(client redis.UniversalClient, config ...RedisConfig) *RedisMemory {
	cfg := RedisConfig{Prefix: "companion", Window: 50}
	if len(config) > 0 {
		if config[0].Prefix != "" {
			cfg.Prefix = config[0].Prefix
		}
		if config[0].Window > 0 {
			cfg.Window = config[0].Window
		}
	}
	return &RedisMemory{client: client, prefix: cfg.Prefix, window: cfg.Window}
}

func (r *RedisMemory) listKey(relationshipID string) string {
	return fmt.Sprintf("%s:rel:%s:messages", r.prefix, relationshipID)
}

func (r *RedisMemory) lastKey(relationshipID string) string {
	return fmt.Sprintf("%s:rel:%s:last", r.prefix, relationshipID)
}

func (r *RedisMemory) msgKey(id string) string {
	return fmt.Sprintf("%s:msg:%s", r.prefix, id)
}

// GetContext returns the recent window, oldest first. Unknown relationships
// yield an empty context.
func (r *RedisMemory) GetContext(ctx context.Context, relationshipID string) (*companionsdk.MemoryContext, error) {
	ids, err := r.client.LRange(ctx, r.listKey(relationshipID), 0, -1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("load message window: %w", err)
	}
	out := &companionsdk.MemoryContext{}
	for _, id := range ids {
		msg, err := r.loadMessage(ctx, id)
		if err != nil {
			if errors.Is(err, companionsdk.ErrMessageNotFound) {
				continue // trimmed record, stale list entry
			}
			return nil, err
		}
		out.RecentMessages = append(out.RecentMessages, *msg)
	}
	if raw, err := r.client.Get(ctx, r.lastKey(relationshipID)).Result(); err == nil {
		if t, perr := time.Parse(time.RFC3339Nano, raw); perr == nil {
			out.LastInteraction = t
		}
	} else if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("load last interaction: %w", err)
	}
	return out, nil
}

// StoreMessage appends a message, advances the last-interaction marker, and
// trims the window. Records of trimmed messages are deleted unless marked
// important; important records stay addressable by ID.
func (r *RedisMemory) StoreMessage(ctx context.Context, msg companionsdk.StoredMessage) (string, error) {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("encode message: %w", err)
	}
	if err := r.client.Set(ctx, r.msgKey(msg.ID), payload, 0).Err(); err != nil {
		return "", fmt.Errorf("store message: %w", err)
	}
	if err := r.client.RPush(ctx, r.listKey(msg.RelationshipID), msg.ID).Err(); err != nil {
		return "", fmt.Errorf("append message id: %w", err)
	}
	if err := r.client.Set(ctx, r.lastKey(msg.RelationshipID), msg.CreatedAt.Format(time.RFC3339Nano), 0).Err(); err != nil {
		return "", fmt.Errorf("update last interaction: %w", err)
	}
	if err := r.trim(ctx, msg.RelationshipID); err != nil {
		return "", err
	}
	return msg.ID, nil
}

func (r *RedisMemory) trim(ctx context.Context, relationshipID string) error {
	key := r.listKey(relationshipID)
	length, err := r.client.LLen(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("window length: %w", err)
	}
	for length > int64(r.window) {
		id, err := r.client.LPop(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("trim window: %w", err)
		}
		length--
		msg, err := r.loadMessage(ctx, id)
		if err != nil || msg.Important {
			continue
		}
		if err := r.client.Del(ctx, r.msgKey(id)).Err(); err != nil {
			return fmt.Errorf("drop trimmed message: %w", err)
		}
	}
	return nil
}

// Search scans the recent window and returns the best keyword matches.
func (r *RedisMemory) Search(ctx context.Context, relationshipID, query string, limit int) ([]companionsdk.StoredMessage, error) {
	if limit <= 0 {
		limit = 10
	}
	mem, err := r.GetContext(ctx, relationshipID)
	if err != nil {
		return nil, err
	}
	terms := strings.Fields(strings.ToLower(query))

	type scored struct {
		msg   companionsdk.StoredMessage
		score int
	}
	var matches []scored
	for _, msg := range mem.RecentMessages {
		s := 0
		lower := strings.ToLower(msg.Content)
		for _, t := range terms {
			s += strings.Count(lower, t)
		}
		if s > 0 {
			matches = append(matches, scored{msg, s})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]companionsdk.StoredMessage, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.msg)
	}
	return out, nil
}

// MarkImportant flags a message so window trimming keeps its record.
func (r *RedisMemory) MarkImportant(ctx context.Context, messageID string) error {
	msg, err := r.loadMessage(ctx, messageID)
	if err != nil {
		return err
	}
	msg.Important = true
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	return r.client.Set(ctx, r.msgKey(messageID), payload, 0).Err()
}

func (r *RedisMemory) loadMessage(ctx context.Context, id string) (*companionsdk.StoredMessage, error) {
	raw, err := r.client.Get(ctx, r.msgKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, companionsdk.ErrMessageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load message %s: %w", id, err)
	}
	var msg companionsdk.StoredMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		return nil, fmt.Errorf("decode message %s: %w", id, err)
	}
	return &msg, nil
}
