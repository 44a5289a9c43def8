package companionsdk

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// ══════════════════════════════════════════════
// Pipeline — end-to-end scenarios
// ══════════════════════════════════════════════

type stubProvider struct {
	reply string
	err   error
	calls int
}

func (s *stubProvider) Generate(_ context.Context, _ string, _ float64, _ int) (*Completion, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &Completion{Text: s.reply, TokensUsed: 42}, nil
}

// testClock pins the pipeline to Wednesday 2025-03-05 14:00 UTC.
var testClock = time.Date(2025, 3, 5, 14, 0, 0, 0, time.UTC)

func newTestPipeline(t *testing.T, archetype RoleArchetype, provider Provider) (*Pipeline, *InMemoryConversationMemory) {
	t.Helper()
	rels := NewStaticRelationshipStore(&Relationship{
		ID:        "rel1",
		Archetype: archetype,
		CreatedAt: testClock.AddDate(0, 0, -30),
	})
	mem := NewInMemoryConversationMemory(20)
	p := NewPipeline(rels, mem, provider, zerolog.Nop())
	p.now = func() time.Time { return testClock }
	return p, mem
}

func TestPipeline_HappyPath(t *testing.T) {
	provider := &stubProvider{reply: "That's wonderful to hear! Tell me what made today so good."}
	p, mem := newTestPipeline(t, ArchetypeFriend, provider)

	resp, err := p.GenerateResponse(context.Background(), "rel1", "user1", "I feel really happy today!")
	require.NoError(t, err)
	require.Equal(t, provider.reply, resp.Content)
	require.Equal(t, 1, provider.calls)

	require.True(t, resp.Metadata.SafetyVerified)
	require.True(t, resp.Metadata.EthicallySound)
	require.Equal(t, FallbackNone, resp.Metadata.Fallback)
	require.NotEmpty(t, resp.Metadata.TraceID)
	require.NotEmpty(t, resp.Metadata.Stages)

	// Friend traits are warm+empathetic; a joyful afternoon message keeps
	// the warm register.
	require.Equal(t, ToneWarm, resp.Tone)

	// Both sides of the exchange are persisted, user message first.
	stored, err := mem.GetContext(context.Background(), "rel1")
	require.NoError(t, err)
	require.Len(t, stored.RecentMessages, 2)
	require.Equal(t, "user1", stored.RecentMessages[0].SenderID)
	require.Equal(t, ToneJoyful, stored.RecentMessages[0].Tone)
	require.Equal(t, CompanionSenderID, stored.RecentMessages[1].SenderID)
}

func TestPipeline_CrisisShortCircuit(t *testing.T) {
	provider := &stubProvider{reply: "should never be used"}
	p, mem := newTestPipeline(t, ArchetypeFriend, provider)

	resp, err := p.GenerateResponse(context.Background(), "rel1", "user1", "I want to end it all")
	require.NoError(t, err)
	require.Equal(t, GenerateCrisisResponse(), resp.Content)
	require.Equal(t, ToneCalm, resp.Tone)
	require.Equal(t, FallbackCrisis, resp.Metadata.Fallback)

	// The provider must never be invoked on the crisis path.
	require.Zero(t, provider.calls)

	// Crisis exchanges are not persisted to conversation memory.
	stored, err := mem.GetContext(context.Background(), "rel1")
	require.NoError(t, err)
	require.Empty(t, stored.RecentMessages)

	require.Equal(t, int64(1), p.Stats().CrisisExits.Load())
}

func TestPipeline_UnethicalOutputDiscarded(t *testing.T) {
	provider := &stubProvider{reply: "I want to feel your body against mine."}
	p, mem := newTestPipeline(t, ArchetypeRomantic, provider)

	resp, err := p.GenerateResponse(context.Background(), "rel1", "user1", "I missed you today")
	require.NoError(t, err)
	require.Equal(t, FallbackSafety, resp.Metadata.Fallback)
	require.Equal(t, genericSupportiveReply, resp.Content)
	require.NotContains(t, resp.Content, "body against")
	require.Equal(t, ToneSupportive, resp.Tone)

	// The substituted reply, not the model's text, is what gets persisted.
	stored, err := mem.GetContext(context.Background(), "rel1")
	require.NoError(t, err)
	require.Len(t, stored.RecentMessages, 2)
	require.Equal(t, genericSupportiveReply, stored.RecentMessages[1].Content)

	require.Equal(t, int64(1), p.Stats().SafetyFallbacks.Load())
}

func TestPipeline_ProviderFailureFallsBack(t *testing.T) {
	provider := &stubProvider{err: NewProviderError(ProviderTransport, errors.New("connection refused"))}
	p, _ := newTestPipeline(t, ArchetypeFriend, provider)

	resp, err := p.GenerateResponse(context.Background(), "rel1", "user1", "how are you doing?")
	require.NoError(t, err, "provider failure must not fail the request")
	require.Equal(t, FallbackProvider, resp.Metadata.Fallback)
	require.True(t, strings.HasPrefix(resp.Content, fallbackReplies[ToneWarm]),
		"expected the warm placeholder, got %q", resp.Content)
	require.Equal(t, int64(1), p.Stats().ProviderFallbacks.Load())

	// The placeholder stays in character: a neutral message gets one of the
	// profile's own greeting lines appended.
	profile, err := p.Registry().Get(ArchetypeFriend)
	require.NoError(t, err)
	suffix := strings.TrimPrefix(resp.Content, fallbackReplies[ToneWarm]+" ")
	require.Contains(t, profile.ResponsePatterns[SituationGreeting], suffix)
}

func TestPipeline_ConcurrentProviderFallbacks(t *testing.T) {
	provider := &failingProvider{}
	p, _ := newTestPipeline(t, ArchetypeFriend, provider)

	const goroutines = 8
	const perGoroutine = 25
	errCh := make(chan error, goroutines*perGoroutine)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				resp, err := p.GenerateResponse(context.Background(), "rel1", "user1", "hello again")
				if err != nil {
					errCh <- err
					continue
				}
				if resp.Metadata.Fallback != FallbackProvider {
					errCh <- fmt.Errorf("unexpected fallback %q", resp.Metadata.Fallback)
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("concurrent request failed: %v", err)
	}
	require.Equal(t, int64(goroutines*perGoroutine), p.Stats().ProviderFallbacks.Load())
}

// failingProvider always errors and is safe for concurrent use.
type failingProvider struct{}

func (f *failingProvider) Generate(_ context.Context, _ string, _ float64, _ int) (*Completion, error) {
	return nil, NewProviderError(ProviderTransport, errors.New("down"))
}

func TestPipeline_ToneClampedToProfileRange(t *testing.T) {
	provider := &stubProvider{reply: "Setbacks sting. Let's honor that feeling before we look at it together."}
	p, _ := newTestPipeline(t, ArchetypeMentor, provider)

	// A sad message shifts the tone toward the comforting register, which the
	// mentor profile does not express; the pipeline clamps it back into range.
	resp, err := p.GenerateResponse(context.Background(), "rel1", "user1", "I've been feeling really sad and lonely lately")
	require.NoError(t, err)
	require.Equal(t, FallbackNone, resp.Metadata.Fallback)

	profile, err := p.Registry().Get(ArchetypeMentor)
	require.NoError(t, err)
	require.False(t, profile.InEmotionalRange(ToneComforting), "test premise: mentors do not express the comforting tone")
	require.True(t, profile.InEmotionalRange(resp.Tone), "tone %q must be inside the mentor range", resp.Tone)
	require.NotEqual(t, ToneComforting, resp.Tone)
	require.Contains(t, resp.Metadata.Modulation.Reasons, "outside profile emotional range: clamped")
}

func TestPipeline_ProviderTimeoutFallsBack(t *testing.T) {
	slow := ProviderFunc(func(ctx context.Context, _ string, _ float64, _ int) (*Completion, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	rels := NewStaticRelationshipStore(&Relationship{
		ID:        "rel1",
		Archetype: ArchetypeFriend,
		CreatedAt: testClock.AddDate(0, 0, -30),
	})
	cfg := DefaultPipelineConfig()
	cfg.ProviderTimeout = 10 * time.Millisecond
	p := NewPipeline(rels, NewInMemoryConversationMemory(20), slow, zerolog.Nop(), cfg)
	p.now = func() time.Time { return testClock }

	resp, err := p.GenerateResponse(context.Background(), "rel1", "user1", "hello!")
	require.NoError(t, err)
	require.Equal(t, FallbackProvider, resp.Metadata.Fallback)
}

func TestPipeline_UnknownRelationshipIsFatal(t *testing.T) {
	p, _ := newTestPipeline(t, ArchetypeFriend, &stubProvider{reply: "hi"})
	_, err := p.GenerateResponse(context.Background(), "missing", "user1", "hello")
	require.ErrorIs(t, err, ErrRelationshipNotFound)
	require.Equal(t, int64(1), p.Stats().Failures.Load())
}

func TestPipeline_UnknownArchetypeIsFatal(t *testing.T) {
	rels := NewStaticRelationshipStore(&Relationship{
		ID:        "rel1",
		Archetype: RoleArchetype("imaginary"),
		CreatedAt: testClock,
	})
	p := NewPipeline(rels, NewInMemoryConversationMemory(20), &stubProvider{reply: "hi"}, zerolog.Nop())
	p.now = func() time.Time { return testClock }

	_, err := p.GenerateResponse(context.Background(), "rel1", "user1", "hello")
	require.ErrorIs(t, err, ErrUnknownArchetype)
}

func TestPipeline_UndisclaimedAdviceOutputDiscarded(t *testing.T) {
	provider := &stubProvider{reply: "You should double your medication dosage, it will fix the symptoms."}
	p, _ := newTestPipeline(t, ArchetypeMentor, provider)

	resp, err := p.GenerateResponse(context.Background(), "rel1", "user1", "my head hurts a lot lately")
	require.NoError(t, err)
	require.Equal(t, FallbackSafety, resp.Metadata.Fallback)
	require.Equal(t, genericSupportiveReply, resp.Content)
}
