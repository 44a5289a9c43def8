package companionsdk

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// ──────────────────────────────────────────────
// Response Orchestrator — explicit state machine over the synthesis stages
// ──────────────────────────────────────────────

// PipelineState names one stage of the synthesis pipeline.
type PipelineState string

const (
	StateReceive           PipelineState = "RECEIVE"
	StateSafetyCheckInput  PipelineState = "SAFETY_CHECK_INPUT"
	StateCrisisExit        PipelineState = "CRISIS_EXIT"
	StateLoadPersonality   PipelineState = "LOAD_PERSONALITY"
	StateAnalyzeEmotion    PipelineState = "ANALYZE_EMOTION"
	StateLoadMemory        PipelineState = "LOAD_MEMORY"
	StateComputeMood       PipelineState = "COMPUTE_MOOD"
	StateModulateTone      PipelineState = "MODULATE_TONE"
	StateAdaptCulture      PipelineState = "ADAPT_CULTURE"
	StateBuildPrompt       PipelineState = "BUILD_PROMPT"
	StateInvokeProvider    PipelineState = "INVOKE_PROVIDER"
	StateSafetyCheckOutput PipelineState = "SAFETY_CHECK_OUTPUT"
	StateFallbackExit      PipelineState = "FALLBACK_EXIT"
	StatePersistAndReturn  PipelineState = "PERSIST_AND_RETURN"

	// stateDone is the internal terminal marker.
	stateDone PipelineState = ""
)

// FallbackKind records which substitution, if any, produced the reply.
type FallbackKind string

const (
	FallbackNone     FallbackKind = "none"
	FallbackCrisis   FallbackKind = "crisis"
	FallbackProvider FallbackKind = "provider"
	FallbackSafety   FallbackKind = "safety"
)

// CompanionSenderID marks messages authored by the companion itself.
const CompanionSenderID = "companion"

// PipelineConfig holds the orchestrator tunables.
type PipelineConfig struct {
	ProviderTimeout time.Duration // deadline for one model call
	Temperature     float64
	MaxTokens       int
	Timezone        string // IANA name for time-of-day bucketing
}

// DefaultPipelineConfig returns production-ready defaults.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		ProviderTimeout: 20 * time.Second,
		Temperature:     0.8,
		MaxTokens:       400,
		Timezone:        "UTC",
	}
}

// Response is what the pipeline hands back to the caller.
type Response struct {
	Content  string           `json:"content"`
	Tone     EmotionalTone    `json:"tone"`
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata carries audit and debugging data alongside the reply.
type ResponseMetadata struct {
	ProcessingTimeMs float64         `json:"processing_time_ms"`
	SafetyVerified   bool            `json:"safety_verified"`
	EthicallySound   bool            `json:"ethically_sound"`
	Fallback         FallbackKind    `json:"fallback"`
	TraceID          string          `json:"trace_id"`
	Stages           []StageSpan     `json:"stages,omitempty"`
	Modulation       *ToneModulation `json:"modulation,omitempty"`
}

// Pipeline is the response orchestrator. One Pipeline serves many concurrent
// requests: every field is read-only after construction, and each request
// gets its own run state.
type Pipeline struct {
	relationships RelationshipStore
	memory        ConversationMemory
	provider      Provider

	registry   *PersonalityRegistry
	classifier *EmotionClassifier
	modulator  *ToneModulator
	safety     *SafetyGate
	ethics     *EthicsChecker

	config PipelineConfig
	loc    *time.Location
	logger zerolog.Logger
	stats  *PipelineStats

	// now is the clock; overridable in tests.
	now func() time.Time
}

// NewPipeline wires the orchestrator. The three collaborators are required;
// config is optional and defaults to DefaultPipelineConfig.
func NewPipeline(relationships RelationshipStore, memory ConversationMemory, provider Provider, logger zerolog.Logger, config ...PipelineConfig) *Pipeline {
	cfg := DefaultPipelineConfig()
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = 20 * time.Second
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return &Pipeline{
		relationships: relationships,
		memory:        memory,
		provider:      provider,
		registry:      NewPersonalityRegistry(),
		classifier:    NewEmotionClassifier(),
		modulator:     NewToneModulator(),
		safety:        NewSafetyGate(),
		ethics:        NewEthicsChecker(),
		config:        cfg,
		loc:           loc,
		logger:        logger.With().Str("component", "pipeline").Logger(),
		stats:         &PipelineStats{},
		now:           time.Now,
	}
}

// Stats exposes the pipeline counters.
func (p *Pipeline) Stats() *PipelineStats { return p.stats }

// Registry exposes the personality registry for callers that need topic or
// trait lookups outside a pipeline run.
func (p *Pipeline) Registry() *PersonalityRegistry { return p.registry }

type relResult struct {
	rel *Relationship
	err error
}

type memResult struct {
	mem *MemoryContext
	err error
}

// pipelineRun is the per-request working set. It lives on one goroutine;
// only the two fetch channels cross goroutines.
type pipelineRun struct {
	relationshipID string
	userID         string
	userMessage    string
	startedAt      time.Time

	trace *runTrace

	inputVerdict  SafetyVerdict
	emotion       EmotionalContext
	rel           *Relationship
	profile       *PersonalityProfile
	memCtx        *MemoryContext
	temporal      TemporalContext
	mood          MoodState
	modulation    ToneModulation
	culture       CulturalGuidance
	prompt        string
	modelText     string
	outputVerdict SafetyVerdict
	ethicsVerdict EthicalVerdict
	fallback      FallbackKind

	relCh chan relResult
	memCh chan memResult

	response *Response
}

// GenerateResponse runs the full synthesis pipeline for one inbound message.
// It fails only on missing relationship or personality data; every other
// problem resolves internally to some reply.
func (p *Pipeline) GenerateResponse(ctx context.Context, relationshipID, userID, userMessage string) (*Response, error) {
	p.stats.Requests.Inc()
	run := &pipelineRun{
		relationshipID: relationshipID,
		userID:         userID,
		userMessage:    userMessage,
		startedAt:      p.now(),
		trace:          newRunTrace(),
		fallback:       FallbackNone,
	}

	state := StateReceive
	for state != stateDone {
		next, err := p.advance(ctx, run, state)
		if err != nil {
			p.stats.Failures.Inc()
			p.logger.Error().Err(err).
				Str("trace_id", run.trace.traceID).
				Str("relationship_id", relationshipID).
				Str("stage", string(state)).
				Msg("pipeline aborted")
			return nil, err
		}
		state = next
	}

	p.stats.Completed.Inc()
	return run.response, nil
}

// advance executes one stage and returns the next state. Terminal stages
// set run.response and return stateDone.
func (p *Pipeline) advance(ctx context.Context, run *pipelineRun, state PipelineState) (PipelineState, error) {
	end := run.trace.begin(state)
	switch state {
	case StateReceive:
		// Kick off the two independent fetches now; they join at
		// LOAD_PERSONALITY and LOAD_MEMORY respectively.
		run.relCh = make(chan relResult, 1)
		run.memCh = make(chan memResult, 1)
		go func() {
			rel, err := p.relationships.GetRelationship(ctx, run.relationshipID)
			run.relCh <- relResult{rel, err}
		}()
		go func() {
			mem, err := p.memory.GetContext(ctx, run.relationshipID)
			run.memCh <- memResult{mem, err}
		}()
		end("ok", nil)
		return StateSafetyCheckInput, nil

	case StateSafetyCheckInput:
		run.inputVerdict = p.safety.CheckSafety(run.userMessage, ContextUserInput)
		run.emotion = p.classifier.Classify(run.userMessage)
		end("ok", nil)
		if run.emotion.Urgency == UrgencyCrisis {
			return StateCrisisExit, nil
		}
		return StateLoadPersonality, nil

	case StateCrisisExit:
		p.stats.CrisisExits.Inc()
		p.logger.Warn().
			Str("trace_id", run.trace.traceID).
			Str("relationship_id", run.relationshipID).
			Strs("violations", run.inputVerdict.Violations).
			Msg("crisis language detected; returning fixed crisis response")
		run.fallback = FallbackCrisis
		run.response = p.finishResponse(run, GenerateCrisisResponse(), ToneCalm, true, true)
		end("ok", nil)
		return stateDone, nil

	case StateLoadPersonality:
		res := <-run.relCh
		if res.err != nil {
			end("error", res.err)
			return stateDone, fmt.Errorf("load relationship %q: %w", run.relationshipID, res.err)
		}
		run.rel = res.rel
		profile, err := p.registry.Get(run.rel.Archetype)
		if err != nil {
			end("error", err)
			return stateDone, err
		}
		run.profile = profile
		end("ok", nil)
		return StateAnalyzeEmotion, nil

	case StateAnalyzeEmotion:
		// Classification already ran during the input safety check and is
		// deterministic; this stage records it as the analysis of record.
		p.logger.Debug().
			Str("trace_id", run.trace.traceID).
			Str("primary_emotion", string(run.emotion.PrimaryEmotion)).
			Float64("intensity", run.emotion.Intensity).
			Str("urgency", string(run.emotion.Urgency)).
			Msg("emotion analyzed")
		end("ok", nil)
		return StateLoadMemory, nil

	case StateLoadMemory:
		res := <-run.memCh
		if res.err != nil {
			// Memory trouble degrades to an empty window; the reply must
			// still happen.
			p.logger.Warn().Err(res.err).
				Str("trace_id", run.trace.traceID).
				Msg("memory fetch failed; continuing with empty context")
			run.memCtx = &MemoryContext{}
			end("error", res.err)
			return StateComputeMood, nil
		}
		run.memCtx = res.mem
		end("ok", nil)
		return StateComputeMood, nil

	case StateComputeMood:
		lastSeen := run.memCtx.LastInteraction
		if lastSeen.IsZero() {
			lastSeen = run.rel.LastInteractionAt
		}
		run.temporal = ComputeTemporalContext(p.now().In(p.loc), run.rel.CreatedAt, lastSeen, len(run.memCtx.RecentMessages))
		run.mood = ComputeMoodState(run.profile.Traits, run.memCtx.RecentTones(), run.temporal, run.emotion.PrimaryEmotion)
		end("ok", nil)
		return StateModulateTone, nil

	case StateModulateTone:
		run.modulation = p.modulator.Modulate(run.mood.CurrentMood, run.mood, run.temporal, run.emotion, run.rel.Archetype)
		// The modulated tone must stay inside the profile's expressive range;
		// every profile's range includes the supportive register.
		if !run.profile.InEmotionalRange(run.modulation.ModifiedTone) {
			clamped := run.modulation.BaseTone
			if !run.profile.InEmotionalRange(clamped) {
				clamped = ToneSupportive
			}
			run.modulation.ModifiedTone = clamped
			run.modulation.Reasons = append(run.modulation.Reasons, "outside profile emotional range: clamped")
		}
		end("ok", nil)
		return StateAdaptCulture, nil

	case StateAdaptCulture:
		run.culture = AdaptCulture(run.rel.Preferences)
		end("ok", nil)
		return StateBuildPrompt, nil

	case StateBuildPrompt:
		traitText, err := p.registry.DescribeTraits(run.rel.Archetype)
		if err != nil {
			end("error", err)
			return stateDone, err
		}
		run.prompt = BuildPrompt(PromptInput{
			Profile:     run.profile,
			TraitText:   traitText,
			Emotion:     run.emotion,
			Mood:        run.mood,
			Modulation:  run.modulation,
			Culture:     run.culture,
			Temporal:    run.temporal,
			Recent:      run.memCtx.RecentMessages,
			UserName:    run.rel.Preferences.Nickname,
			UserMessage: run.userMessage,
		})
		end("ok", nil)
		return StateInvokeProvider, nil

	case StateInvokeProvider:
		callCtx, cancel := context.WithTimeout(ctx, p.config.ProviderTimeout)
		completion, err := p.provider.Generate(callCtx, run.prompt, p.config.Temperature, p.config.MaxTokens)
		cancel()
		if err != nil {
			// Timeout, quota, and transport failures all resolve to the
			// per-tone placeholder; the user still gets a reply.
			p.stats.ProviderFallbacks.Inc()
			p.logger.Warn().Err(err).
				Str("trace_id", run.trace.traceID).
				Msg("provider failed; substituting placeholder reply")
			run.fallback = FallbackProvider
			run.modelText = p.placeholderReply(run)
			end("error", err)
			return StateSafetyCheckOutput, nil
		}
		run.modelText = completion.Text
		end("ok", nil)
		return StateSafetyCheckOutput, nil

	case StateSafetyCheckOutput:
		run.outputVerdict = p.safety.CheckSafety(run.modelText, ContextAIResponse)
		run.ethicsVerdict = p.ethics.CheckEthics(run.rel.Archetype, run.userMessage, run.modelText)
		if quality := ValidateResponse(run.modelText); !quality.Valid {
			p.logger.Info().
				Str("trace_id", run.trace.traceID).
				Strs("issues", quality.Issues).
				Msg("response quality warnings")
		}
		end("ok", nil)
		if !run.outputVerdict.IsSafe || !run.ethicsVerdict.Sound() {
			return StateFallbackExit, nil
		}
		return StatePersistAndReturn, nil

	case StateFallbackExit:
		// The model's text is discarded entirely; only the verdicts are kept
		// for audit.
		p.stats.SafetyFallbacks.Inc()
		p.logger.Warn().
			Str("trace_id", run.trace.traceID).
			Str("relationship_id", run.relationshipID).
			Strs("safety_violations", run.outputVerdict.Violations).
			Str("severity", string(run.outputVerdict.Severity)).
			Strs("ethics_concerns", run.ethicsVerdict.Concerns).
			Msg("model output rejected; substituting supportive fallback")
		run.fallback = FallbackSafety
		run.modelText = genericSupportiveReply
		run.modulation.ModifiedTone = ToneSupportive
		end("ok", nil)
		return StatePersistAndReturn, nil

	case StatePersistAndReturn:
		// Persist the user's message first, then the companion's reply, so
		// retrieval returns them in conversational order.
		if err := p.persistExchange(ctx, run); err != nil {
			p.logger.Warn().Err(err).
				Str("trace_id", run.trace.traceID).
				Msg("persisting exchange failed")
		}
		safe := run.outputVerdict.IsSafe
		ethical := run.ethicsVerdict.Sound()
		if run.fallback == FallbackSafety {
			// The substituted reply itself is pre-approved.
			safe, ethical = true, true
		}
		run.response = p.finishResponse(run, run.modelText, run.modulation.ModifiedTone, safe, ethical)
		run.response.Metadata.Modulation = &run.modulation
		end("ok", nil)
		return stateDone, nil

	default:
		err := fmt.Errorf("invalid pipeline state %q", state)
		end("error", err)
		return stateDone, err
	}
}

func (p *Pipeline) persistExchange(ctx context.Context, run *pipelineRun) error {
	now := p.now()
	_, userErr := p.memory.StoreMessage(ctx, StoredMessage{
		RelationshipID: run.relationshipID,
		SenderID:       run.userID,
		Content:        run.userMessage,
		Tone:           run.emotion.PrimaryEmotion,
		CreatedAt:      now,
		Metadata: map[string]interface{}{
			"urgency":   string(run.emotion.Urgency),
			"sentiment": run.emotion.SentimentScore,
		},
	})
	_, aiErr := p.memory.StoreMessage(ctx, StoredMessage{
		RelationshipID: run.relationshipID,
		SenderID:       CompanionSenderID,
		Content:        run.modelText,
		Tone:           run.modulation.ModifiedTone,
		CreatedAt:      now.Add(time.Millisecond),
		Metadata: map[string]interface{}{
			"base_tone": string(run.modulation.BaseTone),
			"intensity": run.modulation.Intensity,
			"reasons":   run.modulation.Reasons,
			"fallback":  string(run.fallback),
		},
	})
	return errors.Join(userErr, aiErr)
}

func (p *Pipeline) finishResponse(run *pipelineRun, content string, tone EmotionalTone, safe, ethical bool) *Response {
	return &Response{
		Content: content,
		Tone:    tone,
		Metadata: ResponseMetadata{
			ProcessingTimeMs: float64(p.now().Sub(run.startedAt).Microseconds()) / 1000.0,
			SafetyVerified:   safe,
			EthicallySound:   ethical,
			Fallback:         run.fallback,
			TraceID:          run.trace.traceID,
			Stages:           run.trace.spans,
		},
	}
}

// placeholderReply builds the fixed per-tone reply used when the provider is
// unavailable. A situational line from the profile's pattern bank keeps it in
// character; the rng is per-run, never shared across requests.
func (p *Pipeline) placeholderReply(run *pipelineRun) string {
	tone := run.modulation.ModifiedTone
	reply, ok := fallbackReplies[tone]
	if !ok {
		reply = fallbackReplies[ToneSupportive]
	}
	rng := rand.New(rand.NewSource(run.startedAt.UnixNano()))
	line := run.profile.ResponseLine(run.emotion.Situation(), rng)
	if line == "" {
		line = run.profile.SupportLine(rng)
	}
	if line != "" {
		reply = reply + " " + line
	}
	return reply
}

const genericSupportiveReply = "I'm here with you, and I'm listening. " +
	"Whatever you're going through right now, you don't have to face it alone. " +
	"Take your time — tell me more whenever you're ready."

// Fixed per-tone placeholder replies for provider outages.
var fallbackReplies = map[EmotionalTone]string{
	ToneSupportive: "I'm having a little trouble finding my words right now, but I'm here and I'm listening.",
	ToneComforting: "I'm right here with you. Take a breath — we can sit with this together for a moment.",
	ToneWarm:       "It's really good to hear from you. Give me a moment and tell me more.",
	ToneCheerful:   "You just made my day brighter! Tell me more while I gather my thoughts.",
	TonePlayful:    "Okay, my brain just did a little somersault — say that again?",
	ToneCalm:       "Let's take this slowly. I'm here, and there's no rush at all.",
	ToneGentle:     "I'm here, softly and patiently. Whenever you're ready, go on.",
	ToneWise:       "Some thoughts deserve a pause before an answer. Stay with me a moment.",
	ToneReassuring: "It's okay — I'm still right here, and we'll sort this out together.",
	ToneNurturing:  "I've got you. Take all the time you need, and we'll go from there.",
}
