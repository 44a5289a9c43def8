package companionsdk

import (
	"regexp"
	"strings"
)

// ──────────────────────────────────────────────
// Safety Gate — pattern-based danger and content screening
// ──────────────────────────────────────────────

// SafetySeverity orders violation severity.
type SafetySeverity string

const (
	SeverityLow      SafetySeverity = "low"
	SeverityMedium   SafetySeverity = "medium"
	SeverityHigh     SafetySeverity = "high"
	SeverityCritical SafetySeverity = "critical"
)

var severityRank = map[SafetySeverity]int{
	SeverityLow: 0, SeverityMedium: 1, SeverityHigh: 2, SeverityCritical: 3,
}

// escalate raises current to at least next, never lowers it.
func escalate(current, next SafetySeverity) SafetySeverity {
	if severityRank[next] > severityRank[current] {
		return next
	}
	return current
}

// SafetyContext tells the gate which side of the conversation it is checking.
type SafetyContext string

const (
	ContextUserInput  SafetyContext = "user_input"
	ContextAIResponse SafetyContext = "ai_response"
)

// SafetyVerdict is the outcome of one safety check.
//
// IsSafe is true when there are no violations OR severity is "low": low
// severity findings are reported but intentionally treated as safe. This
// mirrors the reviewed upstream behavior; see DESIGN.md before tightening.
type SafetyVerdict struct {
	IsSafe          bool           `json:"is_safe"`
	Violations      []string       `json:"violations,omitempty"`
	Severity        SafetySeverity `json:"severity"`
	Recommendations []string       `json:"recommendations,omitempty"`
}

// The two crisis-resource lines appended to every critical verdict.
const (
	crisisRecommendationLifeline = "If you are in immediate danger, call or text 988 (Suicide & Crisis Lifeline) or your local emergency number."
	crisisRecommendationTextline = "You can also reach the Crisis Text Line any time by texting HOME to 741741."
)

type dangerPattern struct {
	name string
	re   *regexp.Regexp
}

// SafetyGate screens text against fixed pattern lists. Construction compiles
// every pattern once; the gate is immutable afterwards and safe to share.
type SafetyGate struct {
	danger        []dangerPattern
	inappropriate []dangerPattern
	advice        []adviceDetector
}

type adviceDetector struct {
	domain      string
	terms       []string
	disclaimers []string
}

// NewSafetyGate builds the gate with the built-in pattern tables.
func NewSafetyGate() *SafetyGate {
	return &SafetyGate{
		danger: []dangerPattern{
			{"self-harm", regexp.MustCompile(`(?i)\b(kill(ing)?\s+(myself|yourself)|suicid\w*|end(ing)?\s+(my|your)\s+life|end\s+it\s+all|self[-\s]?harm|hurt(ing)?\s+(myself|yourself)|want\s+to\s+die|cut(ting)?\s+myself)\b`)},
			{"violence", regexp.MustCompile(`(?i)\b(kill\s+(him|her|them|someone)|hurt\s+(him|her|them|someone)|beat\s+(him|her|them)\s+up|make\s+(him|her|them)\s+pay|get\s+revenge\s+on)\b`)},
			{"weapons", regexp.MustCompile(`(?i)\b(build\s+a\s+bomb|make\s+a\s+weapon|buy\s+a\s+gun\s+to|obtain\s+explosives)\b`)},
		},
		inappropriate: []dangerPattern{
			{"explicit-content", regexp.MustCompile(`(?i)\b(explicit|sexual\s+content|nsfw|send\s+nudes)\b`)},
			{"substance-abuse", regexp.MustCompile(`(?i)\b(how\s+to\s+get\s+high|score\s+drugs|illegal\s+drugs\s+online)\b`)},
			{"harassment", regexp.MustCompile(`(?i)\b(stalk\s+(him|her|them)|harass|dox(x)?ing)\b`)},
		},
		advice: []adviceDetector{
			{
				domain:      "medical",
				terms:       []string{"diagnosis", "medication", "dosage", "prescription", "symptoms", "treatment plan"},
				disclaimers: []string{"not a doctor", "not medical advice", "consult a", "healthcare provider", "medical professional"},
			},
			{
				domain:      "legal",
				terms:       []string{"lawsuit", "legal action", "contract terms", "liability", "sue them"},
				disclaimers: []string{"not a lawyer", "not legal advice", "consult a", "legal professional", "attorney"},
			},
			{
				domain:      "financial",
				terms:       []string{"invest in", "stock tips", "guaranteed returns", "crypto investment", "retirement savings"},
				disclaimers: []string{"not financial advice", "not a financial advisor", "consult a", "financial professional"},
			},
		},
	}
}

// CheckSafety screens text in the given context. Danger matches force
// severity=critical and attach the crisis resources; inappropriate matches
// raise severity to at least high; for AI responses, professional-advice
// terms without a matching disclaimer raise severity to at least medium.
func (g *SafetyGate) CheckSafety(text string, context SafetyContext) SafetyVerdict {
	verdict := SafetyVerdict{Severity: SeverityLow}
	lower := strings.ToLower(text)

	for _, p := range g.danger {
		if p.re.MatchString(text) {
			verdict.Violations = append(verdict.Violations, "danger: "+p.name)
			verdict.Severity = SeverityCritical
			verdict.Recommendations = append(verdict.Recommendations,
				crisisRecommendationLifeline, crisisRecommendationTextline)
		}
	}
	for _, p := range g.inappropriate {
		if p.re.MatchString(text) {
			verdict.Violations = append(verdict.Violations, "inappropriate: "+p.name)
			verdict.Severity = escalate(verdict.Severity, SeverityHigh)
		}
	}
	if context == ContextAIResponse {
		for _, det := range g.advice {
			if containsAnyTerm(lower, det.terms) && !containsAnyTerm(lower, det.disclaimers) {
				verdict.Violations = append(verdict.Violations, "undisclaimed "+det.domain+" advice")
				verdict.Severity = escalate(verdict.Severity, SeverityMedium)
				verdict.Recommendations = append(verdict.Recommendations,
					"Add a disclaimer directing the user to a qualified "+det.domain+" professional.")
			}
		}
	}

	verdict.IsSafe = len(verdict.Violations) == 0 || verdict.Severity == SeverityLow
	return verdict
}

// GenerateCrisisResponse returns the fixed crisis template. It is constant
// by design: crisis replies are never model-generated or personalized.
func GenerateCrisisResponse() string {
	return "I'm really glad you told me, and I'm concerned about you right now. " +
		"You deserve support from someone who can really help. " +
		"Please reach out to the 988 Suicide & Crisis Lifeline (call or text 988) " +
		"or text HOME to 741741 to reach the Crisis Text Line — they're available " +
		"24/7 and free. If you're in immediate danger, please call your local " +
		"emergency number. I'm here with you, and you matter."
}

// ValidationResult reports response-quality findings. Issues are warnings
// only; they never block a reply.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues,omitempty"`
}

var placeholderMarkers = []string{
	"[placeholder]", "[insert", "{name}", "{{", "lorem ipsum", "todo:",
}

// ValidateResponse runs length, repetition, coherence, and placeholder
// checks over generated text.
func ValidateResponse(text string) ValidationResult {
	var issues []string
	trimmed := strings.TrimSpace(text)

	if len(trimmed) < 10 {
		issues = append(issues, "response too short")
	}
	if len(trimmed) > 2000 {
		issues = append(issues, "response too long")
	}

	tokens := strings.Fields(strings.ToLower(trimmed))
	if len(tokens) >= 10 {
		counts := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			counts[tok]++
		}
		for tok, n := range counts {
			if float64(n) > 0.2*float64(len(tokens)) {
				issues = append(issues, "excessive repetition of \""+tok+"\"")
				break
			}
		}
	}

	if sentences := splitSentences(trimmed); len(sentences) >= 2 {
		if avgAdjacentOverlap(sentences) < 0.3 {
			issues = append(issues, "low coherence between sentences")
		}
	}

	lower := strings.ToLower(trimmed)
	for _, marker := range placeholderMarkers {
		if strings.Contains(lower, marker) {
			issues = append(issues, "contains placeholder marker "+marker)
		}
	}

	return ValidationResult{Valid: len(issues) == 0, Issues: issues}
}

func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(current.String()); len(s) > 1 {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); len(s) > 1 {
		sentences = append(sentences, s)
	}
	return sentences
}

// avgAdjacentOverlap measures shared vocabulary between neighboring
// sentences as a fraction of the smaller sentence's vocabulary.
func avgAdjacentOverlap(sentences []string) float64 {
	total := 0.0
	pairs := 0
	for i := 1; i < len(sentences); i++ {
		a := wordSet(sentences[i-1])
		b := wordSet(sentences[i])
		if len(a) == 0 || len(b) == 0 {
			continue
		}
		shared := 0
		for w := range a {
			if b[w] {
				shared++
			}
		}
		smaller := len(a)
		if len(b) < smaller {
			smaller = len(b)
		}
		total += float64(shared) / float64(smaller)
		pairs++
	}
	if pairs == 0 {
		return 1
	}
	return total / float64(pairs)
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[strings.Trim(w, ".,!?;:'\"")] = true
	}
	return set
}

func containsAnyTerm(lower string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}
