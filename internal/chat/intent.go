package chat

import (
	"regexp"
	"strings"

	"github.com/creativedrywall/chat-assistant/internal/business"
)

// Intent is one of the fixed request categories answered without the LLM.
type Intent string

const (
	IntentNone      Intent = ""
	IntentOffTopic  Intent = "off_topic"
	IntentOutOfArea Intent = "out_of_area"
	IntentPricing   Intent = "pricing"
	IntentEmergency Intent = "emergency"
)

// Verdict holds the independent classification booleans for one message.
// They are not mutually exclusive; routing applies a fixed precedence.
type Verdict struct {
	IsOffTopic      bool
	IsLocationQuery bool
	IsNonMontana    bool
	IsPricing       bool
	IsEmergency     bool
}

var (
	offTopicRe  = regexp.MustCompile(`(?i)hack|illegal|politic|election|dating|gambling|weapon`)
	locationRe  = regexp.MustCompile(`(?i)do\s+you\s+(serve|service|cover)|service\s+area|where\s+are\s+you`)
	pricingRe   = regexp.MustCompile(`(?i)how\s+much|cost|price|pricing|estimate|quote|rate|charge|\d+\s*x\s*\d+`)
	emergencyRe = regexp.MustCompile(`(?i)emergency|urgent|asap|water\s*damage|flooding|today|immediately`)
)

// Classifier evaluates the intent predicates against one sanitized message.
// All predicates are pure and safe for concurrent use.
type Classifier struct {
	profile *business.Profile
}

func NewClassifier(profile *business.Profile) *Classifier {
	return &Classifier{profile: profile}
}

// Classify computes every predicate once over the sanitized text.
func (c *Classifier) Classify(text string) Verdict {
	lower := strings.ToLower(text)
	return Verdict{
		IsOffTopic:      offTopicRe.MatchString(text),
		IsLocationQuery: locationRe.MatchString(text),
		IsNonMontana:    containsAny(lower, c.profile.NonServiceIndicators),
		IsPricing:       pricingRe.MatchString(text),
		IsEmergency:     emergencyRe.MatchString(text),
	}
}

// intentRoutes is the fixed routing precedence: first match wins. Off-topic is
// checked first so abusive input never reaches the business-logic branches;
// pricing outranks emergency.
var intentRoutes = []struct {
	match  func(Verdict) bool
	intent Intent
}{
	{func(v Verdict) bool { return v.IsOffTopic }, IntentOffTopic},
	{func(v Verdict) bool { return v.IsLocationQuery && v.IsNonMontana }, IntentOutOfArea},
	{func(v Verdict) bool { return v.IsPricing }, IntentPricing},
	{func(v Verdict) bool { return v.IsEmergency }, IntentEmergency},
}

// Route maps a verdict to the deterministic intent to answer, or IntentNone
// when the message should go to the LLM path.
func Route(v Verdict) Intent {
	for _, r := range intentRoutes {
		if r.match(v) {
			return r.intent
		}
	}
	return IntentNone
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
