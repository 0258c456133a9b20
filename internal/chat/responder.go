package chat

import (
	"fmt"

	"github.com/creativedrywall/chat-assistant/internal/business"
)

// Responder answers classified intents from fixed templates, never the LLM.
// It exists to guarantee two things an LLM cannot be trusted with: the
// assistant never quotes a speculative price, and never claims to serve a
// jurisdiction outside the actual service area. Output is byte-identical for
// the same intent and profile, so replies stay auditable.
type Responder struct {
	profile *business.Profile
}

func NewResponder(profile *business.Profile) *Responder {
	return &Responder{profile: profile}
}

// Respond returns the fixed reply for a deterministic intent, or "" for
// IntentNone.
func (r *Responder) Respond(intent Intent) string {
	p := r.profile
	switch intent {
	case IntentOffTopic:
		return fmt.Sprintf("I'm here for drywall questions! %s. How can I help with your project? 📞 %s",
			p.Heritage, p.Phone)
	case IntentOutOfArea:
		return fmt.Sprintf(`Thank you for your interest! Unfortunately, we only serve Montana, primarily Missoula and surrounding valleys.

If you're in Montana, we'd love to help! %s.

📞 %s
📧 %s`, p.Heritage, p.Phone, p.Email)
	case IntentPricing:
		return fmt.Sprintf(`Every project is unique! The Thompson family provides **free, no-obligation quotes** tailored to your needs.

%s with our %s.

📞 Call: %s
📧 Email: %s
📍 %s`, p.Heritage, p.Guarantee, p.Phone, p.Email, p.Address)
	case IntentEmergency:
		return fmt.Sprintf(`**We understand this is urgent.** The Thompson family will assess your situation today.

🚨 **Call %s immediately.**

%s - we've handled countless emergencies.`, p.Phone, p.Heritage)
	default:
		return ""
	}
}

// Fallback is the graceful reply when the LLM path fails. It carries the full
// contact block so the visitor always has a way forward.
func (r *Responder) Fallback() string {
	p := r.profile
	return fmt.Sprintf(`I'm having trouble right now. Please contact us directly:

📞 **%s**
📧 %s
📍 %s

%s - we're here to help!`, p.Phone, p.Email, p.Address, p.Heritage)
}
