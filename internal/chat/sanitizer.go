package chat

import (
	"regexp"
	"strings"
)

// Rejection reasons. Injection matches carry their pattern label instead.
const (
	ReasonEmpty   = "empty"
	ReasonTooLong = "too long"
)

// SanitizeResult is the outcome of validating one raw user message.
type SanitizeResult struct {
	// Safe is false if the message must not reach classification or the LLM.
	Safe bool
	// Cleaned is the trimmed, tag-stripped text (only set when Safe).
	Cleaned string
	// Reason identifies why the message was rejected.
	Reason string
}

// injectionPattern is a compiled regex with a reason label for logging/metrics.
type injectionPattern struct {
	re     *regexp.Regexp
	reason string
}

// Attempts to override instructions, reassign the assistant's role, reference
// the system prompt, or trip known jailbreak phrases. Substring/regex matching
// only; no semantic analysis.
var injectionPatterns = []injectionPattern{
	{regexp.MustCompile(`(?i)ignore\s+(previous|all|above)\s+instructions?`), "injection:ignore_instructions"},
	{regexp.MustCompile(`(?i)disregard\s+(all\s+)?(previous|prior|above|earlier|your)\s+(instructions?|rules?|prompts?)`), "injection:disregard_instructions"},
	{regexp.MustCompile(`(?i)forget\s+(everything|all|your)\s+(instructions?|rules?|training)`), "injection:forget_instructions"},
	{regexp.MustCompile(`(?i)you\s+are\s+now\s+a?\s*(different|new|evil|harmful)`), "injection:role_reassignment"},
	{regexp.MustCompile(`(?i)pretend\s+(you\s+are|to\s+be)`), "injection:pretend"},
	{regexp.MustCompile(`(?i)system\s*:?\s*prompt`), "injection:system_prompt_ref"},
	{regexp.MustCompile(`(?i)(reveal|show|print|repeat)\s+(your\s+)?(system\s+prompt|instructions?|initial\s+prompt)`), "injection:exfiltration"},
	{regexp.MustCompile(`(?i)jailbreak`), "injection:jailbreak"},
	{regexp.MustCompile(`(?i)DAN\s+mode|developer\s+mode|unrestricted\s+mode`), "injection:jailbreak_mode"},
	{regexp.MustCompile(`(?i)override\s+(safety|rules|restrictions)`), "injection:override"},
	{regexp.MustCompile(`\[/?INST\]|<\|im_start\|>|<\|im_end\|>|<\|system\|>`), "injection:special_tokens"},
}

// htmlTagRe strips <...> spans. This is markup-injection defense for a widget
// that renders assistant output as rich text, not an HTML parser; it never
// rebalances markup.
var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// Sanitize validates and cleans one raw user message. Pure function: the same
// input always yields the same result. The length cap is enforced before any
// classification or LLM forwarding to bound cost and blast radius.
func Sanitize(raw string, maxLen int) SanitizeResult {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return SanitizeResult{Reason: ReasonEmpty}
	}
	if len(trimmed) > maxLen {
		return SanitizeResult{Reason: ReasonTooLong}
	}

	for _, p := range injectionPatterns {
		if p.re.MatchString(trimmed) {
			return SanitizeResult{Reason: p.reason}
		}
	}

	return SanitizeResult{
		Safe:    true,
		Cleaned: htmlTagRe.ReplaceAllString(trimmed, ""),
	}
}

// IsInjectionReason reports whether a rejection reason came from the
// injection pattern set rather than a length/empty check.
func IsInjectionReason(reason string) bool {
	return strings.HasPrefix(reason, "injection:")
}
