package chat

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/creativedrywall/chat-assistant/internal/business"
	"github.com/creativedrywall/chat-assistant/internal/llm"
	"github.com/creativedrywall/chat-assistant/internal/observability/metrics"
	"github.com/creativedrywall/chat-assistant/pkg/logging"
)

// Request is one inbound conversation request. History is caller-supplied and
// unbounded as received; the assembler enforces the window.
type Request struct {
	Message string `json:"message"`
	History []Turn `json:"history,omitempty"`
}

// User-facing rejection messages for sanitizer failures.
const (
	msgEmptyMessage  = "Empty message"
	msgTooLong       = "Message too long"
	msgInvalidFormat = "Invalid request format"
	msgNotConfigured = "AI service not configured. Please contact the site owner."
)

// Options fixes the per-deployment knobs of the pipeline. Callers cannot
// override any of these per request.
type Options struct {
	ModelID       string
	HistoryWindow int
	MaxMessageLen int
	LLMTimeout    time.Duration
	MaxTokens     int32
	Temperature   float32
	TopP          float32
	// DebugInfo attaches upstream failure details to the envelope. Development
	// only; never enabled in production.
	DebugInfo bool
}

// Service runs the guardrail pipeline: sanitize, classify, answer
// deterministically or forward a constrained conversation to the LLM, then
// post-filter the output. Stateless across requests; safe for concurrent use.
type Service struct {
	profile      *business.Profile
	classifier   *Classifier
	responder    *Responder
	client       llm.Client // nil means the generation backend is unconfigured
	systemPrompt string
	opts         Options
	logger       *logging.Logger
	metrics      *metrics.ChatMetrics
}

// NewService builds the pipeline. client may be nil; the service then answers
// every LLM-path request with the not-configured envelope.
func NewService(profile *business.Profile, client llm.Client, opts Options, logger *logging.Logger, m *metrics.ChatMetrics) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if opts.HistoryWindow <= 0 {
		opts.HistoryWindow = 6
	}
	if opts.MaxMessageLen <= 0 {
		opts.MaxMessageLen = 2000
	}
	if opts.LLMTimeout <= 0 {
		opts.LLMTimeout = 30 * time.Second
	}
	return &Service{
		profile:      profile,
		classifier:   NewClassifier(profile),
		responder:    NewResponder(profile),
		client:       client,
		systemPrompt: BuildSystemPrompt(profile),
		opts:         opts,
		logger:       logger,
		metrics:      m,
	}
}

// Respond runs one request through the pipeline and returns the HTTP status
// and envelope. It never returns an error: every failure mode maps to an
// envelope the widget can render.
func (s *Service) Respond(ctx context.Context, req Request) (int, Envelope) {
	result := Sanitize(req.Message, s.opts.MaxMessageLen)
	if !result.Safe {
		s.metrics.ObserveBlocked(result.Reason)
		s.metrics.ObserveRequest("rejected")
		s.logger.Info("chat: input rejected", "reason", result.Reason)
		return http.StatusBadRequest, Envelope{Success: false, Message: rejectionMessage(result.Reason)}
	}

	verdict := s.classifier.Classify(result.Cleaned)
	if intent := Route(verdict); intent != IntentNone {
		s.metrics.ObserveRequest("deterministic_" + string(intent))
		s.logger.Info("chat: deterministic reply", "intent", string(intent))
		return http.StatusOK, Envelope{Success: true, Message: s.responder.Respond(intent)}
	}

	if s.client == nil {
		s.metrics.ObserveRequest("unconfigured")
		s.logger.Error("chat: generation backend not configured")
		return http.StatusServiceUnavailable, Envelope{Success: false, Message: msgNotConfigured}
	}

	messages := Assemble(s.systemPrompt, req.History, result.Cleaned, s.opts.HistoryWindow)

	llmCtx, cancel := context.WithTimeout(ctx, s.opts.LLMTimeout)
	defer cancel()

	start := time.Now()
	resp, err := s.client.Complete(llmCtx, llm.Request{
		Model:       s.opts.ModelID,
		Messages:    messages,
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
		TopP:        s.opts.TopP,
	})
	s.metrics.ObserveLLMLatency(time.Since(start).Seconds())

	if err != nil {
		// Deliberate UX: the widget gets a friendly fallback with the contact
		// block instead of a raw error, so this is 200/success even though the
		// upstream failed. Operators see the cause in logs and, in
		// development, the debug field.
		s.metrics.ObserveRequest("llm_fallback")
		s.logger.Error("chat: llm call failed, serving fallback",
			"error", err,
			"empty_output", errors.Is(err, llm.ErrEmptyOutput),
		)
		env := Envelope{Success: true, Message: s.responder.Fallback()}
		if s.opts.DebugInfo {
			env.Debug = map[string]any{"upstream_error": err.Error()}
		}
		return http.StatusOK, env
	}

	redacted := RedactPrices(resp.Text, s.profile.Phone)
	if redacted.Hits > 0 {
		s.metrics.ObserveRedactions(redacted.Hits)
		s.logger.Warn("chat: redacted price mentions from reply", "hits", redacted.Hits)
	}

	s.metrics.ObserveRequest("llm_success")
	s.logger.Info("chat: llm reply served",
		"turns", len(messages),
		"output_tokens", resp.Usage.OutputTokens,
	)
	return http.StatusOK, Envelope{Success: true, Message: redacted.Text}
}

// Fallback exposes the static degradation reply for the handler's catch-all.
func (s *Service) Fallback() string {
	return s.responder.Fallback()
}

func rejectionMessage(reason string) string {
	switch reason {
	case ReasonEmpty:
		return msgEmptyMessage
	case ReasonTooLong:
		return msgTooLong
	default:
		return msgInvalidFormat
	}
}
