package chat

import (
	"strings"

	"github.com/creativedrywall/chat-assistant/internal/llm"
)

// Turn is one caller-supplied conversation turn. The content is untrusted
// text; the role tag is trusted structure but clamped at assembly.
type Turn struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Assemble merges the system instruction, a bounded window of prior turns,
// and the new user message into the ordered prompt the LLM consumes.
//
// Ordering is a correctness requirement: [system] + [oldest..newest retained
// history] + [new user turn]. At most window history turns are kept (the most
// recent), blank turns are dropped, and any role other than "assistant"
// collapses to "user" so caller-supplied history can never smuggle a system
// message. Total length is therefore at most window+2.
func Assemble(systemPrompt string, history []Turn, newMessage string, window int) []llm.Message {
	if window < 0 {
		window = 0
	}

	messages := make([]llm.Message, 0, window+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})

	retained := history
	if len(retained) > window {
		retained = retained[len(retained)-window:]
	}
	for _, turn := range retained {
		content := strings.TrimSpace(turn.Content)
		if content == "" {
			continue
		}
		role := llm.RoleUser
		if turn.Role == llm.RoleAssistant {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: content})
	}

	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: newMessage})
	return messages
}
