package providers

import (
	"strings"

	"disha-utils/pkg/models"
)

// Chat message roles used by chat-completion style APIs
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// History window sizes per wire format. Always a suffix of the full
// history, oldest entries dropped first.
const (
	ChatHistoryWindow        = 10 // OpenAI, Groq
	TranscriptHistoryWindow  = 5  // Anthropic, Google
	HuggingFaceHistoryWindow = 3
)

// ChatMessage is one role-tagged entry in a chat-completions payload
type ChatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// HistoryWindow returns the trailing window of at most n messages,
// preserving chronological order.
func HistoryWindow(history []models.ConversationMessage, n int) []models.ConversationMessage {
	if n <= 0 || len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

func roleForSender(sender string) string {
	if sender == models.SenderAI {
		return RoleAssistant
	}
	return RoleUser
}

// BuildChatMessages converts a system prompt, trimmed history and the new
// user message into the ordered message list chat-completion APIs expect:
// one system entry, then up to ChatHistoryWindow history entries, then the
// new message last.
func BuildChatMessages(systemPrompt string, history []models.ConversationMessage, userMessage string) []ChatMessage {
	window := HistoryWindow(history, ChatHistoryWindow)

	messages := make([]ChatMessage, 0, len(window)+2)
	messages = append(messages, ChatMessage{Role: RoleSystem, Content: systemPrompt})

	for _, msg := range window {
		messages = append(messages, ChatMessage{Role: roleForSender(msg.Sender), Content: msg.Text})
	}

	messages = append(messages, ChatMessage{Role: RoleUser, Content: userMessage})
	return messages
}

// BuildTranscriptPrompt flattens the conversation into a single prompt for
// single-prompt style APIs: system prompt first, then a labeled transcript
// of the trailing history window, then the new message and a trailing
// "Assistant:" cue marking where the model should continue.
func BuildTranscriptPrompt(systemPrompt string, history []models.ConversationMessage, userMessage string, window int) string {
	var b strings.Builder

	if systemPrompt != "" {
		b.WriteString(systemPrompt)
		b.WriteString("\n\n")
	}

	for _, msg := range HistoryWindow(history, window) {
		if msg.Sender == models.SenderAI {
			b.WriteString("Assistant: ")
		} else {
			b.WriteString("User: ")
		}
		b.WriteString(msg.Text)
		b.WriteString("\n")
	}

	b.WriteString("User: ")
	b.WriteString(userMessage)
	b.WriteString("\nAssistant:")
	return b.String()
}
