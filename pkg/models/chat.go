package models

import "time"

// Sender values for ConversationMessage
const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// Attachment types
const (
	AttachmentImage    = "image"
	AttachmentDocument = "document"
)

// ConversationMessage represents a single message in a chat conversation.
// Messages are append-only; the engine only ever reads a trailing window.
type ConversationMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"` // "user" or "ai"
	Timestamp time.Time `json:"timestamp"`
}

// Attachment represents a non-text input supplied alongside a chat message.
// The engine treats it as read-only and never stores it.
type Attachment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"` // "image" or "document"
	URL         string `json:"url"`
	MimeType    string `json:"mime_type"`
	TextPreview string `json:"text_preview,omitempty"`
}

// GenerationRequest is the transient input to a single generation call.
// It is constructed fresh per call and never persisted.
type GenerationRequest struct {
	Message string                `json:"message"`
	History []ConversationMessage `json:"history,omitempty"`
}

// Usage carries token accounting when the provider reports it
type Usage struct {
	Tokens int      `json:"tokens"`
	Cost   *float64 `json:"cost,omitempty"`
}

// GenerationResult is the normalized output of a generation call,
// regardless of which provider (or the local fallback) produced it.
type GenerationResult struct {
	Message  string `json:"message"`
	Provider string `json:"provider"`
	Usage    *Usage `json:"usage,omitempty"`
}
