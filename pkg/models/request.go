package models

// ChatRequest represents the request payload for a plain text chat turn
type ChatRequest struct {
	Message   string                `json:"message" validate:"required"`
	History   []ConversationMessage `json:"history,omitempty" validate:"omitempty,dive"`
	SessionID string                `json:"session_id,omitempty"`
}

// ChatAttachmentsRequest represents a chat turn carrying image/document attachments
type ChatAttachmentsRequest struct {
	Message     string                `json:"message" validate:"required"`
	History     []ConversationMessage `json:"history,omitempty" validate:"omitempty,dive"`
	SessionID   string                `json:"session_id,omitempty"`
	Attachments []Attachment          `json:"attachments" validate:"required,min=1,dive"`
}

// AnalyzeImageRequest represents the request payload for standalone image analysis
type AnalyzeImageRequest struct {
	ImageURL string `json:"image_url" validate:"required"`
	Prompt   string `json:"prompt,omitempty"`
}

// AnalyzeDocumentRequest represents the request payload for standalone document analysis
type AnalyzeDocumentRequest struct {
	Content  string `json:"content" validate:"required"`
	FileName string `json:"file_name" validate:"required"`
	MimeType string `json:"mime_type,omitempty"`
}
