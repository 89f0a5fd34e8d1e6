package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"disha-utils/internal/ai/processors"
	"disha-utils/internal/ai/providers"
	"disha-utils/internal/config"
	"disha-utils/internal/logging"
	"disha-utils/internal/metrics"
	"disha-utils/pkg/models"
	"disha-utils/pkg/utils"
)

// ErrUnsupportedImageURL marks an image URL whose scheme cannot be
// embedded in a provider request (anything but data: or blob:).
var ErrUnsupportedImageURL = errors.New("unsupported image URL format")

const (
	defaultImagePrompt = "Describe the contents of this image in detail, focusing on anything relevant to careers, education or professional documents."

	// Rough limit keeping document prompts inside token budgets,
	// estimated at 3 chars per token like the provider payloads
	maxDocumentChars = 12000
)

// Augmenter turns non-text attachments into text so the rest of the
// pipeline stays text-only. Analysis errors propagate to the caller;
// this is the one engine path allowed to fail visibly.
type Augmenter struct {
	manager *Manager
	cfg     *config.Config
	client  *http.Client
	cleaner *processors.HTMLCleaner
	logger  logging.Logger
	metrics *metrics.Metrics
}

// NewAugmenter creates a new multimodal augmenter bound to the manager
func NewAugmenter(manager *Manager, cfg *config.Config) *Augmenter {
	return &Augmenter{
		manager: manager,
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.AI.Timeout},
		cleaner: processors.NewHTMLCleaner(),
		logger:  logging.GetGlobalLogger(),
		metrics: metrics.Default(),
	}
}

// AnalyzeImage normalizes the image URL and routes it to a
// vision-capable provider. A non-vision active provider yields a fixed
// explanatory sentence, not an error.
func (g *Augmenter) AnalyzeImage(ctx context.Context, imageURL, prompt string) (string, error) {
	if prompt == "" {
		prompt = defaultImagePrompt
	}

	image, err := g.normalizeImageURL(ctx, imageURL)
	if err != nil {
		g.metrics.RecordAttachmentAnalysis("image", "error")
		return "", err
	}

	provider := g.manager.activeProvider()
	analyzer, ok := provider.(VisionAnalyzer)
	if !ok {
		g.metrics.RecordAttachmentAnalysis("image", "unsupported_provider")
		return fmt.Sprintf("Image analysis is not available with the %s provider. Switch to the google or openai provider to analyze images.", provider.Name()), nil
	}

	analysis, err := analyzer.AnalyzeImage(ctx, image, prompt)
	if err != nil {
		g.metrics.RecordAttachmentAnalysis("image", "error")
		return "", err
	}

	g.metrics.RecordAttachmentAnalysis("image", "ok")
	return analysis, nil
}

// AnalyzeDocument wraps extracted document text with a type-specific
// header and delegates to the standard generation path.
func (g *Augmenter) AnalyzeDocument(ctx context.Context, content, fileName, mimeType string) (string, error) {
	kind := documentKind(fileName, mimeType)

	if kind == "HTML document" {
		text, err := g.cleaner.ExtractText(content)
		if err != nil {
			g.metrics.RecordAttachmentAnalysis("document", "error")
			return "", fmt.Errorf("failed to clean HTML document %s: %w", fileName, err)
		}
		content = text
	}

	prompt := fmt.Sprintf(
		"Analyze the following %s named %q from a career-guidance perspective. Summarize what it contains and point out anything useful for career planning, skills or job applications.\n\n%s",
		kind, fileName, utils.TruncateString(content, maxDocumentChars),
	)

	result := g.manager.GenerateResponse(ctx, prompt, nil)
	g.metrics.RecordAttachmentAnalysis("document", "ok")
	return result.Message, nil
}

// GenerateWithAttachments folds attachment analyses into the outgoing
// message and runs the normal generation path. Images are processed
// before documents, each group in attachment list order.
func (g *Augmenter) GenerateWithAttachments(ctx context.Context, message string, history []models.ConversationMessage, attachments []models.Attachment) (string, error) {
	augmented := message

	for _, att := range attachments {
		if att.Type != models.AttachmentImage {
			continue
		}
		analysis, err := g.AnalyzeImage(ctx, att.URL, "")
		if err != nil {
			return "", fmt.Errorf("failed to analyze image %s: %w", att.Name, err)
		}
		augmented += fmt.Sprintf("\n\nImage Analysis (%s): %s", att.Name, analysis)
	}

	for _, att := range attachments {
		if att.Type != models.AttachmentDocument || att.TextPreview == "" {
			continue
		}
		analysis, err := g.AnalyzeDocument(ctx, att.TextPreview, att.Name, att.MimeType)
		if err != nil {
			return "", fmt.Errorf("failed to analyze document %s: %w", att.Name, err)
		}
		augmented += fmt.Sprintf("\n\nDocument Analysis (%s): %s", att.Name, analysis)
	}

	result := g.manager.GenerateResponse(ctx, augmented, history)
	return result.Message, nil
}

// normalizeImageURL converts a data: or blob: URL into embeddable image
// data. data: URLs are decoded in place; blob: URLs are fetched and
// re-encoded; anything else cannot be embedded without a fetch step and
// is a hard failure.
func (g *Augmenter) normalizeImageURL(ctx context.Context, imageURL string) (*providers.ImageData, error) {
	switch {
	case strings.HasPrefix(imageURL, "data:"):
		return parseDataURL(imageURL)
	case strings.HasPrefix(imageURL, "blob:"):
		return g.fetchAndEncode(ctx, imageURL)
	default:
		scheme := imageURL
		if idx := strings.Index(imageURL, ":"); idx > 0 {
			scheme = imageURL[:idx]
		}
		return nil, fmt.Errorf("%w: %s URLs cannot be embedded in a provider request", ErrUnsupportedImageURL, scheme)
	}
}

func parseDataURL(imageURL string) (*providers.ImageData, error) {
	rest := strings.TrimPrefix(imageURL, "data:")
	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return nil, fmt.Errorf("%w: malformed data URL", ErrUnsupportedImageURL)
	}
	if !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("%w: data URL must be base64 encoded", ErrUnsupportedImageURL)
	}

	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return nil, fmt.Errorf("%w: invalid base64 payload", ErrUnsupportedImageURL)
	}

	mimeType := strings.TrimSuffix(meta, ";base64")
	if mimeType == "" {
		mimeType = "image/png"
	}

	return &providers.ImageData{
		Base64:   payload,
		MimeType: mimeType,
	}, nil
}

func (g *Augmenter) fetchAndEncode(ctx context.Context, imageURL string) (*providers.ImageData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image fetch request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to fetch image: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/png"
	}

	return &providers.ImageData{
		Base64:   base64.StdEncoding.EncodeToString(data),
		MimeType: mimeType,
	}, nil
}

func documentKind(fileName, mimeType string) string {
	lowerName := strings.ToLower(fileName)
	switch {
	case mimeType == "application/pdf" || strings.HasSuffix(lowerName, ".pdf"):
		return "PDF document"
	case mimeType == "application/json" || strings.HasSuffix(lowerName, ".json"):
		return "JSON file"
	case mimeType == "text/html" || strings.HasSuffix(lowerName, ".html"):
		return "HTML document"
	default:
		return "text document"
	}
}
