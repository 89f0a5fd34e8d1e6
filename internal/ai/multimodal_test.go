package ai

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disha-utils/internal/config"
	"disha-utils/pkg/models"
)

func localManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(managerTestConfig(config.ProviderLocal))
	require.NoError(t, m.Start())
	return m
}

func pngDataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("not a real png"))
}

func TestAnalyzeImageRejectsUnsupportedScheme(t *testing.T) {
	m := localManager(t)

	for _, url := range []string{
		"https://example.com/photo.png",
		"http://example.com/photo.png",
		"file:///tmp/photo.png",
		"ftp://example.com/photo.png",
	} {
		_, err := m.AnalyzeImage(context.Background(), url, "")
		require.ErrorIs(t, err, ErrUnsupportedImageURL, "url %q", url)
		assert.Contains(t, err.Error(), "unsupported image URL format")
	}
}

func TestAnalyzeImageRejectsMalformedDataURL(t *testing.T) {
	m := localManager(t)

	cases := map[string]string{
		"no comma":       "data:image/png;base64",
		"not base64":     "data:image/png;base64,%%%not-base64%%%",
		"missing marker": "data:image/png,rawbytes",
	}

	for name, url := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := m.AnalyzeImage(context.Background(), url, "")
			assert.ErrorIs(t, err, ErrUnsupportedImageURL)
		})
	}
}

func TestAnalyzeImageNonVisionProvider(t *testing.T) {
	// The local advisor cannot see images; the result explains that
	// instead of failing.
	m := localManager(t)

	analysis, err := m.AnalyzeImage(context.Background(), pngDataURL(), "what is this?")

	require.NoError(t, err)
	assert.Contains(t, analysis, "Image analysis is not available")
	assert.Contains(t, analysis, "local")
}

func TestParseDataURLDefaultsMimeType(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("img"))

	image, err := parseDataURL("data:;base64," + payload)
	require.NoError(t, err)
	assert.Equal(t, "image/png", image.MimeType)
	assert.Equal(t, payload, image.Base64)

	image, err = parseDataURL("data:image/jpeg;base64," + payload)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", image.MimeType)
}

func TestAnalyzeDocument(t *testing.T) {
	m := localManager(t)

	analysis, err := m.AnalyzeDocument(context.Background(), "Objective: become a data analyst. Skills: SQL, Excel.", "resume.txt", "text/plain")

	require.NoError(t, err)
	assert.NotEmpty(t, analysis)
}

func TestAnalyzeDocumentCleansHTML(t *testing.T) {
	m := localManager(t)

	html := `<html><head><script>alert(1)</script></head><body><p>My career goals</p></body></html>`
	analysis, err := m.AnalyzeDocument(context.Background(), html, "goals.html", "text/html")

	require.NoError(t, err)
	assert.NotEmpty(t, analysis)
}

func TestGenerateWithAttachmentsEmptyMatchesPlainChat(t *testing.T) {
	m := localManager(t)

	plain := m.GenerateResponse(context.Background(), "which industries are hiring?", nil)
	augmented, err := m.GenerateResponseWithAttachments(context.Background(), "which industries are hiring?", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, plain.Message, augmented)
}

func TestGenerateWithAttachmentsImageErrorPropagates(t *testing.T) {
	m := localManager(t)

	attachments := []models.Attachment{{
		ID:   "att-1",
		Name: "photo.png",
		Type: models.AttachmentImage,
		URL:  "https://example.com/photo.png",
	}}

	_, err := m.GenerateResponseWithAttachments(context.Background(), "look at this", nil, attachments)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedImageURL)
	assert.Contains(t, err.Error(), "photo.png")
}

func TestGenerateWithAttachmentsDocument(t *testing.T) {
	m := localManager(t)

	attachments := []models.Attachment{{
		ID:          "att-1",
		Name:        "notes.txt",
		Type:        models.AttachmentDocument,
		MimeType:    "text/plain",
		TextPreview: "I have five years of teaching experience.",
	}}

	message, err := m.GenerateResponseWithAttachments(context.Background(), "what should I do next?", nil, attachments)

	require.NoError(t, err)
	assert.NotEmpty(t, message)
}

func TestDocumentKind(t *testing.T) {
	cases := []struct {
		fileName string
		mimeType string
		want     string
	}{
		{"resume.pdf", "application/pdf", "PDF document"},
		{"data.json", "", "JSON file"},
		{"page.html", "text/html", "HTML document"},
		{"notes.txt", "text/plain", "text document"},
		{"unknown.bin", "", "text document"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, documentKind(tc.fileName, tc.mimeType), "file %s", tc.fileName)
	}
}
