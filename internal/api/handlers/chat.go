package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"disha-utils/internal/ai"
	"disha-utils/internal/config"
	"disha-utils/internal/history"
	"disha-utils/internal/logging"
	"disha-utils/pkg/models"
	"disha-utils/pkg/utils"
)

var chatValidator = validator.New()

// Delay between simulated stream chunks. Streaming is presentational
// only: the response is already complete before chunking starts.
const streamChunkDelay = 30 * time.Millisecond

func requestIDFrom(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}

func loadHistory(c echo.Context, cfg *config.Config, store history.Store, sessionID string, supplied []models.ConversationMessage) []models.ConversationMessage {
	if sessionID == "" || len(supplied) > 0 {
		return supplied
	}

	msgs, err := store.Recent(c.Request().Context(), sessionID, cfg.History.Window)
	if err != nil {
		logging.GetGlobalLogger().Warn("Failed to load session history", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return supplied
	}
	return msgs
}

func recordTurn(c echo.Context, store history.Store, sessionID, userMessage, aiMessage string) {
	if sessionID == "" {
		return
	}

	ctx := c.Request().Context()
	logger := logging.GetGlobalLogger()
	now := time.Now()

	turn := []models.ConversationMessage{
		{ID: utils.GenerateMessageID(), Text: userMessage, Sender: models.SenderUser, Timestamp: now},
		{ID: utils.GenerateMessageID(), Text: aiMessage, Sender: models.SenderAI, Timestamp: now},
	}
	for _, msg := range turn {
		if err := store.Append(ctx, sessionID, msg); err != nil {
			logger.Warn("Failed to persist conversation turn", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
			return
		}
	}
}

// ChatHandler handles POST /api/v1/chat. Plain text chat never fails:
// remote provider errors are absorbed by the engine's local fallback.
func ChatHandler(cfg *config.Config, aiManager *ai.Manager, store history.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestIDFrom(c)
		logger := logging.GetGlobalLogger()
		startTime := time.Now()

		var req models.ChatRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request body: " + err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := chatValidator.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   "Request validation failed: " + err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Processing chat request", map[string]interface{}{
			"request_id":    requestID,
			"session_id":    req.SessionID,
			"history_count": len(req.History),
		})

		msgs := loadHistory(c, cfg, store, req.SessionID, req.History)
		result := aiManager.GenerateResponse(c.Request().Context(), req.Message, msgs)
		recordTurn(c, store, req.SessionID, req.Message, result.Message)

		return c.JSON(http.StatusOK, models.ChatResponse{
			Success:        true,
			Result:         result,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}

// ChatStreamHandler handles POST /api/v1/chat/stream. The full response
// is generated first and then replayed word-by-word as server-sent
// events.
func ChatStreamHandler(cfg *config.Config, aiManager *ai.Manager, store history.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestIDFrom(c)

		var req models.ChatRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request body: " + err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}
		if err := chatValidator.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   "Request validation failed: " + err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		msgs := loadHistory(c, cfg, store, req.SessionID, req.History)
		result := aiManager.GenerateResponse(c.Request().Context(), req.Message, msgs)
		recordTurn(c, store, req.SessionID, req.Message, result.Message)

		resp := c.Response()
		resp.Header().Set(echo.HeaderContentType, "text/event-stream")
		resp.Header().Set("Cache-Control", "no-cache")
		resp.Header().Set("Connection", "keep-alive")
		resp.WriteHeader(http.StatusOK)

		ctx := c.Request().Context()
		for _, word := range strings.Fields(result.Message) {
			select {
			case <-ctx.Done():
				return nil
			default:
			}

			if _, err := fmt.Fprintf(resp, "data: %s\n\n", word); err != nil {
				return nil
			}
			resp.Flush()
			time.Sleep(streamChunkDelay)
		}

		fmt.Fprintf(resp, "event: done\ndata: %s\n\n", result.Provider)
		resp.Flush()
		return nil
	}
}

// ChatAttachmentsHandler handles POST /api/v1/chat/attachments. Unlike
// plain chat, attachment analysis failures surface to the client.
func ChatAttachmentsHandler(cfg *config.Config, aiManager *ai.Manager, store history.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestIDFrom(c)
		logger := logging.GetGlobalLogger()
		startTime := time.Now()

		var req models.ChatAttachmentsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request body: " + err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := chatValidator.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   "Request validation failed: " + err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Processing chat request with attachments", map[string]interface{}{
			"request_id":       requestID,
			"session_id":       req.SessionID,
			"attachment_count": len(req.Attachments),
		})

		msgs := loadHistory(c, cfg, store, req.SessionID, req.History)

		message, err := aiManager.GenerateResponseWithAttachments(c.Request().Context(), req.Message, msgs, req.Attachments)
		if err != nil {
			logger.Error("Attachment analysis failed", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})

			status := http.StatusUnprocessableEntity
			code := "attachment_analysis_failed"
			if errors.Is(err, ai.ErrUnsupportedImageURL) {
				code = "unsupported_image_url"
			}

			return c.JSON(status, models.ErrorResponse{
				Error:     code,
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		recordTurn(c, store, req.SessionID, req.Message, message)

		return c.JSON(http.StatusOK, models.ChatResponse{
			Success: true,
			Result: &models.GenerationResult{
				Message:  message,
				Provider: aiManager.ProviderName(),
			},
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}

// AnalyzeImageHandler handles POST /api/v1/analyze/image
func AnalyzeImageHandler(aiManager *ai.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestIDFrom(c)

		var req models.AnalyzeImageRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request body: " + err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}
		if err := chatValidator.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   "Request validation failed: " + err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		analysis, err := aiManager.AnalyzeImage(c.Request().Context(), req.ImageURL, req.Prompt)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Error:     "image_analysis_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, models.AnalysisResponse{
			Success:   true,
			Analysis:  analysis,
			RequestID: requestID,
		})
	}
}

// AnalyzeDocumentHandler handles POST /api/v1/analyze/document
func AnalyzeDocumentHandler(aiManager *ai.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestIDFrom(c)

		var req models.AnalyzeDocumentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request body: " + err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}
		if err := chatValidator.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   "Request validation failed: " + err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		analysis, err := aiManager.AnalyzeDocument(c.Request().Context(), req.Content, req.FileName, req.MimeType)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Error:     "document_analysis_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, models.AnalysisResponse{
			Success:   true,
			Analysis:  analysis,
			RequestID: requestID,
		})
	}
}
