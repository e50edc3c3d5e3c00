package api

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pulse/internal/dashboard"
	"pulse/internal/logbook"
	"pulse/internal/model"
	"pulse/internal/storage"
	"pulse/internal/stt"
)

// Analyzer produces a structured sentiment analysis from transcript text.
type Analyzer interface {
	AnalyzeTranscript(ctx context.Context, transcript string) (*model.SentimentAnalysis, error)
}

// Responder generates the coach reply from the transcript and its analysis.
type Responder interface {
	GenerateResponse(ctx context.Context, transcript string, analysis *model.SentimentAnalysis) (string, error)
}

// Handler sequences the pipeline stages for one request. All collaborators
// are constructed at startup and injected here, so tests can substitute
// fakes for the external services.
type Handler struct {
	store      *storage.Store
	stt        stt.Provider
	analyzer   Analyzer
	responder  Responder
	logbook    *logbook.Logbook
	dashboards dashboard.Provider
}

func NewHandler(store *storage.Store, provider stt.Provider, analyzer Analyzer, responder Responder, lb *logbook.Logbook, dashboards dashboard.Provider) *Handler {
	return &Handler{
		store:      store,
		stt:        provider,
		analyzer:   analyzer,
		responder:  responder,
		logbook:    lb,
		dashboards: dashboards,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	// Health check
	r.GET("/health", h.healthCheck)

	// Stored audio is served statically, without access control
	r.Static("/uploads", h.store.Dir())

	api := r.Group("/api")
	{
		api.POST("/analyze", h.analyzeVoice)
		api.GET("/conversations", h.getConversations)
		api.GET("/relationships", h.listRelationships)
		api.GET("/relationships/:relationship_id", h.getRelationshipDashboard)
	}
}

// healthCheck returns server health status
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "pulse-backend",
	})
}

// analyzeVoice runs the full pipeline for one uploaded reflection:
// store -> transcribe -> analyze -> generate response -> log. Stages run
// strictly in sequence and any failure short-circuits the rest. The error
// surface is deliberately coarse: stage-specific kinds go to the server log
// only, the caller sees a generic status.
func (h *Handler) analyzeVoice(c *gin.Context) {
	file, err := c.FormFile("audio")
	if err != nil {
		c.String(http.StatusBadRequest, "No audio file uploaded")
		return
	}

	src, err := file.Open()
	if err != nil {
		log.Printf("[Analyze] Failed to open upload: %v", err)
		c.String(http.StatusInternalServerError, "Analysis failed")
		return
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		log.Printf("[Analyze] Failed to read upload: %v", err)
		c.String(http.StatusInternalServerError, "Analysis failed")
		return
	}

	ctx := c.Request.Context()

	saved, err := h.store.SaveAudio(data, file.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("[Analyze] Storage error: %v", err)
		c.String(http.StatusInternalServerError, "Analysis failed")
		return
	}
	log.Printf("[Analyze] Stored upload %s (%d bytes)", saved.ID, saved.Size)

	result, err := h.stt.Transcribe(ctx, stt.Audio{URL: saved.Locator, Path: saved.Path})
	if err != nil {
		log.Printf("[Analyze] Transcription error (provider: %s): %v", h.stt.Name(), err)
		c.String(http.StatusInternalServerError, "Analysis failed")
		return
	}

	analysis, err := h.analyzer.AnalyzeTranscript(ctx, result.Transcript)
	if err != nil {
		log.Printf("[Analyze] Analysis error: %v", err)
		c.String(http.StatusInternalServerError, "Analysis failed")
		return
	}

	reply, err := h.responder.GenerateResponse(ctx, result.Transcript, analysis)
	if err != nil {
		log.Printf("[Analyze] Response generation error: %v", err)
		c.String(http.StatusInternalServerError, "Analysis failed")
		return
	}

	rec := model.ConversationRecord{
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Transcript: result.Transcript,
		Analysis:   *analysis,
		AIResponse: reply,
	}
	// The user-facing exchange is already complete at this point; a log
	// failure is surfaced as a warning, never as a failed request.
	if err := h.logbook.Append(rec); err != nil {
		log.Printf("[Analyze] Warning: failed to append conversation record: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"transcript": result.Transcript,
		"analysis":   analysis,
		"aiResponse": reply,
	})
}
