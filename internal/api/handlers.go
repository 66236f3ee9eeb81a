package api

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/texttrace/internal/chart"
	"github.com/spacesedan/texttrace/internal/models"
	"github.com/spacesedan/texttrace/internal/monitoring"
)

type TextAnalyzer interface {
	Analyze(ctx context.Context, text string) (*models.AnalysisResult, error)
}

type HealthReporter interface {
	Status() monitoring.HealthStatus
}

type Handler struct {
	analyzer      TextAnalyzer
	health        HealthReporter
	maxInputChars int
}

func NewHandler(analyzer TextAnalyzer, health HealthReporter, maxInputChars int) *Handler {
	return &Handler{analyzer: analyzer, health: health, maxInputChars: maxInputChars}
}

type pageData struct {
	Text          string
	Result        *models.AnalysisResult
	InputHTML     template.HTML
	Chart         chart.BarChart
	Error         string
	MaxInputChars int
}

type analyzeRequest struct {
	Text string `json:"text" form:"text"`
}

func (h *Handler) IndexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData{MaxInputChars: h.maxInputChars})
}

// AnalyzePage handles the form's Analyze button and renders the three result
// columns.
func (h *Handler) AnalyzePage(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "index.html", pageData{
			Error:         "Could not read the submitted form.",
			MaxInputChars: h.maxInputChars,
		})
		return
	}

	data := pageData{Text: req.Text, MaxInputChars: h.maxInputChars}
	result, err := h.analyzer.Analyze(c.Request.Context(), req.Text)
	if err != nil {
		status, _, message := classifyError(err)
		c.Error(err)
		data.Error = message
		c.HTML(status, "index.html", data)
		return
	}

	data.Result = result
	data.InputHTML = renderMarkdown(result.Text)
	data.Chart = chart.TopWords(result.TopWords)
	c.HTML(http.StatusOK, "index.html", data)
}

func (h *Handler) AnalyzeJSON(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidInput, "request body must be JSON with a text field")
		return
	}

	result, err := h.analyzer.Analyze(c.Request.Context(), req.Text)
	if err != nil {
		status, code, message := classifyError(err)
		if status >= http.StatusInternalServerError {
			slog.Error("[API] Analysis failed", slog.String("error", err.Error()))
		}
		c.Error(err)
		respondError(c, status, code, message)
		return
	}
	respondSuccess(c, result)
}

func (h *Handler) Health(c *gin.Context) {
	status := h.health.Status()
	code := http.StatusOK
	if !status.Ready {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
