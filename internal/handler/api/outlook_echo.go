package api

import (
	"net/http"

	"Candl/internal/domain/models"
	drepo "Candl/internal/domain/repository"
	domsvc "Candl/internal/domain/service"
	"Candl/internal/usecase"
	xhttp "Candl/pkg/http"
	xlogger "Candl/pkg/logger"

	"github.com/labstack/echo/v4"
)

// OutlookEchoHandler exposes the consensus pipeline and its collaborators
// over HTTP.
type OutlookEchoHandler struct {
	logger    *xlogger.Logger
	outlook   *usecase.OutlookBuilder
	sentiment domsvc.SentimentAnalyzer
	ratios    domsvc.RatioProvider
	metrics   drepo.Metrics
}

func NewOutlookEchoHandler(logger *xlogger.Logger, outlook *usecase.OutlookBuilder, sentiment domsvc.SentimentAnalyzer, ratios domsvc.RatioProvider, metrics drepo.Metrics) *OutlookEchoHandler {
	return &OutlookEchoHandler{logger: logger, outlook: outlook, sentiment: sentiment, ratios: ratios, metrics: metrics}
}

func (h *OutlookEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/consensus", h.Consensus)
	g.GET("/consensus", h.Hint)
	g.POST("/sentiment", h.Sentiment)
	g.POST("/ratios", h.Ratios)
}

func (h *OutlookEchoHandler) Consensus(c echo.Context) error {
	h.metrics.RecordRequest("consensus")
	req := &models.OutlookRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.ValidationErrorResponse(c, verr)
	}

	res, err := h.outlook.Build(c.Request().Context(), req.Symbol, req.Texts)
	if err != nil {
		h.logger.Error("outlook usecase error", xlogger.String("symbol", req.Symbol), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

// Hint answers GET probes with usage guidance, matching what API consumers
// already expect from this route.
func (h *OutlookEchoHandler) Hint(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok":   true,
		"hint": "Use POST with JSON. Example: { texts: [] } or { symbol: 'AAPL' }",
	})
}

func (h *OutlookEchoHandler) Sentiment(c echo.Context) error {
	h.metrics.RecordRequest("sentiment")
	req := &models.SentimentRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.ValidationErrorResponse(c, verr)
	}

	report, err := h.sentiment.Analyze(c.Request().Context(), req.Texts)
	if err != nil {
		h.logger.Error("sentiment usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, report)
}

func (h *OutlookEchoHandler) Ratios(c echo.Context) error {
	h.metrics.RecordRequest("ratios")
	req := &models.RatiosRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.ValidationErrorResponse(c, verr)
	}

	res, err := h.ratios.Ratios(c.Request().Context(), req.Symbol)
	if err != nil {
		h.logger.Error("ratios usecase error", xlogger.String("symbol", req.Symbol), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}
