package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jnederlo/linecruncher/internal/config"
	"github.com/jnederlo/linecruncher/internal/genetic"
	"github.com/jnederlo/linecruncher/internal/roster"
	"github.com/jnederlo/linecruncher/internal/websocket"
)

// OptimizeRequest is the JSON body accepted by the optimize endpoint. Zero
// search settings fall back to the server configuration.
type OptimizeRequest struct {
	Players         []roster.Player `json:"players" binding:"required"`
	NumLineups      int             `json:"num_lineups"`
	DurationSeconds int             `json:"duration_seconds"`
	SalaryCap       int             `json:"salary_cap"`
}

// OptimizeResponse carries the generated lineups and run metadata.
type OptimizeResponse struct {
	Lineups   []LineupResponse `json:"lineups"`
	Rounds    int              `json:"rounds"`
	ElapsedMs int64            `json:"elapsed_ms"`
	Summary   genetic.Summary  `json:"summary"`
}

// LineupResponse is a lineup flattened for API consumers: player names in
// slot order plus the validated scalars.
type LineupResponse struct {
	ID          string   `json:"id"`
	Slots       []string `json:"slots"`
	Players     []string `json:"players"`
	TotalSalary int      `json:"total_salary"`
	Projection  float64  `json:"projection"`
}

// OptimizationHandler handles lineup search endpoints
type OptimizationHandler struct {
	config *config.Config
	hub    *websocket.Hub
	logger *logrus.Logger
}

// NewOptimizationHandler creates a new optimization handler
func NewOptimizationHandler(cfg *config.Config, hub *websocket.Hub, logger *logrus.Logger) *OptimizationHandler {
	return &OptimizationHandler{
		config: cfg,
		hub:    hub,
		logger: logger,
	}
}

// Optimize runs the evolutionary search over the posted player pool
func (h *OptimizationHandler) Optimize(c *gin.Context) {
	var req OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
			"details": gin.H{
				"validation_error": err.Error(),
			},
		})
		return
	}

	numLineups := req.NumLineups
	if numLineups <= 0 {
		numLineups = h.config.NumLineups
	}
	durationSeconds := req.DurationSeconds
	if durationSeconds <= 0 {
		durationSeconds = h.config.DurationSeconds
	}
	salaryCap := req.SalaryCap
	if salaryCap <= 0 {
		salaryCap = h.config.SalaryCap
	}

	pool := roster.NewPool(req.Players)
	engine := genetic.NewEngine(pool, genetic.Options{
		NumLineups:  numLineups,
		Duration:    time.Duration(durationSeconds) * time.Second,
		SalaryCap:   salaryCap,
		MinTeams:    h.config.MinTeams,
		MaxAttempts: h.config.MaxAttempts,
	})
	if h.hub != nil {
		engine.OnProgress(h.hub.BroadcastProgress)
	}

	result, err := engine.Run(c.Request.Context())
	if err != nil {
		if errors.Is(err, genetic.ErrNoFeasibleLineup) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "No feasible lineup for the posted player pool",
				"code":  "NO_FEASIBLE_LINEUP",
			})
			return
		}
		h.logger.WithError(err).Error("Optimization failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Optimization failed",
			"code":  "OPTIMIZATION_ERROR",
		})
		return
	}

	response := OptimizeResponse{
		Lineups:   make([]LineupResponse, 0, len(result.Lineups)),
		Rounds:    result.Rounds,
		ElapsedMs: result.Elapsed.Milliseconds(),
		Summary:   result.Summary,
	}
	for _, lineup := range result.Lineups {
		response.Lineups = append(response.Lineups, LineupResponse{
			ID:          lineup.ID,
			Slots:       genetic.SlotNames(),
			Players:     lineup.Names(),
			TotalSalary: lineup.TotalSalary,
			Projection:  lineup.Projection,
		})
	}

	c.JSON(http.StatusOK, response)
}
