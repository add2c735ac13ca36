package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/festops/scoreboard-service/internal/model"
	"github.com/festops/scoreboard-service/internal/service"
	"github.com/festops/scoreboard-service/pkg/response"
)

type ScoreHandler struct {
	svc service.ScoreService
}

func NewScoreHandler(svc service.ScoreService) *ScoreHandler {
	return &ScoreHandler{svc: svc}
}

func (h *ScoreHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/activities/:activity_id")
	{
		// Cricket
		g.POST("/innings", h.addInnings)
		g.DELETE("/innings/:index", h.deleteInnings)
		g.POST("/balls", h.addBall)

		// Football
		g.POST("/goals", h.addFootballEvent)

		// Basketball
		g.POST("/baskets", h.addBasket)

		// Generic points
		g.POST("/points", h.adjustPoints)

		// Viewer reads
		g.GET("/scoreboard", h.scoreboard)
		g.GET("/leaders", h.leaders)
	}
}

type addInningsRequest struct {
	BattingTeam string `json:"battingTeam"`
	BowlingTeam string `json:"bowlingTeam"`
}

func (h *ScoreHandler) addInnings(c *gin.Context) {
	// An empty body is allowed; sides swap automatically after the
	// first innings.
	var req addInningsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	err := h.svc.AddInnings(c.Request.Context(), c.Param("activity_id"), req.BattingTeam, req.BowlingTeam)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *ScoreHandler) deleteInnings(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	if err := h.svc.DeleteInnings(c.Request.Context(), c.Param("activity_id"), idx); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type addBallRequest struct {
	InningsIndex int    `json:"inningsIndex"`
	BowlerID     string `json:"bowlerId"`
	BatsmanID    string `json:"batsmanId"`
	Runs         int    `json:"runs"`
	Type         string `json:"type"`
}

func (h *ScoreHandler) addBall(c *gin.Context) {
	var req addBallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	in := service.BallInput{
		InningsIndex: req.InningsIndex,
		BowlerID:     req.BowlerID,
		BatsmanID:    req.BatsmanID,
		Runs:         req.Runs,
		Type:         model.BallType(req.Type),
	}
	if err := h.svc.AddBall(c.Request.Context(), c.Param("activity_id"), in); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

type footballEventRequest struct {
	TeamID   string `json:"teamId"`
	PlayerID string `json:"playerId"`
	Kind     string `json:"kind"`
}

func (h *ScoreHandler) addFootballEvent(c *gin.Context) {
	var req footballEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	in := service.FootballEventInput{
		TeamID:   req.TeamID,
		PlayerID: req.PlayerID,
		Kind:     service.FootballEventKind(req.Kind),
	}
	if in.Kind == "" {
		in.Kind = service.EventGoal
	}
	if err := h.svc.AddFootballEvent(c.Request.Context(), c.Param("activity_id"), in); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

type addBasketRequest struct {
	TeamID   string `json:"teamId"`
	PlayerID string `json:"playerId"`
	Points   int    `json:"points"`
}

func (h *ScoreHandler) addBasket(c *gin.Context) {
	var req addBasketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	err := h.svc.AddBasket(c.Request.Context(), c.Param("activity_id"), req.TeamID, req.PlayerID, req.Points)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

type adjustPointsRequest struct {
	TeamID string `json:"teamId"`
	Delta  int    `json:"delta"`
}

func (h *ScoreHandler) adjustPoints(c *gin.Context) {
	var req adjustPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	err := h.svc.AdjustPoints(c.Request.Context(), c.Param("activity_id"), req.TeamID, req.Delta)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *ScoreHandler) scoreboard(c *gin.Context) {
	board, err := h.svc.Scoreboard(c.Request.Context(), c.Param("activity_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, board)
}

func (h *ScoreHandler) leaders(c *gin.Context) {
	n, _ := strconv.Atoi(c.Query("n"))
	out, err := h.svc.Leaders(c.Request.Context(), c.Param("activity_id"), n)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}
