package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/festops/scoreboard-service/internal/model"
	"github.com/festops/scoreboard-service/internal/repository"
	"github.com/festops/scoreboard-service/internal/service"
	"github.com/festops/scoreboard-service/pkg/response"
)

type ActivityHandler struct {
	svc service.ActivityService
}

func NewActivityHandler(svc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

func (h *ActivityHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/activities")
	{
		g.POST("", h.create)
		g.GET("", h.list)
		// Stable wildcard name (activity_id) so nested score routes can
		// reuse it without Gin conflicts.
		g.GET("/:activity_id", h.getByID)
		g.DELETE("/:activity_id", h.delete)
		g.POST("/:activity_id/conclude", h.conclude)

		g.POST("/:activity_id/teams", h.addTeam)
		g.PATCH("/:activity_id/teams/:team_id", h.renameTeam)
		g.POST("/:activity_id/players", h.addPlayer)
	}
}

type createActivityRequest struct {
	Name      string     `json:"name"`
	Type      int        `json:"type"`
	StartTime *time.Time `json:"startTime"`
	TeamNames []string   `json:"teamNames"`
}

func (h *ActivityHandler) create(c *gin.Context) {
	var req createActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	in := service.CreateActivityInput{
		Name:      req.Name,
		Type:      model.ActivityType(req.Type),
		TeamNames: req.TeamNames,
	}
	if req.StartTime != nil {
		in.StartTime = *req.StartTime
	}
	a, err := h.svc.CreateActivity(c.Request.Context(), in)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, a)
}

func (h *ActivityHandler) getByID(c *gin.Context) {
	a, err := h.svc.GetActivity(c.Request.Context(), c.Param("activity_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, a)
}

func (h *ActivityHandler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	res, err := h.svc.ListActivities(c.Request.Context(), repository.Page{Limit: limit, Offset: offset})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *ActivityHandler) delete(c *gin.Context) {
	if err := h.svc.DeleteActivity(c.Request.Context(), c.Param("activity_id")); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type concludeRequest struct {
	EndTime *time.Time `json:"endTime"`
}

func (h *ActivityHandler) conclude(c *gin.Context) {
	// An empty body concludes at the current time.
	var req concludeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	var end time.Time
	if req.EndTime != nil {
		end = *req.EndTime
	}
	a, err := h.svc.ConcludeActivity(c.Request.Context(), c.Param("activity_id"), end)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, a)
}

type addTeamRequest struct {
	Name string `json:"name"`
}

func (h *ActivityHandler) addTeam(c *gin.Context) {
	var req addTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	t, err := h.svc.AddTeam(c.Request.Context(), c.Param("activity_id"), req.Name)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, t)
}

func (h *ActivityHandler) renameTeam(c *gin.Context) {
	var req addTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	t, err := h.svc.RenameTeam(c.Request.Context(), c.Param("activity_id"), c.Param("team_id"), req.Name)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, t)
}

func (h *ActivityHandler) addPlayer(c *gin.Context) {
	var p model.Player
	if err := c.ShouldBindJSON(&p); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	if err := h.svc.AddPlayer(c.Request.Context(), c.Param("activity_id"), p); err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, p)
}
