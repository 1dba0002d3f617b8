package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fittrack/internal/domain"
	"fittrack/internal/service"
	"fittrack/internal/validate"
)

type ActivityHandler struct {
	svc *service.ActivityService
	log *zap.Logger
}

func NewActivityHandler(svc *service.ActivityService, log *zap.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: log}
}

func (h *ActivityHandler) Mount(g *gin.RouterGroup) {
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/stats/overview", h.overview)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *ActivityHandler) list(c *gin.Context) {
	var f domain.ActivityFilter
	if raw := c.Query("userId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "userId must be an integer"})
			return
		}
		f.UserID = id
	}
	f.Type = c.Query("type")
	f.StartDate = c.Query("startDate")
	f.EndDate = c.Query("endDate")

	activities, err := h.svc.List(f)
	if err != nil {
		abortError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (h *ActivityHandler) get(c *gin.Context) {
	id, ok := pathID(c, "activity not found")
	if !ok {
		return
	}
	a, err := h.svc.Get(id)
	if err != nil {
		abortError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *ActivityHandler) create(c *gin.Context) {
	var in validate.ActivityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortBadJSON(c)
		return
	}
	a, err := h.svc.Create(in)
	if err != nil {
		abortError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *ActivityHandler) update(c *gin.Context) {
	id, ok := pathID(c, "activity not found")
	if !ok {
		return
	}
	var in validate.ActivityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortBadJSON(c)
		return
	}
	a, err := h.svc.Update(id, in)
	if err != nil {
		abortError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *ActivityHandler) delete(c *gin.Context) {
	id, ok := pathID(c, "activity not found")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		abortError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ActivityHandler) overview(c *gin.Context) {
	overview, err := h.svc.Overview()
	if err != nil {
		abortError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
