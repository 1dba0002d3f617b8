package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fittrack/internal/service"
	"fittrack/internal/validate"
)

type UserHandler struct {
	svc *service.UserService
	log *zap.Logger
}

func NewUserHandler(svc *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

func (h *UserHandler) Mount(g *gin.RouterGroup) {
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.GET("/:id/stats", h.stats)
}

func (h *UserHandler) list(c *gin.Context) {
	users, err := h.svc.List()
	if err != nil {
		abortError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) get(c *gin.Context) {
	id, ok := pathID(c, "user not found")
	if !ok {
		return
	}
	u, err := h.svc.Get(id)
	if err != nil {
		abortError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) create(c *gin.Context) {
	var in validate.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortBadJSON(c)
		return
	}
	u, err := h.svc.Create(in)
	if err != nil {
		abortError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *UserHandler) update(c *gin.Context) {
	id, ok := pathID(c, "user not found")
	if !ok {
		return
	}
	var in validate.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortBadJSON(c)
		return
	}
	u, err := h.svc.Update(id, in)
	if err != nil {
		abortError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) delete(c *gin.Context) {
	id, ok := pathID(c, "user not found")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		abortError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) stats(c *gin.Context) {
	id, ok := pathID(c, "user not found")
	if !ok {
		return
	}
	stats, err := h.svc.Stats(id)
	if err != nil {
		abortError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
