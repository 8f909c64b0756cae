package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tanaoroshi/masterdata-backend/internal/batch"
	"github.com/tanaoroshi/masterdata-backend/internal/domain"
	"github.com/tanaoroshi/masterdata-backend/internal/http/response"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/logger"
	"github.com/tanaoroshi/masterdata-backend/internal/repos"
	"github.com/tanaoroshi/masterdata-backend/internal/services"
)

type UserHandler struct {
	service services.UserService
	log     *logger.Logger
}

func NewUserHandler(service services.UserService, baseLog *logger.Logger) *UserHandler {
	return &UserHandler{service: service, log: baseLog.With("handler", "UserHandler")}
}

func (h *UserHandler) List(c *gin.Context) {
	skip, ok := queryInt(c, "skip", defaultSkip)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", defaultLimit)
	if !ok {
		return
	}

	filter := repos.UserFilter{
		Keyword: c.Query("search_keyword"),
		Skip:    skip,
		Limit:   limit,
	}
	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, response.ListResponse{Items: items, Total: total, Skip: skip, Limit: limit},
		"User list retrieved")
}

func (h *UserHandler) Create(c *gin.Context) {
	var rec domain.UserRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		response.BindError(c, err)
		return
	}
	user, err := h.service.Create(c.Request.Context(), rec)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, user, "User created")
}

func (h *UserHandler) Update(c *gin.Context) {
	var rec domain.UserRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		response.BindError(c, err)
		return
	}
	user, err := h.service.Update(c.Request.Context(), rec)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, user, "User updated")
}

func (h *UserHandler) CreateMultiple(c *gin.Context) {
	h.executeBatch(c, batch.OpCreate,
		"Users created", "Errors occurred during batch user creation")
}

func (h *UserHandler) UpdateMultiple(c *gin.Context) {
	h.executeBatch(c, batch.OpUpdate,
		"Users updated", "Errors occurred during batch user update")
}

func (h *UserHandler) DeleteMultiple(c *gin.Context) {
	h.executeBatch(c, batch.OpDelete,
		"Users deleted", "Errors occurred during batch user deletion")
}

func (h *UserHandler) executeBatch(c *gin.Context, op batch.Operation, okMessage, errMessage string) {
	var records []domain.UserRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		response.BindError(c, err)
		return
	}
	result, err := h.service.ExecuteBatch(c.Request.Context(), op, records)
	if err != nil {
		response.FromError(c, err)
		return
	}
	respondBatch(c, result, okMessage, errMessage)
}
