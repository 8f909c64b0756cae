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

type CustomerHandler struct {
	service services.CustomerService
	log     *logger.Logger
}

func NewCustomerHandler(service services.CustomerService, baseLog *logger.Logger) *CustomerHandler {
	return &CustomerHandler{service: service, log: baseLog.With("handler", "CustomerHandler")}
}

func (h *CustomerHandler) List(c *gin.Context) {
	skip, ok := queryInt(c, "skip", defaultSkip)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", defaultLimit)
	if !ok {
		return
	}

	filter := repos.CustomerFilter{
		CorporateCd: c.Query("corporate_cd"),
		TokuCd:      c.Query("toku_cd"),
		TokuName:    c.Query("toku_name"),
		Skip:        skip,
		Limit:       limit,
	}
	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, response.ListResponse{Items: items, Total: total, Skip: skip, Limit: limit},
		"Customer list retrieved")
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var rec domain.CustomerRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		response.BindError(c, err)
		return
	}
	customer, err := h.service.Create(c.Request.Context(), rec)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, customer, "Customer created")
}

func (h *CustomerHandler) Get(c *gin.Context) {
	key, ok := h.pathKey(c)
	if !ok {
		return
	}
	customer, err := h.service.Get(c.Request.Context(), key)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, customer, "Customer retrieved")
}

func (h *CustomerHandler) Update(c *gin.Context) {
	key, ok := h.pathKey(c)
	if !ok {
		return
	}
	var upd domain.CustomerUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		response.BindError(c, err)
		return
	}
	customer, err := h.service.Update(c.Request.Context(), key, upd)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, customer, "Customer updated")
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	key, ok := h.pathKey(c)
	if !ok {
		return
	}
	if _, err := h.service.Delete(c.Request.Context(), key); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil, "Customer deleted")
}

func (h *CustomerHandler) CreateMultiple(c *gin.Context) {
	h.executeBatch(c, batch.OpCreate,
		"Customers created", "Errors occurred during batch customer creation")
}

func (h *CustomerHandler) UpdateMultiple(c *gin.Context) {
	h.executeBatch(c, batch.OpUpdate,
		"Customers updated", "Errors occurred during batch customer update")
}

func (h *CustomerHandler) DeleteMultiple(c *gin.Context) {
	h.executeBatch(c, batch.OpDelete,
		"Customers deleted", "Errors occurred during batch customer deletion")
}

func (h *CustomerHandler) executeBatch(c *gin.Context, op batch.Operation, okMessage, errMessage string) {
	var records []domain.CustomerRecord
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

func (h *CustomerHandler) pathKey(c *gin.Context) (domain.CustomerKey, bool) {
	from, err := domain.ParseDate(c.Param("ty_date_from"))
	if err != nil {
		response.Error(c, 400, "Invalid ty_date_from: expected YYYY-MM-DD", nil)
		return domain.CustomerKey{}, false
	}
	return domain.CustomerKey{
		CorporateCd: c.Param("corporate_cd"),
		TokuCd:      c.Param("toku_cd"),
		TyDateFrom:  from,
	}, true
}
