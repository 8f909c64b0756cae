package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/tanaoroshi/masterdata-backend/internal/batch"
	"github.com/tanaoroshi/masterdata-backend/internal/domain"
	"github.com/tanaoroshi/masterdata-backend/internal/http/response"
	"github.com/tanaoroshi/masterdata-backend/internal/integrity"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/logger"
	"github.com/tanaoroshi/masterdata-backend/internal/repos"
	"github.com/tanaoroshi/masterdata-backend/internal/services"
)

type FactoryHandler struct {
	service services.FactoryService
	log     *logger.Logger
}

func NewFactoryHandler(service services.FactoryService, baseLog *logger.Logger) *FactoryHandler {
	return &FactoryHandler{service: service, log: baseLog.With("handler", "FactoryHandler")}
}

func (h *FactoryHandler) List(c *gin.Context) {
	skip, ok := queryInt(c, "skip", defaultSkip)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", defaultLimit)
	if !ok {
		return
	}

	filter := repos.FactoryFilter{
		PreviousFactoryCode: c.Query("previous_factory_code"),
		ProductFactoryCode:  c.Query("product_factory_code"),
		CompanyCode:         c.Query("company_code"),
		Keyword:             c.Query("search_keyword"),
		Skip:                skip,
		Limit:               limit,
	}
	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, response.ListResponse{Items: items, Total: total, Skip: skip, Limit: limit},
		"Factory list retrieved")
}

func (h *FactoryHandler) Create(c *gin.Context) {
	var rec domain.FactoryRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		response.BindError(c, err)
		return
	}
	factory, err := h.service.Create(c.Request.Context(), rec)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, factory, "Factory created")
}

func (h *FactoryHandler) Update(c *gin.Context) {
	var rec domain.FactoryRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		response.BindError(c, err)
		return
	}
	factory, err := h.service.Update(c.Request.Context(), rec)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, factory, "Factory updated")
}

// CreateBatch is the all-at-once insert path: no per-record outcomes, the
// whole call either commits or fails.
func (h *FactoryHandler) CreateBatch(c *gin.Context) {
	var records []domain.FactoryRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		response.BindError(c, err)
		return
	}
	factories, err := h.service.CreateBatch(c.Request.Context(), records)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, factories, "Factories created")
}

func (h *FactoryHandler) CreateMultiple(c *gin.Context) {
	h.executeBatch(c, batch.OpCreate,
		"Factories created", "Errors occurred during batch factory creation")
}

func (h *FactoryHandler) UpdateMultiple(c *gin.Context) {
	h.executeBatch(c, batch.OpUpdate,
		"Factories updated", "Errors occurred during batch factory update")
}

func (h *FactoryHandler) DeleteMultiple(c *gin.Context) {
	h.executeBatch(c, batch.OpDelete,
		"Factories deleted", "Errors occurred during batch factory deletion")
}

func (h *FactoryHandler) executeBatch(c *gin.Context, op batch.Operation, okMessage, errMessage string) {
	var records []domain.FactoryRecord
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

// CheckIntegrity runs the enabled validation rules against one candidate
// record without persisting anything. The raw payload rides along so the
// datatype rule can inspect the caller's actual value types.
func (h *FactoryHandler) CheckIntegrity(c *gin.Context) {
	pkCheck, ok := queryBool(c, "pk_check", true)
	if !ok {
		return
	}
	datatypeCheck, ok := queryBool(c, "datatype_check", true)
	if !ok {
		return
	}
	timeLogicCheck, ok := queryBool(c, "time_logic_check", true)
	if !ok {
		return
	}

	var req struct {
		Record json.RawMessage `json:"record" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(req.Record, &payload); err != nil {
		response.BindError(c, err)
		return
	}
	var rec domain.FactoryRecord
	if err := json.Unmarshal(req.Record, &rec); err != nil {
		// Malformed values are the datatype rule's concern, not a request
		// error; the typed record keeps its zero values.
		h.log.Debug("candidate record did not fully parse", "error", err)
	}

	result, err := h.service.CheckIntegrity(c.Request.Context(), rec, payload, integrity.CheckOptions{
		PKCheck:        pkCheck,
		DatatypeCheck:  datatypeCheck,
		TimeLogicCheck: timeLogicCheck,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, gin.H{
		"error_codes":    result.Codes(),
		"error_messages": result.Messages(),
		"error_data":     result.Data(),
	}, "Integrity check completed")
}
