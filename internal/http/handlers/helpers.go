package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tanaoroshi/masterdata-backend/internal/batch"
	"github.com/tanaoroshi/masterdata-backend/internal/http/response"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

func queryInt(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		response.Error(c, http.StatusBadRequest, "Invalid query parameter: "+name, nil)
		return 0, false
	}
	return v, true
}

func queryBool(c *gin.Context, name string, fallback bool) (bool, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameter: "+name, nil)
		return false, false
	}
	return v, true
}

// respondBatch renders a batch result: all-ok commits answer 200 with the
// full result, any error answers 400 with ok_records emptied, since the
// rollback left nothing persisted.
func respondBatch[E any](c *gin.Context, result *batch.Result[E], okMessage, errMessage string) {
	if result.HasErrors() {
		response.Error(c, http.StatusBadRequest, errMessage, gin.H{
			"ok_records":    []any{},
			"error_records": result.ErrorRecords,
		})
		return
	}
	response.OK(c, result, okMessage)
}
