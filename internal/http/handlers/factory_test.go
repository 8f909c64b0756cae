package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tanaoroshi/masterdata-backend/internal/repos"
	"github.com/tanaoroshi/masterdata-backend/internal/services"
	"github.com/tanaoroshi/masterdata-backend/internal/testutil"
)

func newFactoryTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	log := testutil.NewLogger(t)
	h := NewFactoryHandler(services.NewFactoryService(db, log, repos.NewFactoryRepo(db, log)), log)

	r := gin.New()
	inventory := r.Group("/inventory")
	{
		inventory.GET("/record-list", h.List)
		inventory.POST("/record", h.Create)
		inventory.POST("/record/multiple", h.CreateMultiple)
		inventory.POST("/record/check-integrity", h.CheckIntegrity)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, w.Body.String())
	}
	return w, parsed
}

const factoryBody = `{
	"previous_factory_code": "F001",
	"company_code": "C001",
	"product_factory_code": "P001",
	"start_operation_date": "2024-01-01",
	"end_operation_date": "2024-12-31"
}`

func TestFactoryBatchErrorEnvelope(t *testing.T) {
	r := newFactoryTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/inventory/record", factoryBody)
	if w.Code != http.StatusOK {
		t.Fatalf("seed create status = %d\n%s", w.Code, w.Body.String())
	}

	// Duplicate key inside the batch rolls the whole call back.
	w, body := doJSON(t, r, http.MethodPost, "/inventory/record/multiple", "["+factoryBody+"]")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400\n%s", w.Code, w.Body.String())
	}

	errObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("missing error object: %v", body)
	}
	details, ok := errObj["details"].(map[string]any)
	if !ok {
		t.Fatalf("missing details: %v", errObj)
	}
	okRecords, ok := details["ok_records"].([]any)
	if !ok || len(okRecords) != 0 {
		t.Fatalf("ok_records = %v, want empty list", details["ok_records"])
	}
	errRecords, ok := details["error_records"].([]any)
	if !ok || len(errRecords) != 1 {
		t.Fatalf("error_records = %v, want 1 entry", details["error_records"])
	}
	first := errRecords[0].(map[string]any)
	if first["level"] != "E" {
		t.Fatalf("level = %v, want E", first["level"])
	}
}

func TestFactoryCheckIntegrityReportsConflict(t *testing.T) {
	r := newFactoryTestRouter(t)

	if w, _ := doJSON(t, r, http.MethodPost, "/inventory/record", factoryBody); w.Code != http.StatusOK {
		t.Fatalf("seed create status = %d", w.Code)
	}

	overlapping := `{"record": {
		"previous_factory_code": "F001",
		"company_code": "C001",
		"product_factory_code": "P001",
		"start_operation_date": "2024-06-01",
		"end_operation_date": "2025-06-01"
	}}`
	w, body := doJSON(t, r, http.MethodPost, "/inventory/record/check-integrity", overlapping)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", w.Code, w.Body.String())
	}

	data := body["data"].(map[string]any)
	codes, ok := data["error_codes"].([]any)
	if !ok || len(codes) != 1 {
		t.Fatalf("error_codes = %v, want 1 entry", data["error_codes"])
	}
	if codes[0] != "TIME_LOGIC_CHECK_CONFLICTED" {
		t.Fatalf("code = %v", codes[0])
	}
	messages := data["error_messages"].([]any)
	if len(messages) != len(codes) {
		t.Fatal("error_messages not aligned with error_codes")
	}
}

func TestFactoryCheckIntegrityFlagsDisable(t *testing.T) {
	r := newFactoryTestRouter(t)

	if w, _ := doJSON(t, r, http.MethodPost, "/inventory/record", factoryBody); w.Code != http.StatusOK {
		t.Fatalf("seed create status = %d", w.Code)
	}

	// Same key as the stored row: pk_check would fire, but it is turned off.
	w, body := doJSON(t, r,
		http.MethodPost, "/inventory/record/check-integrity?pk_check=false&time_logic_check=false",
		`{"record": `+factoryBody+`}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d\n%s", w.Code, w.Body.String())
	}
	data := body["data"].(map[string]any)
	if codes := data["error_codes"].([]any); len(codes) != 0 {
		t.Fatalf("error_codes = %v, want none", codes)
	}
}

func TestFactoryListEnvelope(t *testing.T) {
	r := newFactoryTestRouter(t)

	if w, _ := doJSON(t, r, http.MethodPost, "/inventory/record", factoryBody); w.Code != http.StatusOK {
		t.Fatalf("seed create status = %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/inventory/record-list?limit=10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d\n%s", w.Code, w.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	data := body["data"].(map[string]any)
	if data["total"].(float64) != 1 {
		t.Fatalf("total = %v, want 1", data["total"])
	}
	if data["limit"].(float64) != 10 {
		t.Fatalf("limit = %v, want 10", data["limit"])
	}
	items := data["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
}
