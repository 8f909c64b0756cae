package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tanaoroshi/masterdata-backend/internal/repos"
	"github.com/tanaoroshi/masterdata-backend/internal/services"
	"github.com/tanaoroshi/masterdata-backend/internal/testutil"
)

func newCustomerTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	log := testutil.NewLogger(t)
	h := NewCustomerHandler(services.NewCustomerService(db, log, repos.NewCustomerRepo(db, log)), log)

	r := gin.New()
	customers := r.Group("/custom-masters")
	{
		customers.POST("", h.Create)
		customers.GET("/:corporate_cd/:toku_cd/:ty_date_from", h.Get)
	}
	return r
}

const customerBody = `{
	"corporate_cd": "CORP001",
	"toku_cd": "T001",
	"ty_date_from": "2024-04-01",
	"toku_name": "Yamada Trading",
	"crt_corporate_cd": "CORP001",
	"crt_user_id": "tester",
	"crt_pg": "api",
	"upd_corporate_cd": "CORP001",
	"upd_user_id": "tester",
	"upd_pg": "api"
}`

func TestCustomerCreateRespondsCreated(t *testing.T) {
	r := newCustomerTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/custom-masters", customerBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201\n%s", w.Code, w.Body.String())
	}
	if body["code"].(float64) != http.StatusCreated {
		t.Fatalf("envelope code = %v, want 201", body["code"])
	}
	data := body["data"].(map[string]any)
	if data["toku_name"] != "Yamada Trading" {
		t.Fatalf("data = %v", data)
	}
}

func TestCustomerCreateDuplicateConflictEnvelope(t *testing.T) {
	r := newCustomerTestRouter(t)

	if w, _ := doJSON(t, r, http.MethodPost, "/custom-masters", customerBody); w.Code != http.StatusCreated {
		t.Fatalf("seed create status = %d", w.Code)
	}

	w, body := doJSON(t, r, http.MethodPost, "/custom-masters", customerBody)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409\n%s", w.Code, w.Body.String())
	}
	if body["message"] != "Customer already exists" {
		t.Fatalf("message = %v", body["message"])
	}
	errObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("missing error object: %v", body)
	}
	if errObj["error_code"] != "ConflictError" {
		t.Fatalf("error_code = %v, want ConflictError", errObj["error_code"])
	}
}

func TestCustomerGetNotFoundEnvelope(t *testing.T) {
	r := newCustomerTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/custom-masters/CORP001/T001/2024-04-01", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404\n%s", w.Code, w.Body.String())
	}
	errObj := body["error"].(map[string]any)
	if errObj["error_code"] != "NotFoundError" {
		t.Fatalf("error_code = %v, want NotFoundError", errObj["error_code"])
	}
}
