package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tanaoroshi/masterdata-backend/internal/platform/apierr"
)

func render(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	FromError(c, err)

	var body map[string]any
	if jerr := json.Unmarshal(w.Body.Bytes(), &body); jerr != nil {
		t.Fatalf("response is not JSON: %v\n%s", jerr, w.Body.String())
	}
	return w.Code, body
}

func TestFromErrorRendersMachineCodeAndMessage(t *testing.T) {
	status, body := render(t, apierr.NotFound("Customer not found", nil))

	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if body["message"] != "Customer not found" {
		t.Fatalf("message = %v", body["message"])
	}
	errObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("missing error object: %v", body)
	}
	if errObj["error_code"] != "NotFoundError" {
		t.Fatalf("error_code = %v, want NotFoundError", errObj["error_code"])
	}
}

func TestFromErrorKeepsDetailPayload(t *testing.T) {
	ae := apierr.BadRequest("Invalid factory data", nil)
	ae.Details = map[string]any{"field": "company_code"}

	status, body := render(t, ae)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	errObj := body["error"].(map[string]any)
	details := errObj["details"].(map[string]any)
	if details["field"] != "company_code" {
		t.Fatalf("details = %v", details)
	}
}

func TestFromErrorPlainErrorIsServerFault(t *testing.T) {
	status, body := render(t, errors.New("connection reset"))

	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	if body["message"] != "connection reset" {
		t.Fatalf("message = %v", body["message"])
	}
	if body["error"] != nil {
		t.Fatalf("error = %v, want null for plain errors", body["error"])
	}
}
