package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func request(h gin.HandlerFunc, method string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/api/health", nil)
	h(c)
	c.Writer.WriteHeaderNow()
	return w
}

func TestRoot(t *testing.T) {
	w := request(Root, http.MethodGet)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Pharma Insights API","version":"1.0.0"}`, w.Body.String())
}

func TestHealth_Get(t *testing.T) {
	tests := []struct {
		name         string
		mlConfigured bool
	}{
		{"ml relay configured", true},
		{"ml relay not configured", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := request(Health(tt.mlConfigured), http.MethodGet)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

			var resp struct {
				Status          string `json:"status"`
				MLAPIConfigured bool   `json:"ml_api_configured"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "healthy", resp.Status)
			assert.Equal(t, tt.mlConfigured, resp.MLAPIConfigured)
		})
	}
}

func TestHealth_HeadAndOptions(t *testing.T) {
	t.Run("HEAD returns 200 without body", func(t *testing.T) {
		w := request(Health(false), http.MethodHead)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("OPTIONS returns 204", func(t *testing.T) {
		w := request(Health(false), http.MethodOptions)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}
