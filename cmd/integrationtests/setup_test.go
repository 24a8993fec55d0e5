package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campustrade/internal/config"
	"campustrade/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// SetupTestApp wires the full marketplace over the embedded seed data, with
// a short payment delay and a throwaway session directory.
func SetupTestApp(t *testing.T) *server.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := server.NewApp(&config.Config{
		SessionDir:       t.TempDir(),
		DeliveryFee:      5,
		ServiceFee:       2.99,
		PaymentDelay:     20 * time.Millisecond,
		BcryptCost:       bcrypt.MinCost,
		CORSAllowOrigins: []string{"*"},
	})
	require.NoError(t, err)
	return app
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router http.Handler, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// returns the envelope's data (or the whole envelope on errors).
func ExecuteRequestAndParse(t *testing.T, router http.Handler, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if data, ok := resp["data"].(map[string]any); ok && w.Code < 300 {
			return data, w
		}
	}

	return resp, w
}

// ListData is ExecuteRequestAndParse for endpoints whose data is an array
func ListData(t *testing.T, router http.Handler, url string) []any {
	w := ExecuteRequest(t, router, http.MethodGet, url, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].([]any)
	require.True(t, ok, "data should be an array")
	return data
}

func ids(list []any, key string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		out = append(out, v.(map[string]any)[key].(string))
	}
	return out
}
