package ingestion

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	storagemocks "github.com/statflow-lab/project-statflow/internal/mocks/storage"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	svc.RegisterRoutes(router)
	return router
}

func TestHandleStartImport_ReturnsRunID(t *testing.T) {
	path := writeCSV(t, "timestamp,type,payment_method,amount,sleep_ms\n"+
		"2026-01-10T08:00:00Z,deposit,visa,100.50,0\n")

	hot := storagemocks.NewHotStore(t)
	hot.EXPECT().EnqueueTransaction(mock.Anything, mock.Anything).Return(nil).Maybe()

	svc := NewService(hot, path)
	router := newTestRouter(svc)

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/import/start", nil)
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusAccepted, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, "started", body["status"])
	require.NotEmpty(t, body["run_id"])

	require.Eventually(t, func() bool { return !svc.Running() }, time.Second, 5*time.Millisecond)
}

func TestHandleStartImport_ConflictWhileRunning(t *testing.T) {
	content := "timestamp,type,payment_method,amount,sleep_ms\n"
	for i := 0; i < 20; i++ {
		content += "2026-01-10T08:00:00Z,deposit,visa,10.00,50\n"
	}
	path := writeCSV(t, content)

	hot := storagemocks.NewHotStore(t)
	hot.EXPECT().EnqueueTransaction(mock.Anything, mock.Anything).Return(nil).Maybe()

	svc := NewService(hot, path)
	router := newTestRouter(svc)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/v1/import/start", nil))
	require.Equal(t, http.StatusAccepted, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/v1/import/start", nil))
	require.Equal(t, http.StatusConflict, second.Code)
	require.Contains(t, second.Body.String(), "import_already_running")

	svc.StopImport()
	require.Eventually(t, func() bool { return !svc.Running() }, time.Second, 5*time.Millisecond)
}

func TestHandleStopImport_NoRunIsHarmless(t *testing.T) {
	hot := storagemocks.NewHotStore(t)
	svc := NewService(hot, "unused.csv")
	router := newTestRouter(svc)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/v1/import/stop", nil))

	require.Equal(t, http.StatusAccepted, resp.Code)
	require.Contains(t, resp.Body.String(), "stopping")
}
