package session

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"craft-planner/core/catalog"
	"craft-planner/core/resolver"
	coresession "craft-planner/core/session"
	"craft-planner/core/storage/mocks"
	"craft-planner/feature/calculator"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCalculator() *calculator.Service {
	loader := catalog.NewLoader(catalog.Config{Source: catalog.SourceBuiltin}, nil, "")
	return calculator.NewService(loader, resolver.Config{MaxDepth: 64}, zap.NewNop())
}

func setupTestApp(t *testing.T, client *mocks.Client) *fiber.App {
	var snapshots *coresession.Snapshots
	if client != nil {
		snapshots = coresession.NewSnapshots(client, "test-bucket")
	}
	feature := NewFeature(coresession.NewMemoryStore(), snapshots, newCalculator(), zap.NewNop())
	require.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func call(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func createSession(t *testing.T, app *fiber.App) string {
	status, raw := call(t, app, "POST", "/sessions", "")
	require.Equal(t, fiber.StatusCreated, status)
	var s coresession.Session
	require.NoError(t, json.Unmarshal(raw, &s))
	require.NotEmpty(t, s.ID)
	return s.ID
}

func TestSessionLifecycle(t *testing.T) {
	app := setupTestApp(t, nil)
	id := createSession(t, app)

	status, raw := call(t, app, "PUT", "/sessions/"+id+"/pool", `{"items": "Log, 1"}`)
	require.Equal(t, fiber.StatusOK, status)
	var s coresession.Session
	require.NoError(t, json.Unmarshal(raw, &s))
	assert.Equal(t, 1.0, s.Pool.Get("Log"))

	status, raw = call(t, app, "PUT", "/sessions/"+id+"/pool", `{"pool": {"Planks": 2}, "mode": "add"}`)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(raw, &s))
	assert.Equal(t, 1.0, s.Pool.Get("Log"))
	assert.Equal(t, 2.0, s.Pool.Get("Planks"))

	// 2 planks make 4 sticks, so the stored log is left alone.
	status, _ = call(t, app, "POST", "/sessions/"+id+"/calculate", `{"items": "Stick, 4", "pool": {"Log": 100}}`)
	require.Equal(t, fiber.StatusOK, status)

	status, raw = call(t, app, "GET", "/sessions/"+id, "")
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(raw, &s))
	assert.Equal(t, map[string]float64{"Log": 1, "Stick": 4}, map[string]float64(s.Pool.Map()))

	status, _ = call(t, app, "DELETE", "/sessions/"+id, "")
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = call(t, app, "GET", "/sessions/"+id, "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestSessionErrors(t *testing.T) {
	app := setupTestApp(t, nil)
	id := createSession(t, app)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{"Unknown session", "GET", "/sessions/missing", "", fiber.StatusNotFound},
		{"Unknown session calculate", "POST", "/sessions/missing/calculate", `{"items": "Log"}`, fiber.StatusNotFound},
		{"Unknown mode", "PUT", "/sessions/" + id + "/pool", `{"mode": "merge"}`, fiber.StatusBadRequest},
		{"Negative pool", "PUT", "/sessions/" + id + "/pool", `{"pool": {"Log": -2}}`, fiber.StatusBadRequest},
		{"Unknown item", "PUT", "/sessions/" + id + "/pool", `{"items": "Diamond"}`, fiber.StatusBadRequest},
		{"Invalid calculation", "POST", "/sessions/" + id + "/calculate", `{"items": ""}`, fiber.StatusBadRequest},
		{"Export disabled", "POST", "/sessions/" + id + "/export", "", fiber.StatusServiceUnavailable},
		{"Import disabled", "POST", "/sessions/" + id + "/import", "", fiber.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := call(t, app, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.status, status)
		})
	}
}

func TestSessionExportImport(t *testing.T) {
	client := new(mocks.Client)
	app := setupTestApp(t, client)
	id := createSession(t, app)

	status, _ := call(t, app, "PUT", "/sessions/"+id+"/pool", `{"pool": {"Stick": 3}}`)
	require.Equal(t, fiber.StatusOK, status)

	var uploaded []byte
	client.On("PutObject", mock.Anything, "test-bucket", coresession.SnapshotKey(id), mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			uploaded, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(minio.UploadInfo{}, nil)

	status, raw := call(t, app, "POST", "/sessions/"+id+"/export", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(raw), coresession.SnapshotKey(id))
	require.NotEmpty(t, uploaded)

	status, _ = call(t, app, "PUT", "/sessions/"+id+"/pool", `{"pool": {}}`)
	require.Equal(t, fiber.StatusOK, status)

	client.On("GetObject", mock.Anything, "test-bucket", coresession.SnapshotKey(id), mock.Anything).
		Return(io.NopCloser(bytes.NewReader(uploaded)), nil)

	status, raw = call(t, app, "POST", "/sessions/"+id+"/import", "")
	require.Equal(t, fiber.StatusOK, status)
	var s coresession.Session
	require.NoError(t, json.Unmarshal(raw, &s))
	assert.Equal(t, 3.0, s.Pool.Get("Stick"))
	client.AssertExpectations(t)
}

func TestLoader_Disabled(t *testing.T) {
	feature := NewFeature(nil, nil, newCalculator(), zap.NewNop())

	assert.Equal(t, "session", feature.Name())
	assert.False(t, feature.IsEnabled())
}
