package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fam-OS/truenorth-sub002/internal/app"
	"github.com/fam-OS/truenorth-sub002/internal/config"
	httpserver "github.com/fam-OS/truenorth-sub002/internal/http"
	"github.com/fam-OS/truenorth-sub002/internal/infrastructure/database"
)

// testServer runs the full application stack against in-memory stores.
type testServer struct {
	Server    *httptest.Server
	Container *app.Container
	Redis     *miniredis.Miniredis
	Client    *http.Client
}

// projectRoot resolves the repository root so on-disk config files load
// regardless of the test working directory.
func projectRoot() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..")
}

func testConfig(t *testing.T, redisAddr string) *config.Config {
	t.Helper()
	return &config.Config{
		GinMode:         gin.TestMode,
		RedisAddr:       redisAddr,
		SessionSecret:   "e2e-test-secret-not-for-production",
		SessionIssuer:   "truenorth-e2e",
		SessionTTL:      time.Hour,
		OTP_TTL:         10 * time.Minute,
		OTP_Length:      6,
		OTP_MaxAttempts: 3,
		MFAPath:         "/auth/mfa",
		OnboardingPath:  "/dashboard/onboarding",
		CasbinModelPath: filepath.Join(projectRoot(), "config", "casbin_model.conf"),
		OwnershipRules: []config.OwnershipRule{
			{Method: "GET", Path: "/api/users/:user_id", Source: "param", ParamName: "user_id"},
			{Method: "PUT", Path: "/api/users/:user_id", Source: "param", ParamName: "user_id"},
		},
	}
}

// newTestServer boots the router on sqlite and miniredis. The HTTP client
// does not follow redirects so gate verdicts stay observable.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err, "miniredis should start")
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	// A named shared-cache DSN keeps every pooled connection on the same
	// in-memory database; a bare ":memory:" gives each connection its own.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "sqlite should open")
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(gdb), "migrations should run")

	cfg := testConfig(t, mr.Addr())
	container, err := app.NewContainerWith(cfg, gdb, rdb)
	require.NoError(t, err, "container should wire")
	app.SeedDefaultPolicies(container)

	router := httpserver.BuildRouter(container.RouterDeps())
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	t.Cleanup(func() { container.Close() })

	return &testServer{
		Server:    server,
		Container: container,
		Redis:     mr,
		Client: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// do sends a request with an optional bearer token and optional JSON body.
func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, s.Server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// doJSON sends a request and decodes the JSON response body. Endpoints that
// answer with an array or an empty body return a nil map.
func (s *testServer) doJSON(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	resp := s.do(t, method, path, token, body)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(data) > 0 {
		var v interface{}
		require.NoError(t, json.Unmarshal(data, &v))
		decoded, _ = v.(map[string]interface{})
	}
	return resp.StatusCode, decoded
}

// doJSONSlice sends a GET and decodes an array response into object elements.
func (s *testServer) doJSONSlice(t *testing.T, method, path, token string) (int, []map[string]interface{}) {
	t.Helper()
	resp := s.do(t, method, path, token, nil)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &decoded))
	}
	return resp.StatusCode, decoded
}
