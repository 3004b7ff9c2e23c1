package community

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"alumni-connect-api/internal/logs"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique in-memory DB per test to avoid cross-test contamination
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&Community{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func closeDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	_ = sqlDB.Close()
}

type mockLogService struct {
	mu   sync.Mutex
	entries []logs.SystemLog
	err     error
}

func (m *mockLogService) Log(_ context.Context, entry logs.SystemLog, _ any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return m.err
}

type memCache struct {
	mu   sync.Mutex
	data map[string][]Community
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]Community{}}
}

func (m *memCache) Get(_ context.Context, key string) (*[]Community, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false
	}
	return &v, true
}

func (m *memCache) Set(_ context.Context, key string, value *[]Community) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]Community(nil), (*value)...)
	if m.data[key] == nil {
		m.data[key] = []Community{}
	}
}

func (m *memCache) Delete(_ context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

func setupCommunityRouter(svc CommunityServicePort, ls LogServicePort) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, svc, ls)
	return r
}

func postJSON(r http.Handler, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func getReq(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, b []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(b))
	}
}
