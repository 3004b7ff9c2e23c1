package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"alumni-connect-api/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&auth.User{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, u auth.User) auth.User {
	t.Helper()
	if u.Password == "" {
		u.Password = "$2a$10$hashedhashedhashedhashedhashedhashedhashedhashedhash"
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func strPtr(s string) *string { return &s }

// memCache is an in-process cache.Store used to observe cache traffic.
type memCache struct {
	mu   sync.Mutex
	data map[string]auth.ProfileSummary
	gets int
	sets int
}

func newMemCache() *memCache {
	return &memCache{data: map[string]auth.ProfileSummary{}}
}

func (m *memCache) Get(_ context.Context, key string) (*auth.ProfileSummary, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	v, ok := m.data[key]
	if !ok {
		return nil, false
	}
	return &v, true
}

func (m *memCache) Set(_ context.Context, key string, value *auth.ProfileSummary) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	m.data[key] = *value
}

func (m *memCache) Delete(_ context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

type mockProfileService struct {
	GetProfileFn func(ctx context.Context, id int) (*auth.ProfileSummary, error)
}

func (m *mockProfileService) GetProfile(ctx context.Context, id int) (*auth.ProfileSummary, error) {
	return m.GetProfileFn(ctx, id)
}

func setupProfileRouter(svc ProfileServicePort) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, svc)
	return r
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
