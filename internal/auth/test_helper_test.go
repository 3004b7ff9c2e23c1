package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"alumni-connect-api/internal/logs"
	"alumni-connect-api/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&User{}); err != nil {
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

func newTestSigner(t *testing.T) *token.HMAC {
	t.Helper()
	h, err := token.NewHMAC(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewHMAC: %v", err)
	}
	return h
}

func assertErr(msg string) error { return errors.New(msg) }

type mockAuthService struct {
	RegisterFn func(ctx context.Context, req RegisterRequest) (*ProfileSummary, error)
	LoginFn    func(ctx context.Context, email, password string) (*LoginResult, error)
}

func (m *mockAuthService) Register(ctx context.Context, req RegisterRequest) (*ProfileSummary, error) {
	if m.RegisterFn == nil {
		return nil, assertErr("Register not implemented")
	}
	return m.RegisterFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if m.LoginFn == nil {
		return nil, assertErr("Login not implemented")
	}
	return m.LoginFn(ctx, email, password)
}

type mockProfileLookup struct {
	GetProfileFn func(ctx context.Context, id int) (*ProfileSummary, error)
}

func (m *mockProfileLookup) GetProfile(ctx context.Context, id int) (*ProfileSummary, error) {
	if m.GetProfileFn == nil {
		return nil, assertErr("GetProfile not implemented")
	}
	return m.GetProfileFn(ctx, id)
}

type mockLogService struct {
	mu      sync.Mutex
	entries []logs.SystemLog
	err     error
}

func (m *mockLogService) Log(_ context.Context, entry logs.SystemLog, _ any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return m.err
}

func setupAuthRouter(svc AuthServicePort, profiles ProfileLookup, ls LogServicePort, verifier token.Verifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, svc, profiles, ls, verifier)
	return r
}

func postJSON(r http.Handler, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func getWithBearer(r http.Handler, path, bearer string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, b []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(b))
	}
}

// dbProfiles resolves profiles straight from the users table.
type dbProfiles struct{ db *gorm.DB }

func (p dbProfiles) GetProfile(ctx context.Context, id int) (*ProfileSummary, error) {
	var u User
	if err := p.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return u.Summary(), nil
}
