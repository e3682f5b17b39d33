package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dormwatch/config"
	"dormwatch/db"
	"dormwatch/models"
	"dormwatch/ratelimit"
	"dormwatch/services"
)

// testClock is a hand-advanced clock for exercising the rate limiter.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestServer(t *testing.T) (*Server, *gin.Engine, *testClock) {
	t.Helper()
	t.Setenv("GIN_MODE", "test")
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", t.Name())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := gormDB.AutoMigrate(&models.User{}, &models.Report{}, &models.ReportLike{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	conf := &config.Config{
		SessionSecret:      "test-secret",
		AllowedOrigins:     "http://localhost:5000",
		NicknameAdjectives: "瘋狂的,可愛的,懶惰的,勇敢的,神秘的,悄悄的",
		NicknameAnimals:    "水獺,貓咪,狐狸,刺蝟,貓頭鷹,兔子",
	}

	gdb := &db.GormDB{DB: gormDB}
	authRepo := db.NewAuthRepo(gdb)
	reportRepo := db.NewReportRepo(gdb)

	clock := &testClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s := &Server{
		Config:           conf,
		AuthRepository:   authRepo,
		AuthService:      services.NewAuthService(authRepo, conf),
		ReportRepository: reportRepo,
		ReportService:    services.NewReportService(reportRepo, conf),
		Limiter:          ratelimit.NewWithClock(clock.Now),
	}

	return s, s.setupRouter(), clock
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}

// loginAs registers and logs in a user, returning the session cookies.
func loginAs(t *testing.T, r *gin.Engine, username string) []*http.Cookie {
	t.Helper()

	creds := map[string]string{"username": username, "password": "secret123"}
	if w := doJSON(t, r, http.MethodPost, "/register", creds, nil); w.Code != http.StatusCreated {
		t.Fatalf("register failed with %d: %s", w.Code, w.Body.String())
	}
	w := doJSON(t, r, http.MethodPost, "/login", creds, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with %d: %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login did not set a session cookie")
	}
	return cookies
}
