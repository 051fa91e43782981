package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"steakz-api/config"
	"steakz-api/middleware"
	"steakz-api/models"
	"steakz-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter wires the full route table over a fresh in-memory database
// named after the test so parallel tests stay isolated.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWTSecret = []byte("test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	// Keep the shared in-memory database alive for the whole test.
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := config.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

// doJSON performs a request against the router. A non-empty token is sent
// as a bearer Authorization header; a nil body sends no payload.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func seedAdmin(t *testing.T, email, password string) models.Admin {
	t.Helper()
	admin := models.Admin{Name: "Test Admin", Email: email, PasswordHash: hashPassword(t, password)}
	if err := config.DB.Create(&admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return admin
}

func seedCustomer(t *testing.T, email, password string) models.Customer {
	t.Helper()
	customer := models.Customer{Name: "Test Customer", Email: email, PasswordHash: hashPassword(t, password)}
	if err := config.DB.Create(&customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return customer
}

func seedMenuItem(t *testing.T, name string, price float64) models.MenuItem {
	t.Helper()
	item := models.MenuItem{Name: name, Ingredients: "beef, salt", Price: price}
	if err := config.DB.Create(&item).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return item
}

func tokenFor(t *testing.T, id uint, role models.Role) string {
	t.Helper()
	token, err := middleware.GenerateToken(id, role)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := config.DB.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int, context string) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("%s: got status %d, want %d (body %s)", context, w.Code, want, w.Body.String())
	}
}
