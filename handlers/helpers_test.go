package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter gives each test a fresh in-memory database and a fully wired
// router. The DSN is named after the test so shared-cache connections from
// the pool all see the same schema without leaking across tests.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	config.DB = db
	config.JWTSecret = []byte("test-secret")

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func createUser(t *testing.T, username string, groups ...string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
	}
	if err := config.DB.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	for _, name := range groups {
		var group models.Group
		if err := config.DB.Where("name = ?", name).First(&group).Error; err != nil {
			t.Fatalf("lookup group %s: %v", name, err)
		}
		if err := config.DB.Model(user).Association("Groups").Append(&group); err != nil {
			t.Fatalf("add %s to %s: %v", username, name, err)
		}
	}
	if err := config.DB.Preload("Groups").First(user, user.ID).Error; err != nil {
		t.Fatalf("reload user %s: %v", username, err)
	}
	return user
}

func tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := middleware.GenerateToken(user)
	if err != nil {
		t.Fatalf("generate token for %s: %v", user.Username, err)
	}
	return token
}

func createCategory(t *testing.T, title, slug string) *models.Category {
	t.Helper()
	category := &models.Category{Title: title, Slug: slug}
	if err := config.DB.Create(category).Error; err != nil {
		t.Fatalf("create category %s: %v", slug, err)
	}
	return category
}

func createMenuItem(t *testing.T, title string, price float64, categoryID uint) *models.MenuItem {
	t.Helper()
	item := &models.MenuItem{Title: title, Price: price, CategoryID: categoryID}
	if err := config.DB.Create(item).Error; err != nil {
		t.Fatalf("create menu item %s: %v", title, err)
	}
	return item
}

func doRequest(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
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

// addToCart goes through the API so the unit-price snapshot path is the one
// the order tests exercise.
func addToCart(t *testing.T, r *gin.Engine, token string, menuItemID uint, quantity int) {
	t.Helper()
	w := doRequest(r, "POST", "/api/cart/menu-items", token, map[string]interface{}{
		"menu_item_id": menuItemID,
		"quantity":     quantity,
	})
	if w.Code != 201 {
		t.Fatalf("add to cart: status %d, body %s", w.Code, w.Body.String())
	}
}
