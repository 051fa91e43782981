package handlers_test

import (
	"net/http"
	"testing"

	"steakz-api/config"
	"steakz-api/middleware"
	"steakz-api/models"

	"github.com/golang-jwt/jwt/v5"
)

func TestEmployerCRUD(t *testing.T) {
	r := setupRouter(t)
	admin := seedAdmin(t, "boss@steakz.com", "hunter22")
	adminToken := tokenFor(t, admin.ID, models.RoleAdmin)

	// Create
	w := doJSON(t, r, http.MethodPost, "/employers", adminToken, map[string]interface{}{
		"name":     "Dave",
		"email":    "dave@steakz.com",
		"role":     "chef",
		"contact":  "555-0101",
		"address":  "12 Grill St",
		"password": "p123456",
	})
	expectStatus(t, w, http.StatusCreated, "create employer")
	created := decodeBody(t, w)["employer"].(map[string]interface{})
	if created["role"] != "chef" {
		t.Errorf("position on the wire = %v, want chef", created["role"])
	}
	id := itoa(uint(created["id"].(float64)))

	// Duplicate email
	w = doJSON(t, r, http.MethodPost, "/employers", adminToken, map[string]interface{}{
		"name": "Dave 2", "email": "dave@steakz.com", "password": "p123456",
	})
	expectStatus(t, w, http.StatusConflict, "duplicate employer email")

	// Read (any authenticated principal)
	customer := seedCustomer(t, "eve@x.com", "p123456")
	customerToken := tokenFor(t, customer.ID, models.RoleCustomer)
	w = doJSON(t, r, http.MethodGet, "/employers/"+id, customerToken, nil)
	expectStatus(t, w, http.StatusOK, "customer reads employer")

	// Mutations are admin only
	w = doJSON(t, r, http.MethodDelete, "/employers/"+id, customerToken, nil)
	expectStatus(t, w, http.StatusForbidden, "customer deletes employer")

	// Update
	w = doJSON(t, r, http.MethodPut, "/employers/"+id, adminToken, map[string]interface{}{
		"name":     "Dave",
		"email":    "dave@steakz.com",
		"role":     "storekeeper",
		"contact":  "555-0101",
		"address":  "12 Grill St",
		"password": "newpass1",
	})
	expectStatus(t, w, http.StatusOK, "update employer")

	var employer models.Employer
	if err := config.DB.Where("email = ?", "dave@steakz.com").First(&employer).Error; err != nil {
		t.Fatal(err)
	}
	if employer.Position != "storekeeper" {
		t.Errorf("position = %s, want storekeeper", employer.Position)
	}
	if employer.PasswordHash == "newpass1" {
		t.Error("updated password must be re-hashed")
	}

	// Delete, then 404
	w = doJSON(t, r, http.MethodDelete, "/employers/"+id, adminToken, nil)
	expectStatus(t, w, http.StatusOK, "delete employer")
	w = doJSON(t, r, http.MethodGet, "/employers/"+id, adminToken, nil)
	expectStatus(t, w, http.StatusNotFound, "read deleted employer")
}

func TestEmployerLoginIssuesPositionRole(t *testing.T) {
	r := setupRouter(t)
	employer := models.Employer{
		Name:         "Grace",
		Email:        "grace@steakz.com",
		Position:     "storekeeper",
		PasswordHash: hashPassword(t, "p123456"),
	}
	if err := config.DB.Create(&employer).Error; err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, r, http.MethodPost, "/employers/login", "", map[string]string{
		"email":    "grace@steakz.com",
		"password": "p123456",
	})
	expectStatus(t, w, http.StatusOK, "employer login")

	tokenStr := decodeBody(t, w)["token"].(string)
	claims := &middleware.Claims{}
	if _, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return config.JWTSecret, nil
	}); err != nil {
		t.Fatalf("employer token should verify: %v", err)
	}
	if claims.Role != models.RoleStorekeeper {
		t.Errorf("token role = %s, want storekeeper", claims.Role)
	}

	// The storekeeper token passes the inventory gate
	w = doJSON(t, r, http.MethodPost, "/inventory", tokenStr, map[string]interface{}{
		"name": "Napkins", "quantity": 500,
	})
	expectStatus(t, w, http.StatusCreated, "storekeeper token creates inventory")

	// But not the menu gate
	w = doJSON(t, r, http.MethodPost, "/menu", tokenStr, map[string]interface{}{
		"name": "Sneaky Dish", "price": 1.0,
	})
	expectStatus(t, w, http.StatusForbidden, "storekeeper token creates menu item")
}

func TestCustomerManagementAdminOnly(t *testing.T) {
	r := setupRouter(t)
	admin := seedAdmin(t, "boss@steakz.com", "hunter22")
	customer := seedCustomer(t, "eve@x.com", "p123456")

	adminToken := tokenFor(t, admin.ID, models.RoleAdmin)
	customerToken := tokenFor(t, customer.ID, models.RoleCustomer)

	w := doJSON(t, r, http.MethodGet, "/customers", customerToken, nil)
	expectStatus(t, w, http.StatusForbidden, "customer lists customers")

	w = doJSON(t, r, http.MethodGet, "/customers", adminToken, nil)
	expectStatus(t, w, http.StatusOK, "admin lists customers")

	w = doJSON(t, r, http.MethodGet, "/customers/"+itoa(customer.ID), adminToken, nil)
	expectStatus(t, w, http.StatusOK, "admin reads customer")

	w = doJSON(t, r, http.MethodDelete, "/customers/999", adminToken, nil)
	expectStatus(t, w, http.StatusNotFound, "delete missing customer")

	w = doJSON(t, r, http.MethodDelete, "/customers/"+itoa(customer.ID), adminToken, nil)
	expectStatus(t, w, http.StatusOK, "admin deletes customer")
	if n := countRows(t, &models.Customer{}); n != 0 {
		t.Errorf("customer rows = %d, want 0", n)
	}
}
