package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterEndpoint(t *testing.T) {
	a := setupTestAPI(t)

	w := a.request(t, http.MethodPost, "/api/v1/auth/register", "", RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "password123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["token"])
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	a := setupTestAPI(t)
	a.registerUser(t, "Ada", "ada@example.com")

	w := a.request(t, http.MethodPost, "/api/v1/auth/register", "", RegisterRequest{
		Name: "Ada Again", Email: "ada@example.com", Password: "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterEndpointValidation(t *testing.T) {
	a := setupTestAPI(t)

	// short password fails binding
	w := a.request(t, http.MethodPost, "/api/v1/auth/register", "", RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// malformed email fails construction
	w = a.request(t, http.MethodPost, "/api/v1/auth/register", "", RegisterRequest{
		Name: "Ada", Email: "no-at-sign", Password: "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	a := setupTestAPI(t)
	a.registerUser(t, "Ada", "ada@example.com")

	w := a.request(t, http.MethodPost, "/api/v1/auth/login", "", LoginRequest{
		Email: "ada@example.com", Password: "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["token"])

	w = a.request(t, http.MethodPost, "/api/v1/auth/login", "", LoginRequest{
		Email: "ada@example.com", Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
