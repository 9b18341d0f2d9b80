//go:build unit
// +build unit

package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Renz00/recipe-vault/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserHandler_Create_Success(t *testing.T) {
	mockAccountService := new(MockUserAccountService)
	mockAuthService := new(MockUserAuthService)

	handler := NewUserHandler(mockAccountService, mockAuthService)

	user := &users.User{ID: testUserID, Email: "user@example.com", Name: "Test Name"}
	mockAccountService.On("Create", mock.Anything, "user@example.com", "Test Name", "testpass123").
		Return(user, nil)

	body := []byte(`{"email":"user@example.com","name":"Test Name","password":"testpass123"}`)
	req, _ := http.NewRequest("POST", "/user/create/", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "user@example.com")
	assert.NotContains(t, w.Body.String(), "testpass123")
	mockAccountService.AssertExpectations(t)
}

func TestUserHandler_Create_MalformedEmail_Error(t *testing.T) {
	mockAccountService := new(MockUserAccountService)
	mockAuthService := new(MockUserAuthService)

	handler := NewUserHandler(mockAccountService, mockAuthService)

	body := []byte(`{"email":"not-an-email","name":"Test Name","password":"testpass123"}`)
	req, _ := http.NewRequest("POST", "/user/create/", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	mockAccountService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserHandler_Create_ShortPassword_Error(t *testing.T) {
	mockAccountService := new(MockUserAccountService)
	mockAuthService := new(MockUserAuthService)

	handler := NewUserHandler(mockAccountService, mockAuthService)

	body := []byte(`{"email":"user@example.com","password":"pw"}`)
	req, _ := http.NewRequest("POST", "/user/create/", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
}

func TestUserHandler_Create_DuplicateEmail_Error(t *testing.T) {
	mockAccountService := new(MockUserAccountService)
	mockAuthService := new(MockUserAuthService)

	handler := NewUserHandler(mockAccountService, mockAuthService)

	mockAccountService.On("Create", mock.Anything, "user@example.com", "", "testpass123").
		Return(nil, users.ErrDuplicateEmail)

	body := []byte(`{"email":"user@example.com","password":"testpass123"}`)
	req, _ := http.NewRequest("POST", "/user/create/", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")
	mockAccountService.AssertExpectations(t)
}

func TestUserHandler_CreateToken_Success(t *testing.T) {
	mockAccountService := new(MockUserAccountService)
	mockAuthService := new(MockUserAuthService)

	handler := NewUserHandler(mockAccountService, mockAuthService)

	mockAuthService.On("IssueToken", mock.Anything, "user@example.com", "testpass123").
		Return("signed-token-abc", nil)

	body := []byte(`{"email":"user@example.com","password":"testpass123"}`)
	req, _ := http.NewRequest("POST", "/user/token/", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.CreateToken(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "signed-token-abc")
	mockAuthService.AssertExpectations(t)
}

func TestUserHandler_CreateToken_BadCredentials_Error(t *testing.T) {
	mockAccountService := new(MockUserAccountService)
	mockAuthService := new(MockUserAuthService)

	handler := NewUserHandler(mockAccountService, mockAuthService)

	mockAuthService.On("IssueToken", mock.Anything, "user@example.com", "wrongpass").
		Return("", users.ErrInvalidCredentials)

	body := []byte(`{"email":"user@example.com","password":"wrongpass"}`)
	req, _ := http.NewRequest("POST", "/user/token/", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.CreateToken(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unable to authenticate")
	mockAuthService.AssertExpectations(t)
}

func TestUserHandler_CreateToken_MissingPassword_Error(t *testing.T) {
	mockAccountService := new(MockUserAccountService)
	mockAuthService := new(MockUserAuthService)

	handler := NewUserHandler(mockAccountService, mockAuthService)

	body := []byte(`{"email":"user@example.com"}`)
	req, _ := http.NewRequest("POST", "/user/token/", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.CreateToken(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAuthService.AssertNotCalled(t, "IssueToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserHandler_GetMe_Success(t *testing.T) {
	mockAccountService := new(MockUserAccountService)
	mockAuthService := new(MockUserAuthService)

	handler := NewUserHandler(mockAccountService, mockAuthService)

	user := &users.User{ID: testUserID, Email: "user@example.com", Name: "Test Name"}
	mockAccountService.On("GetByID", mock.Anything, testUserID).Return(user, nil)

	req, _ := http.NewRequest("GET", "/user/me/", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(userIDContextKey, testUserID)

	handler.GetMe(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user@example.com")
	mockAccountService.AssertExpectations(t)
}

func TestUserHandler_UpdateMe_Success(t *testing.T) {
	mockAccountService := new(MockUserAccountService)
	mockAuthService := new(MockUserAuthService)

	handler := NewUserHandler(mockAccountService, mockAuthService)

	updated := &users.User{ID: testUserID, Email: "user@example.com", Name: "New Name"}
	mockAccountService.On("UpdateByID", mock.Anything, testUserID, mock.Anything, mock.Anything).
		Return(updated, nil)

	body := []byte(`{"name":"New Name"}`)
	req, _ := http.NewRequest("PATCH", "/user/me/", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(userIDContextKey, testUserID)

	handler.UpdateMe(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "New Name")
	mockAccountService.AssertExpectations(t)
}

func TestUserHandler_UpdateMe_ShortPassword_Error(t *testing.T) {
	mockAccountService := new(MockUserAccountService)
	mockAuthService := new(MockUserAuthService)

	handler := NewUserHandler(mockAccountService, mockAuthService)

	body := []byte(`{"password":"pw"}`)
	req, _ := http.NewRequest("PATCH", "/user/me/", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(userIDContextKey, testUserID)

	handler.UpdateMe(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	mockAccountService.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
