package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/auth"
	"github.com/yigit/schoolhub/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type errorBody struct {
	Success bool            `json:"success"`
	Message json.RawMessage `json:"message"`
	Error   struct {
		Code string `json:"code"`
	} `json:"error"`
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"validation", apperrors.NewValidationError("title is required"), http.StatusBadRequest, "VAL_001", `["title is required"]`},
		{"conflict", apperrors.NewConflictError("cannot delete the current year"), http.StatusBadRequest, "RES_004", `"cannot delete the current year"`},
		{"not found", apperrors.NewResourceNotFoundError("class not found"), http.StatusNotFound, "RES_001", `"class not found"`},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "AUTH_001", `"Invalid username or password"`},
		{"persistence", apperrors.NewPersistenceError(errors.New("connection reset"), "list classes"), http.StatusInternalServerError, "SRV_002", `"Internal server error"`},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "SRV_001", `"Internal server error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.JSONEq(t, tt.wantMsg, string(body.Message))
		})
	}
}

func TestHandleBindingError(t *testing.T) {
	require.NoError(t, validation.RegisterGinValidator())

	type payload struct {
		Title string `json:"title" binding:"required"`
	}

	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var p payload
		if !BindJSON(c, &p) {
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", jsonBody(`{}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `["title is required"]`, string(decodeError(t, w).Message))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", jsonBody(`{"title":"x"}`)))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestJWTAuth(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "schoolhub"})
	token, _, err := jwtService.GenerateAccessToken(7, "admin", auth.RoleAdmin)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", NewAuthMiddleware(jwtService).JWTAuth(), func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{
			"id":       c.GetInt64(ContextUserID),
			"username": c.GetString(ContextUsername),
			"role":     claims.Role,
		})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{"missing header", "", http.StatusUnauthorized, "AUTH_008"},
		{"bad scheme", "Basic abc", http.StatusUnauthorized, "AUTH_005"},
		{"forged token", "Bearer a.b.c", http.StatusUnauthorized, "AUTH_005"},
		{"valid", "Bearer " + token, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, w).Error.Code)
				return
			}
			assert.JSONEq(t, `{"id":7,"username":"admin","role":"Admin"}`, w.Body.String())
		})
	}
}

type stubFinder struct {
	year *models.AcademicYear
	err  error
}

func (s stubFinder) Current(ctx context.Context) (*models.AcademicYear, error) {
	return s.year, s.err
}

func TestCurrentYear(t *testing.T) {
	handler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": YearContext(c).ID()})
	}

	tests := []struct {
		name       string
		finder     stubFinder
		wantStatus int
		wantBody   string
	}{
		{"current set", stubFinder{year: &models.AcademicYear{ID: 3}}, http.StatusOK, `{"id":3}`},
		{"none", stubFinder{}, http.StatusOK, `{"id":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", CurrentYear(tt.finder), handler)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}

	t.Run("lookup failure", func(t *testing.T) {
		r := gin.New()
		r.GET("/", CurrentYear(stubFinder{err: apperrors.NewPersistenceError(errors.New("down"), "find current year")}), handler)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRequestLoggerAndCORS(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(), CORS([]string{"http://localhost:3000"}))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextRequestID)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://evil.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestParseIDParam(t *testing.T) {
	r := gin.New()
	r.GET("/items/:id", func(c *gin.Context) {
		id, ok := ParseIDParam(c, "id")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	for path, want := range map[string]int{"/items/12": http.StatusOK, "/items/abc": http.StatusBadRequest, "/items/0": http.StatusBadRequest} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, w.Code, path)
	}
}
