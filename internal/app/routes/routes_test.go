package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolhub/internal/app/controllers"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
	"github.com/yigit/schoolhub/internal/pkg/auth"
)

type stubYears struct {
	services.AcademicYearService
}

func (stubYears) Current(ctx context.Context) (*models.AcademicYear, error) {
	return &models.AcademicYear{ID: 1, Title: "1404-1405", IsCurrent: true}, nil
}

type stubTerms struct {
	services.AcademicTermService
}

func (stubTerms) List(ctx context.Context) ([]*models.AcademicTerm, error) {
	return []*models.AcademicTerm{{ID: 1, Name: "ابتدایی", Status: models.StatusActive}}, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "schoolhub"})
	token, _, err := jwtService.GenerateAccessToken(1, "admin", auth.RoleAdmin)
	require.NoError(t, err)

	svcs := &services.Services{
		AcademicYearService: stubYears{},
		AcademicTermService: stubTerms{},
		AuthService:         services.NewAuthService(nil, jwtService),
	}

	router := gin.New()
	SetupRouter(router, controllers.NewControllers(svcs, 0), middleware.NewAuthMiddleware(jwtService), svcs.AcademicYearService)
	SetupSwagger(router)
	return router, token
}

func TestSetupRouter(t *testing.T) {
	router, token := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{"health is public", http.MethodGet, "/api/v1/health", "", http.StatusOK},
		{"terms need a token", http.MethodGet, "/api/v1/academic-terms", "", http.StatusUnauthorized},
		{"terms with token", http.MethodGet, "/api/v1/academic-terms", token, http.StatusOK},
		{"current year", http.MethodGet, "/api/v1/academic-years/current", token, http.StatusOK},
		{"login validates body", http.MethodPost, "/api/v1/auth/login", "", http.StatusBadRequest},
		{"swagger spec", http.MethodGet, "/swagger/doc.json", "", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/v1/faculties", token, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}
