package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/auth"
	"github.com/yigit/schoolhub/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := validation.RegisterGinValidator(); err != nil {
		panic(err)
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message json.RawMessage `json:"message"`
}

func do(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

// withYear installs a fixed current year the way middleware.CurrentYear does.
func withYear(year *models.AcademicYear) gin.HandlerFunc {
	return middleware.CurrentYear(yearFinder{year})
}

type yearFinder struct{ year *models.AcademicYear }

func (f yearFinder) Current(ctx context.Context) (*models.AcademicYear, error) { return f.year, nil }

type stubYears struct {
	services.AcademicYearService
	created *dto.CreateAcademicYearRequest
	delErr  error
}

func (s *stubYears) Create(ctx context.Context, req *dto.CreateAcademicYearRequest) (*models.AcademicYear, error) {
	s.created = req
	start := "2025-09-23"
	return &models.AcademicYear{ID: 4, Title: req.Title, StartDate: &start, IsCurrent: true}, nil
}

func (s *stubYears) Delete(ctx context.Context, id int64) error { return s.delErr }

func TestAcademicYearController(t *testing.T) {
	years := &stubYears{}
	c := NewAcademicYearController(years)

	r := gin.New()
	r.GET("/current", withYear(nil), c.Current)
	r.POST("/years", c.Create)
	r.DELETE("/years/:id", c.Delete)

	t.Run("no current year is null data", func(t *testing.T) {
		w, env := do(t, r, http.MethodGet, "/current", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)
		assert.JSONEq(t, `null`, string(env.Data))
	})

	t.Run("create renders jalali dates", func(t *testing.T) {
		w, env := do(t, r, http.MethodPost, "/years", `{"title":"1404-1405","start_date":"1404/07/01","is_current":true}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		var got dto.AcademicYearResponse
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, int64(4), got.ID)
		assert.Equal(t, "1404/07/01", got.StartDateJalali)
		require.NotNil(t, years.created.IsCurrent)
		assert.True(t, *years.created.IsCurrent)
	})

	t.Run("create without title", func(t *testing.T) {
		w, env := do(t, r, http.MethodPost, "/years", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `["title is required"]`, string(env.Message))
	})

	t.Run("deleting the current year", func(t *testing.T) {
		years.delErr = apperrors.NewConflictError("cannot delete the current academic year")
		w, env := do(t, r, http.MethodDelete, "/years/4", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `"cannot delete the current academic year"`, string(env.Message))
	})
}

type stubClasses struct {
	services.ClassService
	yearID      *int64
	onlyCurrent bool
	yc          models.AcademicYearContext
}

func (s *stubClasses) List(ctx context.Context, yc models.AcademicYearContext, yearID *int64, onlyCurrent bool) ([]*models.Class, error) {
	s.yc, s.yearID, s.onlyCurrent = yc, yearID, onlyCurrent
	if onlyCurrent {
		if _, err := yc.Require(); err != nil {
			return nil, err
		}
	}
	return []*models.Class{{ID: 1, Code: "101"}}, nil
}

func TestClassController_ListFilters(t *testing.T) {
	tests := []struct {
		name        string
		year        *models.AcademicYear
		query       string
		wantStatus  int
		wantYearID  *int64
		wantCurrent bool
	}{
		{"all years", nil, "", http.StatusOK, nil, false},
		{"explicit year", nil, "?academic_year_id=3", http.StatusOK, ptr(int64(3)), false},
		{"current only", &models.AcademicYear{ID: 2}, "?current=1", http.StatusOK, nil, true},
		{"current without a current year", nil, "?current=1", http.StatusBadRequest, nil, true},
		{"malformed year", nil, "?academic_year_id=x", http.StatusBadRequest, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classes := &stubClasses{}
			r := gin.New()
			r.GET("/classes", withYear(tt.year), NewClassController(classes).List)

			w, _ := do(t, r, http.MethodGet, "/classes"+tt.query, "")
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.query == "?academic_year_id=x" {
				return
			}
			assert.Equal(t, tt.wantYearID, classes.yearID)
			assert.Equal(t, tt.wantCurrent, classes.onlyCurrent)
		})
	}
}

type stubStudentEnrollments struct {
	services.StudentEnrollmentService
	filter   models.EnrollmentFilter
	upserted *dto.UpsertStudentEnrollmentRequest
}

func (s *stubStudentEnrollments) List(ctx context.Context, filter models.EnrollmentFilter) ([]*models.Enrollment, error) {
	s.filter = filter
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, apperrors.NewValidationError("invalid enrollment status")
	}
	return []*models.Enrollment{}, nil
}

func (s *stubStudentEnrollments) Upsert(ctx context.Context, req *dto.UpsertStudentEnrollmentRequest) (*models.Enrollment, error) {
	s.upserted = req
	return &models.Enrollment{ID: 11, StudentID: req.StudentID, AcademicYearID: req.AcademicYearID, ClassID: req.ClassID}, nil
}

func TestStudentEnrollmentController(t *testing.T) {
	svc := &stubStudentEnrollments{}
	c := NewStudentEnrollmentController(svc)
	r := gin.New()
	r.GET("/student-enrollments", c.List)
	r.PUT("/student-enrollments/upsert", c.Upsert)

	w, _ := do(t, r, http.MethodGet, "/student-enrollments?academic_year_id=2&class_id=9&student_id=5&status=active", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(2), *svc.filter.AcademicYearID)
	assert.Equal(t, int64(9), *svc.filter.ClassID)
	assert.Equal(t, int64(5), *svc.filter.StudentID)
	assert.Equal(t, models.EnrollmentActive, *svc.filter.Status)

	w, env := do(t, r, http.MethodGet, "/student-enrollments?status=unknown", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `["invalid enrollment status"]`, string(env.Message))

	w, env = do(t, r, http.MethodPut, "/student-enrollments/upsert", `{"student_id":5,"academic_year_id":2,"class_id":9}`)
	assert.Equal(t, http.StatusOK, w.Code)
	var row models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &row))
	assert.Equal(t, int64(11), row.ID)
	require.NotNil(t, svc.upserted.ClassID)
	assert.Equal(t, int64(9), *svc.upserted.ClassID)

	w, _ = do(t, r, http.MethodPut, "/student-enrollments/upsert", `{"student_id":5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type stubStudents struct {
	services.StudentService
	uploaded string
}

func (s *stubStudents) UploadPhoto(ctx context.Context, id int64, fh *multipart.FileHeader) (*dto.StudentPhotoResponse, error) {
	s.uploaded = fh.Filename
	return &dto.StudentPhotoResponse{StudentID: id, Photo: "students/3/a.png", URL: "http://localhost/uploads/students/3/a.png"}, nil
}

func photoRequest(t *testing.T, field string, size int) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, "me.png")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte{1}, size))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/students/3/photo", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestStudentController_UploadPhoto(t *testing.T) {
	students := &stubStudents{}
	r := gin.New()
	r.POST("/students/:id/photo", NewStudentController(students, 64).UploadPhoto)

	tests := []struct {
		name       string
		field      string
		size       int
		wantStatus int
	}{
		{"stored", "photo", 16, http.StatusOK},
		{"wrong field", "file", 16, http.StatusBadRequest},
		{"too large", "photo", 65, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, photoRequest(t, tt.field, tt.size))
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
	assert.Equal(t, "me.png", students.uploaded)
}

func TestAuthController_Me(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "schoolhub"})
	token, _, err := jwtService.GenerateAccessToken(7, "admin", auth.RoleAdmin)
	require.NoError(t, err)

	c := NewAuthController(services.NewAuthService(nil, jwtService))
	r := gin.New()
	r.GET("/auth/me", middleware.NewAuthMiddleware(jwtService).JWTAuth(), c.Me)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.JSONEq(t, `{"user_id":7,"username":"admin","role":"Admin"}`, string(env.Data))
}

func ptr[T any](v T) *T { return &v }
