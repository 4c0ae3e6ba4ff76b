package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

type enrollmentFixture struct {
	legacy      EnrollmentService
	placement   StudentEnrollmentService
	enrollments *fakeEnrollments
	students    *fakeStudents
	yc          models.AcademicYearContext
	pastYear    *models.AcademicYear
	student     *models.Student
	classA      *models.Class
	classB      *models.Class
	pastClass   *models.Class
}

func newEnrollmentFixture(t *testing.T) *enrollmentFixture {
	t.Helper()
	ctx := context.Background()

	years := newFakeYears()
	current, err := years.Create(ctx, &models.AcademicYear{Title: "1404-1405", IsCurrent: true})
	require.NoError(t, err)
	past, err := years.Create(ctx, &models.AcademicYear{Title: "1403-1404"})
	require.NoError(t, err)

	classes := newFakeClasses()
	classA, err := classes.Create(ctx, &models.Class{Code: "101", Name: "A", GradeLevelID: 1, AcademicYearID: current.ID})
	require.NoError(t, err)
	classB, err := classes.Create(ctx, &models.Class{Code: "102", Name: "B", GradeLevelID: 1, AcademicYearID: current.ID})
	require.NoError(t, err)
	pastClass, err := classes.Create(ctx, &models.Class{Code: "101", Name: "A", GradeLevelID: 1, AcademicYearID: past.ID})
	require.NoError(t, err)

	students := newFakeStudents()
	student := students.add("Ali", "Rezaei")
	enrollments := newFakeEnrollments()

	return &enrollmentFixture{
		legacy:      NewEnrollmentService(enrollments, students, classes),
		placement:   NewStudentEnrollmentService(enrollments, students, years, classes),
		enrollments: enrollments,
		students:    students,
		yc:          models.AcademicYearContext{Year: current},
		pastYear:    past,
		student:     student,
		classA:      classA,
		classB:      classB,
		pastClass:   pastClass,
	}
}

func TestStudentEnrollmentUpsertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newEnrollmentFixture(t)
	yearID := f.yc.ID()

	first, err := f.placement.Upsert(ctx, &dto.UpsertStudentEnrollmentRequest{StudentID: f.student.ID, AcademicYearID: yearID, ClassID: ptr(f.classA.ID)})
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentActive, first.Status)

	second, err := f.placement.Upsert(ctx, &dto.UpsertStudentEnrollmentRequest{StudentID: f.student.ID, AcademicYearID: yearID, ClassID: ptr(f.classB.ID)})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	require.NotNil(t, second.ClassID)
	assert.Equal(t, f.classB.ID, *second.ClassID)

	third, err := f.placement.Upsert(ctx, &dto.UpsertStudentEnrollmentRequest{StudentID: f.student.ID, AcademicYearID: yearID})
	require.NoError(t, err)
	assert.Equal(t, first.ID, third.ID)
	assert.Nil(t, third.ClassID)

	rows, err := f.placement.List(ctx, models.EnrollmentFilter{StudentID: &f.student.ID})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	// a different year is a separate placement
	other, err := f.placement.Upsert(ctx, &dto.UpsertStudentEnrollmentRequest{StudentID: f.student.ID, AcademicYearID: f.pastYear.ID})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestStudentEnrollmentUpsertReferences(t *testing.T) {
	f := newEnrollmentFixture(t)
	yearID := f.yc.ID()

	tests := []struct {
		name string
		req  dto.UpsertStudentEnrollmentRequest
	}{
		{"unknown student", dto.UpsertStudentEnrollmentRequest{StudentID: 999, AcademicYearID: yearID}},
		{"unknown year", dto.UpsertStudentEnrollmentRequest{StudentID: f.student.ID, AcademicYearID: 999}},
		{"unknown class", dto.UpsertStudentEnrollmentRequest{StudentID: f.student.ID, AcademicYearID: yearID, ClassID: ptr(int64(999))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.placement.Upsert(context.Background(), &tt.req)
			assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
		})
	}
}

func TestStudentEnrollmentUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newEnrollmentFixture(t)

	row, err := f.placement.Upsert(ctx, &dto.UpsertStudentEnrollmentRequest{StudentID: f.student.ID, AcademicYearID: f.yc.ID(), ClassID: ptr(f.classA.ID)})
	require.NoError(t, err)

	updated, err := f.placement.Update(ctx, row.ID, &dto.UpdateStudentEnrollmentRequest{
		ClassID: dto.Null[int64](),
		Status:  dto.Some("deferred"),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.ClassID)
	assert.Equal(t, models.EnrollmentDeferred, updated.Status)

	_, err = f.placement.Update(ctx, row.ID, &dto.UpdateStudentEnrollmentRequest{Status: dto.Null[string]()})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = f.placement.Update(ctx, row.ID, &dto.UpdateStudentEnrollmentRequest{Status: dto.Some("missing")})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	require.NoError(t, f.placement.SoftDelete(ctx, row.ID))

	deleted, err := f.placement.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.NotNil(t, deleted.DeletedAt)

	_, err = f.placement.Update(ctx, row.ID, &dto.UpdateStudentEnrollmentRequest{Status: dto.Some("active")})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	assert.ErrorIs(t, f.placement.SoftDelete(ctx, row.ID), apperrors.ErrResourceNotFound)

	// the slot is free again after a soft delete
	again, err := f.placement.Upsert(ctx, &dto.UpsertStudentEnrollmentRequest{StudentID: f.student.ID, AcademicYearID: f.yc.ID()})
	require.NoError(t, err)
	assert.NotEqual(t, row.ID, again.ID)
}

func TestStudentEnrollmentListRejectsUnknownStatus(t *testing.T) {
	f := newEnrollmentFixture(t)
	status := models.EnrollmentStatus("paused")

	_, err := f.placement.List(context.Background(), models.EnrollmentFilter{Status: &status})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestEnrollmentCreate(t *testing.T) {
	ctx := context.Background()
	f := newEnrollmentFixture(t)

	created, err := f.legacy.Create(ctx, f.yc, &dto.CreateEnrollmentRequest{StudentID: f.student.ID, ClassID: f.classA.ID})
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentActive, created.Status)
	assert.Equal(t, f.yc.ID(), created.AcademicYearID)

	tests := []struct {
		name    string
		yc      models.AcademicYearContext
		req     dto.CreateEnrollmentRequest
		wantErr error
		wantMsg string
	}{
		{
			name:    "already enrolled",
			yc:      f.yc,
			req:     dto.CreateEnrollmentRequest{StudentID: f.student.ID, ClassID: f.classB.ID},
			wantErr: apperrors.ErrConflict,
			wantMsg: "student already enrolled for this year",
		},
		{
			name:    "no current year",
			req:     dto.CreateEnrollmentRequest{StudentID: f.student.ID, ClassID: f.classB.ID},
			wantErr: apperrors.ErrValidationFailed,
			wantMsg: "current academic year is not set",
		},
		{
			name:    "class from another year",
			yc:      f.yc,
			req:     dto.CreateEnrollmentRequest{StudentID: f.students.add("Reza", "Karimi").ID, ClassID: f.pastClass.ID},
			wantErr: apperrors.ErrValidationFailed,
			wantMsg: "class does not belong to the current year",
		},
		{
			name:    "bad status",
			yc:      f.yc,
			req:     dto.CreateEnrollmentRequest{StudentID: f.student.ID, ClassID: f.classA.ID, Status: ptr("paused")},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "unknown student",
			yc:      f.yc,
			req:     dto.CreateEnrollmentRequest{StudentID: 999, ClassID: f.classA.ID},
			wantErr: apperrors.ErrResourceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.legacy.Create(ctx, tt.yc, &tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}

func TestEnrollmentListUnenrolledMeta(t *testing.T) {
	ctx := context.Background()
	f := newEnrollmentFixture(t)
	f.students.unenrolled = []*models.Student{f.students.add("Mina", "Sadeghi")}

	_, err := f.legacy.Create(ctx, f.yc, &dto.CreateEnrollmentRequest{StudentID: f.student.ID, ClassID: f.classA.ID, Status: ptr("graduated")})
	require.NoError(t, err)

	list, err := f.legacy.List(ctx, f.yc)
	require.NoError(t, err)
	require.Len(t, list.Rows, 1)
	assert.Equal(t, models.EnrollmentGraduated, list.Rows[0].Status)
	assert.Equal(t, "1404-1405", list.Year.Title)

	free, err := f.legacy.Unenrolled(ctx, f.yc)
	require.NoError(t, err)
	require.Len(t, free.Students, 1)
	assert.Equal(t, "Mina", free.Students[0].FirstName)

	meta, err := f.legacy.Meta(ctx, f.yc)
	require.NoError(t, err)
	assert.Len(t, meta.Classes, 2)
	assert.Equal(t, models.EnrollmentStatuses, meta.Statuses)

	_, err = f.legacy.Meta(ctx, models.AcademicYearContext{})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestEnrollmentUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newEnrollmentFixture(t)

	row, err := f.legacy.Create(ctx, f.yc, &dto.CreateEnrollmentRequest{StudentID: f.student.ID, ClassID: f.classA.ID})
	require.NoError(t, err)

	moved, err := f.legacy.Update(ctx, row.ID, &dto.UpdateEnrollmentRequest{ClassID: ptr(f.classB.ID), Status: ptr("expelled")})
	require.NoError(t, err)
	assert.Equal(t, f.classB.ID, *moved.ClassID)
	assert.Equal(t, models.EnrollmentExpelled, moved.Status)

	_, err = f.legacy.Update(ctx, row.ID, &dto.UpdateEnrollmentRequest{ClassID: ptr(f.pastClass.ID)})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	require.NoError(t, f.legacy.Delete(ctx, row.ID))
	_, err = f.legacy.Update(ctx, row.ID, &dto.UpdateEnrollmentRequest{Status: ptr("active")})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	list, err := f.legacy.List(ctx, f.yc)
	require.NoError(t, err)
	assert.Empty(t, list.Rows)
}
