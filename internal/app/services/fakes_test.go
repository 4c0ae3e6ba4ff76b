package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

// In-memory stores that mirror the repository semantics closely enough for
// service tests: not-found errors, soft deletes and the unique indexes.

func ptr[T any](v T) *T { return &v }

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

type fakeYears struct {
	mu   sync.Mutex
	seq  int64
	rows map[int64]*models.AcademicYear
}

func newFakeYears() *fakeYears {
	return &fakeYears{rows: map[int64]*models.AcademicYear{}}
}

func (f *fakeYears) List(ctx context.Context) ([]*models.AcademicYear, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.AcademicYear{}
	for _, y := range f.rows {
		c := *y
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeYears) FindByID(ctx context.Context, id int64) (*models.AcademicYear, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	y, ok := f.rows[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("academic year not found")
	}
	c := *y
	return &c, nil
}

func (f *fakeYears) FindCurrent(ctx context.Context) (*models.AcademicYear, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, y := range f.rows {
		if y.IsCurrent {
			c := *y
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeYears) clearCurrent() {
	for _, y := range f.rows {
		y.IsCurrent = false
	}
}

func (f *fakeYears) Create(ctx context.Context, year *models.AcademicYear) (*models.AcademicYear, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if year.IsCurrent {
		f.clearCurrent()
	}
	f.seq++
	c := *year
	c.ID = f.seq
	c.CreatedAt = time.Now()
	f.rows[c.ID] = &c
	out := c
	return &out, nil
}

func (f *fakeYears) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.AcademicYear, error) {
	f.mu.Lock()
	y, ok := f.rows[id]
	if !ok {
		f.mu.Unlock()
		return nil, apperrors.NewResourceNotFoundError("academic year not found")
	}
	for k, v := range fields {
		switch k {
		case "title":
			y.Title = v.(string)
		case "start_date":
			y.StartDate = v.(*string)
		case "end_date":
			y.EndDate = v.(*string)
		}
	}
	f.mu.Unlock()
	return f.FindByID(ctx, id)
}

func (f *fakeYears) SetCurrent(ctx context.Context, id int64) (*models.AcademicYear, error) {
	f.mu.Lock()
	y, ok := f.rows[id]
	if !ok {
		f.mu.Unlock()
		return nil, apperrors.NewResourceNotFoundError("academic year not found")
	}
	f.clearCurrent()
	y.IsCurrent = true
	f.mu.Unlock()
	return f.FindByID(ctx, id)
}

func (f *fakeYears) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return apperrors.NewResourceNotFoundError("academic year not found")
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeYears) currentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, y := range f.rows {
		if y.IsCurrent {
			n++
		}
	}
	return n
}

type fakeTerms struct {
	seq  int64
	rows map[int64]*models.AcademicTerm
}

func newFakeTerms() *fakeTerms { return &fakeTerms{rows: map[int64]*models.AcademicTerm{}} }

func (f *fakeTerms) List(ctx context.Context) ([]*models.AcademicTerm, error) {
	out := []*models.AcademicTerm{}
	for _, t := range f.rows {
		if t.DeletedAt == nil {
			c := *t
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeTerms) FindByID(ctx context.Context, id int64) (*models.AcademicTerm, error) {
	t, ok := f.rows[id]
	if !ok || t.DeletedAt != nil {
		return nil, apperrors.NewResourceNotFoundError("academic term not found")
	}
	c := *t
	return &c, nil
}

func (f *fakeTerms) Create(ctx context.Context, term *models.AcademicTerm) (*models.AcademicTerm, error) {
	f.seq++
	c := *term
	c.ID = f.seq
	f.rows[c.ID] = &c
	return f.FindByID(ctx, c.ID)
}

func (f *fakeTerms) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.AcademicTerm, error) {
	t, ok := f.rows[id]
	if !ok || t.DeletedAt != nil {
		return nil, apperrors.NewResourceNotFoundError("academic term not found")
	}
	if v, ok := fields["name"]; ok {
		t.Name = v.(string)
	}
	if v, ok := fields["status"]; ok {
		t.Status = v.(models.ActivityStatus)
	}
	return f.FindByID(ctx, id)
}

func (f *fakeTerms) SoftDelete(ctx context.Context, id int64) error {
	t, ok := f.rows[id]
	if !ok || t.DeletedAt != nil {
		return apperrors.NewResourceNotFoundError("academic term not found")
	}
	t.DeletedAt = ptr(time.Now())
	return nil
}

type fakeLevels struct {
	seq  int64
	rows map[int64]*models.GradeLevel
}

func newFakeLevels() *fakeLevels { return &fakeLevels{rows: map[int64]*models.GradeLevel{}} }

func (f *fakeLevels) List(ctx context.Context) ([]*models.GradeLevel, error) {
	out := []*models.GradeLevel{}
	for _, l := range f.rows {
		if l.DeletedAt == nil {
			c := *l
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeLevels) FindByID(ctx context.Context, id int64) (*models.GradeLevel, error) {
	l, ok := f.rows[id]
	if !ok || l.DeletedAt != nil {
		return nil, apperrors.NewResourceNotFoundError("grade level not found")
	}
	c := *l
	return &c, nil
}

func (f *fakeLevels) Create(ctx context.Context, level *models.GradeLevel) (*models.GradeLevel, error) {
	f.seq++
	c := *level
	c.ID = f.seq
	f.rows[c.ID] = &c
	return f.FindByID(ctx, c.ID)
}

func (f *fakeLevels) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.GradeLevel, error) {
	l, ok := f.rows[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("grade level not found")
	}
	if v, ok := fields["academic_term_id"]; ok {
		l.AcademicTermID = v.(int64)
	}
	if v, ok := fields["name"]; ok {
		l.Name = v.(string)
	}
	return f.FindByID(ctx, id)
}

func (f *fakeLevels) SoftDelete(ctx context.Context, id int64) error {
	l, ok := f.rows[id]
	if !ok || l.DeletedAt != nil {
		return apperrors.NewResourceNotFoundError("grade level not found")
	}
	l.DeletedAt = ptr(time.Now())
	return nil
}

type fakeClasses struct {
	seq  int64
	rows map[int64]*models.Class
}

func newFakeClasses() *fakeClasses { return &fakeClasses{rows: map[int64]*models.Class{}} }

func (f *fakeClasses) List(ctx context.Context, filter models.YearFilter) ([]*models.Class, error) {
	out := []*models.Class{}
	for _, c := range f.rows {
		if c.DeletedAt != nil {
			continue
		}
		if filter.AcademicYearID != 0 && c.AcademicYearID != filter.AcademicYearID {
			continue
		}
		cc := *c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeClasses) FindByID(ctx context.Context, id int64) (*models.Class, error) {
	c, ok := f.rows[id]
	if !ok || c.DeletedAt != nil {
		return nil, apperrors.NewResourceNotFoundError("class not found")
	}
	cc := *c
	return &cc, nil
}

func (f *fakeClasses) Create(ctx context.Context, class *models.Class) (*models.Class, error) {
	f.seq++
	c := *class
	c.ID = f.seq
	f.rows[c.ID] = &c
	return f.FindByID(ctx, c.ID)
}

func (f *fakeClasses) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Class, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("class not found")
	}
	if v, ok := fields["name"]; ok {
		c.Name = v.(string)
	}
	if v, ok := fields["academic_year_id"]; ok {
		c.AcademicYearID = v.(int64)
	}
	return f.FindByID(ctx, id)
}

func (f *fakeClasses) SoftDelete(ctx context.Context, id int64) error {
	c, ok := f.rows[id]
	if !ok || c.DeletedAt != nil {
		return apperrors.NewResourceNotFoundError("class not found")
	}
	c.DeletedAt = ptr(time.Now())
	return nil
}

type fakeBooks struct {
	seq  int64
	rows map[int64]*models.Textbook
}

func newFakeBooks() *fakeBooks { return &fakeBooks{rows: map[int64]*models.Textbook{}} }

func (f *fakeBooks) List(ctx context.Context, filter models.YearFilter) ([]*models.Textbook, error) {
	out := []*models.Textbook{}
	for _, b := range f.rows {
		if b.DeletedAt == nil && (filter.AcademicYearID == 0 || b.AcademicYearID == filter.AcademicYearID) {
			c := *b
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeBooks) FindByID(ctx context.Context, id int64) (*models.Textbook, error) {
	b, ok := f.rows[id]
	if !ok || b.DeletedAt != nil {
		return nil, apperrors.NewResourceNotFoundError("textbook not found")
	}
	c := *b
	return &c, nil
}

func (f *fakeBooks) Create(ctx context.Context, book *models.Textbook) (*models.Textbook, error) {
	f.seq++
	c := *book
	c.ID = f.seq
	f.rows[c.ID] = &c
	return f.FindByID(ctx, c.ID)
}

func (f *fakeBooks) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Textbook, error) {
	b, ok := f.rows[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("textbook not found")
	}
	if v, ok := fields["name"]; ok {
		b.Name = v.(string)
	}
	return f.FindByID(ctx, id)
}

func (f *fakeBooks) SoftDelete(ctx context.Context, id int64) error {
	b, ok := f.rows[id]
	if !ok || b.DeletedAt != nil {
		return apperrors.NewResourceNotFoundError("textbook not found")
	}
	b.DeletedAt = ptr(time.Now())
	return nil
}

type fakeExams struct {
	seq  int64
	rows map[int64]*models.ExamTitle
}

func newFakeExams() *fakeExams { return &fakeExams{rows: map[int64]*models.ExamTitle{}} }

func (f *fakeExams) ListByYear(ctx context.Context, yearID int64) ([]*models.ExamTitle, error) {
	out := []*models.ExamTitle{}
	for _, e := range f.rows {
		if e.DeletedAt == nil && e.AcademicYearID == yearID {
			c := *e
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeExams) FindByID(ctx context.Context, id int64) (*models.ExamTitle, error) {
	e, ok := f.rows[id]
	if !ok || e.DeletedAt != nil {
		return nil, apperrors.NewResourceNotFoundError("exam title not found")
	}
	c := *e
	return &c, nil
}

func (f *fakeExams) Create(ctx context.Context, exam *models.ExamTitle) (*models.ExamTitle, error) {
	f.seq++
	c := *exam
	c.ID = f.seq
	f.rows[c.ID] = &c
	return f.FindByID(ctx, c.ID)
}

func (f *fakeExams) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.ExamTitle, error) {
	e, ok := f.rows[id]
	if !ok || e.DeletedAt != nil {
		return nil, apperrors.NewResourceNotFoundError("exam title not found")
	}
	if v, ok := fields["name"]; ok {
		e.Name = v.(string)
	}
	if v, ok := fields["status"]; ok {
		e.Status = v.(models.ExamStatus)
	}
	return f.FindByID(ctx, id)
}

func (f *fakeExams) SoftDelete(ctx context.Context, id int64) error {
	e, ok := f.rows[id]
	if !ok || e.DeletedAt != nil {
		return apperrors.NewResourceNotFoundError("exam title not found")
	}
	e.DeletedAt = ptr(time.Now())
	return nil
}

type fakeStudents struct {
	seq  int64
	rows map[int64]*models.Student
	// columns last written per student
	written map[int64]map[string]interface{}
	// unenrolled is returned as is by ListUnenrolled
	unenrolled []*models.Student
}

func newFakeStudents() *fakeStudents {
	return &fakeStudents{rows: map[int64]*models.Student{}, written: map[int64]map[string]interface{}{}}
}

func (f *fakeStudents) add(first, last string) *models.Student {
	f.seq++
	s := &models.Student{ID: f.seq, FirstName: first, LastName: last}
	f.rows[s.ID] = s
	return s
}

func (f *fakeStudents) List(ctx context.Context) ([]*models.Student, error) {
	out := []*models.Student{}
	for _, s := range f.rows {
		if s.DeletedAt == nil {
			c := *s
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeStudents) ListUnenrolled(ctx context.Context, yearID int64) ([]*models.Student, error) {
	return f.unenrolled, nil
}

func (f *fakeStudents) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	s, ok := f.rows[id]
	if !ok || s.DeletedAt != nil {
		return nil, apperrors.NewResourceNotFoundError("student not found")
	}
	c := *s
	return &c, nil
}

func (f *fakeStudents) apply(s *models.Student, fields map[string]interface{}) {
	for k, v := range fields {
		str, _ := v.(string)
		switch k {
		case "first_name":
			s.FirstName = str
		case "last_name":
			s.LastName = str
		case "birth_date":
			s.BirthDate = ptr(str)
		case "photo":
			s.Photo = ptr(str)
		}
	}
	merged := f.written[s.ID]
	if merged == nil {
		merged = map[string]interface{}{}
		f.written[s.ID] = merged
	}
	for k, v := range fields {
		merged[k] = v
	}
}

func (f *fakeStudents) Create(ctx context.Context, fields map[string]interface{}) (int64, error) {
	f.seq++
	s := &models.Student{ID: f.seq}
	f.rows[s.ID] = s
	f.apply(s, fields)
	return s.ID, nil
}

func (f *fakeStudents) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Student, error) {
	s, ok := f.rows[id]
	if !ok || s.DeletedAt != nil {
		return nil, apperrors.NewResourceNotFoundError("student not found")
	}
	f.apply(s, fields)
	return f.FindByID(ctx, id)
}

func (f *fakeStudents) SoftDelete(ctx context.Context, id int64) error {
	s, ok := f.rows[id]
	if !ok || s.DeletedAt != nil {
		return apperrors.NewResourceNotFoundError("student not found")
	}
	s.DeletedAt = ptr(time.Now())
	return nil
}

type fakeUsers struct {
	seq     int64
	rows    map[int64]*models.User
	written map[int64]map[string]interface{}
	touched []int64
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{rows: map[int64]*models.User{}, written: map[int64]map[string]interface{}{}}
}

func (f *fakeUsers) add(u *models.User) *models.User {
	f.seq++
	u.ID = f.seq
	f.rows[u.ID] = u
	return u
}

func (f *fakeUsers) List(ctx context.Context) ([]*models.User, error) {
	out := []*models.User{}
	for _, u := range f.rows {
		c := *u
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeUsers) FindByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := f.rows[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("user not found")
	}
	c := *u
	return &c, nil
}

func (f *fakeUsers) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range f.rows {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("user not found")
}

func (f *fakeUsers) UsernameExists(ctx context.Context, username string, excludeID int64) (bool, error) {
	for _, u := range f.rows {
		if u.Username == username && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) apply(u *models.User, fields map[string]interface{}) {
	for k, v := range fields {
		switch k {
		case "first_name":
			u.FirstName = v.(string)
		case "last_name":
			u.LastName = v.(string)
		case "username":
			u.Username = v.(string)
		case "password_hash":
			u.PasswordHash = v.(string)
		case "is_active":
			u.IsActive = v.(bool)
		case "birth_date":
			u.BirthDate = v.(*string)
		}
	}
	f.written[u.ID] = fields
}

func (f *fakeUsers) Create(ctx context.Context, fields map[string]interface{}) (*models.User, error) {
	u := f.add(&models.User{})
	f.apply(u, fields)
	return f.FindByID(ctx, u.ID)
}

func (f *fakeUsers) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.User, error) {
	u, ok := f.rows[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("user not found")
	}
	f.apply(u, fields)
	return f.FindByID(ctx, id)
}

func (f *fakeUsers) Delete(ctx context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return apperrors.NewResourceNotFoundError("user not found")
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeUsers) TouchLastLogin(ctx context.Context, id int64) error {
	f.touched = append(f.touched, id)
	return nil
}

type fakeStaffRoles struct {
	seq  int64
	rows map[int64]*models.StaffRole
}

func newFakeStaffRoles() *fakeStaffRoles { return &fakeStaffRoles{rows: map[int64]*models.StaffRole{}} }

func (f *fakeStaffRoles) ListByYear(ctx context.Context, yearID int64) ([]*models.StaffRole, error) {
	out := []*models.StaffRole{}
	for _, r := range f.rows {
		if r.AcademicYearID == yearID {
			c := *r
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeStaffRoles) FindByID(ctx context.Context, id int64) (*models.StaffRole, error) {
	r, ok := f.rows[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("staff role not found")
	}
	c := *r
	return &c, nil
}

func (f *fakeStaffRoles) Exists(ctx context.Context, key models.StaffRoleKey, excludeID int64) (bool, error) {
	for _, r := range f.rows {
		if r.ID == excludeID {
			continue
		}
		if r.UserID == key.UserID && r.RoleID == key.RoleID && r.AcademicYearID == key.AcademicYearID &&
			sameID(r.ClassID, key.ClassID) && sameID(r.AcademicTermID, key.AcademicTermID) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStaffRoles) Create(ctx context.Context, role *models.StaffRole) (*models.StaffRole, error) {
	f.seq++
	c := *role
	c.ID = f.seq
	f.rows[c.ID] = &c
	return f.FindByID(ctx, c.ID)
}

func (f *fakeStaffRoles) Update(ctx context.Context, id int64, roleID int, classID, termID *int64) (*models.StaffRole, error) {
	r, ok := f.rows[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("staff role not found")
	}
	r.RoleID = roleID
	r.ClassID = classID
	r.AcademicTermID = termID
	return f.FindByID(ctx, id)
}

func (f *fakeStaffRoles) Delete(ctx context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return apperrors.NewResourceNotFoundError("staff role not found")
	}
	delete(f.rows, id)
	return nil
}

type fakeEnrollments struct {
	seq  int64
	rows map[int64]*models.Enrollment
}

func newFakeEnrollments() *fakeEnrollments {
	return &fakeEnrollments{rows: map[int64]*models.Enrollment{}}
}

func (f *fakeEnrollments) live(studentID, yearID int64) *models.Enrollment {
	for _, e := range f.rows {
		if e.StudentID == studentID && e.AcademicYearID == yearID && e.DeletedAt == nil {
			return e
		}
	}
	return nil
}

func (f *fakeEnrollments) Upsert(ctx context.Context, studentID, yearID int64, classID *int64) (*models.Enrollment, error) {
	if e := f.live(studentID, yearID); e != nil {
		e.ClassID = classID
		e.UpdatedAt = time.Now()
		return f.FindByID(ctx, e.ID)
	}
	return f.Create(ctx, &models.Enrollment{
		StudentID:      studentID,
		AcademicYearID: yearID,
		ClassID:        classID,
		Status:         models.EnrollmentActive,
	})
}

func (f *fakeEnrollments) List(ctx context.Context, filter models.EnrollmentFilter) ([]*models.Enrollment, error) {
	out := []*models.Enrollment{}
	for _, e := range f.rows {
		if e.DeletedAt != nil {
			continue
		}
		if filter.AcademicYearID != nil && e.AcademicYearID != *filter.AcademicYearID {
			continue
		}
		if filter.ClassID != nil && !sameID(e.ClassID, filter.ClassID) {
			continue
		}
		if filter.StudentID != nil && e.StudentID != *filter.StudentID {
			continue
		}
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		c := *e
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeEnrollments) FindByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	e, ok := f.rows[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("enrollment not found")
	}
	c := *e
	return &c, nil
}

func (f *fakeEnrollments) FindLiveByStudentYear(ctx context.Context, studentID, yearID int64) (*models.Enrollment, error) {
	if e := f.live(studentID, yearID); e != nil {
		c := *e
		return &c, nil
	}
	return nil, nil
}

func (f *fakeEnrollments) Create(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error) {
	if f.live(enrollment.StudentID, enrollment.AcademicYearID) != nil {
		return nil, apperrors.NewConflictError("student already enrolled for this year")
	}
	f.seq++
	c := *enrollment
	c.ID = f.seq
	c.CreatedAt = time.Now()
	f.rows[c.ID] = &c
	return f.FindByID(ctx, c.ID)
}

func (f *fakeEnrollments) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Enrollment, error) {
	e, ok := f.rows[id]
	if !ok || e.DeletedAt != nil {
		return nil, apperrors.NewResourceNotFoundError("enrollment not found")
	}
	for k, v := range fields {
		switch k {
		case "class_id":
			switch c := v.(type) {
			case int64:
				e.ClassID = ptr(c)
			case *int64:
				e.ClassID = c
			}
		case "status":
			e.Status = v.(models.EnrollmentStatus)
		}
	}
	return f.FindByID(ctx, id)
}

func (f *fakeEnrollments) SoftDelete(ctx context.Context, id int64) error {
	e, ok := f.rows[id]
	if !ok || e.DeletedAt != nil {
		return apperrors.NewResourceNotFoundError("enrollment not found")
	}
	e.DeletedAt = ptr(time.Now())
	return nil
}

var (
	_ AcademicYearStore = (*fakeYears)(nil)
	_ AcademicTermStore = (*fakeTerms)(nil)
	_ GradeLevelStore   = (*fakeLevels)(nil)
	_ ClassStore        = (*fakeClasses)(nil)
	_ TextbookStore     = (*fakeBooks)(nil)
	_ ExamTitleStore    = (*fakeExams)(nil)
	_ StudentStore      = (*fakeStudents)(nil)
	_ UserStore         = (*fakeUsers)(nil)
	_ StaffRoleStore    = (*fakeStaffRoles)(nil)
	_ EnrollmentStore   = (*fakeEnrollments)(nil)
)
