package router

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"campussync/internal/apperr"
	"campussync/internal/auth"
	"campussync/internal/model"
	"campussync/internal/session"
)

func (r *Router) adminDashboard(ctx context.Context, _ session.Principal) (View, error) {
	return View{Name: "admin/dashboard"}, nil
}

func (r *Router) adminNotices(ctx context.Context, _ session.Principal) (View, error) {
	notices, err := r.deps.Notices.List(ctx)
	if err != nil {
		return View{}, fetchFailed(err)
	}
	return View{Name: "admin/notices", Bindings: map[string]any{"noticeList": notices}}, nil
}

func (r *Router) adminStudents(ctx context.Context, _ session.Principal) (View, error) {
	students, err := r.deps.Students.List(ctx)
	if err != nil {
		return View{}, fetchFailed(err)
	}
	return View{Name: "admin/manage_students", Bindings: map[string]any{"students": students}}, nil
}

func (r *Router) adminFaculty(ctx context.Context, _ session.Principal) (View, error) {
	members, err := r.deps.Faculty.List(ctx)
	if err != nil {
		return View{}, fetchFailed(err)
	}
	return View{Name: "admin/manage_faculty", Bindings: map[string]any{"facultyData": members}}, nil
}

func (r *Router) adminCourses(ctx context.Context, _ session.Principal) (View, error) {
	courses, err := r.deps.Courses.List(ctx)
	if err != nil {
		return View{}, fetchFailed(err)
	}
	return View{Name: "admin/manage_courses", Bindings: map[string]any{"courseData": courses}}, nil
}

// adminSubjects gathers the joined subject listing plus the course and
// faculty lists, in that order. The three reads are not atomic; none of them
// feed a correctness decision.
func (r *Router) adminSubjects(ctx context.Context, _ session.Principal) (View, error) {
	subjects, err := r.deps.Subjects.ListJoined(ctx)
	if err != nil {
		return View{}, fetchFailed(err)
	}
	courses, err := r.deps.Courses.List(ctx)
	if err != nil {
		return View{}, fetchFailed(err)
	}
	members, err := r.deps.Faculty.List(ctx)
	if err != nil {
		return View{}, fetchFailed(err)
	}
	return View{Name: "admin/manage_subjects", Bindings: map[string]any{
		"subjectData": subjects,
		"courses":     courses,
		"faculty":     members,
	}}, nil
}

func (r *Router) adminAddSubjectForm(ctx context.Context, _ session.Principal) (View, error) {
	courses, err := r.deps.Courses.List(ctx)
	if err != nil {
		return View{}, fetchFailed(err)
	}
	members, err := r.deps.Faculty.List(ctx)
	if err != nil {
		return View{}, fetchFailed(err)
	}
	return View{Name: "admin/add_subject", Bindings: map[string]any{
		"courses":     courses,
		"facultyList": members,
	}}, nil
}

func (r *Router) adminAddCourseForm(ctx context.Context, _ session.Principal) (View, error) {
	return View{Name: "admin/add_course"}, nil
}

func (r *Router) adminAddNoticeForm(ctx context.Context, _ session.Principal) (View, error) {
	return View{Name: "admin/add_notice"}, nil
}

func (r *Router) adminAddStudent(ctx context.Context, _ session.Principal, form url.Values) (string, error) {
	name, err := requireField(form, "name")
	if err != nil {
		return "", err
	}
	email, err := requireField(form, "email")
	if err != nil {
		return "", err
	}
	password, err := requireField(form, "password")
	if err != nil {
		return "", err
	}
	course, err := requireField(form, "course")
	if err != nil {
		return "", err
	}
	semester, err := requireInt(form, "semester")
	if err != nil {
		return "", err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}
	if _, err := r.deps.Students.Insert(ctx, model.Student{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Course:       course,
		Semester:     semester,
	}); err != nil {
		return "", err
	}
	return "/admin?action=students", nil
}

func (r *Router) adminAddFaculty(ctx context.Context, _ session.Principal, form url.Values) (string, error) {
	name, err := requireField(form, "name")
	if err != nil {
		return "", err
	}
	email, err := requireField(form, "email")
	if err != nil {
		return "", err
	}
	password, err := requireField(form, "password")
	if err != nil {
		return "", err
	}
	department, err := requireField(form, "department")
	if err != nil {
		return "", err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}
	if _, err := r.deps.Faculty.Insert(ctx, model.Faculty{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Department:   department,
	}); err != nil {
		return "", err
	}
	return "/admin?action=faculty", nil
}

func (r *Router) adminAddCourse(ctx context.Context, _ session.Principal, form url.Values) (string, error) {
	name, err := requireField(form, "course_name")
	if err != nil {
		return "", err
	}
	if _, err := r.deps.Courses.Insert(ctx, name); err != nil {
		return "", err
	}
	return "/admin?action=courses", nil
}

func (r *Router) adminAddSubject(ctx context.Context, _ session.Principal, form url.Values) (string, error) {
	name, err := requireField(form, "subject_name")
	if err != nil {
		return "", err
	}
	courseID, err := requireInt64(form, "course_id")
	if err != nil {
		return "", err
	}
	facultyID, err := requireInt64(form, "faculty_id")
	if err != nil {
		return "", err
	}
	if _, err := r.deps.Subjects.Insert(ctx, model.Subject{
		Name:      name,
		CourseID:  courseID,
		FacultyID: facultyID,
	}); err != nil {
		return "", err
	}
	return "/admin?action=subjects", nil
}

func (r *Router) adminSaveNotice(ctx context.Context, _ session.Principal, form url.Values) (string, error) {
	title, err := requireField(form, "title")
	if err != nil {
		return "", err
	}
	message, err := requireField(form, "message")
	if err != nil {
		return "", err
	}
	if _, err := r.deps.Notices.Insert(ctx, title, message); err != nil {
		return "", err
	}
	return "/admin?action=dashboard&msg=NoticeAdded", nil
}

// fetchFailed wraps a repository read error so the HTTP layer renders the
// generic failure response, never a half-populated view.
func fetchFailed(err error) error {
	return fmt.Errorf("%w: %v", apperr.ErrRequestFailed, err)
}

func requireField(form url.Values, key string) (string, error) {
	val := strings.TrimSpace(form.Get(key))
	if val == "" {
		return "", fmt.Errorf("%w: missing %s", apperr.ErrMalformedInput, key)
	}
	return val, nil
}

func requireInt(form url.Values, key string) (int, error) {
	val, err := requireField(form, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be numeric", apperr.ErrMalformedInput, key)
	}
	return n, nil
}

func requireInt64(form url.Values, key string) (int64, error) {
	val, err := requireField(form, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be numeric", apperr.ErrMalformedInput, key)
	}
	return n, nil
}
