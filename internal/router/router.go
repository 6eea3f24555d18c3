// Package router maps (role, action, method) onto exactly one repository
// call sequence and one view. Both routing tables are static, built and
// verified at startup; there is no dynamic registration. Every handler
// receives the session principal explicitly, never via ambient lookup.
package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"campussync/internal/apperr"
	"campussync/internal/metrics"
	"campussync/internal/model"
	"campussync/internal/session"
)

// StudentStore lists and creates students.
type StudentStore interface {
	Insert(ctx context.Context, s model.Student) (int64, error)
	List(ctx context.Context) ([]model.Student, error)
}

// FacultyStore lists and creates faculty.
type FacultyStore interface {
	Insert(ctx context.Context, f model.Faculty) (int64, error)
	List(ctx context.Context) ([]model.Faculty, error)
}

// CourseStore lists and creates courses.
type CourseStore interface {
	Insert(ctx context.Context, name string) (int64, error)
	List(ctx context.Context) ([]model.Course, error)
}

// SubjectStore lists joined subjects and creates subjects.
type SubjectStore interface {
	Insert(ctx context.Context, s model.Subject) (int64, error)
	ListJoined(ctx context.Context) ([]model.SubjectDetail, error)
}

// NoticeStore lists and creates notices.
type NoticeStore interface {
	Insert(ctx context.Context, title, message string) (int64, error)
	List(ctx context.Context) ([]model.Notice, error)
}

// RecordStore reads a student's own attendance and marks.
type RecordStore interface {
	AttendanceFor(ctx context.Context, studentID int64) ([]model.AttendanceEntry, error)
	MarksFor(ctx context.Context, studentID int64) ([]model.MarkEntry, error)
}

// Deps are the repositories the routing tables dispatch into.
type Deps struct {
	Students StudentStore
	Faculty  FacultyStore
	Courses  CourseStore
	Subjects SubjectStore
	Notices  NoticeStore
	Records  RecordStore
}

type getHandler func(ctx context.Context, p session.Principal) (View, error)

// postHandler performs one mutation and names the GET action to redirect to,
// so a refresh after submit never resubmits.
type postHandler func(ctx context.Context, p session.Principal, form url.Values) (string, error)

// Router dispatches portal actions.
type Router struct {
	deps       Deps
	adminGet   map[string]getHandler
	adminPost  map[string]postHandler
	studentGet map[string]getHandler
	facultyGet map[string]getHandler
}

// Actions per table. New verifies each declared action has a handler, so a
// missing entry fails at startup rather than at request time.
var (
	adminGetActions   = []string{"dashboard", "notices", "students", "faculty", "courses", "subjects", "addSubject", "addCourse", "addNotice"}
	adminPostActions  = []string{"addStudent", "addFaculty", "addCourse", "addSubject", "saveNotice"}
	studentGetActions = []string{"dashboard", "attendance", "marks", "notices"}
	facultyGetActions = []string{"dashboard", "notices"}
)

// New builds the two routing tables.
func New(deps Deps) (*Router, error) {
	r := &Router{deps: deps}
	r.adminGet = map[string]getHandler{
		"dashboard":  r.adminDashboard,
		"notices":    r.adminNotices,
		"students":   r.adminStudents,
		"faculty":    r.adminFaculty,
		"courses":    r.adminCourses,
		"subjects":   r.adminSubjects,
		"addSubject": r.adminAddSubjectForm,
		"addCourse":  r.adminAddCourseForm,
		"addNotice":  r.adminAddNoticeForm,
	}
	r.adminPost = map[string]postHandler{
		"addStudent": r.adminAddStudent,
		"addFaculty": r.adminAddFaculty,
		"addCourse":  r.adminAddCourse,
		"addSubject": r.adminAddSubject,
		"saveNotice": r.adminSaveNotice,
	}
	r.studentGet = map[string]getHandler{
		"dashboard":  r.studentDashboard,
		"attendance": r.studentAttendance,
		"marks":      r.studentMarks,
		"notices":    r.studentNotices,
	}
	r.facultyGet = map[string]getHandler{
		"dashboard": r.facultyDashboard,
		"notices":   r.facultyNotices,
	}

	for _, a := range adminGetActions {
		if r.adminGet[a] == nil {
			return nil, fmt.Errorf("admin GET action %q has no handler", a)
		}
	}
	for _, a := range adminPostActions {
		if r.adminPost[a] == nil {
			return nil, fmt.Errorf("admin POST action %q has no handler", a)
		}
	}
	for _, a := range studentGetActions {
		if r.studentGet[a] == nil {
			return nil, fmt.Errorf("student GET action %q has no handler", a)
		}
	}
	for _, a := range facultyGetActions {
		if r.facultyGet[a] == nil {
			return nil, fmt.Errorf("faculty GET action %q has no handler", a)
		}
	}
	return r, nil
}

// AdminGET serves /admin?action=…. Unknown actions fall back to the
// dashboard, matching the legacy portal.
func (r *Router) AdminGET(c *gin.Context) {
	r.serveGET(c, r.adminGet, r.adminGet["dashboard"])
}

// StudentGET serves /student?action=….
func (r *Router) StudentGET(c *gin.Context) {
	r.serveGET(c, r.studentGet, r.studentGet["dashboard"])
}

// FacultyGET serves /faculty?action=…. Faculty is a read-only consumer role;
// it sees its dashboard and the shared notice board.
func (r *Router) FacultyGET(c *gin.Context) {
	r.serveGET(c, r.facultyGet, r.facultyGet["dashboard"])
}

// AdminPOST serves mutations. An unknown action is a client bug and gets a
// 400 instead of the legacy silent drop.
func (r *Router) AdminPOST(c *gin.Context) {
	p, ok := session.FromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, session.LoginPath)
		return
	}
	action := c.PostForm("action")
	handler, ok := r.adminPost[action]
	if !ok {
		metrics.ActionHandled(string(p.Role), action, "unknown")
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
		return
	}
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed form"})
		return
	}
	target, err := handler(c.Request.Context(), p, c.Request.PostForm)
	if err != nil {
		metrics.ActionHandled(string(p.Role), action, "error")
		writeError(c, err)
		return
	}
	metrics.ActionHandled(string(p.Role), action, "ok")
	c.Redirect(http.StatusSeeOther, target)
}

func (r *Router) serveGET(c *gin.Context, table map[string]getHandler, fallback getHandler) {
	p, ok := session.FromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, session.LoginPath)
		return
	}
	action := c.Query("action")
	if action == "" {
		action = "dashboard"
	}
	handler, ok := table[action]
	if !ok {
		handler = fallback
		action = "dashboard"
	}
	view, err := handler(c.Request.Context(), p)
	if err != nil {
		metrics.ActionHandled(string(p.Role), action, "error")
		writeError(c, err)
		return
	}
	metrics.ActionHandled(string(p.Role), action, "ok")
	c.JSON(http.StatusOK, view)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrMalformedInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrConstraint):
		c.JSON(http.StatusConflict, gin.H{"error": "could not add record: duplicate or missing reference"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperr.ErrRequestFailed.Error()})
	}
}
