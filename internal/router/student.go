package router

import (
	"context"

	"campussync/internal/session"
)

func (r *Router) studentDashboard(ctx context.Context, _ session.Principal) (View, error) {
	return View{Name: "student/dashboard"}, nil
}

// Attendance and marks queries are scoped by the session principal's id;
// request parameters are never consulted.
func (r *Router) studentAttendance(ctx context.Context, p session.Principal) (View, error) {
	entries, err := r.deps.Records.AttendanceFor(ctx, p.ID)
	if err != nil {
		return View{}, fetchFailed(err)
	}
	return View{Name: "student/attendance", Bindings: map[string]any{"attendanceList": entries}}, nil
}

func (r *Router) studentMarks(ctx context.Context, p session.Principal) (View, error) {
	entries, err := r.deps.Records.MarksFor(ctx, p.ID)
	if err != nil {
		return View{}, fetchFailed(err)
	}
	return View{Name: "student/marks", Bindings: map[string]any{"marksList": entries}}, nil
}

func (r *Router) studentNotices(ctx context.Context, _ session.Principal) (View, error) {
	notices, err := r.deps.Notices.List(ctx)
	if err != nil {
		return View{}, fetchFailed(err)
	}
	return View{Name: "student/notices", Bindings: map[string]any{"noticeList": notices}}, nil
}
