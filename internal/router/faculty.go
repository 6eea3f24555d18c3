package router

import (
	"context"

	"campussync/internal/session"
)

func (r *Router) facultyDashboard(ctx context.Context, _ session.Principal) (View, error) {
	return View{Name: "faculty/dashboard"}, nil
}

func (r *Router) facultyNotices(ctx context.Context, _ session.Principal) (View, error) {
	notices, err := r.deps.Notices.List(ctx)
	if err != nil {
		return View{}, fetchFailed(err)
	}
	return View{Name: "faculty/notices", Bindings: map[string]any{"noticeList": notices}}, nil
}
