// Package contract exposes the request and response shapes the CLI renders,
// so presentation code does not reach into the application layer directly.
package contract

import "github.com/alexanderramin/teamlens/internal/app"

type DashboardRequest = app.DashboardRequest

func NewDashboardRequest(personaID string) DashboardRequest {
	return app.NewDashboardRequest(personaID)
}

type DashboardResponse = app.DashboardResponse

type MemberView = app.MemberView

type CourseRow = app.CourseRow

type EventRow = app.EventRow

type ImportResult = app.ImportResult
