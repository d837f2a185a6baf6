// Package nav owns the screen table of the dashboard: which paths exist,
// which of them require a completed login, and where to send the user when
// the requirement is not met.
package nav

// Screen paths.
const (
	PathLogin    = "/login"
	PathRegister = "/register"
	PathUsers    = "/users"
	PathRanks    = "/ranks"
	PathOffices  = "/office-types"
	PathDiary    = "/diary"
	PathReports  = "/reports"
	PathSettings = "/settings"

	// PathDefault is where an authenticated user lands after login, or when
	// visiting a public page while already logged in.
	PathDefault = PathUsers
)

// Decision is the route guard outcome for one navigation attempt.
// Redirect is empty when no redirect is needed; RenderChildren reports
// whether the requested screen may be shown.
type Decision struct {
	Redirect       string
	RenderChildren bool
}

// Decide is the guard itself, a pure function of the auth requirement and the
// session state.
//
// While the session gate is still restoring a stored token, nothing is
// rendered and nothing redirects; this avoids a flash of the wrong screen.
// An unauthenticated user asking for a protected screen goes to the login
// screen; an authenticated user asking for a public one (login/register) goes
// to the default screen. Otherwise the requested screen renders.
func Decide(requireAuth, authenticated, loading bool) Decision {
	if loading {
		return Decision{}
	}
	if requireAuth && !authenticated {
		return Decision{Redirect: PathLogin}
	}
	if !requireAuth && authenticated {
		return Decision{Redirect: PathDefault}
	}
	return Decision{RenderChildren: true}
}
