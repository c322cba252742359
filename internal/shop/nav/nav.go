// Package nav decides which view a navigation request resolves to. It is a
// pure decision table over session state; it owns no state of its own.
package nav

type Route string

const (
	RouteDashboard Route = "/"
	RouteLogin     Route = "/login"
	RouteRegister  Route = "/register"
)

// public routes are reachable only while logged out.
func (r Route) public() bool {
	return r == RouteLogin || r == RouteRegister
}

func (r Route) known() bool {
	return r == RouteDashboard || r.public()
}

// State is the slice of session state the guard depends on.
type State struct {
	Loading       bool
	Authenticated bool
}

type Action int

const (
	// ActionWait means the startup transition has not settled; render a
	// waiting indicator and make no navigation decision yet.
	ActionWait Action = iota

	// ActionRender means the requested view may be shown.
	ActionRender

	// ActionRedirect means the navigation resolves to Target instead.
	ActionRedirect
)

// Decision is the guard's verdict for a single navigation.
type Decision struct {
	Action Action

	// Target is the destination when redirecting.
	Target Route

	// ReplaceHistory means the redirect must replace the current history
	// entry so back-navigation cannot return to the denied view.
	ReplaceHistory bool
}

// Resolve evaluates one navigation request against the current state.
// Protected views require authentication; public views (login, register)
// bounce already-authenticated users to the dashboard; unmatched paths go
// home unconditionally.
func Resolve(route Route, st State) Decision {
	if !route.known() {
		return Decision{Action: ActionRedirect, Target: RouteDashboard, ReplaceHistory: true}
	}

	if st.Loading {
		return Decision{Action: ActionWait}
	}

	if route.public() {
		if st.Authenticated {
			return Decision{Action: ActionRedirect, Target: RouteDashboard, ReplaceHistory: true}
		}
		return Decision{Action: ActionRender}
	}

	if !st.Authenticated {
		return Decision{Action: ActionRedirect, Target: RouteLogin, ReplaceHistory: true}
	}

	return Decision{Action: ActionRender}
}

// Navigator is the navigation port. Implementations perform the actual view
// switch; the guard itself never does.
type Navigator interface {
	Navigate(target Route, replaceHistory bool)
}
