package models

// Route is an application navigation target, rendered in the status line
// and used to address a project's dashboard.
type Route string

// HomeRoute is where the app starts before any project is selected.
const HomeRoute Route = "/"

// DashboardRoute returns the dashboard route for a project subdomain.
// The subdomain is expected to be the one echoed back by the store,
// not necessarily the text the user typed.
func DashboardRoute(subdomain string) Route {
	return Route("/dashboard/" + subdomain)
}
