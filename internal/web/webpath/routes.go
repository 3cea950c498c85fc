package webpath

import "strconv"

const (
	Signin  = "/signin"
	Signup  = "/signup"
	Signout = "/signout"
	Home    = "/"

	AdminDashboard = "/admindashboard"
	AdminNewEvent  = "/admin/events/new"
	AdminEdit      = "/admin/events/:id/edit"
	AdminDelete    = "/admin/events/:id/delete"

	PlayerDashboard = "/playerdashboard"
	PlayerJoin      = "/player/events/:id/join"
	PlayerLeave     = "/player/events/:id/leave"

	Api                = "/api/v1"
	ApiToken           = Api + "/token"
	ApiEvents          = Api + "/events"
	ApiEvent           = ApiEvents + "/:id"
	ApiEventMembership = ApiEvent + "/membership"
	ApiDashboard       = Api + "/dashboard"
)

func Path() map[string]string {
	return map[string]string{
		"SignUp":          Signup,
		"SignIn":          Signin,
		"SignOut":         Signout,
		"Home":            Home,
		"AdminDashboard":  AdminDashboard,
		"AdminNewEvent":   AdminNewEvent,
		"PlayerDashboard": PlayerDashboard,
	}
}

// WithID fills the :id parameter of a route.
func WithID(route string, id int64) string {
	const param = ":id"
	for i := 0; i+len(param) <= len(route); i++ {
		if route[i:i+len(param)] == param {
			return route[:i] + strconv.FormatInt(id, 10) + route[i+len(param):]
		}
	}
	return route
}
