package guard

import (
	"deskgate/bizerror"
	"deskgate/misc"
	"deskgate/perm"
	"deskgate/session"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Fixed navigation destinations. They are never guarded themselves,
// so a redirect can not loop.
const (
	LoginLocation     = "/pages/login"
	ForbiddenLocation = "/pages/forbidden"
	DashboardLocation = "/pages/dashboard"
)

// RouteGuard gates one navigable page. A denied request is redirected:
// to the forbidden page when ShowForbidden is set, otherwise silently
// to RedirectTo (the dashboard by default).
type RouteGuard struct {
	Requirement   perm.Requirement
	RedirectTo    string
	ShowForbidden bool
}

// Filter builds the gin middleware for the guarded route. When the
// session is authenticated but its permissions are not resolved yet,
// the decision is deferred: the guard attempts the load first and
// reports an unresolved state rather than denying prematurely.
func (g RouteGuard) Filter() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := session.FindStore(c)
		if store == nil {
			panic(bizerror.ErrUnauthenticated)
		}

		if !store.PermissionsResolved() {
			if _, err := store.LoadPermissions(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, &misc.ErrorBody{
					Code: "session.permissions_unresolved", Message: "permissions are not resolved yet"})
				c.Abort()
				return
			}
		}

		if ResolveAccess(store.Permissions(), g.Requirement) {
			c.Next()
			return
		}

		if g.ShowForbidden {
			c.Redirect(http.StatusFound, ForbiddenLocation)
		} else {
			redirectTo := g.RedirectTo
			if redirectTo == "" {
				redirectTo = DashboardLocation
			}
			c.Redirect(http.StatusFound, redirectTo)
		}
		c.Abort()
	}
}
