package servehttp

import (
	"deskgate/guard"
	"deskgate/perm"
	"deskgate/session"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageView is what the shell receives for a navigable page: which page
// to render and which actions the operator may take on its resource.
type PageView struct {
	Page             string   `json:"page"`
	Resource         string   `json:"resource,omitempty"`
	AvailableActions []string `json:"availableActions,omitempty"`
}

// RegisterPageRoutes wires the navigable pages of the operator shell
// behind route guards. The dashboard, forbidden and help pages stay
// unguarded: they are redirect destinations.
func RegisterPageRoutes(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	pages := r.Group("/pages", middleWares...)

	pages.GET("/dashboard", PageHandler("dashboard", ""))
	pages.GET("/forbidden", PageHandler("forbidden", ""))
	pages.GET("/help", PageHandler("help", ""))

	viewGuarded := func(resource string) gin.HandlerFunc {
		return guard.RouteGuard{
			Requirement:   perm.Requirement{Resource: resource, Action: perm.ActionView},
			ShowForbidden: true,
		}.Filter()
	}

	pages.GET("/tickets", viewGuarded(perm.ResourceTickets), PageHandler("tickets", perm.ResourceTickets))
	pages.GET("/chats", viewGuarded(perm.ResourceChats), PageHandler("chats", perm.ResourceChats))
	pages.GET("/references", viewGuarded(perm.ResourceReferences), PageHandler("references", perm.ResourceReferences))
	pages.GET("/analytics", viewGuarded(perm.ResourceAnalytics), PageHandler("analytics", perm.ResourceAnalytics))
	pages.GET("/user-management", viewGuarded(perm.ResourceUsers), PageHandler("user-management", perm.ResourceUsers))
	pages.GET("/roles", viewGuarded(perm.ResourceRoles), PageHandler("roles", perm.ResourceRoles))
	pages.GET("/notifications", viewGuarded(perm.ResourceNotifications), PageHandler("notifications", perm.ResourceNotifications))
	pages.GET("/settings", viewGuarded(perm.ResourceSettings), PageHandler("settings", perm.ResourceSettings))
}

func PageHandler(page, resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		view := PageView{Page: page, Resource: resource}
		if resource != "" {
			if store := session.FindStore(c); store != nil {
				view.AvailableActions = perm.AvailableActions(store.Permissions(), resource)
			}
		}
		c.JSON(http.StatusOK, &view)
	}
}
