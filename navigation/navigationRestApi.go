package navigation

import (
	"deskgate/bizerror"
	"deskgate/perm"
	"deskgate/session"
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterNavigationHandler(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group("/v1", middleWares...)
	g.GET("/navigation", MenuQueryHandler)
	g.GET("/session/capabilities", CapabilitiesQueryHandler)
	g.GET("/resources/:resource/actions", AvailableActionsQueryHandler)
}

// MenuQueryHandler returns the sidebar entries visible to the session.
// A session with unresolved permissions still receives the
// unrestricted entries, so the shell stays navigable.
func MenuQueryHandler(c *gin.Context) {
	store := session.FindStore(c)
	if store == nil {
		panic(bizerror.ErrUnauthenticated)
	}
	c.JSON(http.StatusOK, FilterMenu(store.Permissions(), AllMenuItems))
}

func CapabilitiesQueryHandler(c *gin.Context) {
	store := session.FindStore(c)
	if store == nil {
		panic(bizerror.ErrUnauthenticated)
	}
	capabilities := BuildCapabilities(store.Permissions())
	c.JSON(http.StatusOK, &capabilities)
}

func AvailableActionsQueryHandler(c *gin.Context) {
	store := session.FindStore(c)
	if store == nil {
		panic(bizerror.ErrUnauthenticated)
	}
	c.JSON(http.StatusOK, perm.AvailableActions(store.Permissions(), c.Param("resource")))
}
