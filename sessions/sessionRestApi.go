package sessions

import (
	"deskgate/bizerror"
	"deskgate/session"
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterSessionHandler(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group("/v1/session", middleWares...)
	g.GET("", DetailSessionHandler)
}

// DetailSessionHandler returns the restored session state. The session
// filter has already rehydrated the store from durable storage when the
// process did not hold it live, so reaching this handler is the
// session-restore path of the shell.
func DetailSessionHandler(c *gin.Context) {
	store := session.FindStore(c)
	if store == nil {
		panic(bizerror.ErrUnauthenticated)
	}
	state := store.State()
	c.JSON(http.StatusOK, &state)
}
