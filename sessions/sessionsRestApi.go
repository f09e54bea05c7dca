package sessions

import (
	"deskgate/bizerror"
	"deskgate/client/crm"
	"deskgate/common"
	"deskgate/misc"
	"deskgate/seclog"
	"deskgate/session"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"golang.org/x/time/rate"
)

var loginRateLimiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 10)

func RegisterSessionsHandler(r *gin.Engine) {
	g := r.Group("/v1/sessions")
	g.POST("", SimpleLoginHandler)
	g.DELETE("", SimpleLogoutHandler)
}

func SimpleLoginHandler(c *gin.Context) {
	if !loginRateLimiter.Allow() {
		c.JSON(http.StatusTooManyRequests, &misc.ErrorBody{Code: "common.too_many_requests", Message: "too many login attempts"})
		return
	}

	login := session.LoginRequest{}
	if err := c.ShouldBindBodyWith(&login, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	identity, token, err := crm.LoginFunc(c.Request.Context(), login.Name, login.Password)
	if err != nil {
		panic(err)
	}

	store, err := session.ActiveManager.Create(c.Request.Context(), *identity, token)
	if err != nil {
		panic(err)
	}
	state := store.State()
	seclog.RecordSessionEventFunc(c.Request.Context(), seclog.EventLogin, state.Identity, loginOutcome(state))

	c.SetCookie(session.KeySecToken, token, int(session.TokenExpiration/time.Second), "/", "", false, false)
	c.JSON(http.StatusOK, &state)
}

func SimpleLogoutHandler(c *gin.Context) {
	token, _ := c.Cookie(session.KeySecToken) // ErrNoCookie
	if token != "" {
		identity := session.Identity{}
		if store := session.ActiveManager.Resolve(c.Request.Context(), token); store != nil {
			identity = store.State().Identity
		}
		session.ActiveManager.Discard(c.Request.Context(), token)
		seclog.RecordSessionEventFunc(c.Request.Context(), seclog.EventLogout, identity, "")
		// best effort, the local teardown is already done
		if err := crm.RevokeSessionFunc(c.Request.Context(), token); err != nil {
			common.Log.Warnf("failed to revoke session upstream: %v", err)
		}
	}
	c.SetCookie(session.KeySecToken, "", -1, "/", "", false, false)
	c.AbortWithStatus(http.StatusNoContent)
}

func loginOutcome(state session.State) string {
	if !state.PermsLoaded {
		return "permissions unresolved"
	}
	return "permissions resolved"
}
