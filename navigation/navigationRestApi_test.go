package navigation_test

import (
	"context"
	"deskgate/bizerror"
	"deskgate/navigation"
	"deskgate/perm"
	"deskgate/session"
	"deskgate/testinfra"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
)

func beforeEachNavigationRestApiCase(t *testing.T) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(bizerror.ErrorHandling())
	navigation.RegisterNavigationHandler(router, session.StoreFilter())

	session.ActiveManager = session.NewManager(testinfra.NewMemorySessionStorage(),
		func(ctx context.Context, token string) (*perm.PermissionSet, error) {
			return testinfra.BuildPermissionSet(10, "ann", map[string]perm.ResourcePermission{
				perm.ResourceTickets: {CanView: true, CanEdit: true, CustomActions: []string{perm.ActionAssign}},
				perm.ResourceChats:   {CanView: true},
			}), nil
		})
	t.Cleanup(func() {
		session.ActiveManager = nil
	})

	_, err := session.ActiveManager.Create(context.Background(), session.Identity{ID: 10, Name: "ann"}, "token-200")
	Expect(err).To(BeNil())
	return router
}

func withSessionCookie(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: session.KeySecToken, Value: "token-200"})
	return req
}

func TestMenuQueryHandler(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should return the entries visible to the session", func(t *testing.T) {
		router := beforeEachNavigationRestApiCase(t)

		req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/v1/navigation", nil))
		status, body, _ := testinfra.ExecuteRequest(req, router)

		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`[
			{"id":"dashboard","label":"Dashboard","icon":"home","path":"/dashboard"},
			{"id":"tickets","label":"Tickets","icon":"clipboard","path":"/tickets"},
			{"id":"chats","label":"Chats","icon":"message-square","path":"/chats"},
			{"id":"help","label":"Help","icon":"help-circle","path":"/help"}]`))
	})

	t.Run("should reject a request without a session", func(t *testing.T) {
		router := beforeEachNavigationRestApiCase(t)

		status, body, _ := testinfra.ExecuteRequest(
			httptest.NewRequest(http.MethodGet, "/v1/navigation", nil), router)
		Expect(status).To(Equal(http.StatusUnauthorized))
		Expect(body).To(MatchJSON(`{"code":"common.unauthenticated","message":"unauthenticated","data":null}`))
	})
}

func TestCapabilitiesQueryHandler(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should flatten the session grants into capability flags", func(t *testing.T) {
		router := beforeEachNavigationRestApiCase(t)

		req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/v1/session/capabilities", nil))
		status, body, _ := testinfra.ExecuteRequest(req, router)

		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring(`"canViewTickets":true`))
		Expect(body).To(ContainSubstring(`"canEditTickets":true`))
		Expect(body).To(ContainSubstring(`"canAssignTickets":true`))
		Expect(body).To(ContainSubstring(`"canViewChats":true`))
		Expect(body).To(ContainSubstring(`"canViewUsers":false`))
	})
}

func TestAvailableActionsQueryHandler(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should list the actions of one resource in a stable order", func(t *testing.T) {
		router := beforeEachNavigationRestApiCase(t)

		req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/v1/resources/tickets/actions", nil))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`["view","edit","assign"]`))
	})

	t.Run("should return an empty list for an unknown resource", func(t *testing.T) {
		router := beforeEachNavigationRestApiCase(t)

		req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/v1/resources/billing/actions", nil))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`[]`))
	})
}
