package testinfra

import (
	"deskgate/perm"
	"io/ioutil"
	"net/http"
	"net/http/httptest"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

// ExecuteRequest drives the router with the request and returns status,
// body and the raw response.
func ExecuteRequest(req *http.Request, router *gin.Engine) (int, string, *http.Response) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	resp := w.Result()
	defer func() {
		_ = resp.Body.Close()
	}()
	bodyBytes, _ := ioutil.ReadAll(resp.Body)
	return resp.StatusCode, string(bodyBytes), resp
}

// BuildPermissionSet builds a grant set for one user with the given
// per-resource grants.
func BuildPermissionSet(uid uint64, username string, byResource map[string]perm.ResourcePermission) *perm.PermissionSet {
	return &perm.PermissionSet{UserID: types.ID(uid), Username: username, ByResource: byResource}
}
