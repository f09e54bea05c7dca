package session

import (
	"deskgate/bizerror"

	"github.com/gin-gonic/gin"
)

const KeySecStore = "SecStore"
const KeySecToken = "sec_token"

var ActiveManager *Manager

// FindStore returns the session store injected by StoreFilter, or nil.
func FindStore(ctx *gin.Context) *Store {
	value, found := ctx.Get(KeySecStore)
	if !found {
		return nil
	}
	store, ok := value.(*Store)
	if !ok || !store.Authenticated() {
		return nil
	}
	return store
}

// SaveStore attaches a live session store to the request context.
func SaveStore(ctx *gin.Context, store *Store) {
	if store != nil && store.Authenticated() {
		ctx.Set(KeySecStore, store)
	}
}

// StoreFilter resolves the session of the request cookie and injects it
// into the gin context. Requests without a restorable session are
// rejected as unauthenticated.
func StoreFilter() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(KeySecToken)
		if err != nil {
			panic(bizerror.ErrUnauthenticated)
		}
		store := ActiveManager.Resolve(ctx.Request.Context(), token)
		if store == nil {
			panic(bizerror.ErrUnauthenticated)
		}
		SaveStore(ctx, store)
		ctx.Next()
	}
}
