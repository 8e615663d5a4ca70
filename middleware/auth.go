// Package middleware provides request filters and security checks for the
// console. File: middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"memberhub/logger"
	"memberhub/services"
	"memberhub/store"
)

// Session keys shared between the guard and the controllers.
const (
	SessionKeySID      = "sid"            // console session id, keys the registry
	SessionKeyUpstream = "upstreamCookie" // backend session cookie to replay
)

// ContextUserKey is where the guard parks the authenticated user for
// downstream handlers.
const ContextUserKey = "currentUser"

// AuthRequired gates the dashboard tree on session state.
//
// The first guarded request of a browser session triggers one rehydration
// attempt against the backend profile endpoint; until that attempt settles,
// guarded requests render a neutral loading page and nothing else. Once the
// session is initialized, requests without a user redirect to /login. The
// check runs on every guarded navigation, not just once.
func AuthRequired(registry *store.SessionRegistry, auth services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		sid, _ := session.Get(SessionKeySID).(string)
		if sid == "" {
			sid = uuid.NewString()
			session.Set(SessionKeySID, sid)
			if err := session.Save(); err != nil {
				logger.Error.Printf("AuthRequired: failed to save session id: %v", err)
			}
		}

		state := registry.Get(sid)
		if !state.Snapshot().Initialized {
			if state.BeginRehydrate() {
				rehydrate(state, session, auth)
			}
			if !state.Snapshot().Initialized {
				// another request holds the rehydration; suspend, don't redirect
				c.HTML(http.StatusOK, "loading.html", gin.H{})
				c.Abort()
				return
			}
		}

		snap := state.Snapshot()
		if snap.User == nil {
			logger.Warn.Printf("AuthRequired: no user for session %s, redirecting to /login", sid)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, *snap.User)
		c.Next()
	}
}

// rehydrate restores the staff identity behind a previously stored upstream
// cookie. Any failure, including the cookie simply being absent, settles the
// session as initialized-without-user.
func rehydrate(state *store.SessionState, session sessions.Session, auth services.AuthServiceInterface) {
	cookie, _ := session.Get(SessionKeyUpstream).(string)
	if cookie == "" {
		state.RehydrateFailure()
		return
	}

	user, err := auth.Profile(cookie)
	if err != nil {
		logger.Info.Printf("AuthRequired: rehydration failed: %v", err)
		state.RehydrateFailure()
		return
	}
	logger.Info.Printf("AuthRequired: session rehydrated for %s", user.Username)
	state.RehydrateSuccess(user)
}
