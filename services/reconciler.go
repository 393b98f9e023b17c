// services/reconciler.go - Session reconciliation for protected-page loads
package services

import (
	"context"
	"log"
	"time"
)

// PageClass partitions pages by their authentication constraint.
type PageClass int

const (
	PageUnclassified PageClass = iota
	PageProtected              // requires an authenticated identity
	PagePublicAuth             // login/register/landing, hidden from authenticated users
)

// Navigation targets for redirect decisions.
const (
	PageLogin     = "login"
	PageDashboard = "dashboard"
	PageIndex     = "index"
)

// ClassifyPage maps a page identifier to its class.
func ClassifyPage(page string) PageClass {
	switch page {
	case "dashboard", "progress", "quiz", "courses", "profile":
		return PageProtected
	case "login", "register", "index":
		return PagePublicAuth
	}
	return PageUnclassified
}

// Decision is the outcome of a reconcile: either allow page initialization
// to continue, or redirect and short-circuit.
type Decision struct {
	Allow    bool   `json:"allow"`
	Redirect string `json:"redirect,omitempty"`
}

func allow() Decision              { return Decision{Allow: true} }
func redirectTo(p string) Decision { return Decision{Redirect: p} }

// AuthChecker asks the remote authority for the current identity.
// (nil, nil) means the authority affirms there is no user; a non-nil error
// means the check itself failed (transport or service error).
type AuthChecker interface {
	CheckAuth(ctx context.Context) (*Identity, error)
}

// AuthCheckFunc adapts a function to the AuthChecker interface.
type AuthCheckFunc func(ctx context.Context) (*Identity, error)

func (f AuthCheckFunc) CheckAuth(ctx context.Context) (*Identity, error) {
	return f(ctx)
}

// DefaultAuthTimeout bounds the remote check; on expiry the reconciler
// falls back to the cache path rather than hanging the page load.
const DefaultAuthTimeout = 5 * time.Second

// Reconciler decides, on every page load, whether the visitor may proceed.
// The remote authority is the source of truth whenever it is reachable; the
// session cache only prevents a transient outage from stranding a user who
// is legitimately logged in. It is an availability/consistency trade-off,
// not a security boundary: all real authorization happens at the store.
type Reconciler struct {
	Auth    AuthChecker
	Cache   *SessionCache
	Timeout time.Duration
}

func NewReconciler(auth AuthChecker, cache *SessionCache) *Reconciler {
	return &Reconciler{Auth: auth, Cache: cache, Timeout: DefaultAuthTimeout}
}

// Reconcile runs the remote check and returns the access decision for page,
// updating the session cache as a side effect. Remote failures never
// propagate to the caller; they fold into the cache-fallback branch.
func (r *Reconciler) Reconcile(ctx context.Context, page string) Decision {
	class := ClassifyPage(page)

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultAuthTimeout
	}
	checkCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	identity, err := r.Auth.CheckAuth(checkCtx)

	switch {
	case err == nil && identity != nil:
		// Authority affirms a user: refresh the cache from it.
		r.Cache.Store(*identity)
		if class == PagePublicAuth {
			return redirectTo(PageDashboard)
		}
		return allow()

	case err == nil:
		// Authority affirms no user. The cache never overrides an
		// explicit remote "not logged in".
		r.Cache.Clear()
		if class == PageProtected {
			return redirectTo(PageLogin)
		}
		return allow()

	default:
		// Authority unreachable: degrade to the cached identity.
		log.Printf("auth check failed, falling back to session cache: %v", err)
		if r.Cache.Valid() {
			return allow()
		}
		r.Cache.Clear()
		if class == PageProtected {
			return redirectTo(PageLogin)
		}
		return allow()
	}
}
