package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mvail/userdir/internal/core"
)

// ListUsers returns the full contents of the users table as a JSON array.
// Row order follows the result set. Query and scan failures are logged
// with detail and answered with a generic 500 string.
func (a *API) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.store.ListUsers(r.Context())
	if err != nil {
		a.log.Error("list users failed", zap.Error(err))
		WriteError(w, core.NewAppError(core.ErrInternal, "Database query failed"))
		return
	}

	WriteJSON(w, http.StatusOK, users)
}
