package http

import (
	"net/http"
	"time"

	"github.com/feroxapp/ferox/internal/api/store"
	"github.com/feroxapp/ferox/pkg/feroxsdk"
	"github.com/feroxapp/ferox/pkg/httpx"
	"github.com/feroxapp/ferox/pkg/jwtx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe checking critical dependencies: database connectivity and
//	@Description	loaded signing keys.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	feroxsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	feroxsdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	keys *jwtx.KeySet,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &feroxsdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if !keys.IsReady() {
			checks.Signer = "error: no keys loaded"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, feroxsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
