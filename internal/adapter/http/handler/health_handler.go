package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"tipcloud/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 3 * time.Second

// optionalDependency is implemented by checkers whose failure degrades the
// service without making it unavailable. Wallet providers are optional: tips
// still answer with a WALLET_UNAVAILABLE or PROVIDER_ERROR result.
type optionalDependency interface {
	Optional() bool
}

type depStatus struct {
	Status   string `json:"status"`
	Optional bool   `json:"optional,omitempty"`
	Error    string `json:"error,omitempty"`
}

// HealthCheck handles GET /health. Every checker is pinged concurrently.
//
//	healthy   all dependencies answer               200
//	degraded  only optional dependencies fail       200
//	unhealthy a required dependency fails           503
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		var (
			mu   sync.Mutex
			wg   sync.WaitGroup
			deps = make(map[string]depStatus, len(checkers))

			requiredDown, optionalDown bool
		)
		for _, checker := range checkers {
			wg.Add(1)
			go func(hc ports.HealthChecker) {
				defer wg.Done()

				st := depStatus{Status: "healthy"}
				if o, ok := hc.(optionalDependency); ok {
					st.Optional = o.Optional()
				}
				err := hc.Ping(ctx)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					st.Status = "unhealthy"
					st.Error = err.Error()
					if st.Optional {
						optionalDown = true
					} else {
						requiredDown = true
					}
				}
				deps[hc.Name()] = st
			}(checker)
		}
		wg.Wait()

		status, code := "healthy", http.StatusOK
		switch {
		case requiredDown:
			status, code = "unhealthy", http.StatusServiceUnavailable
		case optionalDown:
			status = "degraded"
		}

		c.JSON(code, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
