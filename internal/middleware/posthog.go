package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/fx_risk_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
)

// anonymousDistinctID is used when auth is disabled and no subject is known.
const anonymousDistinctID = "anonymous"

var untrackedPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// PosthogMiddleware reports every successful API call as a PostHog event named after its route,
// e.g. "/api/v1/fx/positions" becomes "api_v1_fx_positions".
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" || strings.HasPrefix(eventName, "swagger") {
			return
		}

		props := map[string]any{
			"status_code": c.Writer.Status(),
		}
		for _, param := range c.Params {
			props[param.Key] = param.Value
		}
		PosthogEvent(c, posthogClient, eventName, props)
	}
}

// PosthogEvent sends a custom event attributed to the authenticated subject.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if posthogClient == nil || !posthogClient.IsInitialized() {
		return
	}

	distinctID, ok := GetUserIDFromContext(c)
	if !ok {
		distinctID = anonymousDistinctID
	}

	if properties == nil {
		properties = make(map[string]any)
	}
	properties["method"] = c.Request.Method
	properties["path"] = c.Request.URL.Path

	posthogClient.Enqueue(distinctID, eventName, properties)
}
