// Package proxy implements the dev gateway that fronts the app's
// microservices on one origin, mirroring the paths browsers hit in
// production: /api/auth and /api/users, /locations, /directions, and the
// /socket.io websocket stream.
package proxy

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"mapmate/internal/validators"
	"mapmate/pkg/cache"
	"mapmate/pkg/logger"
)

// Gateway forwards requests to the upstream services. A non-nil cache
// short-circuits repeated directions lookups.
type Gateway struct {
	log   *logger.Logger
	cache *cache.RedisCache
}

func NewGateway(log *logger.Logger, directionsCache *cache.RedisCache) *Gateway {
	return &Gateway{
		log:   log,
		cache: directionsCache,
	}
}

// Forward returns a handler that relays the request to target, path and
// query preserved. Upstream failures surface as 502 so the client's
// retry logic can distinguish them from service-level errors.
func (g *Gateway) Forward(target string) gin.HandlerFunc {
	upstream, err := url.Parse(target)
	if err != nil {
		g.log.WithError(err).Fatalf("invalid upstream URL %q", target)
	}

	reverseProxy := httputil.NewSingleHostReverseProxy(upstream)
	reverseProxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		g.log.WithError(err).WithField("upstream", upstream.Host).
			Errorf("proxy request failed: %s %s", r.Method, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprintf(w, `{"error":"upstream unavailable"}`)
	}

	return func(c *gin.Context) {
		reverseProxy.ServeHTTP(c.Writer, c.Request)
	}
}

// Directions wraps Forward with query validation and a response cache.
// Malformed lookups are rejected before they reach the route service;
// identical origin/destination/mode lookups within the cache TTL are
// answered without re-contacting it.
func (g *Gateway) Directions(target string) gin.HandlerFunc {
	forward := g.Forward(target)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			forward(c)
			return
		}

		query := c.Request.URL.Query()
		if errs := validators.ValidateDirections(&validators.DirectionsRequest{
			Origin:      query.Get("origin"),
			Destination: query.Get("destination"),
			Mode:        query.Get("mode"),
		}); len(errs) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errs.Error()})
			return
		}

		if g.cache == nil {
			forward(c)
			return
		}

		key := directionsCacheKey(query)

		var cached []byte
		if err := g.cache.Get(c.Request.Context(), key, &cached); err == nil {
			c.Data(http.StatusOK, "application/json", cached)
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder
		forward(c)

		if recorder.Status() == http.StatusOK {
			if err := g.cache.Set(c.Request.Context(), key, recorder.body.Bytes()); err != nil {
				g.log.WithError(err).Warn("failed to cache directions response")
			}
		}
	}
}

func directionsCacheKey(query url.Values) string {
	parts := []string{
		query.Get("origin"),
		query.Get("destination"),
		strings.ToLower(query.Get("mode")),
	}
	return "directions:" + strings.Join(parts, "|")
}

// bodyRecorder tees the upstream response body so a 200 can be cached
// after it has been streamed to the client.
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (r *bodyRecorder) Write(data []byte) (int, error) {
	r.body.Write(data)
	return r.ResponseWriter.Write(data)
}

func (r *bodyRecorder) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}
