package proxy

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The gateway fronts a single-origin dev setup; origin policy is
	// enforced by the upstream service.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Socket relays a websocket session to the upstream service, frames
// passed through verbatim in both directions.
func (g *Gateway) Socket(target string) gin.HandlerFunc {
	upstream, err := url.Parse(target)
	if err != nil {
		g.log.WithError(err).Fatalf("invalid upstream URL %q", target)
	}

	return func(c *gin.Context) {
		backendURL := *upstream
		backendURL.Scheme = wsScheme(upstream.Scheme)
		backendURL.Path = c.Request.URL.Path
		backendURL.RawQuery = c.Request.URL.RawQuery

		backend, resp, err := websocket.DefaultDialer.DialContext(
			c.Request.Context(), backendURL.String(), forwardedHeaders(c.Request))
		if err != nil {
			g.log.WithError(err).WithField("upstream", backendURL.Host).
				Error("websocket dial failed")
			status := http.StatusBadGateway
			if resp != nil {
				status = resp.StatusCode
			}
			c.AbortWithStatusJSON(status, gin.H{"error": "upstream unavailable"})
			return
		}
		defer backend.Close()

		client, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			g.log.WithError(err).Error("websocket upgrade failed")
			return
		}
		defer client.Close()

		errc := make(chan error, 2)
		go pump(client, backend, errc)
		go pump(backend, client, errc)
		<-errc
	}
}

func pump(dst, src *websocket.Conn, errc chan<- error) {
	for {
		messageType, payload, err := src.ReadMessage()
		if err != nil {
			errc <- err
			return
		}
		if err := dst.WriteMessage(messageType, payload); err != nil {
			errc <- err
			return
		}
	}
}

func wsScheme(scheme string) string {
	if scheme == "https" || scheme == "wss" {
		return "wss"
	}
	return "ws"
}

// forwardedHeaders carries the handshake headers the upstream cares
// about, dropping the hop-by-hop websocket fields the dialer re-adds.
func forwardedHeaders(r *http.Request) http.Header {
	headers := http.Header{}
	for name, values := range r.Header {
		switch {
		case strings.EqualFold(name, "Upgrade"),
			strings.EqualFold(name, "Connection"),
			strings.HasPrefix(http.CanonicalHeaderKey(name), "Sec-Websocket-"):
			continue
		}
		headers[name] = values
	}
	return headers
}
