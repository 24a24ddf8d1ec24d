package ws

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"placement-hub/internal/config"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

// Handler upgrades dashboard connections onto the application events feed.
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   *log.Logger
}

func NewHandler(hub *Hub, cfg config.RealtimeConfig, logger *log.Logger) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(cfg.AllowedOrigins),
		},
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/ws/applications", h.SubscribeApplicationEvents)
}

// SubscribeApplicationEvents streams status changes and shortlist results.
// The feed is write-only from the server side.
func (h *Handler) SubscribeApplicationEvents(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	upgrade := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logf("ws_upgrade_failed origin=%q err=%v", r.Header.Get("Origin"), err)
			return
		}

		client := NewClient(h.hub, conn)
		if !h.hub.Register(client) {
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
			_ = conn.Close()
			return
		}
		go client.WritePump()
		go client.ReadPump()
	})

	return upgrade(c)
}

func (h *Handler) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf(format, args...)
	}
}

// originChecker allows requests without an Origin header, which browsers
// always send. Empty allowed means the origin host must equal the request host.
func originChecker(allowed []string) func(*http.Request) bool {
	set := make(map[string]bool, len(allowed))
	allowAll := false
	for _, o := range allowed {
		if o == "*" {
			allowAll = true
			continue
		}
		set[strings.ToLower(strings.TrimRight(o, "/"))] = true
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || allowAll {
			return true
		}
		if len(set) > 0 {
			return set[strings.ToLower(strings.TrimRight(origin, "/"))]
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return strings.EqualFold(u.Host, r.Host)
	}
}
