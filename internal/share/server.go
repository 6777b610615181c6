package share

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"LocalPaint/internal/paint"
)

// Scheme prefixes share links handed to viewers.
const Scheme = "localpaint://"

// DefaultPort is the port the hub listens on unless configured otherwise.
const DefaultPort = 8888

// ShareLink builds the link a viewer is started with.
func ShareLink(host string, port int) string {
	return fmt.Sprintf("%s%s:%d", Scheme, host, port)
}

// WebsocketURL turns a share link into the hub's websocket URL. ws:// and
// wss:// URLs are returned unchanged.
func WebsocketURL(link string) string {
	if strings.HasPrefix(link, "ws://") || strings.HasPrefix(link, "wss://") {
		return link
	}
	addr := strings.TrimPrefix(link, Scheme)
	addr = strings.TrimSuffix(addr, "/")
	return "ws://" + addr + "/ws"
}

// Handler routes /ws to hub.
func Handler(hub *Hub) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	return mux
}

// Serve runs the hub on addr until ctx is done.
func Serve(ctx context.Context, addr string, hub *Hub) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(hub),
		ReadHeaderTimeout: 5 * time.Second,
	}
	stop := context.AfterFunc(ctx, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
		// Hijacked websocket connections are not closed by Shutdown.
		hub.Close()
	})
	defer stop()

	paint.Logger().Info("share: hub listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("share: serve %s: %w", addr, err)
	}
	return nil
}
