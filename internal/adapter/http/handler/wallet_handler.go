package handler

import (
	"net/http"
	"slices"
	"time"

	"tipcloud/internal/core/domain"
	"tipcloud/internal/core/ports"
	"tipcloud/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	wsWriteWait    = 10 * time.Second
	wsPongWait     = 60 * time.Second
	wsPingInterval = (wsPongWait * 9) / 10
)

// WalletEvent is pushed to websocket subscribers on every connection change.
type WalletEvent struct {
	Type       string                  `json:"type"`
	Connection domain.WalletConnection `json:"connection"`
}

// WalletHandler handles wallet connection endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
	upgrader  websocket.Upgrader
	log       zerolog.Logger
}

// NewWalletHandler creates a new WalletHandler. allowedOrigins gates the
// events websocket the same way it gates CORS.
func NewWalletHandler(walletSvc ports.WalletService, allowedOrigins []string, log zerolog.Logger) *WalletHandler {
	return &WalletHandler{
		walletSvc: walletSvc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				return allowsAnyOrigin(allowedOrigins) || slices.Contains(allowedOrigins, origin)
			},
		},
		log: log,
	}
}

// Status handles GET /api/v1/wallet/status. It never prompts the user.
func (h *WalletHandler) Status(c *gin.Context) {
	response.OK(c, h.walletSvc.Status(c.Request.Context()))
}

// Connect handles POST /api/v1/wallet/connect. The wallet may show a
// prompt; the request waits for the user's answer or its deadline.
func (h *WalletHandler) Connect(c *gin.Context) {
	response.OK(c, h.walletSvc.Connect(c.Request.Context()))
}

// Events handles GET /api/v1/wallet/events, streaming connection changes
// over a websocket. The current connection is sent first.
func (h *WalletHandler) Events(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	updates, cancel := h.walletSvc.Subscribe()
	defer cancel()

	// Reading is required to process control frames; clients send nothing else.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(wsPingInterval)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return
		case wc, ok := <-updates:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(WalletEvent{Type: "connection", Connection: wc}); err != nil {
				h.log.Debug().Err(err).Msg("websocket write failed")
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		}
	}
}
