package service

import (
	"net/http"
	"time"

	"edu_hub_backend/pkg/logger"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSMessage 推送给会话页面的信封。客户端收到 NEW_MESSAGE 后应当
// 重新拉取 history，而不是消费事件载荷。
type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type viewer struct {
	conn    *websocket.Conn
	sub     *Subscription
	inbound *rate.Limiter
}

// readPump 只处理控制帧；对端断开即取消订阅。
// 会话页面本不该发数据帧，高频发帧的连接直接断开。
func (v *viewer) readPump() {
	defer func() {
		v.sub.Cancel()
		v.conn.Close()
	}()
	v.conn.SetReadLimit(maxMessageSize)
	v.conn.SetReadDeadline(time.Now().Add(pongWait))
	v.conn.SetPongHandler(func(string) error { v.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Debug("viewer connection closed", zap.Error(err))
			}
			return
		}
		if !v.inbound.Allow() {
			logger.Log.Warn("viewer flooding inbound frames, dropping connection")
			return
		}
	}
}

func (v *viewer) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		v.conn.Close()
	}()
	for {
		select {
		case ev, ok := <-v.sub.C:
			v.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// 订阅已取消（导航离开或服务关停）
				v.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := v.conn.WriteJSON(WSMessage{Type: "NEW_MESSAGE", Data: ev}); err != nil {
				return
			}
		case <-ticker.C:
			v.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := v.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ServeConversationWS 把一个会话页面接到通知中枢上。订阅随连接存续，
// 连接断开即取消。
func ServeConversationWS(hub *NotifyHub, w http.ResponseWriter, r *http.Request, viewerID, peerID uint) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("WebSocket upgrade failed", zap.Error(err), zap.Uint("viewerId", viewerID))
		return
	}

	v := &viewer{
		conn:    conn,
		sub:     hub.Subscribe(PairTopic(viewerID, peerID)),
		inbound: rate.NewLimiter(rate.Limit(2), 8),
	}

	go v.writePump()
	go v.readPump()
}
