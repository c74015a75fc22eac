package cms_sdk

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/lguportal/cms-sdk/response"
)

const (
	// Time 写入超时时间
	writeWait = 10 * time.Second

	// Time pong超时时间
	pongWait = 60 * time.Second

	// Send 对应的ping 必须小于pong
	pingPeriod = (pongWait * 9) / 10

	// Maximum 对等端允许消息大小。客户端只收不发，留个小上限即可。
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for SDK
	},
}

// Client 一条后台仪表盘的 WS 连接。推送是单向的：服务端广播新通知，
// 客户端不发业务消息。
type Client struct {
	hub *NotificationHub

	conn *websocket.Conn

	// 消息缓冲区
	send chan []byte

	// UserID 连接归属的管理员
	UserID uint64
}

// NotificationHub 在线后台连接的集合。webhook 落库成功后把通知行
// 广播给所有连接（同一管理员多端都会收到）。
type NotificationHub struct {
	clients map[*Client]bool

	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *NotificationHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// 写不进去的连接视为死连接
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// Broadcast 把一条消息广播给所有在线后台。满了就丢，落库才是事实来源，
// 推送只是提醒。
func (h *NotificationHub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		log.Printf("notification hub: broadcast buffer full, dropping push")
	}
}

// ServeWS 升级连接并挂进 Hub。调用方需先完成鉴权。
func (h *NotificationHub) ServeWS(w http.ResponseWriter, r *http.Request, userID uint64) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	client := &Client{hub: h, conn: conn, send: make(chan []byte, 16), UserID: userID}
	h.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump 只负责心跳和关闭检测，业务消息直接丢弃。
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// GinHandleNotificationsWS 后台实时通知的 WS 入口。
// 升级前先走 token 鉴权（header Bearer 或 query token）。
// @Summary 实时通知推送 (WebSocket)
// @Tags 通知
// @Param token query string false "登录 token（也可用 Authorization header）"
// @Success 101 {string} string "switching protocols"
// @Router /ws/notifications [get]
func (c *CMSEngine) GinHandleNotificationsWS(ctx *gin.Context) {
	uid, _, err := c.AuthService.AuthenticateRequest(ctx.Request.Context(), ctx.Request)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, err.Error()))
		return
	}
	c.Hub.ServeWS(ctx.Writer, ctx.Request, uid)
}
