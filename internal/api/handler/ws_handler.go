package handler

import (
	"StudyHub/internal/api/dto"
	"StudyHub/internal/pkg/consts"
	"StudyHub/internal/pkg/redis"
	"StudyHub/internal/pkg/response"
	"StudyHub/internal/pkg/security"
	"StudyHub/internal/service"
	"context"
	log "log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WsHandler struct {
	chatService  service.ChatService
	groupService service.GroupService
}

func NewWsHandler(chatService service.ChatService, groupService service.GroupService) *WsHandler {
	return &WsHandler{chatService: chatService, groupService: groupService}
}

// Connect 单个小组的实时聊天连接
// 先订阅再加载历史，两路插入都过时间线归并器：重叠消息去重，
// 乱序消息按 (createdAt, id) 落位
func (s *WsHandler) Connect(c *gin.Context) {
	// 鉴权
	token := c.Query("token")
	if token == "" {
		response.Error(c, service.UnauthorizedError)
		return
	}
	claims, err := security.ValidateToken(token)
	if err != nil {
		log.Warn("WS 鉴权失败", "err", err)
		response.Error(c, service.UnauthorizedError)
		return
	}
	userID := claims.UserID

	groupID, err := strconv.ParseUint(c.Param("group_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	isMember, err := s.groupService.IsMember(c.Request.Context(), groupID, userID)
	if err != nil || !isMember {
		response.Error(c, service.ErrNotGroupMember)
		return
	}

	// 升级 Websocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WS 协议升级失败", "err", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	// 连接级上下文：拆除后所有挂起的加载结果一律作废
	connCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 先订阅实时频道，再拉历史，避免两步之间丢消息
	channel := consts.ChatGroupKey + strconv.FormatUint(groupID, 10)
	pubsub := redis.Subscribe(connCtx, channel)
	defer func() {
		// 同步退订，断开后不再收到该组的任何推送
		_ = pubsub.Close()
	}()

	log.Info("群聊 WS 连接已建立", "userID", userID, "groupID", groupID)

	timeline := service.NewMessageTimeline()

	history, err := s.chatService.GetHistory(connCtx, userID, groupID)
	if err != nil {
		log.Error("WS 历史加载失败", "userID", userID, "groupID", groupID, "err", err)
		return
	}
	if connCtx.Err() != nil {
		// 加载期间连接已拆除，结果丢弃
		return
	}
	timeline.InsertBatch(history)

	if err := s.writeSnapshot(conn, timeline); err != nil {
		log.Error("WS 快照推送失败", "userID", userID, "err", err)
		return
	}

	stopChan := make(chan struct{})

	// 读循环：监听客户端主动断开
	go func() {
		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				close(stopChan)
				return
			}
		}
	}()

	// 写循环：实时消息过归并器后逐条推送
	redisCh := pubsub.Channel()
	for {
		select {
		case msg, ok := <-redisCh:
			if !ok {
				return
			}
			var item dto.ChatMessageDTO
			if err := json.Unmarshal([]byte(msg.Payload), &item); err != nil {
				log.Warn("WS 消息解析失败", "err", err)
				continue
			}
			if !timeline.Insert(&item) {
				// 重复消息（比如历史与订阅的重叠窗口）
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			data, _ := json.Marshal(&item)
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error("WS 推送失败", "userID", userID, "err", err)
				return
			}
		case <-stopChan:
			log.Info("群聊 WS 连接已断开", "userID", userID, "groupID", groupID)
			return
		}
	}
}

func (s *WsHandler) writeSnapshot(conn *websocket.Conn, timeline *service.MessageTimeline) error {
	data, err := json.Marshal(timeline.Messages())
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteMessage(websocket.TextMessage, data)
}
