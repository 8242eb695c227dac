package handlers

import (
	"encoding/json"
	"log"
	"time"

	"liquiverde_bff/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

const wsListKey = "list_id"

// ListEvent is the message pushed to browsers watching a list.
type ListEvent struct {
	Type   string    `json:"type"`
	ListID int64     `json:"list_id"`
	Data   any       `json:"data,omitempty"`
	SentAt time.Time `json:"sent_at"`
}

// WSHandler keeps one websocket per open list page and pushes list and review
// events to the pages watching that list.
type WSHandler struct {
	M *melody.Melody
}

var _ interfaces.IListNotifier = (*WSHandler)(nil)

func NewWSHandler() *WSHandler {
	m := melody.New()
	m.Config.MaxMessageSize = 4096
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleConnect(func(s *melody.Session) {
		listID, _ := s.Get(wsListKey)
		log.Printf("[ws][handler] client connected list_id=%v", listID)
	})
	m.HandleDisconnect(func(s *melody.Session) {
		listID, _ := s.Get(wsListKey)
		log.Printf("[ws][handler] client disconnected list_id=%v", listID)
	})
	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("[ws][handler] websocket error err=%v", err)
	})

	return &WSHandler{M: m}
}

// HandleWS godoc
// @Summary      Subscribe to live events of a list (websocket)
// @Tags         shopping-lists
// @Param        id  path  int  true  "List ID"
// @Router       /ws/shopping-lists/{id} [get]
func (h *WSHandler) HandleWS(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		abortWithError(c, errInvalidID)
		return
	}
	if err := h.M.HandleRequestWithKeys(c.Writer, c.Request, map[string]any{wsListKey: listID}); err != nil {
		log.Printf("[ws][handler] upgrade failed list_id=%d err=%v", listID, err)
	}
}

// NotifyList broadcasts an event to every session watching listID.
func (h *WSHandler) NotifyList(listID int64, eventType string, payload any) {
	msg, err := json.Marshal(ListEvent{Type: eventType, ListID: listID, Data: payload, SentAt: time.Now().UTC()})
	if err != nil {
		log.Printf("[ws][handler] marshal failed list_id=%d type=%s err=%v", listID, eventType, err)
		return
	}

	err = h.M.BroadcastFilter(msg, func(s *melody.Session) bool {
		id, exists := s.Get(wsListKey)
		return exists && id == listID
	})
	if err != nil {
		log.Printf("[ws][handler] broadcast failed list_id=%d type=%s err=%v", listID, eventType, err)
	}
}

// Close disconnects every session. Used on shutdown.
func (h *WSHandler) Close() error {
	return h.M.Close()
}
