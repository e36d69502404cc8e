package connectionhub

import (
	"sync"

	wsmodels "leave-letter-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	AddClient(sessionID string, conn *websocket.Conn)
	// DeleteClient удаляет клиента, если сессия все еще обслуживается этим соединением
	DeleteClient(sessionID string, conn *websocket.Conn)
	SendMessage(msg wsmodels.ServerMessage)
	SendClose(sessionID string)
}

var Instance Provider

func Init() {
	Instance = NewInstance()
}

func NewInstance() Provider {
	return &impl{
		clients: map[string]clientSession{},
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]clientSession //map[sessionID]
}

func (i *impl) DeleteClient(sessionID string, conn *websocket.Conn) {
	i.mu.Lock()
	sess, ok := i.clients[sessionID]
	ok = ok && sess.conn == conn
	if ok {
		delete(i.clients, sessionID)
	}
	i.mu.Unlock()
	if !ok {
		return
	}
	sess.stop()
}

func (i *impl) AddClient(sessionID string, conn *websocket.Conn) {
	i.mu.Lock()
	oldSess, ok := i.clients[sessionID]
	i.clients[sessionID] = newSession(conn)
	i.mu.Unlock()
	if ok {
		oldSess.stop()
	}
}

// SendMessage событие без подключенного клиента отбрасывается
func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.RLock()
	sess, ok := i.clients[msg.ToSessionID]
	i.mu.RUnlock()
	if !ok {
		return
	}
	if !sess.enqueue(msg) {
		log.WithField("session_id", msg.ToSessionID).Debug("очередь событий переполнена, событие пропущено")
	}
}

func (i *impl) SendClose(sessionID string) {
	i.mu.RLock()
	sess, ok := i.clients[sessionID]
	i.mu.RUnlock()
	if ok {
		sess.stop()
	}
}
