// internal/stream/server.go
package stream

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Server — отладочная трансляция снапшотов боя по websocket.
// Зрители только читают; никакие сообщения клиентов не влияют на симуляцию.
type Server struct {
	log      zerolog.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}

	httpServer *http.Server
}

func NewServer(addr string, log zerolog.Logger) *Server {
	s := &Server{
		log:     log,
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/watch", s.handleWatch)
	s.httpServer = &http.Server{Addr: addr, Handler: mux}
	return s
}

// Run слушает адрес до закрытия сервера. Блокирует; запускать в горутине.
func (s *Server) Run() {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.log.Error().Err(err).Msg("spectator server stopped")
	}
}

// Close закрывает слушатель и все клиентские соединения.
func (s *Server) Close() {
	_ = s.httpServer.Close()

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		_ = conn.Close()
	}
	s.clients = make(map[*websocket.Conn]struct{})
}

func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("spectator upgrade failed")
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()
	s.log.Debug().Str("remote", conn.RemoteAddr().String()).Msg("spectator connected")

	// Входящие сообщения игнорируются; читаем только ради обнаружения закрытия.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.drop(conn)
				return
			}
		}
	}()
}

// Broadcast рассылает снапшот всем зрителям. Медленный клиент отключается.
func (s *Server) Broadcast(snapshot any) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		s.log.Error().Err(err).Msg("spectator marshal failed")
		return
	}

	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for conn := range s.clients {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			s.drop(conn)
		}
	}
}

func (s *Server) drop(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	_ = conn.Close()
}
