package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/lazharichir/pokerreview/domain"
	"github.com/lazharichir/pokerreview/server/connection"
	"github.com/lazharichir/pokerreview/server/events"
	"github.com/lazharichir/pokerreview/server/handlers"
)

const (
	pingPeriod = 10 * time.Second
	writeWait  = 5 * time.Second
	// ErrorName is the envelope name used for failed commands
	ErrorName = "ERROR"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // In production, implement proper origin checks
	},
}

// Server represents the review HTTP and WebSocket server
type Server struct {
	reviewer   *domain.Reviewer
	connMgr    *connection.Manager
	cmdRouter  *handlers.CommandRouter
	dispatcher *events.Dispatcher
}

// ErrorResponse is returned for failed requests and commands
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// corsMiddleware adds CORS headers to all responses
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// NewServer creates a new review server around the reviewer
func NewServer(reviewer *domain.Reviewer) *Server {
	connMgr := connection.NewManager()

	dispatcher := events.NewDispatcher(connMgr)
	cmdRouter := handlers.NewCommandRouter(reviewer, connMgr)

	// Register dispatcher as event handler for the reviewer
	reviewer.AddEventHandler(dispatcher.HandleEvent)

	return &Server{
		reviewer:   reviewer,
		connMgr:    connMgr,
		cmdRouter:  cmdRouter,
		dispatcher: dispatcher,
	}
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/api/evaluate", corsMiddleware(s.handleEvaluate))
	mux.HandleFunc("/api/sessions/{id}/history", corsMiddleware(s.handleHistory))
	mux.HandleFunc("/api/sessions/{id}/summary", corsMiddleware(s.handleSummary))
	return mux
}

// Start begins the server on the specified port
func (s *Server) Start(port string) error {
	log.Printf("Starting server on port %s", port)
	return http.ListenAndServe("0.0.0.0:"+port, s.Handler())
}

// handleWebSocket handles incoming WebSocket connections
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading to WebSocket: %v", err)
		return
	}

	// Create a new client with a unique ID
	clientID := uuid.NewString()
	log.Printf("New client connected: %s with ID: %s", r.RemoteAddr, clientID)

	client := &connection.Client{
		ID:   clientID,
		Conn: conn,
		Send: make(chan []byte, 256),
	}
	s.connMgr.Register(client)

	go s.readPump(client)
	go s.writePump(client)
}

// readPump reads messages from the WebSocket connection
func (s *Server) readPump(client *connection.Client) {
	defer func() {
		s.connMgr.Unregister(client)
		client.Conn.Close()
	}()

	for {
		_, message, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Error: %v", err)
			}
			break
		}

		if err := s.cmdRouter.HandleCommand(client, message); err != nil {
			log.Printf("Error handling command from %s: %v", client.ID, err)
			s.sendError(client, err)
		}
	}
}

// writePump is the only writer of the connection; it also keeps it alive
func (s *Server) writePump(client *connection.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Channel closed
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("Error writing message: %v", err)
				return
			}
		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("Error sending ping: %v", err)
				return
			}
		}
	}
}

func (s *Server) sendError(client *connection.Client, err error) {
	data, encErr := events.Encode(ErrorName, ErrorResponse{Error: err.Error(), Kind: domain.ErrorKind(err)})
	if encErr != nil {
		log.Printf("Failed to marshal error envelope: %v", encErr)
		return
	}
	s.connMgr.SendToClient(client.ID, data)
}

// handleEvaluate recognizes the best combination of a board and optional hand
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.EvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	evaluation, err := s.reviewer.Evaluate(req)
	if err != nil {
		if kind := domain.ErrorKind(err); kind != "" {
			writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Kind: kind})
			return
		}
		log.Printf("Error evaluating board: %v", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "evaluation failed"})
		return
	}

	writeJSON(w, http.StatusOK, evaluation)
}

// handleHistory returns every recorded event of a session
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	history, err := s.reviewer.History(r.PathValue("id"))
	if err != nil {
		log.Printf("Error loading history: %v", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "history unavailable"})
		return
	}

	envelopes := make([]events.EventEnvelope, 0, len(history))
	for _, e := range history {
		envelope, err := events.NewEnvelope(e.Name(), e)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
		envelopes = append(envelopes, envelope)
	}

	writeJSON(w, http.StatusOK, envelopes)
}

// handleSummary returns the number of times each combination was recognized
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summary, err := s.reviewer.Summary(r.PathValue("id"))
	if err != nil {
		log.Printf("Error loading summary: %v", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "summary unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil && !errors.Is(err, http.ErrHandlerTimeout) {
		log.Printf("Error writing response: %v", err)
	}
}
