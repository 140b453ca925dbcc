// Report Viewer - Live QC result display
// Consumes analysis events from Kafka and displays them via WebSocket in a browser
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/segmentio/kafka-go"
)

// QCEvent is the envelope shared by item and summary events. The raw
// payload is forwarded to the browser untouched.
type QCEvent struct {
	EventType string          `json:"eventType"`
	RequestID string          `json:"requestId"`
	Timestamp int64           `json:"timestamp"`
	Item      json.RawMessage `json:"item,omitempty"`
	Summary   json.RawMessage `json:"summary,omitempty"`
}

// Hub manages WebSocket connections
type Hub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan QCEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.RWMutex
}

func newHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan QCEvent, 100),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()
			log.Printf("Client connected. Total: %d", len(h.clients))

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()
			log.Printf("Client disconnected. Total: %d", len(h.clients))

		case event := <-h.broadcast:
			h.mu.RLock()
			for conn := range h.clients {
				err := conn.WriteJSON(event)
				if err != nil {
					log.Printf("Write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.RUnlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local dev
	},
}

func wsHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("WebSocket upgrade error: %v", err)
			return
		}
		hub.register <- conn

		// Keep connection alive, handle disconnects
		go func() {
			defer func() {
				hub.unregister <- conn
			}()
			for {
				_, _, err := conn.ReadMessage()
				if err != nil {
					break
				}
			}
		}()
	}
}

func consumeKafka(ctx context.Context, hub *Hub, brokers, topic string) {
	// Use partition reader without consumer group (works better through port-forward)
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:   strings.Split(brokers, ","),
		Topic:     topic,
		Partition: 0, // Read from partition 0 only (simplest for demo)
		MinBytes:  1,
		MaxBytes:  10e6,
	})
	defer reader.Close()

	// Only show recent messages
	reader.SetOffsetAt(ctx, time.Now().Add(-1*time.Hour))

	log.Printf("Consuming from Kafka topic: %s partition 0 (last hour)", topic)

	for {
		select {
		case <-ctx.Done():
			return
		default:
			msg, err := reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Printf("Kafka read error on %s: %v", topic, err)
				time.Sleep(time.Second)
				continue
			}

			var event QCEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Printf("JSON unmarshal error: %v", err)
				continue
			}

			log.Printf("Received %s (request: %s)", event.EventType, event.RequestID)
			hub.broadcast <- event
		}
	}
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>VO QC Report Viewer</title>
<style>
body { font-family: monospace; background: #1e1e1e; color: #ddd; margin: 1em; }
.event { border-left: 3px solid #4a9; padding: 0.3em 0.8em; margin: 0.4em 0; white-space: pre-wrap; }
.event.summary { border-color: #e90; }
</style>
</head>
<body>
<h2>VO QC Report Viewer</h2>
<div id="events"></div>
<script>
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (msg) => {
  const ev = JSON.parse(msg.data);
  const div = document.createElement("div");
  div.className = "event" + (ev.summary ? " summary" : "");
  div.textContent = JSON.stringify(ev, null, 2);
  document.getElementById("events").prepend(div);
};
</script>
</body>
</html>`

func main() {
	port := flag.String("port", "8081", "HTTP server port")
	brokers := flag.String("brokers", "localhost:9092", "Kafka brokers (comma-separated)")
	topicItems := flag.String("topic-items", "vo-qc.analysis.item", "Item result topic")
	topicSummary := flag.String("topic-summary", "vo-qc.analysis.summary", "Summary topic")
	flag.Parse()

	hub := newHub()
	go hub.run()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start Kafka consumers
	go consumeKafka(ctx, hub, *brokers, *topicItems)
	go consumeKafka(ctx, hub, *brokers, *topicSummary)

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(indexPage))
	})

	// WebSocket endpoint
	http.HandleFunc("/ws", wsHandler(hub))

	log.Printf("Report Viewer starting on http://localhost:%s", *port)
	log.Printf("   Kafka brokers: %s", *brokers)
	log.Printf("   Topics: %s, %s", *topicItems, *topicSummary)

	if err := http.ListenAndServe(":"+*port, nil); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
