package net

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"GeoBoard/internal/state"
)

const (
	// DefaultPort is the session websocket port.
	DefaultPort = 8137
	// URLScheme prefixes share links: geoboard://192.168.1.10:8137
	URLScheme = "geoboard://"

	sessionPath = "/session"
)

// viewerConn is one connected viewer. gorilla/websocket forbids
// concurrent writers, so the snapshot and broadcast paths share a
// per-connection write mutex.
type viewerConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (v *viewerConn) writeJSON(msg any) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.conn.WriteJSON(msg)
}

// Host serves a presenter's figure to LAN viewers over websockets and
// broadcasts every figure op to them.
type Host struct {
	figure   *state.Figure
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	viewers map[*viewerConn]bool

	mdns *Announcer
}

// NewHost creates a host for the given figure.
func NewHost(figure *state.Figure) *Host {
	return &Host{
		figure:  figure,
		viewers: make(map[*viewerConn]bool),
		upgrader: websocket.Upgrader{
			// Viewers connect from the custom URL scheme, not a
			// browser page, so origin checking does not apply.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Start listens for viewers on the given port and announces the
// session over mDNS. Blocks; run it in a goroutine.
func (h *Host) Start(port int) error {
	ann, err := Announce(port)
	if err != nil {
		log.Printf("[NET] mDNS announce failed, share link only: %v", err)
	} else {
		h.mdns = ann
	}

	mux := http.NewServeMux()
	mux.HandleFunc(sessionPath, h.serveViewer)
	log.Printf("[NET] session host listening on port %d", port)
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}

func (h *Host) serveViewer(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[NET] upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}
	v := &viewerConn{conn: conn}

	// Register before sending the snapshot so no op broadcast during
	// the join can slip past the viewer. The snapshot is taken under
	// the write mutex: any op written before it is already reflected
	// in the figure the snapshot reads, and any op written after it
	// reaches the viewer as a later message.
	h.add(v)
	log.Printf("[NET] viewer connected: %s", r.RemoteAddr)

	v.mu.Lock()
	err = conn.WriteJSON(h.figure.Snapshot())
	v.mu.Unlock()
	if err != nil {
		log.Printf("[NET] snapshot send to %s failed: %v", r.RemoteAddr, err)
		h.remove(v)
		return
	}

	// Viewers are read-only; the read loop only detects disconnects.
	go func() {
		defer h.remove(v)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				log.Printf("[NET] viewer %s disconnected: %v", r.RemoteAddr, err)
				return
			}
		}
	}()
}

func (h *Host) add(v *viewerConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.viewers[v] = true
}

func (h *Host) remove(v *viewerConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.viewers[v] {
		delete(h.viewers, v)
		v.conn.Close()
	}
}

// ViewerCount returns the number of connected viewers.
func (h *Host) ViewerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.viewers)
}

// Broadcast sends an op to every connected viewer. Wire it to the
// figure's OnOp callback.
func (h *Host) Broadcast(op state.Op) {
	h.mu.RLock()
	viewers := make([]*viewerConn, 0, len(h.viewers))
	for v := range h.viewers {
		viewers = append(viewers, v)
	}
	h.mu.RUnlock()

	for _, v := range viewers {
		if err := v.writeJSON(op); err != nil {
			log.Printf("[NET] send to %s failed, dropping viewer: %v", v.conn.RemoteAddr(), err)
			h.remove(v)
		}
	}
}

// Close shuts down the mDNS announcement.
func (h *Host) Close() {
	if h.mdns != nil {
		h.mdns.Shutdown()
	}
}

// ShareLink builds the link a presenter hands out.
func ShareLink(ip string, port int) string {
	return fmt.Sprintf("%s%s:%d", URLScheme, ip, port)
}

// ConnectViewer dials a host at addr ("ip:port"), applies the incoming
// op stream to figure, and blocks until the connection drops. status
// receives human-readable connection updates for the status bar.
func ConnectViewer(addr string, figure *state.Figure, status func(string)) error {
	url := fmt.Sprintf("ws://%s%s", addr, sessionPath)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		status(fmt.Sprintf("Connection failed: %v", err))
		return fmt.Errorf("dial %s: %w", url, err)
	}
	defer conn.Close()

	status("Following session at " + addr)
	log.Printf("[NET] connected to host %s", addr)

	for {
		var op state.Op
		if err := conn.ReadJSON(&op); err != nil {
			status(fmt.Sprintf("Disconnected from host: %v", err))
			return fmt.Errorf("session read: %w", err)
		}
		figure.ApplyRemote(op)
	}
}
