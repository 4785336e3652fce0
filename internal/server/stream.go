package server

import (
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/matzehuels/toolverse/pkg/hierarchy"
	"github.com/matzehuels/toolverse/pkg/observability"
	"github.com/matzehuels/toolverse/pkg/sunburst"
	"github.com/matzehuels/toolverse/pkg/tree"
)

// upgrader admits the origins the CORS config admits. Requests without an
// Origin header come from non-browser clients and are accepted.
func (s *Server) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if s.cfg.CORS.AllowAll || origin == "" {
				return true
			}
			return slices.Contains(s.cfg.CORS.Origins, origin)
		},
	}
}

// Stream commands sent by the client.
const (
	cmdFocus = "focus"
	cmdTool  = "tool"
	cmdReset = "reset"
	cmdClick = "click"
)

// Stream message types sent by the server.
const (
	msgHello    = "hello"
	msgEvent    = "event"
	msgFrame    = "frame"
	msgNotFound = "notFound"
	msgError    = "error"
)

// streamCommand is the incoming websocket message format.
type streamCommand struct {
	Cmd  string `json:"cmd"`
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// streamMessage is the outgoing websocket message format.
type streamMessage struct {
	Type    string          `json:"type"`
	Session string          `json:"session"`
	Kind    string          `json:"kind,omitempty"`
	Event   sunburst.Event  `json:"event,omitempty"`
	Frame   *tree.Frame     `json:"frame,omitempty"`
	Error   string          `json:"error,omitempty"`
	Command json.RawMessage `json:"command,omitempty"`
}

// handleStream runs one engine per connection. Commands are applied on the
// connection goroutine that owns the engine; frames are pushed every
// frameInterval while a transition runs.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	c, err := s.loadCatalog(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	h, err := hierarchy.FromCatalog(c)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	conn, err := s.upgrader().Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade", "err", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	st := &stream{
		conn:    conn,
		session: uuid.NewString(),
		engine: sunburst.New(h,
			sunburst.WithRadius(s.cfg.Chart.Radius),
			sunburst.WithDuration(time.Duration(s.cfg.Chart.DurationMS)*time.Millisecond)),
	}
	observability.HTTP().OnStreamOpen(ctx)
	defer func() { observability.HTTP().OnStreamClose(ctx, st.frames) }()
	s.logger.Debug("stream opened", "session", st.session)

	unsubscribe := st.engine.Subscribe(st.sendEvent)
	defer unsubscribe()

	if err := st.send(streamMessage{Type: msgHello, Frame: st.frame()}); err != nil {
		return
	}

	cmds := make(chan []byte)
	readErr := make(chan error, 1)
	go func() {
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				readErr <- err
				return
			}
			select {
			case cmds <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(s.frameInterval)
	defer ticker.Stop()
	var started time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case err := <-readErr:
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("stream read", "session", st.session, "err", err)
			}
			s.logger.Debug("stream closed", "session", st.session, "frames", st.frames)
			return
		case msg := <-cmds:
			ok, err := st.apply(msg)
			if err != nil {
				return
			}
			if !ok {
				continue
			}
			if st.engine.Animating() {
				started = time.Now()
			} else if err := st.send(streamMessage{Type: msgFrame, Frame: st.frame()}); err != nil {
				return
			}
		case <-ticker.C:
			if !st.engine.Animating() {
				continue
			}
			st.engine.Tick(time.Since(started))
			if err := st.send(streamMessage{Type: msgFrame, Frame: st.frame()}); err != nil {
				return
			}
		}
	}
}

type stream struct {
	conn    *websocket.Conn
	session string
	engine  *sunburst.Engine
	frames  int
	err     error
}

func (st *stream) frame() *tree.Frame {
	f := st.engine.Frame()
	st.frames++
	return &f
}

func (st *stream) send(m streamMessage) error {
	if st.err != nil {
		return st.err
	}
	m.Session = st.session
	st.err = st.conn.WriteJSON(m)
	return st.err
}

func (st *stream) sendEvent(ev sunburst.Event) {
	_ = st.send(streamMessage{Type: msgEvent, Kind: ev.Kind(), Event: ev})
}

// apply runs one client command against the engine and reports whether it
// resolved. Malformed, unknown and unresolved commands are reported to the
// client and do not close the stream.
func (st *stream) apply(msg []byte) (bool, error) {
	var cmd streamCommand
	if err := json.Unmarshal(msg, &cmd); err != nil {
		return false, st.send(streamMessage{Type: msgError, Error: "invalid message format"})
	}

	res := sunburst.Resolved
	switch cmd.Cmd {
	case cmdFocus:
		res = st.engine.FocusCategory(cmd.ID)
	case cmdTool:
		res = st.engine.FocusTool(cmd.Name)
	case cmdReset:
		st.engine.ResetView()
	case cmdClick:
		res = st.engine.ClickKey(cmd.ID)
	default:
		return false, st.send(streamMessage{Type: msgError, Error: "unknown command: " + cmd.Cmd})
	}
	if res == sunburst.NotFound {
		return false, st.send(streamMessage{Type: msgNotFound, Command: msg})
	}
	return true, st.err
}
