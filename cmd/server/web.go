package main

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/coder/websocket"

	mandelbrot "github.com/marek231/mandelbrotset"
)

// maxFrameDim caps per-request frame dimensions so a query parameter
// cannot ask for an arbitrarily large allocation.
const maxFrameDim = 4096

//go:embed index.html
var indexHTML []byte

// viewportRequest is the client's JSON message on the websocket. One full
// frame is rendered and sent back for every request received.
type viewportRequest struct {
	Zoom    float64 `json:"zoom"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
}

// frameServer renders full frames through a shared engine on behalf of
// websocket and plain HTTP clients.
type frameServer struct {
	engine *mandelbrot.Engine
	width  int
	height int
}

func newMux(engine *mandelbrot.Engine, width, height int) *http.ServeMux {
	fsrv := &frameServer{engine: engine, width: width, height: height}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", fsrv.handleWS)
	mux.HandleFunc("/render.png", fsrv.handleRender)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})
	return mux
}

// handleWS upgrades the connection and streams frames until the client
// goes away.
func (s *frameServer) handleWS(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()

	log.Printf("websocket client connected: %s", r.RemoteAddr)
	if err := s.serveFrames(r.Context(), c); err != nil {
		log.Printf("websocket client %s: %v", r.RemoteAddr, err)
	}
}

// serveFrames renders one frame per viewport request. The frame surface
// is reused across requests of a connection; the engine fully repopulates
// it every time, so no stale pixels survive.
func (s *frameServer) serveFrames(ctx context.Context, c *websocket.Conn) error {
	frame := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	var buf bytes.Buffer
	for {
		_, data, err := c.Read(ctx)
		if err != nil {
			return err
		}

		var req viewportRequest
		if err := json.Unmarshal(data, &req); err != nil {
			c.Close(websocket.StatusUnsupportedData, "bad viewport request")
			return fmt.Errorf("decode viewport request: %w", err)
		}
		if req.Zoom <= 0 {
			c.Close(websocket.StatusUnsupportedData, "zoom must be positive")
			return fmt.Errorf("zoom must be positive, got %v", req.Zoom)
		}

		view := mandelbrot.Viewport{Zoom: req.Zoom, OffsetX: req.OffsetX, OffsetY: req.OffsetY}
		s.engine.UpdateImage(view, frame)

		buf.Reset()
		if err := png.Encode(&buf, frame); err != nil {
			return fmt.Errorf("encode frame: %w", err)
		}
		if err := c.Write(ctx, websocket.MessageBinary, buf.Bytes()); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
	}
}

// handleRender renders a single frame for a GET query. Unset parameters
// default to the home view at the server's configured frame size.
func (s *frameServer) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	width, err := intParam(q, "w", s.width)
	if err == nil && (width < 1 || width > maxFrameDim) {
		err = fmt.Errorf("parameter \"w\" must be within 1..%d", maxFrameDim)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	height, err := intParam(q, "h", s.height)
	if err == nil && (height < 1 || height > maxFrameDim) {
		err = fmt.Errorf("parameter \"h\" must be within 1..%d", maxFrameDim)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	home := mandelbrot.Home.Viewport(width)
	zoom, err := floatParam(q, "zoom", home.Zoom)
	if err == nil && zoom <= 0 {
		err = fmt.Errorf("parameter \"zoom\" must be positive")
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	x, err := floatParam(q, "x", home.OffsetX)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	y, err := floatParam(q, "y", home.OffsetY)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	frame := image.NewRGBA(image.Rect(0, 0, width, height))
	s.engine.UpdateImage(mandelbrot.Viewport{Zoom: zoom, OffsetX: x, OffsetY: y}, frame)

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, frame); err != nil {
		log.Printf("encode frame for %s: %v", r.RemoteAddr, err)
	}
}

func floatParam(q url.Values, key string, def float64) (float64, error) {
	s := q.Get(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %q: %w", key, err)
	}
	return v, nil
}

func intParam(q url.Values, key string, def int) (int, error) {
	s := q.Get(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parameter %q: %w", key, err)
	}
	return v, nil
}
