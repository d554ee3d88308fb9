package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/output"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// imageFormats maps the format query parameter to an encoder and content type
var imageFormats = map[string]struct {
	write       output.Writer
	contentType string
}{
	"png": {output.WritePNG, "image/png"},
	"jpg": {output.WriteJPEG, "image/jpeg"},
	"ppm": {output.WritePPM, "image/x-portable-pixmap"},
}

// CompleteEvent is the final SSE event of a streamed render
type CompleteEvent struct {
	ImageData       string `json:"imageData"` // Base64 encoded PNG
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	Stats           Stats  `json:"stats"`
	DroppedMessages int    `json:"droppedMessages,omitempty"` // Console lines the client never saw
}

// renderOutcome carries the result of a background render
type renderOutcome struct {
	pixels []core.Color
	stats  renderer.RenderStats
	err    error
}

// newRenderID returns an identifier used to tag a render's log lines
func newRenderID() string {
	return fmt.Sprintf("render-%d", time.Now().UnixNano())
}

// newCamera configures a camera for the request
func newCamera(req *RenderRequest, sceneObj *scene.Scene, logger core.Logger) *renderer.Camera {
	camera := sceneObj.NewCamera()
	camera.SetSeed(req.Seed)
	camera.SetNumWorkers(req.Workers)
	camera.SetLogger(logger)
	warnIfSlow(req, logger)
	return camera
}

// warnIfSlow logs a warning for renders that are large in both size and samples
func warnIfSlow(req *RenderRequest, logger core.Logger) {
	if req.Width*req.Height > 800*600 && req.Samples > 100 {
		logger.Printf("Render warning: %dx%d at %d samples/pixel may render slowly\n",
			req.Width, req.Height, req.Samples)
	}
}

// handleRender renders synchronously and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, sceneObj, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	formatName := r.URL.Query().Get("format")
	if formatName == "" {
		formatName = "png"
	}
	format, ok := imageFormats[formatName]
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: unsupported format %q", formatName))
		return
	}

	logger := NewWebLogger(newRenderID(), nil)
	pixels, stats, err := newCamera(req, sceneObj, logger).RenderContext(r.Context(), sceneObj)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := format.write(&buf, pixels, req.Width, req.Height); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Encode error: %v", err))
		return
	}

	w.Header().Set("Content-Type", format.contentType)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// handleRenderStream renders in the background and streams console output via SSE,
// ending with a "complete" event carrying the PNG, or an "error" event
func (s *Server) handleRenderStream(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	req, sceneObj, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendSSEEvent(w, "error", fmt.Sprintf("Invalid request: %v", err))
		return
	}

	consoleChan := make(chan ConsoleMessage, 100)
	logger := NewWebLogger(newRenderID(), consoleChan)
	camera := newCamera(req, sceneObj, logger)

	// A disconnected client cancels ctx, which stops the render at the next row
	done := make(chan renderOutcome, 1)
	go func() {
		pixels, stats, err := camera.RenderContext(ctx, sceneObj)
		done <- renderOutcome{pixels: pixels, stats: stats, err: err}
	}()

	for {
		select {
		case msg := <-consoleChan:
			s.sendConsoleMessage(w, msg)

		case outcome := <-done:
			// Flush console lines logged before completion
			for drained := false; !drained; {
				select {
				case msg := <-consoleChan:
					s.sendConsoleMessage(w, msg)
				default:
					drained = true
				}
			}

			if outcome.err != nil {
				s.sendSSEEvent(w, "error", fmt.Sprintf("Render error: %v", outcome.err))
				return
			}
			s.sendComplete(w, req, outcome, logger.Dropped())
			return

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}
}

func (s *Server) sendComplete(w http.ResponseWriter, req *RenderRequest, outcome renderOutcome, dropped int) {
	var buf bytes.Buffer
	if err := output.WritePNG(&buf, outcome.pixels, req.Width, req.Height); err != nil {
		s.sendSSEEvent(w, "error", fmt.Sprintf("Encode error: %v", err))
		return
	}

	data, err := json.Marshal(CompleteEvent{
		ImageData:       base64.StdEncoding.EncodeToString(buf.Bytes()),
		Width:           req.Width,
		Height:          req.Height,
		Stats:           newStats(outcome.stats),
		DroppedMessages: dropped,
	})
	if err != nil {
		s.sendSSEEvent(w, "error", fmt.Sprintf("Encode error: %v", err))
		return
	}
	s.sendSSEEvent(w, "complete", string(data))
}

func (s *Server) sendConsoleMessage(w http.ResponseWriter, msg ConsoleMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling console message: %v", err)
		return
	}
	s.sendSSEEvent(w, "console", string(data))
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// sendSSEEvent writes one SSE event and flushes it to the client
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	return nil
}
