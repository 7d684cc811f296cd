package engine

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/coder/websocket"

	"github.com/ontypehq/timbre/internal/audio"
)

// wsMessage is the minimal protocol envelope.
type wsMessage struct {
	EventID string `json:"event_id,omitempty"`
	Type    string `json:"type"`
}

type sessionUpdate struct {
	EventID string        `json:"event_id,omitempty"`
	Type    string        `json:"type"`
	Session sessionParams `json:"session"`
}

type sessionParams struct {
	Mode           string `json:"mode"`
	Voice          string `json:"voice,omitempty"`
	Speaker        string `json:"speaker,omitempty"`
	Instruct       string `json:"instruct,omitempty"`
	LanguageType   string `json:"language_type,omitempty"`
	RefAudio       string `json:"ref_audio,omitempty"` // base64 WAV
	RefText        string `json:"ref_text,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"`
	SampleRate     int    `json:"sample_rate,omitempty"`
}

type textAppend struct {
	EventID string `json:"event_id,omitempty"`
	Type    string `json:"type"`
	Text    string `json:"text"`
}

type serverMessage struct {
	Type  string `json:"type"`
	Delta string `json:"delta,omitempty"`
}

// Synthesize opens a websocket to the daemon, submits the request, and
// streams s16le PCM chunks (24 kHz mono) through onAudio until the session
// finishes. The daemon loads the requested model on first use; the dial is
// cheap but the first delta can take a while on a cold model.
func (c *Client) Synthesize(ctx context.Context, req Request, onAudio func([]byte)) error {
	wsURL := fmt.Sprintf("%s/v1/realtime?model=%s", websocketURL(c.baseURL), url.QueryEscape(req.Model))

	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("websocket dial: %w", err)
	}
	defer conn.CloseNow()
	conn.SetReadLimit(1 << 20) // audio deltas can be large

	if err := c.expectMessage(ctx, conn, "session.created"); err != nil {
		return err
	}

	session := sessionParams{
		Mode:           string(req.Mode),
		Voice:          req.Voice,
		Speaker:        req.Speaker,
		Instruct:       req.Instruct,
		LanguageType:   req.Language,
		RefText:        req.RefText,
		ResponseFormat: "pcm",
		SampleRate:     audio.SampleRate,
	}
	if req.RefAudio != nil {
		session.RefAudio = base64.StdEncoding.EncodeToString(audio.WAVBytes(req.RefAudio))
	}
	if err := c.writeJSON(ctx, conn, sessionUpdate{Type: "session.update", Session: session}); err != nil {
		return fmt.Errorf("session.update: %w", err)
	}

	if err := c.writeJSON(ctx, conn, textAppend{Type: "input_text_buffer.append", Text: req.Text}); err != nil {
		return fmt.Errorf("text append: %w", err)
	}

	if err := c.writeJSON(ctx, conn, wsMessage{Type: "session.finish"}); err != nil {
		return fmt.Errorf("session.finish: %w", err)
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}

		var msg serverMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}

		switch msg.Type {
		case "response.audio.delta":
			pcm, err := base64.StdEncoding.DecodeString(msg.Delta)
			if err != nil {
				return fmt.Errorf("decode audio: %w", err)
			}
			onAudio(pcm)

		case "response.done":
			// per-response marker, keep reading for session.finished
			continue

		case "session.finished":
			conn.Close(websocket.StatusNormalClosure, "done")
			return nil

		case "error":
			return fmt.Errorf("engine error: %s", string(data))
		}
	}
}

func (c *Client) expectMessage(ctx context.Context, conn *websocket.Conn, expectedType string) error {
	_, data, err := conn.Read(ctx)
	if err != nil {
		return fmt.Errorf("waiting for %s: %w", expectedType, err)
	}
	var msg serverMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return fmt.Errorf("parse %s: %w", expectedType, err)
	}
	if msg.Type != expectedType {
		return fmt.Errorf("expected %s, got %s", expectedType, msg.Type)
	}
	return nil
}

func (c *Client) writeJSON(ctx context.Context, conn *websocket.Conn, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}

func websocketURL(base string) string {
	switch {
	case strings.HasPrefix(base, "https://"):
		return "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		return "ws://" + strings.TrimPrefix(base, "http://")
	}
	return base
}
