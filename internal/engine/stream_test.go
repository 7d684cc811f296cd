package engine_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/require"

	"github.com/ontypehq/timbre/internal/engine"
)

// fakeDaemon speaks just enough of the realtime protocol to drive the client.
func fakeDaemon(t *testing.T, deltas [][]byte, gotSession *map[string]any, gotText *string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/realtime", r.URL.Path)
		require.NotEmpty(t, r.URL.Query().Get("model"))

		conn, err := websocket.Accept(w, r, nil)
		require.NoError(t, err)
		defer conn.CloseNow()

		ctx := r.Context()
		write := func(v any) {
			data, err := json.Marshal(v)
			require.NoError(t, err)
			require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
		}
		read := func() map[string]any {
			_, data, err := conn.Read(ctx)
			require.NoError(t, err)
			var m map[string]any
			require.NoError(t, json.Unmarshal(data, &m))
			return m
		}

		write(map[string]any{"type": "session.created"})

		update := read()
		require.Equal(t, "session.update", update["type"])
		if gotSession != nil {
			*gotSession = update["session"].(map[string]any)
		}

		appendMsg := read()
		require.Equal(t, "input_text_buffer.append", appendMsg["type"])
		if gotText != nil {
			*gotText = appendMsg["text"].(string)
		}

		finish := read()
		require.Equal(t, "session.finish", finish["type"])

		for _, d := range deltas {
			write(map[string]any{
				"type":  "response.audio.delta",
				"delta": base64.StdEncoding.EncodeToString(d),
			})
		}
		write(map[string]any{"type": "response.done"})
		write(map[string]any{"type": "session.finished"})
	}))
}

func TestSynthesizeStreamsAudio(t *testing.T) {
	deltas := [][]byte{{1, 0, 2, 0}, {3, 0, 4, 0}}
	var session map[string]any
	var text string

	srv := fakeDaemon(t, deltas, &session, &text)
	defer srv.Close()

	req := engine.Request{
		Mode:     engine.ModeCustom,
		Model:    engine.ModelCustomSmall,
		Text:     "Hello world",
		Speaker:  "Aiden",
		Language: "English",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var pcm []byte
	err := engine.NewClient(srv.URL).Synthesize(ctx, req, func(chunk []byte) {
		pcm = append(pcm, chunk...)
	})
	require.NoError(t, err)

	require.Equal(t, []byte{1, 0, 2, 0, 3, 0, 4, 0}, pcm)
	require.Equal(t, "Hello world", text)
	require.Equal(t, "custom", session["mode"])
	require.Equal(t, "Aiden", session["speaker"])
	require.Equal(t, "English", session["language_type"])
	require.Equal(t, "pcm", session["response_format"])
	require.NotContains(t, session, "voice")
	require.NotContains(t, session, "ref_audio")
}

func TestSynthesizeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		require.NoError(t, err)
		defer conn.CloseNow()

		ctx := r.Context()
		data, _ := json.Marshal(map[string]any{"type": "session.created"})
		conn.Write(ctx, websocket.MessageText, data)

		for i := 0; i < 3; i++ {
			conn.Read(ctx)
		}

		data, _ = json.Marshal(map[string]any{"type": "error", "message": "model not found"})
		conn.Write(ctx, websocket.MessageText, data)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := engine.NewClient(srv.URL).Synthesize(ctx, engine.Request{
		Mode:  engine.ModeDesign,
		Model: engine.ModelDesign,
		Text:  "Hello",
		Voice: "A deep voice.",
	}, func([]byte) {})
	require.Error(t, err)
	require.Contains(t, err.Error(), "model not found")
}

func TestSynthesizeDialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := engine.NewClient(srv.URL).Synthesize(ctx, engine.Request{
		Mode:  engine.ModeDesign,
		Model: engine.ModelDesign,
		Text:  "Hello",
		Voice: "A deep voice.",
	}, func([]byte) {})
	require.Error(t, err)
}
