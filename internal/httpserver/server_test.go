package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/lettercheck/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(store.NewMemoryStore(), Options{}).Router())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode, decodeBody(t, resp)
}

func get(t *testing.T, srv *httptest.Server, path string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	code, body := get(t, srv, "/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["ok"])
}

func TestNotFound(t *testing.T) {
	srv := newTestServer(t)
	code, body := get(t, srv, "/nope")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "/nope", body["path"])
}

func TestScore(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	tests := []struct {
		name     string
		body     string
		wantCode int
		want     map[string]any
	}{
		{
			name:     "cover",
			body:     `{"guess":"COYER","answer":"COVER"}`,
			wantCode: http.StatusOK,
			want: map[string]any{
				"green":  []any{true, true, false, true, true},
				"yellow": []any{false, false, false, false, false},
				"colors": []any{"green", "green", "gray", "green", "green"},
			},
		},
		{
			name:     "kayak",
			body:     `{"guess":"KAYAK","answer":"WHACK"}`,
			wantCode: http.StatusOK,
			want: map[string]any{
				"green":  []any{false, false, false, false, true},
				"yellow": []any{false, true, false, false, false},
				"colors": []any{"gray", "yellow", "gray", "gray", "green"},
			},
		},
		{
			name:     "length mismatch",
			body:     `{"guess":"GREENY","answer":"GREEN"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "bad json",
			body:     `{"guess":`,
			wantCode: http.StatusBadRequest,
			want:     map[string]any{"error": "bad_json"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, body := post(t, srv, "/score", tc.body)
			assert.Equal(t, tc.wantCode, code)
			if tc.want != nil {
				assert.Equal(t, tc.want, body)
			} else {
				assert.Contains(t, body["error"], "lengths differ")
			}
		})
	}
}

func TestLetters(t *testing.T) {
	srv := newTestServer(t)

	code, body := post(t, srv, "/letters", `{"answer":"HELLO","guesses":["LLXXL"]}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"L"}, body["included"])
	assert.Equal(t, []any{"X"}, body["excluded"])
	assert.Len(t, body["possible"], 24)
	assert.Equal(t, []any{[]any{"yellow", "yellow", "gray", "gray", "gray"}}, body["colorings"])

	code, body = post(t, srv, "/letters", `{"answer":"HELLO","guesses":["HELLS","HELLOS"]}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["error"], "guess 2")
}

func TestReplace(t *testing.T) {
	srv := newTestServer(t)

	code, body := post(t, srv, "/replace", `{"word":"GUMBO","index":0,"letter":"J"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "JUMBO", body["word"])

	code, _ = post(t, srv, "/replace", `{"word":"GUMBO","index":5,"letter":"J"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = post(t, srv, "/replace", `{"word":"GUMBO","index":0,"letter":"JJ"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestSessionFlow(t *testing.T) {
	srv := newTestServer(t)

	code, body := post(t, srv, "/session/new", `{"answer":"coral"}`)
	require.Equal(t, http.StatusOK, code)
	id, _ := body["sessionId"].(string)
	require.NotEmpty(t, id)
	assert.EqualValues(t, 5, body["cols"])

	code, body = post(t, srv, "/session/guess", `{"sessionId":"`+id+`","guess":"vegan"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "playing", body["state"])
	assert.Equal(t, []any{"gray", "gray", "gray", "green", "gray"}, body["colors"])

	code, body = get(t, srv, "/session/"+id)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"A"}, body["included"])
	assert.NotContains(t, body, "answer")

	code, _ = post(t, srv, "/session/guess", `{"sessionId":"`+id+`","guess":"corals"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = post(t, srv, "/session/guess", `{"sessionId":"`+id+`","guess":"coral"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "won", body["state"])
	session, _ := body["session"].(map[string]any)
	assert.Equal(t, "CORAL", session["answer"])
	assert.Empty(t, session["possible"])

	code, _ = post(t, srv, "/session/guess", `{"sessionId":"`+id+`","guess":"coral"}`)
	assert.Equal(t, http.StatusConflict, code)
}

func TestSessionErrors(t *testing.T) {
	srv := newTestServer(t)

	code, _ := post(t, srv, "/session/new", `{"answer":"c0ral"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = post(t, srv, "/session/guess", `{"sessionId":"missing","guess":"coral"}`)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = get(t, srv, "/session/missing")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCORSPreflight(t *testing.T) {
	srv := httptest.NewServer(New(store.NewMemoryStore(), Options{ClientOrigin: "https://example.test"}).Router())
	defer srv.Close()

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/score", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "https://example.test", resp.Header.Get("Access-Control-Allow-Origin"))
}
