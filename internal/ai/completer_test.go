package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLICompleter_MissingBinary(t *testing.T) {
	c := NewCLICompleter("definitely-not-a-real-generator-binary", "codellama:7b-code")

	assert.False(t, c.Available())
	_, err := c.Complete(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestCLICompleter_CapturesStdout(t *testing.T) {
	// echo prints its arguments, which makes the invocation shape visible.
	c := NewCLICompleter("echo", "codellama:7b-code")
	if !c.Available() {
		t.Skip("echo not available")
	}

	out, err := c.Complete(context.Background(), "a coffee shop")

	require.NoError(t, err)
	assert.Equal(t, "run codellama:7b-code a coffee shop", out)
}

func TestCLICompleter_NonZeroExit(t *testing.T) {
	c := NewCLICompleter("false", "m")
	if !c.Available() {
		t.Skip("false not available")
	}

	_, err := c.Complete(context.Background(), "x")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrToolNotFound)
	assert.Contains(t, err.Error(), "false run failed")
}

func TestCLICompleter_ContextCancelled(t *testing.T) {
	c := NewCLICompleter("sleep", "5")
	if !c.Available() {
		t.Skip("sleep not available")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// sleep receives "run" as its first operand and fails fast, or is
	// killed by the deadline; either way it must not hang or succeed.
	_, err := c.Complete(ctx, "x")
	assert.Error(t, err)
}

func TestOpenAICompleter(t *testing.T) {
	var gotModel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotModel = body.Model
		require.Len(t, body.Messages, 2)
		assert.Equal(t, "write index.html", body.Messages[1].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "<p>hi</p>"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 5, "completion_tokens": 3, "total_tokens": 8}
		}`))
	}))
	defer srv.Close()

	c := NewOpenAICompleter("test-key", "", srv.URL+"/v1")
	require.NotNil(t, c)

	out, err := c.Complete(context.Background(), "write index.html")

	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", out)
	assert.Equal(t, "gpt-4o", gotModel)
}

func TestOpenAICompleter_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[]}`))
	}))
	defer srv.Close()

	c := NewOpenAICompleter("k", "m", srv.URL)
	_, err := c.Complete(context.Background(), "x")

	assert.EqualError(t, err, "openai returned empty response")
}

func TestOpenAICompleter_NoKey(t *testing.T) {
	c := NewOpenAICompleter("", "", "")
	assert.Nil(t, c)

	var completer Completer = c
	_, err := completer.Complete(context.Background(), "x")
	assert.ErrorIs(t, err, ErrToolNotFound)
}
