package pseudogen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bububa/pseudogen/components/chunker"
	"github.com/bububa/pseudogen/components/generator"
)

// newChatStub serves numbered completions ("resp-1", "resp-2", ...) and
// captures the user message of each request.
func newChatStub(t *testing.T, userMessages *[]string) *httptest.Server {
	t.Helper()
	calls := 0
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		for _, m := range req.Messages {
			if m.Role == "user" {
				*userMessages = append(*userMessages, m.Content)
			}
		}
		calls++
		fmt.Fprintf(w, `{
			"id": "chatcmpl-test",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "resp-%d"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 7, "completion_tokens": 2, "total_tokens": 9}
		}`, calls)
	}))
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunPreservesInputAndChunkOrder(t *testing.T) {
	const budget = 8
	textA := strings.TrimSpace(strings.Repeat("alpha ", 30))
	textB := "beta"

	ck, err := chunker.New(chunker.WithMaxTokens(budget))
	if err != nil {
		t.Fatal(err)
	}
	chunksA := ck.Split(textA)
	if len(chunksA) < 2 {
		t.Fatalf("fixture A must split, got %d chunk(s)", len(chunksA))
	}

	var userMessages []string
	srv := newChatStub(t, &userMessages)
	defer srv.Close()

	pipe, err := New(
		WithAPIKey("sk-test"),
		WithBaseURL(srv.URL+"/v1"),
		WithMaxTokens(budget),
	)
	if err != nil {
		t.Fatal(err)
	}
	out, err := pipe.Run(context.Background(), []string{
		writeFixture(t, "a.txt", textA),
		writeFixture(t, "b.txt", textB),
	})
	if err != nil {
		t.Fatal(err)
	}

	total := len(chunksA) + 1
	want := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		want = append(want, fmt.Sprintf("resp-%d", i))
	}
	if got := strings.Join(want, Separator); out != got {
		t.Errorf("output sections out of order:\nwant %q\ngot  %q", got, out)
	}

	if len(userMessages) != total {
		t.Fatalf("want %d requests, got %d", total, len(userMessages))
	}
	for i, chunk := range chunksA {
		if !strings.Contains(userMessages[i], chunk) {
			t.Errorf("request %d does not carry chunk %d of input A", i, i)
		}
	}
	if !strings.Contains(userMessages[total-1], textB) {
		t.Error("final request does not carry input B")
	}
	if pipe.Usage().Requests() != int64(total) {
		t.Errorf("usage reports %d requests, want %d", pipe.Usage().Requests(), total)
	}
}

func TestRunSmallInputSingleChunk(t *testing.T) {
	var userMessages []string
	srv := newChatStub(t, &userMessages)
	defer srv.Close()

	pipe, err := New(WithAPIKey("sk-test"), WithBaseURL(srv.URL+"/v1"))
	if err != nil {
		t.Fatal(err)
	}
	text := "x = 1\n"
	out, err := pipe.Run(context.Background(), []string{writeFixture(t, "x.py", text)})
	if err != nil {
		t.Fatal(err)
	}
	if out != "resp-1" {
		t.Errorf("want a single section, got %q", out)
	}
	if len(userMessages) != 1 || !strings.Contains(userMessages[0], text) {
		t.Error("small input was not dispatched as one unmodified chunk")
	}
}

func TestRunAbortsOnFirstFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"error": {"message": "boom"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	pipe, err := New(WithAPIKey("sk-test"), WithBaseURL(srv.URL+"/v1"))
	if err != nil {
		t.Fatal(err)
	}
	out, err := pipe.Run(context.Background(), []string{
		writeFixture(t, "a.py", "a = 1"),
		writeFixture(t, "b.py", "b = 2"),
	})
	var genErr *generator.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("want *GenerationError, got %v", err)
	}
	if out != "" {
		t.Errorf("partial output survived a failure: %q", out)
	}
	if calls != 1 {
		t.Errorf("run continued after the first failure: %d calls", calls)
	}
}

func TestNewMissingCredential(t *testing.T) {
	_, err := New()
	if !errors.Is(err, generator.ErrMissingCredential) {
		t.Errorf("want ErrMissingCredential, got %v", err)
	}
}

func TestRunNoInputs(t *testing.T) {
	srv := newChatStub(t, new([]string))
	defer srv.Close()
	pipe, err := New(WithAPIKey("sk-test"), WithBaseURL(srv.URL+"/v1"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := pipe.Run(context.Background(), nil); err == nil {
		t.Error("expected an error for an empty input list")
	}
}
