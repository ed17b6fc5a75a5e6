package neynar

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLookupCast(t *testing.T) {
	// 模拟 Neynar API 服务器
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("Expected GET request, got %s", r.Method)
		}
		if r.Header.Get("api_key") != "test-key" {
			t.Errorf("Expected api_key test-key, got %s", r.Header.Get("api_key"))
		}
		if got := r.URL.Query().Get("identifier"); got != "0xabc" {
			t.Errorf("Expected identifier 0xabc, got %s", got)
		}
		if got := r.URL.Query().Get("type"); got != "hash" {
			t.Errorf("Expected type hash, got %s", got)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"cast": map[string]any{
				"hash": "0xabc",
				"text": "gm",
				"author": map[string]any{
					"fid":      int64(77),
					"username": "alice",
				},
				"timestamp": "2024-05-01T12:00:00Z",
			},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-key", "signer-1")
	cast, err := c.LookupCast(context.Background(), "0xabc")
	if err != nil {
		t.Fatalf("LookupCast failed: %v", err)
	}
	if cast.Hash != "0xabc" || cast.Text != "gm" {
		t.Errorf("unexpected cast: %+v", cast)
	}
	if cast.Author.FID != 77 || cast.Author.Username != "alice" {
		t.Errorf("unexpected author: %+v", cast.Author)
	}
}

func TestLookupCastNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-key", "signer-1")
	if _, err := c.LookupCast(context.Background(), "0xmissing"); !errors.Is(err, ErrCastNotFound) {
		t.Errorf("expected ErrCastNotFound, got %v", err)
	}
}

func TestLookupCastNullBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cast": null}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-key", "signer-1")
	if _, err := c.LookupCast(context.Background(), "0xnull"); !errors.Is(err, ErrCastNotFound) {
		t.Errorf("expected ErrCastNotFound for null cast, got %v", err)
	}
}

func TestPublishReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.Header.Get("api_key") != "test-key" {
			t.Errorf("Expected api_key header, got %s", r.Header.Get("api_key"))
		}

		var body publishRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.SignerUUID != "signer-1" {
			t.Errorf("Expected signer_uuid signer-1, got %s", body.SignerUUID)
		}
		if body.Parent != "0xabc" || body.ParentAuthorFID != 77 {
			t.Errorf("unexpected reply target: %+v", body)
		}
		if body.Text != "💾 Cast saved!" {
			t.Errorf("unexpected reply text: %s", body.Text)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-key", "signer-1")
	if err := c.PublishReply(context.Background(), "💾 Cast saved!", "0xabc", 77); err != nil {
		t.Fatalf("PublishReply failed: %v", err)
	}
}

func TestPublishReplyAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"bad signer"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-key", "signer-1")
	if err := c.PublishReply(context.Background(), "x", "0xabc", 77); err == nil {
		t.Errorf("expected error on non-2xx response")
	}
}
