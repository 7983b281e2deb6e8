package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"trustfluence-chatbot/internal/handlers"
	"trustfluence-chatbot/internal/prompt"
	"trustfluence-chatbot/internal/services"
)

// scriptedLLM fails the calls whose user turn is "fail", panics on "panic"
// and echoes the rest.
type scriptedLLM struct {
	mu    sync.Mutex
	calls int
}

func (s *scriptedLLM) Complete(_ context.Context, system, user string) (string, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if system != prompt.SystemPrompt {
		return "", errors.New("unexpected system prompt")
	}
	if user == "fail" {
		return "", errors.New("provider unavailable")
	}
	if user == "panic" {
		panic("provider client bug")
	}
	return "echo: " + user, nil
}

func (s *scriptedLLM) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestServer(llm *scriptedLLM) *httptest.Server {
	svc := services.NewChatService(llm, prompt.Default())
	return httptest.NewServer(New(handlers.NewChatHandler(svc)))
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func TestRouter_Home(t *testing.T) {
	srv := newTestServer(&scriptedLLM{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["status"] != "Chatbot API running 🚀" {
		t.Errorf("Unexpected body: %v", body)
	}
}

func TestRouter_ChatRoundTrip(t *testing.T) {
	llm := &scriptedLLM{}
	srv := newTestServer(llm)
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/chat", `{"message":"what is a trust score?"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["response"] != "echo: what is a trust score?" {
		t.Errorf("Unexpected body: %v", body)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID on response")
	}
}

func TestRouter_MissingMessageDoesNotCallProvider(t *testing.T) {
	llm := &scriptedLLM{}
	srv := newTestServer(llm)
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/chat", `{"msg":"typo"}`)
	resp.Body.Close()

	if resp.StatusCode < 400 || resp.StatusCode >= 500 {
		t.Fatalf("Expected 4xx, got %d", resp.StatusCode)
	}
	if n := llm.Calls(); n != 0 {
		t.Errorf("Expected no provider calls, got %d", n)
	}
}

func TestRouter_ProviderFailureThenRecovery(t *testing.T) {
	srv := newTestServer(&scriptedLLM{})
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/chat", `{"message":"fail"}`)
	resp.Body.Close()
	if resp.StatusCode < 500 {
		t.Fatalf("Expected 5xx on provider failure, got %d", resp.StatusCode)
	}

	resp = postJSON(t, srv.URL+"/chat", `{"message":"still there?"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected later request to succeed, got %d", resp.StatusCode)
	}
}

func TestRouter_PanicReturns500AndKeepsServing(t *testing.T) {
	srv := newTestServer(&scriptedLLM{})
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/chat", `{"message":"panic"}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("Expected status 500 after handler panic, got %d", resp.StatusCode)
	}

	resp = postJSON(t, srv.URL+"/chat", `{"message":"after the panic"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected later request to succeed, got %d", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["response"] != "echo: after the panic" {
		t.Errorf("Unexpected body: %v", body)
	}
}

func TestRouter_ConcurrentRequests(t *testing.T) {
	llm := &scriptedLLM{}
	srv := newTestServer(llm)
	defer srv.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Post(srv.URL+"/chat", "application/json", strings.NewReader(`{"message":"hi"}`))
			if err != nil {
				t.Errorf("POST: %v", err)
				return
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				t.Errorf("Expected 200, got %d", resp.StatusCode)
			}
		}()
	}
	wg.Wait()

	if n := llm.Calls(); n != 8 {
		t.Errorf("Expected one provider call per request, got %d", n)
	}
}

func TestRouter_Preflight(t *testing.T) {
	srv := newTestServer(&scriptedLLM{})
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/chat", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS: %v", err)
	}
	resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Allow-Origin = %q", got)
	}
	if got := resp.Header.Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Allow-Credentials = %q", got)
	}
}

func TestRouter_PreflightNonStandardMethods(t *testing.T) {
	srv := newTestServer(&scriptedLLM{})
	defer srv.Close()

	for _, method := range []string{"PROPFIND", http.MethodTrace, http.MethodConnect} {
		t.Run(method, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/chat", nil)
			req.Header.Set("Origin", "http://evil.example")
			req.Header.Set("Access-Control-Request-Method", method)

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("OPTIONS: %v", err)
			}
			resp.Body.Close()

			if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://evil.example" {
				t.Errorf("Allow-Origin = %q", got)
			}
			if got := resp.Header.Get("Access-Control-Allow-Methods"); got != method {
				t.Errorf("Allow-Methods = %q; want %q", got, method)
			}
		})
	}
}
