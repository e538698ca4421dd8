package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/richchoi/hotel-system/internal/core/service"
)

type stubConcierge struct {
	reply string
}

func (s *stubConcierge) Reply(_ context.Context, _ string) string {
	return s.reply
}

func TestChatSend(t *testing.T) {
	e := newEcho()
	h := NewChatHandler(&stubConcierge{reply: "Our spa opens at nine."})

	c, rec := request(e, http.MethodPost, "/v1/chat", `{"message":"When does the spa open?"}`)
	if err := h.Send(c); err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp chatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Reply != "Our spa opens at nine." {
		t.Errorf("reply = %q", resp.Reply)
	}
}

func TestChatSendApologyStillOK(t *testing.T) {
	e := newEcho()
	h := NewChatHandler(&stubConcierge{reply: service.ApologyOffline})

	c, rec := request(e, http.MethodPost, "/v1/chat", `{"message":"Hello"}`)
	if err := h.Send(c); err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 even for fallback replies", rec.Code)
	}
}

func TestChatSendValidation(t *testing.T) {
	e := newEcho()
	h := NewChatHandler(&stubConcierge{reply: "unused"})

	c, _ := request(e, http.MethodPost, "/v1/chat", `{"message":""}`)
	if code := httpCode(t, h.Send(c)); code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", code)
	}
}

func TestOutcomeLabel(t *testing.T) {
	tests := []struct {
		reply string
		want  string
	}{
		{service.ApologyOffline, "offline"},
		{service.ApologyBusy, "busy"},
		{service.ApologyUnclear, "unclear"},
		{"Good evening.", "reply"},
	}
	for _, tt := range tests {
		if got := outcomeLabel(tt.reply); got != tt.want {
			t.Errorf("outcomeLabel(%q) = %q, want %q", tt.reply, got, tt.want)
		}
	}
}
