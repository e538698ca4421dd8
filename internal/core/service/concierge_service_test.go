package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/richchoi/hotel-system/internal/core/domain"
	"github.com/richchoi/hotel-system/internal/infrastructure/memory"
)

type stubGenerationClient struct {
	calls      int
	lastPrompt string
	reply      string
	err        error
}

func (s *stubGenerationClient) GenerateContent(_ context.Context, systemPrompt, _ string) (string, error) {
	s.calls++
	s.lastPrompt = systemPrompt
	return s.reply, s.err
}

type stubReplyCache struct {
	entries map[string]string
}

func (s *stubReplyCache) Get(_ context.Context, message string) (string, bool) {
	reply, ok := s.entries[message]
	return reply, ok
}

func (s *stubReplyCache) Set(_ context.Context, message, reply string) {
	s.entries[message] = reply
}

func newConcierge(client GenerationClient, cache ReplyCache) *ConciergeService {
	rooms := memory.NewRoomRepository([]domain.Room{
		{
			ID:          "2",
			Name:        domain.LocalizedText{EN: "Ocean View Deluxe"},
			Description: domain.LocalizedText{EN: "Wake up to the sound of waves."},
			Price:       1200,
			Available:   true,
		},
	})
	services := memory.NewServiceRepository([]domain.Service{
		{ID: "s1", Name: domain.LocalizedText{EN: "Golden Lotus Spa"}, Type: domain.ServiceSpa, Price: 200},
	})
	return NewConciergeService(client, rooms, services, cache, zerolog.Nop())
}

func TestReplyDeliversGeneratedText(t *testing.T) {
	client := &stubGenerationClient{reply: "Welcome to RICHCHOI."}
	svc := newConcierge(client, nil)

	got := svc.Reply(context.Background(), "Tell me about your rooms")
	if got != "Welcome to RICHCHOI." {
		t.Errorf("reply = %q", got)
	}
	if client.calls != 1 {
		t.Errorf("client called %d times, want 1", client.calls)
	}
}

func TestReplySystemPromptEmbedsInventory(t *testing.T) {
	client := &stubGenerationClient{reply: "Certainly."}
	svc := newConcierge(client, nil)

	svc.Reply(context.Background(), "What do you offer?")

	for _, want := range []string{
		"AI Concierge of RICHCHOI",
		"Ocean View Deluxe ($1200) - Wake up to the sound of waves.",
		"Golden Lotus Spa (SPA)",
		"Strictly answer questions related to the hotel.",
	} {
		if !strings.Contains(client.lastPrompt, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestReplyFallbacks(t *testing.T) {
	tests := []struct {
		name   string
		client *stubGenerationClient
		want   string
	}{
		{"no credential", &stubGenerationClient{err: ErrNoCredential}, ApologyOffline},
		{"backend failure", &stubGenerationClient{err: errors.New("503")}, ApologyBusy},
		{"blank reply", &stubGenerationClient{reply: "   "}, ApologyUnclear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newConcierge(tt.client, nil)
			if got := svc.Reply(context.Background(), "Hello"); got != tt.want {
				t.Errorf("reply = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReplyUsesCache(t *testing.T) {
	client := &stubGenerationClient{reply: "Our spa opens at nine."}
	cache := &stubReplyCache{entries: make(map[string]string)}
	svc := newConcierge(client, cache)
	ctx := context.Background()

	first := svc.Reply(ctx, "When does the spa open?")
	second := svc.Reply(ctx, "When does the spa open?")

	if first != second {
		t.Errorf("cached reply diverged: %q vs %q", first, second)
	}
	if client.calls != 1 {
		t.Errorf("client called %d times, want 1 (second hit served from cache)", client.calls)
	}
}

func TestReplyFallbacksAreNotCached(t *testing.T) {
	client := &stubGenerationClient{err: errors.New("503")}
	cache := &stubReplyCache{entries: make(map[string]string)}
	svc := newConcierge(client, cache)
	ctx := context.Background()

	svc.Reply(ctx, "Hello")
	svc.Reply(ctx, "Hello")

	if client.calls != 2 {
		t.Errorf("client called %d times, want 2 (failures must not be cached)", client.calls)
	}
	if len(cache.entries) != 0 {
		t.Errorf("cache holds %d entries, want 0", len(cache.entries))
	}
}
