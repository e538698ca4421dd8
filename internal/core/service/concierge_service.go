package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/richchoi/hotel-system/internal/core/domain"
	"github.com/richchoi/hotel-system/internal/core/ports"
)

// ErrNoCredential is returned by a GenerationClient when no API key is
// configured. The concierge maps it to the offline apology.
var ErrNoCredential = errors.New("generation api credential missing")

// GenerationClient abstracts the hosted text-generation endpoint.
type GenerationClient interface {
	GenerateContent(ctx context.Context, systemPrompt, message string) (string, error)
}

// ReplyCache abstracts the optional transient reply cache (Redis).
type ReplyCache interface {
	Get(ctx context.Context, message string) (string, bool)
	Set(ctx context.Context, message, reply string)
}

// Fixed in-character fallbacks, verbatim from the front desk script.
// Exported so the transport layer can classify outcomes without string
// duplication.
const (
	ApologyOffline = "I apologize, but my connection to the central server is currently offline. Please contact the front desk."
	ApologyBusy    = "I am currently experiencing a high volume of requests. Please try again in a moment."
	ApologyUnclear = "I apologize, I didn't quite catch that. Could you rephrase?"
)

// ConciergeService relays guest messages to the generation backend with a
// system prompt embedding a flattened snapshot of the current inventory.
// Single attempt per message, no retry; every failure degrades to a fixed
// apology and is never surfaced as an error.
type ConciergeService struct {
	client   GenerationClient
	rooms    ports.RoomRepository
	services ports.ServiceRepository
	cache    ReplyCache // optional, may be nil
	logger   zerolog.Logger
}

func NewConciergeService(
	client GenerationClient,
	rooms ports.RoomRepository,
	services ports.ServiceRepository,
	cache ReplyCache,
	logger zerolog.Logger,
) *ConciergeService {
	return &ConciergeService{client: client, rooms: rooms, services: services, cache: cache, logger: logger}
}

func (s *ConciergeService) Reply(ctx context.Context, message string) string {
	if s.cache != nil {
		if reply, ok := s.cache.Get(ctx, message); ok {
			s.logger.Debug().Msg("concierge reply served from cache")
			return reply
		}
	}

	start := time.Now()
	reply, err := s.client.GenerateContent(ctx, s.systemPrompt(ctx), message)
	switch {
	case errors.Is(err, ErrNoCredential):
		s.logger.Warn().Msg("concierge offline: no api credential configured")
		return ApologyOffline
	case err != nil:
		s.logger.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("concierge relay failed")
		return ApologyBusy
	case strings.TrimSpace(reply) == "":
		return ApologyUnclear
	}

	s.logger.Info().Dur("elapsed", time.Since(start)).Msg("concierge reply delivered")
	if s.cache != nil {
		s.cache.Set(ctx, message, reply)
	}
	return reply
}

// systemPrompt flattens the current room and service collections into the
// concierge instruction. English text is the AI context foundation.
func (s *ConciergeService) systemPrompt(ctx context.Context) string {
	var rooms []domain.Room
	var services []domain.Service
	if rs, err := s.rooms.List(ctx); err == nil {
		rooms = rs
	}
	if svcs, err := s.services.List(ctx); err == nil {
		services = svcs
	}

	var roomLines, serviceLines []string
	for _, r := range rooms {
		roomLines = append(roomLines, fmt.Sprintf("%s ($%g) - %s", r.Name.EN, r.Price, r.Description.EN))
	}
	for _, svc := range services {
		serviceLines = append(serviceLines, fmt.Sprintf("%s (%s)", svc.Name.EN, svc.Type))
	}

	return fmt.Sprintf(`You are the sophisticated and polite AI Concierge of RICHCHOI, a 5-star luxury hotel.

Your Role:
1. Assist guests with booking inquiries, explaining room features, and suggesting services.
2. Collect guest preferences.
3. Maintain a formal, elegant, and welcoming tone.
4. If asked about prices, quote the data provided.

Hotel Data:
Rooms Available:
%s

Services Available:
%s

Strictly answer questions related to the hotel.`,
		strings.Join(roomLines, "\n"),
		strings.Join(serviceLines, "\n"))
}
