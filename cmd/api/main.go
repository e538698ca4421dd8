// Command api runs the RICHCHOI hotel backend: an in-memory demo service
// for the booking front end. All business state is seeded at startup and
// lost on exit.
//
// @title           RICHCHOI Hotel API
// @version         1.0
// @description     Mock booking, registry, and concierge backend for the RICHCHOI luxury hotel front end.
// @BasePath        /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/richchoi/hotel-system/internal/api"
	"github.com/richchoi/hotel-system/internal/core/service"
	"github.com/richchoi/hotel-system/internal/infrastructure/config"
	"github.com/richchoi/hotel-system/internal/infrastructure/gemini"
	"github.com/richchoi/hotel-system/internal/infrastructure/memory"
	redisadapter "github.com/richchoi/hotel-system/internal/infrastructure/redis"
	"github.com/richchoi/hotel-system/pkg/logger"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- In-memory stores, seeded with the demo collections ---
	userRepo := memory.NewUserRepository(memory.SeedUsers())
	roomRepo := memory.NewRoomRepository(memory.SeedRooms())
	serviceRepo := memory.NewServiceRepository(memory.SeedServices())
	partnerRepo := memory.NewPartnerRepository(memory.SeedPartners())
	bookingRepo := memory.NewBookingRepository()

	// --- Optional Redis reply cache ---
	var rdb *goredis.Client
	var replyCache service.ReplyCache
	if cfg.Redis.Addr != "" {
		rdb = goredis.NewClient(&goredis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		replyCache = redisadapter.NewReplyCache(rdb, cfg.Redis.ReplyTTL, log)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("concierge reply cache enabled")
	}

	// --- Core services ---
	registry := service.NewRegistryService(userRepo, log)
	inventory := service.NewInventoryService(roomRepo, log)
	bookings := service.NewBookingService(roomRepo, serviceRepo, bookingRepo, log)
	geminiClient := gemini.New(cfg.Gemini.Model, cfg.Gemini.APIKey, cfg.Gemini.Timeout, cfg.Gemini.RPS)
	concierge := service.NewConciergeService(geminiClient, roomRepo, serviceRepo, replyCache, log)

	e := api.NewRouter(api.Deps{
		Registry:  registry,
		Inventory: inventory,
		Bookings:  bookings,
		Concierge: concierge,
		Services:  serviceRepo,
		Partners:  partnerRepo,
		Redis:     rdb,
		Logger:    log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	log.Info().Msg("server stopped")
}
