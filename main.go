package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yourorg/qoz-dashboard/catalog"
	"github.com/yourorg/qoz-dashboard/internal/env"
	"github.com/yourorg/qoz-dashboard/internal/redisx"
	"github.com/yourorg/qoz-dashboard/internal/session"
	"github.com/yourorg/qoz-dashboard/internal/store"
)

func main() {
	_ = godotenv.Load()

	port := env.GetInt("PORT", 4002)
	sessionTTL := env.GetDuration("SESSION_TTL", session.DefaultTTL)
	ratePerMin := env.GetInt("RATE_LIMIT_PER_MIN", 100)

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog(rootCtx, os.Getenv("PG_DSN"))
	if err != nil {
		log.Fatalf("catalog load error: %v", err)
	}

	sessions, closeSessions, err := openSessions(rootCtx, sessionTTL)
	if err != nil {
		log.Fatalf("session store error: %v", err)
	}
	defer closeSessions()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           BuildRouter(RouterDeps{Catalog: cat, Sessions: sessions, RatePerMinute: ratePerMin}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-rootCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("qoz-dashboard listening on :%d (%d properties)", port, cat.Len())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// loadCatalog reads the property set once. Without a DSN the built-in mock
// listings are served.
func loadCatalog(ctx context.Context, dsn string) (*catalog.Catalog, error) {
	if dsn == "" {
		log.Printf("[INFO] PG_DSN not set; serving built-in catalog")
		return catalog.New(catalog.MockProperties()), nil
	}
	st, err := store.Open(dsn)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := st.Ping(ctx); err != nil {
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	props, err := st.LoadProperties(ctx)
	if err != nil {
		return nil, err
	}
	if len(props) == 0 {
		log.Printf("[WARN] qoz_properties is empty; run cmd/hydrator to seed it")
	}
	return catalog.New(props), nil
}

func openSessions(ctx context.Context, ttl time.Duration) (session.Store, func(), error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Printf("[INFO] REDIS_ADDR not set; sessions kept in memory")
		return session.NewMemoryStore(ttl), func() {}, nil
	}
	rc := redisx.New(addr, os.Getenv("REDIS_PASSWORD"), env.GetInt("REDIS_DB", 0))
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rc.Ping(pingCtx); err != nil {
		_ = rc.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}
	log.Printf("[INFO] sessions stored in redis at %s", addr)
	return session.NewRedisStore(rc, ttl), func() { _ = rc.Close() }, nil
}
