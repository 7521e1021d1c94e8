package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yourorg/qoz-dashboard/catalog"
	"github.com/yourorg/qoz-dashboard/internal/env"
	"github.com/yourorg/qoz-dashboard/internal/hydrator"
	"github.com/yourorg/qoz-dashboard/internal/store"
)

func main() {
	_ = godotenv.Load()

	dsn := env.Must("PG_DSN")
	timeout := env.GetDuration("HYDRATOR_TIMEOUT", 30*time.Second)
	migrate := env.GetBool("HYDRATOR_MIGRATE", true)

	st, err := store.Open(dsn)
	if err != nil {
		log.Fatalf("store open error: %v", err)
	}
	defer st.Close()

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(rootCtx, timeout)
	defer cancel()

	if err := st.Ping(ctx); err != nil {
		log.Fatalf("postgres ping error: %v", err)
	}
	if migrate {
		if err := st.Migrate(ctx); err != nil {
			log.Fatalf("postgres migrate error: %v", err)
		}
	} else {
		log.Printf("[INFO] HYDRATOR_MIGRATE off; assuming qoz_properties exists")
	}

	hyd := &hydrator.Hydrator{Store: st}
	if _, err := hyd.Seed(ctx, catalog.MockProperties()); err != nil {
		log.Fatalf("hydrator seed failed: %v", err)
	}
}
