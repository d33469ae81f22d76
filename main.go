package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/backoffice-dms/allocations/internal/allocation"
	v1 "github.com/backoffice-dms/allocations/internal/controllers/v1"
	"github.com/backoffice-dms/allocations/internal/models"
	"github.com/backoffice-dms/allocations/internal/notification"
	"github.com/backoffice-dms/allocations/internal/router"
	"github.com/backoffice-dms/allocations/internal/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	baseURL, err := apiURL()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Create data directory
	dataDir := "data"
	if dir, ok := os.LookupEnv("DATA_DIR"); ok {
		dataDir = dir
	}

	err = os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database
	err = models.Connect(filepath.Join(dataDir, "allocations.db"))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	ttl, err := sessionTTL()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	v1.Sessions = sessions.NewStore(ttl)

	policy, err := remainderPolicy()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	v1.RemainderPolicy = policy

	v1.Notifier = notification.NewLog(log.Logger)

	r, teardown, err := router.Config(baseURL)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(r.Group("/"))

	port := "8080"
	if p, ok := os.LookupEnv("PORT"); ok {
		port = p
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go pruneSessions(ctx, v1.Sessions, ttl)

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msg(err.Error())
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	// Give running requests some time to finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Msgf("%T: %v", err, err.Error())
	}
}

// apiURL returns the external URL of the API from the API_URL
// environment variable.
func apiURL() (*url.URL, error) {
	value, ok := os.LookupEnv("API_URL")
	if !ok {
		return nil, errors.New("environment variable API_URL must be set")
	}

	u, err := url.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	return u, nil
}

// sessionTTL returns the duration after which unused allocation sessions expire.
func sessionTTL() (time.Duration, error) {
	value, ok := os.LookupEnv("SESSION_TTL")
	if !ok {
		return 30 * time.Minute, nil
	}

	ttl, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("environment variable SESSION_TTL must be a duration: %w", err)
	}

	return ttl, nil
}

func remainderPolicy() (allocation.RemainderPolicy, error) {
	value, ok := os.LookupEnv("REMAINDER_POLICY")
	if !ok {
		return allocation.RemainderAllowNegative, nil
	}

	return allocation.ParseRemainderPolicy(value)
}

// pruneSessions removes expired sessions until the context is done.
func pruneSessions(ctx context.Context, store *sessions.Store, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if pruned := store.Prune(now); pruned > 0 {
				log.Debug().Int("pruned", pruned).Msg("Sessions")
			}
		}
	}
}
