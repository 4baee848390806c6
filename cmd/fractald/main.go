// Command fractald serves fractal computations over a websocket on /ws.
//
// Usage:
//
//	fractald [-addr :8080] [-catalog file.yaml] [-cache-ttl 10m]
//	         [-origin host,...] [-redis host:port] [-token-key secret]
//
// With -redis, results are shared between instances through Redis.
// With -token-key, handshakes need an HS256 token (see -issue).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/fractalis/catalog"
	"github.com/katalvlaran/fractalis/fieldsvc"
)

const shutdownTimeout = 5 * time.Second

func main() {
	logger := l.NewConsoleLoggerWrapper()
	if err := run(os.Args[1:], logger); err != nil && !errors.Is(err, flag.ErrHelp) {
		logger.WithFields(l.ErrorField(err)).Fatal("fractald")
	}
}

func run(args []string, logger l.Wrapper) error {
	fs := flag.NewFlagSet("fractald", flag.ContinueOnError)
	addr := fs.String("addr", ":8080", "listen address")
	catPath := fs.String("catalog", "", "preset catalog YAML (default: built-in)")
	ttl := fs.Duration("cache-ttl", fieldsvc.DefaultCacheTTL, "result cache TTL")
	origins := fs.String("origin", "", "comma-separated allowed websocket origin patterns")
	redisAddr := fs.String("redis", "", "Redis address for the shared result store")
	tokenKey := fs.String("token-key", "", "HS256 key required on handshakes")
	issue := fs.String("issue", "", "print a 24h token for this subject and exit (needs -token-key)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *issue != "" {
		if *tokenKey == "" {
			return errors.New("-issue needs -token-key")
		}
		tok, err := fieldsvc.IssueToken([]byte(*tokenKey), *issue, 24*time.Hour)
		if err != nil {
			return err
		}
		fmt.Println(tok)
		return nil
	}

	cat, err := loadCatalog(*catPath)
	if err != nil {
		return err
	}

	opts := []fieldsvc.Option{fieldsvc.WithLogger(logger)}
	if *ttl > 0 {
		opts = append(opts, fieldsvc.WithCacheTTL(*ttl))
	}
	if *origins != "" {
		opts = append(opts, fieldsvc.WithOriginPatterns(strings.Split(*origins, ",")...))
	}
	if *tokenKey != "" {
		opts = append(opts, fieldsvc.WithTokenKey([]byte(*tokenKey)))
	}
	if *redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: *redisAddr})
		defer client.Close()
		opts = append(opts, fieldsvc.WithStore(fieldsvc.NewRedisStore(client, "fractalis:")))
	}
	svc, err := fieldsvc.New(cat, opts...)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", svc.Handler())
	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.WithFields(l.StringField("addr", *addr)).Info("listening on /ws")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cat, err := catalog.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cat, nil
}
