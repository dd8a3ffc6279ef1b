// Command ormserve serves the response matrix analysis over HTTP.
//
// Usage:
//
//	ormserve [-addr :8001] [-origins http://localhost:3000] [-workers 4]
//
// The listen port falls back to $PORT when -addr is not given.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/cwbudde/algo-orm/internal/server"
	"github.com/cwbudde/algo-orm/measure/orm"
)

func main() {
	addr := flag.String("addr", "", "listen address (default :$PORT or :8001)")
	origins := flag.String("origins", "http://localhost:3000", "comma separated CORS origins")
	workers := flag.Int("workers", 4, "goroutines computing device spectra")
	verbose := flag.Bool("v", false, "log analysis details")
	flag.Parse()

	if *addr == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8001"
		}
		*addr = ":" + port
	}

	opts := []orm.Option{orm.WithWorkers(*workers)}
	if *verbose {
		opts = append(opts, orm.WithLogger(log.Default()))
	}

	srv := server.New(opts...)
	handler := middleware.Logger(srv.Router(strings.Split(*origins, ",")))

	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", *addr)
	if err := httpServer.ListenAndServe(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
