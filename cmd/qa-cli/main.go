package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"qa-platform/internal/userclient"
)

func main() {
	server := flag.String("server", "http://127.0.0.1:3000", "question service base URL")
	data := flag.String("data", "", "query a local mirror of this source document (file path or URL) instead of the service")
	timeout := flag.Duration("timeout", 5*time.Second, "HTTP timeout")
	page := flag.Int("page", 20, "maximum questions printed per listing")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := userclient.Run(ctx, os.Stdin, os.Stdout, userclient.Config{
		ServerURL:   *server,
		DataURL:     *data,
		PageSize:    *page,
		HTTPTimeout: *timeout,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
