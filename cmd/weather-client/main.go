package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/i474232898/weather-search-history/internal/config"
	"github.com/i474232898/weather-search-history/internal/history"
	"github.com/i474232898/weather-search-history/internal/search"
	"github.com/i474232898/weather-search-history/internal/ui"
	"github.com/i474232898/weather-search-history/internal/weather"
	"github.com/i474232898/weather-search-history/internal/weather/providers"
)

// apiKey may be baked in at build time:
//
//	go build -ldflags "-X main.apiKey=<key>" ./cmd/weather-client
var apiKey string

const (
	cmdHistory = "/historial"
	cmdServer  = "/servidor"
	cmdQuit    = "/salir"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: weather-client [city]")
		fmt.Fprintln(os.Stderr, "Without a city an interactive form is started.")
		fmt.Fprintf(os.Stderr, "Form commands: %s, %s, %s\n", cmdHistory, cmdServer, cmdQuit)
	}
	flag.Parse()

	cfg, err := config.LoadClient(apiKey)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	provider := providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey, cfg.ProviderURL)
	lookup := weather.NewService(provider)

	historyClient := history.NewClient(httpClient, cfg.HistoryURL)
	forwarder := history.NewForwarder(historyClient, cfg.HTTPTimeout)
	// Give detached saves a chance to finish before the process exits.
	defer forwarder.Wait()

	form := ui.NewForm(lookup, forwarder)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if city := strings.Join(flag.Args(), " "); city != "" {
		_ = form.Submit(ctx, city)
		ui.Render(os.Stdout, form.View())
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		runForm(ctx, os.Stdin, os.Stdout, form, historyClient)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// historyLister fetches the server-side history.
type historyLister interface {
	List(ctx context.Context) ([]search.Record, error)
}

func runForm(ctx context.Context, in io.Reader, out io.Writer, form *ui.Form, remote historyLister) {
	fmt.Fprintln(out, "App Clima")
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "Ciudad: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}
		line := scanner.Text()

		switch strings.TrimSpace(line) {
		case cmdQuit:
			return
		case cmdHistory:
			ui.RenderHistory(out, "Historial de la sesión", form.View().History)
			continue
		case cmdServer:
			recs, err := remote.List(ctx)
			if err != nil {
				fmt.Fprintf(out, "No se pudo obtener el historial: %v\n", err)
				continue
			}
			ui.RenderHistory(out, "Historial del servidor", recs)
			continue
		}

		fmt.Fprintln(out, ui.LoadingText)
		if err := form.Submit(ctx, line); errors.Is(err, context.Canceled) {
			return
		}
		ui.Render(out, form.View())
	}
}
