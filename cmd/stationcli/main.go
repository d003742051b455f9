// Package main provides the station CLI entry point for testing.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"

	"github.com/betaradio/nowplaying/internal/domain/onair"
	"github.com/betaradio/nowplaying/internal/domain/stats"
)

var (
	app    = kingpin.New("stationcli", "Radio Beta now-playing client for testing")
	server = app.Flag("server", "Server address").Default("http://localhost:8000").String()

	// current command
	currentCmd = app.Command("current", "Print what is on air right now")

	// listeners command
	listenersCmd   = app.Command("listeners", "Subscribe to listener-count samples")
	listenersCount = listenersCmd.Flag("count", "Number of samples to read (0 = until interrupted)").Default("0").Int()

	// health command
	healthCmd = app.Command("health", "Check server health")
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	// Parse command
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	ctx := context.Background()

	// Execute command
	switch command {
	case currentCmd.FullCommand():
		current(ctx)
	case listenersCmd.FullCommand():
		subscribeListeners(ctx, *listenersCount)
	case healthCmd.FullCommand():
		health(ctx)
	}
}

func current(ctx context.Context) {
	body, err := httpGet(ctx, *server+"/now-playing")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Both variants are served with status 200; the is_playing key marks
	// the silence shape.
	var shape struct {
		IsPlaying *bool `json:"is_playing"`
	}
	if err := json.Unmarshal(body, &shape); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if shape.IsPlaying != nil {
		var silence onair.Silence
		if err := json.Unmarshal(body, &silence); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("⏸  %s\n", silence.Message)
		fmt.Printf("   Radio: %s\n", silence.Radio)
		return
	}

	var song onair.Song
	if err := json.Unmarshal(body, &song); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("▶️  %s - %s\n", song.Interpreters, song.Title)
	fmt.Printf("   Radio: %s\n", song.Radio)
	fmt.Printf("   Started at: %s\n", song.StartTime)
}

func subscribeListeners(ctx context.Context, count int) {
	wsURL := strings.Replace(*server, "http", "ws", 1) + "/listeners"

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	fmt.Println("Subscribed to listener counts. Press Ctrl+C to exit.")

	// Handle shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nUnsubscribing...")
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		os.Exit(0)
	}()

	// Receive samples
	for received := 0; count == 0 || received < count; received++ {
		var sample stats.ListenerStats
		if err := conn.ReadJSON(&sample); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				fmt.Println("Stream closed by server.")
				return
			}
			fmt.Printf("Stream error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("[%s] 🎧 %d listeners\n", sample.Timestamp.Format("15:04:05"), sample.Listeners)
	}
}

func health(ctx context.Context) {
	body, err := httpGet(ctx, *server+"/healthz")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	var status struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}
	if err := json.Unmarshal(body, &status); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ %s: %s\n", status.Service, status.Status)
}

func httpGet(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}
