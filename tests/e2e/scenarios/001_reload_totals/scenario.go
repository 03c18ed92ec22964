package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data and must match expected results.
const (
	sessionsPerFile = 50
	fileCount       = 3
	sessionMs       = 90_000 // each session lasts 90 seconds
)

// ### End - fixed configs

type overviewResponse struct {
	TotalSeconds int64 `json:"totalSeconds"`
	TodaySeconds int64 `json:"todaySeconds"`
	Loaded       bool  `json:"loaded"`
}

// main runs the e2e scenario: 001_reload_totals
//
// The scenario writes synthetic reader logs into the server's log directory, asks for a reload and
// waits until the overview reports the new reading time.
//
// What it tests:
//   - Reader activity lines are parsed from every period file
//   - POST /stats/reload rotates period files into the archive and rebuilds the session
//   - Noise lines and non-reader records are ignored
//
// Expected results:
//   - totalSeconds grows by fileCount * sessionsPerFile * 90 seconds
//   - todaySeconds grows by the same amount, since every session ends a minute before the run
//
// The server must be started with logs.dir pointing at logDir.
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080"
	logDir := ".tmp/log"
	prefix := "metrics_reader_"
	pollTimeout := 15 * time.Second

	before, err := fetchOverview(baseURL)
	if err != nil {
		fail("fetch overview before: %v", err)
	}

	fmt.Println("Starting e2e scenario: 001_reload_totals")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("LOG_DIR: %s\n", logDir)
	fmt.Printf("TOTAL_SECONDS_BEFORE: %d\n", before.TotalSeconds)
	fmt.Println()

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fail("create log dir: %v", err)
	}

	endTime := time.Now().Add(-time.Minute).Unix()
	for i := 0; i < fileCount; i++ {
		name := filepath.Join(logDir, fmt.Sprintf("%se2e_%d_%02d", prefix, endTime, i))
		if err := os.WriteFile(name, []byte(buildLog(endTime)), 0o644); err != nil {
			fail("write %s: %v", name, err)
		}
		fmt.Printf("Wrote %s\n", name)
	}

	resp, err := http.Post(baseURL+"/stats/reload", "application/json", nil)
	if err != nil {
		fail("reload: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		fail("reload: want status 202, got %d", resp.StatusCode)
	}

	wantAdded := int64(fileCount * sessionsPerFile * sessionMs / 1000)
	deadline := time.Now().Add(pollTimeout)
	for {
		after, err := fetchOverview(baseURL)
		if err != nil {
			fail("fetch overview after: %v", err)
		}
		if after.TotalSeconds-before.TotalSeconds == wantAdded && after.TodaySeconds-before.TodaySeconds == wantAdded {
			fmt.Printf("TOTAL_SECONDS_AFTER: %d\n", after.TotalSeconds)
			fmt.Println("PASS")
			return
		}
		if time.Now().After(deadline) {
			fail("want +%d seconds, got total +%d today +%d", wantAdded,
				after.TotalSeconds-before.TotalSeconds, after.TodaySeconds-before.TodaySeconds)
		}
		time.Sleep(500 * time.Millisecond)
	}
}

func buildLog(endTime int64) string {
	var b strings.Builder
	for i := 0; i < sessionsPerFile; i++ {
		fmt.Fprintf(&b, "%d,%d,x,x,x,com.lab126.booklet.reader.activeDuration,%d\n", endTime-3600, endTime, sessionMs)
		b.WriteString("garbage line without fields\n")
		fmt.Fprintf(&b, "%d,%d,x,x,x,com.lab126.appmgrd.start,%d\n", endTime-60, endTime, sessionMs)
	}
	return b.String()
}

func fetchOverview(baseURL string) (*overviewResponse, error) {
	resp, err := http.Get(baseURL + "/stats/overview")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	var out overviewResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}
