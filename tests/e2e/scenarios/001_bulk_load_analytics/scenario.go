package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"access-analytics/internal/models"

	"github.com/sourcegraph/conc/pool"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalEntries   = 64000 // well-formed lines spread over all uploads
	malformedEvery = 1000  // one grammar mismatch after every N well-formed lines

	bruteForceIP    = "203.0.113.66"
	bruteForceHits  = 8 // 401s, above the brute_force threshold of 5
	scanningIP      = "198.51.100.23"
	scanningHits    = 12 // 404s, above the scanning threshold of 10
	statusesPerIP   = 4
	distinctClients = 16
)

var (
	paths      = []string{"/", "/about", "/careers", "/contact"}
	statuses   = []int{200, 200, 304, 500}
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
		"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
		"curl/7.88.1",
	}
)

// ### End - fixed configs

// main runs the e2e scenario: 001_bulk_load_analytics
//
// It uploads a generated access log through POST /logs in several parts, some of them
// concurrently, and checks the analytics endpoints against the known content.
//
// What it tests:
//   - Bulk-load via POST /logs with the x-log-source header
//   - A second upload while one is running is rejected with 409 and succeeds on retry
//   - Malformed lines are counted in the report and never committed
//   - Visitor totals, status code totals and security alerts over the loaded data
//
// The store may already hold entries from earlier runs, so totals are checked as the
// difference between the summaries taken before and after the uploads.
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the access analytics API server
	uploads := 8                       // Number of POST /logs requests the log is split into
	parallel := 2                      // Number of uploads attempted at the same time
	dateUTC := "28/Dec/2025"           // Date used in generated CLF timestamps

	if totalEntries%uploads != 0 {
		fmt.Fprintf(os.Stderr, "ERROR: TOTAL_ENTRIES (%d) must be divisible by UPLOADS (%d)\n", totalEntries, uploads)
		os.Exit(1)
	}

	fmt.Println("Starting e2e scenario: 001_bulk_load_analytics")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("UPLOADS: %d\n", uploads)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("TOTAL_ENTRIES: %d\n", totalEntries)
	fmt.Println()

	client := &http.Client{Timeout: 5 * time.Minute}

	var visitorsBefore models.VisitorSummary
	var statusBefore models.StatusCodeSummary
	mustGetJSON(client, baseURL+"/analytics/visitors", &visitorsBefore)
	mustGetJSON(client, baseURL+"/analytics/status-codes", &statusBefore)

	parts := generateParts(uploads, dateUTC)

	var committed, malformed, conflicts atomic.Int64
	p := pool.New().WithErrors().WithMaxGoroutines(parallel)
	for i, part := range parts {
		source := fmt.Sprintf("e2e-part-%02d.log", i+1)
		p.Go(func() error {
			report, retries, err := uploadWithRetry(client, baseURL, source, part)
			if err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
			committed.Add(report.Committed)
			malformed.Add(report.Unparsed.GrammarMismatch)
			conflicts.Add(int64(retries))
			fmt.Printf("%s committed %d entries in %d batches (run %s, %d conflicts)\n",
				source, report.Committed, report.BatchesCommitted, report.RunID, retries)
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: uploads failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()

	expectedCommitted := int64(totalEntries + bruteForceHits + scanningHits)
	expectedMalformed := int64(totalEntries / malformedEvery)

	var visitorsAfter models.VisitorSummary
	var statusAfter models.StatusCodeSummary
	var alerts models.SecurityAlertSet
	mustGetJSON(client, baseURL+"/analytics/visitors", &visitorsAfter)
	mustGetJSON(client, baseURL+"/analytics/status-codes", &statusAfter)
	mustGetJSON(client, baseURL+"/analytics/security-alerts", &alerts)

	var failures []string
	check := func(name string, got, want int64) {
		if got != want {
			failures = append(failures, fmt.Sprintf("%s: got %d, want %d", name, got, want))
		}
	}
	check("committed", committed.Load(), expectedCommitted)
	check("malformed", malformed.Load(), expectedMalformed)
	check("total visits delta", visitorsAfter.TotalVisits-visitorsBefore.TotalVisits, expectedCommitted)
	check("200 delta", statusAfter.IndividualCodes["200"]-statusBefore.IndividualCodes["200"], totalEntries/2)
	check("304 delta", statusAfter.IndividualCodes["304"]-statusBefore.IndividualCodes["304"], totalEntries/4)
	check("500 delta", statusAfter.IndividualCodes["500"]-statusBefore.IndividualCodes["500"], totalEntries/4)
	check("401 delta", statusAfter.IndividualCodes["401"]-statusBefore.IndividualCodes["401"], bruteForceHits)
	check("404 delta", statusAfter.IndividualCodes["404"]-statusBefore.IndividualCodes["404"], scanningHits)
	if !containsIP(alerts.BruteForceCandidates(), bruteForceIP) {
		failures = append(failures, fmt.Sprintf("brute_force candidates miss %s", bruteForceIP))
	}
	if !containsIP(alerts.ScanningCandidates(), scanningIP) {
		failures = append(failures, fmt.Sprintf("scanning candidates miss %s", scanningIP))
	}

	fmt.Println("=== Statistics ===")
	fmt.Printf("Committed entries: %d\n", committed.Load())
	fmt.Printf("Malformed lines: %d\n", malformed.Load())
	fmt.Printf("Conflicted uploads (retried): %d\n", conflicts.Load())
	fmt.Printf("Total visits: %d\n", visitorsAfter.TotalVisits)
	fmt.Printf("Unique visitors: %d\n", visitorsAfter.UniqueVisitors)
	fmt.Printf("Bot visits: %d\n", visitorsAfter.BotVisits)
	fmt.Println()

	if len(failures) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d checks failed:\n  %s\n", len(failures), strings.Join(failures, "\n  "))
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

// generateParts builds the access log and splits it into uploads parts. The suspicious
// traffic goes into the last part so it lands after the regular traffic.
func generateParts(uploads int, dateUTC string) [][]byte {
	perUpload := totalEntries / uploads
	parts := make([][]byte, 0, uploads)

	index := 0
	for u := 0; u < uploads; u++ {
		var buf bytes.Buffer
		for i := 0; i < perUpload; i++ {
			buf.WriteString(generateLine(index, dateUTC))
			buf.WriteByte('\n')
			index++
			if index%malformedEvery == 0 {
				buf.WriteString("this line is not an access log entry\n")
			}
		}
		if u == uploads-1 {
			for i := 0; i < bruteForceHits; i++ {
				fmt.Fprintf(&buf, `%s - - [%s:23:59:%02d +0000] "POST /login HTTP/1.1" 401 12 "-" "curl/7.88.1"`+"\n", bruteForceIP, dateUTC, i)
			}
			for i := 0; i < scanningHits; i++ {
				fmt.Fprintf(&buf, `%s - - [%s:23:59:%02d +0000] "GET /wp-admin/%d.php HTTP/1.1" 404 0 "-" "curl/7.88.1"`+"\n", scanningIP, dateUTC, i, i)
			}
		}
		parts = append(parts, buf.Bytes())
	}
	return parts
}

func generateLine(index int, dateUTC string) string {
	bucket := index % 64
	path := paths[bucket/16]
	ua := userAgents[(bucket/4)%4]
	status := statuses[bucket%statusesPerIP]
	ip := fmt.Sprintf("10.0.%d.%d", (index/64)%distinctClients, bucket%statusesPerIP+1)

	hour := (index / 3600) % 24
	minute := (index / 60) % 60
	second := index % 60
	return fmt.Sprintf(`%s - - [%s:%02d:%02d:%02d +0000] "GET %s HTTP/1.1" %d %d "-" "%s"`,
		ip, dateUTC, hour, minute, second, path, status, 512+bucket, ua)
}

// uploadWithRetry posts one part, retrying while another bulk-load holds the store.
func uploadWithRetry(client *http.Client, baseURL, source string, body []byte) (*models.IngestReport, int, error) {
	for retries := 0; ; retries++ {
		status, payload, err := upload(client, baseURL, source, body)
		if err != nil {
			return nil, retries, err
		}
		switch status {
		case http.StatusCreated:
			var report models.IngestReport
			if err := json.Unmarshal(payload, &report); err != nil {
				return nil, retries, fmt.Errorf("failed to decode report: %w", err)
			}
			return &report, retries, nil
		case http.StatusConflict:
			if retries >= 100 {
				return nil, retries, fmt.Errorf("still conflicting after %d retries", retries)
			}
			time.Sleep(200 * time.Millisecond)
		default:
			return nil, retries, fmt.Errorf("HTTP %d: %s", status, payload)
		}
	}
}

func upload(client *http.Client, baseURL, source string, body []byte) (int, []byte, error) {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/logs", bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("x-log-source", source)

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, payload, nil
}

func mustGetJSON(client *http.Client, url string, out any) {
	resp, err := client.Get(url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: GET %s: %v\n", url, err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "ERROR: GET %s: HTTP %d\n", url, resp.StatusCode)
		os.Exit(1)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: GET %s: failed to decode: %v\n", url, err)
		os.Exit(1)
	}
}

func containsIP(candidates []models.SuspiciousIP, ip string) bool {
	for _, candidate := range candidates {
		if candidate.IP == ip {
			return true
		}
	}
	return false
}
