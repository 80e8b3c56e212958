package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// flushRequest is the body of POST /api/v1/flush
type flushRequest struct {
	Managers []string `json:"managers"`
}

// flushResponse is the part of the flush response the test reads
type flushResponse struct {
	FlushID string `json:"flushId"`
	Status  string `json:"status"`
}

// TestResult contains metrics for one stage-and-flush round
type TestResult struct {
	Status       string
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRounds     int
	Completed       int
	TotalTime       time.Duration
	MinResponseTime time.Duration
	MaxResponseTime time.Duration
	ResponseTimes   []time.Duration
	OutcomeCounts   map[string]int
	ErrorCounts     map[string]int
	Lock            sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRounds := flag.Int("n", 100, "Total number of stage-and-flush rounds")
	managersStr := flag.String("m", "orders,billing", "Comma-separated entity managers flushed together")
	writes := flag.Int("w", 3, "Records staged per manager before each flush")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between rounds in milliseconds")
	flag.Parse()

	var managers []string
	for _, name := range strings.Split(*managersStr, ",") {
		if name = strings.TrimSpace(name); name != "" {
			managers = append(managers, name)
		}
	}
	if len(managers) == 0 {
		fmt.Println("At least one entity manager is required")
		return
	}

	fmt.Printf("Load testing atomic flushes across managers: %v\n", managers)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total rounds: %d (%d writes per manager)\n", *totalRounds, *writes)
	fmt.Printf("Delay between rounds: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRounds:     *totalRounds,
		MinResponseTime: time.Hour,
		ResponseTimes:   make([]time.Duration, 0, *totalRounds),
		OutcomeCounts:   make(map[string]int),
		ErrorCounts:     make(map[string]int),
	}

	results := make(chan TestResult, *totalRounds)
	jobs := make(chan int, *totalRounds)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *delayMs, *writes, managers, jobs, results)
		}()
	}

	for i := 0; i < *totalRounds; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			if stats.Completed > 0 {
				fmt.Printf("Progress: %d/%d rounds completed (%.1f%%)\n",
					stats.Completed, stats.TotalRounds, float64(stats.Completed)/float64(stats.TotalRounds)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.Completed++
	if result.Error != nil {
		s.ErrorCounts[result.Error.Error()]++
	} else {
		s.OutcomeCounts[result.Status]++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	if result.ResponseTime < s.MinResponseTime {
		s.MinResponseTime = result.ResponseTime
	}
	if result.ResponseTime > s.MaxResponseTime {
		s.MaxResponseTime = result.ResponseTime
	}
}

func worker(baseURL string, delayMs, writes int, managers []string, jobs <-chan int, results chan<- TestResult) {
	client := &http.Client{Timeout: 10 * time.Second}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		if err := stageWrites(client, baseURL, managers, writes); err != nil {
			results <- TestResult{Error: err}
			continue
		}

		results <- flush(client, baseURL, managers)
	}
}

// stageWrites stages writes records on every manager
func stageWrites(client *http.Client, baseURL string, managers []string, writes int) error {
	for _, manager := range managers {
		for i := 0; i < writes; i++ {
			body, err := json.Marshal(map[string]any{
				"payload": map[string]any{"amount": rand.IntN(10000), "source": "load-test"},
			})
			if err != nil {
				return err
			}

			url := fmt.Sprintf("%s/api/v1/managers/%s/records/%s", baseURL, manager, uuid.NewString())
			req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(body))
			if err != nil {
				return err
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := client.Do(req)
			if err != nil {
				return err
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusAccepted {
				return fmt.Errorf("stage: HTTP status code %d", resp.StatusCode)
			}
		}
	}
	return nil
}

// flush flushes managers atomically and measures the call
func flush(client *http.Client, baseURL string, managers []string) TestResult {
	body, err := json.Marshal(flushRequest{Managers: managers})
	if err != nil {
		return TestResult{Error: err}
	}

	startTime := time.Now()
	resp, err := client.Post(baseURL+"/api/v1/flush", "application/json", bytes.NewReader(body))
	result := TestResult{ResponseTime: time.Since(startTime)}
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	var flushResp flushResponse
	if err := json.NewDecoder(resp.Body).Decode(&flushResp); err != nil || flushResp.Status == "" {
		result.Error = fmt.Errorf("flush: HTTP status code %d", resp.StatusCode)
		return result
	}
	result.Status = flushResp.Status
	return result
}

func printResults(stats *TestStats) {
	tps := float64(stats.Completed) / stats.TotalTime.Seconds()

	var avg, p50, p90, p99 time.Duration
	if n := len(stats.ResponseTimes); n > 0 {
		sorted := make([]time.Duration, n)
		copy(sorted, stats.ResponseTimes)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		var total time.Duration
		for _, d := range sorted {
			total += d
		}
		avg = total / time.Duration(n)
		p50 = sorted[n*50/100]
		p90 = sorted[n*90/100]
		p99 = sorted[n*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Rounds:        %d\n", stats.TotalRounds)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Flushes per second:  %.2f\n", tps)

	fmt.Println("\n----------------- FLUSH LATENCY -----------------")
	fmt.Printf("Average:             %v\n", avg)
	fmt.Printf("Minimum:             %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum:             %v\n", stats.MaxResponseTime)
	fmt.Printf("P50:                 %v\n", p50)
	fmt.Printf("P90:                 %v\n", p90)
	fmt.Printf("P99:                 %v\n", p99)

	fmt.Println("\n----------------- OUTCOMES -----------------")
	for status, count := range stats.OutcomeCounts {
		fmt.Printf("%-16s: %d (%.1f%%)\n", status, count, float64(count)/float64(stats.TotalRounds)*100)
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count, float64(count)/float64(stats.TotalRounds)*100)
		}
	}

	if failed := stats.OutcomeCounts["rollback_failed"]; failed > 0 {
		fmt.Printf("\nWARNING: %d flushes left managers in an indeterminate state\n", failed)
	}
	fmt.Println("================================================")
}
