package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"
)

// UserPayload is the user create/update request body
type UserPayload struct {
	ID    uint64 `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ExpensePayload is the expense create request body
type ExpensePayload struct {
	Title    string `json:"title"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	UserID   uint64 `json:"userId"`
}

// UserResponse is the user API response
type UserResponse struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Scenario     string
	Err          error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	StatusCounts       map[int]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.TotalRequests++
	if result.Success {
		s.SuccessfulRequests++
	} else {
		s.FailedRequests++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.TotalResponseTime += result.ResponseTime
	if s.MinResponseTime == 0 || result.ResponseTime < s.MinResponseTime {
		s.MinResponseTime = result.ResponseTime
	}
	if result.ResponseTime > s.MaxResponseTime {
		s.MaxResponseTime = result.ResponseTime
	}

	s.StatusCounts[result.StatusCode]++
	s.ScenarioStats[result.Scenario]++
}

var categories = []string{"Food", "Housing", "Transport", "Entertainment", "Utilities"}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	users := flag.Int("users", 10, "Number of users to create")
	expensesPerUser := flag.Int("expenses", 20, "Expenses to create per user")
	workers := flag.Int("workers", 5, "Concurrent workers")
	delay := flag.Duration("delay", 10*time.Millisecond, "Delay between requests per worker")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}
	stats := &TestStats{
		StatusCounts:  make(map[int]int),
		ScenarioStats: make(map[string]int),
	}

	fmt.Printf("Creating %d users against %s\n", *users, *baseURL)

	runID := time.Now().UnixNano()
	userIDs := make([]uint64, 0, *users)
	for i := 0; i < *users; i++ {
		payload := UserPayload{
			Name:  fmt.Sprintf("Load Test User %d", i),
			Email: fmt.Sprintf("loadtest-%d-%d@example.com", runID, i),
		}
		var created UserResponse
		result := doJSON(client, http.MethodPost, *baseURL+"/users", payload, &created, "create_user")
		stats.record(result)
		if result.Success {
			userIDs = append(userIDs, created.ID)
		}
	}

	if len(userIDs) == 0 {
		fmt.Println("No users created; aborting")
		return
	}

	fmt.Printf("Creating %d expenses per user with %d workers\n", *expensesPerUser, *workers)

	jobs := make(chan uint64, len(userIDs)*(*expensesPerUser))
	for _, id := range userIDs {
		for i := 0; i < *expensesPerUser; i++ {
			jobs <- id
		}
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for userID := range jobs {
				payload := ExpensePayload{
					Title:    fmt.Sprintf("Expense %d", rand.Intn(100000)),
					Amount:   fmt.Sprintf("%d.%02d", rand.Intn(500)+1, rand.Intn(100)),
					Category: categories[rand.Intn(len(categories))],
					UserID:   userID,
				}
				result := doJSON(client, http.MethodPost, fmt.Sprintf("%s/users/%d/expenses", *baseURL, userID), payload, nil, "create_expense")
				stats.record(result)

				stats.record(doJSON(client, http.MethodGet, fmt.Sprintf("%s/users/%d/expenses", *baseURL, userID), nil, nil, "list_user_expenses"))

				time.Sleep(*delay)
			}
		}()
	}
	wg.Wait()

	stats.record(doJSON(client, http.MethodGet, *baseURL+"/expenses", nil, nil, "list_expenses"))

	// Cascade delete cleans everything the run created
	fmt.Println("Deleting load test users")
	for _, id := range userIDs {
		stats.record(doJSON(client, http.MethodDelete, fmt.Sprintf("%s/users/%d", *baseURL, id), nil, nil, "delete_user"))
	}

	printStats(stats)
}

func doJSON(client *http.Client, method, url string, payload, out interface{}, scenario string) TestResult {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return TestResult{Scenario: scenario, Err: err}
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return TestResult{Scenario: scenario, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return TestResult{Scenario: scenario, ResponseTime: elapsed, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	success := resp.StatusCode >= 200 && resp.StatusCode < 300
	if success && out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return TestResult{Scenario: scenario, ResponseTime: elapsed, StatusCode: resp.StatusCode, Err: err}
		}
	}

	return TestResult{Success: success, ResponseTime: elapsed, StatusCode: resp.StatusCode, Scenario: scenario}
}

func printStats(stats *TestStats) {
	fmt.Println()
	fmt.Println("=== Load Test Results ===")
	fmt.Printf("Total requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful:          %d\n", stats.SuccessfulRequests)
	fmt.Printf("Failed:              %d\n", stats.FailedRequests)

	if len(stats.ResponseTimes) > 0 {
		avg := stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
		fmt.Printf("Min response time:   %v\n", stats.MinResponseTime)
		fmt.Printf("Max response time:   %v\n", stats.MaxResponseTime)
		fmt.Printf("Avg response time:   %v\n", avg)

		sorted := make([]time.Duration, len(stats.ResponseTimes))
		copy(sorted, stats.ResponseTimes)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		fmt.Printf("P95 response time:   %v\n", sorted[len(sorted)*95/100])
	}

	fmt.Println("Status codes:")
	for code, count := range stats.StatusCounts {
		fmt.Printf("  %d: %d\n", code, count)
	}
	fmt.Println("Scenarios:")
	for name, count := range stats.ScenarioStats {
		fmt.Printf("  %s: %d\n", name, count)
	}
}
