// Command loadtest drives concurrent deposits, withdrawals and transfers
// between the demo accounts and checks that money was conserved.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// scenario is one kind of request the workers pick from
type scenario struct {
	name   string
	kind   string // deposit, withdraw or transfer
	amount string
}

var scenarios = []scenario{
	{"Deposit Small", "deposit", "10.00"},
	{"Deposit Large", "deposit", "75.50"},
	{"Withdraw Small", "withdraw", "15.00"},
	{"Withdraw Large", "withdraw", "60.00"},
	{"Transfer Small", "transfer", "5.25"},
	{"Transfer Large", "transfer", "40.00"},
}

type session struct {
	email string
	token string
}

type result struct {
	scenario     scenario
	responseTime time.Duration
	statusCode   int
	err          error
}

// stats aggregates results. Accepted deposits and withdrawals are summed so
// the final balances can be checked against them.
type stats struct {
	mu             sync.Mutex
	total          int
	successful     int
	rateLimited    int
	responseTimes  []time.Duration
	errorCounts    map[string]int
	scenarioCounts map[string]int
	depositedTotal decimal.Decimal
	withdrawnTotal decimal.Decimal
	elapsed        time.Duration
}

type options struct {
	baseURL     string
	emails      string
	password    string
	concurrency int
	requests    int
	delay       time.Duration
}

func main() {
	opts := options{}

	cmd := &cobra.Command{
		Use:          "loadtest",
		Short:        "Load test the wallet API and verify balance conservation",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.baseURL, "url", "http://localhost:8080", "base URL of the API")
	cmd.Flags().StringVar(&opts.emails, "users", "asha@payflow.dev,ravi@payflow.dev,meera@payflow.dev", "comma-separated demo account emails")
	cmd.Flags().StringVar(&opts.password, "password", "password123", "password shared by the accounts")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "c", 5, "number of concurrent workers")
	cmd.Flags().IntVarP(&opts.requests, "requests", "n", 100, "total number of requests")
	cmd.Flags().DurationVar(&opts.delay, "delay", 100*time.Millisecond, "delay between requests of one worker")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	client := &http.Client{Timeout: 10 * time.Second}

	var sessions []session
	for _, email := range strings.Split(opts.emails, ",") {
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}
		token, err := login(ctx, client, opts.baseURL, email, opts.password)
		if err != nil {
			return fmt.Errorf("login %s: %w", email, err)
		}
		sessions = append(sessions, session{email: email, token: token})
	}
	if len(sessions) < 2 {
		return errors.New("at least two accounts are needed for transfers")
	}

	before, err := totalBalance(ctx, client, opts.baseURL, sessions)
	if err != nil {
		return err
	}

	fmt.Printf("Load testing %d accounts with %d workers, %d requests\n", len(sessions), opts.concurrency, opts.requests)

	st := &stats{
		total:          opts.requests,
		responseTimes:  make([]time.Duration, 0, opts.requests),
		errorCounts:    make(map[string]int),
		scenarioCounts: make(map[string]int),
	}

	jobs := make(chan struct{}, opts.requests)
	for range opts.requests {
		jobs <- struct{}{}
	}
	close(jobs)

	start := time.Now()
	var wg sync.WaitGroup
	for range opts.concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				if opts.delay > 0 {
					time.Sleep(opts.delay)
				}
				st.record(execute(ctx, client, opts.baseURL, sessions))
			}
		}()
	}
	wg.Wait()
	st.elapsed = time.Since(start)

	after, err := totalBalance(ctx, client, opts.baseURL, sessions)
	if err != nil {
		return err
	}

	st.print()
	return checkConservation(before, after, st.depositedTotal, st.withdrawnTotal)
}

func execute(ctx context.Context, client *http.Client, baseURL string, sessions []session) result {
	sc := scenarios[rand.IntN(len(scenarios))]
	i := rand.IntN(len(sessions))
	caller := sessions[i]

	path := "/api/wallet/" + sc.kind
	body := map[string]string{"amount": sc.amount}
	switch sc.kind {
	case "transfer":
		recipient := sessions[(i+1+rand.IntN(len(sessions)-1))%len(sessions)]
		body["recipient"] = recipient.email
		body["description"] = "load test"
	default:
		body["bank"] = "LOADTEST BANK"
		body["accountHolderName"] = caller.email
	}

	started := time.Now()
	status, err := postJSON(ctx, client, baseURL+path, caller.token, body, nil)
	return result{scenario: sc, responseTime: time.Since(started), statusCode: status, err: err}
}

func (s *stats) record(r result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scenarioCounts[r.scenario.name]++
	s.responseTimes = append(s.responseTimes, r.responseTime)

	switch {
	case r.err != nil:
		s.errorCounts[r.err.Error()]++
	case r.statusCode == http.StatusTooManyRequests:
		s.rateLimited++
		s.errorCounts["rate limited"]++
	case r.statusCode/100 != 2:
		s.errorCounts[fmt.Sprintf("HTTP %d", r.statusCode)]++
	default:
		s.successful++
		amount := decimal.RequireFromString(r.scenario.amount)
		switch r.scenario.kind {
		case "deposit":
			s.depositedTotal = s.depositedTotal.Add(amount)
		case "withdraw":
			s.withdrawnTotal = s.withdrawnTotal.Add(amount)
		}
	}
}

func (s *stats) print() {
	sorted := slices.Clone(s.responseTimes)
	slices.Sort(sorted)
	percentile := func(p int) time.Duration {
		if len(sorted) == 0 {
			return 0
		}
		return sorted[min(len(sorted)*p/100, len(sorted)-1)]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", s.total)
	fmt.Printf("Successful Requests: %d\n", s.successful)
	fmt.Printf("Rate Limited:        %d\n", s.rateLimited)
	fmt.Printf("Total Test Time:     %.2f seconds\n", s.elapsed.Seconds())
	fmt.Printf("Throughput:          %.2f successful requests/s\n", float64(s.successful)/s.elapsed.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("P50: %v  P90: %v  P95: %v  P99: %v\n", percentile(50), percentile(90), percentile(95), percentile(99))

	fmt.Println("\n----------------- SCENARIOS -----------------")
	for _, sc := range scenarios {
		fmt.Printf("%-15s: %d\n", sc.name, s.scenarioCounts[sc.name])
	}

	if len(s.errorCounts) > 0 {
		fmt.Println("\n----------------- REJECTIONS -----------------")
		for msg, count := range s.errorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}

// checkConservation verifies that transfers moved money without creating or losing any
func checkConservation(before, after, deposited, withdrawn decimal.Decimal) error {
	expected := before.Add(deposited).Sub(withdrawn)

	fmt.Println("\n================= CONSERVATION =================")
	fmt.Printf("Balance before:   %s\n", before.StringFixed(2))
	fmt.Printf("Deposited:        %s\n", deposited.StringFixed(2))
	fmt.Printf("Withdrawn:        %s\n", withdrawn.StringFixed(2))
	fmt.Printf("Balance after:    %s (expected %s)\n", after.StringFixed(2), expected.StringFixed(2))

	if !after.Equal(expected) {
		return fmt.Errorf("balances drifted by %s", after.Sub(expected).StringFixed(2))
	}
	fmt.Println("OK")
	return nil
}

func login(ctx context.Context, client *http.Client, baseURL, email, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	status, err := postJSON(ctx, client, baseURL+"/api/login", "", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("HTTP %d", status)
	}
	return resp.Token, nil
}

func totalBalance(ctx context.Context, client *http.Client, baseURL string, sessions []session) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range sessions {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/wallet/balance", nil)
		if err != nil {
			return total, err
		}
		req.Header.Set("Authorization", "Bearer "+s.token)

		resp, err := client.Do(req)
		if err != nil {
			return total, err
		}

		var body struct {
			Balance decimal.Decimal `json:"balance"`
		}
		err = json.NewDecoder(resp.Body).Decode(&body)
		_ = resp.Body.Close()
		if err != nil {
			return total, fmt.Errorf("balance of %s: %w", s.email, err)
		}
		total = total.Add(body.Balance)
	}
	return total, nil
}

func postJSON(ctx context.Context, client *http.Client, url, token string, payload any, out any) (int, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if out != nil && resp.StatusCode/100 == 2 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}
