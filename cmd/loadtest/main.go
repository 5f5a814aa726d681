package main

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

// Load test for the feedback form: 50 submissions per second for 30 seconds,
// each with a faked email and message. Run against a local web process.
func main() {
	gofakeit.Seed(time.Now().UnixNano())

	rate := vegeta.Rate{Freq: 50, Per: time.Second}
	duration := 30 * time.Second

	attacker := vegeta.NewAttacker()

	var metrics vegeta.Metrics
	for res := range attacker.Attack(createTargeter(), rate, duration, "feedback-form") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Printf("99th percentile: %s\n", metrics.Latencies.P99)
	fmt.Printf("95th percentile: %s\n", metrics.Latencies.P95)
	fmt.Printf("Mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Max: %s\n", metrics.Latencies.Max)
	fmt.Printf("Requests per second: %.2f\n", metrics.Rate)
	fmt.Printf("Success ratio: %.2f%%\n", metrics.Success*100)
	fmt.Printf("Status codes: %v\n", metrics.StatusCodes)
	fmt.Printf("Total requests: %d\n", metrics.Requests)

	fmt.Println("\n=== Detailed report ===")
	reporter := vegeta.NewTextReporter(&metrics)
	reporter.Report(os.Stdout)
}

// createTargeter generates a fresh feedback submission per request.
func createTargeter() vegeta.Targeter {
	return func(tgt *vegeta.Target) error {
		form := url.Values{}
		form.Set("email", gofakeit.Email())
		form.Set("message", gofakeit.Sentence(12))

		tgt.Method = "POST"
		tgt.URL = "http://localhost:8080/feedback"
		tgt.Body = []byte(form.Encode())
		tgt.Header = http.Header{
			"Content-Type": {"application/x-www-form-urlencoded"},
		}

		return nil
	}
}
