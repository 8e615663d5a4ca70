// Package metrics pushes console operational metrics to CloudWatch.
// File: metrics/metrics.go
package metrics

import (
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"

	"memberhub/logger"
)

// Namespace for all console metrics
var metricsNamespace = "MemberHubConsole"

var (
	mu      sync.Mutex
	enabled bool

	// Reuse a single CloudWatch client for all metrics calls. Created lazily
	// so test runs without AWS configuration never touch the SDK.
	cwClient *cloudwatch.CloudWatch
)

// Enable switches metric publishing on. Called from main when the
// environment opts in; disabled (the default) every publish is a no-op.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	if cwClient == nil {
		cwClient = cloudwatch.New(session.Must(session.NewSession()))
	}
	enabled = true
}

// Disable switches metric publishing off.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// PublishGatewayLatency pushes one upstream call's round-trip time (in ms).
func PublishGatewayLatency(method, url string, latencyMs float64) {
	putMetric("GatewayLatencyMs", latencyMs, "Milliseconds", method+" "+url)
}

// PublishGatewayFailure counts one failed upstream call.
func PublishGatewayFailure(method, url string) {
	putMetric("GatewayFailures", 1, "Count", method+" "+url)
}

// PublishActiveSessions pushes the current console session count.
func PublishActiveSessions(count int) {
	putMetric("ActiveSessions", float64(count), "Count", "console")
}

// -----------------------------------------------------------
// internal helper function to package up CloudWatch calls
// -----------------------------------------------------------
func putMetric(metricName string, value float64, unit string, operation string) {
	mu.Lock()
	client, on := cwClient, enabled
	mu.Unlock()
	if !on || client == nil {
		return
	}

	_, err := client.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace: aws.String(metricsNamespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Dimensions: []*cloudwatch.Dimension{
					{
						Name:  aws.String("Operation"),
						Value: aws.String(operation),
					},
				},
				Timestamp: aws.Time(time.Now()),
				Value:     aws.Float64(value),
				Unit:      aws.String(unit),
			},
		},
	})

	if err != nil {
		logger.Error.Printf("[putMetric] CloudWatch metric failed (%s): %v", metricName, err)
	}
}
