package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Flow label values
const (
	flowCardApprove = "card-approve"
	flowCardVault   = "card-vault"
	flowPayPalWeb   = "paypal-web-checkout"
)

// Outcome label values
const (
	outcomeSucceeded = "succeeded"
	outcomeFailed    = "failed"
	outcomeCanceled  = "canceled"
)

var flowsStarted = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "payments_sdk_flows_started_total",
		Help: "Number of payment flows started, by flow type.",
	},
	[]string{"flow"},
)

var flowsCompleted = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "payments_sdk_flows_completed_total",
		Help: "Number of payment flows reaching a terminal result, by flow type and outcome.",
	},
	[]string{"flow", "outcome"},
)

var challengePresentations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "payments_sdk_challenge_presentations_total",
		Help: "Number of step-up challenge presentation attempts, by flow type and result.",
	},
	[]string{"flow", "result"},
)

func recordFlowStarted(flow string) {
	flowsStarted.WithLabelValues(flow).Inc()
}

func recordFlowCompleted(flow, outcome string) {
	flowsCompleted.WithLabelValues(flow, outcome).Inc()
}

func recordChallengePresentation(flow string, presented bool) {
	result := outcomeSucceeded
	if !presented {
		result = outcomeFailed
	}
	challengePresentations.WithLabelValues(flow, result).Inc()
}
