package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PaymentRequestsCreated counts created payment requests by chain
	PaymentRequestsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pocketpay_payment_requests_created_total",
			Help: "Total number of payment requests created",
		},
		[]string{"chain"},
	)

	// PaymentRequestTransitions counts terminal transitions of payment requests
	PaymentRequestTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pocketpay_payment_request_transitions_total",
			Help: "Total number of payment request state transitions",
		},
		[]string{"outcome"},
	)

	// TransfersRecorded counts ledger writes by chain and token
	TransfersRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pocketpay_transfers_recorded_total",
			Help: "Total number of transfers recorded in the ledger",
		},
		[]string{"chain", "token"},
	)

	// TransfersVerified counts receipt verification results
	TransfersVerified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pocketpay_transfers_verified_total",
			Help: "Total number of transfer receipt checks",
		},
		[]string{"chain", "result"},
	)

	// ChatMessagesSent counts direct messages by type
	ChatMessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pocketpay_chat_messages_sent_total",
			Help: "Total number of direct chat messages sent",
		},
		[]string{"type"},
	)

	// AssistantToolCalls counts assistant tool invocations by tool and outcome
	AssistantToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pocketpay_assistant_tool_calls_total",
			Help: "Total number of assistant tool invocations",
		},
		[]string{"tool", "outcome"},
	)

	// AssistantRoundDuration tracks one agent round's completion latency
	AssistantRoundDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pocketpay_assistant_round_duration_seconds",
			Help:    "Assistant completion round duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)

	// UnverifiedTransfers tracks the ledger backlog awaiting receipts
	UnverifiedTransfers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pocketpay_unverified_transfers",
			Help: "Number of ledger rows without a verified receipt",
		},
	)
)
