// Package metrics exposes Prometheus collectors for HTTP traffic, the event
// bus and the potion economy.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	Potions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePotions,
			Help: HelpTextPotions,
		},
		[]string{LabelAction, LabelRarity},
	)

	BoostedUses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBoostedUses,
			Help: HelpTextBoostedUses,
		},
	)

	KaiSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameKaiSpent,
			Help: HelpTextKaiSpent,
		},
	)

	KaiEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameKaiEarned,
			Help: HelpTextKaiEarned,
		},
	)

	WorldPoolStaked = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameWorldPoolStaked,
			Help: HelpTextWorldPoolStaked,
		},
	)

	RewardsClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsClaimed,
			Help: HelpTextRewardsClaimed,
		},
		[]string{LabelKind},
	)

	RewardsAccrued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRewardsAccrued,
			Help: HelpTextRewardsAccrued,
		},
	)

	WalletTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWalletTransitions,
			Help: HelpTextWalletTransitions,
		},
		[]string{LabelAction},
	)

	SessionResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionResets,
			Help: HelpTextSessionResets,
		},
	)

	SearchesPerformed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSearchesPerformed,
			Help: HelpTextSearchesPerformed,
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)
)
