package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	votesCastTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "forum",
			Name:      "votes_cast_total",
			Help:      "Votes appended to the ledger",
		},
		[]string{"direction"},
	)

	profileAssemblyDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "forum",
			Name:      "profile_assembly_duration_seconds",
			Help:      "Time to assemble a user profile, including the user lookup",
			Buckets:   prometheus.DefBuckets,
		},
	)
)
