// Package metrics registers Prometheus collectors for bookmark operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ListsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookmarkd_lists_created_total",
		Help: "Bookmark lists successfully created.",
	})

	ListCreateRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookmarkd_list_create_rejected_total",
		Help: "List creations rejected by validation.",
	}, []string{"reason"})

	MembershipWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookmarkd_membership_writes_total",
		Help: "Membership add/remove operations applied.",
	}, []string{"op"})

	ListsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bookmarkd_lists_total",
		Help: "Total number of bookmark lists in the database.",
	})

	UsersTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bookmarkd_users_total",
		Help: "Total number of registered users in the database.",
	})
)
