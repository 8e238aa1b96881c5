// Package observability provides Prometheus collectors and OpenTelemetry
// tracing setup for the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "textbox_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// PostsCreated counts accepted post submissions.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "textbox_posts_created_total",
		Help: "Total number of posts created",
	})

	// LikeToggles counts like toggles by resulting action (liked/unliked).
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "textbox_like_toggles_total",
		Help: "Total number of like toggles by resulting action",
	}, []string{"action"})

	// FollowToggles counts follow toggles by resulting action (followed/unfollowed).
	FollowToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "textbox_follow_toggles_total",
		Help: "Total number of follow toggles by resulting action",
	}, []string{"action"})

	// FeedPosts records how many posts each feed response carried.
	FeedPosts = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "textbox_feed_posts",
		Help:    "Number of posts returned per feed request",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
	}, []string{"feed"})
)
