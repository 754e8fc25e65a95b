package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PointEventCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "geeksboard_point_events_total",
	Help: "Number of point events written, by source",
}, []string{"source"})

var BadgesAwardedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "geeksboard_badges_awarded_total",
	Help: "Number of badges awarded to students",
})

var RewardRunCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "geeksboard_reward_runs_total",
	Help: "Number of monthly reward runs executed",
})

var RewardPointsCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "geeksboard_reward_points_total",
	Help: "Total points handed out by monthly reward runs",
})

var LeaderboardSubscribersGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "geeksboard_leaderboard_subscribers",
	Help: "Current number of websocket leaderboard subscribers",
})
