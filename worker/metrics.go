package worker

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/snakearcade/snake/rules"
)

var (
	tickDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "tick_duration_seconds",
			Help:      "Time spent applying a single tick.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		},
	)
	ticks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "ticks_total",
			Help:      "Turns played.",
		},
	)
	applesEaten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "apples_eaten_total",
			Help:      "Apples eaten across all games.",
		},
	)
	gameOvers = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "game_overs_total",
			Help:      "Games ended, by cause of death.",
		},
		[]string{"cause"},
	)
	restarts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "restarts_total",
			Help:      "Games restarted after a game over.",
		},
	)
	score = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "score",
			Help:      "Score of the game in progress.",
		},
	)
)

func init() {
	prometheus.MustRegister(tickDuration, ticks, applesEaten, gameOvers, restarts, score)
}

func instrument() func() {
	t := prometheus.NewTimer(tickDuration)
	return func() { t.ObserveDuration() }
}

// observe records the outcome of a played turn. lastScore is the score
// before the tick.
func observe(f rules.Frame, lastScore int) {
	ticks.Inc()
	if f.Score > lastScore {
		applesEaten.Add(float64(f.Score - lastScore))
	}
	score.Set(float64(f.Score))
	if f.GameOver() && f.Death != nil {
		gameOvers.WithLabelValues(f.Death.Cause).Inc()
	}
}
