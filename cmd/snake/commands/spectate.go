package commands

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/snakearcade/snake/api"
	"github.com/snakearcade/snake/config"
	"github.com/snakearcade/snake/record"
	"github.com/snakearcade/snake/worker"
)

var (
	promEnable = false
	promListen = config.PrometheusListen
	recordPath string
)

// gameFlags are shared by every command that runs a game locally.
func gameFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("game", pflag.ExitOnError)
	fs.StringVar(&spectateListen, "spectate-listen", "", "serve the game to spectators on this address, e.g. :3005")
	fs.BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	fs.StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
	fs.StringVar(&recordPath, "record", "", "record the session to this file for replay")
	return fs
}

// spectate attaches a spectator api to the runner when --spectate-listen
// is set. The returned func shuts it down.
func spectate(r *worker.Runner) func() {
	if spectateListen == "" {
		return func() {}
	}

	s := api.New(spectateListen)
	r.Sinks = append(r.Sinks, s)
	go func() {
		if err := s.WaitForExit(); err != nil {
			log.WithError(err).
				WithField("listen", spectateListen).
				Error("spectator api failed")
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := s.Shutdown(ctx); err != nil {
			log.WithError(err).Warn("spectator api shutdown")
		}
	}
}

func prometheus() {
	if !promEnable {
		log.Debug("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}

// recordTo attaches a recorder to the runner when --record is set. The
// returned func closes the recording.
func recordTo(r *worker.Runner) (func(), error) {
	if recordPath == "" {
		return func() {}, nil
	}

	rec, err := record.Create(recordPath)
	if err != nil {
		return nil, err
	}
	r.Sinks = append(r.Sinks, rec)

	return func() {
		if err := rec.Close(); err != nil {
			log.WithError(err).WithField("path", recordPath).Error("recording incomplete")
			return
		}
		log.WithFields(log.Fields{
			"path":   recordPath,
			"frames": rec.Frames(),
		}).Info("recording saved")
	}, nil
}
