package server

import (
	"net/http"

	"github.com/Rafaeltheraven/colourado-iterator/api"
	"github.com/Rafaeltheraven/colourado-iterator/controller"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	listen     = ":8080"
	promEnable = true
	promListen = ":9000"
)

// RootCmd provides the serve command.
var RootCmd = &cobra.Command{
	Use:    "serve",
	Short:  "serve the colourado palette api",
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	Run: func(c *cobra.Command, args []string) {
		registry := controller.InstrumentRegistry(controller.InMemRegistry())

		s := api.New(listen, registry)
		if err := s.WaitForExit(); err != nil {
			log.WithError(err).
				WithField("listen", listen).
				Fatal("api server failed")
		}
	},
}

func init() {
	RootCmd.Flags().StringVarP(&listen, "listen", "l", listen, "api address to listen on")
	RootCmd.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	RootCmd.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
}

func prometheus() {
	if !promEnable {
		log.Info("prometheus exporter not enabled")
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
