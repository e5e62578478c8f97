package main

import (
	"flag"

	"github.com/Rafaeltheraven/colourado-iterator/api"
	"github.com/Rafaeltheraven/colourado-iterator/controller"
	log "github.com/sirupsen/logrus"
)

func main() {
	var apiAddr string
	flag.StringVar(&apiAddr, "listen", ":8080", "api listen address")
	flag.Parse()

	registry := controller.InstrumentRegistry(controller.InMemRegistry())

	s := api.New(apiAddr, registry)
	if err := s.WaitForExit(); err != nil {
		log.Fatalf("api failed to serve on (%s): %v", apiAddr, err)
	}
}
