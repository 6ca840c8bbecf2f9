package main

import (
	"log"

	"github.com/veloreport/config"
	"github.com/veloreport/models"
	"github.com/veloreport/server"
)

func main() {
	cfg, analysis, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	session, err := models.LoadSession(cfg.RideLog, cfg.SegmentFile, cfg.PlaceFile, analysis.FitDegree)
	if err != nil {
		log.Fatal("Failed to load data:", err)
	}
	log.Printf("Loaded %d rides, %d segment attempts, %d places",
		len(session.Rides), len(session.Segments), len(session.Places))

	if err := server.Serve(session, analysis, cfg.Port, cfg.OpenBrowser); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
