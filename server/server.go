package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cli/browser"

	"github.com/veloreport/config"
	"github.com/veloreport/models"
)

// Serve renders the session's charts on a local HTTP server and, when asked,
// opens the report in the browser. It blocks until the server stops.
func Serve(session *models.Session, analysis config.Analysis, port string, openBrowser bool) error {
	logFile, err := setupLogging()
	if err != nil {
		log.Printf("Failed to set up log file: %v", err)
	} else {
		defer logFile.Close()
	}

	srv := &Server{session: session, analysis: analysis}

	mux := http.NewServeMux()
	mux.HandleFunc("/", srv.indexHandler)
	mux.HandleFunc("/estimate", srv.estimateHandler)
	mux.HandleFunc("/api/summary", srv.summaryHandler)

	url := fmt.Sprintf("http://localhost:%s", port)
	log.Printf("Server starting on %s", url)
	log.Printf("Visit %s to see the charts", url)

	if openBrowser {
		go func() {
			time.Sleep(300 * time.Millisecond)
			if err := browser.OpenURL(url); err != nil {
				log.Printf("Failed to open browser: %v", err)
			}
		}()
	}

	return http.ListenAndServe(":"+port, loggingMiddleware(mux))
}
