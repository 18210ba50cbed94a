package handler

import (
	"net/http"
	"sync"

	"cleanrate/config"
	"cleanrate/di"
	"cleanrate/shared/logger"
)

var (
	once    sync.Once
	handler http.Handler
)

// Handler is the serverless entry point. The dependency graph is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		handler = di.InitializeService().Handler()
	})

	handler.ServeHTTP(w, r)
}
