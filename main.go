package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/fortimeet/fortimeet-api/api/handlers"
	"github.com/fortimeet/fortimeet-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil { //initialize database, scheduler and router
		log.Fatal(err)
	}

	port := a.Config.Port
	if port == "" {
		port = "8000"
	}
	zap.S().Infow("fortimeet-api is up and running",
		"port", port,
		"url", os.Getenv("BASE_URL"),
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), a.Router))
}
