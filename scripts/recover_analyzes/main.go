package main

import (
	"log"

	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/config"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api"
)

func main() {
	if err := config.LoadDotEnv("."); err != nil {
		log.Fatalf("Can't load .env: %s", err)
	}

	a := app.NewApp()
	n, err := a.RecoverStaleAnalyzes()
	if err != nil {
		log.Fatalf("Failed to recover analyzes: %s", err)
	}
	log.Printf("Failed %d stale analyzes", n)
}
