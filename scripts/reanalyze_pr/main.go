package main

import (
	"context"
	"flag"
	"log"

	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/config"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api"
)

func main() {
	repoName := flag.String("repo", "", "owner/name")
	prNumber := flag.Int("pr", 0, "pull request number")
	flag.Parse()

	if *repoName == "" || *prNumber == 0 {
		log.Fatalf("Must set --repo and --pr")
	}

	if err := config.LoadDotEnv("."); err != nil {
		log.Fatalf("Can't load .env: %s", err)
	}

	a := app.NewApp()
	analysis, err := a.ReanalyzePullRequest(context.Background(), *repoName, *prNumber)
	if err != nil {
		log.Fatalf("Failed to reanalyze %s#%d: %s", *repoName, *prNumber, err)
	}

	log.Printf("Analysis %d of %s#%d finished with status %s", analysis.ID, *repoName, *prNumber, analysis.Status)
}
