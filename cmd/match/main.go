package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/TanaySingh02/Farmwise2.0/internal/bootstrap"
	"github.com/TanaySingh02/Farmwise2.0/internal/config"
	"github.com/TanaySingh02/Farmwise2.0/pkg/database"
)

// Runs one matching pass for a single farmer and prints the stored
// recommendations.
func main() {
	farmerId := flag.String("farmer", "", "farmer id to match schemes for")
	flag.Parse()

	if *farmerId == "" {
		color.Red("Usage: match -farmer <farmer id>")
		os.Exit(1)
	}

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	ctx := context.Background()

	color.Cyan("Running scheme matching for farmer %s", *farmerId)

	state, err := container.MatchingService.Run(ctx, *farmerId)
	if err != nil {
		color.Red("Run failed at stage %s: %v", state.Stage, err)
		os.Exit(1)
	}

	if len(state.Matches) == 0 {
		color.Yellow("No schemes matched this farmer.")
		return
	}

	color.Green("Matched %d schemes:", len(state.Matches))
	for _, match := range state.Matches {
		color.Green("  %s (%s)", match.SchemeName, match.SchemeId)
		color.White("    %s", match.Reason)
	}
}
