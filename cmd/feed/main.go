package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/TanaySingh02/Farmwise2.0/internal/bootstrap"
	"github.com/TanaySingh02/Farmwise2.0/internal/config"
	"github.com/TanaySingh02/Farmwise2.0/internal/dto"
	"github.com/TanaySingh02/Farmwise2.0/internal/service"
	"github.com/TanaySingh02/Farmwise2.0/pkg/database"
)

// Feeds a scheme catalog file into the relational store and the vector
// index in one synchronous pass.
func main() {
	filePath := flag.String("file", "schemes.json", "path to the scheme catalog JSON file")
	flag.Parse()

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	ctx := context.Background()

	color.Cyan("Feeding scheme catalog from %s", *filePath)

	raw, err := os.ReadFile(*filePath)
	if err != nil {
		color.Red("Failed to read catalog file: %v", err)
		os.Exit(1)
	}

	var imports []*dto.SchemeImport
	if err := json.Unmarshal(raw, &imports); err != nil {
		color.Red("Failed to parse catalog file: %v", err)
		os.Exit(1)
	}

	res, err := container.CatalogService.ImportSchemes(ctx, imports)
	if err != nil {
		color.Red("Import failed: %v", err)
		os.Exit(1)
	}
	color.Green("Imported %d schemes (%d rejected)", res.Imported, res.Rejected)

	// Index synchronously so the command exits only when the vector
	// store is up to date.
	indexed := 0
	failed := 0
	for _, imp := range imports {
		schemeId := service.SchemeID(imp.SchemeName)
		if err := container.CatalogService.IndexScheme(ctx, schemeId); err != nil {
			color.Red("  %s: %v", imp.SchemeName, err)
			failed++
			continue
		}
		color.Yellow("  indexed %s", imp.SchemeName)
		indexed++
	}

	color.Green("Done: %d schemes indexed, %d failed", indexed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
