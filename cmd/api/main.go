package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/yemeli/vitrine-golang/internal/admin"
	"github.com/yemeli/vitrine-golang/internal/handlers"
	"github.com/yemeli/vitrine-golang/internal/routes"
	"github.com/yemeli/vitrine-golang/internal/store"
)

func main() {
	// --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// --- Local store (snapshot slot + view counters) ---
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data/local"
	}
	local, err := store.OpenLocal(dataDir)
	if err != nil {
		log.Fatalf("Failed to open local store at %s: %v", dataDir, err)
	}

	// --- Default dataset source ---
	// DATA_URL wins when set; otherwise the deployed data.json on disk.
	var source store.Source
	if dataURL := os.Getenv("DATA_URL"); dataURL != "" {
		source = store.HTTPSource{URL: dataURL}
	} else {
		dataFile := os.Getenv("DATA_FILE")
		if dataFile == "" {
			dataFile = "data/data.json"
		}
		source = store.FileSource{Path: dataFile}
	}

	// --- Catalog store ---
	catalogStore := store.NewStore(local, source)
	if err := catalogStore.Load(context.Background()); err != nil {
		// Surface the failure but keep serving: data-dependent endpoints
		// answer 503 until a reload succeeds.
		log.Printf("WARNING: dataset load failed: %v", err)
	}

	// --- Application Setup ---
	app := &handlers.Handlers{
		Store: catalogStore,
		Admin: admin.NewWorkflow(catalogStore),
		Views: store.NewViewCounter(local),
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting vitrine catalogue API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
