package main

import (
	"fmt"
	"os"

	"github.com/tanaoroshi/masterdata-backend/internal/app"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/envutil"
)

func main() {
	configDir := envutil.String("CONFIG_DIR", ".")

	application, err := app.New(configDir)
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	if err := application.Run(); err != nil {
		application.Log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
