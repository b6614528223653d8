package main

import (
	"fmt"
	"os"

	"github.com/connectus-hq/connectus-backend/internal/app"
	"github.com/connectus-hq/connectus-backend/internal/platform/envutil"
)

func main() {
	application, err := app.New()
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	port := envutil.String("PORT", "8080")
	application.Log.Info("Server listening", "port", port)
	if err := application.Run(":" + port); err != nil {
		application.Log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
