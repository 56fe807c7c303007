package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
)

var version = "dev"

func init() {
	// Never expose debug output because of a configuration mistake
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

func main() {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
