// Package main is the entry point for the content resolver service.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jonesrussell/content-resolver/internal/app"
)

var (
	// version can be set at build time via -ldflags
	version = "dev"
)

const flushCacheTimeout = 30 * time.Second

func main() {
	var configPath string
	var flushCache bool
	flag.StringVar(&configPath, "config", "", "Path to configuration file (optional)")
	flag.BoolVar(&flushCache, "flush-cache", false, "Flush the response cache and exit")
	flag.Parse()

	command := "serve"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	switch command {
	case "serve":
		run(configPath, flushCache)
	case "version":
		log.Printf("Content resolver version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		log.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func run(configPath string, flushCache bool) {
	application, err := app.New(app.Options{
		ConfigPath: configPath,
		Version:    version,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := application.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Failed to close application: %v\n", closeErr)
		}
	}()

	if flushCache {
		ctx, cancel := context.WithTimeout(context.Background(), flushCacheTimeout)
		defer cancel()

		if flushErr := application.FlushCache(ctx); flushErr != nil {
			application.Logger().Error("Failed to flush cache")
			os.Exit(1)
		}
		application.Logger().Info("Cache flushed successfully")
		return
	}

	if runErr := application.Run(context.Background()); runErr != nil {
		application.Logger().Error("Application error")
		os.Exit(1)
	}
}

func printUsage() {
	log.Println("Content Resolver Service")
	log.Println()
	log.Println("Usage:")
	log.Println("  content-resolver [flags] [command]")
	log.Println()
	log.Println("Commands:")
	log.Println("  serve      Start the HTTP server (default)")
	log.Println("  version    Print version information")
	log.Println("  help       Show this help message")
	log.Println()
	log.Println("Flags:")
	log.Println("  -config       Path to YAML configuration file")
	log.Println("  -flush-cache  Flush the response cache and exit")
	log.Println()
	log.Println("Environment Variables:")
	log.Println("  CONTENTFUL_SPACE_ID       - Delivery API space (static-only mode when absent)")
	log.Println("  CONTENTFUL_ACCESS_TOKEN   - Delivery API token")
	log.Println("  CONTENTFUL_PREVIEW_TOKEN  - Preview API token (optional)")
	log.Println("  CONTENTFUL_WEBHOOK_SECRET - Shared secret for the publish webhook")
	log.Println("  REDIS_URL                 - Switch the cache backend to Redis")
	log.Println("  CACHE_TTL                 - Response cache TTL (default: 5m)")
	log.Println("  RESOLVER_PORT             - HTTP port (default: 8080)")
	log.Println("  APP_DEBUG                 - Debug logging: true|false")
}
