// Package main is the Adesua CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/osei-labs/adesua/internal/analytics"
	"github.com/osei-labs/adesua/internal/catalog"
	"github.com/osei-labs/adesua/internal/cli"
	"github.com/osei-labs/adesua/internal/config"
	"github.com/osei-labs/adesua/internal/models"
	"github.com/osei-labs/adesua/internal/search"
	"github.com/osei-labs/adesua/internal/server"
	"github.com/osei-labs/adesua/internal/watcher"
	"github.com/osei-labs/adesua/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/adesua/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists it
// is used. Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "suggest":
		runSuggest()
	case "catalogs":
		runCatalogs()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("adesua version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`Usage: adesua <command> [flags]

Commands:
  server     Run the HTTP API server
  search     Run a query against a catalog
  suggest    Get suggestions for a partial query
  catalogs   List available catalogs
  status     Show server status and analytics counts
  version    Print version
  help       Show this help
`)
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (requests, catalog reloads, etc.)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	registry, err := catalog.LoadDir(cfg.Catalogs.Directory)
	if err != nil {
		logger.Fatal("Failed to load catalogs", zap.Error(err))
	}
	logger.Info("catalogs loaded",
		zap.String("dir", cfg.Catalogs.Directory),
		zap.Strings("keys", registry.Keys()),
	)

	backend, err := analytics.NewSQLiteBackend(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to open analytics database", zap.Error(err))
	}
	defer backend.Close()

	hub := search.NewHub(registry, backend, &cfg.Search, logger)

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if cfg.Catalogs.WatchOrDefault() {
		watchOpts := []watcher.Option{}
		if debugMode {
			watchOpts = append(watchOpts, watcher.WithLogger(logger))
		}
		watchSvc := watcher.New(
			cfg.Catalogs.Directory,
			func(path string) {
				cat, err := catalog.LoadFile(path)
				if err != nil {
					logger.Warn("catalog reload failed, keeping previous version",
						zap.String("path", path), zap.Error(err))
					return
				}
				registry.Put(cat)
				hub.Reload(cat)
				logger.Info("catalog reloaded", zap.String("key", cat.Key()), zap.Int("resources", cat.Len()))
			},
			func(path string) {
				key := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				if _, ok := registry.Get(key); !ok {
					return
				}
				registry.Remove(key)
				hub.Remove(key)
				logger.Info("catalog removed", zap.String("key", key))
			},
			watchOpts...,
		)
		if err := watchSvc.Start(watchCtx); err != nil {
			logger.Fatal("Failed to start catalog watcher", zap.Error(err))
		}
	}

	srv := server.NewServer(hub, cfg, logger)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// buildQuery joins all positional args with spaces so multi-word queries work
// the same with or without shell quoting.
func buildQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "http://localhost:8080", "server URL (empty = load catalogs directly, no analytics persistence)")
	catalogKey := fs.String("catalog", "", "catalog key (required)")
	limit := fs.Int("limit", 10, "number of results")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	queryStr := buildQuery(fs.Args())
	if queryStr == "" || *catalogKey == "" {
		fmt.Fprintln(os.Stderr, "Usage: adesua search -catalog <key> [flags] <query>")
		fs.PrintDefaults()
		os.Exit(1)
	}
	format, err := cli.ParseFormat(*outputFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	query := &models.SearchQuery{Query: queryStr, Limit: *limit}

	var response *models.SearchResponse
	if *serverURL != "" {
		response, err = searchViaHTTP(*serverURL, *catalogKey, query)
	} else {
		var engine *search.Engine
		engine, err = localEngine(*configPath, *catalogKey)
		if err == nil {
			response = engine.Search(query)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteSearchResults(os.Stdout, response, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runSuggest() {
	fs := flag.NewFlagSet("suggest", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "http://localhost:8080", "server URL (empty = load catalogs directly)")
	catalogKey := fs.String("catalog", "", "catalog key (required)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	partial := buildQuery(fs.Args())
	if partial == "" || *catalogKey == "" {
		fmt.Fprintln(os.Stderr, "Usage: adesua suggest -catalog <key> [flags] <partial query>")
		fs.PrintDefaults()
		os.Exit(1)
	}
	format, err := cli.ParseFormat(*outputFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var suggestions []*models.Suggestion
	if *serverURL != "" {
		suggestions, err = suggestViaHTTP(*serverURL, *catalogKey, partial)
	} else {
		var engine *search.Engine
		engine, err = localEngine(*configPath, *catalogKey)
		if err == nil {
			suggestions = engine.Suggest(partial)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Suggest failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteSuggestions(os.Stdout, suggestions, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runCatalogs() {
	fs := flag.NewFlagSet("catalogs", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	_ = fs.Parse(os.Args[2:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	registry, err := catalog.LoadDir(cfg.Catalogs.Directory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load catalogs: %v\n", err)
		os.Exit(1)
	}
	for _, key := range registry.Keys() {
		cat, _ := registry.Get(key)
		fmt.Printf("%-20s %-30s %d resources, %d intents\n", cat.Key(), cat.Name(), cat.Len(), len(cat.Intents()))
	}
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	_ = fs.Parse(os.Args[2:])

	resp, err := http.Get(*serverURL + "/api/v1/status")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Status request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		fmt.Fprintf(os.Stderr, "Server returned %d: %s\n", resp.StatusCode, string(b))
		os.Exit(1)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Read response failed: %v\n", err)
		os.Exit(1)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		fmt.Println(string(b))
		return
	}
	fmt.Println(out.String())
}

// localEngine loads catalogs from the configured directory and builds an
// engine over an in-memory backend (no analytics persistence).
func localEngine(configPath, catalogKey string) (*search.Engine, error) {
	cfg, _, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	registry, err := catalog.LoadDir(cfg.Catalogs.Directory)
	if err != nil {
		return nil, err
	}
	cat, ok := registry.Get(catalogKey)
	if !ok {
		return nil, fmt.Errorf("unknown catalog %q (available: %s)", catalogKey, strings.Join(registry.Keys(), ", "))
	}
	return search.NewEngineForCatalog(cat, analytics.NewMemoryBackend(), &cfg.Search, zap.NewNop()), nil
}

func searchViaHTTP(serverURL, catalogKey string, query *models.SearchQuery) (*models.SearchResponse, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}
	resp, err := http.Post(
		fmt.Sprintf("%s/api/v1/catalogs/%s/search", serverURL, url.PathEscape(catalogKey)),
		"application/json", bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var response models.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &response, nil
}

func suggestViaHTTP(serverURL, catalogKey, partial string) ([]*models.Suggestion, error) {
	u := fmt.Sprintf("%s/api/v1/catalogs/%s/suggest?q=%s",
		serverURL, url.PathEscape(catalogKey), url.QueryEscape(partial))
	resp, err := http.Get(u)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var body struct {
		Suggestions []*models.Suggestion `json:"suggestions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return body.Suggestions, nil
}
