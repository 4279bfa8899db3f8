package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"stock-dashboard/src/analysis"
	"stock-dashboard/src/config"
	"stock-dashboard/src/data_source/yahoo"
	"stock-dashboard/src/interfaces"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/network"
	"stock-dashboard/src/server"
	"stock-dashboard/src/storage"
)

// -----------------------------------------------------------------------------

func main() {

	// Parse command line flags
	configPath := flag.String("config", "config/default.yaml", "path to config file")
	flag.Parse()

	// Load config from YAML file
	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	logger.Configure(cfg.LogLevel)
	appLogger := logger.NewLogger(cfg.Name)

	// Lookup store
	var db interfaces.IDatabase

	switch cfg.Storage.DBType {
	case "postgres":
		db, err = storage.NewPostgresDB(cfg.MConfig, appLogger)
	default:
		// Default to SQLite
		db, err = storage.NewSQLiteDB(cfg.MConfig, appLogger)
	}

	if err != nil {
		appLogger.Critical("Failed to init db: %v", err)
	}
	if err := db.Initialize(); err != nil {
		appLogger.Critical("Failed to migrate db: %v", err)
	}
	defer db.Close()

	// Network + providers
	netMgr := network.NewNetworkManager(cfg.MConfig, appLogger)

	var quoteSource interfaces.IQuoteSource = yahoo.NewQuoteSource(cfg.MConfig, netMgr)
	var historySource interfaces.IHistorySource = yahoo.NewHistorySource(cfg.MConfig, netMgr)

	analyzer := analysis.NewAnalysisFacade(logger.NewLogger("AnalysisFacade"))

	// Dashboard server
	var srv interfaces.IDataExchanger = server.NewDashboardServer(cfg, appLogger, quoteSource, historySource, analyzer, db)

	go func() {
		if err := srv.Start(); err != nil {
			appLogger.Critical("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down...")
	srv.Stop()
}
