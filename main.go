package main

import (
	"flag"
	"log"
	"strings"

	"expense-tracker/config"
	"expense-tracker/database"
	"expense-tracker/router"

	"github.com/joho/godotenv"
)

// @title Expense Tracker API
// @version 1.0
// @description A small personal-finance tracker: record expenses, list them, see totals and a category breakdown, export to CSV/Excel.
// @host localhost:8080
// @BasePath /

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "path to an external config file (optional)")
	flag.StringVar(&configFile, "c", "", "path to an external config file (shorthand)")
	flag.StringVar(&port, "port", "", "listen port, e.g. 8080 or :8080")
	flag.StringVar(&port, "p", "", "listen port (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&showVersion, "v", false, "print version (shorthand)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("expense-tracker v1.0.0")
		return
	}

	// .env is optional; EXPENSE_* variables override file config either way.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("port overridden from command line: %s", port)
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		log.Fatalf("init database: %v", err)
	}

	r := router.SetupRouter(cfg)

	log.Printf("==========================================")
	log.Printf("  expense tracker started")
	log.Printf("==========================================")
	log.Printf("  app:     http://localhost%s/", cfg.Server.Port)
	log.Printf("  swagger: http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  api:     http://localhost%s/expenses", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
