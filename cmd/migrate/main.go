package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"quizmaster/internal/config"
	"quizmaster/internal/database"
	"quizmaster/internal/logger"

	"go.uber.org/zap"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [up|down|version]\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewPostgresDB(context.Background(), cfg.GetDSN(), cfg.DB)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	migrator, err := database.NewMigrator(db.DB)
	if err != nil {
		l.Fatal("Failed to prepare migrations", zap.Error(err))
	}

	switch command {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	case "version":
		version, dirty, ok, verr := migrator.Version()
		if verr != nil {
			err = verr
			break
		}
		if !ok {
			fmt.Println("no migrations applied")
			return
		}
		fmt.Printf("version %d (dirty: %t)\n", version, dirty)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		l.Fatal("Migration command failed", zap.String("command", command), zap.Error(err))
	}
}
