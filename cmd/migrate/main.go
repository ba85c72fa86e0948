package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/Zattox/RavensPedia-sub000/config"
	"github.com/Zattox/RavensPedia-sub000/migrations"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.ConnectDatabase(cfg)

	migrator := migrations.NewMigrator(config.DB)
	for _, migration := range migrations.GetAuthMigrations() {
		migrator.AddMigration(migration)
	}
	for _, migration := range migrations.GetCoreMigrations() {
		migrator.AddMigration(migration)
	}

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	switch os.Args[1] {
	case "migrate":
		if err := migrator.Migrate(); err != nil {
			log.Fatal("Migration failed: ", err)
		}
	case "rollback":
		steps := 1
		if len(os.Args) > 2 {
			if s, err := strconv.Atoi(os.Args[2]); err == nil {
				steps = s
			}
		}
		if err := migrator.Rollback(steps); err != nil {
			log.Fatal("Rollback failed: ", err)
		}
	case "status":
		showStatus(config.DB)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
	}
}

func showStatus(db *gorm.DB) {
	var applied []migrations.Migration
	db.Order("id ASC").Find(&applied)

	if len(applied) == 0 {
		fmt.Println("No migrations applied")
		return
	}
	for _, m := range applied {
		fmt.Printf("%s (batch %d, %s)\n", m.Name, m.Batch, m.CreatedAt.Format("2006-01-02 15:04:05"))
	}
}

func printUsage() {
	fmt.Println("Usage: migrate <command>")
	fmt.Println("Commands:")
	fmt.Println("  migrate            Apply pending migrations")
	fmt.Println("  rollback [steps]   Roll back the last batch(es)")
	fmt.Println("  status             Show applied migrations")
}
