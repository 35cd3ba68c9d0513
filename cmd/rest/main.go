package main

import (
	"log"

	_ "time/tzdata"

	"github.com/manish-1011/KisanSaathi/internal/bootstrap"
	"github.com/manish-1011/KisanSaathi/internal/config"
	"github.com/manish-1011/KisanSaathi/internal/server"
	"github.com/manish-1011/KisanSaathi/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("DB_CONNECTION_STRING is required")
	}

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Close()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
