// Comando migrate aplica el esquema embebido en migrations/ sobre la base configurada.
// Con -down revierte la última versión.
package main

import (
	"database/sql"
	"flag"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/jhoicas/ledger-api/migrations"
	"github.com/jhoicas/ledger-api/pkg/config"
	"github.com/jhoicas/ledger-api/pkg/logger"
)

func main() {
	down := flag.Bool("down", false, "revertir la última migración")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Component("migrate")

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexión a PostgreSQL")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}

	if *down {
		if err := migrations.Down(db); err != nil {
			log.Fatal().Err(err).Msg("revertir migración")
		}
		log.Info().Msg("última migración revertida")
		return
	}

	version, err := migrations.Up(db)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Uint("version", version).Msg("migraciones aplicadas")
}
