// seed_dev crea las cuentas fijas de desarrollo (master, sales, manager, ...) en PostgreSQL
// si la tabla de usuarios está vacía. Aplica el esquema antes de sembrar.
//
// Uso: go run ./cmd/seed_dev
// Lee la misma configuración que cmd/api (DATABASE_URL o DB_*). Se niega a correr con APP_ENV=production.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Proyectos-api/internal/application/auth"
	"github.com/jhoicas/Proyectos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Proyectos-api/pkg/config"
	"github.com/jhoicas/Proyectos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.App.IsProduction() {
		fmt.Fprintln(os.Stderr, "seed_dev no se ejecuta en producción")
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	created, err := auth.SeedDevUsers(ctx, postgres.NewTxRunner(pool), auth.NewPasswordHasher(bcrypt.DefaultCost), log.Component("seed"))
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar usuarios")
	}
	if !created {
		log.Info().Msg("la tabla de usuarios ya tiene datos; no se creó nada")
		return
	}
	log.Info().Msg("usuarios de desarrollo creados")
}
