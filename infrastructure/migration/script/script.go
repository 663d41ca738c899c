package main

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-trends-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-trends-api/internal/config"
	"github.com/vfg2006/ad-trends-api/internal/domain"
	"github.com/vfg2006/ad-trends-api/internal/usecases/authenticating"
)

//go:embed schema.sql
var schema string

type adminSeed struct {
	Name     string
	Email    string
	Password string
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

// applySchema cria as tabelas que ainda não existem
func applySchema(ctx context.Context, tx *sql.Tx) error {
	startTime := time.Now()

	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("erro ao aplicar schema: %w", err)
	}

	logrus.Infof("Schema aplicado em %v", time.Since(startTime))
	return nil
}

// seedAdmin cria o usuário administrador quando ADMIN_EMAIL e ADMIN_PASSWORD estão definidos
func seedAdmin(ctx context.Context, tx *sql.Tx, seed adminSeed) error {
	if seed.Email == "" || seed.Password == "" {
		logrus.Info("ADMIN_EMAIL/ADMIN_PASSWORD não definidos, nenhum administrador criado")
		return nil
	}

	hash, err := authenticating.HashPassword(seed.Password)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, active, role_id)
		 VALUES ($1, $2, $3, $4, TRUE, $5)
		 ON CONFLICT (email) DO NOTHING`,
		uuid.NewString(), seed.Name, strings.ToLower(strings.TrimSpace(seed.Email)), hash, domain.RoleAdmin,
	)
	if err != nil {
		return fmt.Errorf("erro ao inserir administrador: %w", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		logrus.WithField("email", seed.Email).Info("Administrador já existe, nada a fazer")
		return nil
	}

	logrus.WithField("email", seed.Email).Info("Administrador criado")
	return nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	seed := adminSeed{
		Name:     os.Getenv("ADMIN_NAME"),
		Email:    os.Getenv("ADMIN_EMAIL"),
		Password: os.Getenv("ADMIN_PASSWORD"),
	}
	if seed.Name == "" {
		seed.Name = "Administrador"
	}

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := applySchema(ctx, tx); err != nil {
			return err
		}
		return seedAdmin(ctx, tx, seed)
	})
	if err != nil {
		logrus.WithError(err).Fatal("Migração falhou, alterações revertidas")
	}

	logrus.Info("Migração concluída com sucesso")
}
