// seed_admin cria (ou redefine) o usuário administrador inicial.
//
// Uso: ADMIN_USERNAME=admin ADMIN_PASSWORD=... go run ./cmd/seed_admin
// As credenciais vêm sempre do ambiente; não existe senha padrão.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/entity"
	"github.com/tiprefeitura/almoxarifado-api/internal/infrastructure/postgres"
	"github.com/tiprefeitura/almoxarifado-api/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		fmt.Fprintln(os.Stderr, "ADMIN_USERNAME e ADMIN_PASSWORD são obrigatórios")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Carregar configuração: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexão ao PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Migração do esquema: %v\n", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Gerar hash: %v\n", err)
		os.Exit(1)
	}

	repo := postgres.NewUsuarioRepository(pool)
	existente, err := repo.GetByUsername(username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Consultar usuário: %v\n", err)
		os.Exit(1)
	}

	if existente != nil {
		existente.IsAdmin = true
		if err := repo.Update(existente); err != nil {
			fmt.Fprintf(os.Stderr, "Atualizar usuário: %v\n", err)
			os.Exit(1)
		}
		if err := repo.UpdateSenha(existente.ID, string(hash)); err != nil {
			fmt.Fprintf(os.Stderr, "Redefinir senha: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Senha do administrador %q redefinida\n", username)
		return
	}

	now := time.Now().UTC()
	admin := &entity.Usuario{
		ID:        uuid.NewString(),
		Username:  username,
		SenhaHash: string(hash),
		IsAdmin:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(admin); err != nil {
		fmt.Fprintf(os.Stderr, "Criar usuário: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Administrador %q criado\n", username)
}
