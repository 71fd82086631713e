package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/ayushqc/college-info-api/internal/config"
	"github.com/ayushqc/college-info-api/internal/database"
	"github.com/ayushqc/college-info-api/internal/logger"
	"github.com/ayushqc/college-info-api/internal/model"
	"github.com/ayushqc/college-info-api/internal/repository"
)

// set-admin bootstraps or rotates the stored admin credential from the
// terminal, so a deployment can move off the configured default pair without
// going through the HTTP endpoint.
func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// ─── Connect to MongoDB ────────────────────────────────────────────
	client, db, err := database.Connect(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	credentialRepo := repository.NewCredentialRepository(db)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Set Admin Credential ===")

	fmt.Printf("Current username (default %q): ", cfg.AdminUsername)
	current, _ := reader.ReadString('\n')
	current = strings.TrimSpace(current)
	if current == "" {
		current = cfg.AdminUsername
	}

	fmt.Print("New username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)
	if username == "" {
		fmt.Println("Error: Username is required")
		return
	}

	fmt.Print("New password: ")
	byteSecret, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	secret := string(byteSecret)
	fmt.Println()
	if len(secret) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	cred := &model.Credential{
		Username:   username,
		SecretHash: string(hash),
		IsDefault:  false,
	}
	if err := credentialRepo.Upsert(ctx, current, cred); err != nil {
		log.Fatal().Err(err).Msg("Failed to store credential")
	}

	fmt.Printf("\nSuccess! Admin credential for %q stored.\n", username)
}
