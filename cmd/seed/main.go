// Command seed loads staff accounts from a YAML file into the users table and
// prints a bearer token for each, for local environments only.
//
//	go run ./cmd/seed -file cmd/seed/users.example.yaml -token-ttl 24h
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"packflow/cmd"
	"packflow/internal/adapters/out/jwtauth"
	"packflow/internal/adapters/out/postgres"
	"packflow/internal/adapters/out/postgres/userrepo"
	"packflow/internal/adapters/out/redis/identitycache"
	"packflow/internal/core/domain/model/access"
	"packflow/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type seedFile struct {
	Users []seedUser `yaml:"users"`
}

type seedUser struct {
	FullName    string            `yaml:"fullName"`
	Email       string            `yaml:"email"`
	Phone       string            `yaml:"phone"`
	Role        string            `yaml:"role"`
	Active      *bool             `yaml:"active"`
	Permissions map[string]string `yaml:"permissions"`
}

func main() {
	file := flag.String("file", "cmd/seed/users.example.yaml", "YAML file with the accounts to seed")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "lifetime of the printed tokens")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	cfg := cmd.Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  os.Getenv("DB_SSLMODE"),
		RedisAddr:  os.Getenv("REDIS_ADDR"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With("component", "seed")
	if err := run(context.Background(), cfg, *file, *tokenTTL, logger); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

func run(ctx context.Context, cfg cmd.Config, file string, tokenTTL time.Duration, logger *slog.Logger) error {
	users, err := readSeedFile(file)
	if err != nil {
		return err
	}

	db, err := gorm.Open(pgdriver.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := db.WithContext(ctx).AutoMigrate(postgres.Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	directory := userrepo.NewGormDirectory(db)
	if err := directory.Upsert(ctx, users); err != nil {
		return fmt.Errorf("failed to upsert users: %w", err)
	}
	logger.Info("users seeded", "count", len(users))

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		invalidateCache(ctx, identitycache.NewDirectory(directory, rdb, 0, logger), users, logger)
	}

	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET is empty, no tokens printed")
		return nil
	}
	authenticator, err := jwtauth.NewHMACAuthenticator(cfg.JWTSecret)
	if err != nil {
		return err
	}
	now := time.Now()
	for _, u := range users {
		id, err := kernel.UUIDFromBytes(u.ID[:])
		if err != nil {
			return err
		}
		token, err := authenticator.Issue(id, u.Email, u.Role, jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		})
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\t%s\n", u.Email, u.ID, token)
	}
	return nil
}

// readSeedFile parses and validates the accounts. Ids are derived from the
// email so reseeding keeps tokens stable.
func readSeedFile(path string) ([]userrepo.UserDTO, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(f.Users) == 0 {
		return nil, fmt.Errorf("%s lists no users", path)
	}

	users := make([]userrepo.UserDTO, 0, len(f.Users))
	var validationErrs []error
	for i, u := range f.Users {
		if u.Email == "" {
			validationErrs = append(validationErrs, fmt.Errorf("users[%d]: email is required", i))
			continue
		}
		if u.Role == "" {
			u.Role = access.Staff.String()
		}
		if _, err := access.ParseRole(u.Role); err != nil {
			validationErrs = append(validationErrs, fmt.Errorf("users[%d]: %w", i, err))
		}
		if _, err := access.PermissionsFromCodes(u.Permissions); err != nil {
			validationErrs = append(validationErrs, fmt.Errorf("users[%d]: %w", i, err))
		}
		active := u.Active == nil || *u.Active
		id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+u.Email))
		users = append(users, userrepo.NewUserDTO(id, u.FullName, u.Email, u.Phone, u.Role, active, u.Permissions))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return nil, err
	}
	return users, nil
}

// invalidateCache drops cached actors so permission changes apply on the next request.
func invalidateCache(ctx context.Context, cache *identitycache.Directory, users []userrepo.UserDTO, logger *slog.Logger) {
	ids := make([]kernel.UUID, 0, len(users))
	for _, u := range users {
		if id, err := kernel.UUIDFromBytes(u.ID[:]); err == nil {
			ids = append(ids, id)
		}
	}
	if err := cache.Invalidate(ctx, ids...); err != nil {
		logger.Warn("failed to invalidate identity cache", "error", err)
	}
}
