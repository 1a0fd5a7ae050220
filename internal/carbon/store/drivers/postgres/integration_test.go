package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/carbon/internal/carbon/domain"
	"github.com/aussiebroadwan/carbon/internal/carbon/store"
	"github.com/aussiebroadwan/carbon/internal/carbon/store/drivers/postgres"
	"github.com/aussiebroadwan/carbon/pkg/idx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres runs a throwaway postgres container and returns its DSN.
func startPostgres(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "carbon",
			"POSTGRES_PASSWORD": "carbon",
			"POSTGRES_DB":       "carbon",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://carbon:carbon@%s:%s/carbon?sslmode=disable", host, port.Port())
}

func TestPostgresStore(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()

	s, err := postgres.NewStore(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations(ctx))
	require.NoError(t, s.ApplyMigrations(ctx), "migrations must be idempotent")

	t.Run("users", func(t *testing.T) {
		u := domain.User{ID: idx.New().String(), Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
		require.NoError(t, s.Users().CreateUser(ctx, u))

		err := s.Users().CreateUser(ctx, domain.User{ID: idx.New().String(), Username: "bob", Email: "alice@example.com", PasswordHash: "hash"})
		require.ErrorIs(t, err, store.ErrEmailTaken)

		err = s.Users().CreateUser(ctx, domain.User{ID: idx.New().String(), Username: "alice", Email: "bob@example.com", PasswordHash: "hash"})
		require.ErrorIs(t, err, store.ErrUsernameTaken)

		answers := domain.QuizAnswers{
			Transportation:   "Never",
			MeatConsumption:  "Rarely",
			Recycling:        "Frequently",
			EnergyEfficiency: "Yes",
			ElectricityUsage: "Low",
		}
		require.NoError(t, s.Users().UpdateQuizAnswers(ctx, u.ID, answers))

		got, err := s.Users().GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
		require.Equal(t, &answers, got.QuizAnswers)

		_, err = s.Users().GetUserByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("vehicles", func(t *testing.T) {
		for _, v := range domain.DefaultVehicles {
			require.NoError(t, s.Vehicles().UpsertVehicle(ctx, v))
		}

		all, err := s.Vehicles().ListVehicles(ctx)
		require.NoError(t, err)
		require.Equal(t, domain.DefaultVehicles, all)

		_, err = s.Vehicles().GetVehicleByType(ctx, "car")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
