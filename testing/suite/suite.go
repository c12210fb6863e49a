package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

const (
	expireSeconds   = 120
	maxWaitDuration = 120 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage *redis.Client
	Addr    string
}

// New starts a throwaway Redis container and returns a client connected to an empty database.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(cancel)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not connect to docker: %v", err)
	}
	pool.MaxWait = maxWaitDuration

	resource := startRedis(t, pool)
	addr := resource.GetHostPort(redisPort)

	client := connect(ctx, t, pool, resource, addr)

	t.Cleanup(func() {
		_ = client.Close()

		if err = pool.Purge(resource); err != nil {
			t.Errorf("could not purge resource: %v", err)
		}
	})

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Storage: client,
		Addr:    addr,
	}
}

func startRedis(t *testing.T, pool *dockertest.Pool) *dockertest.Resource {
	t.Helper()

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(config *docker.HostConfig) {
		// stopped container goes away by itself
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis: %v", err)
	}

	// hard kill if the test binary dies before cleanup
	_ = resource.Expire(expireSeconds)

	return resource
}

func connect(ctx context.Context, t *testing.T, pool *dockertest.Pool, resource *dockertest.Resource, addr string) *redis.Client {
	t.Helper()

	var client *redis.Client
	// the server in the container may need a moment before it accepts connections
	err := pool.Retry(func() error {
		client = redis.NewClient(&redis.Options{Addr: addr})
		if pingErr := client.Ping(ctx).Err(); pingErr != nil {
			_ = client.Close()
			return pingErr
		}
		return nil
	})
	if err != nil {
		if purgeErr := pool.Purge(resource); purgeErr != nil {
			t.Errorf("could not purge resource: %v", purgeErr)
		}
		t.Fatalf("could not connect to redis: %v", err)
	}

	if err = client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush database: %v", err)
	}

	return client
}
