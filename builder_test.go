package estatekit

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/estateops/estatekit/storage"
)

func TestBuildDefaults(t *testing.T) {
	client, err := New().WithBaseURL("https://api.estateops.io").Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer client.Close()

	if client.Session() == nil {
		t.Fatal("session manager missing")
	}
	if client.Auth() == nil || client.Properties() == nil || client.Staff() == nil {
		t.Fatal("resource groupings missing")
	}
	if !client.Session().Snapshot().IsLoading {
		t.Fatal("fresh session not in the loading state")
	}
	if client.EventsDropped() != 0 {
		t.Fatal("events dropped on a fresh client")
	}
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	if _, err := New().Build(); err == nil {
		t.Fatal("missing base url accepted")
	}
	if _, err := New().WithBaseURL("not a url").Build(); err == nil {
		t.Fatal("relative base url accepted")
	}
}

func TestBuilderIsSingleUse(t *testing.T) {
	b := New().WithBaseURL("https://api.estateops.io")

	if _, err := b.Build(); err != nil {
		t.Fatalf("first Build: %v", err)
	}
	if _, err := b.Build(); err != ErrBuilderReused {
		t.Fatalf("second Build = %v, want ErrBuilderReused", err)
	}
}

func TestBuildExplicitStorageWinsOverRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })

	backend := storage.NewMemory()
	client, err := New().
		WithBaseURL("https://api.estateops.io").
		WithStorage(backend).
		WithRedis(redisClient).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer client.Close()

	backend.Set("auth_token", "tok-1")
	backend.Set("auth_user", `{"id":"7","email":"o@x.io","role":"owner"}`)

	client.Session().Initialize()

	if !client.Session().Snapshot().IsAuthenticated {
		t.Fatal("explicit backend was not used")
	}
	if len(mr.Keys()) != 0 {
		t.Fatal("redis written despite an explicit backend")
	}
}

func TestBuildRedisBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })

	cfg := defaultConfig()
	cfg.API.BaseURL = "https://api.estateops.io"
	cfg.Storage.Namespace = "profile-x"

	client, err := New().WithConfig(cfg).WithRedis(redisClient).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer client.Close()

	mr.Set("profile-x:auth_token", "tok-1")
	mr.Set("profile-x:auth_user", `{"id":"7","email":"o@x.io","role":"owner"}`)

	client.Session().Initialize()

	if !client.Session().Snapshot().IsAuthenticated {
		t.Fatal("session not restored from redis")
	}
}

func TestBuildFileBackendFromConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.API.BaseURL = "https://api.estateops.io"
	cfg.Storage.FilePath = filepath.Join(t.TempDir(), "tokens.json")

	first, err := New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer first.Close()

	// persist a session through the token store, then reopen under a second
	// client sharing the same path
	firstBackend, err := storage.NewFile(cfg.Storage.FilePath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	firstBackend.Set("auth_token", "tok-1")
	firstBackend.Set("auth_user", `{"id":"7","email":"o@x.io","role":"owner"}`)

	second, err := New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("second Build: %v", err)
	}
	defer second.Close()

	second.Session().Initialize()
	if !second.Session().Snapshot().IsAuthenticated {
		t.Fatal("session not restored from the file store")
	}
}

func TestWithEventSinkEnablesDispatch(t *testing.T) {
	sink := NewChannelSink(8)
	client, err := New().
		WithBaseURL("https://api.estateops.io").
		WithEventSink(sink).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	client.Session().Logout(context.Background())
	client.Close()

	select {
	case event := <-sink.Events():
		if event.Type != EventLogout {
			t.Fatalf("event = %+v", event)
		}
		if event.Timestamp.IsZero() {
			t.Fatal("event not timestamped")
		}
	default:
		t.Fatal("no event delivered")
	}
}
