package estatekit

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/estateops/estatekit/storage"
	"github.com/estateops/estatekit/token"
)

// Builder defines a public type used by estatekit APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config

	httpClient *http.Client
	backend    storage.Storage
	redis      *redis.Client
	navigator  Navigator
	logger     *zap.Logger
	sink       EventSink

	built bool
}

// New describes the new operation and its observable behavior.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithBaseURL describes the withbaseurl operation and its observable behavior.
func (b *Builder) WithBaseURL(baseURL string) *Builder {
	b.config.API.BaseURL = baseURL
	return b
}

// WithHTTPClient describes the withhttpclient operation and its observable behavior.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithStorage describes the withstorage operation and its observable behavior.
func (b *Builder) WithStorage(backend storage.Storage) *Builder {
	b.backend = backend
	return b
}

// WithRedis selects a Redis-backed storage backend, namespaced per
// Config.Storage.Namespace. Ignored when WithStorage was called.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithNavigator describes the withnavigator operation and its observable behavior.
func (b *Builder) WithNavigator(navigator Navigator) *Builder {
	b.navigator = navigator
	return b
}

// WithLogger describes the withlogger operation and its observable behavior.
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// WithEventSink describes the witheventsink operation and its observable behavior.
func (b *Builder) WithEventSink(sink EventSink) *Builder {
	b.sink = sink
	b.config.Events.Enabled = true
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration and assembles the client, its token
// store, resource groupings, metrics, event dispatcher, and session manager.
// A builder is single-use. Build performs no I/O; the session manager's
// storage read happens on [SessionManager.Initialize].
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, ErrBuilderReused
	}
	b.built = true

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	backend := b.backend
	if backend == nil && b.redis != nil {
		backend = storage.NewRedis(b.redis, cfg.Storage.Namespace)
	}
	if backend == nil && cfg.Storage.FilePath != "" {
		fileBackend, err := storage.NewFile(cfg.Storage.FilePath)
		if err != nil {
			return nil, err
		}
		backend = fileBackend
	}
	if backend == nil {
		backend = storage.NewMemory()
	}

	logger := b.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	navigator := b.navigator
	if navigator == nil {
		navigator = NoOpNavigator{}
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: time.Duration(cfg.API.RequestTimeout)}
	}

	client := &Client{
		baseURL:   cfg.API.BaseURL,
		apiPrefix: cfg.API.Prefix,
		userAgent: cfg.API.UserAgent,
		http:      httpClient,
		tokens:    token.NewStore(backend),
		metrics:   NewMetrics(cfg.Metrics),
		events:    newEventDispatcher(cfg.Events, b.sink),
		log:       logger,
	}
	newResourceAPIs(client)
	client.session = newSessionManager(client, cfg.Session, navigator)

	return client, nil
}
