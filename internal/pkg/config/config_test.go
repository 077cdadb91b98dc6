package config

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("SCAN_REDIRECT_BASE", "https://stowage.example/")

	cfg, err := Load(context.Background(), discardLogger())
	require.NoError(t, err)

	assert.Equal(t, "stowage", cfg.Database.Name)
	assert.Equal(t, "https://stowage.example", cfg.Scan.RedirectBase)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.False(t, cfg.Security.AuthRequired)
	assert.Equal(t, 10, cfg.FileProcessing.PhotoMaxSizeMB)
	assert.Equal(t, map[string]int{"critical": 6, "default": 3, "low": 1}, cfg.Asynq.Queues)
}

func TestLoad_ProductionRequiresSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load(context.Background(), discardLogger())
	require.Error(t, err)
}

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{Host: "localhost", Port: "5432", Name: "stowage", MaxConnections: 5, MinConnections: 1},
		Redis:    RedisConfig{PoolSize: 10},
		Security: SecurityConfig{
			JWTSecret:         "0123456789abcdef0123456789abcdef",
			BcryptCost:        10,
			RateLimitRequests: 100,
			AllowedOrigins:    []string{"https://stowage.example"},
		},
		FileProcessing: FileProcessingConfig{ImportMaxSizeMB: 20, PhotoMaxSizeMB: 10},
		Server:         ServerConfig{Port: "8080"},
		Scan:           ScanConfig{RedirectBase: "https://stowage.example"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*Config)
		errorContains string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:          "missing_database_name",
			mutate:        func(c *Config) { c.Database.Name = "" },
			errorContains: "Database.Name",
		},
		{
			name:          "relative_redirect_base",
			mutate:        func(c *Config) { c.Scan.RedirectBase = "/containers" },
			errorContains: "scan redirect base",
		},
		{
			name: "rabbitmq_without_url",
			mutate: func(c *Config) {
				c.RabbitMQ.Enabled = true
				c.RabbitMQ.URL = ""
			},
			errorContains: "rabbitmq url",
		},
		{
			name: "short_jwt_secret_when_auth_required",
			mutate: func(c *Config) {
				c.Security.AuthRequired = true
				c.Security.JWTSecret = "short"
			},
			errorContains: "at least 32 characters",
		},
		{
			name: "production_without_ssl",
			mutate: func(c *Config) {
				c.App.Environment = "production"
				c.Database.SSLMode = "disable"
				c.Security.AuthRequired = true
				c.Security.SecureHeaders = true
			},
			errorContains: "SSL must be enabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.errorContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

type staticSecrets map[string]string

func (s staticSecrets) GetSecrets(_ context.Context, keys []string) (map[string]string, error) {
	out := map[string]string{}
	for _, k := range keys {
		if v, ok := s[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func TestApplySecrets(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Password = "from-env"

	err := ApplySecrets(context.Background(), cfg, staticSecrets{SecretJWT: "vault-jwt"})
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "vault-jwt", cfg.Security.JWTSecret)
}

func TestApplySecrets_FromEnvironment(t *testing.T) {
	cfg := validConfig()
	cfg.RabbitMQ.URL = "amqp://localhost:5672/"
	t.Setenv(SecretRabbitMQURL, "amqp://broker.internal:5672/")
	t.Setenv(SecretJWT, "")

	require.NoError(t, ApplySecrets(context.Background(), cfg, NewEnvSecretsManager()))

	assert.Equal(t, "amqp://broker.internal:5672/", cfg.RabbitMQ.URL)
	assert.Equal(t, validConfig().Security.JWTSecret, cfg.Security.JWTSecret)
}

type fakeSecretClient struct {
	calls  int
	secret *string
	err    error
}

func (f *fakeSecretClient) GetSecretValue(context.Context, *secretsmanager.GetSecretValueInput, ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: f.secret}, nil
}

func TestAWSSecretsManager_CachesWithinTTL(t *testing.T) {
	client := &fakeSecretClient{secret: aws.String(`{"DB_PASSWORD":"pw","JWT_SECRET":"jwt"}`)}
	sm := newAWSSecretsManager(client, "stowage/prod", discardLogger())

	got, err := sm.GetSecrets(context.Background(), []string{SecretDatabasePassword})
	require.NoError(t, err)
	assert.Equal(t, "pw", got[SecretDatabasePassword])

	got, err = sm.GetSecrets(context.Background(), []string{SecretJWT})
	require.NoError(t, err)
	assert.Equal(t, "jwt", got[SecretJWT])
	assert.Equal(t, 1, client.calls)
}

func TestAWSSecretsManager_Errors(t *testing.T) {
	sm := newAWSSecretsManager(&fakeSecretClient{err: errors.New("access denied")}, "stowage/prod", discardLogger())
	_, err := sm.GetSecrets(context.Background(), []string{SecretJWT})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")

	sm = newAWSSecretsManager(&fakeSecretClient{secret: aws.String("not json")}, "stowage/prod", discardLogger())
	_, err = sm.GetSecrets(context.Background(), []string{SecretJWT})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse secret JSON")
}
