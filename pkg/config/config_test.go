package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Set test environment variables
	os.Setenv("SERVER_PORT", "8080")
	os.Setenv("DB_HOST", "localhost")
	os.Setenv("DB_PORT", "5432")
	os.Setenv("DB_USER", "testuser")
	os.Setenv("DB_PASSWORD", "testpass")
	os.Setenv("DB_NAME", "testdb")
	os.Setenv("REDIS_HOST", "localhost")
	os.Setenv("REDIS_PORT", "6379")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("ADMIN_USERNAME", "boss")
	os.Setenv("ADMIN_PASSWORD", "bosspass")
	os.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	os.Setenv("PUBLIC_DOMAIN", "https://example.com")
	os.Setenv("GATEWAY_TIMEOUT_SECONDS", "5")

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Assertions
	assert.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "testuser", cfg.DBUser)
	assert.Equal(t, "testpass", cfg.DBPassword)
	assert.Equal(t, "testdb", cfg.DBName)
	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "boss", cfg.AdminUsername)
	assert.Equal(t, "bosspass", cfg.AdminPassword)
	assert.Equal(t, "sk_test_123", cfg.StripeSecretKey)
	assert.Equal(t, "https://example.com", cfg.PublicDomain)
	assert.Equal(t, 5, cfg.GatewayTimeoutSeconds)

	// Cleanup
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("DB_HOST")
	os.Unsetenv("DB_PORT")
	os.Unsetenv("DB_USER")
	os.Unsetenv("DB_PASSWORD")
	os.Unsetenv("DB_NAME")
	os.Unsetenv("REDIS_HOST")
	os.Unsetenv("REDIS_PORT")
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("ADMIN_USERNAME")
	os.Unsetenv("ADMIN_PASSWORD")
	os.Unsetenv("STRIPE_SECRET_KEY")
	os.Unsetenv("PUBLIC_DOMAIN")
	os.Unsetenv("GATEWAY_TIMEOUT_SECONDS")
}

func TestLoadConfig_Defaults(t *testing.T) {
	// Clear environment variables
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("DB_NAME")
	os.Unsetenv("ADMIN_USERNAME")
	os.Unsetenv("GATEWAY_TIMEOUT_SECONDS")

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "boostmarket", cfg.DBName)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, 10, cfg.GatewayTimeoutSeconds)
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	os.Setenv("GATEWAY_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Falls back to the default when the value cannot be parsed
	assert.Equal(t, 10, cfg.GatewayTimeoutSeconds)

	os.Unsetenv("GATEWAY_TIMEOUT_SECONDS")
}
