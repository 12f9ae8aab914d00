package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/feroxapp/ferox/pkg/feroxsdk"
)

/*
 * Common constants and helper functions for API service end-to-end tests.
 * This includes container setup, a Discord bridge stub, and account helpers.
 */

const (
	testImageName = "ferox-api-test:latest"

	testUsername = "alice"
	testPassword = "CorrectHorse1!"
	testEmail    = "alice@example.com"

	testDiscordID       = "190000000000000001"
	testDiscordUsername = "alice#0001"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building API Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up API Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/api/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// botStub stands in for the Discord bridge. It records every recovery code
// the API asks it to deliver.
type botStub struct {
	server *httptest.Server

	mu        sync.Mutex
	delivered []botDelivery
	failNext  bool
}

type botDelivery struct {
	DiscordID string `json:"discord_id"`
	Code      string `json:"code"`
}

func newBotStub(t *testing.T) *botStub {
	t.Helper()

	stub := &botStub{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /send-recovery-code", func(w http.ResponseWriter, r *http.Request) {
		var d botDelivery
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		stub.mu.Lock()
		defer stub.mu.Unlock()
		if stub.failNext {
			stub.failNext = false
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		stub.delivered = append(stub.delivered, d)
		w.WriteHeader(http.StatusOK)
	})

	stub.server = httptest.NewServer(mux)
	t.Cleanup(stub.server.Close)
	return stub
}

func (s *botStub) port(t *testing.T) int {
	t.Helper()
	_, portStr, err := net.SplitHostPort(s.server.Listener.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return port
}

func (s *botStub) lastDelivery(t *testing.T) botDelivery {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.delivered, "expected at least one delivered recovery code")
	return s.delivered[len(s.delivered)-1]
}

func (s *botStub) setFailNext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = true
}

// setupAPIContainer starts the API service in a container wired to a bridge
// stub on the host, and returns an SDK client plus the stub.
//
// Rate limits are raised well above production defaults; tests hammer the
// same endpoints from one IP and would otherwise trip the strict limiter.
func setupAPIContainer(t *testing.T) (*feroxsdk.Client, *botStub) {
	t.Helper()
	ctx := context.Background()

	stub := newBotStub(t)
	stubPort := stub.port(t)

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		HostAccessPorts: []int{stubPort},
		Env: map[string]string{
			"FEROX_DATABASE_FILE": "/tmp/ferox.db",
			"FEROX_PEPPER_FILE":   "/tmp/pepper",
			"FEROX_ISSUER":        "ferox-api",
			"FEROX_BOT_URL":       fmt.Sprintf("http://%s:%d", testcontainers.HostInternal, stubPort),
			"FEROX_NUM_KEYS":      "1",
			"ENV":                 "test",
			"LOG_LEVEL":           "info",
			"LOG_FORMAT":          "json",
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
	return feroxsdk.NewClient(baseURL), stub
}

// setupAPIContainerWithDefaultRateLimits starts the API service with DEFAULT
// rate limits. This is specifically for testing that rate limiting works.
// Other tests should use setupAPIContainer() which relaxes the limits.
func setupAPIContainerWithDefaultRateLimits(t *testing.T) *feroxsdk.Client {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"FEROX_DATABASE_FILE": "/tmp/ferox.db",
			"FEROX_PEPPER_FILE":   "/tmp/pepper",
			"FEROX_ISSUER":        "ferox-api",
			"FEROX_NUM_KEYS":      "1",
			"ENV":                 "test",
			"LOG_LEVEL":           "info",
			"LOG_FORMAT":          "json",
			// NOTE: No rate limit overrides - production defaults on purpose
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return feroxsdk.NewClient(fmt.Sprintf("http://%s:%s", host, mappedPort.Port()))
}

// createAccount registers an account and returns it with its activation code.
func createAccount(t *testing.T, client *feroxsdk.Client, username, password, email string) feroxsdk.Account {
	t.Helper()

	account, err := client.CreateAccount(t.Context(), feroxsdk.CreateAccountRequest{
		Username: username,
		Password: password,
		Email:    email,
	})
	require.NoError(t, err)
	require.NotEmpty(t, account.ID)
	require.NotNil(t, account.ActivationCode)
	return account
}

// linkAccount redeems the account's activation code as a Discord user.
func linkAccount(t *testing.T, client *feroxsdk.Client, code, discordID string) feroxsdk.Account {
	t.Helper()

	account, err := client.LinkDiscord(t.Context(), feroxsdk.LinkRequest{
		Code:            code,
		DiscordID:       discordID,
		DiscordUsername: testDiscordUsername,
	})
	require.NoError(t, err)
	require.True(t, account.IsActive)
	return account
}
