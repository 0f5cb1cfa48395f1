package environment_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mashrafi141/my-judge-webapp2/internal/environment"
)

func clearJudgeEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"JUDGE_URL", "JUDGE_USER_ID", "JUDGE_LANG",
		"JUDGE_POLL_INTERVAL_MS", "JUDGE_JOB_TIMEOUT_MS",
		"NATS_URL", "NATS_SUBJECT", "SQS_QUEUE_URL",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestReadConfigDefaults(t *testing.T) {
	clearJudgeEnv(t)
	t.Setenv("JUDGE_URL", "http://judge.local")

	cfg, err := environment.ReadConfig("")
	require.NoError(t, err)
	require.Equal(t, "http://judge.local", cfg.ServerURL)
	require.Equal(t, environment.DefaultUserID, cfg.UserID)
	require.Equal(t, environment.DefaultPollInterval, cfg.PollInterval)
	require.Equal(t, environment.DefaultJobTimeout, cfg.JobTimeout)
}

func TestReadConfigRequiresServerURL(t *testing.T) {
	clearJudgeEnv(t)

	_, err := environment.ReadConfig("")
	require.Error(t, err)
}

func TestReadConfigEnvOverridesFile(t *testing.T) {
	clearJudgeEnv(t)

	path := filepath.Join(t.TempDir(), "judgecli.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"server_url = \"http://from-file\"\nuser_id = \"alice\"\npoll_interval_ms = 250\n",
	), 0644))

	t.Setenv("JUDGE_URL", "http://from-env")
	t.Setenv("JUDGE_JOB_TIMEOUT_MS", "5000")

	cfg, err := environment.ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "http://from-env", cfg.ServerURL)
	require.Equal(t, "alice", cfg.UserID)
	require.Equal(t, 250*time.Millisecond, cfg.PollInterval)
	require.Equal(t, 5*time.Second, cfg.JobTimeout)
}

func TestReadConfigMissingFileIsIgnored(t *testing.T) {
	clearJudgeEnv(t)
	t.Setenv("JUDGE_URL", "http://judge.local")

	cfg, err := environment.ReadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, "http://judge.local", cfg.ServerURL)
}
