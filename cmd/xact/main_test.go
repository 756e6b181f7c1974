package main

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/xact"
	"github.com/helixml/xact/domain/timespan"
	"github.com/helixml/xact/internal/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func dbFlag(t *testing.T) string {
	t.Helper()
	return "--db-url=sqlite:///" + filepath.Join(t.TempDir(), "nested", "xact.db")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "xact version dev")
	assert.Contains(t, out, "commit: unknown")
}

func TestSpanCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"span", "parse", "1.2:3:4.5"}, "1.02:03:04.5\n"},
		{[]string{"span", "parse", "--ticks", "00:00:01"}, "10000000\n"},
		{[]string{"span", "format", "36000000000"}, "01:00:00\n"},
		{[]string{"--layout", "G", "span", "format", "36000000000"}, "0:01:00:00.0000000\n"},
		{[]string{"span", "add", "00:59:30", "00:00:45"}, "01:00:15\n"},
		{[]string{"span", "sub", "00:00:01", "00:00:03"}, "-00:00:02\n"},
		{[]string{"span", "mul", "00:00:10", "1.5"}, "00:00:15\n"},
		{[]string{"span", "div", "00:00:10", "4"}, "00:00:02.5\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSpanErrors(t *testing.T) {
	_, err := run(t, "span", "parse", "tomorrow")
	assert.ErrorIs(t, err, timespan.ErrFormat)

	_, err = run(t, "span", "add", "10675199.00:00:00", "10675199.00:00:00")
	assert.ErrorIs(t, err, timespan.ErrOverflow)

	_, err = run(t, "span", "div", "00:00:10", "0")
	assert.ErrorIs(t, err, timespan.ErrDivideByZero)

	_, err = run(t, "span", "format", "ten")
	assert.Error(t, err)

	_, err = run(t, "span", "add", "00:00:01")
	assert.Error(t, err)
}

func TestTextRender(t *testing.T) {
	out, err := run(t, "text", "render", "--line", "title", "--line", "sub", "--part", "a", "--part", "b")
	require.NoError(t, err)
	assert.Equal(t, "title\nsub\na\nb\n", out)

	out, err = run(t, "text", "render", "--raw", "--line", "title", "--part", "a", "--part", "b")
	require.NoError(t, err)
	assert.Equal(t, "title\nab\n", out)
}

func TestSeqRange(t *testing.T) {
	out, err := run(t, "seq", "range", "1", "5", "--select", "square", "--desc")
	require.NoError(t, err)
	assert.Equal(t, "16\n9\n4\n1\n", out)

	out, err = run(t, "seq", "range", "0", "7", "--even", "--select", "double")
	require.NoError(t, err)
	assert.Equal(t, "0\n4\n8\n12\n", out)

	out, err = run(t, "seq", "range", "5", "5")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = run(t, "seq", "range", "1", "5", "--select", "cube")
	assert.Error(t, err)
}

func TestLapsWorkflow(t *testing.T) {
	db := dbFlag(t)

	out, err := run(t, db, "laps", "add", "warmup", "00:05:00")
	require.NoError(t, err)
	assert.Equal(t, "1\twarmup\t00:05:00\n", out)

	_, err = run(t, db, "laps", "add", "tempo", "00:20:30.5")
	require.NoError(t, err)

	out, err = run(t, db, "laps", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "warmup")
	assert.Contains(t, lines[2], "tempo")

	out, err = run(t, db, "laps", "list", "--newest", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "tempo")
	assert.NotContains(t, out, "warmup")

	out, err = run(t, db, "laps", "report")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "2 laps\n"))
	assert.Contains(t, out, "00:25:30.5")

	_, err = run(t, db, "laps", "rm", "1")
	require.NoError(t, err)

	out, err = run(t, db, "laps", "report", "--like", "warm%")
	require.NoError(t, err)
	assert.Equal(t, "0 laps\n", out)

	_, err = run(t, db, "laps", "rm", "1")
	assert.Error(t, err)

	_, err = run(t, db, "laps", "add", "", "00:00:01")
	assert.Error(t, err)
}

func TestLapsExportImport(t *testing.T) {
	source := dbFlag(t)
	_, err := run(t, source, "laps", "add", "swim", "01:02:03")
	require.NoError(t, err)

	archive := filepath.Join(t.TempDir(), "laps.yaml")
	_, err = run(t, source, "laps", "export", "--format", "yaml", "-o", archive)
	require.NoError(t, err)

	data, err := os.ReadFile(archive)
	require.NoError(t, err)
	assert.Contains(t, string(data), "swim")

	target := dbFlag(t)
	out, err := run(t, target, "laps", "import", "--format", "yaml", archive)
	require.NoError(t, err)
	assert.Equal(t, "imported 1 laps\n", out)

	out, err = run(t, target, "laps", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "01:02:03")
}

func TestStorageOption_SQLiteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b.db")

	for _, url := range []string{"sqlite:" + path, "sqlite:///" + path} {
		cfg := config.NewAppConfigWithOptions(config.WithDBURL(url))
		client, err := xact.New(storageOption(cfg))
		require.NoError(t, err, url)
		require.NoError(t, client.Close())

		_, err = os.Stat(path)
		assert.NoError(t, err, url)
	}

	assert.False(t, isSQLite("postgres://localhost/xact"))
}

func TestRunServe_ShutsDownOnCancel(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	dir := t.TempDir()
	cfg := config.NewAppConfigWithOptions(
		config.WithHost("127.0.0.1"),
		config.WithPort(port),
		config.WithDataDir(dir),
		config.WithShutdownTimeout(time.Second),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runServe(ctx, cfg, nopLogger()) }()

	url := "http://127.0.0.1:" + strconv.Itoa(port) + "/healthz"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
