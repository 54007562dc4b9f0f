package envconfig

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Cleanup(LoadConfig)

	t.Setenv("DG_DEBUG", "")
	LoadConfig()
	require.False(t, Debug)
	t.Setenv("DG_DEBUG", "false")
	LoadConfig()
	require.False(t, Debug)
	t.Setenv("DG_DEBUG", "1")
	LoadConfig()
	require.True(t, Debug)
	// unparseable values still turn debugging on
	t.Setenv("DG_DEBUG", "on")
	LoadConfig()
	require.True(t, Debug)

	t.Setenv("DG_LIBRARY", "\"/opt/dream-go/libgo.so\"")
	LoadConfig()
	require.Equal(t, "/opt/dream-go/libgo.so", Library)

	t.Setenv("DG_LIBRARY_PATH", strings.Join([]string{"/opt/dream-go", "/usr/local/lib"}, string(os.PathListSeparator)))
	LoadConfig()
	require.Equal(t, []string{"/opt/dream-go", "/usr/local/lib"}, LibraryPath)

	t.Setenv("DG_NUM_PARALLEL", "4")
	LoadConfig()
	require.Equal(t, 4, NumParallel)
	t.Setenv("DG_NUM_PARALLEL", "-2")
	LoadConfig()
	require.Equal(t, 0, NumParallel)
	t.Setenv("DG_NUM_PARALLEL", "nope")
	LoadConfig()
	require.Equal(t, 0, NumParallel)
}

func TestLogLevel(t *testing.T) {
	t.Cleanup(LoadConfig)

	t.Setenv("DG_DEBUG", "")
	LoadConfig()
	assert.Equal(t, slog.LevelInfo, LogLevel())

	t.Setenv("DG_DEBUG", "1")
	LoadConfig()
	assert.Equal(t, slog.LevelDebug, LogLevel())
}

func TestAsMapNamesMatchKeys(t *testing.T) {
	for k, v := range AsMap() {
		assert.Equal(t, k, v.Name)
		assert.NotEmpty(t, v.Description)
	}
	assert.Len(t, Values(), len(AsMap()))
}
