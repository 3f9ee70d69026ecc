package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lidofinance/betfair-aping/internal/pkg/betfair"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func Test_load(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, c AppConfig)
		wantErr bool
	}{
		{
			name: "defaults",
			content: `BETFAIR_APP_KEY=key
`,
			check: func(t *testing.T, c AppConfig) {
				assert.Equal(t, "key", c.AppKey)
				assert.Equal(t, betfair.DefaultBettingURL, c.BettingURL)
				assert.Equal(t, betfair.DefaultIdentityURL, c.IdentityURL)
				assert.Equal(t, uint(8080), c.Port)
				assert.Equal(t, 5*time.Second, c.PollInterval)
				assert.Equal(t, 15*time.Minute, c.KeepAliveInterval)
				assert.Empty(t, c.MarketIDs)
			},
		},
		{
			name: "market ids and overrides",
			content: `BETFAIR_APP_KEY=key
MARKET_IDS=1.100, 1.200,,1.300
POLL_INTERVAL=2s
BETFAIR_REQUESTS_PER_SECOND=4.5
PORT=9000
`,
			check: func(t *testing.T, c AppConfig) {
				assert.Equal(t, []string{"1.100", "1.200", "1.300"}, c.MarketIDs)
				assert.Equal(t, 2*time.Second, c.PollInterval)
				assert.Equal(t, 4.5, c.RequestsPerSecond)
				assert.Equal(t, uint(9000), c.Port)
			},
		},
		{
			name:    "missing app key",
			content: "ENV=local\n",
			wantErr: true,
		},
		{
			name: "zero poll interval",
			content: `BETFAIR_APP_KEY=key
POLL_INTERVAL=0s
`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := load(viper.New(), writeEnv(t, tt.content))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			tt.check(t, got.AppConfig)
		})
	}
}
