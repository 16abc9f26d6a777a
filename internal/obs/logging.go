// Package obs contains observability utilities such as logging.
package obs

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the global structured logger used by the service. It stays a
// no-op until InitLogger runs, so library code can log unconditionally.
var Logger = zerolog.Nop()

// InitLogger initializes the global Logger with JSON output at info level.
func InitLogger() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
