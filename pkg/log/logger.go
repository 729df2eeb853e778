package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"github.com/rs/zerolog/log"
)

const (
	diodeSize         = 1000
	diodePollInterval = 5 * time.Millisecond
)

// NewContextWithLogger installs the global console logger and returns a
// context carrying it together with a flush function for the diode writer.
func NewContextWithLogger(ctx context.Context, debug bool) (context.Context, func()) {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return ""
	}

	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Non-blocking ring buffer in front of stdout
	wr := diode.NewWriter(os.Stdout, diodeSize, diodePollInterval, func(missed int) {
		fmt.Printf("Logger Dropped %d messages\n", missed)
	})

	log.Logger = newConsoleLogger(wr)

	return log.With().Logger().WithContext(ctx), func() {
		wr.Close()
	}
}

// NewTestContext returns a context with a logger writing to w, for tests
// that assert on log output or want it silenced with io.Discard.
func NewTestContext(ctx context.Context, w io.Writer) context.Context {
	logger := zerolog.New(w).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

func newConsoleLogger(w io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.DateTime,
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		},
	}

	return zerolog.New(output).
		With().
		Timestamp().
		CallerWithSkipFrameCount(2).
		Logger()
}

func FromCtx(ctx context.Context) *zerolog.Logger {
	return log.Ctx(ctx)
}
