package starnav

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// NewLogger builds a logfmt logger tagged with "subsys", mirroring the
// way each concern (search, ephemeris, config) stamps its own log
// lines without a global logger instance.
func NewLogger(subsys string) kitlog.Logger {
	l := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	return kitlog.With(l, "subsys", subsys, "ts", kitlog.DefaultTimestampUTC)
}
