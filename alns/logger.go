package alns

import (
	"github.com/rs/zerolog"
	"github.com/walnuthoram2/ALNS/alnscore"
)

// ZerologLogger adapts a zerolog.Logger to alnscore.Logger, the only place
// in this module a concrete logging library is imported. Leaf and family
// packages (alnscore, selection, acceptance) depend only on the narrow
// alnscore.Logger interface.
type ZerologLogger struct {
	Z zerolog.Logger
}

// NewZerologLogger wraps z as an alnscore.Logger.
func NewZerologLogger(z zerolog.Logger) ZerologLogger {
	return ZerologLogger{Z: z}
}

// Warn implements alnscore.Logger.
func (l ZerologLogger) Warn(msg string, fields map[string]any) {
	event := l.Z.Warn()
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}
