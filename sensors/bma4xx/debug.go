package bma4xx

import (
	"context"
	"log/slog"
)

func (bma *BMA4xx) logattrs(lvl slog.Level, msg string, attrs ...slog.Attr) {
	if bma.log != nil {
		bma.log.LogAttrs(context.Background(), lvl, msg, attrs...)
	}
}

func (bma *BMA4xx) debug(msg string, attrs ...slog.Attr) {
	bma.logattrs(slog.LevelDebug, msg, attrs...)
}

func (bma *BMA4xx) info(msg string, attrs ...slog.Attr) {
	bma.logattrs(slog.LevelInfo, msg, attrs...)
}

func (bma *BMA4xx) logerr(msg string, attrs ...slog.Attr) {
	bma.logattrs(slog.LevelError, msg, attrs...)
}
