package logger

import (
	"io"
	"path/filepath"

	"go.trai.ch/ulink/internal/core/domain"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewFileSink returns a size-rotated log file. Relative paths resolve against projectDir.
// An empty file name disables the sink and returns nil.
func NewFileSink(settings domain.LogSettings, projectDir string) io.WriteCloser {
	if settings.File == "" {
		return nil
	}

	path := settings.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(projectDir, path)
	}

	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   settings.Compress,
	}
}
