package util

import (
	"github.com/pkg/errors"
	"strings"
	"sync/atomic"
)

type LogLevel int32

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

type LogCategory int32

const (
	LogVoxel LogCategory = 1 << iota
	LogMesh
	LogSystem
	LogOpenGL
	LogIO

	LogAll = LogVoxel | LogMesh | LogSystem | LogOpenGL | LogIO
)

var (
	globalLogLevel      atomic.Int32
	globalLogCategories atomic.Int32
	logSink             atomic.Value
)

func init() {
	globalLogLevel.Store(int32(LogLevelInfo))
	globalLogCategories.Store(int32(LogAll))
}

func SetLogLevel(lvl LogLevel) {
	globalLogLevel.Store(int32(lvl))
}

func SetLogCategories(cats LogCategory) {
	globalLogCategories.Store(int32(cats))
}

// SetLogSink redirects log output, nil restores println.
func SetLogSink(sink func(string)) {
	logSink.Store(sinkHolder{sink})
}

type sinkHolder struct {
	fn func(string)
}

func ParseLogLevel(name string) (LogLevel, error) {
	switch strings.ToLower(name) {
	case "error":
		return LogLevelError, nil
	case "warning", "warn":
		return LogLevelWarning, nil
	case "info", "":
		return LogLevelInfo, nil
	case "debug":
		return LogLevelDebug, nil
	}
	return LogLevelInfo, errors.Errorf("unknown log level %q", name)
}

func ParseLogCategories(names []string) (LogCategory, error) {
	if len(names) == 0 {
		return LogAll, nil
	}
	var cats LogCategory
	for _, name := range names {
		switch strings.ToLower(name) {
		case "voxel":
			cats |= LogVoxel
		case "mesh":
			cats |= LogMesh
		case "system":
			cats |= LogSystem
		case "opengl", "gl":
			cats |= LogOpenGL
		case "io":
			cats |= LogIO
		case "all":
			cats |= LogAll
		default:
			return 0, errors.Errorf("unknown log category %q", name)
		}
	}
	return cats, nil
}

func log(cat LogCategory, lvl LogLevel, txt string) {
	if int32(lvl) > globalLogLevel.Load() {
		return
	}
	if globalLogCategories.Load()&int32(cat) == 0 {
		return
	}
	if holder, ok := logSink.Load().(sinkHolder); ok && holder.fn != nil {
		holder.fn(txt)
		return
	}
	println(txt)
}

func LogVoxelInfo(txt string) {
	log(LogVoxel, LogLevelInfo, txt)
}

func LogVoxelDebug(txt string) {
	log(LogVoxel, LogLevelDebug, txt)
}

func LogVoxelError(txt string) {
	log(LogVoxel, LogLevelError, txt)
}

func LogMeshInfo(txt string) {
	log(LogMesh, LogLevelInfo, txt)
}

func LogMeshDebug(txt string) {
	log(LogMesh, LogLevelDebug, txt)
}

func LogMeshError(txt string) {
	log(LogMesh, LogLevelError, txt)
}

func LogSystemInfo(txt string) {
	log(LogSystem, LogLevelInfo, txt)
}

func LogSystemError(txt string) {
	log(LogSystem, LogLevelError, txt)
}

func LogIOInfo(txt string) {
	log(LogIO, LogLevelInfo, txt)
}

func LogIOError(txt string) {
	log(LogIO, LogLevelError, txt)
}

func LogGlInfo(txt string) {
	log(LogOpenGL, LogLevelInfo, txt)
}

func LogGlDebug(txt string) {
	log(LogOpenGL, LogLevelDebug, txt)
}

func LogGlError(txt string) {
	log(LogOpenGL, LogLevelError, txt)
}

func LogGlWarning(txt string) {
	log(LogOpenGL, LogLevelWarning, txt)
}
