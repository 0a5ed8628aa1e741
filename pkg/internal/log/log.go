package log

import (
	"fmt"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/kamrankamilli/vncview/pkg/config"
)

var logger *logrus.Logger

func init() {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05",
	})
}

func formatNormal(args ...interface{}) string {
	_, file, line, _ := runtime.Caller(2)
	out := fmt.Sprintf("%s:%d: ", path.Base(file), line)
	out += fmt.Sprint(args...)
	return out
}

func formatFormat(fstr string, args ...interface{}) string {
	_, file, line, _ := runtime.Caller(2)
	out := fmt.Sprintf("%s:%d: ", path.Base(file), line)
	out += fmt.Sprintf(fstr, args...)
	return out
}

func Info(args ...interface{}) { logger.Info(formatNormal(args...)) }
func Infof(f string, args ...interface{}) {
	logger.Info(formatFormat(f, args...))
}
func Warning(args ...interface{}) { logger.Warning(formatNormal(args...)) }
func Warningf(f string, args ...interface{}) {
	logger.Warning(formatFormat(f, args...))
}
func Error(args ...interface{}) { logger.Error(formatNormal(args...)) }
func Errorf(f string, args ...interface{}) {
	logger.Error(formatFormat(f, args...))
}
func Debug(args ...interface{}) {
	if config.Debug {
		logger.Debug(formatNormal(args...))
	}
}
func Debugf(f string, args ...interface{}) {
	if config.Debug {
		logger.Debug(formatFormat(f, args...))
	}
}
