package log

import (
	"encoding/json"
	"fmt"
	"path"

	"github.com/astaxie/beego/logs"
)

type logConfig struct {
	Filename string `json:"filename"`
	Level    int    `json:"level,omitempty"`
	Rotate   bool   `json:"rotate,omitempty"`
	Daily    bool   `json:"daily,omitempty"`
	MaxDays  int64  `json:"maxdays,omitempty"`
}

var logModules []string

// InitLogger routes the process log to dir/resolution.log at the given level.
// modules filters Print calls; an empty list lets everything through.
func InitLogger(dir, strLevel string, modules []string) error {
	logLevel, ok := getLevel(strLevel)
	if !ok {
		return fmt.Errorf("mismatch the logLevel %s", strLevel)
	}
	logModules = modules

	config, err := json.Marshal(logConfig{
		Filename: path.Join(dir, "resolution.log"),
		Level:    logLevel,
		Rotate:   true,
		Daily:    true,
		MaxDays:  7,
	})
	if err != nil {
		return err
	}
	return logs.SetLogger(logs.AdapterFile, string(config))
}

func Print(module string, level string, format string, reason ...interface{}) {
	if !isIncludeModule(module) {
		return
	}
	switch level {
	case "emergency":
		logs.Emergency(format, reason...)
	case "alert":
		logs.Alert(format, reason...)
	case "critical":
		logs.Critical(format, reason...)
	case "error":
		logs.Error(format, reason...)
	case "warn":
		logs.Warn(format, reason...)
	case "notice":
		logs.Notice(format, reason...)
	case "info":
		logs.Info(format, reason...)
	case "debug":
		logs.Debug(format, reason...)
	}
}

func Error(format string, v ...interface{}) {
	logs.Error(format, v...)
}

func Warn(format string, v ...interface{}) {
	logs.Warn(format, v...)
}

func Info(format string, v ...interface{}) {
	logs.Info(format, v...)
}

func Debug(format string, v ...interface{}) {
	logs.Debug(format, v...)
}

func isIncludeModule(module string) bool {
	if len(logModules) == 0 {
		return true
	}
	for _, item := range logModules {
		if item == module {
			return true
		}
	}
	return false
}
