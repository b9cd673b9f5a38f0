// Package storage 用 BadgerDB 持久化棋盘会话
package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "boardmoves"

// DataDir 平台相关的数据目录，不存在时创建：
// macOS 为 ~/Library/Application Support/boardmoves，
// Windows 为 %APPDATA%/boardmoves，其余为 $XDG_DATA_HOME/boardmoves 或 ~/.local/share/boardmoves。
func DataDir() (string, error) {
	var base string
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, "Library", "Application Support")
	case "windows":
		base = os.Getenv("APPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			base = filepath.Join(home, "AppData", "Roaming")
		}
	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	dir := filepath.Join(base, appName, "db")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
