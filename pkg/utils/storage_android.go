//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 确保 Android 上 gdata 的存储目录存在并可写
//
// gdata 在 Android 上写入 /data/data/{package}/，但不会创建子目录，
// 必须在 gdata.Open 之前调用。
func EnsureStorageDir() error {
	dir := GetStoragePath()
	if dir == "" {
		return fmt.Errorf("failed to detect Android package name")
	}
	statsDir := filepath.Join(dir, "saves")
	if err := os.MkdirAll(statsDir, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", statsDir, err)
	}

	probe := filepath.Join(statsDir, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("storage directory %s is not writable: %w", statsDir, err)
	}
	return os.Remove(probe)
}

// GetStoragePath 返回 /data/data/{package}，无法识别包名时返回空字符串
func GetStoragePath() string {
	// /proc/self/cmdline 的第一个参数就是包名
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	pkg, _, _ := bytes.Cut(data, []byte{0})
	pkg = bytes.TrimSpace(pkg)
	if len(pkg) == 0 {
		return ""
	}
	return filepath.Join("/data/data", string(pkg))
}
