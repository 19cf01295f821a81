// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

var errNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init 初始化资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用。
// assets 可以为 nil（牌面全部程序化生成时不需要图片资源）。
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// resolve 根据路径前缀选择文件系统，并返回标准化后的路径
func resolve(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", errNotInitialized
	}

	// 标准化路径分隔符为正斜杠（embed.FS 使用正斜杠）
	path = filepath.ToSlash(path)

	// 移除可能的 "./" 前缀
	path = strings.TrimPrefix(path, "./")

	var fsys fs.FS
	switch {
	case strings.HasPrefix(path, "assets/"):
		fsys = assetsFS
	case strings.HasPrefix(path, "data/"):
		fsys = dataFS
	default:
		return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
	}
	if fsys == nil {
		return nil, "", fmt.Errorf("no filesystem registered for %s", path)
	}
	return fsys, path, nil
}

// Open 根据路径前缀选择正确的文件系统并打开文件
// 路径必须以 "assets/" 或 "data/" 开头
func Open(path string) (fs.File, error) {
	fsys, clean, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(clean)
}

// ReadFile 根据路径前缀选择正确的文件系统并读取文件内容
// 路径必须以 "assets/" 或 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	fsys, clean, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, clean)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}
