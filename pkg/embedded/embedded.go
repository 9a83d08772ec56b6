// Package embedded 提供数据文件的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的数据表。
//
// "data/" 前缀的路径优先从嵌入资源读取；未初始化或是其它路径时直接读磁盘，
// 测试和工具程序因此不需要调用 Init。
package embedded

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const dataPrefix = "data/"

var (
	dataFS      fs.FS
	initialized bool
)

// Init 设置嵌入的数据文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径分隔符并去掉 "./" 前缀
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

func embeddedPath(path string) (string, bool) {
	p := normalize(path)
	if !initialized || !strings.HasPrefix(p, dataPrefix) {
		return "", false
	}
	return p, true
}

// Open 打开文件
func Open(path string) (fs.File, error) {
	if p, ok := embeddedPath(path); ok {
		f, err := dataFS.Open(p)
		if err == nil || !errors.Is(err, fs.ErrNotExist) {
			return f, err
		}
	}
	return os.Open(path)
}

// ReadFile 读取文件内容
// 嵌入资源中找不到时退回磁盘，便于开发时覆盖数据表
func ReadFile(path string) ([]byte, error) {
	if p, ok := embeddedPath(path); ok {
		data, err := fs.ReadFile(dataFS, p)
		if err == nil || !errors.Is(err, fs.ErrNotExist) {
			return data, err
		}
	}
	return os.ReadFile(path)
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
