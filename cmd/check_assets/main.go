// check_assets 检查 data/ 下的游戏配置和牌面资源清单
//
// 在仓库根目录运行：
//
//	go run ./cmd/check_assets [--dir .]
//
// 输出每个文件的 MD5，并校验配置合法、清单覆盖全部 52 张牌。
// 任一检查失败时以状态码 1 退出。
package main

import (
	"crypto/md5"
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"
	"os"

	colorize "github.com/fatih/color"

	"github.com/decker502/pickup52/pkg/config"
	"github.com/decker502/pickup52/pkg/embedded"
	"github.com/decker502/pickup52/pkg/types"
)

var dir = flag.String("dir", ".", "仓库根目录（包含 data/）")

func main() {
	flag.Parse()
	if err := checkAssets(os.Stdout, os.DirFS(*dir)); err != nil {
		os.Exit(1)
	}
}

// checkAssets 对 root 下的 data/ 做全部检查，逐项输出结果
// 返回所有失败项合并后的错误
func checkAssets(out io.Writer, root fs.FS) error {
	embedded.Init(root, root)

	var errs []error
	for _, path := range []string{config.DefaultGameConfigPath, config.DefaultCardAssetsPath} {
		data, err := embedded.ReadFile(path)
		if err != nil {
			errs = append(errs, fail(out, fmt.Errorf("%s: %w", path, err)))
			continue
		}
		fmt.Fprintf(out, "%-18s md5 %x  %d bytes\n", path, md5.Sum(data), len(data))
	}

	cfg, err := config.LoadEmbeddedGameConfig()
	if err != nil {
		errs = append(errs, fail(out, fmt.Errorf("game config: %w", err)))
	} else {
		region := cfg.ScatterRegion()
		pass(out, "game config valid, scatter x[%.1f, %.1f] z[%.1f, %.1f]", region.MinX, region.MaxX, region.MinZ, region.MaxZ)
	}

	catalog, err := config.LoadEmbeddedCardAssets()
	if err != nil {
		errs = append(errs, fail(out, fmt.Errorf("card assets: %w", err)))
	} else {
		pass(out, "card assets complete: %d / %d faces", catalog.Len(), types.DeckSize)
		for _, back := range []config.AssetHandle{catalog.Back, catalog.HoverBack} {
			if err := checkImage(back.Image); err != nil {
				errs = append(errs, fail(out, fmt.Errorf("card back %s: %w", back.Key, err)))
				continue
			}
			if back.Image != "" {
				pass(out, "card back %s: %s", back.Key, back.Image)
			}
		}
	}

	return errors.Join(errs...)
}

// checkImage 确认图片存在且能解码；空路径表示程序化绘制，直接通过
func checkImage(path string) error {
	if path == "" {
		return nil
	}
	f, err := embedded.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, _, err := image.DecodeConfig(f); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func pass(out io.Writer, format string, args ...any) {
	fmt.Fprintln(out, colorize.GreenString("✓ ")+fmt.Sprintf(format, args...))
}

func fail(out io.Writer, err error) error {
	fmt.Fprintln(out, colorize.RedString("✗ ")+err.Error())
	return err
}
