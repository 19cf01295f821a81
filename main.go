package main

import (
	"fmt"
	"os"

	"github.com/decker502/pickup52/pkg/cli"
	"github.com/decker502/pickup52/pkg/embedded"
)

func main() {
	// 初始化嵌入资源，必须在任何配置加载之前
	embedded.Init(assetsFS, dataFS)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
