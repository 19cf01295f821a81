// embed.go - 资源嵌入声明
// 必须放在项目根目录（与 data/ 同级）
// 因为 //go:embed 指令只能嵌入当前包目录及其子目录的文件
package main

import "embed"

// 牌背图片；牌面由 ResourceManager 程序化绘制
//
//go:embed assets/cards/*.png
var assetsFS embed.FS

//go:embed data/game.yaml data/cards.yaml
var dataFS embed.FS
