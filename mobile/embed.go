//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// //go:embed 不能引用上级目录，构建前需要把 data/ 和 assets/ 复制到此目录：
//
//	cp -r data assets mobile/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed assets/cards/*.png
var assetsFS embed.FS

//go:embed data/game.yaml data/cards.yaml
var dataFS embed.FS
