package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 按最大宽度把文本拆成多行
//
// 在空格处断行；单个单词超宽时按字符强制断开。
// font 为 nil 或 maxWidth <= 0 时原样返回。
func WrapText(str string, font *text.GoTextFace, maxWidth float64) []string {
	if str == "" || font == nil || maxWidth <= 0 {
		return []string{str}
	}
	return wrapWords(str, maxWidth, func(s string) float64 {
		w, _ := text.Measure(s, font, 0)
		return w
	})
}

// wrapWords 用给定的测量函数换行
func wrapWords(str string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(str) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if measure(candidate) <= maxWidth {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		// 单词本身超宽，按字符切开
		line = ""
		for _, r := range word {
			next := line + string(r)
			if line != "" && measure(next) > maxWidth {
				lines = append(lines, line)
				next = string(r)
			}
			line = next
		}
	}
	if line != "" || len(lines) == 0 {
		lines = append(lines, line)
	}
	return lines
}
