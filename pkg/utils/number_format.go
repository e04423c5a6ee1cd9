// Package utils 提供通用工具函数
package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberPrinter = message.NewPrinter(language.English)

// FormatNumber 带千位分隔符的整数，如 1234567 -> "1,234,567"
func FormatNumber(n int) string {
	return numberPrinter.Sprintf("%d", n)
}

// RoundScore 将分数舍入到最近的 10，恰好居中时取偶数
// 如 75 -> 80，225 -> 220
func RoundScore(score int) int {
	return int(math.RoundToEven(float64(score)/10) * 10)
}

// FormatScore 计分板显示的分数：舍入到 10 后加千位分隔符
func FormatScore(score int) string {
	return FormatNumber(RoundScore(score))
}
