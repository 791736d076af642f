package textx

import (
	"strings"
	"unicode/utf8"
)

// 带重音的元音 -> 普通元音
//
// 注：最初的实现只替换小写的 á é í ó ú，大写的 Á É Í Ó Ú 在 ASCII 小写化后仍会残留，
// 导致 "HIDRÓGENO" 查不到氢元素；这里的大写映射是有意补上的，不要删掉
var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u",
)

// Normalize 归一化元素名称 / 符号，用于忽略大小写及重音的比较
//
// 注：只做 ASCII 范围的小写化（如 Ñ 不会变成 ñ），然后替换上述重音元音，不做其他 Unicode 归一化
func Normalize(text string) string {
	return accentReplacer.Replace(toASCIILower(text))
}

func toASCIILower(text string) string {
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, text)
}
