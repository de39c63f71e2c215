package utils

import "strings"

// SplitFields 按sep拆分一行并去除每个字段两侧空白
func SplitFields(line string, sep string) []string {
	parts := strings.Split(line, sep)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// FirstUpper 返回首字符的大写形式 空串返回0
func FirstUpper(s string) byte {
	if s == "" {
		return 0
	}
	return strings.ToUpper(s)[0]
}
