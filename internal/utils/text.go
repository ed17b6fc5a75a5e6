package utils

// Truncate 按字符数截断文本，超出部分以 "..." 结尾
// Counts runes, not bytes, so multi-byte text is not cut mid-character.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
