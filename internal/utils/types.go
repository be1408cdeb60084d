package utils

import "strings"

// ExtractPackageFromType extracts the package qualifier from a type string
// like "*config.Config" or "[]*store.Store". Returns an empty string for
// unqualified types.
func ExtractPackageFromType(typeStr string) string {
	typeStr = strings.TrimPrefix(typeStr, "*")

	switch {
	case strings.HasPrefix(typeStr, "[]"):
		return ExtractPackageFromType(typeStr[2:])
	case strings.HasPrefix(typeStr, "map["):
		// Extract from the value type
		depth := 0
		for i, char := range typeStr {
			if char == '[' {
				depth++
			} else if char == ']' {
				depth--
				if depth == 0 && i+1 < len(typeStr) {
					return ExtractPackageFromType(typeStr[i+1:])
				}
			}
		}
		return ""
	case strings.HasPrefix(typeStr, "chan "):
		return ExtractPackageFromType(typeStr[5:])
	}

	dot := strings.Index(typeStr, ".")
	if dot <= 0 {
		return ""
	}
	return typeStr[:dot]
}
