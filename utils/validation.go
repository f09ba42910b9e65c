package utils

// IsValidValueOfConstant reports whether value is one of the allowed constants.
func IsValidValueOfConstant(value string, constantValues []string) bool {
	for _, r := range constantValues {
		if r == value {
			return true
		}
	}
	return false
}
