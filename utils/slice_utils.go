package utils

// GetOrString returns slice[i], or `or` when i is out of range.
func GetOrString(slice []string, i int, or string) string {
	if i >= 0 && len(slice)-1 >= i {
		return slice[i]
	}
	return or
}
