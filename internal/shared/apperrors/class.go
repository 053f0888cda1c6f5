package apperrors

import "strings"

// splitErrorClass splits "can't fetch diff: 502 Bad Gateway" into the stable
// class used for grouping and the variable detail.
func splitErrorClass(errorText string) (class, detail string) {
	parts := strings.SplitN(errorText, ": ", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}

	return parts[0], ""
}
