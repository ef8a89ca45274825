package quiz

import "strings"

// CheckAnswer compares a selected word sequence against the correct
// answer: words joined with a single space, compared case-insensitively
// after trimming.
func CheckAnswer(selected, correct []string) bool {
	got := strings.TrimSpace(strings.Join(selected, " "))
	want := strings.TrimSpace(strings.Join(correct, " "))
	return strings.EqualFold(got, want)
}
