package scoring

import "strings"

// QuestionProgress reports, per asked question, whether a non-blank answer exists.
func QuestionProgress(questions, answers []string) []bool {
	progress := make([]bool, len(questions))
	for i := range questions {
		progress[i] = i < len(answers) && strings.TrimSpace(answers[i]) != ""
	}
	return progress
}

// IsCompleted requires at least as many answers as questions, with every one of the
// first len(questions) answers non-blank.
func IsCompleted(questions, answers []string) bool {
	if len(answers) < len(questions) {
		return false
	}
	for _, answered := range QuestionProgress(questions, answers) {
		if !answered {
			return false
		}
	}
	return true
}
