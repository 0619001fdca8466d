package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuestionCount is returned by Start when the configured
	// question count is below 1.
	ErrInvalidQuestionCount = errors.New("question count must be at least 1")

	// ErrDuplicateAnswer is returned when a second answer is submitted
	// for the current question before Advance.
	ErrDuplicateAnswer = errors.New("current question already answered")

	// ErrNotAnswered is returned by Advance when the current question
	// has no recorded answer yet.
	ErrNotAnswered = errors.New("current question not answered")

	// ErrOutOfRange is returned when a question is requested from a
	// completed session.
	ErrOutOfRange = errors.New("no current question: session complete")

	// ErrSessionNotComplete is returned by Score before the session has
	// answered every question.
	ErrSessionNotComplete = errors.New("session not complete")

	// ErrWrongMode is returned when a choice answer is submitted to a
	// spelling session or vice versa.
	ErrWrongMode = errors.New("answer does not match session mode")
)

// InsufficientPoolError reports that the selected range holds fewer words
// than the requested question count. The session stays in Configuring;
// the caller must pick a wider range or a smaller count.
type InsufficientPoolError struct {
	Have int
	Need int
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("only %d words in the selected range, need %d", e.Have, e.Need)
}
