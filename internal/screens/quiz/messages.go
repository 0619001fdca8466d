package quiz

// finishFailedMsg is sent when persisting the finished session fails.
type finishFailedMsg struct {
	err error
}

// spokenMsg is sent after a pronunciation request completes. It carries
// nothing; playback is fire-and-forget.
type spokenMsg struct{}
