package services

import (
	"context"
	"errors"
)

var ErrSpeechUnsupported = errors.New("speech recognition unsupported")

// SpeechRecognizer captures one utterance and returns its transcript.
// Explicitly single-shot, non-continuous; the transcript feeds the search
// coordinator like typed input.
type SpeechRecognizer interface {
	Recognize(ctx context.Context) (string, error)
}

// SpeechRecognizerFunc adapts a plain function to SpeechRecognizer.
type SpeechRecognizerFunc func(ctx context.Context) (string, error)

func (f SpeechRecognizerFunc) Recognize(ctx context.Context) (string, error) { return f(ctx) }

// UnsupportedSpeechRecognizer is the stub for platforms without a speech
// capability; callers surface the error as a notification, never fatal.
type UnsupportedSpeechRecognizer struct{}

func (UnsupportedSpeechRecognizer) Recognize(context.Context) (string, error) {
	return "", ErrSpeechUnsupported
}
