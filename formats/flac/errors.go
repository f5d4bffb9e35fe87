package flac

import "errors"

var (
	ErrNoStreamInfo = errors.New("missing FLAC stream info")
	ErrNoAudioData  = errors.New("no audio data in FLAC stream")
)
