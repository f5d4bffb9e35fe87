package mp3

import "errors"

var (
	ErrNoAudioData = errors.New("no audio data in MP3 stream")
)
