package vorbis

import "errors"

var (
	ErrNoAudioData = errors.New("no audio data in Ogg Vorbis stream")
)
