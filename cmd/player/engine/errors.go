package engine

import (
	"errors"

	"github.com/gigurra/tunes/cmd/player/audio"
)

var (
	ErrDevice = errors.New("no audio output device")
	ErrDecode = audio.ErrDecode
	ErrIO     = audio.ErrIO
)
