package game

import "errors"

var (
	ErrSnakeFull     = errors.New("snake reached its maximum length")
	ErrBoardFull     = errors.New("no free cell left for an apple")
	ErrInvalidConfig = errors.New("invalid game config")
)
