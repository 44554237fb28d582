package engine

import "errors"

var (
	ErrUnknownLevel   = errors.New("unknown level")
	ErrLevelLocked    = errors.New("level is locked")
	ErrNotPlaying     = errors.New("no level in progress")
	ErrItemNotFound   = errors.New("item not in this level")
	ErrInventoryFull  = errors.New("inventory full")
	ErrUnknownSession = errors.New("unknown session")
	ErrUnknownAction  = errors.New("unknown action")
)
