package controller

import "errors"

var (
	ErrNoMover  = errors.New("controller: no collision mover bound")
	ErrNoCamera = errors.New("controller: no camera basis available")
)
