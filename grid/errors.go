package grid

import "errors"

var (
	ErrInvalidTileDefinition = errors.New("grid: tile definition has no sprite")
	ErrIndexOutOfRange       = errors.New("grid: catalog index out of range")
	ErrCoordinateOccupied    = errors.New("grid: coordinate already occupied")
	ErrNoTileAtPosition      = errors.New("grid: no tile at position")
	ErrNoSelection           = errors.New("grid: no tile selected")
	ErrUnknownCell           = errors.New("grid: cell is not part of the frontier")
	ErrInvalidConfig         = errors.New("grid: invalid config")
)
