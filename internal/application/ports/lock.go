package ports

// GameLocker serializes mutating operations on a single game. Operations on
// different keys are fully independent.
type GameLocker interface {
	// Lock blocks until the key is held and returns the release func.
	Lock(key string) (unlock func())
}
