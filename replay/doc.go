// Package replay turns a curated word list into timed pointer gestures on a
// physical board.
//
// A Calibration maps board coordinates to screen positions from the centers
// of the top-left and bottom-right cells. A Player then replays each word as
// press → smooth move through every cell of its path → release, pausing
// according to Timing between actions.
//
// The device behind the gestures is a Pointer. Recorder is an in-memory
// Pointer that logs every action. System drives the OS mouse through
// robotgo; it needs cgo and is compiled only with -tags robotgo, otherwise
// NewSystem returns ErrNoSystemPointer.
//
// Stopping: cancelling the context passed to Player.Play is the stop-now
// trigger. The player checks the context at every pause, releases a held
// button before returning, and reports how many words were fully played.
package replay
