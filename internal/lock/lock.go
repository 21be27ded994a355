// Package lock guards a data file against use by more than one process.
package lock

import "errors"

var ErrLocked = errors.New("data file already in use by another process")

const lockSuffix = ".lock"

func lockPath(path string) string {
	return path + lockSuffix
}
