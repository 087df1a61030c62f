package model

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrNotADirectory      = errors.New("not a directory")
	ErrAlreadyExists      = errors.New("already exists")
	ErrIO                 = errors.New("permission or io error")
	ErrNotUTF8            = errors.New("content is not valid utf-8")
	ErrWatchInstallFailed = errors.New("failed to install file watcher")
	ErrSpawnFailed        = errors.New("failed to spawn process")
)
