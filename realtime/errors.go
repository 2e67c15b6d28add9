package realtime

import "errors"

var (
	// ErrEmptyScope se vraća kada se Subscribe pozove bez identifikatora opsega.
	ErrEmptyScope = errors.New("scope identifier must not be empty")
)
