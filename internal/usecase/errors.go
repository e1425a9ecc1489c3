package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrUpstreamFetch         = errors.New("upstream fetch failed")
	ErrGeneration            = errors.New("summary generation failed")
)

// Upstream resources reported in FetchError.
const (
	ResourceSchedule   = "schedule"
	ResourcePlayByPlay = "play-by-play"
	ResourceGameStory  = "game story"
)

// FetchError reports that an upstream payload could not be obtained from
// either the cache or the provider. It matches ErrUpstreamFetch.
type FetchError struct {
	Resource string
	Key      string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s %s: %v", e.Resource, e.Key, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == ErrUpstreamFetch
}

// GenerationError reports a text generator failure. It matches ErrGeneration.
type GenerationError struct {
	GameID int64
	Err    error
}

func (e *GenerationError) Error() string {
	if e.GameID == 0 {
		return fmt.Sprintf("generate ai summary: %v", e.Err)
	}
	return fmt.Sprintf("generate ai summary for game %d: %v", e.GameID, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func (e *GenerationError) Is(target error) bool {
	return target == ErrGeneration
}

func newFetchError(resource, key string, err error) error {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return err
	}
	return &FetchError{Resource: resource, Key: key, Err: err}
}
