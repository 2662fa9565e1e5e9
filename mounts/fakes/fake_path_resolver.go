package fakes

import (
	"github.com/cloudfoundry/mountpoint/mounts"
)

type FakePathResolver struct {
	StatPaths  []string
	StatStatus mounts.PathStatus
	StatErr    error

	LstatPaths  []string
	LstatStatus mounts.PathStatus
	LstatErr    error

	CanonicalizePaths  []string
	CanonicalizeResult string
	CanonicalizeErr    error
}

func NewFakePathResolver() *FakePathResolver {
	return &FakePathResolver{}
}

func (r *FakePathResolver) Stat(path string) (mounts.PathStatus, error) {
	r.StatPaths = append(r.StatPaths, path)
	return r.StatStatus, r.StatErr
}

func (r *FakePathResolver) Lstat(path string) (mounts.PathStatus, error) {
	r.LstatPaths = append(r.LstatPaths, path)
	return r.LstatStatus, r.LstatErr
}

// Canonicalize resolves to CanonicalizeResult when set, otherwise the
// path as given.
func (r *FakePathResolver) Canonicalize(path string) (string, error) {
	r.CanonicalizePaths = append(r.CanonicalizePaths, path)

	if r.CanonicalizeErr != nil {
		return "", r.CanonicalizeErr
	}

	if r.CanonicalizeResult != "" {
		return r.CanonicalizeResult, nil
	}

	return path, nil
}
