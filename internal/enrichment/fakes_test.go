package enrichment

import (
	"context"
	"errors"
	"sync"
)

var errLookup = errors.New("lookup failed")

type fakeLookups struct {
	mu sync.Mutex

	ageRatings    map[int64]int64
	involved      map[int64]int64
	companies     map[int64]string
	failInvolved  map[int64]bool
	failAgeRating bool

	ageRatingCalls []int64
}

func (f *fakeLookups) AgeRating(_ context.Context, id int64) (int64, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ageRatingCalls = append(f.ageRatingCalls, id)
	if f.failAgeRating {
		return 0, false, errLookup
	}
	r, ok := f.ageRatings[id]
	return r, ok, nil
}

func (f *fakeLookups) InvolvedCompany(_ context.Context, id int64) (int64, bool, error) {
	if f.failInvolved[id] {
		return 0, false, errLookup
	}
	c, ok := f.involved[id]
	return c, ok, nil
}

func (f *fakeLookups) CompanyName(_ context.Context, id int64) (string, bool, error) {
	n, ok := f.companies[id]
	return n, ok, nil
}

type fakePublishers struct {
	names map[string]string
	err   error
	calls int
}

func (f *fakePublishers) LookupPublisher(_ context.Context, name string) (string, bool, error) {
	f.calls++
	if f.err != nil {
		return "", false, f.err
	}
	n, ok := f.names[name]
	return n, ok, nil
}
