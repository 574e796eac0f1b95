/*
Package repository interns characters.

A fuzzy matcher will compare the same few hundred characters over and over
again. A Repository maps source text to a shared Character, which is
created on first request only, together with all of its comparison forms.

Repositories are meant to be owned by a long-lived context of the host
application, e.g. a completion session, and to be handed to every part of
it which needs to compare characters:

  repo := repository.New()
  chars, err := repo.GetMany([]string{"f", "o", "o"})
  …
  repo.Clear() // drop everything after a large edit

Characters handed out by a repository are read-only and remain valid after
Clear. However, after a Clear, later lookups of the same text will not
return identical instances any more.

All methods of Repository are safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package repository

import (
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uchar"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Repository is a cache of characters, keyed by their source text.
type Repository struct {
	mu       sync.RWMutex
	chars    map[string]*uchar.Character
	capacity int  // initial size of chars
	tracing  bool // trace cache misses
}

// Option configures a Repository.
type Option func(*Repository)

// WithCapacity pre-sizes the cache for n characters.
func WithCapacity(n int) Option {
	return func(repo *Repository) {
		if n > 0 {
			repo.capacity = n
		}
	}
}

// WithTracing switches tracing of cache misses on or off. Misses are traced
// at debug level.
func WithTracing(b bool) Option {
	return func(repo *Repository) {
		repo.tracing = b
	}
}

// DefaultCapacity is the initial capacity of a repository if not set with
// WithCapacity.
const DefaultCapacity = 256

// New creates an empty repository.
func New(opts ...Option) *Repository {
	repo := &Repository{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(repo)
	}
	repo.chars = make(map[string]*uchar.Character, repo.capacity)
	return repo
}

// Get returns the character for text. If text has not been requested
// before, a new character is created and cached.
//
// If text is not valid UTF-8, Get returns the error of uchar.New and
// nothing is cached.
func (repo *Repository) Get(text string) (*uchar.Character, error) {
	repo.mu.RLock()
	ch, ok := repo.chars[text]
	repo.mu.RUnlock()
	if ok {
		return ch, nil
	}
	ch, err := repo.create(text)
	if err != nil {
		return nil, err
	}
	repo.mu.Lock()
	ch = repo.insert(text, ch)
	repo.mu.Unlock()
	return ch, nil
}

// GetMany returns the characters for a list of texts, in the same order.
// The first text which is not valid UTF-8 aborts the operation; GetMany
// will then return its error and no characters.
func (repo *Repository) GetMany(texts []string) ([]*uchar.Character, error) {
	chars := make([]*uchar.Character, len(texts))
	var missing []int
	repo.mu.RLock()
	for i, text := range texts {
		if ch, ok := repo.chars[text]; ok {
			chars[i] = ch
		} else {
			missing = append(missing, i)
		}
	}
	repo.mu.RUnlock()
	if len(missing) == 0 {
		return chars, nil
	}
	for _, i := range missing {
		ch, err := repo.create(texts[i])
		if err != nil {
			return nil, err
		}
		chars[i] = ch
	}
	repo.mu.Lock()
	for _, i := range missing {
		chars[i] = repo.insert(texts[i], chars[i])
	}
	repo.mu.Unlock()
	return chars, nil
}

// Clear drops all cached characters.
func (repo *Repository) Clear() {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	T().Infof("clearing character repository with %d entries", len(repo.chars))
	repo.chars = make(map[string]*uchar.Character, repo.capacity)
}

// Len returns the number of cached characters.
func (repo *Repository) Len() int {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return len(repo.chars)
}

func (repo *Repository) create(text string) (*uchar.Character, error) {
	if repo.tracing {
		T().Debugf("character repository miss for %+q", text)
	}
	return uchar.New(text)
}

// insert puts ch into the cache, unless another goroutine has been faster.
// It returns the cached instance. Caller must hold the write lock.
func (repo *Repository) insert(text string, ch *uchar.Character) *uchar.Character {
	if cached, ok := repo.chars[text]; ok {
		return cached
	}
	repo.chars[text] = ch
	return ch
}
