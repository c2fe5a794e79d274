package level

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrNoLevels        = errors.New("level: no levels found")
	ErrGap             = errors.New("level: level numbers must be contiguous from 1")
	ErrNoCollectibles  = errors.New("level: level has no collectibles")
	ErrInvalidNumber   = errors.New("level: level number must be >= 1")
	ErrInvalidGeometry = errors.New("level: entity has non-positive size")
	ErrUnknownType     = errors.New("level: unknown entity type")
)

// Validate checks a single template.
// A level needs at least one coin, since clearing the coins is the only way
// to complete it.
func Validate(t *Template) error {
	if t.Number < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidNumber, t.Number)
	}
	if len(t.Collectibles) == 0 {
		return fmt.Errorf("%w: level %d", ErrNoCollectibles, t.Number)
	}

	for i, p := range t.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("%w: level %d platform %d", ErrInvalidGeometry, t.Number, i)
		}
		if p.Type != PlatformSolid {
			return fmt.Errorf("%w: level %d platform %d type %q", ErrUnknownType, t.Number, i, p.Type)
		}
	}
	for i, c := range t.Collectibles {
		if c.W <= 0 || c.H <= 0 {
			return fmt.Errorf("%w: level %d collectible %d", ErrInvalidGeometry, t.Number, i)
		}
		if c.Type != CollectibleCoin {
			return fmt.Errorf("%w: level %d collectible %d type %q", ErrUnknownType, t.Number, i, c.Type)
		}
	}
	for i, e := range t.Enemies {
		if e.W <= 0 || e.H <= 0 {
			return fmt.Errorf("%w: level %d enemy %d", ErrInvalidGeometry, t.Number, i)
		}
	}
	return nil
}

// ValidateSet checks that a set is non-empty and numbered 1..N with no gaps.
func ValidateSet(s *Set) error {
	if s.Len() == 0 {
		return ErrNoLevels
	}
	for i, t := range s.Templates() {
		if t.Number != i+1 {
			return fmt.Errorf("%w: expected level %d, found %d", ErrGap, i+1, t.Number)
		}
	}
	return nil
}
