package subscription

import (
	"fmt"
	"sync"

	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/models"
)

// Notifier receives the one-shot toast the store emits when the active
// level actually changes. The notification queue satisfies this interface.
type Notifier interface {
	Success(title string, message string) string
}

// Store holds the single active subscription level of a running client
// session and answers all visibility queries against it.
//
// The level is pure session state: every process starts at Basic and
// nothing is persisted across runs. A mutex guards the level so the store
// stays safe under Go's scheduler, but the expected usage is a single
// writer (the UI event loop).
type Store struct {
	mu       sync.Mutex
	level    models.SubscriptionLevel
	notifier Notifier

	logger *logger.Logger
}

// NewStore constructs a session store starting at Basic. notifier may be
// nil, in which case level changes are silent.
func NewStore(notifier Notifier, logger *logger.Logger) *Store {
	logger.Debug().Msg("creating subscription store")
	return &Store{
		level:    models.LevelBasic,
		notifier: notifier,
		logger:   logger,
	}
}

// Level returns the currently active subscription level.
func (s *Store) Level() models.SubscriptionLevel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// CurrentTier returns the static descriptor of the active level.
func (s *Store) CurrentTier() models.SubscriptionTier {
	tier, _ := TierByLevel(s.Level())
	return tier
}

// TierName returns the display name of the active tier.
func (s *Store) TierName() string { return s.CurrentTier().Name }

// TierColor returns the accent color of the active tier.
func (s *Store) TierColor() string { return s.CurrentTier().Color }

// TierDescription returns the description of the active tier.
func (s *Store) TierDescription() string { return s.CurrentTier().Description }

// TierFeatures returns the ordered feature list of the active tier.
func (s *Store) TierFeatures() []string { return s.CurrentTier().Features }

// SetLevel switches the active level. Passing a level outside {1,2,3} is a
// contract violation on the caller's side; the store does not validate it.
//
// When the new level differs from the previous one, a single auto-expiring
// success notification announcing the new tier is emitted. Setting the same
// level again is silent.
func (s *Store) SetLevel(level models.SubscriptionLevel) {
	s.mu.Lock()
	changed := s.level != level
	s.level = level
	s.mu.Unlock()

	if !changed {
		return
	}

	s.logger.Info().Int("level", int(level)).Msg("subscription level changed")
	s.announce(level)
}

// Upgrade moves one level up, saturating at Premium. At the top boundary
// the call is a complete no-op: the level stays put and no notification
// fires.
func (s *Store) Upgrade() {
	s.step(+1)
}

// Downgrade moves one level down, saturating at Basic. Mirror of [Upgrade].
func (s *Store) Downgrade() {
	s.step(-1)
}

func (s *Store) step(delta models.SubscriptionLevel) {
	s.mu.Lock()
	next := s.level + delta
	if !next.Valid() {
		s.mu.Unlock()
		return
	}
	s.level = next
	s.mu.Unlock()

	s.logger.Info().Int("level", int(next)).Msg("subscription level changed")
	s.announce(next)
}

func (s *Store) announce(level models.SubscriptionLevel) {
	if s.notifier == nil {
		return
	}

	tier, _ := TierByLevel(level)
	s.notifier.Success("Subscription updated", fmt.Sprintf("You are now on the %s plan", tier.Name))
}

// CanViewContent reports whether content gated at requiredLevel is visible
// at the current level. Pure and total: visibility is simply
// currentLevel >= requiredLevel, so anything visible at level N stays
// visible at every higher level.
func (s *Store) CanViewContent(requiredLevel models.SubscriptionLevel) bool {
	return s.Level() >= requiredLevel
}

// RedactedValue returns original unchanged when the current level grants
// access, and the fixed placeholder for contentType otherwise. Redacting an
// already-redacted placeholder returns the same placeholder, so the
// operation is idempotent under denial.
func (s *Store) RedactedValue(original string, requiredLevel models.SubscriptionLevel, contentType models.ContentType) string {
	if s.CanViewContent(requiredLevel) {
		return original
	}

	return Placeholder(contentType)
}

// ContentOrRedacted makes the same decision as [Store.RedactedValue] but
// also reports whether redaction happened, so callers can style gated
// content differently.
func (s *Store) ContentOrRedacted(content string, requiredLevel models.SubscriptionLevel, contentType models.ContentType) (string, bool) {
	if s.CanViewContent(requiredLevel) {
		return content, false
	}

	return Placeholder(contentType), true
}
