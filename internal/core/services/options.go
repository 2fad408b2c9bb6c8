package services

import (
	"context"
	"errors"
	"time"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
	"github.com/NiruddeshJatra/mentorship-platform/internal/core/ports"
)

const defaultSlotCacheTTL = 5 * time.Minute

type Option func(*options)

type options struct {
	now          func() time.Time
	slotCacheTTL time.Duration
}

// WithClock replaces time.Now, mostly for tests around session end times.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func WithSlotCacheTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl > 0 {
			o.slotCacheTTL = ttl
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		now:          time.Now,
		slotCacheTTL: defaultSlotCacheTTL,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// resolveParty maps the principal to its mentor or mentee profile. A missing
// profile yields an empty party, which fails every ownership check.
func resolveParty(ctx context.Context, mentors ports.MentorRepository, p domain.Principal) (domain.Party, error) {
	var party domain.Party

	switch p.Role {
	case domain.RoleMentor:
		id, err := mentors.MentorIDForUser(ctx, p.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrProfileNotFound) {
				return party, nil
			}
			return party, err
		}
		party.MentorID = &id
	case domain.RoleMentee:
		id, err := mentors.MenteeIDForUser(ctx, p.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrProfileNotFound) {
				return party, nil
			}
			return party, err
		}
		party.MenteeID = &id
	default:
		return party, domain.ErrInvalidRole
	}

	return party, nil
}
