package domain

import (
	"strings"

	"github.com/google/uuid"
)

type Role string

const (
	RoleMentor Role = "MENTOR"
	RoleMentee Role = "MENTEE"
)

// ParseRole normalizes the role claim; "mentor" and "MENTOR" are the same role.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleMentor:
		return RoleMentor, nil
	case RoleMentee:
		return RoleMentee, nil
	}
	return "", ErrInvalidRole
}

// Principal is the authenticated caller.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

// Party is the caller's resolved identity against one booking.
type Party struct {
	MentorID *uuid.UUID
	MenteeID *uuid.UUID
}

func (p Party) IsMentorOf(b *Booking) bool {
	return p.MentorID != nil && *p.MentorID == b.MentorID
}

func (p Party) IsMenteeOf(b *Booking) bool {
	return p.MenteeID != nil && *p.MenteeID == b.MenteeID
}

func (p Party) IsPartyOf(b *Booking) bool {
	return p.IsMentorOf(b) || p.IsMenteeOf(b)
}
