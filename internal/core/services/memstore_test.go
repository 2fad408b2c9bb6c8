package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
	"github.com/NiruddeshJatra/mentorship-platform/internal/core/ports"
)

// memStore is an in-memory stand-in for postgres used by the scenario tests.
// Do serializes units of work and restores a snapshot when fn fails, which
// mirrors the all-or-nothing behaviour of a real transaction.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	slots       map[uuid.UUID]domain.Slot
	bookings    map[uuid.UUID]domain.Booking
	reschedules map[uuid.UUID]domain.RescheduleRequest
	reviews     map[uuid.UUID]domain.Review
	expertise   map[uuid.UUID]domain.Expertise
	mentors     map[uuid.UUID]domain.Mentor
	mentees     map[uuid.UUID]uuid.UUID // user id -> mentee id
	topics      map[uuid.UUID]bool
}

func newMemStore() *memStore {
	return &memStore{
		slots:       map[uuid.UUID]domain.Slot{},
		bookings:    map[uuid.UUID]domain.Booking{},
		reschedules: map[uuid.UUID]domain.RescheduleRequest{},
		reviews:     map[uuid.UUID]domain.Review{},
		expertise:   map[uuid.UUID]domain.Expertise{},
		mentors:     map[uuid.UUID]domain.Mentor{},
		mentees:     map[uuid.UUID]uuid.UUID{},
		topics:      map[uuid.UUID]bool{},
	}
}

func (m *memStore) Repositories() ports.Repositories {
	return ports.Repositories{
		Slots:       memSlots{m},
		Bookings:    memBookings{m},
		Reschedules: memReschedules{m},
		Reviews:     memReviews{m},
		Expertise:   memExpertise{m},
		Mentors:     memMentors{m},
	}
}

type memSnapshot struct {
	slots       map[uuid.UUID]domain.Slot
	bookings    map[uuid.UUID]domain.Booking
	reschedules map[uuid.UUID]domain.RescheduleRequest
	reviews     map[uuid.UUID]domain.Review
	expertise   map[uuid.UUID]domain.Expertise
	mentors     map[uuid.UUID]domain.Mentor
}

func cloneMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (m *memStore) Do(ctx context.Context, fn func(ctx context.Context, repos ports.Repositories) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	m.mu.Lock()
	snap := memSnapshot{
		slots:       cloneMap(m.slots),
		bookings:    cloneMap(m.bookings),
		reschedules: cloneMap(m.reschedules),
		reviews:     cloneMap(m.reviews),
		expertise:   cloneMap(m.expertise),
		mentors:     cloneMap(m.mentors),
	}
	m.mu.Unlock()

	if err := fn(ctx, m.Repositories()); err != nil {
		m.mu.Lock()
		m.slots, m.bookings, m.reschedules = snap.slots, snap.bookings, snap.reschedules
		m.reviews, m.expertise, m.mentors = snap.reviews, snap.expertise, snap.mentors
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *memStore) slot(id uuid.UUID) domain.Slot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slots[id]
}

func (m *memStore) booking(id uuid.UUID) domain.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bookings[id]
}

func (m *memStore) mentor(id uuid.UUID) domain.Mentor {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mentors[id]
}

func (m *memStore) reviewsForBooking(bookingID uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, r := range m.reviews {
		if r.BookingID == bookingID {
			n++
		}
	}
	return n
}

func (m *memStore) activeBookingsForSlot(slotID uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, b := range m.bookings {
		if b.AvailabilitySlotID == slotID && b.IsActive() {
			n++
		}
	}
	return n
}

type memSlots struct{ m *memStore }

func (r memSlots) Create(ctx context.Context, slot *domain.Slot) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.slots[slot.ID] = *slot
	return nil
}

func (r memSlots) Update(ctx context.Context, slot *domain.Slot) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.slots[slot.ID]; !ok {
		return domain.ErrSlotNotFound
	}
	r.m.slots[slot.ID] = *slot
	return nil
}

func (r memSlots) GetByID(ctx context.Context, slotID uuid.UUID) (*domain.Slot, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	s, ok := r.m.slots[slotID]
	if !ok {
		return nil, domain.ErrSlotNotFound
	}
	return &s, nil
}

func (r memSlots) GetForUpdate(ctx context.Context, slotID uuid.UUID) (*domain.Slot, error) {
	return r.GetByID(ctx, slotID)
}

func (r memSlots) ListAvailableByMentor(ctx context.Context, mentorID uuid.UUID, endingAfter time.Time) ([]domain.Slot, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []domain.Slot
	for _, s := range r.m.slots {
		if s.MentorID == mentorID && s.Status == domain.SlotAvailable && !s.EndDatetime.Before(endingAfter) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDatetime.Before(out[j].StartDatetime) })
	return out, nil
}

func (r memSlots) FindOverlapping(ctx context.Context, mentorID uuid.UUID, start, end time.Time, excludeID uuid.UUID) ([]domain.Slot, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []domain.Slot
	for _, s := range r.m.slots {
		if s.MentorID == mentorID && s.ID != excludeID && s.Occupies() && s.Overlaps(start, end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r memSlots) LockSlot(ctx context.Context, slotID uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	s, ok := r.m.slots[slotID]
	if !ok || s.Status != domain.SlotAvailable {
		return domain.ErrSlotUnavailable
	}
	s.Status = domain.SlotBooked
	r.m.slots[slotID] = s
	return nil
}

func (r memSlots) UnlockSlot(ctx context.Context, slotID uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if s, ok := r.m.slots[slotID]; ok && s.Status == domain.SlotBooked {
		s.Status = domain.SlotAvailable
		r.m.slots[slotID] = s
	}
	return nil
}

func (r memSlots) SetStatus(ctx context.Context, slotID uuid.UUID, status domain.SlotStatus) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	s, ok := r.m.slots[slotID]
	if !ok {
		return domain.ErrSlotNotFound
	}
	s.Status = status
	r.m.slots[slotID] = s
	return nil
}

type memBookings struct{ m *memStore }

func (r memBookings) CreateBooking(ctx context.Context, b *domain.Booking) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, other := range r.m.bookings {
		if other.AvailabilitySlotID == b.AvailabilitySlotID && other.IsActive() {
			return domain.ErrDoubleBooking
		}
	}
	r.m.bookings[b.ID] = *b
	return nil
}

func (r memBookings) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	b, ok := r.m.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

func (r memBookings) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return r.GetByID(ctx, id)
}

func (r memBookings) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	b, ok := r.m.bookings[id]
	if !ok {
		return domain.ErrBookingNotFound
	}
	b.Status = status
	r.m.bookings[id] = b
	return nil
}

func (r memBookings) UpdateSchedule(ctx context.Context, id uuid.UUID, start, end time.Time) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	b, ok := r.m.bookings[id]
	if !ok {
		return domain.ErrBookingNotFound
	}
	b.StartDatetime, b.EndDatetime = start, end
	r.m.bookings[id] = b
	return nil
}

func (r memBookings) HasActiveForSlot(ctx context.Context, slotID uuid.UUID) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, b := range r.m.bookings {
		if b.AvailabilitySlotID == slotID && b.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (r memBookings) CancelPendingForSlot(ctx context.Context, slotID, keepID uuid.UUID) ([]uuid.UUID, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var ids []uuid.UUID
	for id, b := range r.m.bookings {
		if b.AvailabilitySlotID == slotID && id != keepID && b.Status == domain.BookingPending {
			b.Status = domain.BookingCancelled
			r.m.bookings[id] = b
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r memBookings) CountActiveForExpertise(ctx context.Context, expertiseID uuid.UUID) (int, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	n := 0
	for _, b := range r.m.bookings {
		if b.MentorExpertiseID == expertiseID && b.IsActive() {
			n++
		}
	}
	return n, nil
}

func (r memBookings) list(match func(domain.Booking) bool, status domain.BookingStatus) []domain.Booking {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []domain.Booking
	for _, b := range r.m.bookings {
		if match(b) && (status == "" || b.Status == status) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r memBookings) ListByMentor(ctx context.Context, mentorID uuid.UUID, status domain.BookingStatus) ([]domain.Booking, error) {
	return r.list(func(b domain.Booking) bool { return b.MentorID == mentorID }, status), nil
}

func (r memBookings) ListByMentee(ctx context.Context, menteeID uuid.UUID, status domain.BookingStatus) ([]domain.Booking, error) {
	return r.list(func(b domain.Booking) bool { return b.MenteeID == menteeID }, status), nil
}

type memReschedules struct{ m *memStore }

func (r memReschedules) Create(ctx context.Context, req *domain.RescheduleRequest) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, other := range r.m.reschedules {
		if other.BookingID == req.BookingID && other.Status == domain.ReschedulePending {
			return domain.ErrRescheduleExists
		}
	}
	r.m.reschedules[req.ID] = *req
	return nil
}

func (r memReschedules) GetByID(ctx context.Context, id uuid.UUID) (*domain.RescheduleRequest, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	req, ok := r.m.reschedules[id]
	if !ok {
		return nil, domain.ErrRescheduleNotFound
	}
	return &req, nil
}

func (r memReschedules) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.RescheduleRequest, error) {
	return r.GetByID(ctx, id)
}

func (r memReschedules) HasPending(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, req := range r.m.reschedules {
		if req.BookingID == bookingID && req.Status == domain.ReschedulePending {
			return true, nil
		}
	}
	return false, nil
}

func (r memReschedules) Resolve(ctx context.Context, id uuid.UUID, status domain.RescheduleStatus, at time.Time) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	req, ok := r.m.reschedules[id]
	if !ok {
		return domain.ErrRescheduleNotFound
	}
	req.Status = status
	req.ResponseAt = &at
	r.m.reschedules[id] = req
	return nil
}

func (r memReschedules) RejectPendingForBooking(ctx context.Context, bookingID uuid.UUID, at time.Time) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var n int64
	for id, req := range r.m.reschedules {
		if req.BookingID == bookingID && req.Status == domain.ReschedulePending {
			req.Status = domain.RescheduleRejected
			req.ResponseAt = &at
			r.m.reschedules[id] = req
			n++
		}
	}
	return n, nil
}

func (r memReschedules) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.RescheduleRequest, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []domain.RescheduleRequest
	for _, req := range r.m.reschedules {
		if req.BookingID == bookingID {
			out = append(out, req)
		}
	}
	return out, nil
}

type memReviews struct{ m *memStore }

func (r memReviews) Create(ctx context.Context, review *domain.Review) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, other := range r.m.reviews {
		if other.BookingID == review.BookingID {
			return domain.ErrReviewExists
		}
	}
	r.m.reviews[review.ID] = *review
	return nil
}

func (r memReviews) GetByBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Review, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, rv := range r.m.reviews {
		if rv.BookingID == bookingID {
			return &rv, nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

func (r memReviews) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	_, err := r.GetByBooking(ctx, bookingID)
	return err == nil, nil
}

func (r memReviews) ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]domain.Review, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []domain.Review
	for _, rv := range r.m.reviews {
		if rv.MentorID == mentorID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r memReviews) StatsForMentor(ctx context.Context, mentorID uuid.UUID) (domain.RatingStats, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var st domain.RatingStats
	for _, rv := range r.m.reviews {
		if rv.MentorID == mentorID {
			st.Sum += rv.Rating
			st.Count++
		}
	}
	return st, nil
}

type memExpertise struct{ m *memStore }

func (r memExpertise) Create(ctx context.Context, e *domain.Expertise) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, other := range r.m.expertise {
		if other.MentorID == e.MentorID && other.TopicID == e.TopicID {
			return domain.ErrExpertiseExists
		}
	}
	r.m.expertise[e.ID] = *e
	return nil
}

func (r memExpertise) Update(ctx context.Context, e *domain.Expertise) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.expertise[e.ID] = *e
	return nil
}

func (r memExpertise) GetByID(ctx context.Context, id uuid.UUID) (*domain.Expertise, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	e, ok := r.m.expertise[id]
	if !ok {
		return nil, domain.ErrExpertiseNotFound
	}
	return &e, nil
}

func (r memExpertise) FindByMentorAndTopic(ctx context.Context, mentorID, topicID uuid.UUID) (*domain.Expertise, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, e := range r.m.expertise {
		if e.MentorID == mentorID && e.TopicID == topicID {
			return &e, nil
		}
	}
	return nil, domain.ErrExpertiseNotFound
}

func (r memExpertise) Deactivate(ctx context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	e := r.m.expertise[id]
	e.IsActive = false
	r.m.expertise[id] = e
	return nil
}

func (r memExpertise) ListActiveByMentor(ctx context.Context, mentorID uuid.UUID) ([]domain.Expertise, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []domain.Expertise
	for _, e := range r.m.expertise {
		if e.MentorID == mentorID && e.IsActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r memExpertise) TopicExists(ctx context.Context, topicID uuid.UUID) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.m.topics[topicID], nil
}

type memMentors struct{ m *memStore }

func (r memMentors) GetByID(ctx context.Context, id uuid.UUID) (*domain.Mentor, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	mt, ok := r.m.mentors[id]
	if !ok {
		return nil, domain.ErrMentorNotFound
	}
	return &mt, nil
}

func (r memMentors) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	_, err := r.GetByID(ctx, id)
	return err
}

func (r memMentors) UpdateRating(ctx context.Context, id uuid.UUID, average float64, total int) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	mt, ok := r.m.mentors[id]
	if !ok {
		return domain.ErrMentorNotFound
	}
	mt.AverageRating, mt.TotalReviews = average, total
	r.m.mentors[id] = mt
	return nil
}

func (r memMentors) MentorIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, mt := range r.m.mentors {
		if mt.UserID == userID {
			return mt.ID, nil
		}
	}
	return uuid.Nil, domain.ErrProfileNotFound
}

func (r memMentors) MenteeIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	id, ok := r.m.mentees[userID]
	if !ok {
		return uuid.Nil, domain.ErrProfileNotFound
	}
	return id, nil
}
