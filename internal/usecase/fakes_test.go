package usecase

import (
	"context"
	"sort"
	"sync"

	"hotel-management/internal/data/entity"
	"hotel-management/internal/data/repository"
	"hotel-management/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fakeStore is a single in-memory backing store shared by the fake
// repositories. One mutex guards everything, which also serializes
// RecordPayment the way the row lock does in production.
type fakeStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*entity.User
	sessions map[string]*entity.Session
	guests   map[uuid.UUID]*entity.Guest
	rooms    map[uuid.UUID]*entity.Room
	bookings map[uuid.UUID]*entity.Booking
	payments []*entity.Payment
	invoices []*entity.Invoice

	// invoiceReadErr, when set, makes invoice reads fail.
	invoiceReadErr error
}

func newTestRepository() (*repository.Repository, *fakeStore) {
	store := &fakeStore{
		users:    make(map[uuid.UUID]*entity.User),
		sessions: make(map[string]*entity.Session),
		guests:   make(map[uuid.UUID]*entity.Guest),
		rooms:    make(map[uuid.UUID]*entity.Room),
		bookings: make(map[uuid.UUID]*entity.Booking),
	}

	return &repository.Repository{
		User:    &fakeUserRepo{store},
		Session: &fakeSessionRepo{store},
		Guest:   &fakeGuestRepo{store},
		Room:    &fakeRoomRepo{store},
		Booking: &fakeBookingRepo{store},
		Payment: &fakePaymentRepo{store},
		Invoice: &fakeInvoiceRepo{store},
	}, store
}

func newTestConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 12},
		Invoice: utils.InvoiceConfig{DefaultTerms: "Payment due by the date stated above."},
	}
}

func strPtr(s string) *string { return &s }

func testDec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fakeUserRepo struct{ store *fakeStore }

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	user, ok := f.store.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, user := range f.store.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct{ store *fakeStore }

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	copied := *session
	f.store.sessions[session.Token.String()] = &copied
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	session, ok := f.store.sessions[token]
	if !ok {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, token string) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	delete(f.store.sessions, token)
	return nil
}

type fakeGuestRepo struct{ store *fakeStore }

func (f *fakeGuestRepo) Create(ctx context.Context, guest *entity.Guest) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	copied := *guest
	f.store.guests[guest.ID] = &copied
	return nil
}

func (f *fakeGuestRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	guest, ok := f.store.guests[id]
	if !ok {
		return nil, nil
	}
	copied := *guest
	return &copied, nil
}

type fakeRoomRepo struct{ store *fakeStore }

func (f *fakeRoomRepo) Create(ctx context.Context, room *entity.Room) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	copied := *room
	f.store.rooms[room.ID] = &copied
	return nil
}

func (f *fakeRoomRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	room, ok := f.store.rooms[id]
	if !ok {
		return nil, nil
	}
	copied := *room
	return &copied, nil
}

func (f *fakeRoomRepo) FindAllActive(ctx context.Context) ([]*entity.Room, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var rooms []*entity.Room
	for _, room := range f.store.rooms {
		if room.IsActive {
			copied := *room
			rooms = append(rooms, &copied)
		}
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].RoomNumber < rooms[j].RoomNumber })
	return rooms, nil
}

type fakeBookingRepo struct{ store *fakeStore }

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	copied := *booking
	f.store.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	booking, ok := f.store.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) FindByBookingNumber(ctx context.Context, bookingNumber string) (*entity.Booking, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, booking := range f.store.bookings {
		if booking.BookingNumber == bookingNumber {
			copied := *booking
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) List(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var bookings []*entity.Booking
	for _, booking := range f.store.bookings {
		copied := *booking
		bookings = append(bookings, &copied)
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	if offset >= len(bookings) {
		return nil, nil
	}
	bookings = bookings[offset:]
	if limit < len(bookings) {
		bookings = bookings[:limit]
	}
	return bookings, nil
}

func (f *fakeBookingRepo) Count(ctx context.Context) (int64, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return int64(len(f.store.bookings)), nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	booking, ok := f.store.bookings[bookingID]
	if !ok {
		return entity.NotFoundError{Resource: "booking"}
	}
	booking.Status = status
	return nil
}

type fakePaymentRepo struct{ store *fakeStore }

func (f *fakePaymentRepo) RecordPayment(ctx context.Context, payment *entity.Payment) (*entity.Booking, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	booking, ok := f.store.bookings[payment.BookingID]
	if !ok {
		return nil, entity.NotFoundError{Resource: "booking"}
	}

	if payment.TransactionID != nil {
		for _, prior := range f.store.payments {
			if prior.BookingID == payment.BookingID &&
				prior.Method == payment.Method &&
				prior.TransactionID != nil &&
				*prior.TransactionID == *payment.TransactionID {
				return nil, entity.ConflictError{Resource: "payment", Msg: "duplicate transaction id for this booking"}
			}
		}
	}

	if err := booking.ApplyPayment(payment.Amount); err != nil {
		return nil, err
	}

	copied := *payment
	f.store.payments = append(f.store.payments, &copied)

	updated := *booking
	return &updated, nil
}

func (f *fakePaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, payment := range f.store.payments {
		if payment.ID == id {
			copied := *payment
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var payments []*entity.Payment
	for _, payment := range f.store.payments {
		if payment.BookingID == bookingID {
			copied := *payment
			payments = append(payments, &copied)
		}
	}
	return payments, nil
}

type fakeInvoiceRepo struct{ store *fakeStore }

func (f *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, prior := range f.store.invoices {
		if prior.BookingID == invoice.BookingID {
			prior.Superseded = true
		}
	}
	copied := *invoice
	f.store.invoices = append(f.store.invoices, &copied)
	return nil
}

func (f *fakeInvoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, invoice := range f.store.invoices {
		if invoice.ID == id {
			copied := *invoice
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Invoice, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if f.store.invoiceReadErr != nil {
		return nil, f.store.invoiceReadErr
	}
	var invoices []*entity.Invoice
	for _, invoice := range f.store.invoices {
		if invoice.BookingID == bookingID {
			copied := *invoice
			invoices = append(invoices, &copied)
		}
	}
	// Newest first, matching the SQL ordering.
	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].CreatedAt.After(invoices[j].CreatedAt)
	})
	return invoices, nil
}
