package pointage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/frahmantamala/timeclock/internal"
	"github.com/frahmantamala/timeclock/internal/attendance"
	"github.com/frahmantamala/timeclock/internal/auth"
	pointageDatamodel "github.com/frahmantamala/timeclock/internal/core/datamodel/pointage"
	"github.com/frahmantamala/timeclock/internal/core/events"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPointage(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Pointage Suite")
}

// mockRepository enforces the (employee, day, kind) uniqueness the
// database provides.
type mockRepository struct {
	rows   []*pointageDatamodel.Pointage
	nextID int64
	err    error
}

func (m *mockRepository) List(_ context.Context, f Filter) ([]*pointageDatamodel.Pointage, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*pointageDatamodel.Pointage
	for _, r := range m.rows {
		if f.EmployeeID != 0 && r.EmployeeID != f.EmployeeID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRepository) ListForDay(_ context.Context, employeeID int64, date string) ([]*pointageDatamodel.Pointage, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*pointageDatamodel.Pointage
	for _, r := range m.rows {
		if r.EmployeeID == employeeID && string(r.Date) == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRepository) Create(_ context.Context, p *pointageDatamodel.Pointage) error {
	if m.err != nil {
		return m.err
	}
	for _, r := range m.rows {
		if r.EmployeeID == p.EmployeeID && r.Date == p.Date && r.Type == p.Type {
			return internal.ErrPunchAlreadyRecorded
		}
	}
	m.nextID++
	p.ID = m.nextID
	cp := *p
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *mockRepository) Delete(_ context.Context, id int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for i, r := range m.rows {
		if r.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type employeeSet map[int64]bool

func (s employeeSet) Exists(_ context.Context, id int64) (bool, error) {
	return s[id], nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

var _ = Describe("Pointage Service", func() {
	var (
		repo      *mockRepository
		publisher *recordingPublisher
		clock     *internal.FixedClock
		service   *Service
		ctx       context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = &mockRepository{}
		publisher = &recordingPublisher{}
		paris, err := time.LoadLocation("Europe/Paris")
		Expect(err).NotTo(HaveOccurred())
		clock = &internal.FixedClock{T: time.Date(2024, 5, 2, 9, 0, 0, 0, paris)}
		service = NewService(repo, employeeSet{1: true, 2: true}, clock, publisher, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	Describe("Record", func() {
		It("stamps the punch with the business clock", func() {
			p, err := service.Record(ctx, 1, attendance.Arrival, Geo{})
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Date).To(Equal("2024-05-02"))
			Expect(p.Time).To(Equal("09:00:00"))
			Expect(p.Type).To(Equal("arrivee"))
			Expect(publisher.events).To(HaveLen(1))
			Expect(publisher.events[0].EventType()).To(Equal(events.EventTypePunchRecorded))
		})

		It("rejects a second arrival the same day", func() {
			_, err := service.Record(ctx, 1, attendance.Arrival, Geo{})
			Expect(err).NotTo(HaveOccurred())

			clock.T = clock.T.Add(2 * time.Hour)
			_, err = service.Record(ctx, 1, attendance.Arrival, Geo{})
			Expect(errors.Is(err, internal.ErrPunchAlreadyRecorded)).To(BeTrue())
			Expect(repo.rows).To(HaveLen(1))
			Expect(publisher.events).To(HaveLen(1))

			appErr, _ := internal.IsAppError(err)
			Expect(appErr.StatusCode).To(Equal(400))
		})

		It("allows the same kind on another day", func() {
			_, err := service.Record(ctx, 1, attendance.Arrival, Geo{})
			Expect(err).NotTo(HaveOccurred())
			clock.T = clock.T.AddDate(0, 0, 1)
			_, err = service.Record(ctx, 1, attendance.Arrival, Geo{})
			Expect(err).NotTo(HaveOccurred())
		})

		It("requires an existing employee", func() {
			_, err := service.Record(ctx, 9, attendance.Arrival, Geo{})
			Expect(errors.Is(err, internal.ErrEmployeeNotFound)).To(BeTrue())
		})

		It("validates coordinates", func() {
			lat := 123.0
			_, err := service.Record(ctx, 1, attendance.Arrival, Geo{Latitude: &lat})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
			Expect(repo.rows).To(BeEmpty())
		})

		It("wraps storage failures", func() {
			repo.err = errors.New("disk full")
			_, err := service.Record(ctx, 1, attendance.Departure, Geo{})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(500))
		})
	})

	Describe("RecordAuto", func() {
		It("walks arrival, departure, then refuses", func() {
			lat, lng := 48.85, 2.35
			first, err := service.RecordAuto(ctx, 2, Geo{Latitude: &lat, Longitude: &lng})
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Type).To(Equal("arrivee"))
			Expect(*first.Latitude).To(Equal(48.85))

			clock.T = clock.T.Add(8 * time.Hour)
			second, err := service.RecordAuto(ctx, 2, Geo{})
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Type).To(Equal("depart"))
			Expect(second.Time).To(Equal("17:00:00"))

			_, err = service.RecordAuto(ctx, 2, Geo{})
			Expect(errors.Is(err, internal.ErrPunchCycleComplete)).To(BeTrue())
		})

		It("records an arrival when only a departure exists", func() {
			_, err := service.Record(ctx, 1, attendance.Departure, Geo{})
			Expect(err).NotTo(HaveOccurred())
			p, err := service.RecordAuto(ctx, 1, Geo{})
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Type).To(Equal("arrivee"))
		})
	})

	Describe("ListToday", func() {
		It("only returns the current business day", func() {
			_, err := service.Record(ctx, 1, attendance.Arrival, Geo{})
			Expect(err).NotTo(HaveOccurred())
			clock.T = clock.T.AddDate(0, 0, 1)

			today, err := service.ListToday(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(today).To(BeEmpty())
		})
	})

	Describe("Delete", func() {
		It("removes the row and records who deleted it", func() {
			p, err := service.Record(ctx, 1, attendance.Arrival, Geo{})
			Expect(err).NotTo(HaveOccurred())

			adminCtx := auth.ContextWithUser(ctx, &auth.User{ID: 5, Role: auth.RoleAdmin})
			Expect(service.Delete(adminCtx, p.ID)).To(Succeed())
			Expect(repo.rows).To(BeEmpty())

			last := publisher.events[len(publisher.events)-1].(*events.PunchDeletedEvent)
			Expect(last.DeletedBy).To(Equal(int64(5)))
		})

		It("reports a missing row", func() {
			Expect(errors.Is(service.Delete(ctx, 77), internal.ErrPointageNotFound)).To(BeTrue())
		})
	})
})

var _ = Describe("PunchDTO", func() {
	It("accepts the employee id as a number or a string", func() {
		var a, b PunchDTO
		Expect(json.Unmarshal([]byte(`{"employee_id": 12, "type_pointage": "arrivee"}`), &a)).To(Succeed())
		Expect(json.Unmarshal([]byte(`{"employee_id": " 12 ", "type_pointage": "arrivee"}`), &b)).To(Succeed())
		Expect(a.EmployeeID).To(Equal(EmployeeID(12)))
		Expect(b.EmployeeID).To(Equal(EmployeeID(12)))
	})

	It("rejects a non-numeric employee id", func() {
		var d QRPunchDTO
		Expect(json.Unmarshal([]byte(`{"employee_id": "abc"}`), &d)).NotTo(Succeed())
	})

	It("accepts accented and English kinds", func() {
		for _, kind := range []string{"arrivée", "Departure", "depart"} {
			Expect(PunchDTO{EmployeeID: 1, Type: kind}.Validate()).To(BeNil())
		}
	})

	It("flags unknown kinds and missing ids", func() {
		err := PunchDTO{Type: "lunch"}.Validate()
		Expect(err).NotTo(BeNil())
		details := err.Details.(internal.ValidationErrors)
		Expect(details.Errors).To(HaveLen(2))
		Expect(details.Errors[1].Code).To(Equal(string(internal.ErrCodeInvalidPunchType)))
	})
})
