package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/frahmantamala/timeclock/internal"
	"github.com/frahmantamala/timeclock/internal/core/datamodel"
	employeeDatamodel "github.com/frahmantamala/timeclock/internal/core/datamodel/employee"
	pointageDatamodel "github.com/frahmantamala/timeclock/internal/core/datamodel/pointage"
	"github.com/frahmantamala/timeclock/internal/pointage"
	pointagePostgres "github.com/frahmantamala/timeclock/internal/pointage/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestPointagePostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Pointage Postgres Suite")
}

var _ = Describe("Pointage Repository", func() {
	var (
		repo  pointage.Repository
		ctx   context.Context
		alice *employeeDatamodel.Employee
		bob   *employeeDatamodel.Employee
	)

	BeforeEach(func() {
		ctx = context.Background()
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&employeeDatamodel.Employee{}, &pointageDatamodel.Pointage{})).To(Succeed())

		alice = &employeeDatamodel.Employee{LastName: "Martin", FirstName: "Alice", Email: "alice@example.com", PasswordHash: "x", Role: "employee"}
		bob = &employeeDatamodel.Employee{LastName: "Durand", FirstName: "Bob", Email: "bob@example.com", PasswordHash: "x", Role: "employee"}
		Expect(db.Create(alice).Error).To(Succeed())
		Expect(db.Create(bob).Error).To(Succeed())

		repo = pointagePostgres.NewPointageRepository(db)
	})

	punch := func(employeeID int64, date, at, kind string) error {
		return repo.Create(ctx, &pointageDatamodel.Pointage{
			EmployeeID: employeeID,
			Date:       datamodel.Date(date),
			Time:       datamodel.ClockTime(at),
			Type:       kind,
		})
	}

	It("translates the uniqueness violation", func() {
		Expect(punch(alice.ID, "2024-05-02", "09:00:00", pointageDatamodel.TypeArrival)).To(Succeed())
		err := punch(alice.ID, "2024-05-02", "10:00:00", pointageDatamodel.TypeArrival)
		Expect(errors.Is(err, internal.ErrPunchAlreadyRecorded)).To(BeTrue())

		Expect(punch(alice.ID, "2024-05-02", "17:00:00", pointageDatamodel.TypeDeparture)).To(Succeed())
		Expect(punch(bob.ID, "2024-05-02", "09:00:00", pointageDatamodel.TypeArrival)).To(Succeed())
	})

	It("lists newest first with employee names", func() {
		Expect(punch(alice.ID, "2024-05-02", "09:00:00", pointageDatamodel.TypeArrival)).To(Succeed())
		Expect(punch(alice.ID, "2024-05-02", "17:00:00", pointageDatamodel.TypeDeparture)).To(Succeed())
		Expect(punch(alice.ID, "2024-04-30", "09:00:00", pointageDatamodel.TypeArrival)).To(Succeed())
		Expect(punch(bob.ID, "2024-05-03", "08:00:00", pointageDatamodel.TypeArrival)).To(Succeed())

		rows, err := repo.List(ctx, pointage.Filter{EmployeeID: alice.ID, Month: "2024-05"})
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(2))
		Expect(string(rows[0].Time)).To(Equal("17:00:00"))
		Expect(rows[0].FirstName).To(Equal("Alice"))

		rows, err = repo.List(ctx, pointage.Filter{})
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(4))
		Expect(string(rows[0].Date)).To(Equal("2024-05-03"))
		Expect(rows[0].LastName).To(Equal("Durand"))
	})

	It("lists one day in ascending time", func() {
		Expect(punch(alice.ID, "2024-05-02", "17:00:00", pointageDatamodel.TypeDeparture)).To(Succeed())
		Expect(punch(alice.ID, "2024-05-02", "09:00:00", pointageDatamodel.TypeArrival)).To(Succeed())

		rows, err := repo.ListForDay(ctx, alice.ID, "2024-05-02")
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(2))
		Expect(rows[0].Type).To(Equal(pointageDatamodel.TypeArrival))
	})

	It("deletes exactly one row", func() {
		Expect(punch(alice.ID, "2024-05-02", "09:00:00", pointageDatamodel.TypeArrival)).To(Succeed())
		Expect(punch(bob.ID, "2024-05-02", "09:00:00", pointageDatamodel.TypeArrival)).To(Succeed())
		rows, err := repo.ListForDay(ctx, alice.ID, "2024-05-02")
		Expect(err).NotTo(HaveOccurred())

		deleted, err := repo.Delete(ctx, rows[0].ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(deleted).To(BeTrue())

		all, err := repo.List(ctx, pointage.Filter{})
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(1))
		Expect(all[0].EmployeeID).To(Equal(bob.ID))

		deleted, err = repo.Delete(ctx, rows[0].ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(deleted).To(BeFalse())
	})
})
