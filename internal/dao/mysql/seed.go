package mysql

import (
	"database/sql"
	"time"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dao/mysql/repository"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/model"

	"go.uber.org/zap"
)

// SeedDemoData inserts the demo club when the members table is empty, so a
// fresh deployment comes up with a working admin login. Existing data is
// never touched.
func SeedDemoData(repos *repository.Repositories) error {
	count, err := repos.Member.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	zap.L().Info("empty member registry, inserting demo data")

	date := func(value string) time.Time {
		t, _ := time.Parse("2006-01-02", value)
		return t
	}

	members := []model.Member{
		{
			ID: "PHSC2601001", Name: "Thabo Mokoena", IDNumber: "8501155123089",
			Phone: "083 123 4567", Email: "thabo@example.com", RawPassword: "admin123",
			Status: "Active", Role: "admin", JoinDate: date("2026-01-01"),
			BankName: "FNB", AccountHolder: "Thabo Mokoena",
			AccountNumber: "62851234890", BranchCode: "250655",
		},
		{
			ID: "PHSC2601002", Name: "Zanele Ndlovu", IDNumber: "9203128567089",
			Phone: "082 234 5678", Email: "zanele@example.com", RawPassword: "member123",
			Status: "Active", Role: "member", JoinDate: date("2026-01-01"),
			BankName: "Standard Bank", AccountHolder: "Zanele Ndlovu",
			AccountNumber: "410789234", BranchCode: "051001",
		},
		{
			ID: "PHSC2601003", Name: "Sipho Dlamini", IDNumber: "8807122345089",
			Phone: "071 345 6789", Email: "sipho@example.com", RawPassword: "member123",
			Status: "Active", Role: "member", JoinDate: date("2026-01-01"),
			BankName: "Capitec", AccountHolder: "Sipho Dlamini",
			AccountNumber: "1498765567", BranchCode: "470010",
		},
	}
	for i := range members {
		if err := repos.Member.Create(&members[i]); err != nil {
			return err
		}
	}

	paid := func(value string) sql.NullTime {
		return sql.NullTime{Time: date(value), Valid: true}
	}

	contributions := []model.Contribution{
		{MemberID: "PHSC2601001", Month: "January 2026", Amount: 500, Status: model.ContributionPaid, PaymentDate: paid("2026-01-05")},
		{MemberID: "PHSC2601002", Month: "January 2026", Amount: 500, Status: model.ContributionPaid, PaymentDate: paid("2026-01-06")},
		{MemberID: "PHSC2601003", Month: "January 2026", Amount: 500, Status: model.ContributionPending},
		{MemberID: "PHSC2601001", Month: "December 2025", Amount: 500, Status: model.ContributionPaid, PaymentDate: paid("2025-12-05")},
		{MemberID: "PHSC2601002", Month: "December 2025", Amount: 500, Status: model.ContributionPaid, PaymentDate: paid("2025-12-04")},
		{MemberID: "PHSC2601003", Month: "December 2025", Amount: 500, Status: model.ContributionPaid, PaymentDate: paid("2025-12-03")},
	}
	for i := range contributions {
		if err := repos.Contribution.Create(&contributions[i]); err != nil {
			return err
		}
	}

	announcements := []model.Announcement{
		{
			Title:            "Monthly Meeting - January 2026",
			Message:          "Our next meeting is scheduled for Saturday, 18 January 2026 at 10:00 AM at the community hall.",
			AnnouncementDate: date("2026-01-08"),
			Priority:         model.PriorityHigh,
		},
		{
			Title:            "January Contributions Due",
			Message:          "Please ensure your R500 contribution is paid by 15 January 2026.",
			AnnouncementDate: date("2026-01-08"),
			Priority:         model.PriorityNormal,
		},
	}
	for i := range announcements {
		if err := repos.Announcement.Create(&announcements[i]); err != nil {
			return err
		}
	}

	zap.L().Info("demo data inserted")
	return nil
}
