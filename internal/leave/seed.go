package leave

import "time"

// SeedData returns the fixture employees and requests used for local
// development and demos. Loading it is always an explicit call, never a
// package initialization side effect.
func SeedData() Snapshot {
	return Snapshot{
		Employees: []Employee{
			{
				ID:                "EMP001",
				Name:              "Sachin Goswami",
				Email:             "sachin.goswami@company.com",
				Department:        "Engineering",
				HireDate:          NewDate(2022, time.January, 15),
				AnnualEntitlement: 25,
				SickEntitlement:   10,
				Active:            true,
			},
			{
				ID:                "EMP002",
				Name:              "Ravi Punekar",
				Email:             "ravi.punekar@company.com",
				Department:        "Marketing",
				HireDate:          NewDate(2021, time.March, 10),
				AnnualEntitlement: 28,
				SickEntitlement:   12,
				Active:            true,
			},
			{
				ID:                "EMP003",
				Name:              "Rahul Deshpande",
				Email:             "rahul.deshpande@company.com",
				Department:        "HR",
				HireDate:          NewDate(2020, time.June, 5),
				AnnualEntitlement: 30,
				SickEntitlement:   15,
				Active:            true,
			},
			{
				ID:                "EMP004",
				Name:              "Archana Jadhav",
				Email:             "archana.jadhav@company.com",
				Department:        "Finance",
				HireDate:          NewDate(2023, time.February, 20),
				AnnualEntitlement: 22,
				SickEntitlement:   10,
				Active:            true,
			},
			{
				ID:                "EMP005",
				Name:              "Preeti Kulkarni",
				Email:             "preeti.kulkarni@company.com",
				Department:        "Sales",
				HireDate:          NewDate(2021, time.September, 12),
				AnnualEntitlement: 25,
				SickEntitlement:   12,
				Active:            true,
			},
		},
		LeaveRequests: []Request{
			{
				ID:            "REQ001",
				EmployeeID:    "EMP001",
				Type:          TypeAnnual,
				StartDate:     NewDate(2025, time.November, 1),
				EndDate:       NewDate(2025, time.November, 5),
				DaysRequested: 5,
				Reason:        "Family vacation",
				Status:        StatusApproved,
				SubmittedAt:   time.Date(2025, time.October, 1, 9, 0, 0, 0, time.UTC),
				ApprovedBy:    "HR Manager",
				ApprovedAt:    timePtr(time.Date(2025, time.October, 2, 14, 30, 0, 0, time.UTC)),
			},
			{
				ID:            "REQ002",
				EmployeeID:    "EMP001",
				Type:          TypeSick,
				StartDate:     NewDate(2025, time.September, 15),
				EndDate:       NewDate(2025, time.September, 17),
				DaysRequested: 3,
				Reason:        "Flu symptoms",
				Status:        StatusApproved,
				SubmittedAt:   time.Date(2025, time.September, 15, 8, 30, 0, 0, time.UTC),
				ApprovedBy:    "HR Manager",
				ApprovedAt:    timePtr(time.Date(2025, time.September, 15, 10, 0, 0, 0, time.UTC)),
			},
			{
				ID:            "REQ003",
				EmployeeID:    "EMP002",
				Type:          TypeAnnual,
				StartDate:     NewDate(2025, time.December, 20),
				EndDate:       NewDate(2025, time.December, 31),
				DaysRequested: 8,
				Reason:        "Holiday break",
				Status:        StatusPending,
				SubmittedAt:   time.Date(2025, time.October, 20, 11, 15, 0, 0, time.UTC),
			},
		},
	}
}

func timePtr(t time.Time) *time.Time { return &t }
