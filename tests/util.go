package testutil

import (
	"fmt"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core/datefmt"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/document"
)

// IssueDate is the issue date of every fixture request.
var IssueDate = datefmt.New(2024, 3, 28)

func School() document.SchoolInfo {
	return document.SchoolInfo{
		Name:          "Vidya Niketan Public School",
		Address:       "14 Lake View Road, Jayanagar",
		City:          "Bengaluru",
		Phone:         "080-2663 1234",
		Email:         "office@vidyaniketan.edu.in",
		AffiliationNo: "830412",
		SchoolCode:    "45123",
		PrincipalName: "Dr. Meera Raghavan",
		LogoRef:       "assets/logo.png",
		SealRef:       "assets/seal.png",
	}
}

func TCRecord() document.TCStudentRecord {
	return document.TCStudentRecord{
		CertificateNo:         "TC/2024/0117",
		AdmissionNo:           "1042",
		StudentName:           "Aarav Sharma",
		FatherName:            "Rajesh Sharma",
		MotherName:            "Sunita Sharma",
		Nationality:           "Indian",
		Category:              "General",
		DateOfBirth:           datefmt.New(2009, 1, 5),
		AdmissionDate:         datefmt.New(2015, 4, 6),
		AdmissionClass:        "I",
		CurrentClass:          "IX",
		QualifiedForPromotion: true,
		PromotedToClass:       "X",
		LeavingDate:           datefmt.New(2024, 3, 22),
		ReasonForLeaving:      "Parent's transfer",
		LastExamination:       "Class IX Annual Examination, Passed",
		WorkingDays:           220,
		DaysPresent:           208,
		NCCScoutGuide:         "Boy Scout",
		Activities:            "Football, Quiz Club",
		Conduct:               "Good",
	}
}

func BonafideRecord() document.BonafideRecord {
	return document.BonafideRecord{
		AdmissionNo:  "1188",
		StudentName:  "Diya Nair",
		ParentName:   "Suresh Nair",
		Gender:       document.Female,
		Class:        "VII",
		Section:      "B",
		AcademicYear: "2023-24",
		DateOfBirth:  datefmt.New(2011, 11, 12),
		Purpose:      "Passport application",
	}
}

func StaffRecord() document.StaffCertificateRecord {
	return document.StaffCertificateRecord{
		EmployeeID:    "EMP-031",
		StaffName:     "Kavita Iyer",
		Gender:        document.Female,
		Designation:   "PGT Mathematics",
		Department:    "Mathematics",
		DateOfJoining: datefmt.New(2016, 6, 1),
		DateOfLeaving: datefmt.New(2024, 3, 31),
		Salary: []document.SalaryComponent{
			{Name: "Basic Pay", Amount: 32000},
			{Name: "Dearness Allowance", Amount: 8000},
			{Name: "House Rent Allowance", Amount: 5000},
		},
		Purpose: "Bank loan",
		Conduct: "Excellent",
	}
}

func StudentIDRecord(i int) document.StudentIDRecord {
	return document.StudentIDRecord{
		AdmissionNo: fmt.Sprintf("%04d", 2000+i),
		StudentName: fmt.Sprintf("student number %d", i),
		Class:       "V",
		Section:     "A",
		DateOfBirth: datefmt.New(2014, 2, 10),
		BloodGroup:  "B+",
		ParentName:  "Anil Kumar",
		Phone:       "98450 12345",
		Address:     "22 MG Road, Bengaluru",
		ValidUpto:   datefmt.New(2025, 3, 31),
		PhotoRef:    fmt.Sprintf("photos/%04d.jpg", 2000+i),
	}
}

func StaffIDRecord() document.StaffIDRecord {
	return document.StaffIDRecord{
		EmployeeID:    "EMP-031",
		StaffName:     "Kavita Iyer",
		Designation:   "PGT Mathematics",
		Department:    "Mathematics",
		BloodGroup:    "O+",
		Phone:         "98860 55555",
		DateOfJoining: datefmt.New(2016, 6, 1),
		ValidUpto:     datefmt.New(2025, 3, 31),
	}
}

func ReportCardRecord() document.ReportCardRecord {
	return document.ReportCardRecord{
		AdmissionNo:  "1042",
		RollNo:       "17",
		StudentName:  "Aarav Sharma",
		ParentName:   "Rajesh Sharma",
		Class:        "IX",
		Section:      "A",
		AcademicYear: "2023-24",
		Term:         "Term II",
		DateOfBirth:  datefmt.New(2009, 1, 5),
		Subjects: []document.SubjectMarks{
			{Subject: "English", MaxMarks: 100, Obtained: 88},
			{Subject: "Hindi", MaxMarks: 100, Obtained: 79},
			{Subject: "Mathematics", MaxMarks: 100, Obtained: 93},
			{Subject: "Science", MaxMarks: 100, Obtained: 85},
			{Subject: "Social Science", MaxMarks: 100, Obtained: 72},
		},
		WorkingDays: 110,
		DaysPresent: 104,
		Remarks:     "Consistent effort. Keep it up.",
	}
}

// Record returns the fixture record that serves dt.
func Record(dt document.DocumentType) document.RecordData {
	switch dt {
	case document.TransferCertificate:
		return TCRecord()
	case document.BonafideCertificate:
		return BonafideRecord()
	case document.SalaryCertificate, document.ExperienceCertificate:
		return StaffRecord()
	case document.StudentIDCard:
		return StudentIDRecord(1)
	case document.StaffIDCard:
		return StaffIDRecord()
	case document.ReportCard:
		return ReportCardRecord()
	}
	return nil
}

// Request returns a well-formed request for (dt, board).
func Request(dt document.DocumentType, board document.Board) document.Request {
	return document.NewRequest(dt, board, School(), Record(dt), IssueDate)
}

// StudentCards returns n student ID card requests with distinct admission numbers.
func StudentCards(n int) []document.Request {
	reqs := make([]document.Request, n)
	for i := range reqs {
		reqs[i] = document.NewRequest(document.StudentIDCard, document.CBSE, School(), StudentIDRecord(i+1), IssueDate)
	}
	return reqs
}
