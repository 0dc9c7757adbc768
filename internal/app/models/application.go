package models

import "time"

// ApplicationStatus is the closed set of admission application states
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "Pending"
	StatusApproved ApplicationStatus = "Approved"
	StatusRejected ApplicationStatus = "Rejected"
)

// IsValid reports whether the status is one of the three known values
func (s ApplicationStatus) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Application defines an admission application based on the 'applications'
// table. Created by public submission; status is mutated only by admins.
type Application struct {
	ID                    int64             `json:"id" db:"id"`
	FullName              string            `json:"fullName" db:"full_name"`
	Email                 string            `json:"email" db:"email"`
	Phone                 string            `json:"phone" db:"phone"`
	DateOfBirth           *string           `json:"dateOfBirth,omitempty" db:"date_of_birth"` // stored as submitted, formatted on export
	Gender                *string           `json:"gender,omitempty" db:"gender"`
	NationalID            *string           `json:"nationalId,omitempty" db:"national_id"`
	Address               *string           `json:"address,omitempty" db:"address"`
	City                  *string           `json:"city,omitempty" db:"city"`
	County                *string           `json:"county,omitempty" db:"county"`
	NextOfKinName         *string           `json:"nextOfKinName,omitempty" db:"next_of_kin_name"`
	NextOfKinPhone        *string           `json:"nextOfKinPhone,omitempty" db:"next_of_kin_phone"`
	NextOfKinRelationship *string           `json:"nextOfKinRelationship,omitempty" db:"next_of_kin_relationship"`
	CourseApplied         string            `json:"courseApplied" db:"course_applied"` // free text, not a courses reference
	Intake                *string           `json:"intake,omitempty" db:"intake"`
	ModeOfStudy           *string           `json:"modeOfStudy,omitempty" db:"mode_of_study"`
	EducationLevel        *string           `json:"educationLevel,omitempty" db:"education_level"`
	PreviousSchool        *string           `json:"previousSchool,omitempty" db:"previous_school"`
	FinancierName         *string           `json:"financierName,omitempty" db:"financier_name"`
	FinancierPhone        *string           `json:"financierPhone,omitempty" db:"financier_phone"`
	FinancierRelationship *string           `json:"financierRelationship,omitempty" db:"financier_relationship"`
	Status                ApplicationStatus `json:"status" db:"status"`
	CreatedAt             time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt             time.Time         `json:"updatedAt" db:"updated_at"`
}

// ApplicationDescriptor parameterizes the shared CRUD machinery for
// applications. No asset slot: applications carry no binary attachment.
var ApplicationDescriptor = Descriptor{
	Name:  "application",
	Table: "applications",
	Columns: []string{
		"full_name", "email", "phone", "date_of_birth", "gender", "national_id",
		"address", "city", "county",
		"next_of_kin_name", "next_of_kin_phone", "next_of_kin_relationship",
		"course_applied", "intake", "mode_of_study", "education_level", "previous_school",
		"financier_name", "financier_phone", "financier_relationship",
		"status",
	},
	Required: []string{"full_name", "email", "phone", "course_applied"},
}
