package handler

import "time"

type createTeacherRequest struct {
	UserID        string     `json:"user_id"`
	Name          string     `json:"name" validate:"required"`
	Designation   string     `json:"designation"`
	Qualification string     `json:"qualification"`
	Subjects      []string   `json:"subjects"`
	Classes       []string   `json:"classes"`
	Gender        string     `json:"gender" validate:"omitempty,oneof=male female other"`
	DOB           *time.Time `json:"dob"`
	JoiningDate   *time.Time `json:"joining_date"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email" validate:"omitempty,email"`
	Address       string     `json:"address"`
	Photo         string     `json:"photo"`
	Salary        float64    `json:"salary"`
}

type createStudentRequest struct {
	UserID           string     `json:"user_id"`
	Name             string     `json:"name"           validate:"required"`
	RollNo           string     `json:"roll_no"        validate:"required"`
	ClassID          string     `json:"class_id"       validate:"required"`
	SectionID        string     `json:"section_id"     validate:"required"`
	SchoolYearID     string     `json:"school_year_id" validate:"required"`
	Gender           string     `json:"gender"         validate:"omitempty,oneof=male female other"`
	DOB              *time.Time `json:"dob"`
	BloodGroup       string     `json:"blood_group"    validate:"omitempty,oneof=A+ A- B+ B- O+ O- AB+ AB-"`
	Religion         string     `json:"religion"`
	Email            string     `json:"email"          validate:"omitempty,email"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address"`
	Photo            string     `json:"photo"`
	ParentID         string     `json:"parent_id"`
	AdmissionDate    *time.Time `json:"admission_date"`
	GuardianName     string     `json:"guardian_name"`
	GuardianPhone    string     `json:"guardian_phone"`
	GuardianRelation string     `json:"guardian_relation"`
}

type updateStudentRequest struct {
	Name             *string    `json:"name"`
	RollNo           *string    `json:"roll_no"`
	ClassID          *string    `json:"class_id"`
	SectionID        *string    `json:"section_id"`
	SchoolYearID     *string    `json:"school_year_id"`
	Gender           *string    `json:"gender" validate:"omitempty,oneof=male female other"`
	DOB              *time.Time `json:"dob"`
	BloodGroup       *string    `json:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- O+ O- AB+ AB-"`
	Religion         *string    `json:"religion"`
	Email            *string    `json:"email" validate:"omitempty,email"`
	Phone            *string    `json:"phone"`
	Address          *string    `json:"address"`
	Photo            *string    `json:"photo"`
	ParentID         *string    `json:"parent_id"`
	GuardianName     *string    `json:"guardian_name"`
	GuardianPhone    *string    `json:"guardian_phone"`
	GuardianRelation *string    `json:"guardian_relation"`
}

type createParentRequest struct {
	UserID     string   `json:"user_id"`
	Name       string   `json:"name"  validate:"required"`
	Phone      string   `json:"phone" validate:"required"`
	Email      string   `json:"email" validate:"omitempty,email"`
	Address    string   `json:"address"`
	Occupation string   `json:"occupation"`
	StudentIDs []string `json:"student_ids"`
}
