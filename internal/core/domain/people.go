package domain

import "time"

// Gender values accepted on student and teacher records.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// BloodGroup values accepted on student records.
type BloodGroup string

const (
	BloodAPositive  BloodGroup = "A+"
	BloodANegative  BloodGroup = "A-"
	BloodBPositive  BloodGroup = "B+"
	BloodBNegative  BloodGroup = "B-"
	BloodOPositive  BloodGroup = "O+"
	BloodONegative  BloodGroup = "O-"
	BloodABPositive BloodGroup = "AB+"
	BloodABNegative BloodGroup = "AB-"
)

// Teacher is the staff profile linked to a user account via UserID.
type Teacher struct {
	ID            string     `json:"id" bson:"_id"`
	UserID        string     `json:"user_id" bson:"user_id"`
	Name          string     `json:"name" bson:"name"`
	Designation   string     `json:"designation,omitempty" bson:"designation,omitempty"`
	Qualification string     `json:"qualification,omitempty" bson:"qualification,omitempty"`
	Subjects      []string   `json:"subjects" bson:"subjects"`
	Classes       []string   `json:"classes" bson:"classes"`
	Gender        Gender     `json:"gender,omitempty" bson:"gender,omitempty"`
	DOB           *time.Time `json:"dob,omitempty" bson:"dob,omitempty"`
	JoiningDate   *time.Time `json:"joining_date,omitempty" bson:"joining_date,omitempty"`
	Phone         string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Email         string     `json:"email,omitempty" bson:"email,omitempty"`
	Address       string     `json:"address,omitempty" bson:"address,omitempty"`
	Photo         string     `json:"photo,omitempty" bson:"photo,omitempty"`
	Salary        float64    `json:"salary,omitempty" bson:"salary,omitempty"`
	CreatedAt     time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" bson:"updated_at"`
}

// Student is an enrolled pupil. The (RollNo, ClassID, SchoolYearID) triple is
// unique per the students collection's compound index.
type Student struct {
	ID               string     `json:"id" bson:"_id"`
	UserID           string     `json:"user_id" bson:"user_id"`
	Name             string     `json:"name" bson:"name"`
	RollNo           string     `json:"roll_no" bson:"roll_no"`
	ClassID          string     `json:"class_id" bson:"class_id"`
	SectionID        string     `json:"section_id" bson:"section_id"`
	SchoolYearID     string     `json:"school_year_id" bson:"school_year_id"`
	Gender           Gender     `json:"gender,omitempty" bson:"gender,omitempty"`
	DOB              *time.Time `json:"dob,omitempty" bson:"dob,omitempty"`
	BloodGroup       BloodGroup `json:"blood_group,omitempty" bson:"blood_group,omitempty"`
	Religion         string     `json:"religion,omitempty" bson:"religion,omitempty"`
	Email            string     `json:"email,omitempty" bson:"email,omitempty"`
	Phone            string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Address          string     `json:"address,omitempty" bson:"address,omitempty"`
	Photo            string     `json:"photo,omitempty" bson:"photo,omitempty"`
	ParentID         string     `json:"parent_id,omitempty" bson:"parent_id,omitempty"`
	AdmissionDate    *time.Time `json:"admission_date,omitempty" bson:"admission_date,omitempty"`
	GuardianName     string     `json:"guardian_name,omitempty" bson:"guardian_name,omitempty"`
	GuardianPhone    string     `json:"guardian_phone,omitempty" bson:"guardian_phone,omitempty"`
	GuardianRelation string     `json:"guardian_relation,omitempty" bson:"guardian_relation,omitempty"`
	CreatedAt        time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" bson:"updated_at"`
}

// Parent is a guardian profile linked to a user account and to the students
// it is responsible for.
type Parent struct {
	ID         string    `json:"id" bson:"_id"`
	UserID     string    `json:"user_id" bson:"user_id"`
	Name       string    `json:"name" bson:"name"`
	Phone      string    `json:"phone" bson:"phone"`
	Email      string    `json:"email,omitempty" bson:"email,omitempty"`
	Address    string    `json:"address,omitempty" bson:"address,omitempty"`
	Occupation string    `json:"occupation,omitempty" bson:"occupation,omitempty"`
	StudentIDs []string  `json:"student_ids" bson:"student_ids"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
