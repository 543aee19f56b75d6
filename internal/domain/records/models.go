package records

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Grade           string `json:"grade"`
	GradeDate       string `json:"gradeDate"`
	HireDate        string `json:"hireDate"`
	FileNo          string `json:"fileNo"`
	Qualification   string `json:"qualification"`
	FunctionalGroup string `json:"functionalGroup"`
	TypeGroup       string `json:"typeGroup"`
	JobTitle        string `json:"jobTitle"`
	Department      string `json:"department"`
	CurrentWork     string `json:"currentWork"`
	BirthDate       string `json:"birthDate"`
	InsuranceNo     string `json:"insuranceNo"`
	NationalID      string `json:"nationalId"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Notes           string `json:"notes"`
}

type Attachment struct {
	ID          uuid.UUID `json:"id"`
	EmployeeID  int64     `json:"employeeId"`
	Filename    string    `json:"filename"`
	Path        string    `json:"path"`
	ContentType string    `json:"contentType"`
	UploadedAt  time.Time `json:"uploadedAt"`
	IsPhoto     bool      `json:"isPhoto"`
}

func NewAttachment(employeeID int64, filename, path, contentType string, isPhoto bool) Attachment {
	return Attachment{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		Filename:    filename,
		Path:        path,
		ContentType: contentType,
		UploadedAt:  time.Now(),
		IsPhoto:     isPhoto,
	}
}
