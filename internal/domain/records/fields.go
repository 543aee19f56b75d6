package records

// Fields lists the employee attributes in form and report order. The order is
// part of the contract: reports render columns in this order and validation
// walks date fields in this order.
var Fields = []string{
	"name", "grade", "grade_date", "hire_date", "file_no", "qualification",
	"functional_group", "type_group", "job_title", "department", "current_work",
	"birth_date", "insurance_no", "national_id", "address", "phone", "notes",
}

// Labels maps field keys to the Arabic labels shown in headers and
// validation messages.
var Labels = map[string]string{
	"name":             "الاسم",
	"grade":            "الدرجة",
	"grade_date":       "تاريخ الحصول عليها",
	"hire_date":        "تاريخ التعيين",
	"file_no":          "رقم الملف",
	"qualification":    "المؤهل",
	"functional_group": "مجموعة وظيفية",
	"type_group":       "مجموعة نوعية",
	"job_title":        "المسمى الوظيفي",
	"department":       "القسم",
	"current_work":     "العمل القائم به",
	"birth_date":       "تاريخ الميلاد",
	"insurance_no":     "رقم تأميني",
	"national_id":      "رقم قومي",
	"address":          "عنوان حالي",
	"phone":            "رقم التليفون",
	"notes":            "ملاحظات",
}

// FieldValue returns the employee attribute named by field, or "" for an
// unknown key.
func FieldValue(emp Employee, field string) string {
	switch field {
	case "name":
		return emp.Name
	case "grade":
		return emp.Grade
	case "grade_date":
		return emp.GradeDate
	case "hire_date":
		return emp.HireDate
	case "file_no":
		return emp.FileNo
	case "qualification":
		return emp.Qualification
	case "functional_group":
		return emp.FunctionalGroup
	case "type_group":
		return emp.TypeGroup
	case "job_title":
		return emp.JobTitle
	case "department":
		return emp.Department
	case "current_work":
		return emp.CurrentWork
	case "birth_date":
		return emp.BirthDate
	case "insurance_no":
		return emp.InsuranceNo
	case "national_id":
		return emp.NationalID
	case "address":
		return emp.Address
	case "phone":
		return emp.Phone
	case "notes":
		return emp.Notes
	}
	return ""
}
