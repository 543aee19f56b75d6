package records

import (
	"context"
	"time"

	"github.com/asaskevich/govalidator"
)

const dateLayout = "2006-01-02"

// dateFields are the date-valued attributes checked in fixed order so the
// first failing field is deterministic.
var dateFields = []string{"grade_date", "hire_date", "birth_date"}

// validate applies the §3 invariants to an already-normalized record,
// short-circuiting on the first violation. excludeID removes the record's own
// row from the uniqueness checks; zero means a new record.
func (s *Service) validate(ctx context.Context, emp Employee, excludeID int64) error {
	if emp.Name == "" {
		return validationFailed("name", "يرجى إدخال الاسم")
	}

	if emp.FileNo == "" {
		return validationFailed("file_no", "يرجى إدخال رقم الملف")
	}
	taken, err := s.store.fileNoTaken(ctx, emp.FileNo, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return validationFailed("file_no", "رقم الملف مسجل بالفعل")
	}

	if emp.NationalID == "" {
		return validationFailed("national_id", "يرجى إدخال الرقم القومي")
	}
	if len(emp.NationalID) != 14 || !govalidator.IsNumeric(emp.NationalID) {
		return validationFailed("national_id", "الرقم القومي يجب أن يكون 14 رقمًا")
	}
	taken, err = s.store.nationalIDTaken(ctx, emp.NationalID, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return validationFailed("national_id", "هذا الرقم القومي مسجل بالفعل.")
	}

	if emp.Phone != "" && !govalidator.IsNumeric(emp.Phone) {
		return validationFailed("phone", "رقم التليفون يجب أن يحتوي على أرقام فقط")
	}

	for _, field := range dateFields {
		value := FieldValue(emp, field)
		if value == "" {
			continue
		}
		parsed, err := time.ParseInLocation(dateLayout, value, time.Local)
		if err != nil {
			return validationFailed(field, "صيغة التاريخ غير صحيحة في "+Labels[field]+" (يرجى استخدام YYYY-MM-DD)")
		}
		if parsed.After(time.Now()) {
			return validationFailed(field, Labels[field]+" لا يمكن أن يكون في المستقبل")
		}
	}

	return nil
}
