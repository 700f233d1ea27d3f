package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/locvowork/hrms_lite/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// NormalizeEmployee trims the text fields and lower-cases the email.
func NormalizeEmployee(in domain.EmployeeInput) domain.EmployeeInput {
	return domain.EmployeeInput{
		EmployeeID: strings.TrimSpace(in.EmployeeID),
		FullName:   strings.TrimSpace(in.FullName),
		Email:      strings.ToLower(strings.TrimSpace(in.Email)),
		Department: strings.TrimSpace(in.Department),
	}
}

// ValidateEmployee checks an already normalized EmployeeInput.
func ValidateEmployee(in domain.EmployeeInput) error {
	vErr := &domain.ValidationError{}
	collect(vErr, validate.Struct(in))
	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

// ValidateAttendance checks an AttendanceInput and returns its parsed date.
func ValidateAttendance(in domain.AttendanceInput) (domain.Date, error) {
	vErr := &domain.ValidationError{}
	collect(vErr, validate.Struct(in))

	var date domain.Date
	if in.Date != "" {
		parsed, err := domain.ParseDate(in.Date)
		if err != nil {
			vErr.Add("date", "must be a valid date (YYYY-MM-DD)")
		} else {
			date = parsed
		}
	}

	if vErr.HasErrors() {
		return domain.Date{}, vErr
	}
	return date, nil
}

func collect(vErr *domain.ValidationError, err error) {
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		vErr.Add("_", err.Error())
		return
	}
	for _, fe := range fieldErrs {
		vErr.Add(fe.Field(), message(fe))
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}
