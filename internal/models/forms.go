package models

import "github.com/bloodlink/admincli/internal/validation"

// UserForm is the payload for creating or updating a donor. Password is only
// sent on create; the backend ignores it on update when empty.
type UserForm struct {
	FullName           string `json:"full_name"`
	RankID             int64  `json:"rank_id"`
	BloodGroup         string `json:"blood_group"`
	MobileNumber       string `json:"mobile_number"`
	Email              string `json:"email"`
	Password           string `json:"password,omitempty"`
	DateOfBirth        string `json:"date_of_birth"`
	ServiceStartDate   string `json:"service_start_date"`
	ResidentialAddress string `json:"residential_address"`
	OfficeID           int64  `json:"office_id"`
	IsActive           bool   `json:"is_active"`
}

func (f UserForm) Validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("full_name", f.FullName, v)
	validation.PositiveInt("rank_id", f.RankID, v)
	validation.Required("blood_group", f.BloodGroup, v)
	validation.BloodGroup("blood_group", f.BloodGroup, v)
	validation.Required("mobile_number", f.MobileNumber, v)
	validation.Phone("mobile_number", f.MobileNumber, v)
	validation.Required("email", f.Email, v)
	validation.Email("email", f.Email, v)
	validation.Date("date_of_birth", f.DateOfBirth, v)
	validation.Date("service_start_date", f.ServiceStartDate, v)
	validation.PositiveInt("office_id", f.OfficeID, v)
	return v
}

type RankForm struct {
	Name string `json:"name"`
}

func (f RankForm) Validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("name", f.Name, v)
	return v
}

type OfficeForm struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	PhoneNumber          string `json:"phone_number"`
	AlternateEmail       string `json:"alternate_email"`
	AlternatePhoneNumber string `json:"alternate_phone_number"`
	Address              string `json:"address"`
}

func (f OfficeForm) Validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("name", f.Name, v)
	validation.Required("email", f.Email, v)
	validation.Email("email", f.Email, v)
	validation.Required("phone_number", f.PhoneNumber, v)
	validation.Phone("phone_number", f.PhoneNumber, v)
	validation.Email("alternate_email", f.AlternateEmail, v)
	validation.Phone("alternate_phone_number", f.AlternatePhoneNumber, v)
	validation.Required("address", f.Address, v)
	return v
}

// RegisterForm is accepted by the session gate's Register operation, which is
// part of the uniform auth contract but not supported for admin accounts.
type RegisterForm struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
