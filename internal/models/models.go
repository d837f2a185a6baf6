// Package models defines the entities mirrored from the membership backend.
// Every record is owned by the server; the structs here are cache projections
// of list/detail responses, plus the form payloads the client submits.
package models

// SessionUser is the identity projected from the decoded bearer token.
// It exists only while a valid, unexpired token is present and is owned
// exclusively by the session gate.
type SessionUser struct {
	ID    string
	Email string
	Role  string
}

// User is a donor record. RankName and OfficeName are denormalized join
// fields present only in list responses, which is why the users collection
// is refetched after create/update instead of patched locally.
type User struct {
	ID                 int64  `json:"id"`
	FullName           string `json:"full_name"`
	RankID             int64  `json:"rank_id"`
	RankName           string `json:"rank_name,omitempty"`
	BloodGroup         string `json:"blood_group"`
	MobileNumber       string `json:"mobile_number"`
	Email              string `json:"email"`
	DateOfBirth        string `json:"date_of_birth"`
	ServiceStartDate   string `json:"service_start_date"`
	ResidentialAddress string `json:"residential_address"`
	OfficeID           int64  `json:"office_id"`
	OfficeName         string `json:"office_name,omitempty"`
	IsActive           bool   `json:"is_active"`
	LoginID            string `json:"login_id,omitempty"`
}

// Rank is a donor rank (e.g. military or organizational grade).
type Rank struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Office is an office location donors are attached to.
type Office struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"name"`
	Email                string `json:"email"`
	PhoneNumber          string `json:"phone_number"`
	AlternateEmail       string `json:"alternate_email"`
	AlternatePhoneNumber string `json:"alternate_phone_number"`
	Address              string `json:"address"`
}

// DiaryPDF is the single organization-wide diary document.
// At most one record exists system-wide.
type DiaryPDF struct {
	ID         int64  `json:"id"`
	FilePath   string `json:"file_path"`
	FileName   string `json:"file_name"`
	UploadedAt string `json:"uploaded_at"`
}
