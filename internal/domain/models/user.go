package models

// User roles
const (
	RoleLandlord  = "landlord"
	RoleCaretaker = "caretaker"
	RoleTenant    = "tenant"
)

// User is an operator account. Passwords are stored bcrypt-hashed.
type User struct {
	BaseModel
	Username string `gorm:"type:varchar(50);unique;not null" json:"username"`
	Password string `gorm:"type:varchar(100);not null" json:"-"`
	Role     string `gorm:"type:varchar(20);not null" json:"role"` // landlord, caretaker, tenant
	Contact  string `gorm:"type:varchar(50)" json:"contact"`
}

// SessionUser is the projection handed to clients after login. It is the
// entire session state; login mints it and logout discards it client-side.
type SessionUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Contact  string `json:"contact,omitempty"`
}
