package entities

import "time"

// DateLayout is the storage format for all date-only fields. SQLite's date
// functions operate on it directly, and lexical order equals date order.
const DateLayout = "2006-01-02"

type Member struct {
	ID    uint   `gorm:"primaryKey" json:"memberid"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	// Phone keeps the formatting the member submitted; digit-count rules are
	// applied upstream against the stripped value.
	Phone     string    `gorm:"size:15" json:"phone"`
	JoinDate  string    `gorm:"size:10;not null" json:"joindate"`
	CreatedAt time.Time `json:"created_at"`
}

type LibraryStaff struct {
	ID        uint      `gorm:"primaryKey" json:"staffid"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Role      string    `gorm:"size:100;not null" json:"role"`
	Contact   string    `gorm:"size:255" json:"contact"`
	CreatedAt time.Time `json:"created_at"`
}

func (LibraryStaff) TableName() string {
	return "library_staff"
}
