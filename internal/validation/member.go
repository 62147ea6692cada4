package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/mrlokans/libman/internal/entities"
)

const (
	maxNameLength  = 100
	maxEmailLength = 255
	maxPhoneLength = 15
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

// emailPattern checks for a local@domain.tld shape; full RFC 5322 parsing is
// deliberately out of scope.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MemberInput carries the raw fields of a member creation request.
type MemberInput struct {
	Name     Scalar `json:"name"`
	Email    Scalar `json:"email"`
	Phone    Scalar `json:"phone"`
	JoinDate Scalar `json:"joindate"`
}

// Member validates and normalizes a member creation request. Emails are
// case-folded to lowercase so the store's uniqueness index is effectively
// case-insensitive. Phone numbers keep their submitted formatting; only the
// digit count is checked.
func Member(in MemberInput, now time.Time) (*entities.Member, error) {
	name := in.Name.String()
	if name == "" {
		return nil, errf("name", "name is required")
	}
	if len(name) > maxNameLength {
		return nil, errf("name", "name must be at most %d characters", maxNameLength)
	}

	email := strings.ToLower(in.Email.String())
	if email == "" {
		return nil, errf("email", "email is required")
	}
	if len(email) > maxEmailLength {
		return nil, errf("email", "email must be at most %d characters", maxEmailLength)
	}
	if !emailPattern.MatchString(email) {
		return nil, errf("email", "email must be a valid address")
	}

	phone := in.Phone.String()
	if phone != "" {
		if len(phone) > maxPhoneLength {
			return nil, errf("phone", "phone must be at most %d characters", maxPhoneLength)
		}
		digits := stripNonDigits(phone)
		if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
			return nil, errf("phone", "phone must contain %d to %d digits", minPhoneDigits, maxPhoneDigits)
		}
	}

	joinDate, verr := dateOrToday(in.JoinDate, "joindate", now)
	if verr != nil {
		return nil, verr
	}
	// Joining today is fine; only strictly future dates are rejected.
	if joinDate > now.Format(entities.DateLayout) {
		return nil, errf("joindate", "joindate cannot be in the future")
	}

	return &entities.Member{
		Name:     name,
		Email:    email,
		Phone:    phone,
		JoinDate: joinDate,
	}, nil
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
