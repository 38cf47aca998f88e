package auth

import (
	"errors"
	"strings"
)

var (
	ErrNotStaff       = errors.New("account is not staff")
	ErrMissingStaffID = errors.New("staff id is required")
)

// Staff is the admin account a token was issued to.
type Staff struct {
	id       string
	username string
}

func NewStaff(id, username string) (Staff, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Staff{}, ErrMissingStaffID
	}
	return Staff{id: id, username: strings.TrimSpace(username)}, nil
}

func (s Staff) ID() string       { return s.id }
func (s Staff) Username() string { return s.username }
