package session

import (
	"encoding/json"
	"fmt"
)

// User is the record of who is currently signed in. It is created whole at
// login/signup time and never partially updated; a new session replaces it
// wholesale.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// marshalUser serializes the user for the key-value store.
func marshalUser(u *User) (string, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return "", fmt.Errorf("failed to marshal user: %w", err)
	}
	return string(b), nil
}

// unmarshalUser parses a stored user record. A record that does not parse,
// or parses to an empty ID, is treated as absent by the caller.
func unmarshalUser(s string) (*User, error) {
	var u User
	if err := json.Unmarshal([]byte(s), &u); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	if u.ID == "" {
		return nil, fmt.Errorf("stored user record has no id")
	}
	return &u, nil
}
