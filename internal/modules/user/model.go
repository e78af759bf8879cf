// README: User account record (local credentials and/or Google identity).
package user

import (
	"time"

	"roamhaven/internal/types"
)

// User holds an account. PasswordHash is empty for OAuth-only accounts;
// GoogleID is empty for local accounts.
type User struct {
	ID           types.ID  `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	GoogleID     string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
