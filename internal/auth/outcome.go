package auth

import (
	"github.com/mfndnc/lab-authentication-with-passport/internal/user"
)

// WrongCredentials is the single failure reason for every local
// sign-in rejection. Unknown username and wrong password must be
// indistinguishable to the caller.
const WrongCredentials = "Wrong Credentials"

// Outcome is the single resolution of an authentication attempt.
// Exactly one of the three fields is set: User on success, Reason on
// an authentication failure, Err on an infrastructure error. Returning
// it by value gives each attempt exactly one resolution.
type Outcome struct {
	User   *user.User
	Reason string
	Err    error
}

func Success(u *user.User) Outcome {
	return Outcome{User: u}
}

func Failure(reason string) Outcome {
	return Outcome{Reason: reason}
}

func Errored(err error) Outcome {
	return Outcome{Err: err}
}

// Authenticated reports whether the attempt resolved to an identity.
func (o Outcome) Authenticated() bool {
	return o.Err == nil && o.User != nil
}
