// Package user implements the account workflow: signup, login, and user
// listing.
//
// Login failures are deliberately indistinguishable: an unknown email and a
// wrong password both return ErrInvalidCredentials with no further detail.
// The user's existence is always checked before any hash comparison.
//
// Repository implementations live in repository/postgres/.
package user
