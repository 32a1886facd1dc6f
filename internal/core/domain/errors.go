package domain

import "errors"

var ErrTaskNotFound = errors.New("task not found")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrProfileIncomplete = errors.New("profile incomplete")

// ErrRecordMismatch guards updates against touching a record whose id does
// not match the entity being written.
var ErrRecordMismatch = errors.New("record id mismatch")
