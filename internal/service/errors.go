package service

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrRecordNotFound  = errors.New("hasil pemeriksaan not found")
)
