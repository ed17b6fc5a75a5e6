package utils

import (
	"errors"
	"strconv"
)

var ErrInvalidFID = errors.New("invalid fid")

// ParseFID converts a query-string fid to a positive int64.
// Missing, non-numeric or non-positive values all fail.
func ParseFID(s string) (int64, error) {
	if s == "" {
		return 0, ErrInvalidFID
	}
	fid, err := strconv.ParseInt(s, 10, 64)
	if err != nil || fid <= 0 {
		return 0, ErrInvalidFID
	}
	return fid, nil
}

// StringToInt converts string to int, returns 0 if error
func StringToInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}
