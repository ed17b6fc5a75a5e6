package services

import (
	"context"
	"errors"
	"testing"
)

// The fid guard must trip before any query runs, so a nil DB handle is safe
// here: reaching GORM at all would panic the test.
func TestListSavedRejectsInvalidFID(t *testing.T) {
	s := NewSavedCastService(nil)

	for _, fid := range []int64{0, -1, -42} {
		if _, err := s.ListSaved(context.Background(), fid, 0, 0); !errors.Is(err, ErrInvalidFID) {
			t.Errorf("ListSaved(%d) err = %v, want ErrInvalidFID", fid, err)
		}
	}
}

func TestCountSavedRejectsInvalidFID(t *testing.T) {
	s := NewSavedCastService(nil)

	if _, err := s.CountSaved(context.Background(), 0); !errors.Is(err, ErrInvalidFID) {
		t.Errorf("CountSaved(0) err = %v, want ErrInvalidFID", err)
	}
}
