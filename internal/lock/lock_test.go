package lock_test

import (
	"path/filepath"
	"testing"

	"github.com/0xRadioAc7iv/go-coursedb/core"
	"github.com/0xRadioAc7iv/go-coursedb/internal/lock"
)

func TestLockFile(t *testing.T) {
	t.Run("process does not allow access to data file while lock is active", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "courses.dat")

		s, err := core.Open(path)
		if err != nil {
			t.Fatalf("Could not open initial store: %v", err)
		}
		defer s.Close()

		if _, err := lock.LockFile(path); err == nil {
			t.Error("Lock was not supposed to be acquired")
		}

		s2, err := core.Open(path)
		if err == nil {
			s2.Close()
			t.Error("Second store was not supposed to open")
		}
	})

	t.Run("process allows access to data file once lock is released", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "courses.dat")

		s, err := core.Open(path)
		if err != nil {
			t.Fatalf("Store was supposed to open: %v", err)
		}
		s.Close()

		s2, err := core.Open(path)
		if err != nil {
			t.Errorf("Store was supposed to reopen: %v", err)
			return
		}
		s2.Close()
	})
}
