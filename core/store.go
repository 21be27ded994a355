package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/0xRadioAc7iv/go-coursedb/internal/lock"
	"github.com/0xRadioAc7iv/go-coursedb/internal/logger"
	"github.com/0xRadioAc7iv/go-coursedb/internal/record"
	"github.com/0xRadioAc7iv/go-coursedb/internal/utils"
)

// File is the backing medium of a Store. *os.File satisfies it.
type File interface {
	io.ReaderAt
	io.WriterAt
	io.Closer
}

type syncer interface {
	Sync() error
}

// Store maps course numbers to fixed-size slots of a flat data file.
//
// Course N lives at byte offset N * RecordSize. A slot whose hours field is
// zero is empty, whether it was never written or was deleted.
type Store struct {
	file     File
	lockFile *os.File
	log      zerolog.Logger

	// held across each existence check and the write that follows it
	mu sync.Mutex
}

// CourseUpdate carries a partial update. Nil fields keep their stored value.
type CourseUpdate struct {
	Name     *string
	Schedule *string
	Hours    *uint32
	Size     *uint32
}

// Open opens the data file at path, creating it empty if it does not exist,
// and takes an exclusive lock on it for the lifetime of the Store.
func Open(path string) (*Store, error) {
	lf, err := lock.LockFile(path)
	if err != nil {
		if errors.Is(err, lock.ErrLocked) {
			return nil, err
		}
		return nil, ioFailure(err)
	}

	if !utils.PathExists(path) {
		logger.Info().Str("file", path).Msg("Data file not found. Creating one...")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, DataFilePerm)
	if err != nil {
		lock.UnlockFile(lf)
		return nil, ioFailure(err)
	}

	s := New(f)
	s.lockFile = lf
	s.log = logger.WithField("file", path)
	s.log.Debug().Msg("data file opened")

	return s, nil
}

// New wraps an already opened backing file. The Store takes ownership of f
// and closes it on Close.
func New(f File) *Store {
	return &Store{
		file: f,
		log:  logger.Get(),
	}
}

// Create writes course into slot number. It fails with ErrAlreadyExists if
// the slot is occupied, leaving the stored record untouched.
func (s *Store) Create(number int64, course record.Course) error {
	const op = "create"

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.readSlot(number)
	if err != nil {
		return &StoreError{Op: op, Number: number, Err: err}
	}
	if existing != nil {
		return &StoreError{Op: op, Number: number, Err: ErrAlreadyExists}
	}
	if course.Hours == 0 {
		return &StoreError{Op: op, Number: number, Err: ErrInvalidHours}
	}

	if err := s.writeCourse(number, &course); err != nil {
		return &StoreError{Op: op, Number: number, Err: err}
	}

	s.log.Info().Int64("course", number).Msg("course created")
	return nil
}

// Read returns the course stored in slot number, or ErrNotFound.
func (s *Store) Read(number int64) (record.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, err := s.readSlot(number)
	if err != nil {
		return record.Course{}, &StoreError{Op: "read", Number: number, Err: err}
	}
	if course == nil {
		return record.Course{}, &StoreError{Op: "read", Number: number, Err: ErrNotFound}
	}

	return *course, nil
}

// Update merges the non-nil fields of update into the stored course and
// writes it back in place.
func (s *Store) Update(number int64, update CourseUpdate) error {
	const op = "update"

	s.mu.Lock()
	defer s.mu.Unlock()

	course, err := s.readSlot(number)
	if err != nil {
		return &StoreError{Op: op, Number: number, Err: err}
	}
	if course == nil {
		return &StoreError{Op: op, Number: number, Err: ErrNotFound}
	}
	if update.Hours != nil && *update.Hours == 0 {
		return &StoreError{Op: op, Number: number, Err: ErrInvalidHours}
	}

	update.apply(course)

	if err := s.writeCourse(number, course); err != nil {
		return &StoreError{Op: op, Number: number, Err: err}
	}

	s.log.Info().Int64("course", number).Msg("course updated")
	return nil
}

// Delete zeroes slot number. The file is never shrunk and the slot can be
// created again later.
func (s *Store) Delete(number int64) error {
	const op = "delete"

	s.mu.Lock()
	defer s.mu.Unlock()

	course, err := s.readSlot(number)
	if err != nil {
		return &StoreError{Op: op, Number: number, Err: err}
	}
	if course == nil {
		return &StoreError{Op: op, Number: number, Err: ErrNotFound}
	}

	off, _ := slotOffset(number)
	if _, err := s.file.WriteAt(record.EmptyRecord(), off); err != nil {
		return &StoreError{Op: op, Number: number, Err: ioFailure(err)}
	}

	s.log.Info().Int64("course", number).Msg("course deleted")
	return nil
}

// Sync flushes the backing file if it supports it.
func (s *Store) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.file.(syncer); ok {
		if err := f.Sync(); err != nil {
			return ioFailure(err)
		}
	}
	return nil
}

// Close syncs and closes the backing file and releases the lock.
func (s *Store) Close() error {
	syncErr := s.Sync()

	s.mu.Lock()
	defer s.mu.Unlock()

	var closeErr error
	if s.file != nil {
		if err := s.file.Close(); err != nil {
			closeErr = ioFailure(err)
		}
		s.file = nil
	}

	if s.lockFile != nil {
		lock.UnlockFile(s.lockFile)
		s.lockFile = nil
	}

	s.log.Debug().Msg("data file closed")
	return errors.Join(syncErr, closeErr)
}

// slotOffset returns the byte offset of slot number.
func slotOffset(number int64) (int64, error) {
	if number < 0 || number > MaxRecordNumber {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRecordNumber, number)
	}
	return number * RecordSize, nil
}

// readSlot returns the course in slot number, or nil if the slot is empty.
// A short read past the end of the file means the slot was never written.
func (s *Store) readSlot(number int64) (*record.Course, error) {
	off, err := slotOffset(number)
	if err != nil {
		return nil, err
	}

	if s.file == nil {
		return nil, ioFailure(os.ErrClosed)
	}

	buf := make([]byte, RecordSize)
	n, err := s.file.ReadAt(buf, off)
	if n < RecordSize {
		if err == nil || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, nil
		}
		return nil, ioFailure(err)
	}

	course, err := record.DecodeCourseFromBytes(buf)
	if err != nil {
		return nil, ioFailure(err)
	}

	if !course.Exists() {
		return nil, nil
	}

	return course, nil
}

func (s *Store) writeCourse(number int64, course *record.Course) error {
	off, err := slotOffset(number)
	if err != nil {
		return err
	}

	encoded, err := record.EncodeCourseToBytes(course)
	if err != nil {
		return err
	}

	if _, err := s.file.WriteAt(encoded, off); err != nil {
		return ioFailure(err)
	}

	return nil
}

func (u CourseUpdate) apply(c *record.Course) {
	if u.Name != nil {
		c.Name = record.TruncateText(*u.Name, record.NameWidth)
	}
	if u.Schedule != nil {
		c.Schedule = record.TruncateText(*u.Schedule, record.ScheduleWidth)
	}
	if u.Hours != nil {
		c.Hours = *u.Hours
	}
	if u.Size != nil {
		c.Size = *u.Size
	}
}
