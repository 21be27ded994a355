package record

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// Course is the decoded form of a single fixed-size slot in the data file.
//
// The record number is not part of the record: it is implied by the byte
// offset of the slot inside the file.
type Course struct {
	Name     string // Course name, at most NameWidth-1 bytes
	Schedule string // Meeting days, e.g. "MWF" or "TR"
	Size     uint32 // Enrollment count
	Hours    uint32 // Credit hours, 0 marks the slot as empty
}

const (
	NameWidth     = 84
	ScheduleWidth = 4
	ReservedWidth = 20
)

// Name (84) + Schedule (4) + Size (4) + Hours (4) + Reserved (20)
const RecordSize = NameWidth + ScheduleWidth + 4 + 4 + ReservedWidth

// Byte offsets of each field inside an encoded record.
const (
	NameOffset     = 0
	ScheduleOffset = NameOffset + NameWidth
	SizeOffset     = ScheduleOffset + ScheduleWidth
	HoursOffset    = SizeOffset + 4
	ReservedOffset = HoursOffset + 4
)

var ErrShortRecord = errors.New("record shorter than fixed record size")

// Exists reports whether the record occupies its slot. A slot that was never
// written, or was deleted, decodes with zero hours.
func (c *Course) Exists() bool {
	return c.Hours != 0
}

// EncodeCourseToBytes serializes a course into exactly RecordSize bytes.
//
// Text fields are truncated and NUL padded by EncodeText. The reserved
// region is always written as zeros.
func EncodeCourseToBytes(course *Course) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.Grow(RecordSize)

	if _, err := buf.Write(EncodeText(course.Name, NameWidth)); err != nil {
		return nil, err
	}
	if _, err := buf.Write(EncodeText(course.Schedule, ScheduleWidth)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, course.Size); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, course.Hours); err != nil {
		return nil, err
	}
	if _, err := buf.Write(make([]byte, ReservedWidth)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// DecodeCourseFromBytes decodes the first RecordSize bytes of data.
// Reserved bytes are skipped without being inspected.
func DecodeCourseFromBytes(data []byte) (*Course, error) {
	if len(data) < RecordSize {
		return nil, ErrShortRecord
	}

	name := make([]byte, NameWidth)
	schedule := make([]byte, ScheduleWidth)
	var size uint32
	var hours uint32

	buf := bytes.NewReader(data[:RecordSize])

	if _, err := io.ReadFull(buf, name); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(buf, schedule); err != nil {
		return nil, err
	}
	if err := binary.Read(buf, binary.LittleEndian, &size); err != nil {
		return nil, err
	}
	if err := binary.Read(buf, binary.LittleEndian, &hours); err != nil {
		return nil, err
	}

	return &Course{
		Name:     DecodeText(name),
		Schedule: DecodeText(schedule),
		Size:     size,
		Hours:    hours,
	}, nil
}

// EmptyRecord returns RecordSize zero bytes, the on-disk form of a deleted slot.
func EmptyRecord() []byte {
	return make([]byte, RecordSize)
}
