package core

import (
	"math"

	"github.com/0xRadioAc7iv/go-coursedb/internal/record"
)

const (
	RecordSize = record.RecordSize

	// Largest record number whose slot end still fits in an int64 offset.
	MaxRecordNumber = math.MaxInt64/RecordSize - 1

	DataFilePerm = 0644
)
