package dataset

import "errors"

// ErrNoFileFound is returned when the requested filename matches no
// file-kind entity in the database.
var ErrNoFileFound = errors.New("dataset: no file found with that name")

// ErrAmbiguousFile is returned when the requested filename matches
// more than one file-kind entity.
var ErrAmbiguousFile = errors.New("dataset: more than one file found with that name")
