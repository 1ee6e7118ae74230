package bfvm

import (
	"encoding/gob"
	"io"
)

// Snapshot serializes the resumable VM state: program, IP, tape, and open
// loops. The I/O endpoints are not part of the snapshot.
func (v *VM) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return nil
}

func (v *VM) Restore(r io.Reader) error {
	dec := gob.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return err
	}
	return nil
}
