// export_test.go exports private hooks for white-box testing.
package fs

import "time"

// SetRename replaces the rename step of the writer.
func (w *Writer) SetRename(fn func(oldpath, newpath string) error) {
	w.rename = fn
}

// SetRename replaces the rename step of the document store.
func (d *Documents) SetRename(fn func(oldpath, newpath string) error) {
	d.rename = fn
}

// SetClock replaces the refresher's clock.
func (r *StampRefresher) SetClock(now func() time.Time) {
	r.now = now
}
