package audit

// Journal collects the entries an aggregate produced since it was loaded.
// The zero value is ready to use.
type Journal struct {
	pending []Entry
}

func (j *Journal) Record(e Entry) {
	j.pending = append(j.pending, e)
}

// Pending returns the unstored entries in the order they were recorded.
func (j *Journal) Pending() []Entry {
	out := make([]Entry, len(j.pending))
	copy(out, j.pending)
	return out
}

// Clear drops the pending entries once they have been stored.
func (j *Journal) Clear() {
	j.pending = nil
}
