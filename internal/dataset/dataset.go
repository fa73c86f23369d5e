package dataset

// Dataset is the immutable, ordered collection of problem records loaded at
// startup. A nil *Dataset behaves as an empty one.
type Dataset struct {
	records []ProblemRecord
	byID    map[string]int
}

// New copies records into a new Dataset. Later changes to the caller's slice
// are not observed.
func New(records []ProblemRecord) *Dataset {
	d := &Dataset{
		records: make([]ProblemRecord, len(records)),
		byID:    make(map[string]int, len(records)),
	}
	copy(d.records, records)

	for i, rec := range d.records {
		// first occurrence wins for duplicated ids
		if _, exists := d.byID[rec.ID.String()]; !exists {
			d.byID[rec.ID.String()] = i
		}
	}
	return d
}

// Len returns the number of records
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// At returns a copy of the i-th record in dataset order
func (d *Dataset) At(i int) ProblemRecord {
	return d.records[i]
}

// Range calls fn for every record in dataset order until fn returns false.
func (d *Dataset) Range(fn func(i int, rec ProblemRecord) bool) {
	if d == nil {
		return
	}
	for i, rec := range d.records {
		if !fn(i, rec) {
			return
		}
	}
}

// Records returns a copy of all records in dataset order
func (d *Dataset) Records() []ProblemRecord {
	if d == nil {
		return nil
	}
	out := make([]ProblemRecord, len(d.records))
	copy(out, d.records)
	return out
}

// ByID looks up a record by its identifier
func (d *Dataset) ByID(id string) (ProblemRecord, bool) {
	if d == nil {
		return ProblemRecord{}, false
	}
	i, ok := d.byID[id]
	if !ok {
		return ProblemRecord{}, false
	}
	return d.records[i], true
}
