package domain

// Record is any server-owned row. IDs are assigned by the backend and are
// only meaningful on records that came back from a list fetch.
type Record interface {
	RecordID() int64
}
