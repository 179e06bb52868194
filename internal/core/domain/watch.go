package domain

// ChangeKind represents the type of change to a watched file.
type ChangeKind int

const (
	// ChangeUpdated indicates the file was written or replaced.
	ChangeUpdated ChangeKind = iota

	// ChangeDeleted indicates the file was removed or renamed away.
	ChangeDeleted
)

// DocumentChange is a filesystem event on the loaded document's
// backing file. The UI uses it to offer a reload.
type DocumentChange struct {
	// Kind is the type of change.
	Kind ChangeKind

	// Path is the watched file path.
	Path string
}
