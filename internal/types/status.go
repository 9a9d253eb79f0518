package types

// Status is a type for the lifecycle status of a row in the database.
// It determines whether the row should be included in queries by default.
type Status string

const (
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
	StatusDeleted   Status = "deleted"
)

func (s Status) String() string {
	return string(s)
}
