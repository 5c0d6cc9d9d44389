package model

// Revalidator invalidates cached view paths after a successful write.
type Revalidator interface {
	MarkStale(path string)
}
