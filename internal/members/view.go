package members

type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// View is a snapshot of what the list shows. Exactly one of the three states
// applies: an error view carries only Causes, a loading view carries nothing,
// a ready view carries Rows and the trailing fetch indicator.
type View struct {
	Status       Status
	Causes       []string
	Rows         []Row
	FetchingMore bool
	HasMore      bool
}
