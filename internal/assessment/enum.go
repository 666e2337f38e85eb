package assessment

type State string

const (
	StateLoading    State = "LOADING"
	StateInProgress State = "IN_PROGRESS"
	StateScored     State = "SCORED"
)

type Status string

const (
	StatusCorrect          Status = "Correct"
	StatusPartiallyCorrect Status = "Partially Correct"
	StatusWrong            Status = "Wrong"
)

var AllStatuses = []Status{
	StatusCorrect,
	StatusPartiallyCorrect,
	StatusWrong,
}

func (s Status) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Points is what a question with this status adds to the score.
func (s Status) Points() float64 {
	switch s {
	case StatusCorrect:
		return 1
	case StatusPartiallyCorrect:
		return 0.5
	default:
		return 0
	}
}
