package checkout

// Stage is one of the four checkout phases. The flow is strictly linear:
// shipping, payment, review, then the terminal success stage.
type Stage string

const (
	StageShipping Stage = "shipping"
	StagePayment  Stage = "payment"
	StageReview   Stage = "review"
	StageSuccess  Stage = "success"
)

// Terminal reports whether no further transitions are possible.
func (s Stage) Terminal() bool {
	return s == StageSuccess
}

func (s Stage) String() string {
	return string(s)
}

// ParseStage maps a path/body value to a known stage.
func ParseStage(v string) (Stage, bool) {
	switch Stage(v) {
	case StageShipping, StagePayment, StageReview, StageSuccess:
		return Stage(v), true
	}
	return "", false
}
