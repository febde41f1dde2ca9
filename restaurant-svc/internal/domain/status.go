package domain

// statusFlow is the forward path an order takes from submission to hand-off.
var statusFlow = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusDelivering,
	StatusCompleted,
}

func ValidStatus(s OrderStatus) bool {
	if s == StatusCanceled {
		return true
	}
	for _, step := range statusFlow {
		if step == s {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// CanTransition accepts the next step of the flow, or a cancellation of an order still in progress.
func CanTransition(from, to OrderStatus) bool {
	if !ValidStatus(from) || !ValidStatus(to) || from.IsTerminal() {
		return false
	}
	if to == StatusCanceled {
		return true
	}
	for i := 0; i < len(statusFlow)-1; i++ {
		if statusFlow[i] == from {
			return statusFlow[i+1] == to
		}
	}
	return false
}
