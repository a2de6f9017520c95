package sortkit

// Method identifies one of the supported sorting algorithms. Dispatching on
// a closed enum instead of raw strings keeps the switch in Sort exhaustive;
// external method names are converted once via ParseMethod.
type Method int

const (
	// MethodBubble is plain bubble sort.
	MethodBubble Method = iota
	// MethodShortBubble is bubble sort that stops after a pass with no swaps.
	MethodShortBubble
	// MethodSelection is selection sort.
	MethodSelection
	// MethodInsertion is insertion sort.
	MethodInsertion
	// MethodShell is shell sort.
	MethodShell
	// MethodQuick is quick sort.
	MethodQuick
	// MethodHeap is heap sort.
	MethodHeap
	// MethodMerge is merge sort.
	MethodMerge
)

// String implements the fmt.Stringer interface.
func (m Method) String() string {
	switch m {
	case MethodBubble:
		return "bubble"
	case MethodShortBubble:
		return "short_bubble"
	case MethodSelection:
		return "selection"
	case MethodInsertion:
		return "insertion"
	case MethodShell:
		return "shell"
	case MethodQuick:
		return "quick"
	case MethodHeap:
		return "heap"
	case MethodMerge:
		return "merge"
	default:
		return "unknown"
	}
}

// ParseMethod converts a method name into its Method value. It fails with
// ErrUnknownMethod for a name outside the supported set.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "bubble":
		return MethodBubble, nil
	case "short_bubble":
		return MethodShortBubble, nil
	case "selection":
		return MethodSelection, nil
	case "insertion":
		return MethodInsertion, nil
	case "shell":
		return MethodShell, nil
	case "quick":
		return MethodQuick, nil
	case "heap":
		return MethodHeap, nil
	case "merge":
		return MethodMerge, nil
	default:
		return 0, &ErrUnknownMethod{Name: name}
	}
}
