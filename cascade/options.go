package cascade

// DefaultThreshold is the filled-neighbor count at or above which a cell stays.
const DefaultThreshold = 4

const (
	panicThresholdInvalid = "cascade: WithThreshold: threshold must be in [0,9]"
	panicScanOrderInvalid = "cascade: scan order must be a permutation of all cell indices"
)

// ScanOrder returns the row-major cell indices of a height×width grid in the
// order the mark phase visits them. It must return a permutation.
type ScanOrder func(height, width int) []int

// RowMajor visits rows top to bottom, columns left to right.
func RowMajor(height, width int) []int {
	order := make([]int, height*width)
	for i := range order {
		order[i] = i
	}
	return order
}

// ColumnMajor visits columns left to right, rows top to bottom.
func ColumnMajor(height, width int) []int {
	order := make([]int, 0, height*width)
	for col := 0; col < width; col++ {
		for row := 0; row < height; row++ {
			order = append(order, row*width+col)
		}
	}
	return order
}

// ReverseRowMajor visits cells from the bottom-right corner back to the top-left.
func ReverseRowMajor(height, width int) []int {
	n := height * width
	order := make([]int, n)
	for i := range order {
		order[i] = n - 1 - i
	}
	return order
}

// Option configures the pass engine and fixpoint driver.
type Option func(*Options)

// Options holds the effective engine configuration.
type Options struct {
	// Threshold: a filled cell with fewer filled neighbors is eligible.
	Threshold int
	// Conn chooses 4- or 8-directional neighborhoods.
	Conn Connectivity
	// Order is the mark-phase visiting order.
	Order ScanOrder
	// OnGeneration, if non-nil, receives the 1-based generation number and
	// its removal count after each apply phase, including the terminal one.
	OnGeneration func(gen, removed int)
	// OnPhase, if non-nil, is invoked on every state machine transition.
	OnPhase func(Phase)
}

// DefaultOptions returns Options with Threshold=4, Conn8 and RowMajor order.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Conn:      Conn8,
		Order:     RowMajor,
	}
}

// WithThreshold sets the removal threshold. Panics outside [0,9].
func WithThreshold(n int) Option {
	if n < 0 || n > 9 {
		panic(panicThresholdInvalid)
	}
	return func(o *Options) {
		o.Threshold = n
	}
}

// WithConnectivity selects the neighborhood used for counting.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithScanOrder sets the mark-phase visiting order. A nil order is ignored.
func WithScanOrder(order ScanOrder) Option {
	return func(o *Options) {
		if order != nil {
			o.Order = order
		}
	}
}

// WithOnGeneration installs fn as a per-generation hook.
func WithOnGeneration(fn func(gen, removed int)) Option {
	return func(o *Options) {
		o.OnGeneration = fn
	}
}

// WithOnPhase installs fn as a state transition hook.
func WithOnPhase(fn func(Phase)) Option {
	return func(o *Options) {
		o.OnPhase = fn
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *Options) enter(p Phase) {
	if o.OnPhase != nil {
		o.OnPhase(p)
	}
}

// scanOrder resolves the visiting order for g and checks it is a permutation.
// Complexity: O(W×H).
func (o *Options) scanOrder(g *Grid) []int {
	order := o.Order(g.height, g.width)
	n := len(g.cells)
	if len(order) != n {
		panic(panicScanOrderInvalid)
	}
	seen := make([]bool, n)
	for _, idx := range order {
		if idx < 0 || idx >= n || seen[idx] {
			panic(panicScanOrderInvalid)
		}
		seen[idx] = true
	}
	return order
}
