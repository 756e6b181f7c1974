// Package dto holds request bodies accepted by the v1 API.
package dto

// Arithmetic operations accepted by ArithmeticRequest.
const (
	OpAdd    = "add"
	OpSub    = "sub"
	OpMul    = "mul"
	OpDiv    = "div"
	OpNegate = "negate"
	OpAbs    = "abs"
)

// ArithmeticRequest asks for left op right, or left op scalar for mul and
// div. Operands are timespan text; LeftTicks and RightTicks take precedence
// when set.
type ArithmeticRequest struct {
	Op         string   `json:"op"`
	Left       string   `json:"left"`
	LeftTicks  *int64   `json:"left_ticks,omitempty"`
	Right      string   `json:"right,omitempty"`
	RightTicks *int64   `json:"right_ticks,omitempty"`
	Scalar     *float64 `json:"scalar,omitempty"`
	Layout     string   `json:"layout,omitempty"`
}
