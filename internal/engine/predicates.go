package engine

// Signed is the subset of Number that can be negated.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

func PositiveNonZero[T Number](x T) bool { return x > 0 }
func Positive[T Number](x T) bool        { return x >= 0 }
func NegativeNonZero[T Number](x T) bool { return x < 0 }
func Negative[T Number](x T) bool        { return x <= 0 }

func NotBiggerThan[T Number](x, y T) bool  { return x <= y }
func NotSmallerThan[T Number](x, y T) bool { return x >= y }

// ModulusIn reports |x| <= y.
func ModulusIn[T Signed](x, y T) bool { return x <= y && x >= -y }

// ModulusOut reports |x| >= y.
func ModulusOut[T Signed](x, y T) bool { return x >= y || x <= -y }
