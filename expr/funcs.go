package expr

import "math"

// builtin describes one callable function. Defaults fill positions the caller
// left out; a call must supply at least required and at most
// required+len(defaults) arguments.
type builtin struct {
	required int
	defaults []float64
	call     func(args []float64) float64
}

var builtins = map[string]builtin{
	"sin":   unary(math.Sin),
	"cos":   unary(math.Cos),
	"tan":   unary(math.Tan),
	"asin":  unary(math.Asin),
	"acos":  unary(math.Acos),
	"atan":  unary(math.Atan),
	"sqrt":  unary(math.Sqrt),
	"abs":   unary(math.Abs),
	"ceil":  unary(math.Ceil),
	"floor": unary(math.Floor),
	"log": {required: 2, call: func(args []float64) float64 {
		return math.Log(args[0]) / math.Log(args[1])
	}},
	"round": {required: 1, defaults: []float64{0}, call: func(args []float64) float64 {
		factor := math.Pow(10, args[1])
		return math.Round(args[0]*factor) / factor
	}},
	"max": {required: 2, call: func(args []float64) float64 {
		return math.Max(args[0], args[1])
	}},
	"min": {required: 2, call: func(args []float64) float64 {
		return math.Min(args[0], args[1])
	}},
	"sat": unary(func(x float64) float64 {
		return clamp(x, 0, 1)
	}),
	"vsat": unary(func(x float64) float64 {
		return clamp(x, 0, 127)
	}),
	// nl maps [0,1] onto a 2^(k*x) curve normalized to [0,1].
	"nl": {required: 1, defaults: []float64{-2}, call: func(args []float64) float64 {
		x, k := args[0], args[1]
		return (math.Exp2(k*x) - 1) / (math.Exp2(k) - 1)
	}},
}

func unary(fn func(float64) float64) builtin {
	return builtin{required: 1, call: func(args []float64) float64 {
		return fn(args[0])
	}}
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}
