// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stats

import (
	"math"

	"github.com/capnhook/hwystats/hwy"
	"github.com/capnhook/hwystats/hwy/contrib/vec"
)

// Mean returns the arithmetic mean of x.
//
// Float types sum in T: lane groups first, horizontally reduced, then the
// tail. Integer types sum in 64-bit lanes and the mean truncates toward
// zero; only a sum that overflows 64 bits wraps.
func Mean[T hwy.Lanes](x []T) (T, error) {
	switch len(x) {
	case 0:
		return 0, emptyInput("Mean")
	case 1:
		return x[0], nil
	}
	if isInteger[T]() {
		return integerMean(x), nil
	}
	return vec.Sum(x) / T(len(x)), nil
}

func integerMean[T hwy.Lanes](x []T) T {
	n := len(x)
	if isSigned[T]() {
		return T(sumWide[T, int64](x) / int64(n))
	}
	return T(sumWide[T, uint64](x) / uint64(n))
}

// Variance returns the sample variance of x (Bessel-corrected, divides by
// len(x)-1). A single element and a constant buffer have variance 0.
//
// Integer types are computed in float64 and truncated toward zero,
// saturating at the largest value of T.
func Variance[T hwy.Lanes](x []T) (T, error) {
	return spread("Variance", x, false)
}

// StdDev returns the square root of Variance.
func StdDev[T hwy.Lanes](x []T) (T, error) {
	return spread("StdDev", x, true)
}

// spread returns the variance of x, or its square root when root is set.
func spread[T hwy.Lanes](op string, x []T, root bool) (T, error) {
	switch len(x) {
	case 0:
		return 0, emptyInput(op)
	case 1:
		return 0, nil
	}
	if isConstant(x) {
		return 0, nil
	}

	if isInteger[T]() {
		mean := sumFloat64(x) / float64(len(x))
		v := crossDeviation(x, x, mean, mean) / float64(len(x)-1)
		if root {
			v = math.Sqrt(v)
		}
		return truncSaturate[T](v), nil
	}

	v := floatVariance(x)
	if root {
		v = sqrt(v)
	}
	return v, nil
}

func floatVariance[T hwy.Lanes](x []T) T {
	mean := vec.Sum(x) / T(len(x))
	vm := hwy.Set(mean)
	acc := hwy.Zero[T]()
	var tail T
	forEachGroup[T](len(x),
		func(offset int) {
			d := hwy.Sub(hwy.Load(x[offset:]), vm)
			acc = hwy.Add(acc, hwy.Mul(d, d))
		},
		func(i int) {
			d := x[i] - mean
			tail += d * d
		},
	)
	return (hwy.ReduceSum(acc) + tail) / T(len(x)-1)
}

// checkPair validates the two buffers of a pairwise statistic.
func checkPair[T hwy.Lanes](op string, a, b []T) error {
	if len(a) == 0 || len(b) == 0 {
		return emptyInput(op)
	}
	if len(a) != len(b) {
		return newError(op, KindShapeMismatch, "lengths differ: %d != %d", len(a), len(b))
	}
	return nil
}

// Covariance returns the sample covariance of a and b in float64.
// A single pair of elements has covariance 0.
func Covariance[T hwy.Lanes](a, b []T) (float64, error) {
	if err := checkPair("Covariance", a, b); err != nil {
		return 0, err
	}
	n := len(a)
	if n == 1 {
		return 0, nil
	}
	ma, _ := centre(a)
	mb, _ := centre(b)
	return crossDeviation(a, b, ma, mb) / float64(n-1), nil
}

// Correlation returns the Pearson correlation coefficient of a and b.
//
// If either buffer has zero standard deviation the coefficient is
// undefined; Correlation then returns 0 and no error.
func Correlation[T hwy.Lanes](a, b []T) (float64, error) {
	if err := checkPair("Correlation", a, b); err != nil {
		return 0, err
	}
	m := newMoments(a)
	o := newMoments(b)
	return correlate(a, b, m, o), nil
}

// moments caches the float64 mean and standard deviation of one buffer. A
// constant buffer has sd exactly 0.
type moments struct {
	mean float64
	sd   float64
}

func newMoments[T hwy.Lanes](x []T) moments {
	mean, constant := centre(x)
	m := moments{mean: mean}
	if !constant {
		m.sd = math.Sqrt(crossDeviation(x, x, mean, mean) / float64(len(x)-1))
	}
	return m
}

// centre returns the float64 mean of x and whether x is constant. The mean
// of a constant buffer is exactly x[0], so its deviations are exactly 0.
func centre[T hwy.Lanes](x []T) (float64, bool) {
	if isConstant(x) {
		return float64(x[0]), true
	}
	return sumFloat64(x) / float64(len(x)), false
}

func covariance[T hwy.Lanes](a, b []T, ma, mb moments) float64 {
	n := len(a)
	if n < 2 {
		return 0
	}
	return crossDeviation(a, b, ma.mean, mb.mean) / float64(n-1)
}

func correlate[T hwy.Lanes](a, b []T, ma, mb moments) float64 {
	if ma.sd == 0 || mb.sd == 0 {
		if debugEnabled() {
			logDebug("degenerate correlation", "op", "Correlation", "reason", "zero-variance", "n", len(a))
		}
		return 0
	}
	return covariance(a, b, ma, mb) / (ma.sd * mb.sd)
}
