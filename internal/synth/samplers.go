package synth

import "math"

// probEpsilon keeps success probabilities away from 0 and 1 before they reach
// a logarithm.
const probEpsilon = 1e-4

func clampProb(p float64) float64 {
	return math.Min(1-probEpsilon, math.Max(probEpsilon, p))
}

// Normal draws a standard normal via Box-Muller. Zero uniforms are re-drawn
// so the logarithm stays finite.
func (s *Stream) Normal() float64 {
	u1 := s.Float64()
	for u1 == 0 {
		u1 = s.Float64()
	}
	u2 := s.Float64()
	for u2 == 0 {
		u2 = s.Float64()
	}
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// Gamma draws from Gamma(shape k, scale theta) using Marsaglia-Tsang. The
// squeeze is valid for k >= 1; smaller shapes recurse through k+1 and boost
// by U^(1/k), in that draw order.
func (s *Stream) Gamma(k, theta float64) float64 {
	if k < 1 {
		g := s.Gamma(1+k, theta)
		u := s.Float64()
		for u == 0 {
			u = s.Float64()
		}
		return g * math.Pow(u, 1/k)
	}

	d := k - 1.0/3.0
	c := 1 / math.Sqrt(9*d)
	for {
		x := s.Normal()
		v := 1 + c*x
		for v <= 0 {
			x = s.Normal()
			v = 1 + c*x
		}
		v = v * v * v
		u := s.Float64()
		// Fast squeeze first, exact log test second.
		if u < 1-0.0331*x*x*x*x {
			return d * v * theta
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v * theta
		}
	}
}

// Poisson draws a count: Knuth's multiplicative method below lambda 30, a
// rounded normal approximation above (floored at zero).
func (s *Stream) Poisson(lambda float64) int {
	if lambda >= 30 {
		n := math.Floor(lambda + math.Sqrt(lambda)*s.Normal() + 0.5)
		if n < 0 {
			return 0
		}
		return int(n)
	}

	limit := math.Exp(-lambda)
	count := 0
	p := 1.0
	for {
		count++
		p *= s.Float64()
		if p <= limit {
			break
		}
	}
	return count - 1
}

// Geometric draws a sojourn length by inverse CDF on the {1,2,...} support.
func (s *Stream) Geometric(p float64) int {
	p = clampProb(p)
	u := s.Float64()
	for u == 0 {
		u = s.Float64()
	}
	return int(math.Ceil(math.Log(u) / math.Log(1-p)))
}

// NegativeBinomial draws an overdispersed sojourn length through the
// Gamma-Poisson mixture. The mu/sigma floors keep the mixture parameters
// strictly positive for any calibration input.
func (s *Stream) NegativeBinomial(mean, variance float64) int {
	mu := math.Max(0.1, mean-1)
	sigmaSq := math.Max(mu+0.1, variance)
	beta := (sigmaSq - mu) / mu
	alpha := mu / beta
	lambda := s.Gamma(alpha, beta)
	return s.Poisson(lambda) + 1
}

// Exponential draws a wet-day depth for months without a Gamma fit.
func (s *Stream) Exponential(mean float64) float64 {
	u := s.Float64()
	for u == 0 {
		u = s.Float64()
	}
	return -mean * math.Log(u)
}
