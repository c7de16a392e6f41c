// Copyright 2013 Sonia Keys
// License: MIT

// Moonphase: times of the mean new moon.
//
// The series is the truncated one used by the Vietnamese lunisolar
// calendar references: a base polynomial in k, a 25-term periodic
// correction in the solar and lunar anomalies, and 14 planetary
// arguments.  The coefficients are fixed; the calendar conversion
// depends on reproducing them exactly.
package moonphase

import (
	"github.com/soniakeys/unit"

	"github.com/tienminh/laso/base"
)

type mp struct {
	k, T       float64
	E          float64
	M, Mʹ, F, Ω unit.Angle
	A          [14]unit.Angle
}

func newMp(k int) *mp {
	m := &mp{k: float64(k)}
	m.T = m.k / 1236.85
	m.E = base.Horner(m.T, 1, -.002516, -.0000074)
	T2 := m.T * m.T
	m.M = unit.AngleFromDeg(2.5534 + 29.10535670*m.k +
		base.Horner(m.T, 0, 0, -.0000014, -.00000011))
	m.Mʹ = unit.AngleFromDeg(201.5643 + 385.81693528*m.k +
		base.Horner(m.T, 0, 0, .0107582, .00001238, -.000000058))
	m.F = unit.AngleFromDeg(160.7108 + 390.67050284*m.k +
		base.Horner(m.T, 0, 0, -.0016118, -.00000227, .000000011))
	m.Ω = unit.AngleFromDeg(124.7746 - 1.56375588*m.k +
		base.Horner(m.T, 0, 0, .0020672, .00000215))
	m.A[0] = unit.AngleFromDeg(299.77 + .107408*m.k - .009173*T2)
	m.A[1] = unit.AngleFromDeg(251.88 + .016321*m.k)
	m.A[2] = unit.AngleFromDeg(251.83 + 26.651886*m.k)
	m.A[3] = unit.AngleFromDeg(349.42 + 36.412478*m.k)
	m.A[4] = unit.AngleFromDeg(84.66 + 18.206239*m.k)
	m.A[5] = unit.AngleFromDeg(141.74 + 53.303771*m.k)
	m.A[6] = unit.AngleFromDeg(207.14 + 2.453732*m.k)
	m.A[7] = unit.AngleFromDeg(154.84 + 7.30686*m.k)
	m.A[8] = unit.AngleFromDeg(34.52 + 27.261239*m.k)
	m.A[9] = unit.AngleFromDeg(207.19 + .121824*m.k)
	m.A[10] = unit.AngleFromDeg(291.34 + 1.844379*m.k)
	m.A[11] = unit.AngleFromDeg(161.72 + 24.198154*m.k)
	m.A[12] = unit.AngleFromDeg(239.56 + 25.513099*m.k)
	m.A[13] = unit.AngleFromDeg(331.55 + 3.592518*m.k)
	return m
}

// periodic correction for the new moon
func (m *mp) nc() float64 {
	E, M, Mʹ, F, Ω := m.E, m.M, m.Mʹ, m.F, m.Ω
	return -.4072*Mʹ.Sin() +
		.17241*E*M.Sin() +
		.01608*Mʹ.Mul(2).Sin() +
		.01039*F.Mul(2).Sin() +
		.00739*E*(Mʹ-M).Sin() -
		.00514*E*(Mʹ+M).Sin() +
		.00208*E*E*M.Mul(2).Sin() -
		.00111*(Mʹ-F.Mul(2)).Sin() -
		.00057*(Mʹ+F.Mul(2)).Sin() +
		.00056*E*(Mʹ.Mul(2)+M).Sin() -
		.00042*Mʹ.Mul(3).Sin() +
		.00042*E*(M+F.Mul(2)).Sin() +
		.00038*E*(M-F.Mul(2)).Sin() -
		.00024*E*(Mʹ.Mul(2)-M).Sin() -
		.00017*Ω.Sin() -
		.00007*(Mʹ+M.Mul(2)).Sin() +
		.00004*(Mʹ.Mul(2)-F.Mul(2)).Sin() +
		.00004*M.Mul(3).Sin() +
		.00003*(Mʹ+M-F.Mul(2)).Sin() +
		.00003*(Mʹ.Mul(2)+F.Mul(2)).Sin() -
		.00003*(Mʹ+M+F.Mul(2)).Sin() +
		.00003*(Mʹ-M+F.Mul(2)).Sin() -
		.00002*(Mʹ-M-F.Mul(2)).Sin() -
		.00002*(Mʹ.Mul(3)+M).Sin() +
		.00002*Mʹ.Mul(4).Sin()
}

// planetary argument coefficients
var ac = [14]float64{
	.000325, .000165, .000164, .000126, .00011, .000062, .00006,
	.000056, .000047, .000042, .000040, .000037, .000035, .000023,
}

// planetary correction
func (m *mp) a() float64 {
	var a float64
	for i, c := range ac {
		a += c * m.A[i].Sin()
	}
	return a
}

// NewMoon returns the Julian Ephemeris Day of the k-th mean new moon.
//
// k = 0 corresponds to the new moon of 2000 January 6.  Negative k
// reaches earlier new moons.
func NewMoon(k int) float64 {
	m := newMp(k)
	jde := 2451550.09766 + 29.530588861*m.k +
		base.Horner(m.T, 0, 0, .00015437, -.000000150, .00000000073)
	return jde + m.nc() + m.a()
}
