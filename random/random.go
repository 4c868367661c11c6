// This file is part of TinyConsole.
//
// TinyConsole is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// TinyConsole is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with TinyConsole.  If not, see <https://www.gnu.org/licenses/>.

package random

// PowerOnSeed is the register value the console starts with.
const PowerOnSeed = 0xace1

// feedback taps of the 16-bit Galois register.
const taps = 0xb400

// Random is the console's pseudo-random number source: a 16-bit Galois
// linear-feedback shift register. The sequence is fully determined by the
// seed, which makes every dependent behaviour (the AI redirect draw in
// particular) reproducible in tests and in parallel instances.
type Random struct {
	reg uint16
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{reg: PowerOnSeed}
}

// NewRandomSeeded creates a Random with a specific start value. A seed of
// zero would lock the register so it is quietly replaced with PowerOnSeed.
func NewRandomSeeded(seed uint16) *Random {
	if seed == 0 {
		seed = PowerOnSeed
	}
	return &Random{reg: seed}
}

// Uint16 advances the register and returns its new value. The value is never
// zero.
func (rnd *Random) Uint16() uint16 {
	if rnd.reg&0x01 == 0x01 {
		rnd.reg = (rnd.reg >> 1) ^ taps
	} else {
		rnd.reg >>= 1
	}
	return rnd.reg
}

// Intn returns a value in the range [0, n).
func (rnd *Random) Intn(n int) int {
	return int(rnd.Uint16()) % n
}
