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

package random_test

import (
	"testing"

	"github.com/wagiminator/tinyconsole/random"
	"github.com/wagiminator/tinyconsole/test"
)

func TestKnownSequence(t *testing.T) {
	rnd := random.NewRandom()

	// first values of the register starting from the power-on seed 0xace1.
	// 0xace1 is odd so the first step shifts and applies the taps:
	// (0xace1>>1)^0xb400 = 0x5670^0xb400 = 0xe270. 0xe270 is even so the
	// next value is a plain shift.
	test.Equate(t, rnd.Uint16(), 0xe270)
	test.Equate(t, rnd.Uint16(), 0x7138)
	test.Equate(t, rnd.Uint16(), 0x389c)
	test.Equate(t, rnd.Uint16(), 0x1c4e)
	test.Equate(t, rnd.Uint16(), 0x0e27)
}

func TestDeterminism(t *testing.T) {
	a := random.NewRandomSeeded(0x1234)
	b := random.NewRandomSeeded(0x1234)

	for i := 0; i < 1000; i++ {
		test.Equate(t, a.Uint16(), b.Uint16())
	}
}

func TestNeverZero(t *testing.T) {
	// a zero register would lock the generator. the seeded constructor
	// replaces it with the power-on value
	rnd := random.NewRandomSeeded(0)

	for i := 0; i < 0x10000; i++ {
		if rnd.Uint16() == 0 {
			t.Fatalf("register reached zero after %d steps", i)
		}
	}
}

func TestIntnRange(t *testing.T) {
	rnd := random.NewRandom()

	for i := 0; i < 1000; i++ {
		v := rnd.Intn(4)
		test.Equate(t, v >= 0 && v < 4, true)
	}
}
