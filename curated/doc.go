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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. Like the Errorf()
// function in the fmt package it takes a formatting pattern and placeholder
// values, and returns an error. Unlike the fmt version, the pattern string
// also identifies the error.
//
// The Is() function checks whether an error was created by Errorf() with a
// specific pattern:
//
//	e := curated.Errorf("sink: %v", err)
//
//	if curated.Is(e, "sink: %v") {
//		...
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the error chain, not just at the head.
//
// The IsAny() function answers whether the error is curated at all. The
// distinction is useful at package boundaries where an uncurated error
// indicates something unexpected has happened.
//
// The Error() function normalises the message chain, removing duplicate
// adjacent parts. This alleviates the problem of when to wrap: a function can
// always wrap with its own pattern without fear of stuttering messages.
//
// Chains are considered to be composed of parts separated by the sub-string
// ': ' as suggested on p239 of "The Go Programming Language" (Donovan,
// Kernighan).
//
// Sentinel patterns should be stored as const strings, suitably named, and
// tested for with Is() or Has().
package curated
