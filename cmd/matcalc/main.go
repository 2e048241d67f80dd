// SPDX-License-Identifier: MIT

// matcalc is a small calculator over the linal text wire format: matrices
// are semicolon-separated columns of space-separated elements, vectors are
// space-separated elements.
//
//	matcalc add "4 3 2;2 2 -1" "1 1 1;1 1 1"
//	matcalc mul "1 4;2 5;3 6" "7 9 11;8 10 12"
//	matcalc det "2 0;0 3"
//	matcalc show "4 3 2;2 2 -100"
//	matcalc vec dot "1 2 3" "4 -5 6"
package main

func main() {
	Execute()
}
