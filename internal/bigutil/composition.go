/*
Copyright © 2021 ConsenSys Software Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package bigutil provides limb decomposition/recomposition helpers used to
// implement Element.Bits and the bit-splitting generator in package
// builder, without duplicating big.Int bit-twiddling at each call site.
package bigutil

import (
	"github.com/pkg/errors"
	"math/big"
)

// Recompose combines the limbs in inputs, each of width nbBits, little-endian,
// into res. It errors if inputs is empty or res is nil.
//
// The following holds:
//
//	res = sum_i inputs[i] * 2^(nbBits*i)
func Recompose(inputs []*big.Int, nbBits uint, res *big.Int) error {
	if len(inputs) == 0 {
		return errors.New("bigutil: zero length slice input")
	}
	if res == nil {
		return errors.New("bigutil: result not initialized")
	}
	res.SetUint64(0)
	for i := range inputs {
		res.Lsh(res, nbBits)
		res.Add(res, inputs[len(inputs)-i-1])
	}
	return nil
}

// Decompose splits input into limbs of width nbBits, little-endian, writing
// len(res) limbs into res. It errors if the decomposition does not fit.
//
// The following holds:
//
//	input = sum_i res[i] * 2^(nbBits*i)
func Decompose(input *big.Int, nbBits uint, res []*big.Int) error {
	if input.Sign() < 0 {
		return errors.New("bigutil: cannot decompose a negative integer")
	}
	if input.BitLen() > len(res)*int(nbBits) {
		return errors.Errorf("bigutil: %d-bit integer does not fit into %d limbs of %d bits", input.BitLen(), len(res), nbBits)
	}
	base := new(big.Int).Lsh(big.NewInt(1), nbBits)
	tmp := new(big.Int).Set(input)
	for i := 0; i < len(res); i++ {
		if res[i] == nil {
			res[i] = new(big.Int)
		}
		res[i].Mod(tmp, base)
		tmp.Rsh(tmp, nbBits)
	}
	return nil
}

// Bits decomposes input into exactly width single-bit limbs, little-endian,
// zero-padding high bits. It is Decompose specialized to nbBits=1, as used by
// the canonical bit decomposition of a field element.
func Bits(input *big.Int, width int) ([]bool, error) {
	limbs := make([]*big.Int, width)
	for i := range limbs {
		limbs[i] = new(big.Int)
	}
	if err := Decompose(input, 1, limbs); err != nil {
		return nil, err
	}
	bits := make([]bool, width)
	for i, l := range limbs {
		bits[i] = l.Sign() != 0
	}
	return bits, nil
}
