// Package primitives builds higher-level cryptographic gadgets (a block
// cipher, hash constructions, a Merkle tree) entirely out of
// builder.GadgetBuilder's public operations: nothing here touches a wire
// or a constraint directly.
package primitives

import (
	"math/big"

	"github.com/gadgetlib/r1cs/builder"
	"github.com/gadgetlib/r1cs/errs"
	"github.com/gadgetlib/r1cs/expr"
	"github.com/gadgetlib/r1cs/field"
)

// MiMCRounds returns the round count MiMC needs over a field of the given
// order: ceil(log_3(order)), enough applications of the cube map for its
// algebraic degree to saturate the field.
func MiMCRounds(order *big.Int) int {
	if order.Sign() <= 0 {
		return 1
	}
	rounds := 0
	bound := big.NewInt(1)
	three := big.NewInt(3)
	for bound.Cmp(order) < 0 {
		bound.Mul(bound, three)
		rounds++
	}
	if rounds == 0 {
		rounds = 1
	}
	return rounds
}

// MiMC evaluates the MiMC block cipher: MiMCRounds(order) applications of
// x <- (x + key + c_i)^3, followed by a final key addition. The round
// constants are a fixed counting sequence (1, 2, 3, ...), not a
// nothing-up-my-sleeve derivation; see DESIGN.md for that tradeoff.
func MiMC(b *builder.GadgetBuilder, msg, key expr.Expression) expr.Expression {
	f := b.Field()
	rounds := MiMCRounds(f.Order())
	x := msg
	for i := 0; i < rounds; i++ {
		c := expr.Constant(f, field.FromUint64(f, uint64(i+1)))
		t := x.Add(key).Add(c)
		x = b.Exp(t, 3)
	}
	return x.Add(key)
}

// Cipher is a keyed permutation of a single field element, the shape MiMC
// has and DaviesMeyer consumes.
type Cipher func(b *builder.GadgetBuilder, msg, key expr.Expression) expr.Expression

// Compress2 hashes two field elements into one.
type Compress2 func(b *builder.GadgetBuilder, chain, block expr.Expression) expr.Expression

// DaviesMeyer builds a one-way compression function from a block cipher
// keyed by the block: compress(chain, block) = cipher(msg=chain,
// key=block) + chain.
func DaviesMeyer(cipher Cipher) Compress2 {
	return func(b *builder.GadgetBuilder, chain, block expr.Expression) expr.Expression {
		return cipher(b, chain, block).Add(chain)
	}
}

// MiMCCompress2 hashes two field elements with MiMC inside a Davies-Meyer
// compression. It is suitable both as MerkleDamgard's compress and as
// MerkleRoot's pairwise hash.
func MiMCCompress2(b *builder.GadgetBuilder, left, right expr.Expression) expr.Expression {
	return DaviesMeyer(MiMC)(b, left, right)
}

// MerkleDamgard folds a sequence of blocks through compress, starting from
// iv, each output chaining into the next input. It panics with
// ErrEmptySequence given no blocks; the hash of an empty message is left
// undefined by design, not computed as some fixed value.
func MerkleDamgard(b *builder.GadgetBuilder, compress Compress2, iv expr.Expression, blocks []expr.Expression) expr.Expression {
	if len(blocks) == 0 {
		panic(errs.ErrEmptySequence)
	}
	chain := iv
	for _, blk := range blocks {
		chain = compress(b, chain, blk)
	}
	return chain
}

// Permutation is a fixed-width state transformation, the shape Sponge
// drives between absorb/squeeze steps.
type Permutation func(b *builder.GadgetBuilder, state []expr.Expression) []expr.Expression

// Sponge builds a sponge construction over perm with the given rate and
// capacity: msg is absorbed rate elements at a time (zero-padding the last
// partial chunk, added into the rate portion of the state), calling perm
// after every chunk; outLen elements are then squeezed from the rate
// portion, calling perm again whenever more output is needed than one
// rate's worth.
func Sponge(b *builder.GadgetBuilder, perm Permutation, rate, capacity int, msg []expr.Expression, outLen int) []expr.Expression {
	f := b.Field()
	state := make([]expr.Expression, rate+capacity)
	for i := range state {
		state[i] = expr.Zero(f)
	}
	for i := 0; i < len(msg); i += rate {
		end := i + rate
		if end > len(msg) {
			end = len(msg)
		}
		for j := i; j < end; j++ {
			state[j-i] = state[j-i].Add(msg[j])
		}
		state = perm(b, state)
	}
	out := make([]expr.Expression, 0, outLen)
	for len(out) < outLen {
		take := rate
		if outLen-len(out) < take {
			take = outLen - len(out)
		}
		out = append(out, state[:take]...)
		if len(out) < outLen {
			state = perm(b, state)
		}
	}
	return out
}

// MerkleRoot folds leaves pairwise through hash(left, right), duplicating
// the last node at each level when that level has an odd count, until a
// single root remains. It panics with ErrEmptySequence given no leaves.
func MerkleRoot(b *builder.GadgetBuilder, hash Compress2, leaves []expr.Expression) expr.Expression {
	if len(leaves) == 0 {
		panic(errs.ErrEmptySequence)
	}
	level := append([]expr.Expression(nil), leaves...)
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		next := make([]expr.Expression, len(level)/2)
		for i := range next {
			next[i] = hash(b, level[2*i], level[2*i+1])
		}
		level = next
	}
	return level[0]
}

// MerkleRootStats is MerkleRoot instrumented with Tag/AddCounter, reporting
// the constraints/wires/generators a given tree of leaves costs under hash.
func MerkleRootStats(b *builder.GadgetBuilder, hash Compress2, leaves []expr.Expression) (expr.Expression, builder.Counter) {
	before := b.Tag("merkle_root:before")
	root := MerkleRoot(b, hash, leaves)
	return root, b.AddCounter(before, b.Tag("merkle_root:after"))
}

// SpongeStats is Sponge instrumented with Tag/AddCounter, reporting the
// constraints/wires/generators a given absorb/squeeze schedule costs under
// perm.
func SpongeStats(b *builder.GadgetBuilder, perm Permutation, rate, capacity int, msg []expr.Expression, outLen int) ([]expr.Expression, builder.Counter) {
	before := b.Tag("sponge:before")
	out := Sponge(b, perm, rate, capacity, msg, outLen)
	return out, b.AddCounter(before, b.Tag("sponge:after"))
}
