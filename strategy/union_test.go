package strategy_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/degustaf/hypothesis/entropy"
	"github.com/degustaf/hypothesis/strategy"
)

// UnionSuite groups tests for OneOf, NewUnion and Or.
type UnionSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *UnionSuite) SetupTest() {
	s.rng = entropy.NewRand(2015)
}

// attempt returns a fresh Data for one draw, fed from the suite RNG.
func (s *UnionSuite) attempt() *entropy.Data {
	return entropy.New(entropy.WithRand(s.rng), entropy.WithMaxSize(64))
}

func constants(n int) []strategy.Strategy[int] {
	xs := make([]strategy.Strategy[int], n)
	for i := range xs {
		xs[i] = strategy.Just(i)
	}
	return xs
}

// TestArity: n≥2 ⇒ *Union with n constituents; n=1 ⇒ same value; n=0 ⇒ ErrEmptyUnion.
func (s *UnionSuite) TestArity() {
	_, err := strategy.OneOf[int]()
	require.ErrorIs(s.T(), err, strategy.ErrEmptyUnion)

	only := strategy.Just(7)
	got, err := strategy.OneOf(only)
	require.NoError(s.T(), err)
	require.Same(s.T(), only, got, "single strategy must be returned unwrapped")

	for _, n := range []int{2, 3, 10} {
		xs := constants(n)
		u, err := strategy.OneOf(xs...)
		require.NoError(s.T(), err)
		union, ok := u.(*strategy.Union[int])
		require.True(s.T(), ok, "n=%d must build a *Union", n)
		require.Equal(s.T(), n, union.Len())
		for i, c := range union.Strategies() {
			require.Same(s.T(), xs[i], c, "constituent order is preserved")
		}
	}
}

// TestNewUnionRejectsSmallOrNil: direct construction needs ≥2 non-nil strategies.
func (s *UnionSuite) TestNewUnionRejectsSmallOrNil() {
	_, err := strategy.NewUnion(strategy.Just(1))
	require.ErrorIs(s.T(), err, strategy.ErrUnionArity)

	_, err = strategy.NewUnion[int]()
	require.ErrorIs(s.T(), err, strategy.ErrUnionArity)

	_, err = strategy.NewUnion[int](strategy.Just(1), nil)
	require.ErrorIs(s.T(), err, strategy.ErrInvalidOperand)

	_, err = strategy.OneOf[int](nil)
	require.ErrorIs(s.T(), err, strategy.ErrInvalidOperand)
}

// TestZeroValueFailsWithArity: a Union not built by NewUnion reports its arity.
func (s *UnionSuite) TestZeroValueFailsWithArity() {
	var u strategy.Union[int]
	d := s.attempt()

	_, err := u.Generate(d)
	require.ErrorIs(s.T(), err, strategy.ErrUnionArity)
	require.NotErrorIs(s.T(), err, entropy.ErrInvalidRange)
	require.Zero(s.T(), d.Index(), "no entropy is consumed")
}

// TestStrategiesIsACopy: callers cannot mutate the union.
func (s *UnionSuite) TestStrategiesIsACopy() {
	u, err := strategy.NewUnion(constants(2)...)
	require.NoError(s.T(), err)

	xs := u.Strategies()
	xs[0] = strategy.Just(99)

	v, err := u.Generate(entropy.ForBuffer([]byte{0}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, v)
}

// TestDistribution: constants 0..n-1 are picked with frequency ≈ 1/n.
func (s *UnionSuite) TestDistribution() {
	const n, draws = 3, 9000
	u, err := strategy.OneOf(constants(n)...)
	require.NoError(s.T(), err)

	counts := make([]int, n)
	for i := 0; i < draws; i++ {
		v, err := u.Generate(s.attempt())
		require.NoError(s.T(), err)
		counts[v]++
	}
	for v, c := range counts {
		require.InDelta(s.T(), draws/n, c, 250, "constituent %d chosen %d times", v, c)
	}
}

// TestEndToEndFairCoin: OneOf(Just(1), Just(2)) over 10 000 draws ≈ 5 000 each.
func (s *UnionSuite) TestEndToEndFairCoin() {
	u, err := strategy.OneOf(strategy.Just(1), strategy.Just(2))
	require.NoError(s.T(), err)

	ones, twos := 0, 0
	for i := 0; i < 10000; i++ {
		v, err := u.Generate(s.attempt())
		require.NoError(s.T(), err)
		switch v {
		case 1:
			ones++
		case 2:
			twos++
		default:
			s.T().Fatalf("unexpected value %d", v)
		}
	}
	require.InDelta(s.T(), 5000, ones, 250)
	require.InDelta(s.T(), 5000, twos, 250)
}

// TestConsumesEntropy: choosing among ≥2 always advances the index.
func (s *UnionSuite) TestConsumesEntropy() {
	u, err := strategy.OneOf(strategy.Just(1), strategy.Just(2))
	require.NoError(s.T(), err)

	d := entropy.ForBuffer([]byte{1})
	v, err := u.Generate(d)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, v)
	require.Equal(s.T(), 1, d.Index())

	_, err = u.Generate(d)
	require.ErrorIs(s.T(), err, entropy.ErrOverrun, "overrun propagates unchanged")
}

// TestString joins descriptions with " | ".
func (s *UnionSuite) TestString() {
	u, err := strategy.OneOf(strategy.Just(1), strategy.Integers(0, 3))
	require.NoError(s.T(), err)
	require.Equal(s.T(), "just(1) | integers(0, 3)", u.String())
	require.Equal(s.T(), u.String(), u.String())
}

// TestOr covers the binary form and its operand check.
func (s *UnionSuite) TestOr() {
	a, b := strategy.Just(1), strategy.Just(2)

	u, err := strategy.Or(a, b)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, u.(*strategy.Union[int]).Len())

	for name, other := range map[string]any{
		"nil":          nil,
		"int":          3,
		"wrong type":   strategy.Just("x"),
		"nil strategy": strategy.Strategy[int](nil),
	} {
		_, err := strategy.Or(a, other)
		require.ErrorIs(s.T(), err, strategy.ErrInvalidOperand, name)
	}

	_, err = strategy.Or[int](nil, a)
	require.ErrorIs(s.T(), err, strategy.ErrInvalidOperand)
}

func TestUnionSuite(t *testing.T) {
	suite.Run(t, new(UnionSuite))
}
