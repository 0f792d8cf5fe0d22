package alder_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/alder-lang/alder"
)

func TestValueString(t *testing.T) {
	big127, _ := new(big.Int).SetString("170141183460469231731687303715884105727", 10)
	cases := []struct {
		name string
		v    alder.Value
		want string
	}{
		{"int", alder.IntOf(5), "5"},
		{"int-neg", alder.IntOf(-5), "-5"},
		{"int128", alder.Int128(big127), "170141183460469231731687303715884105727"},
		{"float-whole", alder.FloatOf(2), "2"},
		{"float-frac", alder.FloatOf(2.5), "2.5"},
		{"float-exp", alder.FloatOf(1e21), "1e+21"},
		{"float-inf", alder.FloatOf(math.Inf(1)), "+Inf"},
		{"bool-true", alder.BoolOf(true), "true"},
		{"bool-false", alder.BoolOf(false), "false"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.v.String(); got != c.want {
				t.Errorf("want %q, got %q", c.want, got)
			}
		})
	}
}

func TestValueKinds(t *testing.T) {
	if k := alder.IntOf(1).Kind(); k != alder.ValueInteger {
		t.Errorf("IntOf kind: %v", k)
	}
	if k := alder.FloatOf(1).Kind(); k != alder.ValueFloat {
		t.Errorf("FloatOf kind: %v", k)
	}
	if k := alder.BoolOf(true).Kind(); k != alder.ValueBool {
		t.Errorf("BoolOf kind: %v", k)
	}
}

func TestValueIntCopies(t *testing.T) {
	v := alder.IntOf(10)
	v.Int().SetInt64(99)
	if got := v.Int().Int64(); got != 10 {
		t.Errorf("Int returned an aliasing pointer: value changed to %d", got)
	}
}

func TestInt128Range(t *testing.T) {
	over := new(big.Int).Lsh(big.NewInt(1), 127)
	defer func() {
		if recover() == nil {
			t.Error("Int128 accepted an out-of-range value")
		}
	}()
	alder.Int128(over)
}
