package lcg

import "testing"

func TestNext_Reference(t *testing.T) {
	tests := []struct {
		name string
		seed int32
		want []int32
	}{
		{
			name: "seed=1",
			seed: 1,
			want: []int32{
				742938285, 1710921057, 1796558312, 1943891214, 1800077045,
				693830668, 1200385203, 1971473348, 1447575132, 192849068,
			},
		},
		{
			name: "seed=15937",
			seed: 15937,
			want: []int32{1130102134, 349019450, 1497836540, 195185896, 1741309539},
		},
		{
			name: "seed=-1",
			seed: -1,
			want: []int32{1404545362, 436562590, 350925335, 203592433, 347406602},
		},
		{
			name: "seed=MinInt32",
			seed: -2147483648,
			want: []int32{1404545364, 1922439160, 1625283802},
		},
		{
			name: "seed=0 (degenerate)",
			seed: 0,
			want: []int32{0, 0, 0},
		},
		{
			name: "seed=Modulus (degenerate)",
			seed: Modulus,
			want: []int32{Modulus, Modulus, Modulus},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seed := tc.seed
			for i, want := range tc.want {
				got := Next(&seed)
				if got != want {
					t.Errorf("iteration %d: got %d, want %d", i, got, want)
				}
				if seed != got {
					t.Errorf("iteration %d: seed cell = %d, returned %d", i, seed, got)
				}
			}
		})
	}
}

// TestNext_MatchesModulo checks the folded reduction against direct
// 64-bit modular arithmetic over a spread of positive seeds.
func TestNext_MatchesModulo(t *testing.T) {
	for s := int64(1); s < Modulus; s += 104729 * 97 {
		seed := int32(s)
		want := int32((s * Multiplier) % Modulus)
		if got := Next(&seed); got != want {
			t.Fatalf("seed %d: got %d, want %d", s, got, want)
		}
	}
}

func TestNext_StaysInRange(t *testing.T) {
	seed := int32(1)
	for i := 0; i < 100000; i++ {
		v := Next(&seed)
		if v < 1 || v >= Modulus {
			t.Fatalf("iteration %d: %d out of [1, %d)", i, v, Modulus)
		}
	}
}
