package preset

import "testing"

func TestByTier(t *testing.T) {
	for _, tier := range []Tier{TierSSS1, TierSSS2, TierSSS3} {
		p, err := ByTier(tier)
		if err != nil {
			t.Fatalf("ByTier(%s) failed: %v", tier, err)
		}
		if p.Tier != tier {
			t.Fatalf("unexpected tier: %s", p.Tier)
		}
	}

	if _, err := ByTier("sss-9"); err == nil {
		t.Fatalf("expected error for unknown tier")
	}
}

func TestParseTierAliases(t *testing.T) {
	cases := map[string]Tier{
		"sss1":  TierSSS1,
		"sss-2": TierSSS2,
		"sss-3": TierSSS3,
	}
	for input, want := range cases {
		got, err := ParseTier(input)
		if err != nil {
			t.Fatalf("ParseTier(%q) failed: %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseTier(%q) = %s, want %s", input, got, want)
		}
	}

	if _, err := ParseTier("basic"); err == nil {
		t.Fatalf("expected error for unknown tier name")
	}
}

func TestSSS3ExtendsSSS2(t *testing.T) {
	base := SSS2()
	confidential := SSS3()

	if confidential.TransferFeeBasisPoints != base.TransferFeeBasisPoints {
		t.Fatalf("sss-3 must inherit sss-2 fee rate")
	}
	if !confidential.BlacklistEnabled {
		t.Fatalf("sss-3 must keep blacklist enforcement")
	}
	if !confidential.Confidential.Enabled {
		t.Fatalf("sss-3 must enable confidential transfers")
	}
}
