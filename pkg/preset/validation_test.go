package preset

import (
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
)

func TestBuiltinPresetsValidate(t *testing.T) {
	for _, p := range []Preset{SSS1(), SSS2(), SSS3()} {
		if err := Validate(p); err != nil {
			t.Fatalf("builtin preset %s failed validation: %v", p.Name, err)
		}
	}
}

func TestValidateRejectsExcessiveFee(t *testing.T) {
	p := SSS2()
	p.TransferFeeBasisPoints = MaxFeeBasisPoints + 1
	err := Validate(p)
	if err == nil {
		t.Fatalf("expected error for fee above %d bps", MaxFeeBasisPoints)
	}
	if !strings.Contains(err.Error(), "exceeds maximum") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsFeeWithoutHook(t *testing.T) {
	p := SSS1()
	p.TransferFeeBasisPoints = 25
	if err := Validate(p); err == nil {
		t.Fatalf("expected error for fee without hook")
	}
}

func TestValidateRejectsFeeWithoutCap(t *testing.T) {
	p := SSS2()
	p.MaxTransferFee = 0
	if err := Validate(p); err == nil {
		t.Fatalf("expected error for fee without cap")
	}
}

func TestValidateRejectsConfidentialOffTier(t *testing.T) {
	p := SSS2()
	p.Confidential.Enabled = true
	if err := Validate(p); err == nil {
		t.Fatalf("expected error for confidential flags on sss-2")
	}
}

func TestValidateRejectsSSS3WithoutConfidential(t *testing.T) {
	p := SSS3()
	p.Confidential.Enabled = false
	p.Confidential.AuditorElGamalKey = ""
	if err := Validate(p); err == nil {
		t.Fatalf("expected error for sss-3 without confidential transfers")
	}
}

func TestValidateRejectsAllowlistWithoutFrozenDefault(t *testing.T) {
	p := SSS3()
	p.DefaultAccountFrozen = false
	if err := Validate(p); err == nil {
		t.Fatalf("expected error for allowlist without default-frozen accounts")
	}
}

func TestValidateAuditorKey(t *testing.T) {
	p := SSS3()
	p.Confidential.AuditorElGamalKey = solana.NewWallet().PublicKey().String()
	if err := Validate(p); err != nil {
		t.Fatalf("expected auditor key to validate: %v", err)
	}

	p.Confidential.AuditorElGamalKey = "not-a-key"
	if err := Validate(p); err == nil {
		t.Fatalf("expected error for malformed auditor key")
	}
}

func TestValidateRejectsExcessiveDecimals(t *testing.T) {
	p := SSS1()
	p.Decimals = MaxDecimals + 1
	if err := Validate(p); err == nil {
		t.Fatalf("expected error for decimals above %d", MaxDecimals)
	}
}
