package hook

import "github.com/gagliardetto/solana-go"

// TransferCheck describes a prospective transfer for client-side
// admission preview.
type TransferCheck struct {
	Source      solana.PublicKey
	Destination solana.PublicKey
	Amount      uint64

	SourceWhitelisted      bool
	SourceBlacklisted      bool
	DestinationBlacklisted bool
}

// Decision is the outcome of an admission preview.
type Decision struct {
	Allowed    bool
	Fee        uint64
	NetAmount  uint64
	FeeWaived  bool
	WaiveCause string
	Reject     error
}

// EvaluateTransfer mirrors the hook's execute path: pause, blacklist,
// delegate bypass, whitelist, authority exemption, minimum amount, fee.
// The check order matches the program so a preview rejects for the same
// reason the chain would.
func EvaluateTransfer(config Config, check TransferCheck) Decision {
	if config.IsPaused {
		return Decision{Reject: ErrHookPaused}
	}

	if config.BlacklistEnabled {
		if check.SourceBlacklisted || check.DestinationBlacklisted {
			return Decision{Reject: ErrAddressBlacklisted}
		}
	}

	if config.PermanentDelegate != nil {
		delegate := *config.PermanentDelegate
		if check.Source.Equals(delegate) || check.Destination.Equals(delegate) {
			return Decision{
				Allowed:    true,
				NetAmount:  check.Amount,
				FeeWaived:  true,
				WaiveCause: "permanent delegate",
			}
		}
	}

	if check.SourceWhitelisted {
		return Decision{
			Allowed:    true,
			NetAmount:  check.Amount,
			FeeWaived:  true,
			WaiveCause: "whitelisted source",
		}
	}

	if check.Source.Equals(config.Authority) {
		return Decision{
			Allowed:    true,
			NetAmount:  check.Amount,
			FeeWaived:  true,
			WaiveCause: "authority source",
		}
	}

	if check.Amount < config.MinTransferAmount {
		return Decision{Reject: ErrAmountTooLow}
	}

	fee := CalculateFee(check.Amount, config.TransferFeeBasisPoints, config.MaxTransferFee)
	net := uint64(0)
	if fee < check.Amount {
		net = check.Amount - fee
	}
	return Decision{
		Allowed:   true,
		Fee:       fee,
		NetAmount: net,
	}
}
