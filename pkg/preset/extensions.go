package preset

// Extension names a Token-2022 mint extension a preset requires.
type Extension string

const (
	ExtensionTransferHook        Extension = "transfer_hook"
	ExtensionTransferFeeConfig   Extension = "transfer_fee_config"
	ExtensionPermanentDelegate   Extension = "permanent_delegate"
	ExtensionConfidentialMint    Extension = "confidential_transfer_mint"
	ExtensionDefaultAccountState Extension = "default_account_state"
	ExtensionMetadataPointer     Extension = "metadata_pointer"
)

// RequiredExtensions derives the Token-2022 extension set a preset needs
// at mint creation. Extensions cannot be added after the mint exists, so
// the full set must be known up front.
func RequiredExtensions(p Preset) []Extension {
	extensions := []Extension{ExtensionMetadataPointer}

	if p.TransferHookEnabled {
		extensions = append(extensions, ExtensionTransferHook)
	}
	if p.TransferFeeBasisPoints > 0 {
		extensions = append(extensions, ExtensionTransferFeeConfig)
	}
	if p.PermanentDelegateEnabled {
		extensions = append(extensions, ExtensionPermanentDelegate)
	}
	if p.Confidential.Enabled {
		extensions = append(extensions, ExtensionConfidentialMint)
	}
	if p.DefaultAccountFrozen {
		extensions = append(extensions, ExtensionDefaultAccountState)
	}

	return extensions
}
