package preset

import "testing"

func contains(extensions []Extension, target Extension) bool {
	for _, e := range extensions {
		if e == target {
			return true
		}
	}
	return false
}

func TestRequiredExtensionsSSS1(t *testing.T) {
	extensions := RequiredExtensions(SSS1())
	if len(extensions) != 1 || extensions[0] != ExtensionMetadataPointer {
		t.Fatalf("unexpected extensions for sss-1: %v", extensions)
	}
}

func TestRequiredExtensionsSSS2(t *testing.T) {
	extensions := RequiredExtensions(SSS2())
	for _, want := range []Extension{
		ExtensionTransferHook,
		ExtensionTransferFeeConfig,
		ExtensionPermanentDelegate,
		ExtensionMetadataPointer,
	} {
		if !contains(extensions, want) {
			t.Fatalf("sss-2 missing extension %s: %v", want, extensions)
		}
	}
	if contains(extensions, ExtensionConfidentialMint) {
		t.Fatalf("sss-2 must not require confidential mint")
	}
}

func TestRequiredExtensionsSSS3(t *testing.T) {
	extensions := RequiredExtensions(SSS3())
	for _, want := range []Extension{
		ExtensionTransferHook,
		ExtensionConfidentialMint,
		ExtensionDefaultAccountState,
	} {
		if !contains(extensions, want) {
			t.Fatalf("sss-3 missing extension %s: %v", want, extensions)
		}
	}
}
