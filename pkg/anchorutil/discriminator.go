package anchorutil

import "crypto/sha256"

// DiscriminatorLength is the size of every Anchor discriminator.
const DiscriminatorLength = 8

// InstructionDiscriminator returns the discriminator prepended to the
// instruction data of the named instruction. The name is the snake_case
// handler name as declared in the program module.
func InstructionDiscriminator(name string) []byte {
	return discriminator("global:" + name)
}

// AccountDiscriminator returns the discriminator stored in the first eight
// bytes of the named account's data.
func AccountDiscriminator(name string) []byte {
	return discriminator("account:" + name)
}

// EventDiscriminator returns the discriminator prefixing the named event
// in program log data.
func EventDiscriminator(name string) []byte {
	return discriminator("event:" + name)
}

func discriminator(preimage string) []byte {
	digest := sha256.Sum256([]byte(preimage))
	out := make([]byte, DiscriminatorLength)
	copy(out, digest[:DiscriminatorLength])
	return out
}
