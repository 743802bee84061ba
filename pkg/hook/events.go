package hook

import (
	"bytes"
	"encoding/base64"
	"strings"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/yoiioy700/stablecoin-sdk-go/pkg/anchorutil"
)

// Events the program emits.
const (
	EventTransferHook             = "TransferHookEvent"
	EventFeeConfigUpdated         = "FeeConfigUpdated"
	EventListEntryAdded           = "ListEntryAdded"
	EventListEntryRemoved         = "ListEntryRemoved"
	EventPermanentDelegateUpdated = "PermanentDelegateUpdated"
)

// TransferHookEvent reports a transfer the hook admitted.
type TransferHookEvent struct {
	Source             solana.PublicKey
	Destination        solana.PublicKey
	Amount             uint64
	Fee                uint64
	IsDelegateTransfer bool
	Timestamp          int64
}

// FeeConfigUpdatedEvent reports a fee reconfiguration.
type FeeConfigUpdatedEvent struct {
	Authority              solana.PublicKey
	TransferFeeBasisPoints uint16
	MaxTransferFee         uint64
	MinTransferAmount      uint64
	Timestamp              int64
}

// ListEntryAddedEvent reports a whitelist or blacklist addition.
type ListEntryAddedEvent struct {
	Address   solana.PublicKey
	EntryType ListType
	AddedBy   solana.PublicKey
	Timestamp int64
}

// ListEntryRemovedEvent reports a whitelist or blacklist removal.
type ListEntryRemovedEvent struct {
	Address   solana.PublicKey
	EntryType ListType
	RemovedBy solana.PublicKey
	Timestamp int64
}

// PermanentDelegateUpdatedEvent reports a delegate change.
type PermanentDelegateUpdatedEvent struct {
	Delegate  *solana.PublicKey `bin:"optional"`
	UpdatedBy solana.PublicKey
	Timestamp int64
}

const programDataPrefix = "Program data: "

// DecodeEvents scans transaction log messages for the program's emitted
// events and decodes every one it recognizes. Unknown event payloads and
// non-event log lines are skipped.
func DecodeEvents(logs []string) []interface{} {
	var events []interface{}

	for _, line := range logs {
		index := strings.Index(line, programDataPrefix)
		if index < 0 {
			continue
		}

		payload, err := base64.StdEncoding.DecodeString(strings.TrimSpace(line[index+len(programDataPrefix):]))
		if err != nil || len(payload) < anchorutil.DiscriminatorLength {
			continue
		}

		event := decodeEvent(payload)
		if event != nil {
			events = append(events, event)
		}
	}

	return events
}

func decodeEvent(payload []byte) interface{} {
	discriminator := payload[:anchorutil.DiscriminatorLength]
	body := payload[anchorutil.DiscriminatorLength:]

	switch {
	case bytes.Equal(discriminator, anchorutil.EventDiscriminator(EventTransferHook)):
		var event TransferHookEvent
		if bin.NewBorshDecoder(body).Decode(&event) == nil {
			return &event
		}
	case bytes.Equal(discriminator, anchorutil.EventDiscriminator(EventFeeConfigUpdated)):
		var event FeeConfigUpdatedEvent
		if bin.NewBorshDecoder(body).Decode(&event) == nil {
			return &event
		}
	case bytes.Equal(discriminator, anchorutil.EventDiscriminator(EventListEntryAdded)):
		var event ListEntryAddedEvent
		if bin.NewBorshDecoder(body).Decode(&event) == nil {
			return &event
		}
	case bytes.Equal(discriminator, anchorutil.EventDiscriminator(EventListEntryRemoved)):
		var event ListEntryRemovedEvent
		if bin.NewBorshDecoder(body).Decode(&event) == nil {
			return &event
		}
	case bytes.Equal(discriminator, anchorutil.EventDiscriminator(EventPermanentDelegateUpdated)):
		var event PermanentDelegateUpdatedEvent
		if bin.NewBorshDecoder(body).Decode(&event) == nil {
			return &event
		}
	}

	return nil
}
