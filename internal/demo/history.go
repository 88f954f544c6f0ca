package demo

import (
	"errors"
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
)

var ErrHistoryEncodingFailed = errors.New("encoding catalog history failed")

// HistoryRecord is the JSON form of one catalog event.
type HistoryRecord struct {
	EventType  string              `json:"event_type"`
	OccurredAt time.Time           `json:"occurred_at"`
	Payload    jsoniter.RawMessage `json:"payload"`
}

// HistoryRecordFrom maps a domain event to its HistoryRecord.
func HistoryRecordFrom(event catalog.DomainEvent) (HistoryRecord, error) {
	payloadJSON, err := jsoniter.ConfigFastest.Marshal(event)
	if err != nil {
		return HistoryRecord{}, errors.Join(ErrHistoryEncodingFailed, err)
	}

	return HistoryRecord{
		EventType:  event.IsEventType(),
		OccurredAt: event.HasOccurredAt(),
		Payload:    payloadJSON,
	}, nil
}

// HistoryRecordsFrom maps domain events to HistoryRecords, keeping their order.
func HistoryRecordsFrom(events catalog.DomainEvents) ([]HistoryRecord, error) {
	records := make([]HistoryRecord, 0, len(events))

	for _, event := range events {
		record, err := HistoryRecordFrom(event)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}

// WriteHistoryJSON writes the events to w as an indented JSON array of HistoryRecords.
func WriteHistoryJSON(w io.Writer, events catalog.DomainEvents) error {
	records, err := HistoryRecordsFrom(events)
	if err != nil {
		return err
	}

	encoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(records); err != nil {
		return errors.Join(ErrHistoryEncodingFailed, err)
	}

	return nil
}
