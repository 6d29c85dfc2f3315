package webhook

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Event is the common shape of the two Contentful notification payloads.
// Entry-change events additionally carry nested field values and
// deleted-entry events only sys metadata, but resolution needs nothing
// beyond the entry id and the event type.
type Event struct {
	Sys EventSys `json:"sys"`
}

type EventSys struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Deleted reports whether the entry no longer exists in the published
// dataset, which forces the slug lookup through the preview API.
func (e Event) Deleted() bool {
	return e.Sys.Type == "DeletedEntry"
}

func (e Event) Validate() error {
	return validation.ValidateStruct(&e.Sys,
		validation.Field(&e.Sys.ID,
			validation.Required.Error("entry id is required"),
		),
		validation.Field(&e.Sys.Type,
			validation.Required.Error("event type is required"),
			validation.In("Entry", "DeletedEntry").Error("unsupported event type"),
		),
	)
}
