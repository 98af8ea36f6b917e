// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matushkin

package models

// Scope selects which logical remote database an operation targets.
type Scope string

const (
	// ScopePrivate is the caller-owned database holding the user's own zones.
	ScopePrivate Scope = "private"
	// ScopeShared is the database holding zones other users shared with the caller.
	ScopeShared Scope = "shared"
)

// ChangeToken is an opaque, remote-issued cursor marking how much of a change
// feed has been consumed. The empty string means "from the beginning of
// history" for the token's scope.
type ChangeToken string

// ZoneID identifies a remote zone: the unit of change-token partitioning and
// of share access boundaries. OwnerName is empty for the caller's own zones
// and set to the owning account for zones shared by other users.
type ZoneID struct {
	ZoneName  string `json:"zoneName"`
	OwnerName string `json:"ownerName,omitempty"`
}

// Key returns a stable string form of the zone identifier, usable as a map key.
func (z ZoneID) Key() string {
	if z.OwnerName == "" {
		return z.ZoneName
	}
	return z.ZoneName + "/" + z.OwnerName
}

// RecordID identifies a record within a zone.
type RecordID struct {
	RecordName string `json:"recordName"`
	Zone       ZoneID `json:"zone"`
}

// ReferenceAction controls what happens to the referencing record when the
// referenced record is deleted.
type ReferenceAction string

const (
	ReferenceActionNone ReferenceAction = "NONE"
	// ReferenceActionDeleteSelf deletes the referencing record together with
	// the referenced one (cascade used for parent/dependent links).
	ReferenceActionDeleteSelf ReferenceAction = "DELETE_SELF"
)

// Reference is a typed pointer from one record to another.
type Reference struct {
	Record RecordID        `json:"record"`
	Action ReferenceAction `json:"action,omitempty"`
}

// FieldKind discriminates the value stored in a FieldValue.
type FieldKind string

const (
	FieldKindText          FieldKind = "text"
	FieldKindNumber        FieldKind = "number"
	FieldKindFlag          FieldKind = "flag"
	FieldKindReferenceList FieldKind = "referenceList"
)

// FieldValue is a tagged union of the field types the record store supports.
// Keeping the union explicit (instead of map[string]any) makes wire round
// trips deterministic.
type FieldValue struct {
	Kind       FieldKind   `json:"kind"`
	Text       string      `json:"text,omitempty"`
	Number     float64     `json:"number,omitempty"`
	Flag       bool        `json:"flag,omitempty"`
	References []Reference `json:"references,omitempty"`
}

// TextValue builds a text field value.
func TextValue(s string) FieldValue { return FieldValue{Kind: FieldKindText, Text: s} }

// NumberValue builds a numeric field value.
func NumberValue(n float64) FieldValue { return FieldValue{Kind: FieldKindNumber, Number: n} }

// FlagValue builds a boolean field value.
func FlagValue(b bool) FieldValue { return FieldValue{Kind: FieldKindFlag, Flag: b} }

// ReferenceListValue builds a reference-list field value.
func ReferenceListValue(refs []Reference) FieldValue {
	return FieldValue{Kind: FieldKindReferenceList, References: refs}
}

// Record is a typed bag of named fields with a zone-scoped identifier, an
// optional parent reference (dependent hierarchy, cascade delete) and an
// optional share reference when the record's root is shared.
type Record struct {
	ID         RecordID              `json:"id"`
	RecordType string                `json:"recordType"`
	Fields     map[string]FieldValue `json:"fields,omitempty"`
	Parent     *Reference            `json:"parent,omitempty"`
	Share      *Reference            `json:"share,omitempty"`
}

// NewRecord constructs an empty record of the given type and identity.
func NewRecord(recordType string, id RecordID) Record {
	return Record{ID: id, RecordType: recordType, Fields: make(map[string]FieldValue)}
}

// SetField stores a field value, allocating the field map if needed.
func (r *Record) SetField(name string, v FieldValue) {
	if r.Fields == nil {
		r.Fields = make(map[string]FieldValue)
	}
	r.Fields[name] = v
}

// TextField returns the text value of the named field, or "" when absent.
func (r *Record) TextField(name string) string {
	return r.Fields[name].Text
}

// NumberField returns the numeric value of the named field, or 0 when absent.
func (r *Record) NumberField(name string) float64 {
	return r.Fields[name].Number
}

// FlagField returns the boolean value of the named field, or false when absent.
func (r *Record) FlagField(name string) bool {
	return r.Fields[name].Flag
}

// ReferenceListField returns the reference list stored under name, or nil.
func (r *Record) ReferenceListField(name string) []Reference {
	return r.Fields[name].References
}
