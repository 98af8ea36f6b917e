package models

// SyncableItem is the capability set a local domain entity must provide to
// travel through the sync engine. An entity either carries the record name it
// was assigned on a previous sync or an empty name when it was created locally
// and never pushed.
//
// Field transfer is owned by the entity: PopulateRecord writes the entity's
// scalar fields into a record, ApplyRecord reads them back. The engine never
// inspects entity fields directly.
type SyncableItem interface {
	// RecordName returns the remote record name, or "" if never synced.
	RecordName() string
	// SetRecordName stamps the remote record name onto the entity.
	SetRecordName(name string)

	// Zone returns the zone the entity's record lives in. The owner name is
	// empty for the caller's own zone and set for shared-in entities.
	Zone() ZoneID
	// SetZone records the owning zone on the entity.
	SetZone(zone ZoneID)

	// RemoteOrigin reports whether the entity was observed remotely rather
	// than created locally.
	RemoteOrigin() bool
	// SetRemoteOrigin stamps the origin flag.
	SetRemoteOrigin(remote bool)

	// PopulateRecord writes the entity's scalar fields into r.
	PopulateRecord(r *Record)
	// ApplyRecord reads the entity's scalar fields from r.
	ApplyRecord(r *Record)

	// AppendDependent attaches a materialized child entity. Leaf kinds may
	// implement this as a no-op.
	AppendDependent(child SyncableItem)
	// Dependents returns the attached child entities, nil for leaf kinds.
	Dependents() []SyncableItem
}

// EntityDescriptor is the per-kind type object of a syncable entity: its
// record type, the zone its records live in, and — when the kind declares
// dependents — the dependent kind plus the parent-record field under which
// dependent references are stored. These are fixed per entity kind, never
// per instance.
type EntityDescriptor struct {
	// RecordType is the remote record type for this entity kind.
	RecordType string
	// ZoneName is the name of the zone this kind's records live in.
	ZoneName string
	// DependentField names the parent-record field holding the reference
	// list of direct dependents. Empty when Dependent is nil.
	DependentField string
	// Dependent describes the dependent entity kind, nil for leaf kinds.
	Dependent *EntityDescriptor
	// New constructs an empty entity of this kind.
	New func() SyncableItem
}

// Depth returns the number of hierarchy levels rooted at the descriptor
// (1 for a leaf kind).
func (d *EntityDescriptor) Depth() int {
	depth := 0
	for cur := d; cur != nil; cur = cur.Dependent {
		depth++
	}
	return depth
}
