package models

// RecordTypeShare is the reserved record type of share records.
const RecordTypeShare = "sync.share"

// Share record field names.
const (
	ShareFieldTitle            = "title"
	ShareFieldType             = "shareType"
	ShareFieldPublicPermission = "publicPermission"
)

// SharePermission is the public permission level carried by a share record.
type SharePermission string

const (
	SharePermissionNone      SharePermission = "NONE"
	SharePermissionReadOnly  SharePermission = "READ_ONLY"
	SharePermissionReadWrite SharePermission = "READ_WRITE"
)

// NewShareRecord builds a share record wrapping root. The share lives in the
// root's zone under a derived record name so that sharing the same root twice
// yields the same share identity.
func NewShareRecord(root RecordID, title, shareType string) Record {
	share := NewRecord(RecordTypeShare, RecordID{
		RecordName: "share-" + root.RecordName,
		Zone:       root.Zone,
	})
	share.SetField(ShareFieldTitle, TextValue(title))
	share.SetField(ShareFieldType, TextValue(shareType))
	share.SetField(ShareFieldPublicPermission, TextValue(string(SharePermissionReadWrite)))
	return share
}

// ShareMetadata describes an incoming share invitation. AcceptShare resolves
// the metadata into the share record and the identifier of the shared root.
type ShareMetadata struct {
	// ShareURLToken is the opaque token from the share invitation link.
	ShareURLToken string `json:"shareURLToken,omitempty"`
	// RootRecordID identifies the shared hierarchy's root record. Populated
	// by the remote store when the share is accepted.
	RootRecordID RecordID `json:"rootRecordID"`
	// ShareRecord is the share record itself, populated on acceptance.
	ShareRecord *Record `json:"shareRecord,omitempty"`
}
